// Package category contains category-related use cases.
package category

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/pocketledger/backend/internal/application/adapter"
	"github.com/pocketledger/backend/internal/domain/entity"
	domainerror "github.com/pocketledger/backend/internal/domain/error"
)

// fakeCategoryRepo is an in-memory adapter.CategoryRepository for unit tests.
type fakeCategoryRepo struct {
	nextID     uint
	categories map[uint]*entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{nextID: 1, categories: make(map[uint]*entity.Category)}
}

func (r *fakeCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	category.ID = r.nextID
	r.nextID++
	c := *category
	r.categories[c.ID] = &c
	return nil
}

func (r *fakeCategoryRepo) FindByID(_ context.Context, id uint) (*entity.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, domainerror.ErrCategoryNotFound
	}
	copied := *c
	return &copied, nil
}

func (r *fakeCategoryRepo) FindByTypeAndName(_ context.Context, categoryType entity.CategoryType, name string) (*entity.Category, error) {
	for _, c := range r.categories {
		if c.Type == categoryType && c.Name == name {
			copied := *c
			return &copied, nil
		}
	}
	return nil, domainerror.ErrCategoryNotFound
}

func (r *fakeCategoryRepo) FindAll(_ context.Context, categoryType *entity.CategoryType) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range r.categories {
		if categoryType == nil || c.Type == *categoryType {
			copied := *c
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Type != out[j].Type {
			return out[i].Type < out[j].Type
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, category *entity.Category) error {
	if _, ok := r.categories[category.ID]; !ok {
		return domainerror.ErrCategoryNotFound
	}
	c := *category
	r.categories[c.ID] = &c
	return nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id uint) error {
	delete(r.categories, id)
	return nil
}

func (r *fakeCategoryRepo) CountByType(_ context.Context, categoryType entity.CategoryType) (int64, error) {
	var count int64
	for _, c := range r.categories {
		if c.Type == categoryType {
			count++
		}
	}
	return count, nil
}

// stubTransactionCounter implements just enough of adapter.TransactionRepository
// for delete tests.
type stubTransactionCounter struct {
	adapter.TransactionRepository
	counts map[uint]int64
}

func (s *stubTransactionCounter) CountByCategory(_ context.Context, categoryID uint) (int64, error) {
	return s.counts[categoryID], nil
}

func TestCreateCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a category", func(t *testing.T) {
		repo := newFakeCategoryRepo()
		uc := NewCreateCategoryUseCase(repo)

		out, err := uc.Execute(ctx, CreateCategoryInput{
			Type: entity.CategoryTypeExpense,
			Name: "Food",
		})
		if err != nil {
			t.Fatalf("Execute returned error: %v", err)
		}
		if out.Category.ID == 0 {
			t.Error("expected assigned category ID")
		}
		if out.Category.Name != "Food" {
			t.Errorf("name = %q, want Food", out.Category.Name)
		}
	})

	t.Run("rejects duplicate (type, name) pair", func(t *testing.T) {
		repo := newFakeCategoryRepo()
		uc := NewCreateCategoryUseCase(repo)

		if _, err := uc.Execute(ctx, CreateCategoryInput{Type: entity.CategoryTypeExpense, Name: "Food"}); err != nil {
			t.Fatalf("first create failed: %v", err)
		}
		_, err := uc.Execute(ctx, CreateCategoryInput{Type: entity.CategoryTypeExpense, Name: "Food"})
		if !errors.Is(err, domainerror.ErrCategoryNameExists) {
			t.Errorf("expected ErrCategoryNameExists, got %v", err)
		}
	})

	t.Run("allows the same name across types", func(t *testing.T) {
		repo := newFakeCategoryRepo()
		uc := NewCreateCategoryUseCase(repo)

		if _, err := uc.Execute(ctx, CreateCategoryInput{Type: entity.CategoryTypeExpense, Name: "Other"}); err != nil {
			t.Fatalf("expense create failed: %v", err)
		}
		if _, err := uc.Execute(ctx, CreateCategoryInput{Type: entity.CategoryTypeIncome, Name: "Other"}); err != nil {
			t.Errorf("income create failed: %v", err)
		}
	})

	t.Run("rejects invalid type", func(t *testing.T) {
		uc := NewCreateCategoryUseCase(newFakeCategoryRepo())

		_, err := uc.Execute(ctx, CreateCategoryInput{Type: "transfer", Name: "X"})
		if !errors.Is(err, domainerror.ErrInvalidCategoryType) {
			t.Errorf("expected ErrInvalidCategoryType, got %v", err)
		}
	})

	t.Run("rejects empty name", func(t *testing.T) {
		uc := NewCreateCategoryUseCase(newFakeCategoryRepo())

		_, err := uc.Execute(ctx, CreateCategoryInput{Type: entity.CategoryTypeIncome, Name: "   "})
		if !errors.Is(err, domainerror.ErrEmptyCategoryName) {
			t.Errorf("expected ErrEmptyCategoryName, got %v", err)
		}
	})
}

func TestUpdateCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("renames a category", func(t *testing.T) {
		repo := newFakeCategoryRepo()
		created, _ := NewCreateCategoryUseCase(repo).Execute(ctx, CreateCategoryInput{
			Type: entity.CategoryTypeExpense, Name: "Food",
		})

		uc := NewUpdateCategoryUseCase(repo)
		out, err := uc.Execute(ctx, UpdateCategoryInput{
			CategoryID: created.Category.ID,
			Name:       "Groceries",
		})
		if err != nil {
			t.Fatalf("Execute returned error: %v", err)
		}
		if out.Category.Name != "Groceries" {
			t.Errorf("name = %q, want Groceries", out.Category.Name)
		}
	})

	t.Run("rejects rename onto an existing name", func(t *testing.T) {
		repo := newFakeCategoryRepo()
		create := NewCreateCategoryUseCase(repo)
		first, _ := create.Execute(ctx, CreateCategoryInput{Type: entity.CategoryTypeExpense, Name: "Food"})
		_, _ = create.Execute(ctx, CreateCategoryInput{Type: entity.CategoryTypeExpense, Name: "Shopping"})

		_, err := NewUpdateCategoryUseCase(repo).Execute(ctx, UpdateCategoryInput{
			CategoryID: first.Category.ID,
			Name:       "Shopping",
		})
		if !errors.Is(err, domainerror.ErrCategoryNameExists) {
			t.Errorf("expected ErrCategoryNameExists, got %v", err)
		}
	})

	t.Run("returns not found for unknown id", func(t *testing.T) {
		_, err := NewUpdateCategoryUseCase(newFakeCategoryRepo()).Execute(ctx, UpdateCategoryInput{
			CategoryID: 42,
			Name:       "X",
		})
		if !errors.Is(err, domainerror.ErrCategoryNotFound) {
			t.Errorf("expected ErrCategoryNotFound, got %v", err)
		}
	})
}

func TestDeleteCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes an unreferenced category", func(t *testing.T) {
		repo := newFakeCategoryRepo()
		created, _ := NewCreateCategoryUseCase(repo).Execute(ctx, CreateCategoryInput{
			Type: entity.CategoryTypeExpense, Name: "Food",
		})
		txRepo := &stubTransactionCounter{counts: map[uint]int64{}}

		out, err := NewDeleteCategoryUseCase(repo, txRepo).Execute(ctx, DeleteCategoryInput{
			CategoryID: created.Category.ID,
		})
		if err != nil {
			t.Fatalf("Execute returned error: %v", err)
		}
		if !out.Success {
			t.Error("expected Success")
		}
		if _, err := repo.FindByID(ctx, created.Category.ID); !errors.Is(err, domainerror.ErrCategoryNotFound) {
			t.Error("category still present after delete")
		}
	})

	t.Run("rejects deletion while transactions reference it", func(t *testing.T) {
		repo := newFakeCategoryRepo()
		created, _ := NewCreateCategoryUseCase(repo).Execute(ctx, CreateCategoryInput{
			Type: entity.CategoryTypeExpense, Name: "Food",
		})
		txRepo := &stubTransactionCounter{counts: map[uint]int64{created.Category.ID: 3}}

		_, err := NewDeleteCategoryUseCase(repo, txRepo).Execute(ctx, DeleteCategoryInput{
			CategoryID: created.Category.ID,
		})
		if !errors.Is(err, domainerror.ErrCategoryInUse) {
			t.Errorf("expected ErrCategoryInUse, got %v", err)
		}
	})
}

func TestSeedDefaults(t *testing.T) {
	ctx := context.Background()

	t.Run("seeds both types into an empty store", func(t *testing.T) {
		repo := newFakeCategoryRepo()

		out, err := NewSeedDefaultsUseCase(repo).Execute(ctx)
		if err != nil {
			t.Fatalf("Execute returned error: %v", err)
		}
		if out.IncomeCreated != len(entity.DefaultIncomeCategories) {
			t.Errorf("IncomeCreated = %d, want %d", out.IncomeCreated, len(entity.DefaultIncomeCategories))
		}
		if out.ExpenseCreated != len(entity.DefaultExpenseCategories) {
			t.Errorf("ExpenseCreated = %d, want %d", out.ExpenseCreated, len(entity.DefaultExpenseCategories))
		}
	})

	t.Run("skips a type that already has categories", func(t *testing.T) {
		repo := newFakeCategoryRepo()
		_, _ = NewCreateCategoryUseCase(repo).Execute(ctx, CreateCategoryInput{
			Type: entity.CategoryTypeIncome, Name: "Consulting",
		})

		out, err := NewSeedDefaultsUseCase(repo).Execute(ctx)
		if err != nil {
			t.Fatalf("Execute returned error: %v", err)
		}
		if out.IncomeCreated != 0 {
			t.Errorf("IncomeCreated = %d, want 0", out.IncomeCreated)
		}
		if out.ExpenseCreated != len(entity.DefaultExpenseCategories) {
			t.Errorf("ExpenseCreated = %d, want %d", out.ExpenseCreated, len(entity.DefaultExpenseCategories))
		}
	})

	t.Run("second run is a no-op", func(t *testing.T) {
		repo := newFakeCategoryRepo()
		uc := NewSeedDefaultsUseCase(repo)
		if _, err := uc.Execute(ctx); err != nil {
			t.Fatalf("first run failed: %v", err)
		}

		out, err := uc.Execute(ctx)
		if err != nil {
			t.Fatalf("second run failed: %v", err)
		}
		if out.IncomeCreated != 0 || out.ExpenseCreated != 0 {
			t.Errorf("second run created categories: %+v", out)
		}
	})
}
