// Package period provides calendar window computations for aggregation.
//
// Every window in the system is half-open: [start, end). Canonical month and
// year windows are produced here; boundary layers that accept a user-supplied
// inclusive end date normalize it with NextDay before querying.
package period

import (
	"fmt"
	"time"
)

// MonthRef identifies a calendar month.
type MonthRef struct {
	Year  int
	Month time.Month
}

// Label returns a human-readable label such as "March 2025".
func (r MonthRef) Label() string {
	return fmt.Sprintf("%s %d", r.Month.String(), r.Year)
}

// MonthWindow returns the half-open window for a calendar month:
// [first day of the month, first day of the next month). December rolls the
// exclusive end over to January of the following year.
func MonthWindow(year int, month time.Month) (start, end time.Time) {
	start = time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(0, 1, 0)
	return start, end
}

// YearWindow returns the half-open window for a calendar year:
// [Jan 1 of the year, Jan 1 of the next year).
func YearWindow(year int) (start, end time.Time) {
	start = time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end = start.AddDate(1, 0, 0)
	return start, end
}

// Previous returns the month preceding the given one, wrapping January back
// to December of the prior year.
func Previous(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}

// TrailingMonths returns the n calendar months ending at the month containing
// now, in chronological (oldest-first) order. The walk itself proceeds
// newest-first, wrapping across year boundaries, and is reversed before
// returning.
func TrailingMonths(now time.Time, n int) []MonthRef {
	refs := make([]MonthRef, 0, n)
	for i := 0; i < n; i++ {
		year := now.Year()
		month := int(now.Month()) - i
		for month <= 0 {
			month += 12
			year--
		}
		refs = append(refs, MonthRef{Year: year, Month: time.Month(month)})
	}
	for i, j := 0, len(refs)-1; i < j; i, j = i+1, j-1 {
		refs[i], refs[j] = refs[j], refs[i]
	}
	return refs
}

// MonthsBack returns the first day of the month n months before the month
// containing now, wrapping across year boundaries.
func MonthsBack(now time.Time, n int) time.Time {
	year := now.Year()
	month := int(now.Month()) - n
	for month <= 0 {
		month += 12
		year--
	}
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
}

// NextDay advances a date by one day. It converts a user-supplied inclusive
// end date into the exclusive bound the store queries expect.
func NextDay(t time.Time) time.Time {
	return t.AddDate(0, 0, 1)
}
