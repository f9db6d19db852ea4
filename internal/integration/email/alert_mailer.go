// Package email delivers budget alert notifications via Resend.
package email

import (
	"fmt"
	"strings"

	"github.com/pocketledger/backend/internal/domain/entity"
)

// renderAlertEmail formats a batch of budget alerts as one email body.
func renderAlertEmail(alerts []entity.BudgetAlert) (subject, html, text string) {
	subject = fmt.Sprintf("Budget alert: %d budget(s) need attention", len(alerts))
	if len(alerts) == 1 {
		subject = "Budget alert: " + alerts[0].CategoryName
	}

	var htmlBody, textBody strings.Builder
	htmlBody.WriteString("<h2>Budget Alerts</h2><ul>")
	textBody.WriteString("Budget Alerts\n\n")

	for _, alert := range alerts {
		htmlBody.WriteString("<li>")
		if alert.Type == entity.BudgetAlertOverBudget {
			htmlBody.WriteString("<strong>")
			htmlBody.WriteString(alert.Message)
			htmlBody.WriteString("</strong>")
		} else {
			htmlBody.WriteString(alert.Message)
		}
		htmlBody.WriteString("</li>")

		textBody.WriteString("- ")
		textBody.WriteString(alert.Message)
		textBody.WriteString("\n")
	}
	htmlBody.WriteString("</ul>")

	return subject, htmlBody.String(), textBody.String()
}
