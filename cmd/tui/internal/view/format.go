package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/contaro/docintel/internal/analyzer"
	"github.com/contaro/docintel/internal/document"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimStyle     = lipgloss.NewStyle().Faint(true)
)

// FormatCents formats an amount stored as cents into a human-readable string.
func FormatCents(cents int64) string {
	return fmt.Sprintf("%.2f", float64(cents)/100.0)
}

// FormatDate formats a time.Time into YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}

func optString(s *string) string {
	if s == nil {
		return dimStyle.Render("—")
	}

	return *s
}

func optCents(cents *int64) string {
	if cents == nil {
		return dimStyle.Render("—")
	}

	return FormatCents(*cents)
}

func optDate(t *time.Time) string {
	if t == nil {
		return dimStyle.Render("—")
	}

	return FormatDate(*t)
}

// RenderResult renders a full analysis for the terminal.
func RenderResult(res *analyzer.Result) string {
	var b strings.Builder

	doc := res.Document

	b.WriteString(headingStyle.Render("Document") + "\n")
	fmt.Fprintf(&b, "  Type:       %s\n", res.Type)
	fmt.Fprintf(&b, "  Vendor:     %s\n", optString(doc.Vendor))
	fmt.Fprintf(&b, "  Number:     %s\n", optString(doc.Number))
	fmt.Fprintf(&b, "  Issued:     %s\n", optDate(doc.IssueDate))
	fmt.Fprintf(&b, "  Due:        %s\n", optDate(doc.DueDate))
	fmt.Fprintf(&b, "  Subtotal:   %s\n", optCents(doc.Subtotal))
	fmt.Fprintf(&b, "  Tax:        %s\n", optCents(doc.Tax))
	fmt.Fprintf(&b, "  Total:      %s\n", optCents(doc.Total))
	fmt.Fprintf(&b, "  Confidence: %.0f%%\n", res.Confidence)

	if len(doc.LineItems) > 0 {
		b.WriteString("\n" + headingStyle.Render("Line Items") + "\n")

		for _, item := range doc.LineItems {
			fmt.Fprintf(&b, "  %s  x%s  %s\n",
				item.Description, optWhole(item.Quantity), FormatCents(item.Amount))
		}
	}

	if res.Account != nil {
		b.WriteString("\n" + headingStyle.Render("Suggested Account") + "\n")
		fmt.Fprintf(&b, "  %s  %s\n", res.Account.Code, res.Account.Name)
	}

	if res.Journal != nil {
		b.WriteString("\n" + headingStyle.Render("Journal Entry") + "\n")
		b.WriteString(renderEntry(*res.Journal))
	}

	b.WriteString("\n" + renderValidation(res.Validation))

	return b.String()
}

func renderEntry(entry document.Entry) string {
	var b strings.Builder

	for _, l := range entry.Lines {
		side := "Dr"
		amount := l.Debit

		if l.Credit > 0 {
			side = "Cr"
			amount = l.Credit
		}

		fmt.Fprintf(&b, "  %s  %-6s %-28s %10s\n", side, l.AccountCode, l.AccountName, FormatCents(amount))
	}

	return b.String()
}

func renderValidation(v document.Validation) string {
	var b strings.Builder

	if v.Valid {
		b.WriteString(okStyle.Render("✓ valid") + "\n")
	} else {
		b.WriteString(errorStyle.Render("✗ invalid") + "\n")
	}

	for _, e := range v.Errors {
		b.WriteString(errorStyle.Render("  error: "+e) + "\n")
	}

	for _, w := range v.Warnings {
		b.WriteString(warnStyle.Render("  warning: "+w) + "\n")
	}

	return b.String()
}

func optWhole(n *int64) string {
	if n == nil {
		return "?"
	}

	return fmt.Sprintf("%d", *n)
}
