package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnema/bank-accounts-cli/internal/application"
	"github.com/bnema/bank-accounts-cli/internal/domain"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

type RenderOptions struct {
	Now time.Time
}

func renderView(report application.Report, opts RenderOptions, s styles) string {
	header := fmt.Sprintf("accounts: %d", len(report.Entries))
	if !opts.Now.IsZero() {
		header += " | as of " + opts.Now.Format("Jan 2, 2006")
	}

	lines := []string{
		s.title.Render(report.Title),
		s.header.Render(header),
	}

	if report.Empty() {
		lines = append(lines, s.empty.Render("Account Database is empty!"))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	lines = append(lines, renderTable(report, s))

	if total := totalBalance(report.Entries); total < 0 {
		lines = append(lines, s.negative.Render("total: "+domain.FormatCurrency(total)))
	} else {
		lines = append(lines, s.footer.Render("total: "+domain.FormatCurrency(total)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderTable(report application.Report, s styles) string {
	withFees := report.Kind == application.ReportFees || report.Kind == application.ReportUpdated

	columns := []table.Column{
		{Title: "Type", Width: 16},
		{Title: "Holder", Width: 22},
		{Title: "DOB", Width: 10},
		{Title: "Balance", Width: 14},
	}
	if withFees {
		columns = append(columns,
			table.Column{Title: "Fee", Width: 10},
			table.Column{Title: "Interest", Width: 10},
		)
	}
	columns = append(columns, table.Column{Title: "Details", Width: detailsWidth(report.Entries)})

	rows := make([]table.Row, 0, len(report.Entries))
	for _, entry := range report.Entries {
		holder := entry.Account.Holder()
		row := table.Row{
			entry.Account.Kind().String(),
			strings.TrimSpace(holder.FirstName + " " + holder.LastName),
			domain.FormatDate(holder.DOB),
			domain.FormatCurrency(entry.Account.Balance()),
		}
		if withFees {
			row = append(row, domain.FormatCurrency(entry.Fee), domain.FormatCurrency(entry.Interest))
		}
		row = append(row, details(entry.Account))
		rows = append(rows, row)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)+2),
		table.WithFocused(false),
	)
	t.SetStyles(s.table)

	return t.View()
}

func details(account domain.Account) string {
	parts := make([]string, 0, 2)
	switch a := account.(type) {
	case *domain.CollegeChecking:
		parts = append(parts, a.Campus.String())
	case *domain.Savings:
		if a.Loyal() {
			parts = append(parts, "loyal")
		}
	case domain.MoneyMarketAccount:
		if a.Loyal() {
			parts = append(parts, "loyal")
		}
		parts = append(parts, fmt.Sprintf("withdrawals: %d", a.Withdrawals()))
	}
	return strings.Join(parts, ", ")
}

func detailsWidth(entries []domain.Entry) int {
	width := len("Details")
	for _, entry := range entries {
		width = max(width, lipgloss.Width(details(entry.Account)))
	}
	return width
}

func totalBalance(entries []domain.Entry) float64 {
	total := 0.0
	for _, entry := range entries {
		total += entry.Account.Balance()
	}
	return total
}
