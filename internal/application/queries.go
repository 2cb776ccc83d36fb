package application

import "github.com/bnema/bank-accounts-cli/internal/domain"

type Report struct {
	Kind    ReportKind
	Title   string
	Entries []domain.Entry
}

func (r Report) Empty() bool {
	return len(r.Entries) == 0
}

func reportTitle(kind ReportKind) string {
	switch kind {
	case ReportFees:
		return "Accounts with fee and monthly interest"
	case ReportUpdated:
		return "Accounts with fees and interests applied"
	default:
		return "Accounts sorted by account type and profile"
	}
}
