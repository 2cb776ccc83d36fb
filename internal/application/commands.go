package application

import "github.com/bnema/bank-accounts-cli/internal/domain"

type ReportKind string

const (
	ReportSorted  ReportKind = "sorted"
	ReportFees    ReportKind = "fees"
	ReportUpdated ReportKind = "updated"
)

func (k ReportKind) Valid() bool {
	switch k {
	case ReportSorted, ReportFees, ReportUpdated:
		return true
	default:
		return false
	}
}

// Command is one transaction understood by Service.Execute.
type Command interface {
	isCommand()
}

type OpenCommand struct {
	Kind   domain.Kind
	Holder domain.Profile
	Amount float64
	Campus domain.Campus
	Loyal  bool
}

type CloseCommand struct {
	Kind   domain.Kind
	Holder domain.Profile
}

type DepositCommand struct {
	Kind   domain.Kind
	Holder domain.Profile
	Amount float64
}

type WithdrawCommand struct {
	Kind   domain.Kind
	Holder domain.Profile
	Amount float64
}

type PrintCommand struct {
	Report ReportKind
}

type QuitCommand struct{}

func (OpenCommand) isCommand()     {}
func (CloseCommand) isCommand()    {}
func (DepositCommand) isCommand()  {}
func (WithdrawCommand) isCommand() {}
func (PrintCommand) isCommand()    {}
func (QuitCommand) isCommand()     {}
