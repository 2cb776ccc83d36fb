package script

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/bnema/bank-accounts-cli/internal/application"
	"github.com/bnema/bank-accounts-cli/internal/domain"
)

// ErrBlankLine is returned by Parse for lines without tokens.
var ErrBlankLine = errors.New("blank line")

// Parse reads one transaction line, for example
//
//	O CC Jane Doe 2/19/2003 500 1
//	W MM Jane Doe 2/19/2000 100.50
//	PI
func Parse(line string) (application.Command, error) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return nil, ErrBlankLine
	}

	verb, args := tokens[0], tokens[1:]
	switch verb {
	case "O":
		return parseOpen(args)
	case "C":
		kind, holder, _, err := parseTarget(args, false, "Missing data for closing an account.")
		if err != nil {
			return nil, err
		}
		return application.CloseCommand{Kind: kind, Holder: holder}, nil
	case "D":
		kind, holder, amount, err := parseTarget(args, true, "Missing data for depositing.")
		if err != nil {
			return nil, err
		}
		return application.DepositCommand{Kind: kind, Holder: holder, Amount: amount}, nil
	case "W":
		kind, holder, amount, err := parseTarget(args, true, "Missing data for withdrawing.")
		if err != nil {
			return nil, err
		}
		return application.WithdrawCommand{Kind: kind, Holder: holder, Amount: amount}, nil
	case "P":
		return application.PrintCommand{Report: application.ReportSorted}, nil
	case "PI":
		return application.PrintCommand{Report: application.ReportFees}, nil
	case "UB":
		return application.PrintCommand{Report: application.ReportUpdated}, nil
	case "Q":
		return application.QuitCommand{}, nil
	default:
		return nil, rejected(domain.ErrInvalidCommand, "Invalid command!")
	}
}

func parseOpen(args []string) (application.Command, error) {
	const missing = "Missing data for opening an account."

	kind, holder, amount, err := parseTarget(args, true, missing)
	if err != nil {
		return nil, err
	}

	cmd := application.OpenCommand{Kind: kind, Holder: holder, Amount: amount}
	switch kind {
	case domain.KindCollegeChecking:
		if len(args) < 6 {
			return nil, rejected(domain.ErrMissingData, missing)
		}
		campus, err := domain.ParseCampus(args[5])
		if err != nil {
			return nil, rejected(err, "Invalid campus code.")
		}
		cmd.Campus = campus
	case domain.KindSavings:
		if len(args) < 6 {
			return nil, rejected(domain.ErrMissingData, missing)
		}
		switch args[5] {
		case "1":
			cmd.Loyal = true
		case "0":
		default:
			return nil, rejected(domain.ErrMissingData, "Invalid loyal customer status.")
		}
	}

	return cmd, nil
}

// parseTarget reads "<kind> <first> <last> <dob> [amount]".
func parseTarget(args []string, withAmount bool, missing string) (domain.Kind, domain.Profile, float64, error) {
	need := 4
	if withAmount {
		need = 5
	}
	if len(args) < need {
		return 0, domain.Profile{}, 0, rejected(domain.ErrMissingData, "%s", missing)
	}

	kind, err := domain.ParseKind(args[0])
	if err != nil {
		return 0, domain.Profile{}, 0, rejected(err, "%s - invalid account type.", args[0])
	}

	dob, err := domain.ParseDate(args[3])
	if err != nil {
		return 0, domain.Profile{}, 0, rejected(err, "DOB invalid: %s not a valid calendar date!", args[3])
	}
	holder := domain.Profile{FirstName: args[1], LastName: args[2], DOB: dob}

	if !withAmount {
		return kind, holder, 0, nil
	}

	amount, err := strconv.ParseFloat(args[4], 64)
	if err != nil || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, domain.Profile{}, 0, rejected(domain.ErrInvalidAmount, "Not a valid amount.")
	}

	return kind, holder, amount, nil
}

func rejected(reason error, format string, args ...any) error {
	return &application.RejectedError{Reason: reason, Message: fmt.Sprintf(format, args...)}
}
