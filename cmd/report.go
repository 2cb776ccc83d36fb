package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bnema/bank-accounts-cli/internal/application"
	"github.com/bnema/bank-accounts-cli/internal/domain"
	"github.com/spf13/cobra"
)

type reportJSON struct {
	Kind    application.ReportKind `json:"kind"`
	Title   string                 `json:"title"`
	Entries []entryJSON            `json:"entries"`
}

type entryJSON struct {
	Type        string  `json:"type"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	DOB         string  `json:"dob"`
	Balance     float64 `json:"balance"`
	Fee         float64 `json:"fee"`
	Interest    float64 `json:"interest"`
	Campus      string  `json:"campus,omitempty"`
	Loyal       bool    `json:"loyal,omitempty"`
	Withdrawals *int    `json:"withdrawals,omitempty"`
}

func newReportCmd(app *app) *cobra.Command {
	var (
		seedPath string
		pretty   bool
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:       "report <sorted|fees|apply>",
		Short:     "Print a report over the seeded accounts",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"sorted", "fees", "apply"},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseReportKind(args[0])
			if err != nil {
				return err
			}

			service, err := app.newService(cmd.Context(), seedPath)
			if err != nil {
				return err
			}

			if !asJSON && !pretty {
				text, err := service.ReportText(kind)
				if err != nil {
					return err
				}
				_, err = fmt.Fprint(cmd.OutOrStdout(), text)
				return err
			}

			report, err := service.Report(kind)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(toReportJSON(report))
			}

			rendered, err := app.reportRenderer(report, app.renderOptions())
			if err != nil {
				return fmt.Errorf("render report: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().StringVar(&seedPath, "seed", "", "TOML file with the accounts to report on")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Render the report as a styled table")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output the report as JSON")
	cmd.MarkFlagsMutuallyExclusive("pretty", "json")

	return cmd
}

func parseReportKind(raw string) (application.ReportKind, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "sorted", "p":
		return application.ReportSorted, nil
	case "fees", "pi":
		return application.ReportFees, nil
	case "apply", "updated", "ub":
		return application.ReportUpdated, nil
	default:
		return "", fmt.Errorf("unknown report %q: expected sorted, fees or apply", raw)
	}
}

func toReportJSON(report application.Report) reportJSON {
	out := reportJSON{
		Kind:    report.Kind,
		Title:   report.Title,
		Entries: make([]entryJSON, 0, len(report.Entries)),
	}

	for _, entry := range report.Entries {
		holder := entry.Account.Holder()
		item := entryJSON{
			Type:      entry.Account.Kind().Code(),
			FirstName: holder.FirstName,
			LastName:  holder.LastName,
			DOB:       domain.FormatDate(holder.DOB),
			Balance:   entry.Account.Balance(),
			Fee:       entry.Fee,
			Interest:  entry.Interest,
		}

		switch a := entry.Account.(type) {
		case *domain.CollegeChecking:
			item.Campus = a.Campus.String()
		case *domain.Savings:
			item.Loyal = a.Loyal()
		case domain.MoneyMarketAccount:
			item.Loyal = a.Loyal()
			withdrawals := a.Withdrawals()
			item.Withdrawals = &withdrawals
		}

		out.Entries = append(out.Entries, item)
	}

	return out
}
