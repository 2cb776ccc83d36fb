package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/bnema/bank-accounts-cli/internal/adapters/script"
	"github.com/bnema/bank-accounts-cli/internal/application"
	"github.com/spf13/cobra"
)

func newRunCmd(app *app) *cobra.Command {
	var (
		seedPath string
		pretty   bool
	)

	cmd := &cobra.Command{
		Use:   "run [script]",
		Short: "Run a transaction script, reading stdin when no file is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := app.newService(cmd.Context(), seedPath)
			if err != nil {
				return err
			}

			var in io.Reader = cmd.InOrStdin()
			if len(args) == 1 {
				file, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open script: %w", err)
				}
				defer file.Close()
				in = file
			}

			var renderer script.ReportRenderer
			if pretty {
				renderer = func(report application.Report) (string, error) {
					return app.reportRenderer(report, app.renderOptions())
				}
			}

			return script.NewInterpreter(service, renderer, app.logger).Run(cmd.Context(), in, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&seedPath, "seed", "", "TOML file with accounts to open before the script runs")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Render P, PI and UB reports as styled tables")

	return cmd
}
