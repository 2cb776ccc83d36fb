package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "ba",
		Short:         "Bank Accounts CLI (ba): run transactions against an in-memory ledger",
		Long:          "ba (Bank Accounts CLI) opens, closes, deposits to and withdraws from checking, college checking, savings and money market accounts, then prints sorted, fee and monthly statement reports.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(app),
		newReportCmd(app),
	)

	return rootCmd
}
