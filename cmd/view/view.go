// Package view handles the command printing the ledger
package view

import (
	"fjacquet/moneybook/cmd/common"
	"fjacquet/moneybook/cmd/root"
	"fjacquet/moneybook/internal/report"

	"github.com/spf13/cobra"
)

// Cmd represents the view command
var Cmd = &cobra.Command{
	Use:   "view",
	Short: "Print all records and the current balance",
	Long:  `Print every expense and income record of the ledger in a table, followed by the current balance.`,
	Args:  cobra.NoArgs,
	RunE:  viewFunc,
}

func viewFunc(cmd *cobra.Command, args []string) error {
	l, err := common.LoadLedger(root.AppContainer)
	if err != nil {
		return err
	}
	return report.NewReportGenerator(cmd.OutOrStdout()).Ledger(l)
}
