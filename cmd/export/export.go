// Package export handles the CSV export command
package export

import (
	cmdcommon "fjacquet/moneybook/cmd/common"
	"fjacquet/moneybook/cmd/root"
	"fjacquet/moneybook/internal/common"

	"github.com/spf13/cobra"
)

var outputFile string

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export records to CSV",
	Long:  `Export every record of the ledger to a CSV file with a category,description,amount header.`,
	Args:  cobra.NoArgs,
	RunE:  exportFunc,
}

func init() {
	Cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output CSV file (required)")
	_ = Cmd.MarkFlagRequired("output")
}

func exportFunc(cmd *cobra.Command, args []string) error {
	l, err := cmdcommon.LoadLedger(root.AppContainer)
	if err != nil {
		return err
	}
	return common.WriteRecordsToCSV(l.Records(), outputFile, root.AppContainer.GetDelimiter(), root.AppContainer.GetLogger())
}
