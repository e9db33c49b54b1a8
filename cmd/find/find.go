// Package find handles the command searching records by category
package find

import (
	"fjacquet/moneybook/cmd/common"
	"fjacquet/moneybook/cmd/root"
	"fjacquet/moneybook/internal/logging"
	"fjacquet/moneybook/internal/report"

	"github.com/spf13/cobra"
)

// Cmd represents the find command
var Cmd = &cobra.Command{
	Use:   "find <category>",
	Short: "Print the records of a category and its subcategories",
	Long: `Print the records whose category is the given category or any of its
subcategories, followed by the total of their amounts.`,
	Args: cobra.ExactArgs(1),
	RunE: findFunc,
}

func findFunc(cmd *cobra.Command, args []string) error {
	l, err := common.LoadLedger(root.AppContainer)
	if err != nil {
		return err
	}

	category := args[0]
	labels := root.AppContainer.GetCategories().Subtree(category)
	if len(labels) == 0 {
		root.AppContainer.GetLogger().Warn("Category is not in the taxonomy",
			logging.Field{Key: logging.FieldCategory, Value: category})
	}

	records, total := l.FindByCategories(labels)
	return report.NewReportGenerator(cmd.OutOrStdout()).Found(records, total)
}
