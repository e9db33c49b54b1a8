// Package categories handles the command printing the category taxonomy
package categories

import (
	"fmt"

	"fjacquet/moneybook/cmd/root"
	"fjacquet/moneybook/internal/logging"
	"fjacquet/moneybook/internal/report"

	"github.com/spf13/cobra"
)

var dumpFile string

// Cmd represents the categories command
var Cmd = &cobra.Command{
	Use:   "categories",
	Short: "Print the category taxonomy",
	Long: `Print the category taxonomy depth-first, indented by level. With --dump the
taxonomy in use is also written as YAML, ready to be edited and passed back
with --categories.`,
	Args: cobra.NoArgs,
	RunE: categoriesFunc,
}

func init() {
	Cmd.Flags().StringVarP(&dumpFile, "dump", "d", "", "Write the taxonomy to this YAML file")
}

func categoriesFunc(cmd *cobra.Command, args []string) error {
	if root.AppContainer == nil {
		return fmt.Errorf("application container is not initialized")
	}
	tree := root.AppContainer.GetCategories()

	if err := report.NewReportGenerator(cmd.OutOrStdout()).Categories(tree.Walk()); err != nil {
		return err
	}

	if dumpFile == "" {
		return nil
	}
	if err := root.AppContainer.GetCategoryStore().SaveCategories(tree.Config(), dumpFile); err != nil {
		return err
	}
	root.AppContainer.GetLogger().Info("Wrote categories file",
		logging.Field{Key: logging.FieldOutputFile, Value: dumpFile})
	return nil
}
