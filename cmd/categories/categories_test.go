package categories_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/moneybook/cmd/categories"
	"fjacquet/moneybook/cmd/root"
	"fjacquet/moneybook/internal/config"
	"fjacquet/moneybook/internal/container"
	"fjacquet/moneybook/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setContainer(t *testing.T, categoriesFile string) {
	t.Helper()
	cfg := &config.Config{}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.Ledger.File = filepath.Join(t.TempDir(), "records.txt")
	cfg.Categories.File = categoriesFile
	c, err := container.NewContainerWithLogger(cfg, logging.NewMockLogger())
	require.NoError(t, err)

	previous := root.AppContainer
	root.AppContainer = c
	t.Cleanup(func() { root.AppContainer = previous })
}

func TestCategoriesCommand_Flags(t *testing.T) {
	dumpFlag := categories.Cmd.Flags().Lookup("dump")
	require.NotNil(t, dumpFlag)
	assert.Equal(t, "d", dumpFlag.Shorthand)
	assert.Equal(t, "", dumpFlag.DefValue)
}

func TestCategoriesCommand_Run(t *testing.T) {
	setContainer(t, "")

	var out bytes.Buffer
	categories.Cmd.SetOut(&out)
	t.Cleanup(func() { categories.Cmd.SetOut(nil) })

	require.NoError(t, categories.Cmd.RunE(categories.Cmd, nil))

	expected := "- expense\n" +
		"  - food\n" +
		"    - meal\n" +
		"    - snack\n" +
		"    - drink\n" +
		"  - transportation\n" +
		"    - bus\n" +
		"    - railway\n" +
		"- income\n" +
		"  - salary\n" +
		"  - bonus\n"
	assert.Equal(t, expected, out.String())
}

func TestCategoriesCommand_DumpRoundTrip(t *testing.T) {
	setContainer(t, "")
	dumpFile := filepath.Join(t.TempDir(), "categories.yaml")

	var out bytes.Buffer
	categories.Cmd.SetOut(&out)
	require.NoError(t, categories.Cmd.Flags().Set("dump", dumpFile))
	t.Cleanup(func() {
		categories.Cmd.SetOut(nil)
		_ = categories.Cmd.Flags().Set("dump", "")
	})

	require.NoError(t, categories.Cmd.RunE(categories.Cmd, nil))
	printed := out.String()

	_, err := os.Stat(dumpFile)
	require.NoError(t, err)

	// The dumped file loads back into the same taxonomy.
	require.NoError(t, categories.Cmd.Flags().Set("dump", ""))
	setContainer(t, dumpFile)
	out.Reset()
	require.NoError(t, categories.Cmd.RunE(categories.Cmd, nil))
	assert.Equal(t, printed, out.String())
}
