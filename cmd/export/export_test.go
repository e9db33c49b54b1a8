package export_test

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/moneybook/cmd/export"
	"fjacquet/moneybook/cmd/root"
	"fjacquet/moneybook/internal/config"
	"fjacquet/moneybook/internal/container"
	"fjacquet/moneybook/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setContainer(t *testing.T, delimiter string) {
	t.Helper()
	cfg := &config.Config{}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.CSV.Delimiter = delimiter
	cfg.Ledger.File = filepath.Join(t.TempDir(), "records.txt")
	require.NoError(t, os.WriteFile(cfg.Ledger.File, []byte("100\nmeal lunch -20\nsalary march 500\n"), 0600))
	c, err := container.NewContainerWithLogger(cfg, logging.NewMockLogger())
	require.NoError(t, err)

	previous := root.AppContainer
	root.AppContainer = c
	t.Cleanup(func() { root.AppContainer = previous })
}

func TestExportCommand_Flags(t *testing.T) {
	outputFlag := export.Cmd.Flags().Lookup("output")
	require.NotNil(t, outputFlag)
	assert.Equal(t, "o", outputFlag.Shorthand)
	assert.Contains(t, outputFlag.Usage, "required")
}

func TestExportCommand_Run(t *testing.T) {
	tests := []struct {
		delimiter string
		expected  string
	}{
		{",", "category,description,amount\nmeal,lunch,-20\nsalary,march,500\n"},
		{";", "category;description;amount\nmeal;lunch;-20\nsalary;march;500\n"},
	}

	for _, tt := range tests {
		t.Run(tt.delimiter, func(t *testing.T) {
			setContainer(t, tt.delimiter)
			csvFile := filepath.Join(t.TempDir(), "records.csv")
			require.NoError(t, export.Cmd.Flags().Set("output", csvFile))

			require.NoError(t, export.Cmd.RunE(export.Cmd, nil))

			data, err := os.ReadFile(csvFile)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(data))
		})
	}
}
