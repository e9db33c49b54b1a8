package view_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/moneybook/cmd/root"
	"fjacquet/moneybook/cmd/view"
	"fjacquet/moneybook/internal/config"
	"fjacquet/moneybook/internal/container"
	"fjacquet/moneybook/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setContainer(t *testing.T, content string) {
	t.Helper()
	cfg := &config.Config{}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.Ledger.File = filepath.Join(t.TempDir(), "records.txt")
	if content != "" {
		require.NoError(t, os.WriteFile(cfg.Ledger.File, []byte(content), 0600))
	}
	c, err := container.NewContainerWithLogger(cfg, logging.NewMockLogger())
	require.NoError(t, err)

	previous := root.AppContainer
	root.AppContainer = c
	t.Cleanup(func() { root.AppContainer = previous })
}

func TestViewCommand_Metadata(t *testing.T) {
	assert.Equal(t, "view", view.Cmd.Use)
	assert.Contains(t, view.Cmd.Short, "current balance")
	assert.NotNil(t, view.Cmd.RunE)
}

func TestViewCommand_Run(t *testing.T) {
	setContainer(t, "100\nmeal lunch -20\nsalary march 500\n")

	var out bytes.Buffer
	view.Cmd.SetOut(&out)
	t.Cleanup(func() { view.Cmd.SetOut(nil) })

	require.NoError(t, view.Cmd.RunE(view.Cmd, nil))

	assert.Contains(t, out.String(), "Here's your expense and income records:\n")
	assert.Contains(t, out.String(), "salary          march                   500\n")
	assert.Contains(t, out.String(), "Now you have 580 dollars.\n")
}

func TestViewCommand_NoLedger(t *testing.T) {
	setContainer(t, "")

	err := view.Cmd.RunE(view.Cmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no ledger file")
}
