package root_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fjacquet/moneybook/cmd/root"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "moneybook", root.Cmd.Use)
	assert.Contains(t, root.Cmd.Short, "personal ledger")
	assert.Contains(t, root.Cmd.Long, "interactive session")
	assert.NotNil(t, root.Cmd.RunE)
	assert.NotNil(t, root.Cmd.PersistentPreRunE)
	assert.NotNil(t, root.Cmd.PersistentPostRunE)
}

func TestRootCommand_Flags(t *testing.T) {
	root.Init()
	root.Init()

	tests := []struct {
		name      string
		shorthand string
	}{
		{"file", "f"},
		{"categories", "c"},
		{"log-level", ""},
		{"log-format", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag := root.Cmd.PersistentFlags().Lookup(tt.name)
			require.NotNil(t, flag)
			assert.Equal(t, tt.shorthand, flag.Shorthand)
			assert.Equal(t, "", flag.DefValue)
			assert.NotEmpty(t, flag.Usage)
		})
	}
}

func TestRootCommand_RunsSession(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	root.Init()

	ledgerFile := filepath.Join(t.TempDir(), "records.txt")
	var out, errOut bytes.Buffer
	root.Cmd.SetArgs([]string{"--file", ledgerFile})
	root.Cmd.SetIn(strings.NewReader("100\nadd\nfood lunch -20\nadd\nsalary march 500\nview\nexit\n"))
	root.Cmd.SetOut(&out)
	root.Cmd.SetErr(&errOut)
	t.Cleanup(func() {
		root.Cmd.SetArgs(nil)
		root.Cmd.SetIn(nil)
		root.Cmd.SetOut(nil)
		root.Cmd.SetErr(nil)
	})

	require.NoError(t, root.Cmd.Execute())

	assert.Contains(t, out.String(), "How much money do you have? ")
	assert.Contains(t, out.String(), "Now you have 580 dollars.")
	require.NotNil(t, root.AppContainer)
	assert.Equal(t, ledgerFile, root.AppContainer.GetConfig().Ledger.File)

	data, err := os.ReadFile(ledgerFile)
	require.NoError(t, err)
	assert.Equal(t, "100\nfood lunch -20\nsalary march 500\n", string(data))
}
