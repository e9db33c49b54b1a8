package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate runs the test in an empty directory with an empty HOME and no
// MONEYBOOK_ variables, so no real configuration leaks in.
func isolate(t *testing.T) string {
	t.Helper()
	for _, key := range []string{
		"MONEYBOOK_LOG_LEVEL",
		"MONEYBOOK_LOG_FORMAT",
		"MONEYBOOK_LEDGER_FILE",
		"MONEYBOOK_LEDGER_BACKUP_ENABLED",
		"MONEYBOOK_CATEGORIES_FILE",
		"MONEYBOOK_SESSION_SAVE_ON_EOF",
		"MONEYBOOK_CSV_DELIMITER",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)
	return dir
}

func TestInitializeConfig_Defaults(t *testing.T) {
	isolate(t)

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, "text", config.Log.Format)
	assert.Equal(t, "records.txt", config.Ledger.File)
	assert.False(t, config.Ledger.BackupEnabled)
	assert.Equal(t, "", config.Categories.File)
	assert.True(t, config.Session.SaveOnEOF)
	assert.Equal(t, ",", config.CSV.Delimiter)
}

func TestInitializeConfig_EnvironmentVariables(t *testing.T) {
	isolate(t)

	t.Setenv("MONEYBOOK_LOG_LEVEL", "debug")
	t.Setenv("MONEYBOOK_LOG_FORMAT", "json")
	t.Setenv("MONEYBOOK_LEDGER_FILE", "/tmp/ledger.txt")
	t.Setenv("MONEYBOOK_LEDGER_BACKUP_ENABLED", "true")
	t.Setenv("MONEYBOOK_SESSION_SAVE_ON_EOF", "false")
	t.Setenv("MONEYBOOK_CSV_DELIMITER", ";")

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "json", config.Log.Format)
	assert.Equal(t, "/tmp/ledger.txt", config.Ledger.File)
	assert.True(t, config.Ledger.BackupEnabled)
	assert.False(t, config.Session.SaveOnEOF)
	assert.Equal(t, ";", config.CSV.Delimiter)
}

func TestInitializeConfig_ConfigFile(t *testing.T) {
	dir := isolate(t)

	configContent := `
log:
  level: "warn"
ledger:
  file: "books/2024.txt"
categories:
  file: "taxonomy.yaml"
csv:
  delimiter: "|"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(configContent), 0600))

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "warn", config.Log.Level)
	assert.Equal(t, "books/2024.txt", config.Ledger.File)
	assert.Equal(t, "taxonomy.yaml", config.Categories.File)
	assert.Equal(t, "|", config.CSV.Delimiter)
}

func TestInitializeConfig_HierarchicalPrecedence(t *testing.T) {
	dir := isolate(t)

	configContent := `
log:
  level: "warn"
ledger:
  file: "from-file.txt"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(configContent), 0600))
	t.Setenv("MONEYBOOK_LOG_LEVEL", "error")

	config, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "error", config.Log.Level)
	assert.Equal(t, "from-file.txt", config.Ledger.File)
}

func TestInitializeConfigFrom_ExplicitValuesWin(t *testing.T) {
	isolate(t)
	t.Setenv("MONEYBOOK_LEDGER_FILE", "env.txt")

	v := viper.New()
	v.Set("ledger.file", "flag.txt")

	config, err := InitializeConfigFrom(v)
	require.NoError(t, err)
	assert.Equal(t, "flag.txt", config.Ledger.File)
}

func TestInitializeConfig_MalformedFile(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("log: [unclosed"), 0600))

	_, err := InitializeConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestValidateConfig_InvalidValues(t *testing.T) {
	tests := []struct {
		name         string
		modifyConfig func(*Config)
		expectError  string
	}{
		{
			name:         "invalid log level",
			modifyConfig: func(c *Config) { c.Log.Level = "invalid" },
			expectError:  "invalid log level",
		},
		{
			name:         "invalid log format",
			modifyConfig: func(c *Config) { c.Log.Format = "xml" },
			expectError:  "invalid log format",
		},
		{
			name:         "empty ledger file",
			modifyConfig: func(c *Config) { c.Ledger.File = "  " },
			expectError:  "ledger.file must not be empty",
		},
		{
			name:         "multi character delimiter",
			modifyConfig: func(c *Config) { c.CSV.Delimiter = ";;" },
			expectError:  "CSV delimiter must be a single character",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &Config{}
			config.Log.Level = "info"
			config.Log.Format = "text"
			config.Ledger.File = "records.txt"
			config.CSV.Delimiter = ","

			require.NoError(t, validateConfig(config))

			tt.modifyConfig(config)
			err := validateConfig(config)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectError)
		})
	}
}
