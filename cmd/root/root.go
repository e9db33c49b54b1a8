// Package root contains the root command for the application
package root

import (
	"fmt"
	"sync"

	"fjacquet/moneybook/internal/config"
	"fjacquet/moneybook/internal/container"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var (
	// AppContainer holds the dependencies of the running command.
	// It is set by PersistentPreRunE.
	AppContainer *container.Container

	// Config is the viper instance the persistent flags are bound to.
	Config = viper.New()

	initOnce sync.Once

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "moneybook",
		Short: "A personal ledger of expenses and income.",
		Long: `moneybook keeps a ledger of expense and income records, each classified
under a category taxonomy. Without a subcommand it starts an interactive session
that accepts add, view, delete, view categories, find and exit.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: initialize,
		RunE:              runSession,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if AppContainer != nil {
				return AppContainer.Close()
			}
			return nil
		},
	}
)

// Init initializes the root command flags and binds them to the configuration.
func Init() {
	initOnce.Do(func() {
		flags := Cmd.PersistentFlags()
		flags.StringP("file", "f", "", "Ledger file (default records.txt)")
		flags.StringP("categories", "c", "", "Category taxonomy YAML file (default built-in taxonomy)")
		flags.String("log-level", "", "Log level (trace, debug, info, warn, error)")
		flags.String("log-format", "", "Log format (text, json)")

		bindFlag(flags, "ledger.file", "file")
		bindFlag(flags, "categories.file", "categories")
		bindFlag(flags, "log.level", "log-level")
		bindFlag(flags, "log.format", "log-format")
	})
}

// bindFlag makes the named flag override the configuration key when set.
func bindFlag(flags *pflag.FlagSet, key, name string) {
	if err := Config.BindPFlag(key, flags.Lookup(name)); err != nil {
		panic(fmt.Sprintf("cannot bind flag %s: %v", name, err))
	}
}

func initialize(cmd *cobra.Command, args []string) error {
	if _, err := config.LoadEnv(); err != nil {
		return err
	}
	cfg, err := config.InitializeConfigFrom(Config)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	c, err := container.NewContainer(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	AppContainer = c
	return nil
}

func runSession(cmd *cobra.Command, args []string) error {
	if AppContainer == nil {
		return fmt.Errorf("application container is not initialized")
	}
	s := AppContainer.NewSession(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
	return s.Run()
}
