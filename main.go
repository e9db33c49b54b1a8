package main

import (
	"fmt"
	"os"

	"fjacquet/moneybook/cmd/categories"
	"fjacquet/moneybook/cmd/export"
	"fjacquet/moneybook/cmd/find"
	"fjacquet/moneybook/cmd/root"
	"fjacquet/moneybook/cmd/view"
	"fjacquet/moneybook/internal/config"
)

func init() {
	// 1. Load environment variables silently before the configuration is read
	_, _ = config.LoadEnv()

	// 2. Initialize root command flags
	root.Init()

	// 3. Add all subcommands
	root.Cmd.AddCommand(view.Cmd)
	root.Cmd.AddCommand(categories.Cmd)
	root.Cmd.AddCommand(find.Cmd)
	root.Cmd.AddCommand(export.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
