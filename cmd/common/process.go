// Package common contains shared functionality for command handlers
package common

import (
	"errors"
	"fmt"

	"fjacquet/moneybook/internal/container"
	"fjacquet/moneybook/internal/ledger"
	"fjacquet/moneybook/internal/store"
)

// LoadLedger loads the ledger for a one-shot command. Unlike the interactive
// session, a missing ledger file is an error here.
func LoadLedger(c *container.Container) (*ledger.Ledger, error) {
	if c == nil {
		return nil, fmt.Errorf("application container is not initialized")
	}
	ledgerStore := c.GetLedgerStore()
	l, err := ledgerStore.Load()
	if errors.Is(err, store.ErrNoLedger) {
		return nil, fmt.Errorf("no ledger file at %s, run moneybook to create one: %w", ledgerStore.FilePath, err)
	}
	if err != nil {
		return nil, err
	}
	return l, nil
}
