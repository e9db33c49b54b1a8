// Package container provides dependency injection for the moneybook application.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"fmt"
	"io"

	"fjacquet/moneybook/internal/categories"
	"fjacquet/moneybook/internal/common"
	"fjacquet/moneybook/internal/config"
	"fjacquet/moneybook/internal/logging"
	"fjacquet/moneybook/internal/session"
	"fjacquet/moneybook/internal/store"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation: all fields are private and can only
// be accessed through getter methods.
type Container struct {
	logger        logging.Logger
	config        *config.Config
	categoryStore *store.CategoryStore
	ledgerStore   *store.LedgerStore
	categories    *categories.Tree
}

// NewContainer creates and wires all application dependencies.
// This is the main entry point for dependency injection in the application.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	return NewContainerWithLogger(cfg, logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format))
}

// NewContainerWithLogger is NewContainer with an externally supplied logger.
func NewContainerWithLogger(cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	categoryStore := store.NewCategoryStore(cfg.Categories.File, logger)
	tree, err := loadTaxonomy(categoryStore, logger)
	if err != nil {
		return nil, err
	}

	ledgerStore := store.NewLedgerStore(cfg.Ledger.File, cfg.Ledger.BackupEnabled, logger)

	logger.Debug("Container initialized successfully",
		logging.Field{Key: logging.FieldFile, Value: cfg.Ledger.File},
		logging.Field{Key: logging.FieldCount, Value: len(tree.Labels())})

	return &Container{
		logger:        logger,
		config:        cfg,
		categoryStore: categoryStore,
		ledgerStore:   ledgerStore,
		categories:    tree,
	}, nil
}

// loadTaxonomy reads the configured taxonomy file, falling back to the
// built-in tree when no file is configured or found.
func loadTaxonomy(categoryStore *store.CategoryStore, logger logging.Logger) (*categories.Tree, error) {
	cfgs, err := categoryStore.LoadCategories()
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	if len(cfgs) == 0 {
		logger.Debug("Using built-in categories")
		return categories.Default(), nil
	}
	tree, err := categories.FromConfig(cfgs)
	if err != nil {
		return nil, fmt.Errorf("invalid categories file %s: %w", categoryStore.CategoriesFile, err)
	}
	return tree, nil
}

// NewSession creates an interactive session over the given streams, using
// the container's ledger store and taxonomy.
func (c *Container) NewSession(in io.Reader, out, errOut io.Writer) *session.Session {
	return session.New(session.Options{
		In:         in,
		Out:        out,
		Err:        errOut,
		Store:      c.ledgerStore,
		Categories: c.categories,
		Logger:     c.logger,
		SaveOnEOF:  c.config.Session.SaveOnEOF,
	})
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetCategoryStore returns the store the taxonomy was loaded from.
func (c *Container) GetCategoryStore() *store.CategoryStore {
	return c.categoryStore
}

// GetLedgerStore returns the ledger file store.
func (c *Container) GetLedgerStore() *store.LedgerStore {
	return c.ledgerStore
}

// GetCategories returns the category taxonomy.
func (c *Container) GetCategories() *categories.Tree {
	return c.categories
}

// GetDelimiter returns the configured CSV field separator.
func (c *Container) GetDelimiter() rune {
	for _, r := range c.config.CSV.Delimiter {
		return r
	}
	return common.DefaultDelimiter
}

// Close performs cleanup of container resources.
func (c *Container) Close() error {
	c.logger.Debug("Container closed")
	return nil
}
