// Package store provides functionality for storing and retrieving application data.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"fjacquet/moneybook/internal/fileutils"
	"fjacquet/moneybook/internal/logging"
	"fjacquet/moneybook/internal/models"

	"gopkg.in/yaml.v3"
)

// CategoryStore loads the category taxonomy from a YAML file.
type CategoryStore struct {
	CategoriesFile string
	logger         logging.Logger
}

// NewCategoryStore creates a store reading the given taxonomy file.
func NewCategoryStore(categoriesFile string, logger logging.Logger) *CategoryStore {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &CategoryStore{
		CategoriesFile: categoriesFile,
		logger:         logger,
	}
}

// FindConfigFile looks for a configuration file in standard locations
func (s *CategoryStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(homeDir, ".config", "moneybook", filename))
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadCategories loads the taxonomy from the YAML file. A missing file is not
// an error: it yields an empty slice and the caller falls back to the built-in
// taxonomy.
func (s *CategoryStore) LoadCategories() ([]models.CategoryConfig, error) {
	if s.CategoriesFile == "" {
		return []models.CategoryConfig{}, nil
	}

	filePath, err := s.FindConfigFile(s.CategoriesFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("Categories file not found",
				logging.Field{Key: logging.FieldFile, Value: s.CategoriesFile})
			return []models.CategoryConfig{}, nil
		}
		return nil, fmt.Errorf("error resolving categories file: %w", err)
	}

	data, err := os.ReadFile(filePath) // #nosec G304 -- path comes from configuration
	if err != nil {
		return nil, fmt.Errorf("error reading categories file: %w", err)
	}

	// A bare top-level sequence
	var categories []models.CategoryConfig
	if err := yaml.Unmarshal(data, &categories); err == nil {
		s.logger.Debug("Loaded categories from direct array",
			logging.Field{Key: logging.FieldFile, Value: filePath},
			logging.Field{Key: logging.FieldCount, Value: len(categories)})
		return categories, nil
	}

	// The documented layout is "categories: [...]"
	var categoriesConfig models.CategoriesConfig
	if err := yaml.Unmarshal(data, &categoriesConfig); err != nil {
		return nil, fmt.Errorf("error parsing categories file %s: %w", filePath, err)
	}
	s.logger.Debug("Loaded categories",
		logging.Field{Key: logging.FieldFile, Value: filePath},
		logging.Field{Key: logging.FieldCount, Value: len(categoriesConfig.Categories)})
	return categoriesConfig.Categories, nil
}

// SaveCategories writes the taxonomy in the "categories: [...]" layout.
func (s *CategoryStore) SaveCategories(categories []models.CategoryConfig, path string) error {
	data, err := yaml.Marshal(models.CategoriesConfig{Categories: categories})
	if err != nil {
		return fmt.Errorf("error marshaling categories: %w", err)
	}
	if err := fileutils.WriteFileAtomic(path, data, 0600); err != nil {
		return fmt.Errorf("error writing categories: %w", err)
	}
	s.logger.Debug("Saved categories", logging.Field{Key: logging.FieldFile, Value: path})
	return nil
}
