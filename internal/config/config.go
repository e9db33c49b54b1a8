// Package config provides functionality for loading and accessing environment variables.
package config

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/joho/godotenv"
)

var once sync.Once

// LoadEnv loads environment variables from a .env file in the current or
// parent directory, if one exists. Variables already set are not overridden.
// It reports the file that was loaded, or "" when none was found.
func LoadEnv() (loaded string, err error) {
	once.Do(func() {
		envFile := ".env"
		if _, statErr := os.Stat(envFile); os.IsNotExist(statErr) {
			envFile = filepath.Join("..", ".env")
			if _, statErr := os.Stat(envFile); os.IsNotExist(statErr) {
				return
			}
		}
		if err = godotenv.Load(envFile); err != nil {
			return
		}
		loaded = envFile
	})
	return loaded, err
}
