package store

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"fjacquet/moneybook/internal/fileutils"
	"fjacquet/moneybook/internal/ledger"
	"fjacquet/moneybook/internal/ledgererror"
	"fjacquet/moneybook/internal/logging"
)

// ErrNoLedger is returned by LedgerStore.Load when no ledger file exists yet.
// It wraps fs.ErrNotExist.
var ErrNoLedger = fmt.Errorf("no ledger file: %w", fs.ErrNotExist)

// LedgerStore persists a ledger to a single text file.
type LedgerStore struct {
	FilePath      string
	BackupEnabled bool
	logger        logging.Logger
}

// NewLedgerStore creates a store for the ledger file at filePath.
func NewLedgerStore(filePath string, backupEnabled bool, logger logging.Logger) *LedgerStore {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &LedgerStore{
		FilePath:      filePath,
		BackupEnabled: backupEnabled,
		logger:        logger,
	}
}

// Load reads the ledger file. Damaged content is logged as warnings and
// replaced by defaults; only a missing file (ErrNoLedger) or an I/O failure
// is returned as an error.
func (s *LedgerStore) Load() (*ledger.Ledger, error) {
	f, err := os.Open(s.FilePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", s.FilePath, ErrNoLedger)
		}
		return nil, fmt.Errorf("error opening ledger file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.WithError(err).Warn("Failed to close ledger file")
		}
	}()

	l, problems, err := ledger.Read(f, s.FilePath)
	if err != nil {
		return nil, err
	}
	for _, p := range problems {
		msg, line := problemMessage(p)
		s.logger.WithError(p).Warn(msg,
			logging.Field{Key: logging.FieldFile, Value: s.FilePath},
			logging.Field{Key: logging.FieldLine, Value: line})
	}

	s.logger.Debug("Loaded ledger",
		logging.Field{Key: logging.FieldFile, Value: s.FilePath},
		logging.Field{Key: logging.FieldCount, Value: l.Len()},
		logging.Field{Key: logging.FieldBalance, Value: l.Balance()})
	return l, nil
}

// Save replaces the ledger file with the current content of l.
func (s *LedgerStore) Save(l *ledger.Ledger) error {
	var buf bytes.Buffer
	if _, err := l.WriteTo(&buf); err != nil {
		return fmt.Errorf("error encoding ledger: %w", err)
	}

	if s.BackupEnabled && fileutils.FileExists(s.FilePath) {
		backup := s.FilePath + ".bak"
		if _, err := fileutils.CopyFile(s.FilePath, backup); err != nil {
			return fmt.Errorf("error writing ledger backup: %w", err)
		}
		s.logger.Debug("Wrote ledger backup", logging.Field{Key: logging.FieldFile, Value: backup})
	}

	if err := fileutils.WriteFileAtomic(s.FilePath, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("error writing ledger file: %w", err)
	}

	s.logger.Debug("Saved ledger",
		logging.Field{Key: logging.FieldFile, Value: s.FilePath},
		logging.Field{Key: logging.FieldCount, Value: l.Len()})
	return nil
}

func problemMessage(err error) (string, int) {
	var storageErr *ledgererror.StorageError
	if !errors.As(err, &storageErr) {
		return err.Error(), 0
	}
	if storageErr.Line == 1 {
		return "Invalid initial balance in ledger file (must be int), initial balance set to 0", 1
	}
	return "Invalid record in ledger file (must be '[category] [description] [amount]'), records set to an empty list", storageErr.Line
}
