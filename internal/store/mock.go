package store

import (
	"bytes"

	"fjacquet/moneybook/internal/ledger"
)

// MockLedgerStore is an in-memory ledger store for testing.
// Content holds the last saved file content; nil means no ledger exists.
type MockLedgerStore struct {
	Content []byte
	Saves   int

	LoadError error
	SaveError error
}

// Load decodes Content, or returns ErrNoLedger when there is none.
func (m *MockLedgerStore) Load() (*ledger.Ledger, error) {
	if m.LoadError != nil {
		return nil, m.LoadError
	}
	if m.Content == nil {
		return nil, ErrNoLedger
	}
	l, _, err := ledger.Read(bytes.NewReader(m.Content), "mock")
	return l, err
}

// Save encodes l into Content.
func (m *MockLedgerStore) Save(l *ledger.Ledger) error {
	if m.SaveError != nil {
		return m.SaveError
	}
	var buf bytes.Buffer
	if _, err := l.WriteTo(&buf); err != nil {
		return err
	}
	m.Content = buf.Bytes()
	m.Saves++
	return nil
}
