// Package models provides the data structures used throughout the application.
package models

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

// Record is a single income or expense entry in the ledger.
// Positive amounts are income, negative amounts are expenses.
type Record struct {
	ID          uuid.UUID `csv:"-"`
	Category    string    `csv:"category"`
	Description string    `csv:"description"`
	Amount      int64     `csv:"amount"`
}

// NewRecord creates a record with a fresh surrogate identity.
func NewRecord(category, description string, amount int64) Record {
	return Record{
		ID:          uuid.New(),
		Category:    category,
		Description: description,
		Amount:      amount,
	}
}

// Line returns the record in the "<category> <description> <amount>" storage format.
func (r Record) Line() string {
	return r.Category + " " + r.Description + " " + strconv.FormatInt(r.Amount, 10)
}

// String implements fmt.Stringer for log output.
func (r Record) String() string {
	return fmt.Sprintf("%s/%s/%d", r.Category, r.Description, r.Amount)
}

// SumAmounts returns the sum of the amounts of the given records.
func SumAmounts(records []Record) int64 {
	var total int64
	for _, r := range records {
		total += r.Amount
	}
	return total
}
