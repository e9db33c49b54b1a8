// Package ledger holds the initial balance and the ordered list of income and
// expense records, and enforces the rules for changing them.
package ledger

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"fjacquet/moneybook/internal/ledgererror"
	"fjacquet/moneybook/internal/models"

	"github.com/google/uuid"
)

// CategoryValidator decides whether a label is an accepted category.
type CategoryValidator interface {
	IsValid(label string) bool
}

// Ledger is an initial balance plus records in insertion order.
// The current balance is always derived, never stored.
type Ledger struct {
	initialBalance int64
	records        []models.Record
}

// New creates a ledger. Records without an identity are given one.
func New(initialBalance int64, records []models.Record) *Ledger {
	l := &Ledger{
		initialBalance: initialBalance,
		records:        make([]models.Record, 0, len(records)),
	}
	for _, r := range records {
		if r.ID == uuid.Nil {
			r.ID = uuid.New()
		}
		l.records = append(l.records, r)
	}
	return l
}

// InitialBalance returns the balance the ledger started with.
func (l *Ledger) InitialBalance() int64 {
	return l.initialBalance
}

// Len returns the number of records.
func (l *Ledger) Len() int {
	return len(l.records)
}

// Records returns a copy of the records in insertion order.
func (l *Ledger) Records() []models.Record {
	return slices.Clone(l.records)
}

// Balance returns the initial balance plus the sum of all record amounts.
func (l *Ledger) Balance() int64 {
	return l.initialBalance + models.SumAmounts(l.records)
}

// AddLine parses "<category> <description> <amount>" and appends the record.
// Checks run in order: token count, category, amount. Nothing is appended on
// failure.
func (l *Ledger) AddLine(line string, categories CategoryValidator) (models.Record, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return models.Record{}, ledgererror.NewInvalidFormat(line)
	}
	category, description, amountToken := fields[0], fields[1], fields[2]
	if !categories.IsValid(category) {
		return models.Record{}, ledgererror.NewInvalidCategory(category)
	}
	amount, err := ParseAmount(amountToken)
	if err != nil {
		return models.Record{}, err
	}
	return l.Add(category, description, amount, categories)
}

// Add appends a record after validating its category.
func (l *Ledger) Add(category, description string, amount int64, categories CategoryValidator) (models.Record, error) {
	if !categories.IsValid(category) {
		return models.Record{}, ledgererror.NewInvalidCategory(category)
	}
	if description == "" || strings.ContainsAny(description, " \t\r\n") {
		return models.Record{}, ledgererror.NewInvalidFormat(description)
	}
	r := models.NewRecord(category, description, amount)
	l.records = append(l.records, r)
	return r, nil
}

// ParseAmount parses a base-10 integer amount token.
func ParseAmount(token string) (int64, error) {
	amount, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return 0, ledgererror.NewInvalidAmount(token)
	}
	return amount, nil
}

// Match is a record whose description matched a delete request.
// Position is the 1-based position of the record in the ledger.
type Match struct {
	Position int
	Record   models.Record
}

// AmbiguousError is returned when more than one record has the requested
// description. The caller picks one of Matches and calls DeleteMatch.
type AmbiguousError struct {
	Description string
	Matches     []Match
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("more than 1 items with description \"%s\" found (%d matches)", e.Description, len(e.Matches))
}

// Matches returns the records whose description equals description exactly.
func (l *Ledger) Matches(description string) []Match {
	var matches []Match
	for i, r := range l.records {
		if r.Description == description {
			matches = append(matches, Match{Position: i + 1, Record: r})
		}
	}
	return matches
}

// DeleteByDescription removes the single record with the given description.
// It fails with ErrNotFound when there is none and returns an *AmbiguousError,
// without removing anything, when there are several.
func (l *Ledger) DeleteByDescription(description string) (models.Record, error) {
	matches := l.Matches(description)
	switch len(matches) {
	case 0:
		return models.Record{}, ledgererror.NewNotFound(description)
	case 1:
		return l.DeleteByID(matches[0].Record.ID)
	default:
		return models.Record{}, &AmbiguousError{Description: description, Matches: matches}
	}
}

// DeleteMatch removes matches[choice-1]. choice is 1-based.
func (l *Ledger) DeleteMatch(matches []Match, choice int) (models.Record, error) {
	if choice < 1 || choice > len(matches) {
		return models.Record{}, &ledgererror.IndexError{Value: strconv.Itoa(choice), Max: len(matches)}
	}
	return l.DeleteByID(matches[choice-1].Record.ID)
}

// DeleteByID removes the record with the given identity.
func (l *Ledger) DeleteByID(id uuid.UUID) (models.Record, error) {
	i := slices.IndexFunc(l.records, func(r models.Record) bool { return r.ID == id })
	if i < 0 {
		return models.Record{}, ledgererror.NewNotFound(id.String())
	}
	r := l.records[i]
	l.records = slices.Delete(l.records, i, i+1)
	return r, nil
}

// FindByCategories returns the records whose category is one of labels, in
// insertion order, together with the sum of their amounts.
func (l *Ledger) FindByCategories(labels []string) ([]models.Record, int64) {
	set := make(map[string]struct{}, len(labels))
	for _, label := range labels {
		set[label] = struct{}{}
	}
	var found []models.Record
	for _, r := range l.records {
		if _, ok := set[r.Category]; ok {
			found = append(found, r)
		}
	}
	return found, models.SumAmounts(found)
}
