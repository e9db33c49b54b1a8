// Package report renders ledger data as fixed-width text tables.
package report

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"fjacquet/moneybook/internal/ledger"
	"fjacquet/moneybook/internal/models"
)

const (
	recordHeader = "Category        Description          Amount"
	recordRule   = "=============== ==================== ======"
	matchHeader  = "Index " + recordHeader
	matchRule    = "===== " + recordRule
)

// ReportGenerator writes tables to an output stream. Within one report write
// errors are sticky: after the first failure nothing more of that report is
// written. Each report starts with a clean state.
type ReportGenerator struct {
	w   io.Writer
	err error
}

// NewReportGenerator creates a generator writing to w.
func NewReportGenerator(w io.Writer) *ReportGenerator {
	return &ReportGenerator{w: w}
}

// Err returns the first write error of the last report, if any.
func (g *ReportGenerator) Err() error {
	return g.err
}

func (g *ReportGenerator) printf(format string, args ...any) {
	if g.err != nil {
		return
	}
	_, g.err = fmt.Fprintf(g.w, format, args...)
}

func (g *ReportGenerator) row(r models.Record) {
	g.printf("%-15s %-20s %6d\n", r.Category, r.Description, r.Amount)
}

func (g *ReportGenerator) records(records []models.Record) {
	g.printf("%s\n%s\n", recordHeader, recordRule)
	for _, r := range records {
		g.row(r)
	}
	g.printf("%s\n", strings.Repeat("=", len(recordRule)))
}

// Ledger prints every record followed by the current balance.
func (g *ReportGenerator) Ledger(l *ledger.Ledger) error {
	g.err = nil
	g.printf("Here's your expense and income records:\n")
	g.records(l.Records())
	g.printf("Now you have %d dollars.\n", l.Balance())
	return g.err
}

// Found prints the records matched by a category search and their total.
func (g *ReportGenerator) Found(records []models.Record, total int64) error {
	g.err = nil
	g.records(records)
	g.printf("The total amount above is %d.\n", total)
	return g.err
}

// Matches prints the candidates of an ambiguous delete, numbered from 1.
func (g *ReportGenerator) Matches(matches []ledger.Match) error {
	g.err = nil
	g.printf("%s\n%s\n", matchHeader, matchRule)
	for i, m := range matches {
		g.printf("%5d ", i+1)
		g.row(m.Record)
	}
	g.printf("%s\n", strings.Repeat("=", len(matchRule)))
	return g.err
}

// Categories prints the taxonomy depth-first, indented two spaces per level.
func (g *ReportGenerator) Categories(labels iter.Seq2[string, int]) error {
	g.err = nil
	for label, depth := range labels {
		g.printf("%s- %s\n", strings.Repeat("  ", depth), label)
	}
	return g.err
}
