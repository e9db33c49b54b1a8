package ledger

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"fjacquet/moneybook/internal/fileutils"
	"fjacquet/moneybook/internal/ledgererror"
	"fjacquet/moneybook/internal/models"
)

// WriteTo writes the ledger in its storage format: the initial balance on the
// first line, then one "<category> <description> <amount>" line per record.
func (l *Ledger) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString(strconv.FormatInt(l.initialBalance, 10))
	buf.WriteByte('\n')
	for _, r := range l.records {
		buf.WriteString(r.Line())
		buf.WriteByte('\n')
	}
	return buf.WriteTo(w)
}

// Read decodes a ledger from its storage format.
//
// Damaged content never fails the read. A bad first line gives an initial
// balance of 0; a single bad record line drops every record. Each problem is
// returned as a *ledgererror.StorageError so the caller can report it. The
// returned error is only set when reading from r itself fails.
func Read(r io.Reader, filePath string) (*Ledger, []error, error) {
	reader := bufio.NewReader(r)
	var problems []error

	var initial int64
	first, err := fileutils.ReadLine(reader)
	if errors.Is(err, io.EOF) {
		problems = append(problems, &ledgererror.StorageError{FilePath: filePath, Line: 1, Err: io.ErrUnexpectedEOF})
		return New(0, nil), problems, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("error reading ledger: %w", err)
	}
	v, err := strconv.ParseInt(strings.TrimSpace(first), 10, 64)
	if err != nil {
		problems = append(problems, &ledgererror.StorageError{FilePath: filePath, Line: 1, Content: first, Err: err})
	} else {
		initial = v
	}

	var records []models.Record
	var bad error
	for lineNo := 2; ; lineNo++ {
		line, err := fileutils.ReadLine(reader)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("error reading ledger: %w", err)
		}
		if bad != nil {
			continue
		}
		rec, err := parseRecordLine(line)
		if err != nil {
			bad = &ledgererror.StorageError{FilePath: filePath, Line: lineNo, Content: line, Err: err}
			continue
		}
		records = append(records, rec)
	}
	if bad != nil {
		problems = append(problems, bad)
		records = nil
	}
	return New(initial, records), problems, nil
}

func parseRecordLine(line string) (models.Record, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return models.Record{}, ledgererror.NewInvalidFormat(line)
	}
	amount, err := ParseAmount(fields[2])
	if err != nil {
		return models.Record{}, err
	}
	return models.NewRecord(fields[0], fields[1], amount), nil
}
