// Package common provides shared output helpers used by the commands.
package common

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"fjacquet/moneybook/internal/fileutils"
	"fjacquet/moneybook/internal/logging"
	"fjacquet/moneybook/internal/models"

	"github.com/gocarina/gocsv"
)

// DefaultDelimiter is the field separator used when none is configured.
const DefaultDelimiter = ','

// MarshalRecordsCSV encodes records with a "category,description,amount"
// header using the given field separator.
func MarshalRecordsCSV(records []models.Record, delimiter rune) ([]byte, error) {
	if records == nil {
		records = []models.Record{}
	}

	var buf bytes.Buffer
	csvWriter := csv.NewWriter(&buf)
	csvWriter.Comma = delimiter

	if err := gocsv.MarshalCSV(records, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return nil, fmt.Errorf("error writing CSV data: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteRecordsToCSV writes records to csvFile, replacing it atomically.
func WriteRecordsToCSV(records []models.Record, csvFile string, delimiter rune, logger logging.Logger) error {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	logger.Info("Writing records to CSV file",
		logging.Field{Key: logging.FieldOutputFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(records)},
		logging.Field{Key: logging.FieldDelimiter, Value: string(delimiter)})

	data, err := MarshalRecordsCSV(records, delimiter)
	if err != nil {
		logger.WithError(err).Error("Failed to marshal records to CSV")
		return err
	}

	if err := fileutils.WriteFileAtomic(csvFile, data, 0600); err != nil {
		logger.WithError(err).Error("Failed to write CSV file")
		return fmt.Errorf("error creating CSV file: %w", err)
	}

	logger.Info("Successfully wrote records to CSV file",
		logging.Field{Key: logging.FieldOutputFile, Value: csvFile},
		logging.Field{Key: logging.FieldCount, Value: len(records)})
	return nil
}
