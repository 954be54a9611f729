package oraload

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"bigdata-gen/datagen"
)

// CsvSource reads a generated dataset file and implements Source.
type CsvSource struct {
	path   string
	rc     io.ReadCloser
	reader *csv.Reader
}

// NewCsvSource creates a source for path. The returned func closes it.
func NewCsvSource(path string) (*CsvSource, func() error) {
	src := &CsvSource{path: path}
	return src, src.Close
}

// Validate opens the file and checks the header against datagen.Columns.
func (s *CsvSource) Validate(ctx context.Context) error {
	slog.Info("Opening CSV for validation", LogFieldFile, s.path)

	if s.rc != nil {
		_ = s.rc.Close()
		s.rc = nil
	}
	rc, err := datagen.OpenReader(s.path)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", s.path, err)
	}
	s.rc = rc

	s.reader = csv.NewReader(rc)
	// Enforce that all records have the same number of fields as the header.
	s.reader.FieldsPerRecord = 0

	header, err := s.reader.Read()
	if err != nil {
		return fmt.Errorf("failed to read header from %s: %w", s.path, err)
	}
	if !slices.Equal(header, datagen.Columns) {
		return fmt.Errorf("header mismatch: got %v, want %v", header, datagen.Columns)
	}

	slog.Info("CSV validation successful", LogFieldFile, s.path)
	return nil
}

// Next reads the next data row.
func (s *CsvSource) Next(ctx context.Context) (interface{}, error) {
	if s.reader == nil {
		return nil, fmt.Errorf("reader not initialized (call Validate first)")
	}
	record, err := s.reader.Read()
	if err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		return nil, fmt.Errorf("read csv %s failed: %w", s.path, err)
	}
	return record, nil
}

// Convert turns a CSV record into values ordered like Columns.
func (s *CsvSource) Convert(rawRow interface{}) ([]interface{}, error) {
	row, ok := rawRow.([]string)
	if !ok {
		return nil, fmt.Errorf("expected []string, got %T", rawRow)
	}
	if len(row) != len(Columns) {
		return nil, fmt.Errorf("expected %d fields, got %d", len(Columns), len(row))
	}

	p := &rowParser{}
	values := []interface{}{
		p.String(row[0], datagen.ColName),
		p.String(row[1], datagen.ColSurname),
		p.Int(row[2], datagen.ColAge),
		p.String(row[3], datagen.ColGender),
		p.Float64(row[4], datagen.ColHeight),
	}
	if err := p.Err(); err != nil {
		return nil, err
	}
	return values, nil
}

// Close closes the underlying file handle.
func (s *CsvSource) Close() error {
	if s.rc != nil {
		return s.rc.Close()
	}
	return nil
}
