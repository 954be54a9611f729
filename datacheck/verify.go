// Package datacheck re-reads a generated dataset and validates it.
package datacheck

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"bigdata-gen/datagen"
)

var (
	ErrHeader   = errors.New("header mismatch")
	ErrField    = errors.New("invalid field")
	ErrRowCount = errors.New("row count mismatch")
)

// Options controls Verify.
type Options struct {
	// ExpectedRows is the number of data rows the file must hold.
	// Negative values skip the count check.
	ExpectedRows int
}

// Report summarizes a verified file.
type Report struct {
	Rows int
	Size int64
}

// Verify opens path, checks the header and every row, and returns the data
// row count and on-disk size. Errors carry the 1-based file line.
func Verify(path string, opts Options) (Report, error) {
	logger := slog.With(datagen.LogFieldFile, path)
	logger.Info("Verifying dataset...")

	rc, err := datagen.OpenReader(path)
	if err != nil {
		return Report{}, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer rc.Close()

	r := csv.NewReader(rc)
	// Every record must have as many fields as the header.
	r.FieldsPerRecord = 0
	r.ReuseRecord = true

	header, err := r.Read()
	if err == io.EOF {
		return Report{}, fmt.Errorf("%w: file is empty", ErrHeader)
	}
	if err != nil {
		return Report{}, fmt.Errorf("failed to read header from %s: %w", path, err)
	}
	if !slices.Equal(header, datagen.Columns) {
		return Report{}, fmt.Errorf("%w: got %v, want %v", ErrHeader, header, datagen.Columns)
	}

	rows := 0
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		line := rows + 2
		if err != nil {
			return Report{}, fmt.Errorf("line %d: %w", line, err)
		}
		if err := CheckRecord(rec); err != nil {
			return Report{}, fmt.Errorf("line %d: %w", line, err)
		}
		rows++
	}

	if opts.ExpectedRows >= 0 && rows != opts.ExpectedRows {
		return Report{}, fmt.Errorf("%w: got %d, want %d", ErrRowCount, rows, opts.ExpectedRows)
	}

	size, err := datagen.FileSize(path)
	if err != nil {
		return Report{}, err
	}

	logger.Info("Dataset verified", datagen.LogFieldRowCount, rows, datagen.LogFieldSize, size)
	return Report{Rows: rows, Size: size}, nil
}
