// Package oraload bulk-loads a generated dataset into an Oracle table.
package oraload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"
)

const (
	LogFieldTable    = "table"
	LogFieldRowIndex = "row_index"
	LogFieldRawData  = "raw_data"
	LogFieldErr      = "error"
	LogFieldDuration = "duration"
	LogFieldRowCount = "row_count"
	LogFieldFile     = "file"
)

// DefaultBatchSize is used when Config.BatchSize is not positive.
const DefaultBatchSize = 10000

// ErrCountMismatch is returned when the table row count differs from the rows loaded.
var ErrCountMismatch = errors.New("row count mismatch after load")

// Config holds configuration for the load.
type Config struct {
	Repo      Repository
	TableName string
	BatchSize int
}

// Source provides the rows to load.
type Source interface {
	// Validate performs initial checks on the source, such as the header.
	Validate(ctx context.Context) error

	// Next returns the next raw row, or io.EOF when there are no more rows.
	Next(ctx context.Context) (interface{}, error)

	// Convert transforms a raw row into values ordered like Columns.
	Convert(rawRow interface{}) ([]interface{}, error)
}

// Run loads every row of src into cfg.TableName and returns the number of rows loaded.
// The table is created if missing and truncated before loading.
func Run(ctx context.Context, cfg Config, src Source) (int, error) {
	if cfg.Repo == nil {
		return 0, errors.New("repository is nil")
	}
	table, err := NormalizeIdentifier(cfg.TableName)
	if err != nil {
		return 0, fmt.Errorf("invalid table name: %w", err)
	}
	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	runStart := time.Now()
	logger := slog.With(LogFieldTable, table)
	logger.Info("Starting load...")

	logger.Info("Validating source...")
	if err := src.Validate(ctx); err != nil {
		return 0, fmt.Errorf("source validation failed: %w", err)
	}

	created, err := cfg.Repo.EnsureTable(ctx, table)
	if err != nil {
		return 0, fmt.Errorf("ensure table %s failed: %w", table, err)
	}
	if !created {
		logger.Info("Truncating table...")
		truncStart := time.Now()
		if err := cfg.Repo.Truncate(ctx, table); err != nil {
			return 0, fmt.Errorf("truncate table %s failed: %w", table, err)
		}
		logger.Info("Truncate finished", LogFieldDuration, time.Since(truncStart))
	}

	builder := NewBulkInsertBuilder(table, Columns...)
	flush := func() error {
		if builder.Len() == 0 {
			return nil
		}
		flushStart := time.Now()
		if err := cfg.Repo.BulkInsert(ctx, builder); err != nil {
			logger.Error("Bulk insert failed", LogFieldErr, err)
			return fmt.Errorf("bulk insert failed: %w", err)
		}
		logger.Info("Batch inserted", LogFieldRowCount, builder.Len(), LogFieldDuration, time.Since(flushStart))
		builder.Reset()
		return nil
	}

	totalRows := 0
	for {
		rawRow, err := src.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return totalRows, fmt.Errorf("read line failed: %w", err)
		}

		values, err := src.Convert(rawRow)
		if err != nil {
			logger.Error("Row conversion failed", LogFieldRowIndex, totalRows+1, LogFieldRawData, rawRow, LogFieldErr, err)
			return totalRows, fmt.Errorf("row %d conversion failed: %w", totalRows+1, err)
		}
		if err := builder.AddRow(values...); err != nil {
			return totalRows, fmt.Errorf("add row to buffer failed: %w", err)
		}
		totalRows++

		if builder.Len() >= batchSize {
			if err := flush(); err != nil {
				return totalRows, err
			}
			if err := ctx.Err(); err != nil {
				return totalRows, err
			}
		}
	}
	if err := flush(); err != nil {
		return totalRows, err
	}

	cnt, err := cfg.Repo.CountRows(ctx, table)
	if err != nil {
		return totalRows, err
	}
	if cnt != int64(totalRows) {
		return totalRows, fmt.Errorf("%w: table %s has %d rows, loaded %d", ErrCountMismatch, table, cnt, totalRows)
	}

	logger.Info("Load done.", LogFieldRowCount, totalRows, LogFieldDuration, time.Since(runStart))
	return totalRows, nil
}
