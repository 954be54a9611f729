package datagen

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pierrec/lz4/v4"
)

const (
	LogFieldFile     = "file"
	LogFieldRowCount = "row_count"
	LogFieldSize     = "size"
	LogFieldDuration = "duration"
	LogFieldErr      = "error"
)

const (
	// DefaultOutputPath is where the dataset is written when no path is configured.
	DefaultOutputPath = "data/bigdata.csv"
	// DefaultFlushEvery is the number of rows buffered between flushes.
	DefaultFlushEvery = 1000
)

// Config holds configuration for a generation run.
type Config struct {
	// OutputPath is created or truncated. Its directory must already exist.
	// A ".lz4" suffix makes the file lz4-framed.
	OutputPath string
	// Lines is the number of data rows. Non-positive values write the header only.
	Lines int
	// Rand samples the records. Nil means a time-seeded source.
	Rand Rand
	// FlushEvery controls how often the writer is flushed, progress is
	// reported and the context is checked.
	FlushEvery int
	// Progress, if set, receives the number of rows written since the last call.
	Progress func(delta int)
}

func (c Config) withDefaults() Config {
	if c.OutputPath == "" {
		c.OutputPath = DefaultOutputPath
	}
	if c.Rand == nil {
		c.Rand = NewRand(0)
	}
	if c.FlushEvery <= 0 {
		c.FlushEvery = DefaultFlushEvery
	}
	if c.Lines < 0 {
		c.Lines = 0
	}
	return c
}

// Result describes a written dataset.
type Result struct {
	Path     string
	Rows     int
	Size     int64
	Duration time.Duration
}

// Generate writes the header and cfg.Lines records to cfg.OutputPath, then
// reopens the file to measure its size.
func Generate(ctx context.Context, cfg Config) (Result, error) {
	cfg = cfg.withDefaults()
	start := time.Now()
	logger := slog.With(LogFieldFile, cfg.OutputPath)
	logger.Info("Generating dataset...", LogFieldRowCount, cfg.Lines)

	if err := writeFile(ctx, cfg); err != nil {
		logger.Error("Generation failed", LogFieldErr, err)
		return Result{}, err
	}

	size, err := FileSize(cfg.OutputPath)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		Path:     cfg.OutputPath,
		Rows:     cfg.Lines,
		Size:     size,
		Duration: time.Since(start),
	}
	logger.Info("Dataset written",
		LogFieldRowCount, res.Rows,
		LogFieldSize, humanize.IBytes(uint64(size)),
		LogFieldDuration, res.Duration)
	return res, nil
}

func writeFile(ctx context.Context, cfg Config) (err error) {
	f, err := os.Create(cfg.OutputPath)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close output file: %w", cerr)
		}
	}()

	var w io.Writer = f
	var zw *lz4.Writer
	if Compressed(cfg.OutputPath) {
		zw = lz4.NewWriter(f)
		w = zw
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	pending := 0
	for i := 1; i <= cfg.Lines; i++ {
		if err := cw.Write(NewRecord(cfg.Rand).Fields()); err != nil {
			return fmt.Errorf("write row %d: %w", i, err)
		}
		pending++

		if i%cfg.FlushEvery == 0 {
			cw.Flush()
			if err := cw.Error(); err != nil {
				return fmt.Errorf("flush at row %d: %w", i, err)
			}
			reportProgress(cfg.Progress, pending)
			pending = 0
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("generation stopped at row %d: %w", i, err)
			}
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	reportProgress(cfg.Progress, pending)

	if zw != nil {
		if err := zw.Close(); err != nil {
			return fmt.Errorf("close lz4 frame: %w", err)
		}
	}
	return nil
}

func reportProgress(fn func(int), delta int) {
	if fn != nil && delta > 0 {
		fn(delta)
	}
}
