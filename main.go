package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/schollz/progressbar/v3"
	_ "github.com/sijms/go-ora/v2"

	"bigdata-gen/datacheck"
	"bigdata-gen/datagen"
	"bigdata-gen/oraload"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("bigdata-gen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfg, err := ParseConfig(fs, args)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		return exitUsage
	}

	setupLogger(stderr, cfg.Quiet)

	lines, err := datagen.ParseLines(cfg.Args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: You have to pass a valid positive number of lines (%v)\n", err)
		fs.Usage()
		return exitUsage
	}
	if lines <= 0 {
		slog.Warn("Non-positive number of lines, writing header only", datagen.LogFieldRowCount, lines)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	genCfg := datagen.Config{
		OutputPath: cfg.OutputPath,
		Lines:      lines,
		Rand:       datagen.NewRand(cfg.Seed),
	}
	var bar *progressbar.ProgressBar
	if cfg.Progress && lines > 0 {
		bar = progressbar.Default(int64(lines), "generating")
		genCfg.Progress = func(delta int) { _ = bar.Add(delta) }
	}

	res, err := datagen.Generate(ctx, genCfg)
	if bar != nil {
		_ = bar.Finish()
	}
	if err != nil {
		slog.Error("Generate failed", datagen.LogFieldErr, err)
		return exitFailure
	}
	fmt.Fprintf(stdout, "File size: %d bytes\n", res.Size)

	if cfg.Verify {
		if _, err := datacheck.Verify(res.Path, datacheck.Options{ExpectedRows: res.Rows}); err != nil {
			slog.Error("Verify failed", datagen.LogFieldErr, err)
			return exitFailure
		}
	}

	if cfg.Load {
		if err := loadDataset(ctx, cfg, res.Path); err != nil {
			slog.Error("Load failed", oraload.LogFieldErr, err)
			return exitFailure
		}
	}
	return exitOK
}

func setupLogger(w io.Writer, quiet bool) {
	level := slog.LevelInfo
	if quiet {
		level = slog.LevelWarn
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

func loadDataset(ctx context.Context, cfg Config, path string) error {
	dsn, err := ResolveDSN(cfg)
	if err != nil {
		return err
	}

	db, err := sqlx.Open("oracle", dsn)
	if err != nil {
		return fmt.Errorf("open oracle: %w", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping oracle: %w", err)
	}
	slog.Info("Connected", "dsn", redacted(dsn))

	src, closer := oraload.NewCsvSource(path)
	defer closer()

	start := time.Now()
	n, err := oraload.Run(ctx, oraload.Config{
		Repo:      oraload.NewRepo(db),
		TableName: cfg.Table,
		BatchSize: cfg.BatchSize,
	}, src)
	if err != nil {
		return err
	}
	slog.Info("Loaded dataset", oraload.LogFieldTable, cfg.Table, oraload.LogFieldRowCount, n, oraload.LogFieldDuration, time.Since(start))
	return nil
}
