package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/nao1215/mbdg/internal/config"
	"github.com/nao1215/mbdg/internal/database"
	"github.com/nao1215/mbdg/internal/dictionary"
	"github.com/nao1215/mbdg/internal/lookup"
	"github.com/nao1215/mbdg/internal/model"
	"github.com/nao1215/mbdg/internal/report"
	"github.com/spf13/cobra"
)

// runRootCmd selects one of the three lookup modes. --word wins over
// --lookup; with neither, the interactive prompt runs.
func runRootCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildLookupConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd, cfg.Verbose)

	// Unsupported modes fail before the dictionary is read.
	var mode lookup.Mode
	if cfg.Word == "" && len(cfg.LookupPaths) > 0 {
		if mode, err = lookup.ParseMode(cfg.Mode); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dict, err := dictionary.Load(cfg.DictionaryPath,
		dictionary.WithLogger(logger),
		dictionary.WithMaxLineSize(cfg.MaxLineSize),
	)
	if err != nil {
		return err
	}

	opts := []lookup.Option{
		lookup.WithLogger(logger),
		lookup.WithMaxLineSize(cfg.MaxLineSize),
	}
	if cfg.History {
		history, closeHistory := openHistory(ctx, cfg, dict, logger)
		defer closeHistory()
		if history != nil {
			opts = append(opts, lookup.WithRecorder(history))
		}
	}
	svc := lookup.NewService(dict, opts...)

	switch {
	case cfg.Word != "":
		return runWord(ctx, cmd, svc, cfg)
	case len(cfg.LookupPaths) == 1:
		return svc.BulkLookup(ctx, cfg.LookupPaths[0], cfg.OutputPath, mode,
			lookup.WithWriter(report.Factory(cfg.Format)))
	case len(cfg.LookupPaths) > 1:
		return svc.BatchLookup(ctx, cfg.LookupPaths, mode,
			lookup.WithWriter(report.Factory(cfg.Format)),
			lookup.WithConcurrency(cfg.Jobs))
	default:
		return svc.Interactive(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), highlighter())
	}
}

// buildLookupConfig applies the root command's lookup flags on top of the
// base configuration.
func buildLookupConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := buildBaseConfig(cmd)
	if err != nil {
		return nil, err
	}

	for name, dst := range map[string]*string{
		"dictionary": &cfg.DictionaryPath,
		"mode":       &cfg.Mode,
		"format":     &cfg.Format,
	} {
		if err := stringFlagIfChanged(cmd, name, dst); err != nil {
			return nil, err
		}
	}

	// The raw value selects single-word mode; the service trims it, so
	// a blank word looks up "" instead of starting the prompt.
	if cfg.Word, err = cmd.Flags().GetString("word"); err != nil {
		return nil, err
	}

	if cfg.LookupPaths, err = cmd.Flags().GetStringArray("lookup"); err != nil {
		return nil, err
	}
	if cfg.OutputPath, err = cmd.Flags().GetString("output"); err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("jobs") {
		if cfg.Jobs, err = cmd.Flags().GetInt("jobs"); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("max-line-size") {
		if cfg.MaxLineSize, err = cmd.Flags().GetInt("max-line-size"); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// openHistory opens the history database and binds it to dict. History is
// best effort: on failure it logs a warning and returns a nil recorder.
// The returned function closes the database.
func openHistory(ctx context.Context, cfg *config.Config, dict *model.Dictionary, logger *slog.Logger) (*database.Recorder, func()) {
	noop := func() {}

	db, err := database.Open(cfg.DBDir, database.DefaultOptions())
	if err != nil {
		logger.Warn("lookup history disabled", "dir", cfg.DBDir, "error", err)
		return nil, noop
	}

	rec, err := database.NewRecorder(ctx, db, dict)
	if err != nil {
		logger.Warn("lookup history disabled", "dir", cfg.DBDir, "error", err)
		_ = db.Close()
		return nil, noop
	}

	return rec, func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close history database", "error", err)
		}
	}
}

// runWord looks up a single word and prints it in the configured format.
func runWord(ctx context.Context, cmd *cobra.Command, svc *lookup.Service, cfg *config.Config) error {
	w, err := report.NewWriter(cfg.Format, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if _, err := w.WriteResult(svc.Resolve(ctx, cfg.Word)); err != nil {
		return err
	}
	_, err = w.Flush()
	return err
}

// highlighter colors found entries green and misses yellow.
// fatih/color turns itself off when stdout is not a terminal.
func highlighter() lookup.Decorator {
	found := color.New(color.FgGreen)
	missing := color.New(color.FgYellow)
	return func(result model.Result, formatted string) string {
		line := strings.TrimSuffix(formatted, "\n")
		if result.Found() {
			return found.Sprint(line) + "\n"
		}
		return missing.Sprint(line) + "\n"
	}
}
