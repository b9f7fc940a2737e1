package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nao1215/mbdg/internal/config"
	"github.com/nao1215/mbdg/internal/database"
	"github.com/nao1215/mbdg/internal/report"
	"github.com/spf13/cobra"
)

// NewHistoryCmd creates the history command.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded lookups",
		Long: `History prints the most recent lookups and the most frequent queries
from the history database.

Examples:
  # Show the last 20 lookups
  mbdg history

  # Show the last 5 lookups and the 10 most frequent queries
  mbdg history -n 5 --top 10

  # Export the whole history as JSON
  mbdg history -n 0 -f json

  # Delete all recorded lookups
  mbdg history --clear`,
		Args: cobra.NoArgs,
		RunE: runHistoryCmd,
	}

	cmd.Flags().IntP("limit", "n", config.DefaultHistoryLimit,
		"Number of recent lookups to show (0 for all)")
	cmd.Flags().Int("top", 0, "Also show the N most frequent queries")
	cmd.Flags().StringP("format", "f", config.DefaultFormat, "Output format: text, json or markdown")
	cmd.Flags().Bool("clear", false, "Delete all recorded lookups")

	return cmd
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildBaseConfig(cmd)
	if err != nil {
		return err
	}
	if err := stringFlagIfChanged(cmd, "format", &cfg.Format); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}
	top, err := cmd.Flags().GetInt("top")
	if err != nil {
		return err
	}
	clearAll, err := cmd.Flags().GetBool("clear")
	if err != nil {
		return err
	}

	logger := setupLogger(cmd, cfg.Verbose)
	out := cmd.OutOrStdout()

	// Reading history must not create an empty database.
	dbPath := filepath.Join(cfg.DBDir, database.FileName)
	if _, err := os.Stat(dbPath); errors.Is(err, os.ErrNotExist) {
		if clearAll {
			fmt.Fprintln(out, "Cleared 0 lookups.")
			return nil
		}
		return report.WriteHistory(out, report.History{}, cfg.Format)
	}

	opts := database.DefaultOptions()
	opts.CreateIfNotExists = false
	db, err := database.Open(cfg.DBDir, opts)
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close history database", "error", err)
		}
	}()

	ctx := cmd.Context()
	if clearAll {
		n, err := db.ClearLookups(ctx)
		if err != nil {
			return err
		}
		logger.Debug("history cleared", "path", db.Path(), "count", n)
		fmt.Fprintf(out, "Cleared %d lookups.\n", n)
		return nil
	}

	var h report.History
	if h.Recent, err = db.RecentLookups(ctx, limit); err != nil {
		return err
	}
	if top > 0 {
		if h.Top, err = db.TopQueries(ctx, top); err != nil {
			return err
		}
	}
	if h.Dictionaries, err = dictionariesFor(ctx, db, h.Recent); err != nil {
		return err
	}

	return report.WriteHistory(out, h, cfg.Format)
}

// dictionariesFor returns the registered dictionaries referenced by
// records, in order of first appearance. Unknown digests are skipped.
func dictionariesFor(ctx context.Context, db *database.HistoryDB, records []database.LookupRecord) ([]database.DictionaryRecord, error) {
	seen := make(map[string]struct{})
	var out []database.DictionaryRecord
	for _, r := range records {
		if _, ok := seen[r.DictionaryDigest]; ok {
			continue
		}
		seen[r.DictionaryDigest] = struct{}{}

		rec, err := db.GetDictionary(ctx, r.DictionaryDigest)
		if err != nil {
			return nil, err
		}
		if rec != nil {
			out = append(out, *rec)
		}
	}
	return out, nil
}
