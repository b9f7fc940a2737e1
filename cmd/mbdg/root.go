package main

import (
	"fmt"
	"os"

	"github.com/nao1215/mbdg/internal/config"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for mbdg.
// Run without a subcommand it performs lookups; see runRootCmd.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mbdg",
		Short: "Look up words in a bilingual dictionary file",
		Long: `mbdg loads a line-oriented dictionary file and looks up entries by their
simplified headword.

Dictionary lines have the form:
  <traditional> <simplified> [<pronunciation>] /<def1>/<def2>/.../
Lines starting with '#' are comments.

Without --word or --lookup, mbdg starts an interactive prompt. Enter Q to quit.

Examples:
  # Interactive lookup
  mbdg

  # Look up a single word
  mbdg --word 你好

  # Look up every line of words.txt, appending to words_lookup.txt
  mbdg --lookup words.txt

  # Look up several word lists, two at a time
  mbdg -l a.txt -l b.txt -l c.txt --jobs 2

  # Bulk lookup into a specific file, as JSON lines
  mbdg --lookup words.txt --output results.jsonl --format json

  # Use another dictionary
  mbdg --dictionary cedict.txt --word 中国`,
		Version:       getVersion(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRootCmd,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringP("config", "c", "",
		"Configuration file path (default: .mbdg in current or home directory)")
	cmd.PersistentFlags().String("db-dir", "",
		"Directory for the lookup history database (default: XDG data directory)")
	cmd.PersistentFlags().Bool("history", false, "Record lookups in the history database")
	cmd.PersistentFlags().Bool("no-history", false, "Do not record lookups, even if the config file enables it")
	cmd.PersistentFlags().Bool("log-json", false, "Write log messages to stderr as JSON")

	// Lookup flags
	cmd.Flags().StringP("dictionary", "d", config.DefaultDictionaryPath, "Dictionary file path")
	cmd.Flags().StringP("word", "w", "", "Word to look up")
	cmd.Flags().StringArrayP("lookup", "l", nil,
		"File of words to look up, one per line (repeat for several files)")
	cmd.Flags().StringP("output", "o", "",
		"Output file for --lookup (default: <lookup file>_lookup.<ext>); results are appended")
	cmd.Flags().StringP("mode", "m", config.DefaultMode, "Lookup mode for --lookup (only 'simplified' is implemented)")
	cmd.Flags().StringP("format", "f", config.DefaultFormat, "Output format: text, json or markdown")
	cmd.Flags().IntP("jobs", "j", config.DefaultJobs, "Number of --lookup files processed at once")
	cmd.Flags().Int("max-line-size", config.DefaultMaxLineSize,
		"Longest dictionary or query line in bytes")

	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
