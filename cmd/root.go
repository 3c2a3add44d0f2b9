package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/abhisek/hanzi/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "hanzi",
	Short: "Traditional Chinese flashcards in the terminal",
	Long: `Hanzi: a flashcard study tool for Traditional Chinese vocabulary.

Filter the word list by level, book and lesson, study words or generated
sentences, and print handwriting worksheets.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to YAML config file (overrides HANZI_CONFIG env var)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides HANZI_DB env var)")
	rootCmd.PersistentFlags().String("vocab", "", "Path to a JSON or YAML vocabulary file (overrides HANZI_VOCAB env var)")

	rootCmd.Flags().Bool("no-splash", false, "Start on the home screen")
	rootCmd.Flags().String("worksheet-out", "hanzi-worksheet.html", "File the filters screen writes worksheets to")

	rootCmd.AddCommand(vocabCmd)
	rootCmd.AddCommand(sentencesCmd)
	rootCmd.AddCommand(worksheetCmd)
	rootCmd.AddCommand(kidModeCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the configured path, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, configured string) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if configured != "" {
		return configured, store.EnsureDir(configured)
	}
	return store.DefaultDBPath()
}
