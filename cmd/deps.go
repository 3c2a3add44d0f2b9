package cmd

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/abhisek/hanzi/internal/config"
	"github.com/abhisek/hanzi/internal/deck"
	"github.com/abhisek/hanzi/internal/filter"
	"github.com/abhisek/hanzi/internal/logging"
	"github.com/abhisek/hanzi/internal/sentencegen"
	"github.com/abhisek/hanzi/internal/study"
	"github.com/abhisek/hanzi/internal/vocab"
)

// loadConfig reads the config named by --config, HANZI_CONFIG or the
// default location.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}

// stderrLogger logs to stderr for the non-interactive commands.
func stderrLogger(cfg *config.Config) *slog.Logger {
	return logging.New(os.Stderr, cfg.Log, isatty.IsTerminal(os.Stderr.Fd()))
}

// loadEntries returns the dataset named by --vocab, the config, or the
// built-in list.
func loadEntries(cmd *cobra.Command, cfg *config.Config) ([]vocab.Entry, error) {
	path, _ := cmd.Flags().GetString("vocab")
	if path == "" {
		path = cfg.Vocab.Path
	}
	if path == "" {
		return vocab.Default()
	}
	entries, err := vocab.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load vocabulary: %w", err)
	}
	return entries, nil
}

// newGenerator builds a sentence generator from the config. A zero seed
// draws a random one.
func newGenerator(cfg *config.Config, seed uint64, log *slog.Logger) *sentencegen.Generator {
	gc := sentencegen.DefaultConfig()
	gc.RetryFactor = cfg.Generator.RetryFactor
	gc.MinTarget = cfg.Generator.MinTarget
	gc.MaxTarget = cfg.Generator.MaxTarget

	var rng *rand.Rand
	if seed != 0 {
		rng = rand.New(rand.NewPCG(seed, seed))
	}
	return sentencegen.New(gc, sentencegen.DefaultRoles(), rng, log)
}

// newDeck builds the deck the TUI studies, starting from the configured
// mode and card type.
func newDeck(entries []vocab.Entry, cfg *config.Config, log *slog.Logger) (*deck.Deck, error) {
	mode, err := deck.ParseMode(cfg.Study.Mode)
	if err != nil {
		return nil, err
	}
	cardType, err := deck.ParseCardType(cfg.Study.CardType)
	if err != nil {
		return nil, err
	}
	sess := study.New(
		study.WithMode(mode),
		study.WithAdvanceDelay(cfg.Study.AutoAdvance),
		study.WithLogger(log),
	)
	return deck.New(entries, newGenerator(cfg, 0, log), sess, cardType, log), nil
}

// addSelectionFlags registers --level, --book and --lesson.
func addSelectionFlags(cmd *cobra.Command) {
	cmd.Flags().String("level", filter.All, "Level to select")
	cmd.Flags().String("book", filter.All, "Book to select (needs --level)")
	cmd.Flags().String("lesson", filter.All, "Lesson to select (needs --level and --book)")
}

// applySelection feeds the selection flags through the cascade in order,
// so later flags are only honoured when the earlier ones enable them.
func applySelection(cmd *cobra.Command, eng *filter.Engine) error {
	level, _ := cmd.Flags().GetString("level")
	book, _ := cmd.Flags().GetString("book")
	lessonVal, _ := cmd.Flags().GetString("lesson")

	if level == filter.All && (book != filter.All || lessonVal != filter.All) {
		return fmt.Errorf("--book and --lesson need --level")
	}
	if book == filter.All && lessonVal != filter.All {
		return fmt.Errorf("--lesson needs --book")
	}
	eng.SetLevel(level)
	eng.SetBook(book)
	eng.SetLesson(lessonVal)
	return nil
}
