package cmd

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/abhisek/hanzi/internal/filter"
	"github.com/abhisek/hanzi/internal/lesson"
)

var vocabCmd = &cobra.Command{
	Use:   "vocab",
	Short: "Browse the vocabulary list",
}

var vocabListCmd = &cobra.Command{
	Use:   "list",
	Short: "List vocabulary for a selection, ordered by lesson then pinyin",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := selectionEngine(cmd)
		if err != nil {
			return err
		}

		entries := lesson.SortEntries(eng.Filtered())
		if len(entries) == 0 {
			fmt.Println("No vocabulary matches the selection.")
			return nil
		}

		fmt.Println(pad("CHARACTERS", 12), pad("PINYIN", 20), pad("ENGLISH", 28), pad("LESSON", 8), pad("BOOK", 6), "LEVEL")
		fmt.Println(strings.Repeat("-", 12), strings.Repeat("-", 20), strings.Repeat("-", 28), strings.Repeat("-", 8), strings.Repeat("-", 6), "-----")
		for _, e := range entries {
			fmt.Println(pad(e.Characters, 12), pad(e.Pinyin, 20), pad(e.English, 28), pad(e.Lesson, 8), pad(e.Book, 6), e.Level)
		}

		fmt.Printf("\n%s • %d of %d entries\n", eng.Summary(), len(entries), len(eng.Entries()))
		return nil
	},
}

var vocabOptionsCmd = &cobra.Command{
	Use:   "options",
	Short: "Show the level, book and lesson choices for a selection",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := selectionEngine(cmd)
		if err != nil {
			return err
		}

		fmt.Println("Levels: ", strings.Join(eng.LevelOptions(), ", "))
		if eng.BookEnabled() {
			fmt.Println("Books:  ", strings.Join(eng.BookOptions(), ", "))
		} else {
			fmt.Println("Books:   (select a level)")
		}
		if eng.LessonEnabled() {
			labels := make([]string, 0)
			for _, l := range eng.LessonOptions() {
				labels = append(labels, lesson.FormatLabel(l))
			}
			fmt.Println("Lessons:", strings.Join(labels, ", "))
		} else {
			fmt.Println("Lessons: (select a level and book)")
		}
		return nil
	},
}

// pad fills s to w terminal cells, truncating longer values.
func pad(s string, w int) string {
	return runewidth.FillRight(runewidth.Truncate(s, w, "…"), w)
}

// selectionEngine loads the vocabulary and applies the selection flags.
func selectionEngine(cmd *cobra.Command) (*filter.Engine, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	entries, err := loadEntries(cmd, cfg)
	if err != nil {
		return nil, err
	}
	eng := filter.New(entries)
	if err := applySelection(cmd, eng); err != nil {
		return nil, err
	}
	return eng, nil
}

func init() {
	addSelectionFlags(vocabListCmd)
	addSelectionFlags(vocabOptionsCmd)
	_ = vocabOptionsCmd.Flags().MarkHidden("lesson")

	vocabCmd.AddCommand(vocabListCmd)
	vocabCmd.AddCommand(vocabOptionsCmd)
}
