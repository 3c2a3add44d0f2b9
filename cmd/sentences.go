package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var sentencesCmd = &cobra.Command{
	Use:   "sentences",
	Short: "Generate practice sentences from the words learned so far",
	Long: `Generate practice sentences from the vocabulary available up to the
selected lesson. With no --count the number follows the pool size.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("count")
		seed, _ := cmd.Flags().GetUint64("seed")
		if count < 0 {
			return fmt.Errorf("--count must be >= 0")
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		eng, err := selectionEngine(cmd)
		if err != nil {
			return err
		}

		gen := newGenerator(cfg, seed, stderrLogger(cfg))
		pool := eng.AvailableUpToLesson()
		if count == 0 {
			count = gen.Config().TargetCount(len(pool))
		}

		cards := gen.Generate(pool, count)
		if len(cards) == 0 {
			fmt.Println("Not enough vocabulary to build sentences for this selection.")
			return nil
		}
		for i, c := range cards {
			fmt.Printf("%3d. %s\n     %s\n     %s\n", i+1, c.Characters, c.Pinyin, c.English)
		}
		fmt.Printf("\n%d sentences from %d words (%s)\n", len(cards), len(pool), eng.Summary())
		return nil
	},
}

func init() {
	addSelectionFlags(sentencesCmd)
	sentencesCmd.Flags().Int("count", 0, "Number of sentences (0 = based on the pool size)")
	sentencesCmd.Flags().Uint64("seed", 0, "Random seed for repeatable output (0 = random)")
}
