package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/hanzi/internal/worksheet"
)

var worksheetCmd = &cobra.Command{
	Use:   "worksheet",
	Short: "Write a printable handwriting worksheet (HTML)",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("output")

		eng, err := selectionEngine(cmd)
		if err != nil {
			return err
		}
		entries := eng.Filtered()
		if len(entries) == 0 {
			return fmt.Errorf("no vocabulary matches the selection")
		}

		var w io.Writer = os.Stdout
		if out != "" && out != "-" {
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("create worksheet: %w", err)
			}
			defer f.Close()
			w = f
		}

		if err := worksheet.Render(w, eng.Selection().Lesson, entries); err != nil {
			return err
		}
		if w != os.Stdout {
			fmt.Fprintf(os.Stderr, "Wrote %d words to %s\n", len(entries), out)
		}
		return nil
	},
}

func init() {
	addSelectionFlags(worksheetCmd)
	worksheetCmd.Flags().StringP("output", "o", "", "Output file (default stdout)")
}
