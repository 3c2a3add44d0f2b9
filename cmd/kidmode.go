package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/hanzi/internal/store"
)

var kidModeCmd = &cobra.Command{
	Use:       "kidmode [on|off]",
	Short:     "Show or set Kid Mode",
	Long:      "Kid Mode hides the filters and vocabulary overview and keeps the study screen simple. It is on until turned off.",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"on", "off"},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		dbPath, err := resolveDBPath(cmd, cfg.Store.DBPath)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		prefs := st.PreferenceRepo()
		if len(args) == 1 {
			on := args[0] == "on"
			if err := prefs.SetKidMode(ctx, on); err != nil {
				return fmt.Errorf("save kid mode: %w", err)
			}
			stderrLogger(cfg).Debug("kid mode saved", "on", on, "db", dbPath)
		}

		on, err := prefs.KidMode(ctx)
		if err != nil {
			return fmt.Errorf("read kid mode: %w", err)
		}
		if on {
			fmt.Println("Kid Mode ON")
		} else {
			fmt.Println("Kid Mode OFF")
		}
		return nil
	},
}
