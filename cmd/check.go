package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Load the content sources and report what would be shown",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger, err := newLogger(cfg)
		if err != nil {
			return err
		}
		defer logger.Sync()

		a, err := newApp(cfg, logger, nil, nil)
		if err != nil {
			return err
		}
		snap, err := a.Reload(context.Background())
		if err != nil {
			return err
		}

		w := snap.Widgets()
		kind := string(snap.Model.Skills.Kind)
		if kind == "" {
			kind = "no"
		}
		skipped := len(snap.Model.Projects) - len(w.Projects)
		fmt.Printf("Content OK (snapshot %s)\n", snap.ID)
		fmt.Printf("  Achievements: %d\n", len(w.Achievements))
		fmt.Printf("  Skills:       %d in %d categories (%s source)\n",
			snap.Model.SkillCount(), len(w.Catalog), kind)
		fmt.Printf("  Projects:     %d", len(w.Projects))
		if skipped > 0 {
			fmt.Printf(" (%d incomplete, not shown)", skipped)
		}
		fmt.Println()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
