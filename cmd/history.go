package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/folio/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent content loads recorded by the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		database, store, err := openHistory(cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		failed, _ := cmd.Flags().GetBool("failed")
		filter := history.LoadFilter{Limit: limit}
		if failed {
			filter.Status = history.StatusFailed
		}

		loads, err := store.RecentLoads(context.Background(), filter)
		if err != nil {
			return err
		}
		if len(loads) == 0 {
			fmt.Println("No loads recorded yet. Run `folio serve` first.")
			return nil
		}

		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "LOADED\tSTATUS\tACH\tSKILLS\tPROJECTS\tDURATION\tDETAIL")
		for _, l := range loads {
			detail := ""
			if l.Status == history.StatusFailed {
				detail = l.Cause
			}
			fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%s\t%s\n",
				l.LoadedAt.Local().Format(time.DateTime), l.Status,
				l.Achievements, l.Skills, l.Projects, l.Duration.Round(time.Millisecond), detail)
		}
		return tw.Flush()
	},
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum number of loads to show")
	historyCmd.Flags().Bool("failed", false, "only show failed loads")
	rootCmd.AddCommand(historyCmd)
}
