package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/folio/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Portfolio presentation engine",
	Long: `Folio loads portfolio content (achievements, skills and projects) from
JSON documents and presents it as a single page: an achievement gallery,
a categorized skill list, a 3D skill cloud and a paginated project
carousel. Serve it live or export it as a static site.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultFile, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
