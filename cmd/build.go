package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/folio/internal/progress"
	"github.com/ziadkadry99/folio/internal/site"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Export the portfolio as a static site",
	Long: `Loads the content once and writes a self-contained static site: index.html,
its stylesheet and script, content.json and the configured assets. The
exported page paginates the carousel and shows tooltips without a server.`,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().String("output", "", "override output directory (defaults to output_dir)")
	buildCmd.Flags().Bool("allow-empty", false, "write the site even when content fails to load")
	buildCmd.Flags().Bool("serve", false, "start a local HTTP server after building")
	buildCmd.Flags().Int("port", 8080, "port for the local preview server")
	buildCmd.Flags().Bool("open", false, "open browser automatically when serving")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	outputDir, _ := cmd.Flags().GetString("output")
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}

	a, err := newApp(cfg, logger, nil, nil)
	if err != nil {
		return err
	}
	snap, loadErr := a.Reload(context.Background())
	if loadErr != nil {
		if allow, _ := cmd.Flags().GetBool("allow-empty"); !allow {
			return loadErr
		}
	}

	gen := site.NewGenerator(outputDir)
	gen.AssetRoot = "."
	gen.Assets = cfg.Assets
	gen.Progress = progress.NewReporter("Copying assets")

	res, err := gen.Generate(a, snap)
	if err != nil {
		return fmt.Errorf("generating site: %w", err)
	}

	fmt.Printf("Site written to %s (%d files, %d assets)\n", outputDir, len(res.Files), res.Assets)
	if !res.Loaded {
		fmt.Println("Content failed to load; the page shows placeholders.")
	}

	if serve, _ := cmd.Flags().GetBool("serve"); serve {
		port, _ := cmd.Flags().GetInt("port")
		open, _ := cmd.Flags().GetBool("open")
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return site.Serve(ctx, outputDir, port, open, logger)
	}
	return nil
}
