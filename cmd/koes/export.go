package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Hashversion/koes/internal/export"
	"github.com/Hashversion/koes/internal/site"
)

var exportOutDir string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render the site into a directory of static files",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if exportOutDir != "" {
			cfg.OutDir = exportOutDir
		}
		logger := cliLogger(cfg.LogLevel)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		manifest, err := export.Export(ctx, export.Options{
			OutDir:   cfg.OutDir,
			FontsDir: cfg.FontsDir,
			Site:     site.New(cfg.SiteName),
			Logger:   logger,
		})
		if err != nil {
			return fmt.Errorf("export: %w", err)
		}

		logger.Info("export complete",
			"dir", cfg.OutDir,
			"build_id", manifest.BuildID,
			"pages", len(manifest.Pages),
			"assets", len(manifest.Assets),
		)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutDir, "out", "o", "", "Output directory (defaults to OUT_DIR)")
	rootCmd.AddCommand(exportCmd)
}
