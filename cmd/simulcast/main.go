package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/aniplanner/simulcast/internal/config"
	"github.com/aniplanner/simulcast/internal/pipeline"
	"github.com/aniplanner/simulcast/internal/season"
)

var (
	// Version information (set via ldflags during build)
	version = "dev"
	commit  = "none"
	date    = "unknown"

	// Global flags
	cfgFile    string
	logLevel   string
	seasonFlag string
	yearFlag   int
	skipImages bool

	// Global config and logger
	cfg    *config.Config
	logger *slog.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "simulcast",
	Short: "Export the current simulcast anime season as JSON with artwork",
	Long: `simulcast fetches the currently airing anime season from the Kitsu
catalog, downloads poster and cover artwork, and writes the normalized
records to <year>/simulcast_<season>_<year>.json.

Run with no flags it exports the current calendar quarter; --season and
--year select a different one.`,
	Version:      fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if logLevel != "" {
			cfg.Logging.Level = logLevel
		}

		logger, err = config.InitLogger(&cfg.Logging)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := pipeline.Options{
			Year:       yearFlag,
			SkipImages: skipImages,
		}
		if seasonFlag != "" {
			s, err := season.Parse(seasonFlag)
			if err != nil {
				return err
			}
			opts.Season = &s
		}

		p := pipeline.New(cfg, logger, opts)
		return p.Run(context.Background(), time.Now())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./simulcast.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&seasonFlag, "season", "", "season to export (winter, spring, summer, fall)")
	rootCmd.Flags().IntVar(&yearFlag, "year", 0, "year to export")
	rootCmd.Flags().BoolVar(&skipImages, "skip-images", false, "skip artwork downloads")
}
