package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/gauntlet/internal/app"
	"github.com/ternarybob/gauntlet/internal/common"
	"github.com/ternarybob/gauntlet/internal/scheduler"
)

// configPaths is a custom flag type that allows multiple -config flags
type configPaths []string

func (c *configPaths) String() string {
	return fmt.Sprintf("%v", *c)
}

func (c *configPaths) Set(value string) error {
	*c = append(*c, value)
	return nil
}

var (
	// Command-line flags
	configFiles  configPaths // Multiple -config flags supported
	tickerList   = flag.String("tickers", "", "Comma-separated tickers to score (overrides config watchlist)")
	tickerListT  = flag.String("t", "", "Comma-separated tickers (shorthand)")
	schedule     = flag.String("schedule", "", "Cron expression for watch mode (overrides config)")
	exportDir    = flag.String("out", "", "Export directory (overrides config)")
	showVersion  = flag.Bool("version", false, "Print version information")
	showVersionV = flag.Bool("v", false, "Print version information (shorthand)")

	// Global state
	config *common.Config
	logger arbor.ILogger
)

func init() {
	// Register custom flag for multiple config files
	flag.Var(&configFiles, "config", "Configuration file path (can be specified multiple times, later files override earlier ones)")
	flag.Var(&configFiles, "c", "Configuration file path (shorthand)")
}

func main() {
	flag.Parse()

	if *showVersion || *showVersionV {
		fmt.Printf("Gauntlet version %s\n", common.GetVersion())
		os.Exit(0)
	}

	tickers := splitTickers(*tickerList)
	if len(tickers) == 0 {
		tickers = splitTickers(*tickerListT)
	}

	// Startup sequence (REQUIRED ORDER):
	// 1. Load config (defaults -> file1 -> file2 -> ... -> env)
	// 2. Apply CLI overrides (highest priority)
	// 3. Initialize logger
	// 4. Print banner
	var err error

	// Auto-discover config file if not specified
	if len(configFiles) == 0 {
		if _, err := os.Stat("gauntlet.toml"); err == nil {
			configFiles = append(configFiles, "gauntlet.toml")
		} else if _, err := os.Stat("deployments/local/gauntlet.toml"); err == nil {
			configFiles = append(configFiles, "deployments/local/gauntlet.toml")
		}
	}

	config, err = common.LoadFromFiles(configFiles...)
	if err != nil {
		tempLogger := arbor.NewLogger()
		tempLogger.Fatal().Strs("paths", configFiles).Err(err).Msg("Failed to load configuration")
		os.Exit(1)
	}

	common.ApplyFlagOverrides(config, tickers, *schedule, *exportDir)

	logger = common.InitLogger(config)
	common.PrintBanner(common.GetVersion())

	if len(config.Watchlist.Tickers) == 0 {
		logger.Fatal().Msg("No tickers to score: set -tickers or the watchlist in config")
		os.Exit(1)
	}

	application, err := app.New(config, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize application")
		os.Exit(1)
	}
	defer application.Close()

	if config.Watchlist.Schedule != "" {
		runWatchMode(application)
		return
	}
	runOnce(application)
}

// runOnce scores the watchlist a single time and writes the reports.
func runOnce(application *app.App) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	run, err := application.Checklist.Run(ctx, application.Config.Watchlist.Tickers)
	if err != nil {
		logger.Fatal().Err(err).Msg("Checklist run failed")
		os.Exit(1)
	}

	paths, err := application.Export.Write(run)
	if err != nil {
		logger.Fatal().Err(err).Str("run_id", run.RunID).Msg("Report export failed")
		os.Exit(1)
	}

	for _, result := range run.Results {
		fmt.Printf("%-8s %8.1f\n", result.Ticker, result.Total())
	}
	for _, path := range paths {
		fmt.Printf("report: %s\n", path)
	}

	logger.Info().
		Str("run_id", run.RunID).
		Int("results", len(run.Results)).
		Str("duration", run.Duration.Round(time.Millisecond).String()).
		Msg("Run complete")
}

// runWatchMode schedules recurring runs until interrupted.
func runWatchMode(application *app.App) {
	sched := scheduler.NewScheduler(
		application.Checklist,
		application.Export,
		application.Config.Watchlist.Tickers,
		logger,
	)
	if err := sched.Start(application.Config.Watchlist.Schedule); err != nil {
		logger.Fatal().Err(err).Str("schedule", application.Config.Watchlist.Schedule).Msg("Invalid schedule")
		os.Exit(1)
	}

	logger.Info().Msg("Watch mode running - Press Ctrl+C to stop")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info().Msg("Interrupt signal received")
	sched.Stop()
}

func splitTickers(list string) []string {
	if strings.TrimSpace(list) == "" {
		return nil
	}
	var tickers []string
	for _, t := range strings.Split(list, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tickers = append(tickers, t)
		}
	}
	return tickers
}
