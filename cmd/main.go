package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/urfave/cli/v2"

	service "github.com/clubtarot/standings/internal/app"
	"github.com/clubtarot/standings/internal/config"
	"github.com/clubtarot/standings/pkg/logger"
)

func main() {
	// Initialize logging
	if err := logger.Init(); err != nil {
		// Use stderr for initialization errors since logger isn't available yet
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := &cli.App{
		Name:      "standings",
		Usage:     "aggregate a multi-sheet tournament workbook into a ranked season leaderboard",
		ArgsUsage: "<workbook.xlsx>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "out", Usage: "output directory"},
			&cli.BoolFlag{Name: "csv", Usage: "export a CSV file"},
			&cli.BoolFlag{Name: "pdf", Usage: "export a landscape PDF"},
			&cli.StringFlag{Name: "day", Usage: "tournament day label"},
			&cli.IntFlag{Name: "top", Usage: "number of best contributions kept per player"},
			&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error"},
		},
		Action: run,
	}

	if err := app.RunContext(ctx, os.Args); err != nil {
		logger.Get().Error(ctx, "run failed", logger.Error(err))
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	ctx := c.Context

	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one workbook path, got %d arguments", c.NArg())
	}
	workbookPath := c.Args().First()

	// Load configuration (defaults -> optional file -> env), then let
	// command-line flags override.
	cfg, err := config.Load(ctx)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	applyFlags(c, cfg)

	// Apply configured log level (fallback to info on invalid input)
	log := logger.Get()
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	svc := service.New(
		service.WithLogger(log),
		service.WithTopK(cfg.TopK),
		service.WithRowWindow(cfg.StartRow, cfg.EndRow),
		service.WithColumns(cfg.ColSurname, cfg.ColGivenName, cfg.ColScore, cfg.ColPoints),
		service.WithDayLabel(cfg.Day),
		service.WithOutputDir(cfg.OutDir),
		service.WithFormats(cfg.CSV, cfg.PDF),
	)

	outputs, err := svc.Run(ctx, workbookPath)
	if err != nil {
		return err
	}

	kinds := make([]string, 0, len(outputs))
	for kind := range outputs {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	for _, kind := range kinds {
		fmt.Printf("Export %s: %s\n", strings.ToUpper(kind), outputs[kind])
	}
	return nil
}

// applyFlags overlays explicitly-set command-line flags onto the loaded
// configuration.
func applyFlags(c *cli.Context, cfg *config.Config) {
	if c.IsSet("out") {
		cfg.OutDir = c.String("out")
	}
	if c.IsSet("csv") {
		cfg.CSV = c.Bool("csv")
	}
	if c.IsSet("pdf") {
		cfg.PDF = c.Bool("pdf")
	}
	if c.IsSet("day") {
		cfg.Day = c.String("day")
	}
	if c.IsSet("top") {
		cfg.TopK = c.Int("top")
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
}
