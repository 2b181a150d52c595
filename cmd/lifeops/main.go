package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/wfahy/lifeops/internal/cli"
	"github.com/wfahy/lifeops/internal/errors"
	"github.com/wfahy/lifeops/internal/logger"
	"github.com/wfahy/lifeops/internal/session"
	"github.com/wfahy/lifeops/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	DataDir string `help:"Data directory." default:"~/.local/share/lifeops" type:"path"`
	Backend string `help:"Storage backend." enum:"json,sqlite" default:"json"`
	Debug   bool   `help:"Verbose logging to stderr."`

	Init     cli.InitCmd     `cmd:"" help:"Initialize lifeops storage."`
	Today    cli.TodayCmd    `cmd:"" help:"Show the home dashboard." default:"1"`
	Log      cli.LogCmd      `cmd:"" help:"Update today's daily log."`
	History  cli.HistoryCmd  `cmd:"" help:"Show saved days and the weight chart."`
	Summary  cli.SummaryCmd  `cmd:"" help:"Show the weekly summary."`
	Task     cli.TaskCmd     `cmd:"" help:"Manage the task board."`
	Order    cli.OrderCmd    `cmd:"" help:"Manage craft orders."`
	Reminder cli.ReminderCmd `cmd:"" help:"Manage shared reminders."`
	Profile  cli.ProfileCmd  `cmd:"" help:"Manage profiles."`
	Serve    cli.ServeCmd    `cmd:"" help:"Run the e-paper display endpoint."`
	Doctor   cli.DoctorCmd   `cmd:"" help:"Run health checks and diagnostics."`
	Tui      cli.TuiCmd      `cmd:"" help:"Launch the interactive dashboard."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("lifeops"),
		kong.Description("Personal dashboard: daily log, tasks, orders, reminders, and the e-paper display feed"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": "v0.2.0"},
	)

	if err := logger.Init(logger.Config{Debug: CLI.Debug, DataDir: CLI.DataDir}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var kv storage.KV
	switch CLI.Backend {
	case "sqlite":
		kv = storage.NewSQLiteStore(filepath.Join(CLI.DataDir, "lifeops.db"))
	default:
		kv = storage.NewJSONStore(CLI.DataDir)
	}

	store := storage.New(kv)
	if err := store.Init(); err != nil {
		errors.Fatal(err)
	}
	defer store.Close()

	appCtx := &cli.Context{
		Store:   store,
		Session: session.Load(store),
		DataDir: CLI.DataDir,
	}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}
