package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/scout/pkg/config"
	"github.com/umputun/scout/pkg/feed"
	"github.com/umputun/scout/pkg/monitor"
	"github.com/umputun/scout/pkg/report"
	"github.com/umputun/scout/pkg/repository"
	"github.com/umputun/scout/pkg/scheduler"
	"github.com/umputun/scout/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"f" long:"config" env:"SCOUT_CONFIG" default:"scout.yml" description:"configuration file"`
	Days   int    `long:"days" env:"DAYS" description:"monitoring window in days, overrides config"`
	JSON   bool   `long:"json" description:"print report as JSON"`
	Server bool   `long:"server" env:"SERVER" description:"run HTTP server with periodic refresh"`
	Listen string `short:"l" long:"listen" env:"LISTEN" description:"listen address, overrides config"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	if opts.NoColor {
		color.NoColor = true
	}

	setupLog(opts.Debug)

	log.Printf("[INFO] starting scout version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()

	if err != nil {
		log.Printf("[ERROR] scout failed: %v", err)
		os.Exit(1)
	}
}

// run loads configuration and executes either a single monitoring pass or
// the HTTP server with periodic refresh
func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if opts.Days > 0 {
		cfg.Monitor.Days = opts.Days
	}
	if opts.Listen != "" {
		cfg.Server.Listen = opts.Listen
	}

	cache, err := repository.New(ctx, repository.Config{
		DSN:             cfg.Cache.DSN,
		TTL:             cfg.Cache.TTL,
		MaxOpenConns:    cfg.Cache.MaxOpenConns,
		MaxIdleConns:    cfg.Cache.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Cache.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to init cache: %w", err)
	}
	defer func() {
		if err := cache.Close(); err != nil {
			log.Printf("[WARN] failed to close cache: %v", err)
		}
	}()

	fetcher := feed.NewFetcher(cfg.Monitor.FetchTimeout, cfg.Monitor.UserAgent)
	mon := monitor.New(cfg, fetcher, cache)

	if opts.Server {
		return runServer(ctx, cfg, mon, cache, opts.Debug)
	}
	return runOnce(ctx, mon, cfg.Monitor.Days, opts.JSON)
}

// runOnce executes a single monitoring pass and prints the report to stdout
func runOnce(ctx context.Context, mon *monitor.Monitor, days int, asJSON bool) error {
	rep, err := mon.Run(ctx, days)
	if err != nil {
		return fmt.Errorf("monitoring pass failed: %w", err)
	}

	if asJSON {
		out, err := report.FormatJSON(rep)
		if err != nil {
			return fmt.Errorf("failed to format report: %w", err)
		}
		fmt.Println(out)
		return nil
	}

	fmt.Println(report.FormatText(rep))
	return nil
}

// runServer starts the periodic refresh loop and serves reports over HTTP
func runServer(ctx context.Context, cfg *config.Config, mon *monitor.Monitor, cache *repository.Cache, debug bool) error {
	sched := scheduler.NewScheduler(mon, cache, scheduler.Config{
		UpdateInterval: cfg.Monitor.UpdateInterval,
		Days:           cfg.Monitor.Days,
	})
	sched.Start(ctx)
	defer sched.Stop()

	srv := server.New(cfg, sched, cache, revision, debug)
	return srv.Run(ctx)
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Out(os.Stderr), lgr.Err(os.Stderr), lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	if dbg {
		logOpts = []lgr.Option{lgr.Out(os.Stderr), lgr.Err(os.Stderr), lgr.Debug, lgr.CallerFile, lgr.CallerFunc, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
