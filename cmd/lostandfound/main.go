// Package main provides the lost and found manager, a terminal application
// for a counter clerk's ledger of lost and found item reports: recording,
// searching, matching lost reports with found ones, and tracking claims,
// backed by a single binary data file.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/haleta-e/lost-and-found-manager/pkg/config"
	"github.com/haleta-e/lost-and-found-manager/pkg/logging"
	"github.com/haleta-e/lost-and-found-manager/pkg/registry"
	"github.com/haleta-e/lost-and-found-manager/pkg/tui"
)

const version = "0.1.0"

// options holds the command line flags. Flags override the config file.
type options struct {
	configPath  string
	dataFile    string
	debug       bool
	showVersion bool
}

func main() {
	opts := parseFlags()

	if opts.showVersion {
		fmt.Printf("lostandfound v%s\n", version)
		return
	}

	// Create context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	if runErr := run(ctx, opts); runErr != nil {
		cancel()
		log.Fatalf("Application error: %v", runErr)
	}
}

func parseFlags() *options {
	opts := &options{}

	flag.StringVar(&opts.configPath, "config", config.DefaultPath(), "Path to the YAML config file")
	flag.StringVar(&opts.dataFile, "file", "", "Path to the binary data file (overrides the config)")
	flag.BoolVar(&opts.debug, "debug", false, "Write debug-level log entries")
	flag.BoolVar(&opts.showVersion, "version", false, "Show version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "lostandfound - a lost & found registry for the terminal\n\n")
		fmt.Fprintf(os.Stderr, "Usage: lostandfound [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  lostandfound                               # %s in the working directory\n", config.DefaultFileName)
		fmt.Fprintf(os.Stderr, "  lostandfound -file /srv/depot/items.bin    # shared data file\n")
		fmt.Fprintf(os.Stderr, "  lostandfound -debug                        # verbose session log\n")
	}

	flag.Parse()
	return opts
}

// run loads configuration and data, then hands the terminal to the UI.
func run(ctx context.Context, opts *options) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.dataFile != "" {
		cfg.DataFile = opts.dataFile
	}
	if opts.debug {
		cfg.Debug = true
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logging.SetDirectory(cfg.LogDir)
	logging.SetDebug(cfg.Debug)

	reg := registry.New(cfg.DataFile)
	if err := reg.Load(); err != nil {
		// A corrupt data file starts an empty session and is overwritten by
		// the next save. Say so before the UI takes the screen.
		fmt.Fprintf(os.Stderr, "warning: %v; starting with an empty registry\n", err)
	}

	return tui.NewApp(reg, cfg).Run(ctx)
}
