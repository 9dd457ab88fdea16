//go:build cgo
// +build cgo

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/appengine-ltd/stop-it/internal/app"
	"github.com/appengine-ltd/stop-it/internal/gui"
)

// version, commit, date are injected at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	fs := flag.NewFlagSet("stop-it", flag.ExitOnError)
	showVersion := fs.Bool("version", false, "print version and exit")
	cfg, err := app.ParseConfig(fs, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if *showVersion {
		fmt.Printf("Stop It %s (%s) %s\n", version, commit, date)
		return
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	window := gui.Open(1280, 720, "Stop It", version)
	code, err := app.NewApp(cfg, app.WithVersion(version)).Run(ctx, window)
	window.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	stop()
	os.Exit(int(code))
}
