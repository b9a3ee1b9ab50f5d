package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"aivault-portal/internal/adapters/primary/cli"
	"aivault-portal/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	initLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := cli.New(cfg, afero.NewOsFs(), os.Stdout)
	if err := app.Run(ctx, os.Args[1:]); err != nil {
		stop()
		log.WithError(err).Error("command failed")
		os.Exit(1)
	}
}

// initLogger keeps stdout for command output; logs go to stderr as text unless JSON is asked
// for explicitly.
func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
	log.SetOutput(os.Stderr)

	if cfg.Logger.Format == "json" && os.Getenv("LOGGER_FORMAT") != "" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
