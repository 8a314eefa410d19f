// Package main is the entry point for the terminal portfolio.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"github.com/arliss/portfolio/internal/app"
	"github.com/arliss/portfolio/internal/audio"
	"github.com/arliss/portfolio/internal/config"
	"github.com/arliss/portfolio/internal/logger"
	"github.com/arliss/portfolio/internal/plain"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if path := config.WriteConfigPath(); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Config written to %s\n", path)
		return
	}

	usePlain := cfg.Terminal.Plain || !stdoutIsTerminal()

	// Console logging would draw over the full-screen view.
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile, usePlain); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== " + cfg.Profile.Name + " ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if usePlain {
		if err := plain.Play(ctx, os.Stdout, cfg); err != nil && !plain.IsCancel(err) {
			logger.Error("plain output failed", zap.Error(err))
			os.Exit(1)
		}
		return
	}

	// Audio is optional
	player, err := audio.FromConfig(cfg.Audio)
	if err != nil {
		logger.Warn("audio initialization failed", zap.Error(err))
	}
	defer player.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		logger.Error("failed to create screen", zap.Error(err))
		os.Exit(1)
	}

	a, err := app.New(cfg, screen, player)
	if err != nil {
		logger.Error("failed to create app", zap.Error(err))
		os.Exit(1)
	}

	// Run the main loop
	runErr := a.Run(ctx)
	a.Close()
	if runErr != nil {
		logger.Error("app error", zap.Error(runErr))
		os.Exit(1)
	}

	logger.Info("app closed normally")
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
