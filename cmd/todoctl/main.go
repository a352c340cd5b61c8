package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Adda-Baaj/todoctl/internal/app"
	"github.com/Adda-Baaj/todoctl/internal/cli"
	"github.com/Adda-Baaj/todoctl/internal/config"
	"github.com/Adda-Baaj/todoctl/internal/domain"
	"github.com/Adda-Baaj/todoctl/internal/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "todoctl: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	defaults := cli.Options{
		Color:    cfg.Color,
		LogLevel: cfg.LogLevel,
		Timeout:  cfg.Timeout,
	}
	return cli.Execute(ctx, os.Args[1:], defaults, func(ctx context.Context, opts cli.Options, cmd domain.Command) error {
		return dispatch(ctx, cfg, opts, cmd)
	}, os.Stdout, os.Stderr)
}

func dispatch(ctx context.Context, cfg *config.Config, opts cli.Options, cmd domain.Command) error {
	if err := cfg.SetColor(opts.Color); err != nil {
		return err
	}
	if opts.Timeout < 0 {
		return fmt.Errorf("invalid timeout %s (must be zero or positive)", opts.Timeout)
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(opts.LogLevel))
	cfg.Timeout = opts.Timeout

	log, err := logger.Init(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	logger.DebugObj("todoctl starting", "config", cfg)

	client, err := app.NewClient(cfg, app.Streams{Out: os.Stdout, Err: os.Stderr}, log)
	if err != nil {
		logger.ErrorObj("failed to initialize client", "error", err)
		return err
	}
	return client.Run(ctx, opts.BaseURL, cmd)
}
