package app

import (
	"context"
	"fmt"
	"io"

	"github.com/Adda-Baaj/todoctl/internal/config"
	"github.com/Adda-Baaj/todoctl/internal/domain"
	"github.com/Adda-Baaj/todoctl/internal/logger"
	"github.com/Adda-Baaj/todoctl/internal/output"
	"github.com/Adda-Baaj/todoctl/internal/runner"
	"github.com/Adda-Baaj/todoctl/internal/todoapi"
	"github.com/Adda-Baaj/todoctl/pkg/httpclient"
)

// Client wires together the transport, printer and runner for one invocation.
type Client struct {
	runner *runner.Runner
	log    logger.Logger
}

// Streams are the primary and diagnostic outputs.
type Streams struct {
	Out io.Writer
	Err io.Writer
}

// NewClient builds a client runtime from config.
func NewClient(cfg *config.Config, streams Streams, log logger.Logger) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if streams.Out == nil || streams.Err == nil {
		return nil, fmt.Errorf("output streams must not be nil")
	}
	if log == nil {
		log = &logger.NopLogger{}
	}

	transport := httpclient.NewRestyClient(cfg.Timeout)
	printer := output.NewPrinter(streams.Out, streams.Err, output.ColorMode(cfg.Color))

	return &Client{
		runner: runner.New(transport, printer, log),
		log:    log,
	}, nil
}

// Run derives the request for cmd against baseURL and performs it.
func (c *Client) Run(ctx context.Context, baseURL string, cmd domain.Command) error {
	if c == nil || c.runner == nil {
		return fmt.Errorf("client is not initialized")
	}

	spec, err := todoapi.NewRequestSpec(baseURL, cmd)
	if err != nil {
		return fmt.Errorf("build %s request: %w", cmd.Kind, err)
	}
	c.log.DebugObj("command resolved", "command", map[string]any{
		"kind":   cmd.Kind.String(),
		"method": spec.Method,
		"url":    spec.URL,
	})

	return c.runner.Execute(ctx, spec)
}
