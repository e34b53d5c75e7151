// Package bootstrap wires configuration, logging and storage for the Lambda
// binaries.
package bootstrap

import (
	"context"
	"log/slog"
	"os"

	"github.com/jacentio/products/config"
	"github.com/jacentio/products/handler"
	"github.com/jacentio/products/store"
)

// Handler builds a product handler from the process environment.
// Call it once per execution environment, outside the invocation path.
func Handler(ctx context.Context) (*handler.Handler, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := NewLogger(cfg)

	client, err := cfg.NewDynamoDBClient(ctx)
	if err != nil {
		return nil, err
	}

	s := store.New(client, store.Config{TableName: cfg.TableName})

	logger.Debug("handler initialized",
		"table", s.TableName(),
		"region", cfg.Region,
		"credentialSource", cfg.CredentialSource,
	)

	return handler.New(s, logger), nil
}

// NewLogger returns a JSON logger on stdout at the configured level.
func NewLogger(cfg *config.Config) *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.Level(),
	}))
}

// Must is a helper for main packages: it logs err and exits the process.
func Must(h *handler.Handler, err error) *handler.Handler {
	if err != nil {
		slog.Error("failed to initialize handler", "error", err)
		os.Exit(1)
	}
	return h
}
