package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	"github.com/haytac/emojify/internal/config"
	"github.com/haytac/emojify/internal/dataset"
	"github.com/haytac/emojify/internal/emoji"
	"github.com/haytac/emojify/internal/metrics"
	"github.com/haytac/emojify/internal/server"
)

// Application holds all dependencies for the service.
type Application struct {
	Config   *config.AppConfig
	Resolver *emoji.Resolver
	Server   *server.Server
}

// NewResolver builds a resolver from the configured dataset source and icon
// size. Shared by the service and the one-shot CLI commands.
func NewResolver(ctx context.Context, cfg *config.AppConfig) (*emoji.Resolver, error) {
	src, err := dataset.ForKind(cfg.Dataset.Source, cfg.Dataset.Path)
	if err != nil {
		return nil, err
	}

	resolver, err := emoji.NewResolver(ctx, src, cfg.IconSize)
	if err != nil {
		return nil, err
	}

	metrics.DatasetRecords.WithLabelValues(cfg.Dataset.Source).Set(float64(resolver.Len()))
	log.Info().
		Str("source", cfg.Dataset.Source).
		Int("records", resolver.Len()).
		Int("icon_size", resolver.IconSize()).
		Msg("Emoji resolver ready")
	return resolver, nil
}

// NewApplication creates and initializes a new application instance.
func NewApplication(ctx context.Context, cfg *config.AppConfig) (*Application, error) {
	resolver, err := NewResolver(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("initializing resolver: %w", err)
	}

	return &Application{
		Config:   cfg,
		Resolver: resolver,
		Server:   server.New(resolver, cfg.Server),
	}, nil
}

// Run starts the metrics endpoint and the render server, blocking until a
// shutdown signal arrives or the server fails.
func (app *Application) Run(ctx context.Context) error {
	log.Info().Msg("Starting application...")

	metrics.StartServer(app.Config.MetricsPort)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case s := <-sigCh:
			log.Info().Str("signal", s.String()).Msg("Received shutdown signal")
			cancel()
		case <-ctx.Done():
		}
	}()

	if err := app.Server.Run(ctx); err != nil {
		return fmt.Errorf("render server: %w", err)
	}

	log.Info().Msg("Application shut down gracefully.")
	return nil
}
