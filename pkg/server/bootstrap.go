package server

import (
	"context"

	"ark-lookup-api/internal/config"
)

// Bootstrap loads configuration for the current deployment mode, configures
// logging and opens the store client. Any error is a startup failure.
func Bootstrap(ctx context.Context, opts ...Option) (*Container, error) {
	cfg, err := config.GetOptimizedConfig()
	if err != nil {
		return nil, err
	}

	logger := config.ConfigureLogging(cfg, config.GetServerlessConfig())
	opts = append([]Option{WithLogger(logger)}, opts...)

	return NewContainer(ctx, cfg, opts...)
}
