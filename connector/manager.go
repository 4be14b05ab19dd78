package connector

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

var globalManager = &Manager{
	providers: make(map[string]Provider),
}

type Manager struct {
	providers map[string]Provider
	mu        sync.RWMutex
}

func Register(name string, provider Provider) {
	globalManager.mu.Lock()
	defer globalManager.mu.Unlock()
	globalManager.providers[name] = provider
}

func lookup(name string) (Provider, bool) {
	globalManager.mu.RLock()
	defer globalManager.mu.RUnlock()
	p, ok := globalManager.providers[name]
	return p, ok
}

// Open connects with the provider registered for cfg.Driver, honouring
// the connect timeout and retry policy from cfg.
func Open(ctx context.Context, cfg Config, logger zerolog.Logger) (Connection, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	provider, ok := lookup(cfg.DriverName())
	if !ok {
		return nil, fmt.Errorf("provider %s not registered", cfg.DriverName())
	}

	logger = logger.With().Str("component", "connector").Str("driver", cfg.DriverName()).Logger()

	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	connect := func(ctx context.Context) (Connection, error) {
		return provider.Connect(ctx, cfg)
	}

	if cfg.Retry == nil {
		return connect(ctx)
	}

	conn, err := retryConnect(ctx, *cfg.Retry, logger, connect)
	if err != nil {
		return nil, fmt.Errorf("failed to connect after %d retries: %w", cfg.Retry.MaxRetries, err)
	}
	return conn, nil
}
