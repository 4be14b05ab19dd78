package connector

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

func retryConnect(ctx context.Context, opts RetryConfig, logger zerolog.Logger, connectFn func(context.Context) (Connection, error)) (Connection, error) {
	var err error
	var conn Connection
	delay := opts.BaseDelay
	if delay == 0 {
		delay = time.Second // default
	}
	factor := opts.Backoff
	if factor < 1 {
		factor = 2
	}

	for i := 0; i < opts.MaxRetries; i++ {
		conn, err = connectFn(ctx)
		if err == nil {
			return conn, nil
		}
		if i == opts.MaxRetries-1 {
			break
		}

		logger.Warn().Err(err).Int("attempt", i+1).Dur("delay", delay).Msg("Connect failed, retrying")

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
			delay = time.Duration(float64(delay) * factor)
			if delay > opts.MaxDelay && opts.MaxDelay > 0 {
				delay = opts.MaxDelay
			}
		}
	}
	return nil, err
}
