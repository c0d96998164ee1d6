package retry

import (
	"context"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Config controls the bounded retry behavior.
type Config struct {
	Attempts    int           // Total attempts, including the first
	InitialWait time.Duration // Wait before the second attempt
	MaxWait     time.Duration // Upper bound for the exponential backoff
}

// Default is tuned for polling a remote API where transient failures are
// common but a poll cycle must not stall for long.
var Default = Config{
	Attempts:    3,
	InitialWait: 2 * time.Second,
	MaxWait:     30 * time.Second,
}

// Do runs fn up to cfg.Attempts times with exponential backoff between
// attempts. The backoff wait honors context cancellation; a cancelled
// context returns immediately with ctx.Err().
func Do(ctx context.Context, cfg Config, fn func(ctx context.Context) error) error {
	if cfg.Attempts < 1 {
		cfg.Attempts = 1
	}

	logger := ctxlog.From(ctx)
	wait := cfg.InitialWait

	var lastErr error
	for attempt := 1; attempt <= cfg.Attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}
		if attempt == cfg.Attempts {
			break
		}

		logger.Warn("Retrying after failure",
			"attempt", attempt,
			"max_attempts", cfg.Attempts,
			"wait", wait.String(),
			"error", lastErr,
		)

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}

		wait *= 2
		if cfg.MaxWait > 0 && wait > cfg.MaxWait {
			wait = cfg.MaxWait
		}
	}

	return goerr.Wrap(lastErr, "all attempts failed", goerr.V("attempts", cfg.Attempts))
}
