package pacing

import (
	"context"
	"time"

	"leetcode-sync/internal/domain/ports"
)

// Sleeper waits for the requested duration using wall-clock timers.
type Sleeper struct{}

var _ ports.Pacer = Sleeper{}

// Wait blocks for d or until ctx is done.
func (Sleeper) Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// None never waits. Tests use it to run without delays.
type None struct{}

var _ ports.Pacer = None{}

// Wait returns immediately unless ctx is already done.
func (None) Wait(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}
