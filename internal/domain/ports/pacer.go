package ports

import (
	"context"
	"time"
)

// Pacer spaces out remote requests.
type Pacer interface {
	Wait(ctx context.Context, d time.Duration) error
}
