package pipeline

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Gate is the shared rate-limiting gate every check task passes through
// before touching the network. It is injected rather than ambient so tests
// can substitute a no-op.
type Gate interface {
	Wait(ctx context.Context) error
}

type limiterGate struct {
	limiter *rate.Limiter
}

// NewGate returns a Gate that spaces acquisitions by delay across all
// workers combined.
func NewGate(delay time.Duration) Gate {
	return &limiterGate{limiter: rate.NewLimiter(rate.Every(delay), 1)}
}

func (g *limiterGate) Wait(ctx context.Context) error {
	return g.limiter.Wait(ctx)
}

// NopGate never blocks
type NopGate struct{}

func (NopGate) Wait(context.Context) error { return nil }
