package assistant

import (
	"context"
	"time"
)

// Settler simulates (or one day performs) payment settlement for a
// checkout. The engine clears the cart only after Settle returns nil.
type Settler interface {
	Settle(ctx context.Context) error
}

// DelaySettler is the checkout simulation: it waits a fixed delay and
// succeeds. No payment gateway is involved.
type DelaySettler struct {
	Delay time.Duration
}

func (s DelaySettler) Settle(ctx context.Context) error {
	if s.Delay <= 0 {
		return nil
	}
	timer := time.NewTimer(s.Delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
