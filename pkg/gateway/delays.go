package gateway

import (
	"context"
	"time"
)

// Delays is the synthetic latency profile of the mock gateway. Each
// field is the pause imposed before the corresponding operation resolves.
// The zero value makes every operation instantaneous, which is what tests
// want. Nfc is the tap-to-pay pre-processing pause; the nested
// CreateTransaction delay is added on top, so a full NFC payment takes
// Nfc + Transaction.
type Delays struct {
	Login       time.Duration
	Session     time.Duration
	Wallet      time.Duration
	Card        time.Duration
	Transaction time.Duration
	History     time.Duration
	Nfc         time.Duration
}

// DefaultDelays mirrors the latency of the simulated payment network:
// login ~800ms, lookups ~400-600ms, transaction creation 1.5s, NFC
// payment ~2s end to end.
func DefaultDelays() Delays {
	return Delays{
		Login:       800 * time.Millisecond,
		Session:     400 * time.Millisecond,
		Wallet:      500 * time.Millisecond,
		Card:        600 * time.Millisecond,
		Transaction: 1500 * time.Millisecond,
		History:     600 * time.Millisecond,
		Nfc:         500 * time.Millisecond,
	}
}

// wait pauses for d, returning early with the context's error if the
// caller abandons the call. Every gateway suspension point goes through
// here so cancelled work stops instead of running to completion.
func wait(ctx context.Context, d time.Duration) error {
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
