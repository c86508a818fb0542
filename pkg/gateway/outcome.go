package gateway

import (
	"math/rand"
	"sync"
	"time"
)

// DefaultSuccessRate is the fraction of transaction attempts the
// simulator approves.
const DefaultSuccessRate = 0.90

// Outcome decides whether a simulated transaction is authorized. It is a
// stand-in for a real payment-authorization decision: a uniform draw in
// [0,1) below the configured rate approves the attempt. Rate and source
// are injectable so tests can pin the verdict.
type Outcome struct {
	mu   sync.Mutex
	rate float64
	rng  *rand.Rand
}

// NewOutcome creates a simulator with the given success rate. A nil
// source is seeded from the clock.
func NewOutcome(rate float64, src rand.Source) *Outcome {
	if src == nil {
		src = rand.NewSource(time.Now().UnixNano())
	}
	return &Outcome{rate: rate, rng: rand.New(src)}
}

// Approve draws the verdict for one attempt.
func (o *Outcome) Approve() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.rng.Float64() < o.rate
}
