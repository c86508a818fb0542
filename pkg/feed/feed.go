// Package feed provides an in-process fan-out of the ledger snapshot so
// multiple observers can follow the transaction history as it changes.
package feed

import (
	"context"
	"sync"

	"github.com/ariapay/ariapay-core/pkg/models"
)

// TransactionFeed holds the published ledger snapshot and pushes every
// update to all subscribers. Subscribers always see the latest value:
// each channel is conflated, so a slow reader skips intermediate
// snapshots instead of blocking the publisher.
type TransactionFeed struct {
	mu       sync.Mutex
	snapshot []models.Transaction
	subs     map[int]chan []models.Transaction
	nextID   int
}

// New creates a feed with an empty snapshot.
func New() *TransactionFeed {
	return &TransactionFeed{subs: make(map[int]chan []models.Transaction)}
}

// Publish replaces the snapshot and notifies every subscriber.
func (f *TransactionFeed) Publish(txs []models.Transaction) {
	snapshot := make([]models.Transaction, len(txs))
	copy(snapshot, txs)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.snapshot = snapshot

	for _, ch := range f.subs {
		// Conflate: drop the stale value, then deliver the new one.
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- snapshot:
		default:
		}
	}
}

// Snapshot returns a copy of the current published value.
func (f *TransactionFeed) Snapshot() []models.Transaction {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Transaction, len(f.snapshot))
	copy(out, f.snapshot)
	return out
}

// Subscribe registers an observer. The returned channel immediately
// carries the current snapshot and then every subsequent publish. The
// subscription is dropped and the channel closed when ctx is cancelled.
func (f *TransactionFeed) Subscribe(ctx context.Context) <-chan []models.Transaction {
	ch := make(chan []models.Transaction, 1)

	f.mu.Lock()
	id := f.nextID
	f.nextID++
	f.subs[id] = ch
	ch <- f.snapshot
	f.mu.Unlock()

	go func() {
		<-ctx.Done()
		f.mu.Lock()
		delete(f.subs, id)
		f.mu.Unlock()
		close(ch)
	}()

	return ch
}
