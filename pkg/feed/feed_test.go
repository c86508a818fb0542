package feed_test

import (
	"context"
	"testing"
	"time"

	"github.com/ariapay/ariapay-core/pkg/feed"
	"github.com/ariapay/ariapay-core/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receive(t *testing.T, ch <-chan []models.Transaction) []models.Transaction {
	t.Helper()
	select {
	case txs := <-ch:
		return txs
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for feed value")
		return nil
	}
}

func TestSubscribeReceivesCurrentValue(t *testing.T) {
	f := feed.New()
	f.Publish([]models.Transaction{{Id: "txn_1"}})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := f.Subscribe(ctx)
	txs := receive(t, ch)
	require.Len(t, txs, 1)
	assert.Equal(t, "txn_1", txs[0].Id)
}

func TestStartsEmpty(t *testing.T) {
	f := feed.New()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	assert.Empty(t, receive(t, f.Subscribe(ctx)))
	assert.Empty(t, f.Snapshot())
}

func TestAllSubscribersSeeSameValues(t *testing.T) {
	f := feed.New()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a := f.Subscribe(ctx)
	b := f.Subscribe(ctx)
	receive(t, a)
	receive(t, b)

	f.Publish([]models.Transaction{{Id: "txn_1"}, {Id: "txn_2"}})

	got := receive(t, a)
	assert.Equal(t, got, receive(t, b))
	assert.Len(t, got, 2)
}

func TestConflationKeepsLatest(t *testing.T) {
	f := feed.New()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := f.Subscribe(ctx)
	receive(t, ch)

	// Publish repeatedly without the subscriber reading; only the last
	// value must be observable.
	for i := 0; i < 5; i++ {
		f.Publish([]models.Transaction{{Id: "txn_a"}})
	}
	f.Publish([]models.Transaction{{Id: "txn_final"}})

	txs := receive(t, ch)
	require.Len(t, txs, 1)
	assert.Equal(t, "txn_final", txs[0].Id)
}

func TestCancelDetachesSubscriber(t *testing.T) {
	f := feed.New()

	ctx, cancel := context.WithCancel(context.Background())
	ch := f.Subscribe(ctx)
	receive(t, ch)

	cancel()

	// The channel closes once the subscription is dropped.
	deadline := time.After(time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("channel was not closed after cancellation")
		}
	}
}

func TestPublishCopiesInput(t *testing.T) {
	f := feed.New()

	in := []models.Transaction{{Id: "txn_1"}}
	f.Publish(in)
	in[0].Id = "mutated"

	snap := f.Snapshot()
	require.Len(t, snap, 1)
	assert.Equal(t, "txn_1", snap[0].Id)
}
