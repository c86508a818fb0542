// Package repository adapts the gateway's response-shaped API into the
// uniform (payload, error) contract consumed by UI-facing callers, caches
// the session state and republishes the ledger as an observable feed.
package repository

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ariapay/ariapay-core/pkg/feed"
	"github.com/ariapay/ariapay-core/pkg/gateway"
	"github.com/ariapay/ariapay-core/pkg/models"
)

// DefaultPageSize is the history page size used when resynchronizing the
// feed after a successful mutation.
const DefaultPageSize = 20

// PaymentService is the boundary contract the UI layer calls into.
// Business failures reported inside gateway payloads (invalid
// credentials, declines) stay inside the returned payloads; only
// systemic faults surface as errors.
type PaymentService interface {
	Login(ctx context.Context, email, password string) (*models.LoginResponse, error)
	Logout(ctx context.Context) error
	IsLoggedIn() bool
	CurrentUser(ctx context.Context) (*models.User, error)
	GetWallet(ctx context.Context) (*models.Wallet, error)
	DefaultCard(ctx context.Context) (*models.PaymentCard, error)
	CreateTransaction(ctx context.Context, req models.TransactionRequest) (*models.Transaction, error)
	TransactionHistory(ctx context.Context, page, pageSize int) (*models.TransactionPage, error)
	ObserveTransactions(ctx context.Context) <-chan []models.Transaction
	ProcessNfcPayment(ctx context.Context, data models.NfcPaymentData, amount float64, merchantId, merchantName string) (*models.PaymentResult, error)
}

// Repository implements PaymentService over a gateway. It holds the
// cached auth token, user and wallet, and owns the published transaction
// snapshot. The feed is a republished copy, never the source of truth:
// every successful mutation re-fetches page 1 from the gateway and
// replaces the snapshot.
type Repository struct {
	api  gateway.Api
	feed *feed.TransactionFeed

	mu     sync.Mutex
	token  *models.AuthToken
	user   *models.User
	wallet *models.Wallet
}

// New creates a Repository over the given gateway.
func New(api gateway.Api) *Repository {
	return &Repository{api: api, feed: feed.New()}
}

// Make sure we conform to the interface
var _ PaymentService = (*Repository)(nil)

// Login delegates to the gateway and caches the issued token and user on
// success. An invalid-credentials response is NOT an error: the caller
// must check the payload's own Success flag.
func (r *Repository) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	resp, err := r.api.Login(ctx, models.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	if resp.Success {
		r.mu.Lock()
		r.token = resp.Token
		r.user = resp.User
		r.mu.Unlock()
	}
	return resp, nil
}

// Logout clears the cached session and resets the published snapshot.
func (r *Repository) Logout(ctx context.Context) error {
	ok, err := r.api.Logout(ctx)
	if err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}
	if !ok {
		return ErrLogoutRejected
	}

	r.mu.Lock()
	r.token = nil
	r.user = nil
	r.wallet = nil
	r.mu.Unlock()

	r.feed.Publish(nil)
	return nil
}

// IsLoggedIn is a pure predicate on the cached token; no gateway call.
func (r *Repository) IsLoggedIn() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.token != nil
}

// CurrentUser is a cache-first read.
func (r *Repository) CurrentUser(ctx context.Context) (*models.User, error) {
	r.mu.Lock()
	cached := r.user
	r.mu.Unlock()
	if cached != nil {
		return cached, nil
	}

	user, err := r.api.CurrentUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	r.mu.Lock()
	r.user = user
	r.mu.Unlock()
	return user, nil
}

// GetWallet fetches a fresh wallet aggregate and refreshes the cache.
func (r *Repository) GetWallet(ctx context.Context) (*models.Wallet, error) {
	wallet, err := r.api.GetWallet(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch wallet: %w", err)
	}
	if wallet == nil {
		return nil, ErrWalletNotFound
	}

	r.mu.Lock()
	r.wallet = wallet
	r.mu.Unlock()
	return wallet, nil
}

// DefaultCard derives the default card from the cached wallet, fetching
// one when the cache is cold. It prefers the default-flagged card, falls
// back to the first card, and reports an empty card set as (nil, nil).
func (r *Repository) DefaultCard(ctx context.Context) (*models.PaymentCard, error) {
	r.mu.Lock()
	wallet := r.wallet
	r.mu.Unlock()

	if wallet == nil {
		fetched, err := r.api.GetWallet(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch wallet: %w", err)
		}
		if fetched == nil {
			return nil, nil
		}
		r.mu.Lock()
		r.wallet = fetched
		r.mu.Unlock()
		wallet = fetched
	}

	for i := range wallet.Cards {
		if wallet.Cards[i].IsDefault {
			card := wallet.Cards[i]
			return &card, nil
		}
	}
	if len(wallet.Cards) > 0 {
		card := wallet.Cards[0]
		return &card, nil
	}
	return nil, nil
}

// CreateTransaction delegates to the gateway. A business decline becomes
// an ErrTransactionFailed carrying the gateway's message; a success
// resynchronizes the published snapshot from page 1.
func (r *Repository) CreateTransaction(ctx context.Context, req models.TransactionRequest) (*models.Transaction, error) {
	resp, err := r.api.CreateTransaction(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	if !resp.Success || resp.Transaction == nil {
		if resp.ErrorMessage != "" {
			return nil, fmt.Errorf("%w: %s", ErrTransactionFailed, resp.ErrorMessage)
		}
		return nil, ErrTransactionFailed
	}

	r.refreshHistory(ctx)
	return resp.Transaction, nil
}

// TransactionHistory fetches one page. Page 1 replaces the published
// snapshot; later pages append to it.
func (r *Repository) TransactionHistory(ctx context.Context, page, pageSize int) (*models.TransactionPage, error) {
	result, err := r.api.TransactionHistory(ctx, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transaction history: %w", err)
	}

	if page <= 1 {
		r.feed.Publish(result.Transactions)
	} else {
		r.feed.Publish(append(r.feed.Snapshot(), result.Transactions...))
	}
	return result, nil
}

// ObserveTransactions subscribes to the published snapshot. The channel
// carries the current value immediately and every update thereafter, and
// closes when ctx is cancelled.
func (r *Repository) ObserveTransactions(ctx context.Context) <-chan []models.Transaction {
	return r.feed.Subscribe(ctx)
}

// ProcessNfcPayment delegates to the gateway. Declines stay inside the
// returned PaymentResult; a business success resynchronizes the snapshot.
func (r *Repository) ProcessNfcPayment(ctx context.Context, data models.NfcPaymentData, amount float64, merchantId, merchantName string) (*models.PaymentResult, error) {
	result, err := r.api.ProcessNfcPayment(ctx, data, amount, merchantId, merchantName)
	if err != nil {
		return nil, fmt.Errorf("nfc payment failed: %w", err)
	}

	if result.Success {
		r.refreshHistory(ctx)
	}
	return result, nil
}

// refreshHistory re-fetches page 1 and replaces the snapshot. The
// mutation that triggered it already succeeded, so a failed refresh is
// logged rather than surfaced.
func (r *Repository) refreshHistory(ctx context.Context) {
	if _, err := r.TransactionHistory(ctx, 1, DefaultPageSize); err != nil {
		slog.Warn("failed to refresh transaction history", "error", err)
	}
}
