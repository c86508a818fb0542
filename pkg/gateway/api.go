package gateway

import (
	"context"

	"github.com/ariapay/ariapay-core/pkg/models"
)

// AuthApi defines the authentication operations of the payment gateway.
type AuthApi interface {
	// Login verifies credentials and issues an auth token. Invalid
	// credentials are reported in the response payload, not as an error.
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)

	// Logout invalidates the issued auth token.
	Logout(ctx context.Context) (bool, error)

	// CurrentUser returns the authenticated user, or nil when absent.
	CurrentUser(ctx context.Context) (*models.User, error)
}

// WalletApi defines wallet and card-management operations.
type WalletApi interface {
	// GetWallet recomputes the wallet aggregate from the current card set
	// and ledger size. Returns nil when there is no user.
	GetWallet(ctx context.Context) (*models.Wallet, error)

	// AddCard registers a new card.
	AddCard(ctx context.Context, card models.PaymentCard) (*models.PaymentCard, error)

	// RemoveCard deletes a card by id, reporting whether anything was removed.
	RemoveCard(ctx context.Context, cardId string) (bool, error)

	// SetDefaultCard rewrites the default flag across the whole card set so
	// that at most the card matching cardId ends up default.
	SetDefaultCard(ctx context.Context, cardId string) (bool, error)
}

// TransactionApi defines ledger-facing transaction operations.
type TransactionApi interface {
	// CreateTransaction runs the outcome simulation and appends the
	// resulting transaction to the ledger, declined attempts included.
	CreateTransaction(ctx context.Context, req models.TransactionRequest) (*models.TransactionResponse, error)

	// GetTransaction looks up a transaction by id, nil when absent.
	GetTransaction(ctx context.Context, txId string) (*models.Transaction, error)

	// TransactionHistory returns one page of the ledger, most recent first.
	TransactionHistory(ctx context.Context, page, pageSize int) (*models.TransactionPage, error)
}

// NfcApi defines tap-to-pay operations.
type NfcApi interface {
	// ProcessNfcPayment resolves the card behind the NFC token and runs the
	// payment. An unknown token fails fast without touching the ledger.
	ProcessNfcPayment(ctx context.Context, data models.NfcPaymentData, amount float64, merchantId, merchantName string) (*models.PaymentResult, error)

	// ValidateNfcToken reports whether a token belongs to an NFC-enabled card.
	ValidateNfcToken(ctx context.Context, tokenId string) (bool, error)
}

// Api is the complete gateway surface. It is the terminal dependency of
// the wallet core; a real payment-network client would implement the same
// interface. Components should depend on the granular interfaces above
// where they can.
type Api interface {
	AuthApi
	WalletApi
	TransactionApi
	NfcApi
}
