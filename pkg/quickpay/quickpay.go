// Package quickpay composes "find the default card" and "pay via NFC"
// into a single call so callers never handle card details themselves.
package quickpay

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ariapay/ariapay-core/pkg/models"
	"github.com/ariapay/ariapay-core/pkg/repository"
)

// Failure messages surfaced to callers. Every failure is terminal for
// the call; there are no retries.
var (
	ErrNoCardAvailable = errors.New("No payment card available")
	ErrNoDefaultCard   = errors.New("No default card set")
	ErrNfcDisabled     = errors.New("NFC not enabled for this card")
)

// Orchestrator performs quick-pay over the payment service boundary.
type Orchestrator struct {
	payments repository.PaymentService
	now      func() time.Time
}

// New creates an Orchestrator.
func New(payments repository.PaymentService) *Orchestrator {
	return &Orchestrator{payments: payments, now: time.Now}
}

// Pay resolves the account's default card and pays the merchant with its
// NFC token. A card with NFC disabled fails before any gateway call is
// made. The payment result is returned verbatim, declines included.
func (o *Orchestrator) Pay(ctx context.Context, amount float64, merchantId, merchantName string) (*models.PaymentResult, error) {
	card, err := o.payments.DefaultCard(ctx)
	if err != nil {
		return nil, ErrNoCardAvailable
	}
	if card == nil {
		return nil, ErrNoDefaultCard
	}
	if !card.NfcEnabled {
		return nil, ErrNfcDisabled
	}

	data := models.NfcPaymentData{
		TokenId:          card.TokenId,
		CardId:           card.Id,
		EncryptedPayload: fmt.Sprintf("ENC_%s_%.2f", card.TokenId, amount),
		Timestamp:        o.now(),
	}

	return o.payments.ProcessNfcPayment(ctx, data, amount, merchantId, merchantName)
}
