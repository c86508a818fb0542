package quickpay_test

import (
	"context"
	"strings"
	"testing"

	"github.com/ariapay/ariapay-core/pkg/gateway"
	"github.com/ariapay/ariapay-core/pkg/ledger"
	"github.com/ariapay/ariapay-core/pkg/models"
	"github.com/ariapay/ariapay-core/pkg/quickpay"
	"github.com/ariapay/ariapay-core/pkg/repository"
	"github.com/ariapay/ariapay-core/pkg/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPay(t *testing.T) {
	ctx := context.Background()

	t.Run("Success Builds Payment Data From Card", func(t *testing.T) {
		card := &models.PaymentCard{Id: "card_001", TokenId: "nfc_token_visa_001", NfcEnabled: true}

		mockSvc := new(mocks.PaymentService)
		mockSvc.On("DefaultCard", mock.Anything).Return(card, nil)
		mockSvc.On("ProcessNfcPayment", mock.Anything, mock.MatchedBy(func(data models.NfcPaymentData) bool {
			return data.TokenId == "nfc_token_visa_001" &&
				data.CardId == "card_001" &&
				data.EncryptedPayload == "ENC_nfc_token_visa_001_25.99" &&
				!data.Timestamp.IsZero()
		}), 25.99, "merchant_demo", "Demo Store").
			Return(&models.PaymentResult{Success: true, TransactionId: "txn_1", Amount: 25.99}, nil)

		o := quickpay.New(mockSvc)

		result, err := o.Pay(ctx, 25.99, "merchant_demo", "Demo Store")
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, "txn_1", result.TransactionId)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Card Fetch Failure", func(t *testing.T) {
		mockSvc := new(mocks.PaymentService)
		mockSvc.On("DefaultCard", mock.Anything).Return(nil, assert.AnError)

		o := quickpay.New(mockSvc)

		_, err := o.Pay(ctx, 25.99, "merchant_demo", "Demo Store")
		assert.ErrorIs(t, err, quickpay.ErrNoCardAvailable)
		mockSvc.AssertNotCalled(t, "ProcessNfcPayment", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("No Default Card", func(t *testing.T) {
		mockSvc := new(mocks.PaymentService)
		mockSvc.On("DefaultCard", mock.Anything).Return(nil, nil)

		o := quickpay.New(mockSvc)

		_, err := o.Pay(ctx, 25.99, "merchant_demo", "Demo Store")
		assert.ErrorIs(t, err, quickpay.ErrNoDefaultCard)
		mockSvc.AssertNotCalled(t, "ProcessNfcPayment", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Nfc Disabled Makes Zero Gateway Calls", func(t *testing.T) {
		card := &models.PaymentCard{Id: "card_005", TokenId: "nfc_token_005", NfcEnabled: false}

		mockSvc := new(mocks.PaymentService)
		mockSvc.On("DefaultCard", mock.Anything).Return(card, nil)

		o := quickpay.New(mockSvc)

		_, err := o.Pay(ctx, 25.99, "merchant_demo", "Demo Store")
		require.Error(t, err)
		assert.ErrorIs(t, err, quickpay.ErrNfcDisabled)
		assert.Equal(t, "NFC not enabled for this card", err.Error())
		mockSvc.AssertNotCalled(t, "ProcessNfcPayment", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

// newStack wires a real ledger, gateway and repository with zero delays
// and the demo seed, pinned to the given success rate.
func newStack(rate float64) (*quickpay.Orchestrator, *ledger.Store) {
	store := ledger.New()
	api := gateway.NewMock(store, gateway.Config{
		Outcome: gateway.NewOutcome(rate, nil),
		Seed:    true,
	})
	return quickpay.New(repository.New(api)), store
}

func TestQuickPayScenario(t *testing.T) {
	ctx := context.Background()

	t.Run("Ten Payments On Default Card", func(t *testing.T) {
		o, store := newStack(1.0)
		before := store.Len()

		for i := 0; i < 10; i++ {
			result, err := o.Pay(ctx, 25.99, "merchant_demo", "Demo Store")
			require.NoError(t, err)
			assert.True(t, result.Success)
		}

		assert.Equal(t, before+10, store.Len())

		// Every new transaction was paid with card_001's last four.
		page := store.Page(1, 10)
		for _, tx := range page.Transactions {
			assert.Equal(t, "4242", tx.CardLastFour)
			assert.Equal(t, models.COMPLETED, tx.Status)
			assert.True(t, strings.HasPrefix(tx.Id, "txn_"))
		}
	})

	t.Run("Declines Are Failed Ledger Entries", func(t *testing.T) {
		o, store := newStack(0.0)
		before := store.Len()

		for i := 0; i < 10; i++ {
			result, err := o.Pay(ctx, 25.99, "merchant_demo", "Demo Store")
			require.NoError(t, err)
			assert.False(t, result.Success)
			assert.Equal(t, "Transaction declined", result.ErrorMessage)
			assert.Equal(t, models.ErrCodeCardDeclined, result.ErrorCode)
		}

		assert.Equal(t, before+10, store.Len())
		for _, tx := range store.Page(1, 10).Transactions {
			assert.Equal(t, models.FAILED, tx.Status)
		}
	})

	t.Run("Default Rate Approves Most Attempts", func(t *testing.T) {
		o, store := newStack(gateway.DefaultSuccessRate)
		before := store.Len()

		completed := 0
		for i := 0; i < 10; i++ {
			result, err := o.Pay(ctx, 25.99, "merchant_demo", "Demo Store")
			require.NoError(t, err)
			if result.Success {
				completed++
			}
		}

		assert.Equal(t, before+10, store.Len())
		// 90% draw over 10 attempts; allow a generous band.
		assert.GreaterOrEqual(t, completed, 6)
	})
}
