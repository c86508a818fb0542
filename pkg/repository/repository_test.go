package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/ariapay/ariapay-core/pkg/gateway/mocks"
	"github.com/ariapay/ariapay-core/pkg/models"
	"github.com/ariapay/ariapay-core/pkg/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
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

func TestLogin(t *testing.T) {
	ctx := context.Background()
	user := &models.User{Id: "user_001", Email: "demo@ariapay.com"}
	token := &models.AuthToken{AccessToken: "jwt", RefreshToken: "refresh"}

	t.Run("Success Caches Session", func(t *testing.T) {
		mockApi := new(mocks.Api)
		mockApi.On("Login", mock.Anything, models.LoginRequest{Email: "demo@ariapay.com", Password: "password123"}).
			Return(&models.LoginResponse{Success: true, User: user, Token: token}, nil)

		r := repository.New(mockApi)
		assert.False(t, r.IsLoggedIn())

		resp, err := r.Login(ctx, "demo@ariapay.com", "password123")
		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.True(t, r.IsLoggedIn())

		// The user read is now served from cache without a gateway call.
		cached, err := r.CurrentUser(ctx)
		require.NoError(t, err)
		assert.Equal(t, user, cached)
		mockApi.AssertNotCalled(t, "CurrentUser", mock.Anything)
		mockApi.AssertExpectations(t)
	})

	t.Run("Business Failure Is Not An Error", func(t *testing.T) {
		mockApi := new(mocks.Api)
		mockApi.On("Login", mock.Anything, mock.Anything).
			Return(&models.LoginResponse{Success: false, ErrorMessage: "Invalid email or password"}, nil)

		r := repository.New(mockApi)

		resp, err := r.Login(ctx, "wrong@x.com", "bad")
		require.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Equal(t, "Invalid email or password", resp.ErrorMessage)
		assert.False(t, r.IsLoggedIn())
		mockApi.AssertExpectations(t)
	})

	t.Run("Systemic Fault Becomes Error", func(t *testing.T) {
		mockApi := new(mocks.Api)
		mockApi.On("Login", mock.Anything, mock.Anything).Return(nil, assert.AnError)

		r := repository.New(mockApi)

		_, err := r.Login(ctx, "demo@ariapay.com", "password123")
		assert.Error(t, err)
		assert.False(t, r.IsLoggedIn())
	})
}

func TestLogout(t *testing.T) {
	ctx := context.Background()

	mockApi := new(mocks.Api)
	mockApi.On("Login", mock.Anything, mock.Anything).
		Return(&models.LoginResponse{Success: true, User: &models.User{Id: "user_001"}, Token: &models.AuthToken{AccessToken: "jwt"}}, nil)
	mockApi.On("TransactionHistory", mock.Anything, 1, 20).
		Return(&models.TransactionPage{Transactions: []models.Transaction{{Id: "txn_1"}}, TotalCount: 1, Page: 1, PageSize: 20}, nil)
	mockApi.On("Logout", mock.Anything).Return(true, nil)

	r := repository.New(mockApi)
	_, err := r.Login(ctx, "demo@ariapay.com", "password123")
	require.NoError(t, err)

	obsCtx, obsCancel := context.WithCancel(ctx)
	defer obsCancel()
	ch := r.ObserveTransactions(obsCtx)
	receive(t, ch)

	_, err = r.TransactionHistory(ctx, 1, 20)
	require.NoError(t, err)
	assert.Len(t, receive(t, ch), 1)

	// Logout clears the session and resets the published snapshot.
	require.NoError(t, r.Logout(ctx))
	assert.False(t, r.IsLoggedIn())
	assert.Empty(t, receive(t, ch))
	mockApi.AssertExpectations(t)
}

func TestDefaultCard(t *testing.T) {
	ctx := context.Background()

	cardDefault := models.PaymentCard{Id: "card_001", IsDefault: true, NfcEnabled: true, TokenId: "nfc_token_visa_001"}
	cardOther := models.PaymentCard{Id: "card_002", IsDefault: false, TokenId: "nfc_token_mc_002"}

	t.Run("Prefers Default Flag", func(t *testing.T) {
		mockApi := new(mocks.Api)
		mockApi.On("GetWallet", mock.Anything).
			Return(&models.Wallet{UserId: "user_001", Cards: []models.PaymentCard{cardOther, cardDefault}}, nil).Once()

		r := repository.New(mockApi)

		card, err := r.DefaultCard(ctx)
		require.NoError(t, err)
		require.NotNil(t, card)
		assert.Equal(t, "card_001", card.Id)

		// Second read is cache-first.
		card, err = r.DefaultCard(ctx)
		require.NoError(t, err)
		assert.Equal(t, "card_001", card.Id)
		mockApi.AssertExpectations(t)
	})

	t.Run("Falls Back To First Card", func(t *testing.T) {
		mockApi := new(mocks.Api)
		mockApi.On("GetWallet", mock.Anything).
			Return(&models.Wallet{UserId: "user_001", Cards: []models.PaymentCard{cardOther}}, nil)

		r := repository.New(mockApi)

		card, err := r.DefaultCard(ctx)
		require.NoError(t, err)
		require.NotNil(t, card)
		assert.Equal(t, "card_002", card.Id)
	})

	t.Run("No Cards Is Absent Not Error", func(t *testing.T) {
		mockApi := new(mocks.Api)
		mockApi.On("GetWallet", mock.Anything).
			Return(&models.Wallet{UserId: "user_001"}, nil)

		r := repository.New(mockApi)

		card, err := r.DefaultCard(ctx)
		require.NoError(t, err)
		assert.Nil(t, card)
	})
}

func TestGetWallet(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing Wallet", func(t *testing.T) {
		mockApi := new(mocks.Api)
		mockApi.On("GetWallet", mock.Anything).Return(nil, nil)

		r := repository.New(mockApi)

		_, err := r.GetWallet(ctx)
		assert.ErrorIs(t, err, repository.ErrWalletNotFound)
	})
}

func TestCreateTransaction(t *testing.T) {
	ctx := context.Background()
	tx := &models.Transaction{Id: "txn_1", Status: models.COMPLETED}

	t.Run("Success Resynchronizes Snapshot", func(t *testing.T) {
		mockApi := new(mocks.Api)
		mockApi.On("CreateTransaction", mock.Anything, mock.Anything).
			Return(&models.TransactionResponse{Success: true, Transaction: tx}, nil)
		mockApi.On("TransactionHistory", mock.Anything, 1, 20).
			Return(&models.TransactionPage{Transactions: []models.Transaction{*tx}, TotalCount: 1, Page: 1, PageSize: 20}, nil)

		r := repository.New(mockApi)

		created, err := r.CreateTransaction(ctx, models.TransactionRequest{Amount: 10, MerchantId: "m", CardLastFour: "4242"})
		require.NoError(t, err)
		assert.Equal(t, tx, created)

		// The snapshot now reflects the re-fetched page 1.
		obsCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		assert.Len(t, receive(t, r.ObserveTransactions(obsCtx)), 1)
		mockApi.AssertExpectations(t)
	})

	t.Run("Decline Carries Gateway Message", func(t *testing.T) {
		mockApi := new(mocks.Api)
		mockApi.On("CreateTransaction", mock.Anything, mock.Anything).
			Return(&models.TransactionResponse{Success: false, ErrorMessage: "Transaction declined"}, nil)

		r := repository.New(mockApi)

		_, err := r.CreateTransaction(ctx, models.TransactionRequest{Amount: 10, MerchantId: "m", CardLastFour: "4242"})
		require.Error(t, err)
		assert.ErrorIs(t, err, repository.ErrTransactionFailed)
		assert.Contains(t, err.Error(), "Transaction declined")

		// No resynchronization on failure.
		mockApi.AssertNotCalled(t, "TransactionHistory", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestTransactionHistory(t *testing.T) {
	ctx := context.Background()

	pageOne := []models.Transaction{{Id: "txn_1"}, {Id: "txn_2"}}
	pageTwo := []models.Transaction{{Id: "txn_3"}}

	mockApi := new(mocks.Api)
	mockApi.On("TransactionHistory", mock.Anything, 1, 2).
		Return(&models.TransactionPage{Transactions: pageOne, TotalCount: 3, Page: 1, PageSize: 2}, nil)
	mockApi.On("TransactionHistory", mock.Anything, 2, 2).
		Return(&models.TransactionPage{Transactions: pageTwo, TotalCount: 3, Page: 2, PageSize: 2}, nil)

	r := repository.New(mockApi)

	obsCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	ch := r.ObserveTransactions(obsCtx)
	assert.Empty(t, receive(t, ch), "feed starts empty")

	// Page 1 replaces the snapshot.
	_, err := r.TransactionHistory(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, pageOne, receive(t, ch))

	// Page 2 appends to it.
	_, err = r.TransactionHistory(ctx, 2, 2)
	require.NoError(t, err)
	got := receive(t, ch)
	require.Len(t, got, 3)
	assert.Equal(t, "txn_1", got[0].Id)
	assert.Equal(t, "txn_3", got[2].Id)

	// A later page-1 fetch replaces again, discarding appended entries.
	_, err = r.TransactionHistory(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, pageOne, receive(t, ch))
	mockApi.AssertExpectations(t)
}

func TestProcessNfcPayment(t *testing.T) {
	ctx := context.Background()
	data := models.NfcPaymentData{TokenId: "nfc_token_visa_001", CardId: "card_001"}

	t.Run("Success Triggers Page One Refresh", func(t *testing.T) {
		mockApi := new(mocks.Api)
		mockApi.On("ProcessNfcPayment", mock.Anything, data, 25.99, "merchant_demo", "Demo Store").
			Return(&models.PaymentResult{Success: true, TransactionId: "txn_1"}, nil)
		mockApi.On("TransactionHistory", mock.Anything, 1, 20).
			Return(&models.TransactionPage{Transactions: []models.Transaction{{Id: "txn_1"}}, TotalCount: 1, Page: 1, PageSize: 20}, nil)

		r := repository.New(mockApi)

		result, err := r.ProcessNfcPayment(ctx, data, 25.99, "merchant_demo", "Demo Store")
		require.NoError(t, err)
		assert.True(t, result.Success)
		mockApi.AssertExpectations(t)
	})

	t.Run("Business Failure Stays In Payload", func(t *testing.T) {
		mockApi := new(mocks.Api)
		mockApi.On("ProcessNfcPayment", mock.Anything, data, 25.99, "merchant_demo", "Demo Store").
			Return(&models.PaymentResult{Success: false, ErrorMessage: "Invalid NFC token", ErrorCode: models.ErrCodeNfcError}, nil)

		r := repository.New(mockApi)

		result, err := r.ProcessNfcPayment(ctx, data, 25.99, "merchant_demo", "Demo Store")
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, models.ErrCodeNfcError, result.ErrorCode)
		mockApi.AssertNotCalled(t, "TransactionHistory", mock.Anything, mock.Anything, mock.Anything)
	})
}
