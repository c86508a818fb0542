package gateway

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/ariapay/ariapay-core/pkg/ledger"
	"github.com/ariapay/ariapay-core/pkg/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	demoEmail    = "demo@ariapay.com"
	demoPassword = "password123"

	declinedMessage       = "Transaction declined"
	invalidLoginMessage   = "Invalid email or password"
	invalidTokenMessage   = "Invalid NFC token"
	invalidRequestMessage = "Invalid transaction request"

	tokenTTL = time.Hour
)

// Claims is the JWT payload of an issued access token.
type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Config tunes a Mock gateway. The zero value gives instantaneous
// operations, the default success rate, a time-seeded random source and
// no seed data.
type Config struct {
	Delays    Delays
	Outcome   *Outcome
	JWTSecret []byte
	Clock     func() time.Time
	Rand      *rand.Rand
	Seed      bool
}

// Mock simulates the card-payment network entirely in process memory. It
// is the single authoritative entry point for financial operations: card
// validation, outcome simulation and ledger mutation all happen here.
// A mutex guards the card set and session state; the ledger guards itself.
type Mock struct {
	ledger  *ledger.Store
	delays  Delays
	outcome *Outcome
	secret  []byte
	now     func() time.Time

	mu    sync.Mutex
	user  *models.User
	cards []models.PaymentCard
	token *models.AuthToken
	rng   *rand.Rand
}

// NewMock creates a gateway over the given ledger.
func NewMock(store *ledger.Store, cfg Config) *Mock {
	if cfg.Outcome == nil {
		cfg.Outcome = NewOutcome(DefaultSuccessRate, nil)
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if len(cfg.JWTSecret) == 0 {
		cfg.JWTSecret = []byte("ariapay-dev-secret")
	}

	m := &Mock{
		ledger:  store,
		delays:  cfg.Delays,
		outcome: cfg.Outcome,
		secret:  cfg.JWTSecret,
		now:     cfg.Clock,
		rng:     cfg.Rand,
	}
	if cfg.Seed {
		m.seedSampleData()
	}
	return m
}

// Make sure we conform to the interface
var _ Api = (*Mock)(nil)

// Login verifies the demo credentials and issues a token pair. A wrong
// email or password is a business failure carried in the payload.
func (m *Mock) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	if err := wait(ctx, m.delays.Login); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.user == nil || req.Email != demoEmail || req.Password != demoPassword {
		return &models.LoginResponse{Success: false, ErrorMessage: invalidLoginMessage}, nil
	}

	token, err := m.issueToken(m.user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue auth token: %w", err)
	}
	m.token = token

	user := *m.user
	return &models.LoginResponse{Success: true, User: &user, Token: token}, nil
}

// Logout drops the issued token.
func (m *Mock) Logout(ctx context.Context) (bool, error) {
	if err := wait(ctx, m.delays.Session); err != nil {
		return false, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = nil
	return true, nil
}

// CurrentUser returns the seed user, or nil when none exists.
func (m *Mock) CurrentUser(ctx context.Context) (*models.User, error) {
	if err := wait(ctx, m.delays.Session); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return nil, nil
	}
	user := *m.user
	return &user, nil
}

// GetWallet rebuilds the wallet aggregate from the current card set and
// the ledger length. It is never stored, so it can momentarily disagree
// with the ledger when fetched mid-payment.
func (m *Mock) GetWallet(ctx context.Context) (*models.Wallet, error) {
	if err := wait(ctx, m.delays.Wallet); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return nil, nil
	}

	var cards []models.PaymentCard
	for _, c := range m.cards {
		if c.UserId == m.user.Id {
			cards = append(cards, c)
		}
	}

	return &models.Wallet{
		UserId:            m.user.Id,
		Balance:           seedBalance,
		Currency:          "USD",
		Cards:             cards,
		TotalTransactions: m.ledger.Len(),
	}, nil
}

// AddCard registers a new card.
func (m *Mock) AddCard(ctx context.Context, card models.PaymentCard) (*models.PaymentCard, error) {
	if err := wait(ctx, m.delays.Card); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.cards = append(m.cards, card)
	return &card, nil
}

// RemoveCard deletes the card with the given id.
func (m *Mock) RemoveCard(ctx context.Context, cardId string) (bool, error) {
	if err := wait(ctx, m.delays.Card); err != nil {
		return false, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.cards[:0]
	removed := false
	for _, c := range m.cards {
		if c.Id == cardId {
			removed = true
			continue
		}
		kept = append(kept, c)
	}
	m.cards = kept
	return removed, nil
}

// SetDefaultCard rewrites the default flag across the whole card set.
// After the call at most the matching card is default; an absent id
// leaves zero cards default.
func (m *Mock) SetDefaultCard(ctx context.Context, cardId string) (bool, error) {
	if err := wait(ctx, m.delays.Card); err != nil {
		return false, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.cards {
		m.cards[i].IsDefault = m.cards[i].Id == cardId
	}
	return true, nil
}

// CreateTransaction runs the outcome simulation and appends the result
// to the ledger. Declined attempts are appended too, with status FAILED;
// only a structurally invalid request produces no ledger entry.
func (m *Mock) CreateTransaction(ctx context.Context, req models.TransactionRequest) (*models.TransactionResponse, error) {
	if err := wait(ctx, m.delays.Transaction); err != nil {
		return nil, err
	}

	if req.Amount <= 0 || req.MerchantId == "" || req.CardLastFour == "" {
		return &models.TransactionResponse{Success: false, ErrorMessage: invalidRequestMessage}, nil
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	approved := m.outcome.Approve()
	status := models.COMPLETED
	if !approved {
		status = models.FAILED
	}

	now := m.now()
	tx := models.Transaction{
		Id:           m.nextTransactionId(now),
		Amount:       req.Amount,
		Currency:     currency,
		MerchantId:   req.MerchantId,
		MerchantName: req.MerchantName,
		CardLastFour: req.CardLastFour,
		Status:       status,
		Timestamp:    now,
		NfcTokenId:   req.NfcTokenId,
	}
	m.ledger.Append(tx)

	resp := &models.TransactionResponse{Success: approved, Transaction: &tx}
	if !approved {
		resp.ErrorMessage = declinedMessage
	}
	return resp, nil
}

// GetTransaction looks up a ledger entry by id, nil when absent.
func (m *Mock) GetTransaction(ctx context.Context, txId string) (*models.Transaction, error) {
	if err := wait(ctx, m.delays.Session); err != nil {
		return nil, err
	}

	tx, ok := m.ledger.Find(txId)
	if !ok {
		return nil, nil
	}
	return tx, nil
}

// TransactionHistory serves one page of the ledger.
func (m *Mock) TransactionHistory(ctx context.Context, page, pageSize int) (*models.TransactionPage, error) {
	if err := wait(ctx, m.delays.History); err != nil {
		return nil, err
	}
	return m.ledger.Page(page, pageSize), nil
}

// ProcessNfcPayment resolves the card behind the token and delegates to
// CreateTransaction. An unknown token fails fast with NFC_ERROR and no
// ledger mutation.
func (m *Mock) ProcessNfcPayment(ctx context.Context, data models.NfcPaymentData, amount float64, merchantId, merchantName string) (*models.PaymentResult, error) {
	if err := wait(ctx, m.delays.Nfc); err != nil {
		return nil, err
	}

	card := m.cardByToken(data.TokenId)
	if card == nil {
		return &models.PaymentResult{
			Success:      false,
			ErrorMessage: invalidTokenMessage,
			ErrorCode:    models.ErrCodeNfcError,
		}, nil
	}

	resp, err := m.CreateTransaction(ctx, models.TransactionRequest{
		Amount:       amount,
		MerchantId:   merchantId,
		MerchantName: merchantName,
		CardLastFour: card.LastFourDigits,
		NfcTokenId:   data.TokenId,
	})
	if err != nil {
		return nil, err
	}

	if resp.Success && resp.Transaction != nil {
		return &models.PaymentResult{
			Success:       true,
			TransactionId: resp.Transaction.Id,
			Amount:        resp.Transaction.Amount,
			MerchantName:  resp.Transaction.MerchantName,
			Timestamp:     resp.Transaction.Timestamp,
		}, nil
	}

	return &models.PaymentResult{
		Success:      false,
		ErrorMessage: resp.ErrorMessage,
		ErrorCode:    models.ErrCodeCardDeclined,
	}, nil
}

// ValidateNfcToken reports whether the token belongs to an NFC-enabled
// card. Pure lookup, no side effects.
func (m *Mock) ValidateNfcToken(ctx context.Context, tokenId string) (bool, error) {
	if err := wait(ctx, m.delays.Session); err != nil {
		return false, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.cards {
		if c.TokenId == tokenId && c.NfcEnabled {
			return true, nil
		}
	}
	return false, nil
}

func (m *Mock) cardByToken(tokenId string) *models.PaymentCard {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.cards {
		if m.cards[i].TokenId == tokenId {
			card := m.cards[i]
			return &card
		}
	}
	return nil
}

func (m *Mock) issueToken(user *models.User) (*models.AuthToken, error) {
	now := m.now()
	expiresAt := now.Add(tokenTTL)

	claims := Claims{
		UserID: user.Id,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	access, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return nil, err
	}

	return &models.AuthToken{
		AccessToken:  access,
		RefreshToken: uuid.New().String(),
		ExpiresAt:    expiresAt,
	}, nil
}

// nextTransactionId builds an id from the wall clock plus a random
// suffix, matching the txn_<millis>_<suffix> format of the network.
func (m *Mock) nextTransactionId(now time.Time) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fmt.Sprintf("txn_%d_%04d", now.UnixMilli(), 1000+m.rng.Intn(9000))
}
