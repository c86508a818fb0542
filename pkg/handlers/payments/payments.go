package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/ariapay/ariapay-core/pkg/handlers/validation"
	"github.com/ariapay/ariapay-core/pkg/models"
	"github.com/ariapay/ariapay-core/pkg/quickpay"
	"github.com/ariapay/ariapay-core/pkg/repository"
)

// QuickPayer is the slice of the quick-pay orchestrator the handler needs.
type QuickPayer interface {
	Pay(ctx context.Context, amount float64, merchantId, merchantName string) (*models.PaymentResult, error)
}

// TokenValidator reports whether an NFC token can be charged.
type TokenValidator interface {
	ValidateNfcToken(ctx context.Context, tokenId string) (bool, error)
}

// PaymentsHandler holds the dependencies for payment- and
// transaction-related handlers.
type PaymentsHandler struct {
	Payments repository.PaymentService
	QuickPay QuickPayer
	Tokens   TokenValidator
	Validate *validation.Validator
}

// NewPaymentsHandler creates a new PaymentsHandler.
func NewPaymentsHandler(payments repository.PaymentService, qp QuickPayer, tokens TokenValidator) *PaymentsHandler {
	return &PaymentsHandler{Payments: payments, QuickPay: qp, Tokens: tokens, Validate: validation.New()}
}

type newTransactionRequest struct {
	Amount       float64 `json:"amount" validate:"required,gt=0"`
	Currency     string  `json:"currency"`
	MerchantId   string  `json:"merchant_id" validate:"required"`
	MerchantName string  `json:"merchant_name" validate:"required"`
	CardLastFour string  `json:"card_last_four" validate:"required,len=4,numeric"`
	NfcTokenId   string  `json:"nfc_token_id"`
}

type nfcPaymentRequest struct {
	TokenId          string  `json:"token_id" validate:"required"`
	CardId           string  `json:"card_id"`
	EncryptedPayload string  `json:"encrypted_payload"`
	TerminalId       string  `json:"terminal_id"`
	Amount           float64 `json:"amount" validate:"required,gt=0"`
	MerchantId       string  `json:"merchant_id" validate:"required"`
	MerchantName     string  `json:"merchant_name" validate:"required"`
}

type quickPayRequest struct {
	Amount       float64 `json:"amount" validate:"required,gt=0"`
	MerchantId   string  `json:"merchant_id" validate:"required"`
	MerchantName string  `json:"merchant_name" validate:"required"`
}

type tokenValidationResponse struct {
	TokenId string `json:"token_id"`
	Valid   bool   `json:"valid"`
}

// CreateTransaction handles the logic for charging a card directly.
func (h *PaymentsHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req newTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if err := h.Validate.Validate(req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid transaction: %v", err), http.StatusBadRequest)
		return
	}

	tx, err := h.Payments.CreateTransaction(r.Context(), models.TransactionRequest{
		Amount:       req.Amount,
		Currency:     req.Currency,
		MerchantId:   req.MerchantId,
		MerchantName: req.MerchantName,
		CardLastFour: req.CardLastFour,
		NfcTokenId:   req.NfcTokenId,
	})
	if err != nil {
		if errors.Is(err, repository.ErrTransactionFailed) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		} else {
			http.Error(w, fmt.Sprintf("Failed to create transaction: %v", err), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(tx); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// TransactionHistory handles the logic for paginated ledger reads.
func (h *PaymentsHandler) TransactionHistory(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	pageSize := queryInt(r, "page_size", repository.DefaultPageSize)

	result, err := h.Payments.TransactionHistory(r.Context(), page, pageSize)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to retrieve transaction history: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// StreamTransactions pushes snapshot updates to the client as
// server-sent events until the client disconnects.
func (h *PaymentsHandler) StreamTransactions(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	updates := h.Payments.ObserveTransactions(r.Context())
	for txs := range updates {
		payload, err := json.Marshal(txs)
		if err != nil {
			continue
		}
		fmt.Fprintf(w, "data: %s\n\n", payload)
		flusher.Flush()
	}
}

// ProcessNfcPayment handles the logic for a terminal-originated tap.
// Declines are business outcomes: the result payload carries them with a
// 200, only systemic faults become 5xx.
func (h *PaymentsHandler) ProcessNfcPayment(w http.ResponseWriter, r *http.Request) {
	var req nfcPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if err := h.Validate.Validate(req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid payment request: %v", err), http.StatusBadRequest)
		return
	}

	data := models.NfcPaymentData{
		TokenId:          req.TokenId,
		CardId:           req.CardId,
		EncryptedPayload: req.EncryptedPayload,
		Timestamp:        time.Now(),
		TerminalId:       req.TerminalId,
	}

	result, err := h.Payments.ProcessNfcPayment(r.Context(), data, req.Amount, req.MerchantId, req.MerchantName)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to process payment: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// QuickPayTransaction handles the logic for paying with the default card.
func (h *PaymentsHandler) QuickPayTransaction(w http.ResponseWriter, r *http.Request) {
	var req quickPayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if err := h.Validate.Validate(req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid quick-pay request: %v", err), http.StatusBadRequest)
		return
	}

	result, err := h.QuickPay.Pay(r.Context(), req.Amount, req.MerchantId, req.MerchantName)
	if err != nil {
		if errors.Is(err, quickpay.ErrNoCardAvailable) ||
			errors.Is(err, quickpay.ErrNoDefaultCard) ||
			errors.Is(err, quickpay.ErrNfcDisabled) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		} else {
			http.Error(w, fmt.Sprintf("Failed to process quick-pay: %v", err), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// ValidateNfcToken handles the logic for checking a token before a tap.
func (h *PaymentsHandler) ValidateNfcToken(w http.ResponseWriter, r *http.Request, tokenId string) {
	valid, err := h.Tokens.ValidateNfcToken(r.Context(), tokenId)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to validate token: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(tokenValidationResponse{TokenId: tokenId, Valid: valid}); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
