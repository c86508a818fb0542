package wallets

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/ariapay/ariapay-core/pkg/gateway"
	"github.com/ariapay/ariapay-core/pkg/handlers/validation"
	"github.com/ariapay/ariapay-core/pkg/models"
	"github.com/ariapay/ariapay-core/pkg/repository"
)

// WalletsHandler holds the dependencies for wallet- and card-related
// handlers. Card management goes straight to the gateway's wallet
// surface; wallet reads go through the caching repository.
type WalletsHandler struct {
	Payments repository.PaymentService
	Cards    gateway.WalletApi
	Validate *validation.Validator
}

// NewWalletsHandler creates a new WalletsHandler.
func NewWalletsHandler(payments repository.PaymentService, cards gateway.WalletApi) *WalletsHandler {
	return &WalletsHandler{Payments: payments, Cards: cards, Validate: validation.New()}
}

type newCardRequest struct {
	Id             string `json:"id" validate:"required"`
	UserId         string `json:"user_id" validate:"required"`
	CardType       string `json:"card_type" validate:"required,oneof=VISA MASTERCARD AMEX DISCOVER OTHER"`
	LastFourDigits string `json:"last_four_digits" validate:"required,len=4,numeric"`
	ExpiryMonth    int    `json:"expiry_month" validate:"required,min=1,max=12"`
	ExpiryYear     int    `json:"expiry_year" validate:"required,min=2000"`
	CardholderName string `json:"cardholder_name" validate:"required"`
	NfcEnabled     bool   `json:"nfc_enabled"`
	TokenId        string `json:"token_id" validate:"required"`
}

// GetWallet handles the logic for retrieving the wallet aggregate.
func (h *WalletsHandler) GetWallet(w http.ResponseWriter, r *http.Request) {
	wallet, err := h.Payments.GetWallet(r.Context())
	if err != nil {
		if errors.Is(err, repository.ErrWalletNotFound) {
			http.Error(w, "Wallet not found", http.StatusNotFound)
		} else {
			http.Error(w, fmt.Sprintf("Failed to retrieve wallet: %v", err), http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(wallet); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// GetDefaultCard handles the logic for resolving the default card.
func (h *WalletsHandler) GetDefaultCard(w http.ResponseWriter, r *http.Request) {
	card, err := h.Payments.DefaultCard(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to resolve default card: %v", err), http.StatusInternalServerError)
		return
	}
	if card == nil {
		http.Error(w, "No default card set", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(card); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// AddCard handles the logic for registering a new card.
func (h *WalletsHandler) AddCard(w http.ResponseWriter, r *http.Request) {
	var req newCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if err := h.Validate.Validate(req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid card: %v", err), http.StatusBadRequest)
		return
	}

	card, err := h.Cards.AddCard(r.Context(), models.PaymentCard{
		Id:             req.Id,
		UserId:         req.UserId,
		CardType:       models.CardType(req.CardType),
		LastFourDigits: req.LastFourDigits,
		ExpiryMonth:    req.ExpiryMonth,
		ExpiryYear:     req.ExpiryYear,
		CardholderName: req.CardholderName,
		NfcEnabled:     req.NfcEnabled,
		TokenId:        req.TokenId,
	})
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to add card: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(card); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// RemoveCard handles the logic for deleting a card.
func (h *WalletsHandler) RemoveCard(w http.ResponseWriter, r *http.Request, cardId string) {
	removed, err := h.Cards.RemoveCard(r.Context(), cardId)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to remove card: %v", err), http.StatusInternalServerError)
		return
	}
	if !removed {
		http.Error(w, "Card not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SetDefaultCard handles the logic for moving the default flag.
func (h *WalletsHandler) SetDefaultCard(w http.ResponseWriter, r *http.Request, cardId string) {
	if _, err := h.Cards.SetDefaultCard(r.Context(), cardId); err != nil {
		http.Error(w, fmt.Sprintf("Failed to set default card: %v", err), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
