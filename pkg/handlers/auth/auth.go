package auth

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/ariapay/ariapay-core/pkg/handlers/validation"
	"github.com/ariapay/ariapay-core/pkg/models"
	"github.com/ariapay/ariapay-core/pkg/repository"
)

// AuthHandler holds the dependencies for auth-related handlers.
type AuthHandler struct {
	Payments repository.PaymentService
	Validate *validation.Validator
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(payments repository.PaymentService) *AuthHandler {
	return &AuthHandler{Payments: payments, Validate: validation.New()}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type sessionResponse struct {
	LoggedIn bool         `json:"logged_in"`
	User     *models.User `json:"user,omitempty"`
}

// Login handles the logic for authenticating a user. Invalid credentials
// come back 401 with the gateway's message in the payload.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if err := h.Validate.Validate(req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid login request: %v", err), http.StatusBadRequest)
		return
	}

	resp, err := h.Payments.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to log in: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if !resp.Success {
		w.WriteHeader(http.StatusUnauthorized)
	} else {
		w.WriteHeader(http.StatusOK)
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}

// Logout handles the logic for ending the session.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.Payments.Logout(r.Context()); err != nil {
		http.Error(w, fmt.Sprintf("Failed to log out: %v", err), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Session reports whether a user is logged in, with the cached user when
// one is available.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	resp := sessionResponse{LoggedIn: h.Payments.IsLoggedIn()}
	if resp.LoggedIn {
		if user, err := h.Payments.CurrentUser(r.Context()); err == nil {
			resp.User = user
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write response: %v", err), http.StatusInternalServerError)
	}
}
