package models

import (
	"time"
)

// TransactionStatus defines the possible states of a transaction.
// The simulator only ever produces COMPLETED or FAILED; the remaining
// states exist for parity with a real payment network.
type TransactionStatus string

const (
	PENDING    TransactionStatus = "PENDING"
	PROCESSING TransactionStatus = "PROCESSING"
	COMPLETED  TransactionStatus = "COMPLETED"
	FAILED     TransactionStatus = "FAILED"
	REFUNDED   TransactionStatus = "REFUNDED"
	CANCELLED  TransactionStatus = "CANCELLED"
)

// CardType identifies the card network.
type CardType string

const (
	VISA       CardType = "VISA"
	MASTERCARD CardType = "MASTERCARD"
	AMEX       CardType = "AMEX"
	DISCOVER   CardType = "DISCOVER"
	OTHER      CardType = "OTHER"
)

// PaymentErrorCode is the closed set of business-failure reasons a
// PaymentResult can carry.
type PaymentErrorCode string

const (
	ErrCodeInsufficientFunds PaymentErrorCode = "INSUFFICIENT_FUNDS"
	ErrCodeCardDeclined      PaymentErrorCode = "CARD_DECLINED"
	ErrCodeNetworkError      PaymentErrorCode = "NETWORK_ERROR"
	ErrCodeNfcError          PaymentErrorCode = "NFC_ERROR"
	ErrCodeInvalidMerchant   PaymentErrorCode = "INVALID_MERCHANT"
	ErrCodeCardExpired       PaymentErrorCode = "CARD_EXPIRED"
	ErrCodeUnknown           PaymentErrorCode = "UNKNOWN_ERROR"
)

// User represents the account holder. Created once as seed data and
// immutable afterwards.
type User struct {
	Id          string    `json:"id"`
	Email       string    `json:"email"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	IsVerified  bool      `json:"is_verified"`
	CreatedAt   time.Time `json:"created_at"`
}

// PaymentCard is a tokenized card on file. TokenId is the opaque
// credential used for NFC payments in place of the real card number.
type PaymentCard struct {
	Id             string   `json:"id"`
	UserId         string   `json:"user_id"`
	CardType       CardType `json:"card_type"`
	LastFourDigits string   `json:"last_four_digits"`
	ExpiryMonth    int      `json:"expiry_month"`
	ExpiryYear     int      `json:"expiry_year"`
	CardholderName string   `json:"cardholder_name"`
	IsDefault      bool     `json:"is_default"`
	NfcEnabled     bool     `json:"nfc_enabled"`
	TokenId        string   `json:"token_id"`
}

// Wallet is a derived aggregate over the card set and the ledger. It is
// recomputed on each fetch and never persisted separately.
type Wallet struct {
	UserId            string        `json:"user_id"`
	Balance           float64       `json:"balance"`
	Currency          string        `json:"currency"`
	Cards             []PaymentCard `json:"cards"`
	TotalTransactions int           `json:"total_transactions"`
}

// Transaction is a single ledger entry. Immutable once created.
type Transaction struct {
	Id           string            `json:"id"`
	Amount       float64           `json:"amount"`
	Currency     string            `json:"currency"`
	MerchantId   string            `json:"merchant_id"`
	MerchantName string            `json:"merchant_name"`
	CardLastFour string            `json:"card_last_four"`
	Status       TransactionStatus `json:"status"`
	Timestamp    time.Time         `json:"timestamp"`
	NfcTokenId   string            `json:"nfc_token_id,omitempty"`
}

// TransactionRequest is the input for creating a transaction.
type TransactionRequest struct {
	Amount       float64 `json:"amount"`
	Currency     string  `json:"currency"`
	MerchantId   string  `json:"merchant_id"`
	MerchantName string  `json:"merchant_name"`
	CardLastFour string  `json:"card_last_four"`
	NfcTokenId   string  `json:"nfc_token_id,omitempty"`
}

// TransactionResponse reports the outcome of a transaction attempt. A
// declined attempt still carries the FAILED transaction that was written
// to the ledger.
type TransactionResponse struct {
	Success      bool         `json:"success"`
	Transaction  *Transaction `json:"transaction,omitempty"`
	ErrorMessage string       `json:"error_message,omitempty"`
}

// TransactionPage is one page of the ledger, most recent first, echoing
// the requested page and page size.
type TransactionPage struct {
	Transactions []Transaction `json:"transactions"`
	TotalCount   int           `json:"total_count"`
	Page         int           `json:"page"`
	PageSize     int           `json:"page_size"`
}

// NfcPaymentData is the ephemeral per-attempt payload for a tap-to-pay
// request. It is never stored.
type NfcPaymentData struct {
	TokenId          string    `json:"token_id"`
	CardId           string    `json:"card_id"`
	EncryptedPayload string    `json:"encrypted_payload"`
	Timestamp        time.Time `json:"timestamp"`
	TerminalId       string    `json:"terminal_id,omitempty"`
}

// PaymentResult summarizes a completed or failed payment attempt.
type PaymentResult struct {
	Success       bool             `json:"success"`
	TransactionId string           `json:"transaction_id,omitempty"`
	Amount        float64          `json:"amount,omitempty"`
	MerchantName  string           `json:"merchant_name,omitempty"`
	Timestamp     time.Time        `json:"timestamp,omitempty"`
	ErrorMessage  string           `json:"error_message,omitempty"`
	ErrorCode     PaymentErrorCode `json:"error_code,omitempty"`
}

// AuthToken is the credential pair issued on login.
type AuthToken struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// LoginRequest carries the user's credentials.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse reports the outcome of a login attempt. Invalid
// credentials are a business failure carried in the payload, not an error.
type LoginResponse struct {
	Success      bool       `json:"success"`
	User         *User      `json:"user,omitempty"`
	Token        *AuthToken `json:"token,omitempty"`
	ErrorMessage string     `json:"error_message,omitempty"`
}
