package repository

import "errors"

// ErrUserNotFound is returned when no user exists behind the gateway.
var ErrUserNotFound = errors.New("user not found")

// ErrWalletNotFound is returned when no wallet exists behind the gateway.
var ErrWalletNotFound = errors.New("wallet not found")

// ErrTransactionFailed is returned when the gateway reports a business
// failure for a transaction attempt. The gateway's message is attached
// unchanged when it provides one.
var ErrTransactionFailed = errors.New("transaction failed")

// ErrLogoutRejected is returned when the gateway refuses to clear the session.
var ErrLogoutRejected = errors.New("logout rejected")
