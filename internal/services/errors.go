// internal/services/errors.go
//
// Domain errors for the ledger. The HTTP layer maps each of these to a
// status code; none are retried or swallowed.
package services

import "errors"

var (
	// ErrDuplicateUsername means the username is already registered.
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrInvalidCredentials covers both unknown username and wrong password.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrUnauthorized means the caller does not own the target resource.
	ErrUnauthorized = errors.New("not authorized")

	// ErrAccountNotFound means the account does not exist.
	ErrAccountNotFound = errors.New("account not found")

	// ErrInvalidAmount means the amount is zero or negative.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInvalidTransactionType means the kind is neither deposit nor withdrawal.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrInsufficientFunds means a withdrawal would drive the balance negative.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrNoAccountsFound means the user owns no accounts to build a statement from.
	ErrNoAccountsFound = errors.New("no accounts found")
)
