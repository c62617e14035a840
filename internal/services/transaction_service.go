package services

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/isdelr/banco-api-be/internal/models"
)

// TransactionServiceProvider defines the interface for transaction posting.
type TransactionServiceProvider interface {
	PostTransaction(accountID string, amount decimal.Decimal, kind, callerID string) (models.Transaction, error)
}

// TransactionService owns the posting rule: the only code path that moves money.
type TransactionService struct {
	db *sql.DB
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(db *sql.DB) *TransactionService {
	return &TransactionService{db: db}
}

// PostTransaction validates and applies a deposit or withdrawal against an
// account. Preconditions are checked in a fixed order; the first failing one
// wins. The balance update and the ledger insert commit in one transaction,
// which also holds the write lock for the whole check-then-update sequence,
// so a concurrent withdrawal cannot sneak past the funds check.
func (s *TransactionService) PostTransaction(accountID string, amount decimal.Decimal, kind, callerID string) (models.Transaction, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return models.Transaction{}, err
	}
	defer tx.Rollback()

	var account models.Account
	row := tx.QueryRow("SELECT id, user_id, balance FROM accounts WHERE id = ?", accountID)
	if err := row.Scan(&account.ID, &account.UserID, &account.Balance); err != nil {
		if err == sql.ErrNoRows {
			return models.Transaction{}, ErrAccountNotFound
		}
		return models.Transaction{}, err
	}

	if account.UserID != callerID {
		return models.Transaction{}, ErrUnauthorized
	}
	if !amount.IsPositive() {
		return models.Transaction{}, ErrInvalidAmount
	}

	var newBalance decimal.Decimal
	switch kind {
	case models.TransactionDeposit:
		newBalance = account.Balance.Add(amount)
	case models.TransactionWithdrawal:
		if amount.GreaterThan(account.Balance) {
			return models.Transaction{}, ErrInsufficientFunds
		}
		newBalance = account.Balance.Sub(amount)
	default:
		return models.Transaction{}, ErrInvalidTransactionType
	}

	if _, err := tx.Exec("UPDATE accounts SET balance = ? WHERE id = ?", newBalance, account.ID); err != nil {
		return models.Transaction{}, err
	}

	txn := models.Transaction{
		ID:        uuid.New().String(),
		AccountID: account.ID,
		Amount:    amount,
		Type:      kind,
		Timestamp: time.Now().UTC(),
	}
	_, err = tx.Exec("INSERT INTO transactions(id, account_id, amount, type, timestamp) VALUES(?, ?, ?, ?, ?)",
		txn.ID, txn.AccountID, txn.Amount, txn.Type, txn.Timestamp.UnixNano())
	if err != nil {
		return models.Transaction{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.Transaction{}, err
	}
	return txn, nil
}
