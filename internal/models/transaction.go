package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction kinds. Amounts are always positive; the kind carries the sign.
const (
	TransactionDeposit    = "deposit"
	TransactionWithdrawal = "withdrawal"
)

// Transaction is an immutable, append-only ledger entry against an account.
type Transaction struct {
	ID        string          `json:"id"`
	AccountID string          `json:"account_id"`
	Amount    decimal.Decimal `json:"amount"`
	Type      string          `json:"type"`
	Timestamp time.Time       `json:"timestamp"`
}
