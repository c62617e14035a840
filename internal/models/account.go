package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account holds a running balance owned by exactly one user. The balance is
// only ever changed by posting a transaction, never written directly.
type Account struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
}
