package services

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/isdelr/banco-api-be/internal/models"
)

// AccountServiceProvider defines the interface for account services.
type AccountServiceProvider interface {
	OpenAccount(ownerID string) (models.Account, error)
	ListAccountsForUser(ownerID string) ([]models.Account, error)
	GetStatement(userID, callerID string) ([]models.Transaction, error)
}

// AccountService provides business logic for accounts and statements.
type AccountService struct {
	db *sql.DB
}

// NewAccountService creates a new AccountService.
func NewAccountService(db *sql.DB) *AccountService {
	return &AccountService{db: db}
}

// OpenAccount creates an additional zero-balance account for a user. A user
// may hold any number of accounts.
func (s *AccountService) OpenAccount(ownerID string) (models.Account, error) {
	account := models.Account{
		ID:        uuid.New().String(),
		UserID:    ownerID,
		Balance:   decimal.Zero,
		CreatedAt: time.Now().UTC(),
	}
	_, err := s.db.Exec("INSERT INTO accounts(id, user_id, balance, created_at) VALUES(?, ?, ?, ?)",
		account.ID, account.UserID, account.Balance, account.CreatedAt.UnixNano())
	if err != nil {
		return models.Account{}, err
	}
	return account, nil
}

// ListAccountsForUser returns every account owned by a user.
func (s *AccountService) ListAccountsForUser(ownerID string) ([]models.Account, error) {
	rows, err := s.db.Query("SELECT id, user_id, balance, created_at FROM accounts WHERE user_id = ? ORDER BY created_at, id", ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accounts := make([]models.Account, 0)
	for rows.Next() {
		var account models.Account
		var createdAt int64
		if err := rows.Scan(&account.ID, &account.UserID, &account.Balance, &createdAt); err != nil {
			return nil, err
		}
		account.CreatedAt = time.Unix(0, createdAt).UTC()
		accounts = append(accounts, account)
	}
	return accounts, rows.Err()
}

// GetStatement returns every transaction across a user's accounts, oldest
// first. Only the user themselves may read their statement.
func (s *AccountService) GetStatement(userID, callerID string) ([]models.Transaction, error) {
	if userID != callerID {
		return nil, ErrUnauthorized
	}

	var owned int
	if err := s.db.QueryRow("SELECT COUNT(1) FROM accounts WHERE user_id = ?", userID).Scan(&owned); err != nil {
		return nil, err
	}
	if owned == 0 {
		return nil, ErrNoAccountsFound
	}

	rows, err := s.db.Query(`
		SELECT t.id, t.account_id, t.amount, t.type, t.timestamp
		FROM transactions t
		JOIN accounts a ON a.id = t.account_id
		WHERE a.user_id = ?
		ORDER BY t.timestamp, t.id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transactions := make([]models.Transaction, 0)
	for rows.Next() {
		var txn models.Transaction
		var timestamp int64
		if err := rows.Scan(&txn.ID, &txn.AccountID, &txn.Amount, &txn.Type, &timestamp); err != nil {
			return nil, err
		}
		txn.Timestamp = time.Unix(0, timestamp).UTC()
		transactions = append(transactions, txn)
	}
	return transactions, rows.Err()
}
