package services

import (
	"database/sql"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/isdelr/banco-api-be/internal/models"
)

// registerWithAccount registers a user and returns the user and their
// automatically created first account.
func registerWithAccount(t *testing.T, db *sql.DB, username string) (models.User, models.Account) {
	t.Helper()
	user, err := NewUserService(db).RegisterUser(username, "s3cret-pass")
	require.NoError(t, err)
	owned, err := NewAccountService(db).ListAccountsForUser(user.ID)
	require.NoError(t, err)
	require.Len(t, owned, 1)
	return user, owned[0]
}

func accountBalance(t *testing.T, db *sql.DB, accountID string) decimal.Decimal {
	t.Helper()
	var balance decimal.Decimal
	require.NoError(t, db.QueryRow("SELECT balance FROM accounts WHERE id = ?", accountID).Scan(&balance))
	return balance
}

func TestPostTransactionDepositAndWithdraw(t *testing.T) {
	db := newTestDB(t)
	transactions := NewTransactionService(db)
	user, account := registerWithAccount(t, db, "alice")

	deposit, err := transactions.PostTransaction(account.ID, decimal.NewFromInt(100), models.TransactionDeposit, user.ID)
	require.NoError(t, err)
	require.NotEmpty(t, deposit.ID)
	require.Equal(t, models.TransactionDeposit, deposit.Type)
	require.False(t, deposit.Timestamp.IsZero())
	require.True(t, accountBalance(t, db, account.ID).Equal(decimal.NewFromInt(100)))

	// Overdraft attempt fails and leaves the balance untouched.
	_, err = transactions.PostTransaction(account.ID, decimal.NewFromInt(150), models.TransactionWithdrawal, user.ID)
	require.ErrorIs(t, err, ErrInsufficientFunds)
	require.True(t, accountBalance(t, db, account.ID).Equal(decimal.NewFromInt(100)))

	_, err = transactions.PostTransaction(account.ID, decimal.NewFromInt(40), models.TransactionWithdrawal, user.ID)
	require.NoError(t, err)
	require.True(t, accountBalance(t, db, account.ID).Equal(decimal.NewFromInt(60)))

	statement, err := NewAccountService(db).GetStatement(user.ID, user.ID)
	require.NoError(t, err)
	require.Len(t, statement, 2)
	require.Equal(t, models.TransactionDeposit, statement[0].Type)
	require.Equal(t, models.TransactionWithdrawal, statement[1].Type)
}

func TestPostTransactionInvalidAmount(t *testing.T) {
	db := newTestDB(t)
	transactions := NewTransactionService(db)
	user, account := registerWithAccount(t, db, "alice")

	for _, kind := range []string{models.TransactionDeposit, models.TransactionWithdrawal} {
		_, err := transactions.PostTransaction(account.ID, decimal.Zero, kind, user.ID)
		require.ErrorIs(t, err, ErrInvalidAmount)

		_, err = transactions.PostTransaction(account.ID, decimal.NewFromInt(-5), kind, user.ID)
		require.ErrorIs(t, err, ErrInvalidAmount)
	}
	require.Equal(t, 0, countRows(t, db, "transactions"))
}

func TestPostTransactionInvalidType(t *testing.T) {
	db := newTestDB(t)
	transactions := NewTransactionService(db)
	user, account := registerWithAccount(t, db, "alice")

	_, err := transactions.PostTransaction(account.ID, decimal.NewFromInt(10), "transfer", user.ID)
	require.ErrorIs(t, err, ErrInvalidTransactionType)
}

func TestPostTransactionAccountNotFound(t *testing.T) {
	db := newTestDB(t)
	transactions := NewTransactionService(db)
	user, _ := registerWithAccount(t, db, "alice")

	_, err := transactions.PostTransaction("missing-account", decimal.NewFromInt(10), models.TransactionDeposit, user.ID)
	require.ErrorIs(t, err, ErrAccountNotFound)
}

func TestPostTransactionUnauthorized(t *testing.T) {
	db := newTestDB(t)
	transactions := NewTransactionService(db)
	_, aliceAccount := registerWithAccount(t, db, "alice")
	bob, _ := registerWithAccount(t, db, "bob")

	_, err := transactions.PostTransaction(aliceAccount.ID, decimal.NewFromInt(10), models.TransactionDeposit, bob.ID)
	require.ErrorIs(t, err, ErrUnauthorized)

	// Ownership is checked before amount and kind validation.
	_, err = transactions.PostTransaction(aliceAccount.ID, decimal.NewFromInt(-1), "transfer", bob.ID)
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestBalanceMatchesTransactionSum(t *testing.T) {
	db := newTestDB(t)
	transactions := NewTransactionService(db)
	user, account := registerWithAccount(t, db, "alice")

	steps := []struct {
		kind   string
		amount int64
	}{
		{models.TransactionDeposit, 250},
		{models.TransactionWithdrawal, 90},
		{models.TransactionDeposit, 15},
		{models.TransactionWithdrawal, 175},
		{models.TransactionDeposit, 1},
	}

	expected := decimal.Zero
	for _, step := range steps {
		amount := decimal.NewFromInt(step.amount)
		_, err := transactions.PostTransaction(account.ID, amount, step.kind, user.ID)
		require.NoError(t, err)
		if step.kind == models.TransactionDeposit {
			expected = expected.Add(amount)
		} else {
			expected = expected.Sub(amount)
		}
		balance := accountBalance(t, db, account.ID)
		require.True(t, balance.Equal(expected), "balance %s, want %s", balance, expected)
		require.False(t, balance.IsNegative())
	}
}
