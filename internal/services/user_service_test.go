package services

import (
	"database/sql"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/isdelr/banco-api-be/internal/database"
)

// newTestDB opens a fresh in-memory database with the schema applied.
// In-memory SQLite lives per connection, so the pool is capped at one.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.New("file::memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { db.Close() })
	return db
}

func countRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow("SELECT COUNT(1) FROM "+table).Scan(&n))
	return n
}

func TestRegisterUserCreatesAccount(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)
	accounts := NewAccountService(db)

	user, err := users.RegisterUser("alice", "s3cret-pass")
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	require.Equal(t, "alice", user.Username)
	require.Empty(t, user.PasswordHash)

	owned, err := accounts.ListAccountsForUser(user.ID)
	require.NoError(t, err)
	require.Len(t, owned, 1)
	require.Equal(t, user.ID, owned[0].UserID)
	require.True(t, owned[0].Balance.Equal(decimal.Zero), "new account must start at zero, got %s", owned[0].Balance)
}

func TestRegisterUserDuplicateUsername(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)

	_, err := users.RegisterUser("alice", "s3cret-pass")
	require.NoError(t, err)

	_, err = users.RegisterUser("alice", "another-pass")
	require.ErrorIs(t, err, ErrDuplicateUsername)

	// The failed registration must not leave a second user or a stray account.
	require.Equal(t, 1, countRows(t, db, "users"))
	require.Equal(t, 1, countRows(t, db, "accounts"))
}

func TestAuthenticateUser(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)

	registered, err := users.RegisterUser("alice", "s3cret-pass")
	require.NoError(t, err)

	user, err := users.AuthenticateUser("alice", "s3cret-pass")
	require.NoError(t, err)
	require.Equal(t, registered.ID, user.ID)
	require.Empty(t, user.PasswordHash)

	_, err = users.AuthenticateUser("alice", "wrong-pass")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = users.AuthenticateUser("nobody", "s3cret-pass")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestGetUserByID(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)

	registered, err := users.RegisterUser("alice", "s3cret-pass")
	require.NoError(t, err)

	user, err := users.GetUserByID(registered.ID)
	require.NoError(t, err)
	require.Equal(t, "alice", user.Username)

	_, err = users.GetUserByID("missing-id")
	require.Error(t, err)
}
