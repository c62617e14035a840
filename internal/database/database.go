package database

import (
	"database/sql"

	_ "modernc.org/sqlite" // SQLite driver
)

// New creates a new database connection pool.
//
// _txlock=immediate makes every transaction take the write lock at BEGIN, so
// two concurrent postings against the same account serialize instead of both
// reading the same starting balance.
func New(dataSourceName string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dataSourceName+"?_pragma=foreign_keys(1)&_txlock=immediate")
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate runs the SQL statements to set up the database schema.
func Migrate(db *sql.DB) error {
	// Timestamps are Unix nanoseconds so ORDER BY stays chronological;
	// money columns hold decimal strings, arithmetic happens in Go.
	const sqlStmt = `
	CREATE TABLE IF NOT EXISTS users (
		id TEXT NOT NULL PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS accounts (
		id TEXT NOT NULL PRIMARY KEY,
		user_id TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		balance TEXT NOT NULL DEFAULT '0',
		created_at INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS transactions (
		id TEXT NOT NULL PRIMARY KEY,
		account_id TEXT NOT NULL REFERENCES accounts(id) ON DELETE CASCADE,
		amount TEXT NOT NULL,
		type TEXT NOT NULL,
		timestamp INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_accounts_user_id ON accounts(user_id);
	CREATE INDEX IF NOT EXISTS idx_transactions_account_id ON transactions(account_id);
	`
	_, err := db.Exec(sqlStmt)
	return err
}
