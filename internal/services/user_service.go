package services

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/isdelr/banco-api-be/internal/models"
)

// UserServiceProvider defines the interface for user services.
type UserServiceProvider interface {
	RegisterUser(username, password string) (models.User, error)
	AuthenticateUser(username, password string) (models.User, error)
	GetUserByID(id string) (models.User, error)
}

// UserService provides business logic for registration and credentials.
type UserService struct {
	db *sql.DB
}

// NewUserService creates a new UserService.
func NewUserService(db *sql.DB) *UserService {
	return &UserService{db: db}
}

// RegisterUser creates a new user with a hashed password and, in the same
// transaction, the user's first account with a zero balance. Both rows commit
// together or neither does; a user without an account must never be visible.
func (s *UserService) RegisterUser(username, password string) (models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return models.User{}, err
	}
	defer tx.Rollback()

	var taken int
	if err := tx.QueryRow("SELECT COUNT(1) FROM users WHERE username = ?", username).Scan(&taken); err != nil {
		return models.User{}, err
	}
	if taken > 0 {
		return models.User{}, ErrDuplicateUsername
	}

	user := models.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now().UTC(),
	}
	_, err = tx.Exec("INSERT INTO users(id, username, password_hash, created_at) VALUES(?, ?, ?, ?)",
		user.ID, user.Username, user.PasswordHash, user.CreatedAt.UnixNano())
	if err != nil {
		return models.User{}, err
	}

	// Every new user starts with one empty account.
	_, err = tx.Exec("INSERT INTO accounts(id, user_id, balance, created_at) VALUES(?, ?, ?, ?)",
		uuid.New().String(), user.ID, decimal.Zero, time.Now().UTC().UnixNano())
	if err != nil {
		return models.User{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.User{}, err
	}

	// Return user without password hash
	user.PasswordHash = ""
	return user, nil
}

// AuthenticateUser verifies a user's credentials.
func (s *UserService) AuthenticateUser(username, password string) (models.User, error) {
	var user models.User
	var createdAt int64
	row := s.db.QueryRow("SELECT id, username, password_hash, created_at FROM users WHERE username = ?", username)
	err := row.Scan(&user.ID, &user.Username, &user.PasswordHash, &createdAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, err
	}
	user.CreatedAt = time.Unix(0, createdAt).UTC()

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}

	// Don't send the password hash to the client
	user.PasswordHash = ""
	return user, nil
}

// GetUserByID retrieves a single user by their ID.
func (s *UserService) GetUserByID(id string) (models.User, error) {
	var user models.User
	var createdAt int64
	row := s.db.QueryRow("SELECT id, username, created_at FROM users WHERE id = ?", id)
	err := row.Scan(&user.ID, &user.Username, &createdAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, fmt.Errorf("user with ID %s not found", id)
		}
		return models.User{}, err
	}
	user.CreatedAt = time.Unix(0, createdAt).UTC()
	return user, nil
}
