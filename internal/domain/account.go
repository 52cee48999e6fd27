package domain

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for account operations.
var (
	ErrAccountNotFound = errors.New("account not found")
	ErrDuplicateEmail  = errors.New("email already in use")
	ErrBadCredentials  = errors.New("bad credentials")
)

// AccountRole is a role granted to an account.
type AccountRole string

const (
	AccountRoleAdmin AccountRole = "ADMIN"
	AccountRoleUser  AccountRole = "USER"
)

// Account owns events. Its email doubles as the username.
// swagger:model Account
type Account struct {
	ID        int           `json:"id"`
	Email     string        `json:"email"`
	Password  string        `json:"-"`
	Roles     []AccountRole `json:"roles"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// HasRole reports whether the account was granted role.
func (a *Account) HasRole(role AccountRole) bool {
	for _, r := range a.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// NewAccount returns a new Account. ID is set by the repository on create.
func NewAccount(email, passwordHash string, roles []AccountRole, createdAt, updatedAt time.Time) *Account {
	return &Account{
		Email:     email,
		Password:  passwordHash,
		Roles:     roles,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// PasswordHasher hashes and verifies account passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// AccountRepository defines the interface for account storage.
type AccountRepository interface {
	Create(ctx context.Context, account *Account) error
	GetByEmail(ctx context.Context, email string) (*Account, error)
}

// AccountService defines account management used by event ownership.
type AccountService interface {
	// CreateAccount hashes the password and stores a new account.
	CreateAccount(ctx context.Context, email, password string, roles []AccountRole) (*Account, error)
	// EnsureAccount creates the account unless one with the same email already exists.
	EnsureAccount(ctx context.Context, email, password string, roles []AccountRole) (*Account, error)
	// LoadByUsername returns the account whose email is username. The error wraps
	// ErrAccountNotFound and names the username when there is none.
	LoadByUsername(ctx context.Context, username string) (*Account, error)
	// Authenticate returns the account when password matches, ErrBadCredentials otherwise.
	Authenticate(ctx context.Context, username, password string) (*Account, error)
}
