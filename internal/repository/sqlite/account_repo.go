package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"

	"eventsapi/internal/domain"
)

type accountRow struct {
	ID        int       `db:"id"`
	Email     string    `db:"email"`
	Password  string    `db:"password_hash"`
	Roles     string    `db:"roles"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// AccountRepo stores accounts in SQLite. Roles are kept as a comma separated list.
type AccountRepo struct {
	db *sqlx.DB
}

// NewAccountRepo creates an account repository on the given database.
func NewAccountRepo(db *sqlx.DB) *AccountRepo {
	return &AccountRepo{db: db}
}

// Create inserts a new account and sets its ID.
func (r *AccountRepo) Create(ctx context.Context, a *domain.Account) error {
	roles := make([]string, 0, len(a.Roles))
	for _, role := range a.Roles {
		roles = append(roles, string(role))
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO accounts (email, password_hash, roles, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		a.Email, a.Password, strings.Join(roles, ","), a.CreatedAt, a.UpdatedAt)
	if err != nil {
		var serr sqlite3.Error
		if errors.As(err, &serr) && serr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return domain.ErrDuplicateEmail
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = int(id)
	return nil
}

// GetByEmail returns the account registered with email.
func (r *AccountRepo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	var row accountRow
	err := r.db.GetContext(ctx, &row,
		`SELECT id, email, password_hash, roles, created_at, updated_at FROM accounts WHERE email = ?`, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	a := &domain.Account{
		ID:        row.ID,
		Email:     row.Email,
		Password:  row.Password,
		Roles:     []domain.AccountRole{},
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	for _, role := range strings.Split(row.Roles, ",") {
		if role != "" {
			a.Roles = append(a.Roles, domain.AccountRole(role))
		}
	}
	return a, nil
}
