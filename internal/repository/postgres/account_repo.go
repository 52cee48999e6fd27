package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"eventsapi/internal/domain"
)

type accountRepository struct {
	DB *sql.DB
}

func NewAccountRepository(db *sql.DB) domain.AccountRepository {
	return &accountRepository{DB: db}
}

func (r *accountRepository) Create(ctx context.Context, a *domain.Account) error {
	query := `
		INSERT INTO accounts (email, password_hash, roles, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, a.Email, a.Password, pq.Array(rolesToStrings(a.Roles)), a.CreatedAt, a.UpdatedAt).Scan(&a.ID)
	if err != nil {
		var perr *pq.Error
		if errors.As(err, &perr) && perr.Code == "23505" {
			return domain.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *accountRepository) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	query := `
		SELECT id, email, password_hash, roles, created_at, updated_at
		FROM accounts
		WHERE email = $1
	`
	a := &domain.Account{}
	var roles []string
	err := r.DB.QueryRowContext(ctx, query, email).Scan(&a.ID, &a.Email, &a.Password, pq.Array(&roles), &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	a.Roles = stringsToRoles(roles)
	return a, nil
}

func rolesToStrings(roles []domain.AccountRole) []string {
	out := make([]string, 0, len(roles))
	for _, r := range roles {
		out = append(out, string(r))
	}
	return out
}

func stringsToRoles(s []string) []domain.AccountRole {
	out := make([]domain.AccountRole, 0, len(s))
	for _, r := range s {
		out = append(out, domain.AccountRole(r))
	}
	return out
}
