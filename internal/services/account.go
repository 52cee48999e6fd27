package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"eventsapi/internal/domain"
)

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type accountService struct {
	accountRepo domain.AccountRepository
	hasher      domain.PasswordHasher
}

// NewAccountService creates an AccountService backed by the given repository and hasher.
func NewAccountService(accountRepo domain.AccountRepository, hasher domain.PasswordHasher) domain.AccountService {
	return &accountService{
		accountRepo: accountRepo,
		hasher:      hasher,
	}
}

func (s *accountService) CreateAccount(ctx context.Context, email, password string, roles []domain.AccountRole) (*domain.Account, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if !emailRegexp.MatchString(email) {
		return nil, fmt.Errorf("invalid email format")
	}
	if password == "" {
		return nil, fmt.Errorf("password is required")
	}
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	account := domain.NewAccount(email, hash, roles, now, now)
	if err := s.accountRepo.Create(ctx, account); err != nil {
		if errors.Is(err, domain.ErrDuplicateEmail) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("create account: %w", err)
	}
	return account, nil
}

func (s *accountService) EnsureAccount(ctx context.Context, email, password string, roles []domain.AccountRole) (*domain.Account, error) {
	account, err := s.LoadByUsername(ctx, email)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, err
	}
	return s.CreateAccount(ctx, email, password, roles)
}

func (s *accountService) LoadByUsername(ctx context.Context, username string) (*domain.Account, error) {
	email := strings.TrimSpace(strings.ToLower(username))
	account, err := s.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrAccountNotFound, username)
		}
		return nil, fmt.Errorf("get account: %w", err)
	}
	return account, nil
}

func (s *accountService) Authenticate(ctx context.Context, username, password string) (*domain.Account, error) {
	account, err := s.LoadByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, domain.ErrBadCredentials
		}
		return nil, err
	}
	if err := s.hasher.Compare(account.Password, password); err != nil {
		return nil, domain.ErrBadCredentials
	}
	return account, nil
}
