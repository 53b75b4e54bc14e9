package account

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/budgeter/internal/apperr"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=account
type Repository interface {
	// CreateAccount inserts the account and its first balance snapshot atomically.
	CreateAccount(ctx context.Context, a *Account) error
	GetAccount(ctx context.Context, id uuid.UUID) (*Account, error)
	ListAccounts(ctx context.Context) ([]*Account, error)
	// UpdateAccount persists a and appends a balance snapshot when appendBalance is set.
	UpdateAccount(ctx context.Context, a *Account, appendBalance bool) error
	DeleteAccount(ctx context.Context, id uuid.UUID) error

	ListBalances(ctx context.Context, accountID uuid.UUID) ([]*Balance, error)
	// ListBalancesBefore returns every snapshot recorded strictly before end, oldest first.
	ListBalancesBefore(ctx context.Context, end time.Time) ([]*Balance, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name    string
	Type    Type
	Balance int64
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Account, error) {
	name := strings.TrimSpace(params.Name)
	if name == "" {
		return nil, apperr.Invalid("name", "is required")
	}

	if !params.Type.Valid() {
		return nil, apperr.Invalid("type", "must be ASSET or LIABILITY")
	}

	a := &Account{
		Name:    name,
		Type:    params.Type,
		Balance: params.Balance,
	}
	if err := s.repo.CreateAccount(ctx, a); err != nil {
		return nil, err
	}

	return a, nil
}

type UpdateParams struct {
	Name    *string
	Type    *Type
	Balance *int64
}

// Update applies the non-nil fields. A history row is appended only when the
// balance actually changes.
func (s *Service) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*Account, error) {
	if params.Type != nil && !params.Type.Valid() {
		return nil, apperr.Invalid("type", "must be ASSET or LIABILITY")
	}

	a, err := s.repo.GetAccount(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		if name := strings.TrimSpace(*params.Name); name != "" {
			a.Name = name
		}
	}

	if params.Type != nil {
		a.Type = *params.Type
	}

	balanceChanged := params.Balance != nil && *params.Balance != a.Balance
	if balanceChanged {
		a.Balance = *params.Balance
	}

	if err := s.repo.UpdateAccount(ctx, a, balanceChanged); err != nil {
		return nil, err
	}

	return a, nil
}

// List returns accounts ordered by type, then name.
func (s *Service) List(ctx context.Context) ([]*Account, error) {
	return s.repo.ListAccounts(ctx)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteAccount(ctx, id)
}

// Balances returns the balance history of an account, oldest first.
func (s *Service) Balances(ctx context.Context, id uuid.UUID) ([]*Balance, error) {
	if _, err := s.repo.GetAccount(ctx, id); err != nil {
		return nil, err
	}

	return s.repo.ListBalances(ctx, id)
}

func (s *Service) BalancesBefore(ctx context.Context, end time.Time) ([]*Balance, error) {
	return s.repo.ListBalancesBefore(ctx, end)
}
