package income

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/budgeter/internal/apperr"
	"github.com/MrJamesThe3rd/budgeter/internal/month"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=income
type Repository interface {
	CreateIncome(ctx context.Context, in *Income) error
	ListIncome(ctx context.Context, start, end time.Time) ([]*Income, error)
	DeleteIncome(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Amount     int64
	ReceivedAt time.Time
	Notes      string
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Income, error) {
	if params.Amount < 0 {
		return nil, apperr.Invalid("amount", "must not be negative")
	}

	if params.ReceivedAt.IsZero() {
		return nil, apperr.Invalid("receivedAt", "must be a valid date")
	}

	in := &Income{
		Amount:     params.Amount,
		ReceivedAt: params.ReceivedAt.UTC(),
	}

	if notes := strings.TrimSpace(params.Notes); notes != "" {
		in.Notes = &notes
	}

	if err := s.repo.CreateIncome(ctx, in); err != nil {
		return nil, err
	}

	return in, nil
}

// ListMonth returns the income received in the month starting at m, newest first.
func (s *Service) ListMonth(ctx context.Context, m time.Time) ([]*Income, error) {
	r := month.Single(m)
	return s.repo.ListIncome(ctx, r.Start, r.End)
}

func (s *Service) ListRange(ctx context.Context, r month.Range) ([]*Income, error) {
	return s.repo.ListIncome(ctx, r.Start, r.End)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteIncome(ctx, id)
}
