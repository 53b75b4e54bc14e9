package spend

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/budgeter/internal/apperr"
	"github.com/MrJamesThe3rd/budgeter/internal/category"
	"github.com/MrJamesThe3rd/budgeter/internal/month"
	"github.com/MrJamesThe3rd/budgeter/internal/payee"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=spend
type Repository interface {
	CreateSpend(ctx context.Context, s *Spend) error
	ListSpends(ctx context.Context, filter ListFilter) ([]*Spend, error)
	DeleteSpend(ctx context.Context, id uuid.UUID) error
}

type CategoryGetter interface {
	Get(ctx context.Context, id uuid.UUID) (*category.Category, error)
}

type MatcherSource interface {
	Matcher(ctx context.Context) (*payee.Matcher, error)
}

type Service struct {
	repo       Repository
	categories CategoryGetter
	payees     MatcherSource
}

func NewService(repo Repository, categories CategoryGetter, payees MatcherSource) *Service {
	return &Service{repo: repo, categories: categories, payees: payees}
}

// ListFilter selects spends with SpentAt in [Start, End).
type ListFilter struct {
	Start time.Time
	End   time.Time
}

type CreateParams struct {
	// CategoryID may be nil when PayeeName matches a payee rule.
	CategoryID *uuid.UUID
	Amount     int64
	SpentAt    time.Time
	Notes      string
	Recurring  bool
	PayeeName  string
}

// Create stores a spend. The payee matcher is loaded once and serves both the
// category fallback and the PayeeDisplay of the returned spend, so it is
// fetched even when CategoryID is set.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Spend, error) {
	if params.Amount < 0 {
		return nil, apperr.Invalid("amount", "must not be negative")
	}

	if params.SpentAt.IsZero() {
		return nil, apperr.Invalid("spentAt", "must be a valid date")
	}

	matcher, err := s.payees.Matcher(ctx)
	if err != nil {
		return nil, err
	}

	payeeName := strings.TrimSpace(params.PayeeName)

	categoryID, err := resolveCategory(params.CategoryID, payeeName, matcher)
	if err != nil {
		return nil, err
	}

	c, err := s.categories.Get(ctx, categoryID)
	if err != nil {
		if errors.Is(err, category.ErrNotFound) {
			return nil, fmt.Errorf("category %s: %w", categoryID, apperr.ErrMissingReference)
		}

		return nil, fmt.Errorf("resolving category: %w", err)
	}

	sp := &Spend{
		CategoryID:   c.ID,
		CategoryName: c.Name,
		Amount:       params.Amount,
		SpentAt:      params.SpentAt.UTC(),
		Notes:        optional(params.Notes),
		Recurring:    params.Recurring,
		PayeeName:    optional(payeeName),
	}
	if err := s.repo.CreateSpend(ctx, sp); err != nil {
		return nil, err
	}

	sp.PayeeDisplay = matcher.Display(sp.PayeeName)

	return sp, nil
}

func resolveCategory(explicit *uuid.UUID, payeeName string, matcher *payee.Matcher) (uuid.UUID, error) {
	if explicit != nil && *explicit != uuid.Nil {
		return *explicit, nil
	}

	if id, ok := matcher.Category(payeeName); ok {
		return id, nil
	}

	return uuid.Nil, fmt.Errorf("categoryId is required (or set a matching payee rule): %w", apperr.ErrMissingReference)
}

// ListMonth returns the spends of the month starting at m, newest first,
// with payee display names applied.
func (s *Service) ListMonth(ctx context.Context, m time.Time) ([]*Spend, error) {
	r := month.Single(m)

	spends, err := s.repo.ListSpends(ctx, ListFilter{Start: r.Start, End: r.End})
	if err != nil {
		return nil, err
	}

	matcher, err := s.payees.Matcher(ctx)
	if err != nil {
		return nil, err
	}

	for _, sp := range spends {
		sp.PayeeDisplay = matcher.Display(sp.PayeeName)
	}

	return spends, nil
}

// ListRange returns the raw spends in r without payee display names.
func (s *Service) ListRange(ctx context.Context, r month.Range) ([]*Spend, error) {
	return s.repo.ListSpends(ctx, ListFilter{Start: r.Start, End: r.End})
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteSpend(ctx, id)
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	return &s
}
