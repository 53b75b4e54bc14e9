package budget

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/MrJamesThe3rd/budgeter/internal/apperr"
	"github.com/MrJamesThe3rd/budgeter/internal/category"
	"github.com/MrJamesThe3rd/budgeter/internal/month"
	"github.com/MrJamesThe3rd/budgeter/internal/spend"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=budget
type Repository interface {
	ListBudgets(ctx context.Context, monthStart time.Time) ([]*MonthlyBudget, error)
	// LatestBudgets returns, per category, the most recent row with month <= atOrBefore.
	LatestBudgets(ctx context.Context, atOrBefore time.Time) ([]*MonthlyBudget, error)
	UpsertBudget(ctx context.Context, params UpsertBudgetParams) (*MonthlyBudget, error)
}

type CategoryLister interface {
	List(ctx context.Context) ([]*category.Category, error)
	Get(ctx context.Context, id uuid.UUID) (*category.Category, error)
}

type SpendLister interface {
	ListRange(ctx context.Context, r month.Range) ([]*spend.Spend, error)
}

type Service struct {
	repo       Repository
	categories CategoryLister
	spends     SpendLister
	now        func() time.Time
}

func NewService(repo Repository, categories CategoryLister, spends SpendLister) *Service {
	return &Service{
		repo:       repo,
		categories: categories,
		spends:     spends,
		now:        time.Now,
	}
}

// ForMonth returns the budget lines for the month named by token
// (YYYY-MM, empty for the current month).
func (s *Service) ForMonth(ctx context.Context, token string) ([]*Line, error) {
	m, err := month.ParseOrCurrent(token, s.now())
	if err != nil {
		return nil, err
	}

	in, err := s.inputs(ctx, m)
	if err != nil {
		return nil, err
	}

	return Compute(in), nil
}

func (s *Service) inputs(ctx context.Context, m time.Time) (Inputs, error) {
	in := Inputs{Month: m}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		in.Categories, err = s.categories.List(ctx)
		if err != nil {
			return fmt.Errorf("listing categories: %w", err)
		}

		return nil
	})

	g.Go(func() (err error) {
		in.Budgets, err = s.repo.ListBudgets(ctx, m)
		if err != nil {
			return fmt.Errorf("listing budgets: %w", err)
		}

		return nil
	})

	g.Go(func() (err error) {
		in.History, err = s.repo.LatestBudgets(ctx, m)
		if err != nil {
			return fmt.Errorf("listing budget history: %w", err)
		}

		return nil
	})

	s.goPrior(ctx, g, &in)

	if err := g.Wait(); err != nil {
		return Inputs{}, err
	}

	return in, nil
}

// TargetUpdate distinguishes "set the target" from "clear the target".
// A nil *TargetUpdate leaves the stored target untouched.
type TargetUpdate struct {
	Value *int64
}

type UpsertParams struct {
	CategoryID uuid.UUID
	Month      string
	Amount     *int64
	Target     *TargetUpdate
}

// UpsertBudgetParams is what the store writes. Amount and TargetAmount are
// the values used on insert; the Set flags choose which columns an update touches.
type UpsertBudgetParams struct {
	CategoryID   uuid.UUID
	Month        time.Time
	Amount       int64
	TargetAmount *int64
	SetAmount    bool
	SetTarget    bool
}

// Upsert creates the budget for (category, month) or updates the provided
// fields of the existing one. The result carries the rollover for that month.
func (s *Service) Upsert(ctx context.Context, params UpsertParams) (*Line, error) {
	if params.CategoryID == uuid.Nil {
		return nil, apperr.Invalid("categoryId", "is required")
	}

	if params.Amount != nil && *params.Amount < 0 {
		return nil, apperr.Invalid("amount", "must not be negative")
	}

	if params.Target != nil && params.Target.Value != nil && *params.Target.Value < 0 {
		return nil, apperr.Invalid("targetAmount", "must not be negative")
	}

	m, err := month.ParseOrCurrent(params.Month, s.now())
	if err != nil {
		return nil, err
	}

	c, err := s.categories.Get(ctx, params.CategoryID)
	if err != nil {
		if errors.Is(err, category.ErrNotFound) {
			return nil, fmt.Errorf("category %s: %w", params.CategoryID, apperr.ErrMissingReference)
		}

		return nil, fmt.Errorf("resolving category: %w", err)
	}

	write := UpsertBudgetParams{
		CategoryID: params.CategoryID,
		Month:      m,
	}

	if params.Amount != nil {
		write.Amount = *params.Amount
		write.SetAmount = true
	}

	if params.Target != nil {
		write.TargetAmount = params.Target.Value
		write.SetTarget = true
	}

	b, err := s.repo.UpsertBudget(ctx, write)
	if err != nil {
		return nil, err
	}

	in := Inputs{
		Month:      m,
		Categories: []*category.Category{c},
		Budgets:    []*MonthlyBudget{b},
	}

	g, gctx := errgroup.WithContext(ctx)
	s.goPrior(gctx, g, &in)

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return Compute(in)[0], nil
}

// goPrior schedules the fetches of the month before in.Month on g.
func (s *Service) goPrior(ctx context.Context, g *errgroup.Group, in *Inputs) {
	prev := month.Add(in.Month, -1)

	g.Go(func() (err error) {
		in.PriorBudgets, err = s.repo.ListBudgets(ctx, prev)
		if err != nil {
			return fmt.Errorf("listing prior budgets: %w", err)
		}

		return nil
	})

	g.Go(func() (err error) {
		in.PriorSpends, err = s.spends.ListRange(ctx, month.Single(prev))
		if err != nil {
			return fmt.Errorf("listing prior spends: %w", err)
		}

		return nil
	})
}
