package report

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MrJamesThe3rd/budgeter/internal/account"
	"github.com/MrJamesThe3rd/budgeter/internal/budget"
	"github.com/MrJamesThe3rd/budgeter/internal/income"
	"github.com/MrJamesThe3rd/budgeter/internal/month"
	"github.com/MrJamesThe3rd/budgeter/internal/spend"
)

// trailingMonths is how far back the summary cashflow reaches, including the month itself.
const trailingMonths = 12

//go:generate mockgen -source=service.go -destination=source_mock.go -package=report
type SpendSource interface {
	ListRange(ctx context.Context, r month.Range) ([]*spend.Spend, error)
}

type IncomeSource interface {
	ListRange(ctx context.Context, r month.Range) ([]*income.Income, error)
}

type AccountSource interface {
	List(ctx context.Context) ([]*account.Account, error)
	BalancesBefore(ctx context.Context, end time.Time) ([]*account.Balance, error)
}

type BudgetSource interface {
	ForMonth(ctx context.Context, token string) ([]*budget.Line, error)
}

type Service struct {
	spends   SpendSource
	incomes  IncomeSource
	accounts AccountSource
	budgets  BudgetSource
	now      func() time.Time
}

func NewService(spends SpendSource, incomes IncomeSource, accounts AccountSource, budgets BudgetSource) *Service {
	return &Service{
		spends:   spends,
		incomes:  incomes,
		accounts: accounts,
		budgets:  budgets,
		now:      time.Now,
	}
}

type SpendingReport struct {
	Trend      []SpendingPoint
	ByCategory []CategoryTotal
}

// Spending reports the monthly spend trend over from..to. When monthToken is
// set, ByCategory breaks that month down by category, even if it lies
// outside the range.
func (s *Service) Spending(ctx context.Context, from, to, monthToken string) (*SpendingReport, error) {
	r, err := month.ParseRange(from, to, s.now())
	if err != nil {
		return nil, err
	}

	var focus time.Time
	if monthToken != "" {
		if focus, err = month.Parse(monthToken); err != nil {
			return nil, err
		}
	}

	var inRange, outside []*spend.Spend

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		inRange, err = s.spends.ListRange(gctx, r)
		if err != nil {
			return fmt.Errorf("listing spends: %w", err)
		}

		return nil
	})

	if !focus.IsZero() && !r.Contains(focus) {
		g.Go(func() (err error) {
			outside, err = s.spends.ListRange(gctx, month.Single(focus))
			if err != nil {
				return fmt.Errorf("listing spends for %s: %w", month.Format(focus), err)
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	rep := &SpendingReport{
		Trend:      Spending(r, inRange),
		ByCategory: []CategoryTotal{},
	}

	switch {
	case focus.IsZero():
	case r.Contains(focus):
		rep.ByCategory = SpendingByCategory(focus, inRange)
	default:
		rep.ByCategory = SpendingByCategory(focus, outside)
	}

	return rep, nil
}

func (s *Service) Cashflow(ctx context.Context, from, to string) ([]CashflowPoint, error) {
	r, err := month.ParseRange(from, to, s.now())
	if err != nil {
		return nil, err
	}

	incomes, spends, err := s.flows(ctx, r)
	if err != nil {
		return nil, err
	}

	return Cashflow(r, incomes, spends), nil
}

func (s *Service) NetWorth(ctx context.Context, from, to string) ([]NetWorthPoint, error) {
	r, err := month.ParseRange(from, to, s.now())
	if err != nil {
		return nil, err
	}

	var (
		accounts []*account.Account
		balances []*account.Balance
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		accounts, err = s.accounts.List(gctx)
		if err != nil {
			return fmt.Errorf("listing accounts: %w", err)
		}

		return nil
	})

	g.Go(func() (err error) {
		// Everything before the range end, so balances recorded before the
		// range still value the first months.
		balances, err = s.accounts.BalancesBefore(gctx, r.End)
		if err != nil {
			return fmt.Errorf("listing balances: %w", err)
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return NetWorth(r, accounts, balances), nil
}

// Summary builds the overview of the month named by token (empty for the current month).
func (s *Service) Summary(ctx context.Context, token string) (*Summary, error) {
	m, err := month.ParseOrCurrent(token, s.now())
	if err != nil {
		return nil, err
	}

	trailing := month.Range{Start: month.Add(m, 1-trailingMonths), End: month.Add(m, 1)}

	var (
		lines   []*budget.Line
		incomes []*income.Income
		spends  []*spend.Spend
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		lines, err = s.budgets.ForMonth(gctx, month.Format(m))
		if err != nil {
			return fmt.Errorf("computing budgets: %w", err)
		}

		return nil
	})

	g.Go(func() (err error) {
		incomes, spends, err = s.flows(gctx, trailing)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := Summarize(m, lines, spends, incomes, Cashflow(trailing, incomes, spends))

	return &summary, nil
}

func (s *Service) flows(ctx context.Context, r month.Range) ([]*income.Income, []*spend.Spend, error) {
	var (
		incomes []*income.Income
		spends  []*spend.Spend
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		incomes, err = s.incomes.ListRange(gctx, r)
		if err != nil {
			return fmt.Errorf("listing income: %w", err)
		}

		return nil
	})

	g.Go(func() (err error) {
		spends, err = s.spends.ListRange(gctx, r)
		if err != nil {
			return fmt.Errorf("listing spends: %w", err)
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return incomes, spends, nil
}
