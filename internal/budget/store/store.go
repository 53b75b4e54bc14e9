package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MrJamesThe3rd/budgeter/internal/budget"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

const selectBudgetColumns = `id, category_id, month, amount, target_amount, created_at, updated_at`

func scanBudget(s scanner) (*budget.MonthlyBudget, error) {
	var (
		b      budget.MonthlyBudget
		target sql.NullInt64
	)

	if err := s.Scan(&b.ID, &b.CategoryID, &b.Month, &b.Amount, &target, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}

	b.Month = b.Month.UTC()

	if target.Valid {
		b.TargetAmount = &target.Int64
	}

	return &b, nil
}

func (s *Store) ListBudgets(ctx context.Context, m time.Time) ([]*budget.MonthlyBudget, error) {
	query := `SELECT ` + selectBudgetColumns + ` FROM monthly_budgets WHERE month = $1`

	return s.query(ctx, query, m)
}

func (s *Store) LatestBudgets(ctx context.Context, atOrBefore time.Time) ([]*budget.MonthlyBudget, error) {
	query := `
		SELECT DISTINCT ON (category_id) ` + selectBudgetColumns + `
		FROM monthly_budgets
		WHERE month <= $1
		ORDER BY category_id, month DESC
	`

	return s.query(ctx, query, atOrBefore)
}

// UpsertBudget relies on the (category_id, month) unique constraint so
// concurrent writers for the same pair converge on one row.
func (s *Store) UpsertBudget(ctx context.Context, params budget.UpsertBudgetParams) (*budget.MonthlyBudget, error) {
	query := `
		INSERT INTO monthly_budgets (category_id, month, amount, target_amount, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (category_id, month) DO UPDATE SET
			amount = CASE WHEN $5::boolean THEN EXCLUDED.amount ELSE monthly_budgets.amount END,
			target_amount = CASE WHEN $6::boolean THEN EXCLUDED.target_amount ELSE monthly_budgets.target_amount END,
			updated_at = NOW()
		RETURNING ` + selectBudgetColumns

	b, err := scanBudget(s.db.QueryRowContext(ctx, query,
		params.CategoryID,
		params.Month,
		params.Amount,
		params.TargetAmount,
		params.SetAmount,
		params.SetTarget,
	))
	if err != nil {
		return nil, fmt.Errorf("upserting budget: %w", err)
	}

	return b, nil
}

func (s *Store) query(ctx context.Context, query string, args ...any) ([]*budget.MonthlyBudget, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing budgets: %w", err)
	}
	defer rows.Close()

	var budgets []*budget.MonthlyBudget

	for rows.Next() {
		b, err := scanBudget(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning budget: %w", err)
		}

		budgets = append(budgets, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating budgets: %w", err)
	}

	return budgets, nil
}
