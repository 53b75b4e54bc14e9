package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/budgeter/internal/category"
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

const selectCategoryColumns = `id, name, recurring, created_at`

func scanCategory(s scanner) (*category.Category, error) {
	var c category.Category
	if err := s.Scan(&c.ID, &c.Name, &c.Recurring, &c.CreatedAt); err != nil {
		return nil, err
	}

	return &c, nil
}

func (s *Store) CreateCategory(ctx context.Context, c *category.Category) error {
	query := `
		INSERT INTO categories (name, recurring, created_at)
		VALUES ($1, $2, NOW())
		RETURNING id, created_at
	`

	if err := s.db.QueryRowContext(ctx, query, c.Name, c.Recurring).Scan(&c.ID, &c.CreatedAt); err != nil {
		return fmt.Errorf("creating category: %w", err)
	}

	return nil
}

func (s *Store) GetCategory(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	query := `SELECT ` + selectCategoryColumns + ` FROM categories WHERE id = $1`

	c, err := scanCategory(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, category.ErrNotFound
		}

		return nil, fmt.Errorf("getting category: %w", err)
	}

	return c, nil
}

func (s *Store) ListCategories(ctx context.Context) ([]*category.Category, error) {
	query := `SELECT ` + selectCategoryColumns + ` FROM categories ORDER BY created_at ASC, id ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	var categories []*category.Category

	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}

		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating categories: %w", err)
	}

	return categories, nil
}

func (s *Store) SetRecurring(ctx context.Context, id uuid.UUID, recurring bool) (*category.Category, error) {
	query := `
		UPDATE categories
		SET recurring = $1
		WHERE id = $2
		RETURNING ` + selectCategoryColumns

	c, err := scanCategory(s.db.QueryRowContext(ctx, query, recurring, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, category.ErrNotFound
		}

		return nil, fmt.Errorf("updating category: %w", err)
	}

	return c, nil
}

// DeleteCategory removes the category's budgets and payee rules before the
// category itself, all in one transaction. Spends are never cascaded.
func (s *Store) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	var inUse bool
	if err := dbTx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM spends WHERE category_id = $1)`, id,
	).Scan(&inUse); err != nil {
		return fmt.Errorf("checking spends: %w", err)
	}

	if inUse {
		return category.ErrInUse
	}

	if _, err := dbTx.ExecContext(ctx, `DELETE FROM monthly_budgets WHERE category_id = $1`, id); err != nil {
		return fmt.Errorf("deleting budgets: %w", err)
	}

	if _, err := dbTx.ExecContext(ctx, `DELETE FROM payee_rules WHERE category_id = $1`, id); err != nil {
		return fmt.Errorf("deleting payee rules: %w", err)
	}

	res, err := dbTx.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting category: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting category: %w", err)
	}

	if n == 0 {
		return category.ErrNotFound
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}
