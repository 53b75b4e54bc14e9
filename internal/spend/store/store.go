package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/budgeter/internal/spend"
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

// scanSpend expects: id, category_id, category_name, amount, spent_at, notes, recurring, payee_name, created_at
func scanSpend(s scanner) (*spend.Spend, error) {
	var sp spend.Spend

	var notes, payeeName sql.NullString

	if err := s.Scan(
		&sp.ID, &sp.CategoryID, &sp.CategoryName, &sp.Amount, &sp.SpentAt,
		&notes, &sp.Recurring, &payeeName, &sp.CreatedAt,
	); err != nil {
		return nil, err
	}

	if notes.Valid {
		sp.Notes = &notes.String
	}

	if payeeName.Valid {
		sp.PayeeName = &payeeName.String
	}

	return &sp, nil
}

func (s *Store) CreateSpend(ctx context.Context, sp *spend.Spend) error {
	query := `
		INSERT INTO spends (category_id, amount, spent_at, notes, recurring, payee_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query,
		sp.CategoryID,
		sp.Amount,
		sp.SpentAt,
		sp.Notes,
		sp.Recurring,
		sp.PayeeName,
	).Scan(&sp.ID, &sp.CreatedAt)
	if err != nil {
		return fmt.Errorf("creating spend: %w", err)
	}

	return nil
}

func (s *Store) ListSpends(ctx context.Context, filter spend.ListFilter) ([]*spend.Spend, error) {
	query := `
		SELECT s.id, s.category_id, c.name, s.amount, s.spent_at, s.notes, s.recurring, s.payee_name, s.created_at
		FROM spends s
		JOIN categories c ON c.id = s.category_id
		WHERE s.spent_at >= $1 AND s.spent_at < $2
		ORDER BY s.spent_at DESC, s.created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, filter.Start, filter.End)
	if err != nil {
		return nil, fmt.Errorf("listing spends: %w", err)
	}
	defer rows.Close()

	var spends []*spend.Spend

	for rows.Next() {
		sp, err := scanSpend(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning spend: %w", err)
		}

		spends = append(spends, sp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating spends: %w", err)
	}

	return spends, nil
}

func (s *Store) DeleteSpend(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM spends WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting spend: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting spend: %w", err)
	}

	if n == 0 {
		return spend.ErrNotFound
	}

	return nil
}
