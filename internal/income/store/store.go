package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/budgeter/internal/income"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateIncome(ctx context.Context, in *income.Income) error {
	query := `
		INSERT INTO income (amount, received_at, notes, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, created_at
	`

	if err := s.db.QueryRowContext(ctx, query, in.Amount, in.ReceivedAt, in.Notes).Scan(&in.ID, &in.CreatedAt); err != nil {
		return fmt.Errorf("creating income: %w", err)
	}

	return nil
}

func (s *Store) ListIncome(ctx context.Context, start, end time.Time) ([]*income.Income, error) {
	query := `
		SELECT id, amount, received_at, notes, created_at
		FROM income
		WHERE received_at >= $1 AND received_at < $2
		ORDER BY received_at DESC, created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("listing income: %w", err)
	}
	defer rows.Close()

	var entries []*income.Income

	for rows.Next() {
		var (
			in    income.Income
			notes sql.NullString
		)

		if err := rows.Scan(&in.ID, &in.Amount, &in.ReceivedAt, &notes, &in.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning income: %w", err)
		}

		if notes.Valid {
			in.Notes = &notes.String
		}

		entries = append(entries, &in)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating income: %w", err)
	}

	return entries, nil
}

func (s *Store) DeleteIncome(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM income WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting income: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting income: %w", err)
	}

	if n == 0 {
		return income.ErrNotFound
	}

	return nil
}
