package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/budgeter/internal/payee"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ListRules(ctx context.Context) ([]*payee.Rule, error) {
	query := `
		SELECT r.id, r.match_text, r.category_id, c.name, r.created_at
		FROM payee_rules r
		JOIN categories c ON c.id = r.category_id
		ORDER BY r.created_at DESC, r.id ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing payee rules: %w", err)
	}
	defer rows.Close()

	var rules []*payee.Rule

	for rows.Next() {
		var r payee.Rule
		if err := rows.Scan(&r.ID, &r.MatchText, &r.CategoryID, &r.CategoryName, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning payee rule: %w", err)
		}

		rules = append(rules, &r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating payee rules: %w", err)
	}

	return rules, nil
}

func (s *Store) CreateRule(ctx context.Context, r *payee.Rule) error {
	query := `
		INSERT INTO payee_rules (match_text, category_id, created_at)
		VALUES ($1, $2, NOW())
		RETURNING id, created_at
	`

	if err := s.db.QueryRowContext(ctx, query, r.MatchText, r.CategoryID).Scan(&r.ID, &r.CreatedAt); err != nil {
		return fmt.Errorf("creating payee rule: %w", err)
	}

	return nil
}

func (s *Store) DeleteRule(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, s.db, "payee_rules", id, payee.ErrRuleNotFound)
}

func (s *Store) ListRenames(ctx context.Context) ([]*payee.Rename, error) {
	query := `
		SELECT id, match_text, rename_to, created_at
		FROM payee_renames
		ORDER BY created_at DESC, id ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing payee renames: %w", err)
	}
	defer rows.Close()

	var renames []*payee.Rename

	for rows.Next() {
		var r payee.Rename
		if err := rows.Scan(&r.ID, &r.MatchText, &r.RenameTo, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning payee rename: %w", err)
		}

		renames = append(renames, &r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating payee renames: %w", err)
	}

	return renames, nil
}

func (s *Store) CreateRename(ctx context.Context, r *payee.Rename) error {
	query := `
		INSERT INTO payee_renames (match_text, rename_to, created_at)
		VALUES ($1, $2, NOW())
		RETURNING id, created_at
	`

	if err := s.db.QueryRowContext(ctx, query, r.MatchText, r.RenameTo).Scan(&r.ID, &r.CreatedAt); err != nil {
		return fmt.Errorf("creating payee rename: %w", err)
	}

	return nil
}

func (s *Store) DeleteRename(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, s.db, "payee_renames", id, payee.ErrRenameNotFound)
}

// deleteByID only ever receives table names from this package.
func deleteByID(ctx context.Context, db *sql.DB, table string, id uuid.UUID, notFound error) error {
	res, err := db.ExecContext(ctx, `DELETE FROM `+table+` WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting from %s: %w", table, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting from %s: %w", table, err)
	}

	if n == 0 {
		return notFound
	}

	return nil
}
