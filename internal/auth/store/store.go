package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MrJamesThe3rd/budgeter/internal/auth"
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

const selectUserColumns = `id, email, name, password_hash, two_factor_secret, two_factor_enabled, created_at`

func scanUser(s scanner) (*auth.User, error) {
	var (
		u      auth.User
		name   sql.NullString
		secret sql.NullString
	)

	if err := s.Scan(&u.ID, &u.Email, &name, &u.PasswordHash, &secret, &u.TwoFactorEnabled, &u.CreatedAt); err != nil {
		return nil, err
	}

	if name.Valid {
		u.Name = &name.String
	}

	if secret.Valid {
		u.TwoFactorSecret = &secret.String
	}

	return &u, nil
}

func (s *Store) FirstUser(ctx context.Context) (*auth.User, error) {
	query := `SELECT ` + selectUserColumns + ` FROM users ORDER BY created_at ASC LIMIT 1`

	return s.getUser(ctx, query)
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*auth.User, error) {
	query := `SELECT ` + selectUserColumns + ` FROM users WHERE email = $1`

	return s.getUser(ctx, query, email)
}

func (s *Store) getUser(ctx context.Context, query string, args ...any) (*auth.User, error) {
	u, err := scanUser(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, auth.ErrNoUser
		}

		return nil, fmt.Errorf("getting user: %w", err)
	}

	return u, nil
}

// CreateOwner inserts u only while the users table is empty.
func (s *Store) CreateOwner(ctx context.Context, u *auth.User) error {
	query := `
		INSERT INTO users (email, name, password_hash, two_factor_enabled, created_at)
		SELECT $1, $2, $3, FALSE, NOW()
		WHERE NOT EXISTS (SELECT 1 FROM users)
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(ctx, query, u.Email, u.Name, u.PasswordHash).Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return auth.ErrSetupComplete
		}

		return fmt.Errorf("creating user: %w", err)
	}

	return nil
}

func (s *Store) SetTwoFactor(ctx context.Context, u *auth.User) error {
	query := `
		UPDATE users
		SET two_factor_secret = $1, two_factor_enabled = $2
		WHERE id = $3
	`

	res, err := s.db.ExecContext(ctx, query, u.TwoFactorSecret, u.TwoFactorEnabled, u.ID)
	if err != nil {
		return fmt.Errorf("updating two-factor settings: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating two-factor settings: %w", err)
	}

	if n == 0 {
		return auth.ErrNoUser
	}

	return nil
}
