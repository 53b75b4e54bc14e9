package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/budgeter/internal/account"
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

const selectAccountColumns = `id, name, type, balance, created_at, updated_at`

func scanAccount(s scanner) (*account.Account, error) {
	var a account.Account
	if err := s.Scan(&a.ID, &a.Name, &a.Type, &a.Balance, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}

	return &a, nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func appendBalance(ctx context.Context, e execer, accountID uuid.UUID, balance int64) error {
	query := `
		INSERT INTO account_balances (account_id, balance, recorded_at)
		VALUES ($1, $2, NOW())
	`

	if _, err := e.ExecContext(ctx, query, accountID, balance); err != nil {
		return fmt.Errorf("appending balance: %w", err)
	}

	return nil
}

func (s *Store) CreateAccount(ctx context.Context, a *account.Account) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	query := `
		INSERT INTO accounts (name, type, balance, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	if err := dbTx.QueryRowContext(ctx, query, a.Name, a.Type, a.Balance).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return fmt.Errorf("creating account: %w", err)
	}

	if err := appendBalance(ctx, dbTx, a.ID, a.Balance); err != nil {
		return err
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

func (s *Store) GetAccount(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	query := `SELECT ` + selectAccountColumns + ` FROM accounts WHERE id = $1`

	a, err := scanAccount(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, account.ErrNotFound
		}

		return nil, fmt.Errorf("getting account: %w", err)
	}

	return a, nil
}

func (s *Store) ListAccounts(ctx context.Context) ([]*account.Account, error) {
	query := `SELECT ` + selectAccountColumns + ` FROM accounts ORDER BY type ASC, name ASC, id ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*account.Account

	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning account: %w", err)
		}

		accounts = append(accounts, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating accounts: %w", err)
	}

	return accounts, nil
}

func (s *Store) UpdateAccount(ctx context.Context, a *account.Account, appendHistory bool) error {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer dbTx.Rollback()

	query := `
		UPDATE accounts
		SET name = $1, type = $2, balance = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING updated_at
	`

	if err := dbTx.QueryRowContext(ctx, query, a.Name, a.Type, a.Balance, a.ID).Scan(&a.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return account.ErrNotFound
		}

		return fmt.Errorf("updating account: %w", err)
	}

	if appendHistory {
		if err := appendBalance(ctx, dbTx, a.ID, a.Balance); err != nil {
			return err
		}
	}

	if err := dbTx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

// DeleteAccount relies on the foreign key cascade to drop the balance history.
func (s *Store) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting account: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting account: %w", err)
	}

	if n == 0 {
		return account.ErrNotFound
	}

	return nil
}

func (s *Store) ListBalances(ctx context.Context, accountID uuid.UUID) ([]*account.Balance, error) {
	query := `
		SELECT id, account_id, balance, recorded_at
		FROM account_balances
		WHERE account_id = $1
		ORDER BY recorded_at ASC, id ASC
	`

	return s.queryBalances(ctx, query, accountID)
}

func (s *Store) ListBalancesBefore(ctx context.Context, end time.Time) ([]*account.Balance, error) {
	query := `
		SELECT id, account_id, balance, recorded_at
		FROM account_balances
		WHERE recorded_at < $1
		ORDER BY recorded_at ASC, id ASC
	`

	return s.queryBalances(ctx, query, end)
}

func (s *Store) queryBalances(ctx context.Context, query string, args ...any) ([]*account.Balance, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing balances: %w", err)
	}
	defer rows.Close()

	var balances []*account.Balance

	for rows.Next() {
		var b account.Balance
		if err := rows.Scan(&b.ID, &b.AccountID, &b.Balance, &b.RecordedAt); err != nil {
			return nil, fmt.Errorf("scanning balance: %w", err)
		}

		balances = append(balances, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating balances: %w", err)
	}

	return balances, nil
}
