package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/segyhp/accrual-engine/internal/domain"
)

type ledgerRepository struct {
	db *sqlx.DB
}

func NewLedgerRepository(db *sqlx.DB) LedgerRepository {
	return &ledgerRepository{db: db}
}

func (r *ledgerRepository) Exists(ctx context.Context, investmentID uuid.UUID, kind domain.LedgerKind, tag string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM transactions
			WHERE investment_id = $1 AND kind = $2 AND tag = $3
		)
	`

	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, investmentID, kind, tag); err != nil {
		return false, fmt.Errorf("check ledger entry: %w", err)
	}

	return exists, nil
}

func (r *ledgerRepository) SumByKind(ctx context.Context, investmentID uuid.UUID, kind domain.LedgerKind) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE investment_id = $1 AND kind = $2
	`

	var total decimal.Decimal
	if err := r.db.GetContext(ctx, &total, query, investmentID, kind); err != nil {
		return decimal.Zero, fmt.Errorf("sum ledger entries: %w", err)
	}

	return total, nil
}

func (r *ledgerRepository) Credit(ctx context.Context, entry *domain.LedgerEntry) (bool, error) {
	insert := `
		INSERT INTO transactions (id, user_id, investment_id, type, kind, amount, currency, status, description, tag, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (investment_id, kind, tag) DO NOTHING
	`
	credit := `
		UPDATE users
		SET balance = balance + $2, updated_at = NOW()
		WHERE id = $1
	`

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin ledger tx: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, insert,
		entry.ID,
		entry.UserID,
		entry.InvestmentID,
		entry.Type,
		entry.Kind,
		entry.Amount,
		entry.Currency,
		entry.Status,
		entry.Description,
		entry.Tag,
		entry.CreatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("insert ledger entry: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("insert ledger entry: %w", err)
	}
	if rows == 0 {
		return false, nil
	}

	if entry.Amount.IsPositive() {
		if _, err := tx.ExecContext(ctx, credit, entry.UserID, entry.Amount); err != nil {
			return false, fmt.Errorf("credit balance: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit ledger tx: %w", err)
	}

	return true, nil
}

func (r *ledgerRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.LedgerEntry, error) {
	query := `
		SELECT id, user_id, investment_id, type, kind, amount, currency, status, description, tag, created_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	var entries []*domain.LedgerEntry
	if err := r.db.SelectContext(ctx, &entries, query, userID); err != nil {
		return nil, fmt.Errorf("list ledger for user %s: %w", userID, err)
	}

	return entries, nil
}
