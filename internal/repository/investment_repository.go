package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/segyhp/accrual-engine/internal/domain"
)

const investmentColumns = `id, user_id, plan_name, amount, daily_percent, duration_days, started_at, profit, created_at`

type investmentRepository struct {
	db *sqlx.DB
}

func NewInvestmentRepository(db *sqlx.DB) InvestmentRepository {
	return &investmentRepository{db: db}
}

func (r *investmentRepository) Create(ctx context.Context, investment *domain.Investment) error {
	insert := `
		INSERT INTO investments (` + investmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	commit := `
		UPDATE users
		SET total_investment = total_investment + $2, updated_at = NOW()
		WHERE id = $1
	`

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin investment tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, insert,
		investment.ID,
		investment.UserID,
		investment.PlanName,
		investment.Amount,
		investment.DailyPercent,
		investment.DurationDays,
		investment.StartedAt,
		investment.AccruedProfit,
		investment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert investment: %w", err)
	}

	result, err := tx.ExecContext(ctx, commit, investment.UserID, investment.Amount.Decimal)
	if err != nil {
		return fmt.Errorf("increment total investment: %w", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return fmt.Errorf("increment total investment: user %s not found", investment.UserID)
	}

	return tx.Commit()
}

func (r *investmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Investment, error) {
	query := `SELECT ` + investmentColumns + ` FROM investments WHERE id = $1`

	var investment domain.Investment
	if err := r.db.GetContext(ctx, &investment, query, id); err != nil {
		return nil, fmt.Errorf("get investment %s: %w", id, err)
	}

	return &investment, nil
}

func (r *investmentRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Investment, error) {
	query := `SELECT ` + investmentColumns + ` FROM investments WHERE user_id = $1 ORDER BY started_at ASC`

	var investments []*domain.Investment
	if err := r.db.SelectContext(ctx, &investments, query, userID); err != nil {
		return nil, fmt.Errorf("list investments for user %s: %w", userID, err)
	}

	return investments, nil
}

func (r *investmentRepository) ListAll(ctx context.Context) ([]*domain.Investment, error) {
	query := `SELECT ` + investmentColumns + ` FROM investments ORDER BY started_at ASC`

	var investments []*domain.Investment
	if err := r.db.SelectContext(ctx, &investments, query); err != nil {
		return nil, fmt.Errorf("list investments: %w", err)
	}

	return investments, nil
}

func (r *investmentRepository) UpdateProfit(ctx context.Context, id uuid.UUID, profit decimal.Decimal) error {
	query := `UPDATE investments SET profit = $2 WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, id, profit); err != nil {
		return fmt.Errorf("update profit for investment %s: %w", id, err)
	}

	return nil
}
