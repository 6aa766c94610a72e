package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/segyhp/accrual-engine/internal/domain"
)

const planColumns = `id, name, min_amount, max_amount, daily_percent, duration_days, is_active, created_at, updated_at`

type planRepository struct {
	db *sqlx.DB
}

func NewPlanRepository(db *sqlx.DB) PlanRepository {
	return &planRepository{db: db}
}

func (r *planRepository) ListActive(ctx context.Context) ([]*domain.Plan, error) {
	query := `SELECT ` + planColumns + ` FROM investment_plans WHERE is_active ORDER BY min_amount ASC, id ASC`

	var plans []*domain.Plan
	if err := r.db.SelectContext(ctx, &plans, query); err != nil {
		return nil, fmt.Errorf("list plans: %w", err)
	}

	return plans, nil
}

func (r *planRepository) GetByName(ctx context.Context, name string) (*domain.Plan, error) {
	query := `SELECT ` + planColumns + ` FROM investment_plans WHERE name = $1`

	var plan domain.Plan
	if err := r.db.GetContext(ctx, &plan, query, name); err != nil {
		return nil, fmt.Errorf("get plan %q: %w", name, err)
	}

	return &plan, nil
}
