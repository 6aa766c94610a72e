package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// User is the aggregate whose balance the sweep credits. TotalInvestment only ever grows.
type User struct {
	ID              uuid.UUID       `json:"id" db:"id"`
	Email           string          `json:"email" db:"email"`
	Name            string          `json:"name" db:"name"`
	Balance         decimal.Decimal `json:"balance" db:"balance"`
	Bonus           decimal.Decimal `json:"bonus" db:"bonus"`
	TotalInvestment decimal.Decimal `json:"total_investment" db:"total_investment"`
	AdminApproved   bool            `json:"admin_approved" db:"admin_approved"`
	CreatedAt       time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at" db:"updated_at"`
}

// AvailableBalance is the amount a user may commit to a new investment.
func (u *User) AvailableBalance(totalProfit decimal.Decimal) decimal.Decimal {
	return u.Balance.Add(totalProfit).Sub(u.TotalInvestment)
}

// TotalBalance is the balance shown on the dashboard, unrealized profit included.
func (u *User) TotalBalance(totalProfit decimal.Decimal) decimal.Decimal {
	return u.Balance.Add(totalProfit)
}

type DashboardResponse struct {
	UserID           uuid.UUID         `json:"user_id"`
	Email            string            `json:"email"`
	Name             string            `json:"name"`
	AdminApproved    bool              `json:"admin_approved"`
	Balance          decimal.Decimal   `json:"balance"`
	Bonus            decimal.Decimal   `json:"bonus"`
	TotalInvestment  decimal.Decimal   `json:"total_investment"`
	TotalProfit      decimal.Decimal   `json:"total_profit"`
	DailyEarnings    decimal.Decimal   `json:"daily_earnings"`
	TotalBalance     decimal.Decimal   `json:"total_balance"`
	AvailableBalance decimal.Decimal   `json:"available_balance"`
	Investments      []*InvestmentView `json:"investments"`
}
