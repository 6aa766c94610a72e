package accrual

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/segyhp/accrual-engine/internal/domain"
	"github.com/segyhp/accrual-engine/pkg/utils"
)

var now = time.Date(2024, 6, 15, 9, 30, 0, 0, time.UTC)

func investment(amount, rate string, duration int, started time.Time) *domain.Investment {
	return &domain.Investment{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		PlanName:     "Test",
		Amount:       decimal.NewNullDecimal(decimal.RequireFromString(amount)),
		DailyPercent: decimal.NewNullDecimal(decimal.RequireFromString(rate)),
		DurationDays: duration,
		StartedAt:    started,
	}
}

func daysAgo(days int) time.Time {
	return now.Add(-time.Duration(days) * utils.Day)
}

func TestComputeProfits_MaturityBoundary(t *testing.T) {
	tests := []struct {
		name          string
		elapsed       int
		profit        string
		dailyEarnings string
	}{
		{name: "day zero", elapsed: 0, profit: "0.00", dailyEarnings: "20.00"},
		{name: "day six", elapsed: 6, profit: "120.00", dailyEarnings: "20.00"},
		{name: "day seven caps", elapsed: 7, profit: "140.00", dailyEarnings: "0.00"},
		{name: "well past term", elapsed: 30, profit: "140.00", dailyEarnings: "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := investment("1000", "0.02", 7, daysAgo(tt.elapsed))

			summary := ComputeProfits([]*domain.Investment{inv}, now)

			assert.Equal(t, tt.profit, summary.TotalProfit.StringFixed(2))
			assert.Equal(t, tt.dailyEarnings, summary.DailyEarnings.StringFixed(2))
		})
	}
}

func TestComputeProfits_TwoInvestmentScenario(t *testing.T) {
	a := investment("500", "0.025", 7, daysAgo(3))
	b := investment("2000", "0.035", 7, daysAgo(10))

	summary := ComputeProfits([]*domain.Investment{a, b}, now)

	assert.Equal(t, "527.50", summary.TotalProfit.StringFixed(2))
	assert.Equal(t, "12.50", summary.DailyEarnings.StringFixed(2))
}

func TestComputeProfits_Idempotent(t *testing.T) {
	invs := []*domain.Investment{
		investment("500", "0.025", 7, daysAgo(3)),
		investment("1234.56", "0.0333", 7, daysAgo(5)),
	}

	first := ComputeProfits(invs, now)
	second := ComputeProfits(invs, now)

	assert.True(t, first.TotalProfit.Equal(second.TotalProfit))
	assert.True(t, first.DailyEarnings.Equal(second.DailyEarnings))
}

func TestComputeProfits_MonotonicAndConstantAfterMaturity(t *testing.T) {
	start := now
	inv := investment("750", "0.03", 7, start)

	previous := decimal.Zero
	var atMaturity decimal.Decimal
	for hours := 0; hours <= 24*12; hours += 5 {
		at := start.Add(time.Duration(hours) * time.Hour)
		profit := ComputeProfits([]*domain.Investment{inv}, at).TotalProfit

		assert.True(t, profit.GreaterThanOrEqual(previous), "profit decreased at +%dh", hours)
		previous = profit

		if ElapsedDays(start, at) >= 7 {
			if atMaturity.IsZero() {
				atMaturity = profit
			}
			assert.True(t, profit.Equal(atMaturity), "profit changed after maturity at +%dh", hours)
		}
	}
	assert.Equal(t, "157.50", atMaturity.StringFixed(2))
}

func TestComputeProfits_ClockSkewClampsToZero(t *testing.T) {
	future := investment("1000", "0.02", 7, now.Add(3*utils.Day))

	summary := ComputeProfits([]*domain.Investment{future}, now)

	assert.True(t, summary.TotalProfit.IsZero())
	// A not-yet-started investment is still active and earns its daily rate going forward.
	assert.Equal(t, "20.00", summary.DailyEarnings.StringFixed(2))

	a := Accrue(future, now)
	assert.Equal(t, 0, a.ElapsedDays)
	assert.Equal(t, 0, a.EffectiveDays)
}

func TestComputeProfits_MalformedRowsContributeZero(t *testing.T) {
	good := investment("500", "0.025", 7, daysAgo(3))
	nullAmount := investment("1", "0.02", 7, daysAgo(3))
	nullAmount.Amount = decimal.NullDecimal{}
	badRate := investment("1000", "1.5", 7, daysAgo(3))
	missingStart := investment("1000", "0.02", 7, time.Time{})

	summary := ComputeProfits([]*domain.Investment{good, nil, nullAmount, badRate, missingStart}, now)

	// good: 37.50 profit, 12.50/day; missingStart: 0 profit, 20/day
	assert.Equal(t, "37.50", summary.TotalProfit.StringFixed(2))
	assert.Equal(t, "32.50", summary.DailyEarnings.StringFixed(2))
}

func TestComputeProfits_Empty(t *testing.T) {
	summary := ComputeProfits(nil, now)

	assert.True(t, summary.TotalProfit.IsZero())
	assert.True(t, summary.DailyEarnings.IsZero())
}

func TestComputeProfits_DefaultDuration(t *testing.T) {
	inv := investment("1000", "0.02", 0, daysAgo(20))

	summary := ComputeProfits([]*domain.Investment{inv}, now)

	assert.Equal(t, "140.00", summary.TotalProfit.StringFixed(2))
}

func TestComputeProfits_RoundsHalfUp(t *testing.T) {
	// 333.33 * 0.0333 * 1 = 11.099889 -> 11.10
	inv := investment("333.33", "0.0333", 7, daysAgo(1))

	summary := ComputeProfits([]*domain.Investment{inv}, now)

	assert.Equal(t, "11.10", summary.TotalProfit.StringFixed(2))
}

func TestEffectiveDays(t *testing.T) {
	assert.Equal(t, 0, EffectiveDays(-4, 7))
	assert.Equal(t, 3, EffectiveDays(3, 7))
	assert.Equal(t, 7, EffectiveDays(7, 7))
	assert.Equal(t, 7, EffectiveDays(99, 7))
}

func TestAccrue(t *testing.T) {
	inv := investment("2000", "0.035", 7, daysAgo(10))

	a := Accrue(inv, now)

	assert.True(t, a.Valid)
	assert.True(t, a.Matured)
	assert.Equal(t, 10, a.ElapsedDays)
	assert.Equal(t, 7, a.EffectiveDays)
	assert.True(t, a.Profit.Equal(decimal.NewFromInt(490)))
	assert.True(t, a.FullTermProfit.Equal(decimal.NewFromInt(490)))
	assert.True(t, a.DailyEarning.Equal(decimal.NewFromInt(70)))
	assert.Equal(t, domain.InvestmentStatusMatured, a.Status())
}

func TestView(t *testing.T) {
	active := View(investment("500", "0.025", 7, daysAgo(3)), now)
	assert.Equal(t, domain.InvestmentStatusActive, active.Status)
	assert.Equal(t, "37.50", active.Profit.StringFixed(2))
	assert.Equal(t, "12.50", active.DailyEarnings.StringFixed(2))
	assert.Equal(t, 3, active.ElapsedDays)

	matured := View(investment("2000", "0.035", 7, daysAgo(10)), now)
	assert.Equal(t, domain.InvestmentStatusMatured, matured.Status)
	assert.True(t, matured.DailyEarnings.IsZero())

	assert.Nil(t, View(nil, now))
}
