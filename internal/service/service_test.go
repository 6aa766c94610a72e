package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/segyhp/accrual-engine/internal/config"
	"github.com/segyhp/accrual-engine/internal/domain"
)

var testNow = time.Date(2024, 6, 15, 9, 30, 0, 0, time.UTC)

type stubClock time.Time

func (c stubClock) Now() time.Time { return time.Time(c) }

func testConfig() *config.Config {
	return &config.Config{
		Scheduler: config.SchedulerConfig{Timezone: "UTC"},
		Business:  config.BusinessConfig{CreditEpsilon: "0.01"},
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decEq(s string) interface{} {
	want := dec(s)
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(want) })
}

func newInvestment(userID uuid.UUID, amount, rate string, daysAgo int, snapshot string) *domain.Investment {
	return &domain.Investment{
		ID:            uuid.New(),
		UserID:        userID,
		PlanName:      "Test Plan",
		Amount:        decimal.NewNullDecimal(dec(amount)),
		DailyPercent:  decimal.NewNullDecimal(dec(rate)),
		DurationDays:  7,
		StartedAt:     testNow.Add(-time.Duration(daysAgo) * 24 * time.Hour),
		AccruedProfit: dec(snapshot),
	}
}
