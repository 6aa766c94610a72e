package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestInvestment_IsWellFormed(t *testing.T) {
	tests := []struct {
		name     string
		amount   decimal.NullDecimal
		rate     decimal.NullDecimal
		expected bool
	}{
		{name: "valid", amount: decimal.NewNullDecimal(dec("500")), rate: decimal.NewNullDecimal(dec("0.025")), expected: true},
		{name: "rate of one", amount: decimal.NewNullDecimal(dec("500")), rate: decimal.NewNullDecimal(dec("1")), expected: true},
		{name: "null amount", amount: decimal.NullDecimal{}, rate: decimal.NewNullDecimal(dec("0.02")), expected: false},
		{name: "null rate", amount: decimal.NewNullDecimal(dec("500")), rate: decimal.NullDecimal{}, expected: false},
		{name: "zero amount", amount: decimal.NewNullDecimal(decimal.Zero), rate: decimal.NewNullDecimal(dec("0.02")), expected: false},
		{name: "negative amount", amount: decimal.NewNullDecimal(dec("-10")), rate: decimal.NewNullDecimal(dec("0.02")), expected: false},
		{name: "zero rate", amount: decimal.NewNullDecimal(dec("500")), rate: decimal.NewNullDecimal(decimal.Zero), expected: false},
		{name: "rate above one", amount: decimal.NewNullDecimal(dec("500")), rate: decimal.NewNullDecimal(dec("1.5")), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := &Investment{Amount: tt.amount, DailyPercent: tt.rate}
			assert.Equal(t, tt.expected, inv.IsWellFormed())
		})
	}
}

func TestInvestment_Term(t *testing.T) {
	assert.Equal(t, DefaultDurationDays, (&Investment{}).Term())
	assert.Equal(t, DefaultDurationDays, (&Investment{DurationDays: -3}).Term())
	assert.Equal(t, 30, (&Investment{DurationDays: 30}).Term())
}

func TestPlan_Accepts(t *testing.T) {
	bounded := &Plan{Name: "Real Estate", MinAmount: dec("50"), MaxAmount: decimal.NewNullDecimal(dec("499"))}
	open := &Plan{Name: "Cannabis", MinAmount: dec("7000")}

	assert.False(t, bounded.Accepts(dec("49.99")))
	assert.True(t, bounded.Accepts(dec("50")))
	assert.True(t, bounded.Accepts(dec("499")))
	assert.False(t, bounded.Accepts(dec("499.01")))

	assert.False(t, open.Accepts(dec("6999")))
	assert.True(t, open.Accepts(dec("1000000")))
}

func TestUser_Balances(t *testing.T) {
	user := &User{
		Balance:         dec("1000"),
		TotalInvestment: dec("600"),
	}

	assert.True(t, user.AvailableBalance(dec("40")).Equal(dec("440")))
	assert.True(t, user.TotalBalance(dec("40")).Equal(dec("1040")))
}

func TestNewProfitEntries(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	inv := &Investment{ID: uuid.New(), UserID: uuid.New(), PlanName: "Agriculture", DurationDays: 7}

	daily := NewDailyProfitEntry(inv, dec("12.345"), "2024-05-01", now)
	assert.Equal(t, LedgerKindDailyProfit, daily.Kind)
	assert.Equal(t, "2024-05-01", daily.Tag)
	assert.Equal(t, "12.35", daily.Amount.StringFixed(2))
	assert.Equal(t, inv.UserID, daily.UserID)
	assert.Equal(t, "Daily Profit - Agriculture", daily.Description)

	matured := NewMaturityProfitEntry(inv, dec("100"), now)
	assert.Equal(t, LedgerKindMaturityProfit, matured.Kind)
	assert.Equal(t, MaturityTag, matured.Tag)
	assert.Equal(t, TransactionTypeProfit, matured.Type)
	assert.Equal(t, "Investment Profit - Agriculture (7 days)", matured.Description)
}
