package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/segyhp/accrual-engine/internal/domain"
	"github.com/segyhp/accrual-engine/internal/repository/mocks"
	customError "github.com/segyhp/accrual-engine/pkg/errors"
)

func newProfitService() (*ProfitService, *mocks.MockInvestmentRepository, *mocks.MockUserRepository, *mocks.MockLedgerRepository) {
	investmentRepo := &mocks.MockInvestmentRepository{}
	userRepo := &mocks.MockUserRepository{}
	ledgerRepo := &mocks.MockLedgerRepository{}
	return NewProfitService(investmentRepo, userRepo, ledgerRepo, stubClock(testNow)), investmentRepo, userRepo, ledgerRepo
}

func TestComputeProfits_Success(t *testing.T) {
	service, investmentRepo, _, _ := newProfitService()
	userID := uuid.New()

	investmentRepo.On("ListByUser", mock.Anything, userID).Return([]*domain.Investment{
		newInvestment(userID, "500", "0.025", 3, "0"),
		newInvestment(userID, "2000", "0.035", 10, "0"),
	}, nil)

	summary, err := service.ComputeProfits(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, "527.50", summary.TotalProfit.StringFixed(2))
	assert.Equal(t, "12.50", summary.DailyEarnings.StringFixed(2))
}

func TestComputeProfits_NoInvestments(t *testing.T) {
	service, investmentRepo, _, _ := newProfitService()
	userID := uuid.New()
	investmentRepo.On("ListByUser", mock.Anything, userID).Return([]*domain.Investment{}, nil)

	summary, err := service.ComputeProfits(context.Background(), userID)

	require.NoError(t, err)
	assert.True(t, summary.TotalProfit.IsZero())
	assert.True(t, summary.DailyEarnings.IsZero())
}

func TestComputeProfits_ReadFailure(t *testing.T) {
	service, investmentRepo, _, _ := newProfitService()
	userID := uuid.New()
	investmentRepo.On("ListByUser", mock.Anything, userID).Return(nil, errors.New("timeout"))

	summary, err := service.ComputeProfits(context.Background(), userID)

	assert.Nil(t, summary)
	assert.Equal(t, customError.ErrCodeComputationUnavailable, customError.CodeOf(err))
	assert.ErrorIs(t, err, customError.ErrComputationUnavailable)
}

func TestGetDashboard_Success(t *testing.T) {
	service, investmentRepo, userRepo, _ := newProfitService()
	userID := uuid.New()
	user := &domain.User{
		ID:              userID,
		Email:           "investor@example.com",
		Balance:         dec("3000"),
		Bonus:           dec("10"),
		TotalInvestment: dec("2500"),
		AdminApproved:   true,
	}

	userRepo.On("GetByID", mock.Anything, userID).Return(user, nil)
	investmentRepo.On("ListByUser", mock.Anything, userID).Return([]*domain.Investment{
		newInvestment(userID, "500", "0.025", 3, "0"),
		newInvestment(userID, "2000", "0.035", 10, "0"),
	}, nil)

	dashboard, err := service.GetDashboard(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, "527.50", dashboard.TotalProfit.StringFixed(2))
	assert.Equal(t, "12.50", dashboard.DailyEarnings.StringFixed(2))
	assert.Equal(t, "3527.50", dashboard.TotalBalance.StringFixed(2))
	assert.Equal(t, "1027.50", dashboard.AvailableBalance.StringFixed(2))
	require.Len(t, dashboard.Investments, 2)
	assert.Equal(t, domain.InvestmentStatusActive, dashboard.Investments[0].Status)
	assert.Equal(t, domain.InvestmentStatusMatured, dashboard.Investments[1].Status)
}

func TestGetDashboard_UserNotFound(t *testing.T) {
	service, investmentRepo, userRepo, _ := newProfitService()
	userID := uuid.New()

	userRepo.On("GetByID", mock.Anything, userID).Return(nil, fmt.Errorf("get user: %w", sql.ErrNoRows))
	investmentRepo.On("ListByUser", mock.Anything, userID).Return([]*domain.Investment{}, nil).Maybe()

	dashboard, err := service.GetDashboard(context.Background(), userID)

	assert.Nil(t, dashboard)
	assert.Equal(t, customError.ErrCodeUserNotFound, customError.CodeOf(err))
}

func TestGetDashboard_InvestmentReadFailure(t *testing.T) {
	service, investmentRepo, userRepo, _ := newProfitService()
	userID := uuid.New()

	userRepo.On("GetByID", mock.Anything, userID).Return(&domain.User{ID: userID}, nil).Maybe()
	investmentRepo.On("ListByUser", mock.Anything, userID).Return(nil, errors.New("boom"))

	_, err := service.GetDashboard(context.Background(), userID)

	assert.Equal(t, customError.ErrCodeComputationUnavailable, customError.CodeOf(err))
}

func TestListTransactions(t *testing.T) {
	service, _, userRepo, ledgerRepo := newProfitService()
	userID := uuid.New()

	userRepo.On("GetByID", mock.Anything, userID).Return(&domain.User{ID: userID}, nil)
	ledgerRepo.On("ListByUser", mock.Anything, userID).Return(nil, nil)

	entries, err := service.ListTransactions(context.Background(), userID)

	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)

	missing := uuid.New()
	userRepo.On("GetByID", mock.Anything, missing).Return(nil, sql.ErrNoRows)
	_, err = service.ListTransactions(context.Background(), missing)
	assert.Equal(t, customError.ErrCodeUserNotFound, customError.CodeOf(err))
}
