package handler

import (
	"net/http"

	"github.com/segyhp/accrual-engine/internal/domain"
	"github.com/segyhp/accrual-engine/pkg/response"
)

type ProfitHandler struct {
	service ProfitService
}

func NewProfitHandler(service ProfitService) *ProfitHandler {
	return &ProfitHandler{service: service}
}

// GetProfits returns the user's total profit and daily earnings
func (h *ProfitHandler) GetProfits(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.BadRequest(w, "Invalid user ID", err)
		return
	}

	summary, err := h.service.ComputeProfits(r.Context(), userID)
	if err != nil {
		response.FromError(w, "Failed to compute profits", err)
		return
	}

	response.Success(w, &domain.ProfitsResponse{
		UserID:        userID,
		TotalProfit:   summary.TotalProfit,
		DailyEarnings: summary.DailyEarnings,
	})
}

// GetDashboard returns balances and per-investment profit
func (h *ProfitHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.BadRequest(w, "Invalid user ID", err)
		return
	}

	dashboard, err := h.service.GetDashboard(r.Context(), userID)
	if err != nil {
		response.FromError(w, "Failed to load dashboard", err)
		return
	}

	response.Success(w, dashboard)
}

func (h *ProfitHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.BadRequest(w, "Invalid user ID", err)
		return
	}

	entries, err := h.service.ListTransactions(r.Context(), userID)
	if err != nil {
		response.FromError(w, "Failed to load transactions", err)
		return
	}

	response.Success(w, entries)
}
