package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/segyhp/accrual-engine/internal/domain"
	"github.com/segyhp/accrual-engine/pkg/response"
)

type InvestmentHandler struct {
	service   InvestmentService
	validator *validator.Validate
}

func NewInvestmentHandler(service InvestmentService) *InvestmentHandler {
	return &InvestmentHandler{
		service:   service,
		validator: newValidator(),
	}
}

// ListPlans returns the active plan catalogue
func (h *InvestmentHandler) ListPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.service.ListPlans(r.Context())
	if err != nil {
		response.FromError(w, "Failed to load plans", err)
		return
	}

	response.Success(w, plans)
}

// CreateInvestment commits part of the user's available balance to a plan
func (h *InvestmentHandler) CreateInvestment(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		response.BadRequest(w, "Invalid user ID", err)
		return
	}

	var request domain.CreateInvestmentRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		response.BadRequest(w, "Invalid request body", err)
		return
	}

	if err := h.validator.Struct(&request); err != nil {
		response.BadRequest(w, "Validation failed", err)
		return
	}

	investment, err := h.service.CreateInvestment(r.Context(), userID, &request)
	if err != nil {
		response.FromError(w, "Failed to create investment", err)
		return
	}

	response.Created(w, &domain.CreateInvestmentResponse{
		Investment: investment,
		Message:    "Investment created successfully",
	})
}
