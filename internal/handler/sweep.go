package handler

import (
	"net/http"

	"github.com/segyhp/accrual-engine/internal/domain"
	"github.com/segyhp/accrual-engine/pkg/response"
)

type SweepHandler struct {
	runner SweepRunner
}

func NewSweepHandler(runner SweepRunner) *SweepHandler {
	return &SweepHandler{runner: runner}
}

// Sweep materializes accrued profit, at most once per gate interval
func (h *SweepHandler) Sweep(w http.ResponseWriter, r *http.Request) {
	result, skipped, err := h.runner.RunIfDue(r.Context())
	if err != nil {
		response.FromError(w, "Profit sweep failed", err)
		return
	}

	if skipped {
		response.Success(w, &domain.SweepResponse{
			Skipped: true,
			Message: "Profit sweep ran recently, skipped",
		})
		return
	}

	response.Success(w, &domain.SweepResponse{
		Message: "Profits updated",
		Result:  result,
	})
}
