package handler

import (
	"errors"
	"net/http"

	"sistema-provale/internal/usecase"
	"sistema-provale/pkg/response"
)

type DashboardHandler struct {
	dashboardUsecase usecase.DashboardUsecase
}

func NewDashboardHandler(dashboardUsecase usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{
		dashboardUsecase: dashboardUsecase,
	}
}

// Summary handles the landing page of an authenticated user
// @Summary Dashboard summary
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /dashboard [get]
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.dashboardUsecase.Summary(r.Context())
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			response.Unauthorized(w, "User not found")
			return
		}
		response.InternalServerError(w, "Failed to build dashboard")
		return
	}

	response.Success(w, http.StatusOK, "Dashboard retrieved successfully", summary)
}
