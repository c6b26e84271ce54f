package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hrsvr/hr-backend-go/internal/domain/dashboard"
	"github.com/hrsvr/hr-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	Summary(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// Summary implements DashboardHandler.
func (h *dashboardHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.dashboardService.GetSummary(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}
