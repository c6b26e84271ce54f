package http

import (
	"net/http"

	"github.com/hrsvr/hr-backend-go/internal/domain/auth"
	"github.com/hrsvr/hr-backend-go/internal/domain/leave"
	"github.com/hrsvr/hr-backend-go/internal/handler/http/middleware"
	"github.com/hrsvr/hr-backend-go/internal/handler/http/response"
)

type LeaveHandler interface {
	MyStatus(w http.ResponseWriter, r *http.Request)
}

type leaveHandlerImpl struct {
	leaveService leave.LeaveService
}

func NewLeaveHandler(leaveService leave.LeaveService) LeaveHandler {
	return &leaveHandlerImpl{leaveService: leaveService}
}

// MyStatus implements LeaveHandler.
func (h *leaveHandlerImpl) MyStatus(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	status, err := h.leaveService.MyStatus(r.Context(), identity.EmployeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, status)
}
