package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/hrsvr/hr-backend-go/internal/domain/application"
	"github.com/hrsvr/hr-backend-go/internal/handler/http/middleware"
	"github.com/hrsvr/hr-backend-go/internal/handler/http/response"
	"github.com/hrsvr/hr-backend-go/internal/pkg/validator"
)

type ApplicationHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	All(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	Recent(w http.ResponseWriter, r *http.Request)
	LeaveSchedule(w http.ResponseWriter, r *http.Request)
}

type applicationHandlerImpl struct {
	applicationService application.ApplicationService
}

func NewApplicationHandler(applicationService application.ApplicationService) ApplicationHandler {
	return &applicationHandlerImpl{
		applicationService: applicationService,
	}
}

// Submit implements ApplicationHandler.
func (h *applicationHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var req application.SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Submit decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if req.EmployeeID == "" {
		if identity, ok := middleware.IdentityFromContext(r.Context()); ok {
			req.EmployeeID = identity.EmployeeID
		}
	}
	if _, err := callerMayAct(r, req.EmployeeID); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.applicationService.Submit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, result.Message, result)
}

// All implements ApplicationHandler.
func (h *applicationHandlerImpl) All(w http.ResponseWriter, r *http.Request) {
	records, err := h.applicationService.All(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// List implements ApplicationHandler.
func (h *applicationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := application.ListRequest{
		Start: query.Get("start"),
		End:   query.Get("end"),
		Query: query.Get("query"),
	}

	rows, err := h.applicationService.List(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rows)
}

// Get implements ApplicationHandler.
func (h *applicationHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	row, err := h.applicationService.Detail(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, row)
}

// UpdateStatus implements ApplicationHandler.
func (h *applicationHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req application.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateStatus decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.applicationService.UpdateStatus(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, result.Message, result)
}

// Recent implements ApplicationHandler.
func (h *applicationHandlerImpl) Recent(w http.ResponseWriter, r *http.Request) {
	recent, err := h.applicationService.Recent(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, recent)
}

// LeaveSchedule implements ApplicationHandler.
func (h *applicationHandlerImpl) LeaveSchedule(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := application.ScheduleRequest{
		Start: query.Get("start"),
		End:   query.Get("end"),
	}

	var errs validator.ValidationErrors
	if raw := query.Get("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			errs = append(errs, validator.ValidationError{Field: "year", Message: "year must be a number"})
		}
		req.Year = year
	}
	if raw := query.Get("month"); raw != "" {
		month, err := strconv.Atoi(raw)
		if err != nil {
			errs = append(errs, validator.ValidationError{Field: "month", Message: "month must be a number"})
		}
		req.Month = month
	}
	if len(errs) > 0 {
		response.HandleError(w, errs)
		return
	}

	items, err := h.applicationService.LeaveSchedule(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, items)
}
