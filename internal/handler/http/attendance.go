package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hrsvr/hr-backend-go/internal/domain/attendance"
	"github.com/hrsvr/hr-backend-go/internal/handler/http/middleware"
	"github.com/hrsvr/hr-backend-go/internal/handler/http/response"
	"github.com/hrsvr/hr-backend-go/internal/pkg/spreadsheet"
	"github.com/hrsvr/hr-backend-go/internal/pkg/validator"
)

type AttendanceHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	Weekly(w http.ResponseWriter, r *http.Request)
	Monthly(w http.ResponseWriter, r *http.Request)
	MonthlyExport(w http.ResponseWriter, r *http.Request)
	All(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
	loc               *time.Location
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService, loc *time.Location) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
		loc:               loc,
	}
}

// decodeClockRequest reads the optional body and fills in the caller's id
// when the body names none.
func decodeClockRequest(r *http.Request) (attendance.ClockRequest, error) {
	var req attendance.ClockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		slog.Error("Clock request decode error", "error", err)
		return req, validator.Single("body", "invalid request format")
	}

	if req.EmployeeID == "" {
		if identity, ok := middleware.IdentityFromContext(r.Context()); ok {
			req.EmployeeID = identity.EmployeeID
		}
	}
	if _, err := callerMayAct(r, req.EmployeeID); err != nil {
		return req, err
	}
	return req, nil
}

// ClockIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	req, err := decodeClockRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.ClockIn(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, result.Message, result)
}

// ClockOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	req, err := decodeClockRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.ClockOut(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, result.Message, result)
}

// Weekly implements AttendanceHandler.
func (h *attendanceHandlerImpl) Weekly(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")

	var reference time.Time
	if date := r.URL.Query().Get("date"); date != "" {
		parsed, ok := validator.ParseDateIn(date, h.loc)
		if !ok {
			response.HandleError(w, validator.Single("date", "date must be in YYYY-MM-DD format"))
			return
		}
		reference = parsed
	}

	week, err := h.attendanceService.GetWeekly(r.Context(), employeeID, reference)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, week)
}

func parseMonthlyRequest(r *http.Request) (attendance.MonthlyRequest, error) {
	query := r.URL.Query()
	req := attendance.MonthlyRequest{EmployeeID: chi.URLParam(r, "employeeID")}

	var errs validator.ValidationErrors
	for _, p := range []struct {
		name string
		dest *int
	}{
		{"year", &req.Year},
		{"month", &req.Month},
	} {
		value, err := strconv.Atoi(query.Get(p.name))
		if err != nil {
			errs = append(errs, validator.ValidationError{Field: p.name, Message: p.name + " must be a number"})
			continue
		}
		*p.dest = value
	}
	if len(errs) > 0 {
		return req, errs
	}
	return req, nil
}

// Monthly implements AttendanceHandler.
func (h *attendanceHandlerImpl) Monthly(w http.ResponseWriter, r *http.Request) {
	req, err := parseMonthlyRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	report, err := h.attendanceService.GetMonthly(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}

var monthlyExportHeader = []string{"날짜", "요일", "출근시간", "출근장소", "퇴근시간", "퇴근장소", "근무시간", "상태"}

// MonthlyExport implements AttendanceHandler.
func (h *attendanceHandlerImpl) MonthlyExport(w http.ResponseWriter, r *http.Request) {
	req, err := parseMonthlyRequest(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	report, err := h.attendanceService.GetMonthly(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	rows := make([][]any, 0, len(report.Records))
	for _, rec := range report.Records {
		rows = append(rows, []any{
			rec.Date, rec.DayOfWeek,
			rec.ClockInTime, rec.ClockInLocation,
			rec.ClockOutTime, rec.ClockOutLocation,
			rec.TotalWorkTime, rec.Status,
		})
	}

	var buf bytes.Buffer
	err = spreadsheet.Write(&buf, spreadsheet.Table{
		Sheet:  fmt.Sprintf("%04d-%02d", req.Year, req.Month),
		Header: monthlyExportHeader,
		Rows:   rows,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filename := fmt.Sprintf("attendance_%s_%04d-%02d.xlsx", req.EmployeeID, req.Year, req.Month)
	w.Header().Set("Content-Type", spreadsheet.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Monthly export write error", "error", err)
	}
}

// All implements AttendanceHandler.
func (h *attendanceHandlerImpl) All(w http.ResponseWriter, r *http.Request) {
	var date time.Time
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, ok := validator.ParseDateIn(raw, h.loc)
		if !ok {
			response.HandleError(w, validator.Single("date", "date must be in YYYY-MM-DD format"))
			return
		}
		date = parsed
	}

	rows, err := h.attendanceService.ListByDate(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rows)
}
