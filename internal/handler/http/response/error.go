package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/hrsvr/hr-backend-go/internal/domain/application"
	"github.com/hrsvr/hr-backend-go/internal/domain/attendance"
	"github.com/hrsvr/hr-backend-go/internal/domain/auth"
	"github.com/hrsvr/hr-backend-go/internal/domain/employee"
	"github.com/hrsvr/hr-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "사번 또는 비밀번호가 올바르지 않습니다.")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "인증 정보가 유효하지 않습니다.")
	case errors.Is(err, auth.ErrAdminPrivilegeNeeded):
		Forbidden(w, "관리자 권한이 필요합니다.")

	// Employee domain errors
	case errors.Is(err, employee.ErrForbidden):
		Forbidden(w, "다른 직원의 정보에 접근할 수 없습니다.")
	case errors.Is(err, employee.ErrEmployeeExists):
		Conflict(w, "이미 존재하는 사번입니다.")
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "직원을 찾을 수 없습니다.")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, "이미 오늘 출근 처리가 완료되었습니다.")
	case errors.Is(err, attendance.ErrAlreadyClockedOut):
		Conflict(w, "이미 오늘 퇴근 처리가 완료되었습니다.")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "출근 기록이 없습니다.")

	// Application domain errors
	case errors.Is(err, application.ErrApplicationNotFound):
		NotFound(w, "해당 신청 내역을 찾을 수 없습니다.")

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "서버 내부 오류가 발생했습니다.")
	}
}
