package auth

import "github.com/hrsvr/hr-backend-go/internal/pkg/validator"

type LoginRequest struct {
	EmployeeID string `json:"username"`
	Password   string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username is required",
		})
	}
	if r.Password == "" {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SignupRequest struct {
	EmployeeID string `json:"employee_id"`
	Password   string `json:"password"`
	Name       string `json:"name"`
}

func (r *SignupRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmployeeID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id must be 1-50 characters of letters, digits, '.', '_' or '-'",
		})
	}
	if len(r.Password) < 4 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 4 characters long",
		})
	}
	if len(r.Password) > 72 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must not exceed 72 bytes",
		})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresAt   int64  `json:"expires_at"`
}

type SignupResponse struct {
	Message    string `json:"message"`
	EmployeeID string `json:"employee_id"`
}

// Identity is the authenticated principal resolved from a token.
type Identity struct {
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	IsAdmin    bool   `json:"is_admin"`
}
