package http

import (
	"encoding/json"
	"log/slog"
	"mime"
	"net/http"

	"github.com/hrsvr/hr-backend-go/internal/domain/auth"
	"github.com/hrsvr/hr-backend-go/internal/domain/employee"
	"github.com/hrsvr/hr-backend-go/internal/handler/http/middleware"
	"github.com/hrsvr/hr-backend-go/internal/handler/http/response"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	SignupTest(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService auth.AuthService
}

func NewAuthHandler(authService auth.AuthService) AuthHandler {
	return &AuthHandlerImpl{
		authService: authService,
	}
}

// Login implements AuthHandler. It accepts the OAuth2 password form fields
// username and password, or the same fields as JSON.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
			slog.Error("Login decode error", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			slog.Error("Login form parse error", "error", err)
			response.BadRequest(w, "Invalid form data", nil)
			return
		}
		loginReq.EmployeeID = r.PostFormValue("username")
		loginReq.Password = r.PostFormValue("password")
	}

	tokenResponse, err := a.authService.Login(r.Context(), loginReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, tokenResponse)
}

// SignupTest implements AuthHandler.
func (a *AuthHandlerImpl) SignupTest(w http.ResponseWriter, r *http.Request) {
	var signupReq auth.SignupRequest

	if err := json.NewDecoder(r.Body).Decode(&signupReq); err != nil {
		slog.Error("SignupTest decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := a.authService.SignupTest(r.Context(), signupReq)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, result.Message, result)
}

// Me implements AuthHandler.
func (a *AuthHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	response.Success(w, identity)
}

// callerMayAct reports whether the caller may act on employeeID.
func callerMayAct(r *http.Request, employeeID string) (auth.Identity, error) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		return auth.Identity{}, auth.ErrInvalidToken
	}
	if employeeID != identity.EmployeeID && !identity.IsAdmin {
		return auth.Identity{}, employee.ErrForbidden
	}
	return identity, nil
}
