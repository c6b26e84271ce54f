package auth

import "errors"

var (
	ErrInvalidCredentials   = errors.New("invalid employee id or password")
	ErrInvalidToken         = errors.New("invalid or expired token")
	ErrAdminPrivilegeNeeded = errors.New("admin privilege required")
)
