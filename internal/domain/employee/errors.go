package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmployeeExists   = errors.New("employee id already registered")
	ErrForbidden        = errors.New("not allowed to access another employee's records")
)
