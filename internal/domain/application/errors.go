package application

import "errors"

var (
	ErrApplicationNotFound = errors.New("application not found")
)
