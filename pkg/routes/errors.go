package routes

import "errors"

var (
	ErrInvalidName    = errors.New("invalid route name")
	ErrNilHandler     = errors.New("nil handler")
	ErrDuplicateRoute = errors.New("duplicate route")
)
