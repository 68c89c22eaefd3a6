package utils

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrJourneyNotFound    = errors.New("journey not found")
	ErrJourneyDayNotFound = errors.New("journey day not found")
	ErrActivityNotFound   = errors.New("activity not found")
	ErrDatabaseError      = errors.New("database error")
	ErrMatrixUnavailable  = errors.New("distance matrix unavailable")
)
