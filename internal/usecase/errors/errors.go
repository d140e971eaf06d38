package errors

import "errors"

// Common errors
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("resource not found")
	ErrInternalError = errors.New("internal server error")
)

// External AI service errors
var (
	ErrServiceUnavailable   = errors.New("ai service unavailable")
	ErrEmptyResult          = errors.New("ai service returned an empty result")
	ErrMalformedActionItems = errors.New("action items payload is not a list of strings")
)
