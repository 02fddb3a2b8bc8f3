package apperrors

import "errors"

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrNotFound       = errors.New("not found")
	ErrAuthRequired   = errors.New("auth required")
	ErrUnsavedChanges = errors.New("unsaved changes")
)
