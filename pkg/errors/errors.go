package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code
type ErrorCode int

// AppError represents an application error
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Common error codes
const (
	ErrNotFound ErrorCode = iota + 1000
	ErrValidation
	ErrReferential
	ErrConflict
	ErrUnauthorized
	ErrInvalidToken
	ErrMissingToken
	ErrInternal
)

// Error constructors
func NewNotFound(resource string, err error) *AppError {
	return &AppError{
		Code:    ErrNotFound,
		Message: fmt.Sprintf("%s not found", resource),
		Err:     err,
	}
}

func NewValidation(message string, err error) *AppError {
	return &AppError{
		Code:    ErrValidation,
		Message: message,
		Err:     err,
	}
}

// NewReferential reports that a referenced entity (a foreign key target)
// does not exist, as opposed to the target row itself being absent.
func NewReferential(resource string, err error) *AppError {
	return &AppError{
		Code:    ErrReferential,
		Message: fmt.Sprintf("referenced %s not found", resource),
		Err:     err,
	}
}

func NewConflict(message string, err error) *AppError {
	return &AppError{
		Code:    ErrConflict,
		Message: message,
		Err:     err,
	}
}

func NewUnauthorized(message string, err error) *AppError {
	return &AppError{
		Code:    ErrUnauthorized,
		Message: message,
		Err:     err,
	}
}

func NewInvalidToken(err error) *AppError {
	return &AppError{
		Code:    ErrInvalidToken,
		Message: "invalid or expired token",
		Err:     err,
	}
}

func NewMissingToken() *AppError {
	return &AppError{
		Code:    ErrMissingToken,
		Message: "no authorization token provided",
	}
}

func NewInternal(err error) *AppError {
	return &AppError{
		Code:    ErrInternal,
		Message: "internal server error",
		Err:     err,
	}
}

// Code extracts the error code from err, or ErrInternal for untyped errors.
func Code(err error) ErrorCode {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ErrInternal
}

func IsNotFound(err error) bool     { return Code(err) == ErrNotFound }
func IsValidation(err error) bool   { return Code(err) == ErrValidation }
func IsReferential(err error) bool  { return Code(err) == ErrReferential }
func IsConflict(err error) bool     { return Code(err) == ErrConflict }
func IsUnauthorized(err error) bool { return Code(err) == ErrUnauthorized }
func IsInvalidToken(err error) bool { return Code(err) == ErrInvalidToken }
func IsMissingToken(err error) bool { return Code(err) == ErrMissingToken }
