package types

import (
	"errors"
	"net/http"
)

type ErrorCode string

func (e ErrorCode) String() string {
	return string(e)
}

const (
	InternalServiceError ErrorCode = "INTERNAL_SERVICE_ERROR"
	ValidationError      ErrorCode = "VALIDATION_ERROR"
	BadRequest           ErrorCode = "BAD_REQUEST"
	Forbidden            ErrorCode = "FORBIDDEN"

	// Lifecycle error kinds surfaced by the unstake/claim controllers.
	InvalidAmount       ErrorCode = "INVALID_AMOUNT"
	InsufficientBalance ErrorCode = "INSUFFICIENT_BALANCE"
	NotFound            ErrorCode = "NOT_FOUND"
	NotReady            ErrorCode = "NOT_READY"

	// Gateway error kinds, mapped from the chain collaborator.
	NoProvider        ErrorCode = "NO_PROVIDER"
	UserRejected      ErrorCode = "USER_REJECTED"
	WrongNetwork      ErrorCode = "WRONG_NETWORK"
	InsufficientFunds ErrorCode = "INSUFFICIENT_FUNDS"
	Reverted          ErrorCode = "REVERTED"
	GatewayTimeout    ErrorCode = "GATEWAY_TIMEOUT"
)

// Error represents an error with an HTTP status code and an application-specific error code.
type Error struct {
	Err        error
	StatusCode int
	ErrorCode  ErrorCode
}

const UninitializedStatusCode = 0

func (e *Error) Error() string {
	return e.Err.Error()
}

// NewError creates a new Error with the provided status code, error code, and underlying error.
// If the status code is not provided (0), it defaults to http.StatusInternalServerError(500).
// If the error code is empty, it defaults to INTERNAL_SERVICE_ERROR.
func NewError(statusCode int, errorCode ErrorCode, err error) *Error {
	if statusCode == UninitializedStatusCode {
		statusCode = http.StatusInternalServerError
	}
	if errorCode == "" {
		errorCode = InternalServiceError
	}
	return &Error{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Err:        err,
	}
}

func NewErrorWithMsg(statusCode int, errorCode ErrorCode, msg string) *Error {
	return NewError(statusCode, errorCode, errors.New(msg))
}

func NewInternalServiceError(err error) *Error {
	return &Error{
		StatusCode: http.StatusInternalServerError,
		ErrorCode:  InternalServiceError,
		Err:        err,
	}
}
