package service

import "errors"

type ErrorCode string

const (
	ErrorCodeValidation ErrorCode = "validation"
	ErrorCodeNotFound   ErrorCode = "not_found"
	ErrorCodeInternal   ErrorCode = "internal"
)

// ServiceError carries a message that is safe to show to the client.
type ServiceError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

func NewServiceError(code ErrorCode, message string) error {
	return &ServiceError{Code: code, Message: message}
}

func NewValidationError(message string) error {
	return NewServiceError(ErrorCodeValidation, message)
}

func NewNotFoundError(message string) error {
	return NewServiceError(ErrorCodeNotFound, message)
}

// NewInternalError keeps cause for logging while the client only sees message.
func NewInternalError(message string, cause error) error {
	return &ServiceError{Code: ErrorCodeInternal, Message: message, Err: cause}
}

func AsServiceError(err error) (*ServiceError, bool) {
	var serviceErr *ServiceError
	if errors.As(err, &serviceErr) {
		return serviceErr, true
	}
	return nil, false
}

// IsNotFound reports whether err is a not_found ServiceError.
func IsNotFound(err error) bool {
	serviceErr, ok := AsServiceError(err)
	return ok && serviceErr.Code == ErrorCodeNotFound
}
