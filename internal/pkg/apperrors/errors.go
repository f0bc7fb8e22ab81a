package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrDuplicateRecord  = errors.New("duplicate record")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
)

// Entity not-found errors. Each unwraps to ErrResourceNotFound.
var (
	ErrOrganizationNotFound   = newNotFound("organization not found")
	ErrCollegeNotFound        = newNotFound("college not found")
	ErrCourseNotFound         = newNotFound("course not found")
	ErrUserNotFound           = newNotFound("user not found")
	ErrOfficerNotFound        = newNotFound("officer not found")
	ErrStudentNotFound        = newNotFound("student not found")
	ErrFeeTypeNotFound        = newNotFound("fee type not found")
	ErrPaymentRequestNotFound = newNotFound("payment request not found")
)

func newNotFound(message string) error {
	return &CustomError{Err: ErrResourceNotFound, Message: message}
}

// NewValidationError wraps ErrValidationFailed with a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewDuplicateError reports a unique constraint other than the natural key.
// The constraint name is kept in Details.
func NewDuplicateError(message, constraint string) *CustomError {
	e := &CustomError{
		Err:     ErrDuplicateRecord,
		Message: message,
	}
	return e.WithDetails(map[string]interface{}{"constraint": constraint})
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}
