package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound = errors.New("resource not found")
	ErrDatasetEmpty     = errors.New("dataset is empty")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// Data source errors
var (
	ErrSourceUnavailable = errors.New("data source unavailable")
	ErrInvalidSourceKind = errors.New("invalid data source kind")
	ErrMalformedDataset  = errors.New("malformed dataset")
)

// NewSourceError wraps a data-source failure with a message
func NewSourceError(err error, message string) error {
	return &CustomError{
		Err:     errors.Join(ErrSourceUnavailable, err),
		Message: message,
	}
}

// NewMalformedDatasetError reports a dataset that could not be decoded
func NewMalformedDatasetError(err error, message string) error {
	return &CustomError{
		Err:     errors.Join(ErrMalformedDataset, err),
		Message: message,
	}
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" && e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
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
