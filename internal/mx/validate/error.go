// Package validate implements the structural validation contract shared by
// every ISO 20022 message tree node: field cardinality, length bounds,
// pattern matching and composite recursion.
package validate

import "fmt"

// Error codes returned by constraint checks. Codes 1004 and above up to the
// internal range are reserved for future constraint kinds.
const (
	CodeMinLength = 1001 // value shorter than the minimum length
	CodeMaxLength = 1002 // value longer than the maximum length
	CodeRequired  = 1003 // required alternative or field missing (strict mode only)
	CodePattern   = 1005 // value does not match the required pattern

	CodeGeneration = 9997 // sample generation failure
	CodeScenario   = 9998 // scenario lookup or decode failure
	CodeBadPattern = 9999 // constraint carries an uncompilable pattern
)

// ValidationError is a single coded constraint violation. Field and Path are
// optional enrichments; the generated validators inline the field name into
// Message and leave both unset.
type ValidationError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
	Path    string `json:"path,omitempty"`
}

// NewError creates a validation error with field and path unset.
func NewError(code int, message string) *ValidationError {
	return &ValidationError{Code: code, Message: message}
}

// WithField returns the error with the field name set.
func (e *ValidationError) WithField(field string) *ValidationError {
	e.Field = field
	return e
}

// WithPath returns the error with the tree path set.
func (e *ValidationError) WithPath(path string) *ValidationError {
	e.Path = path
	return e
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Message)
	}
	return e.Message
}

// AsValidationError extracts a *ValidationError from an error returned by a
// Validate call. Returns nil when err is not a validation error.
func AsValidationError(err error) *ValidationError {
	if verr, ok := err.(*ValidationError); ok {
		return verr
	}
	return nil
}
