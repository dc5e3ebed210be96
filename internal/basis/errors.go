package basis

import (
	"errors"
	"fmt"
)

// Error represents a failure while resolving, assembling, or transforming
// basis set data.
//
// Errors fall into three categories:
//   - Not found: a name, version, element, or record the source data
//     does not define
//   - Structural violation: source data or a computed result breaks a
//     model invariant
//   - Unsupported transform: a transform applied to data outside its
//     domain (e.g. splitting a combined-AM shell row-by-row)
//
// Error includes structured fields so callers can report which basis set,
// element, or record file was involved without parsing the message.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Name identifies the affected basis set, if known.
	Name string

	// Element is the atomic number key of the affected element, if any.
	Element string

	// Path is the relative path of the record involved, if any.
	Path string
}

// ErrorCode categorizes basis data errors.
type ErrorCode string

const (
	// ErrCodeNotFound indicates a requested name, version, element, or
	// record does not exist in the source data.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"

	// ErrCodeStructuralViolation indicates data that breaks a model
	// invariant, either in a source record or in a computed result.
	ErrCodeStructuralViolation ErrorCode = "STRUCTURAL_VIOLATION"

	// ErrCodeUnsupportedTransform indicates a transform was applied to
	// data outside the transform's domain.
	ErrCodeUnsupportedTransform ErrorCode = "UNSUPPORTED_TRANSFORM"
)

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.Name != "" && e.Element != "":
		return fmt.Sprintf("%s: %s (basis=%s, element=%s)", e.Code, e.Message, e.Name, e.Element)
	case e.Name != "":
		return fmt.Sprintf("%s: %s (basis=%s)", e.Code, e.Message, e.Name)
	case e.Path != "":
		return fmt.Sprintf("%s: %s (record=%s)", e.Code, e.Message, e.Path)
	case e.Element != "":
		return fmt.Sprintf("%s: %s (element=%s)", e.Code, e.Message, e.Element)
	default:
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
}

// IsNotFound returns true if the error is a not-found error.
// Uses errors.As to handle wrapped errors.
func IsNotFound(err error) bool {
	var be *Error
	if errors.As(err, &be) {
		return be.Code == ErrCodeNotFound
	}
	return false
}

// IsStructuralViolation returns true if the error is a structural
// violation. Uses errors.As to handle wrapped errors.
func IsStructuralViolation(err error) bool {
	var be *Error
	if errors.As(err, &be) {
		return be.Code == ErrCodeStructuralViolation
	}
	return false
}

// IsUnsupportedTransform returns true if the error reports a transform
// applied outside its domain. Uses errors.As to handle wrapped errors.
func IsUnsupportedTransform(err error) bool {
	var be *Error
	if errors.As(err, &be) {
		return be.Code == ErrCodeUnsupportedTransform
	}
	return false
}

// NewNotFound creates a not-found Error with a formatted message.
func NewNotFound(format string, args ...any) *Error {
	return &Error{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf(format, args...),
	}
}

// NewStructuralViolation creates a structural-violation Error with a
// formatted message.
func NewStructuralViolation(format string, args ...any) *Error {
	return &Error{
		Code:    ErrCodeStructuralViolation,
		Message: fmt.Sprintf(format, args...),
	}
}

// NewUnsupportedTransform creates an unsupported-transform Error with a
// formatted message.
func NewUnsupportedTransform(format string, args ...any) *Error {
	return &Error{
		Code:    ErrCodeUnsupportedTransform,
		Message: fmt.Sprintf(format, args...),
	}
}

// InElement returns a copy of the error annotated with an element key.
// The original error is not modified.
func (e *Error) InElement(element string) *Error {
	c := *e
	c.Element = element
	return &c
}

// InBasis returns a copy of the error annotated with a basis set name.
// The original error is not modified.
func (e *Error) InBasis(name string) *Error {
	c := *e
	c.Name = name
	return &c
}

// AtPath returns a copy of the error annotated with a record path.
// The original error is not modified.
func (e *Error) AtPath(path string) *Error {
	c := *e
	c.Path = path
	return &c
}
