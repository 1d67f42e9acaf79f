package puzzle

import (
	"errors"
	"fmt"
)

// Sentinel errors for matching with errors.Is.
var (
	// ErrInput matches every *InputError.
	ErrInput = errors.New("input error")

	// ErrValidation matches every *ValidationError.
	ErrValidation = errors.New("validation error")
)

// InputError reports an input source that could not be opened or read, or a
// token that did not match any recognized symbol.
type InputError struct {
	// Source is the file or stream the failure came from, if known.
	Source string

	// LineNum is the 1-based line number, or 0 when not tied to a line.
	LineNum int

	// Token is the offending token for decoding failures.
	Token string

	// Reason is a short human-readable explanation.
	Reason string

	// Err is the underlying cause, if any.
	Err error
}

func (e *InputError) Error() string {
	msg := e.Reason
	if msg == "" {
		msg = "unreadable input"
	}
	if e.Token != "" {
		msg = fmt.Sprintf("%s %q", msg, e.Token)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return location(e.Source, e.LineNum) + msg
}

// Is reports whether target is ErrInput.
func (e *InputError) Is(target error) bool {
	return target == ErrInput
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// ValidationError reports a record that violated a structural precondition,
// such as an odd-length line or an ambiguous intersection.
type ValidationError struct {
	Source  string
	LineNum int
	Reason  string
}

func (e *ValidationError) Error() string {
	return location(e.Source, e.LineNum) + e.Reason
}

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewInputError returns an InputError for an unrecognized token.
func NewInputError(reason, token string) *InputError {
	return &InputError{Reason: reason, Token: token}
}

// NewValidationError returns a ValidationError with a formatted reason.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// AtLine attaches a source position to err when it is an InputError or a
// ValidationError without one. Other errors are wrapped with the position.
func AtLine(err error, source string, lineNum int) error {
	var inErr *InputError
	if errors.As(err, &inErr) && inErr.LineNum == 0 {
		inErr.Source, inErr.LineNum = source, lineNum
		return err
	}
	var valErr *ValidationError
	if errors.As(err, &valErr) && valErr.LineNum == 0 {
		valErr.Source, valErr.LineNum = source, lineNum
		return err
	}
	return fmt.Errorf("%s%w", location(source, lineNum), err)
}

func location(source string, lineNum int) string {
	switch {
	case source != "" && lineNum > 0:
		return fmt.Sprintf("%s:%d: ", source, lineNum)
	case lineNum > 0:
		return fmt.Sprintf("line %d: ", lineNum)
	case source != "":
		return source + ": "
	default:
		return ""
	}
}
