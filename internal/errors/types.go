package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents different categories of errors.
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeIO         ErrorType = "io"
	ErrorTypeParse      ErrorType = "parse"
	ErrorTypeConfig     ErrorType = "config"
	ErrorTypeSolve      ErrorType = "solve"
	ErrorTypeInternal   ErrorType = "internal"
)

// PuzzleError is a structured error type with context.
type PuzzleError struct {
	Type        ErrorType
	Code        string
	Message     string
	Cause       error
	Context     map[string]interface{}
	Day         int
	FilePath    string
	Line        int
	Column      int
	Recoverable bool
}

// Error implements the error interface.
func (e *PuzzleError) Error() string {
	var parts []string

	if e.Code != "" {
		parts = append(parts, fmt.Sprintf("[%s]", e.Code))
	}

	if e.Day > 0 {
		parts = append(parts, fmt.Sprintf("day:%d", e.Day))
	}

	if e.FilePath != "" {
		location := e.FilePath
		if e.Line > 0 {
			location += fmt.Sprintf(":%d", e.Line)
			if e.Column > 0 {
				location += fmt.Sprintf(":%d", e.Column)
			}
		}
		parts = append(parts, location)
	} else if e.Line > 0 {
		location := fmt.Sprintf("line %d", e.Line)
		if e.Column > 0 {
			location += fmt.Sprintf(" col %d", e.Column)
		}
		parts = append(parts, location)
	}

	parts = append(parts, e.Message)

	result := strings.Join(parts, " ")

	if e.Cause != nil {
		result += fmt.Sprintf(": %v", e.Cause)
	}

	return result
}

// Unwrap returns the underlying cause error.
func (e *PuzzleError) Unwrap() error {
	return e.Cause
}

// Is implements error comparison.
func (e *PuzzleError) Is(target error) bool {
	var t *PuzzleError
	if errors.As(target, &t) {
		return e.Type == t.Type && e.Code == t.Code
	}

	return false
}

// WithContext adds context information to the error.
func (e *PuzzleError) WithContext(key string, value interface{}) *PuzzleError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value

	return e
}

// WithLocation adds location information. Line and column are 1-based;
// zero means unknown.
func (e *PuzzleError) WithLocation(filePath string, line, column int) *PuzzleError {
	e.FilePath = filePath
	e.Line = line
	e.Column = column

	return e
}

// WithDay attaches the puzzle day.
func (e *PuzzleError) WithDay(day int) *PuzzleError {
	e.Day = day

	return e
}

// Error creation functions

// NewValidationError creates a validation error.
func NewValidationError(code, message string) *PuzzleError {
	return &PuzzleError{
		Type:        ErrorTypeValidation,
		Code:        code,
		Message:     message,
		Recoverable: true,
	}
}

// NewParseError creates a parse error for malformed puzzle input.
func NewParseError(code, message string, cause error) *PuzzleError {
	return &PuzzleError{
		Type:    ErrorTypeParse,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewIOError creates an I/O error.
func NewIOError(code, message string, cause error) *PuzzleError {
	return &PuzzleError{
		Type:    ErrorTypeIO,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewConfigError creates a configuration error.
func NewConfigError(code, message string) *PuzzleError {
	return &PuzzleError{
		Type:    ErrorTypeConfig,
		Code:    code,
		Message: message,
	}
}

// NewSolveError creates an error for a failed solve.
func NewSolveError(code, message string, cause error) *PuzzleError {
	return &PuzzleError{
		Type:    ErrorTypeSolve,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewInternalError creates an internal error.
func NewInternalError(code, message string, cause error) *PuzzleError {
	return &PuzzleError{
		Type:    ErrorTypeInternal,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// IsRecoverable checks if an error is recoverable.
func IsRecoverable(err error) bool {
	var pe *PuzzleError
	if errors.As(err, &pe) {
		return pe.Recoverable
	}

	return false
}

// IsParseError checks if an error came from malformed input.
func IsParseError(err error) bool {
	return hasType(err, ErrorTypeParse)
}

// IsIOError checks if an error is I/O related.
func IsIOError(err error) bool {
	return hasType(err, ErrorTypeIO)
}

// HasCode reports whether any PuzzleError in the chain carries code.
func HasCode(err error, code string) bool {
	for err != nil {
		var pe *PuzzleError
		if !errors.As(err, &pe) {
			return false
		}
		if pe.Code == code {
			return true
		}
		err = pe.Cause
	}

	return false
}

func hasType(err error, t ErrorType) bool {
	for err != nil {
		var pe *PuzzleError
		if !errors.As(err, &pe) {
			return false
		}
		if pe.Type == t {
			return true
		}
		err = pe.Cause
	}

	return false
}

// Common error codes.
const (
	ErrCodeInputRead     = "ERR_INPUT_READ"
	ErrCodeInvalidNumber = "ERR_INVALID_NUMBER"
	ErrCodeMalformedLine = "ERR_MALFORMED_LINE"
	ErrCodeRaggedGrid    = "ERR_RAGGED_GRID"
	ErrCodeUnknownDay    = "ERR_UNKNOWN_DAY"
	ErrCodeInvalidFormat = "ERR_INVALID_FORMAT"
	ErrCodeInvalidPart   = "ERR_INVALID_PART"
	ErrCodeConfigInvalid = "ERR_CONFIG_INVALID"
	ErrCodeSolveFailed   = "ERR_SOLVE_FAILED"
	ErrCodeInternalError = "ERR_INTERNAL"
)

// Helper functions for common errors

// ErrUnknownDay creates an error for a day with no registered solver.
func ErrUnknownDay(day int) *PuzzleError {
	return NewValidationError(
		ErrCodeUnknownDay,
		fmt.Sprintf("%d is not a valid day value", day),
	).WithContext("day", day)
}

// ErrInvalidNumber creates a parse error for a numeric token that does not fit.
func ErrInvalidNumber(text string, cause error) *PuzzleError {
	return NewParseError(ErrCodeInvalidNumber, fmt.Sprintf("invalid number %q", text), cause).
		WithContext("text", text)
}

// ErrMalformedLine creates a parse error for a line missing expected structure.
func ErrMalformedLine(line int, message string) *PuzzleError {
	return NewParseError(ErrCodeMalformedLine, message, nil).WithLocation("", line, 0)
}
