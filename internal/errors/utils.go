package errors

import (
	"errors"
)

// Wrap wraps an error with additional context, creating a PuzzleError if the input is not already one
func Wrap(err error, errType ErrorType, code, message string) *PuzzleError {
	if err == nil {
		return nil
	}

	// If it's already a PuzzleError, preserve its location but update the message
	var pe *PuzzleError
	if errors.As(err, &pe) {
		return &PuzzleError{
			Type:        errType,
			Code:        code,
			Message:     message,
			Cause:       pe,
			Context:     pe.Context,
			Day:         pe.Day,
			FilePath:    pe.FilePath,
			Recoverable: pe.Recoverable,
		}
	}

	return &PuzzleError{
		Type:        errType,
		Code:        code,
		Message:     message,
		Cause:       err,
		Recoverable: errType == ErrorTypeValidation,
	}
}

// WrapIO wraps an error as an I/O error
func WrapIO(err error, code, message string) *PuzzleError {
	return Wrap(err, ErrorTypeIO, code, message)
}

// WrapConfig wraps an error as a configuration error
func WrapConfig(err error, code, message string) *PuzzleError {
	return Wrap(err, ErrorTypeConfig, code, message)
}

// WrapSolve wraps a solver failure with the day that produced it
func WrapSolve(err error, day int, message string) *PuzzleError {
	pe := Wrap(err, ErrorTypeSolve, ErrCodeSolveFailed, message)
	if pe != nil {
		pe.Day = day
	}
	return pe
}

// FormatError formats an error for user display
func FormatError(err error) string {
	if err == nil {
		return ""
	}

	return err.Error()
}

// GetErrorContext extracts context information from a PuzzleError
func GetErrorContext(err error) map[string]interface{} {
	var pe *PuzzleError
	if errors.As(err, &pe) {
		context := make(map[string]interface{})
		for k, v := range pe.Context {
			context[k] = v
		}
		if pe.Day > 0 {
			context["day"] = pe.Day
		}
		if pe.FilePath != "" {
			context["file"] = pe.FilePath
		}
		if pe.Line > 0 {
			context["line"] = pe.Line
			if pe.Column > 0 {
				context["column"] = pe.Column
			}
		}
		context["type"] = string(pe.Type)
		context["code"] = pe.Code
		context["recoverable"] = pe.Recoverable
		return context
	}

	return map[string]interface{}{
		"message": err.Error(),
		"type":    "unknown",
	}
}
