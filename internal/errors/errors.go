package errors

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/julianstephens/habitus/internal/logger"
)

// Sentinel kinds. Match them with errors.Is.
var (
	ErrNotFound   = stderrors.New("not found")
	ErrValidation = stderrors.New("validation failed")
	ErrConflict   = stderrors.New("conflict")
)

// AppError attaches a kind and a user-facing message to an optional cause.
type AppError struct {
	Kind error
	Msg  string
	Err  error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *AppError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}

// NotFound returns an ErrNotFound error.
func NotFound(format string, args ...interface{}) error {
	return &AppError{Kind: ErrNotFound, Msg: fmt.Sprintf(format, args...)}
}

// ValidationFailed returns an ErrValidation error.
func ValidationFailed(format string, args ...interface{}) error {
	return &AppError{Kind: ErrValidation, Msg: fmt.Sprintf(format, args...)}
}

// Conflict returns an ErrConflict error.
func Conflict(format string, args ...interface{}) error {
	return &AppError{Kind: ErrConflict, Msg: fmt.Sprintf(format, args...)}
}

// Wrap attaches kind and msg to err. It returns nil when err is nil.
func Wrap(kind error, err error, msg string) error {
	if err == nil {
		return nil
	}
	return &AppError{Kind: kind, Msg: msg, Err: err}
}

// Is reports whether any error in err's tree matches target.
func Is(err, target error) bool { return stderrors.Is(err, target) }

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %v", err)
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return fmt.Sprintf("Error: "+format, args...)
}

// Fatal logs an error and exits the program with exit code 1
func Fatal(err error) {
	if err != nil {
		logger.Error("Command execution failed", "error", err)
		fmt.Fprintf(os.Stderr, "%s\n", Format(err))
		os.Exit(1)
	}
}

// Fatalf logs and formats an error message, then exits the program with exit code 1
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("Command execution failed", "error", msg)
	fmt.Fprintf(os.Stderr, "%s\n", Formatf(format, args...))
	os.Exit(1)
}
