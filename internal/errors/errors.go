package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"unicode/utf8"
)

// Error is the structured error type for minigrep.
// It carries enough context for logging and for the message shown to the user.
type Error struct {
	// Code is the unique error code (e.g., "ERR_201_FILE_NOT_FOUND").
	Code string

	// Message is the human-readable error message.
	Message string

	// Category is derived from Code.
	Category Category

	// Severity is derived from Code.
	Severity Severity

	// Details contains additional context as key-value pairs.
	Details map[string]string

	// Cause is the underlying error that caused this error.
	Cause error

	// Suggestion is an actionable hint for the user.
	Suggestion string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil && e.Cause.Error() != e.Message {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for error chain support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches another *Error by code, so errors.Is works against sentinel values.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// WithDetail adds a key-value detail to the error.
func (e *Error) WithDetail(key, value string) *Error {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// WithSuggestion adds an actionable suggestion for the user.
func (e *Error) WithSuggestion(suggestion string) *Error {
	e.Suggestion = suggestion
	return e
}

// New creates a new Error with the given code and message.
// Category and severity are derived from the code.
func New(code, message string, cause error) *Error {
	return &Error{
		Code:     code,
		Message:  message,
		Category: categoryFromCode(code),
		Severity: severityFromCode(code),
		Cause:    cause,
	}
}

// Wrap creates an Error from an existing error, reusing its message.
func Wrap(code string, err error) *Error {
	if err == nil {
		return nil
	}
	return New(code, err.Error(), err)
}

// ConfigurationError reports a missing or unparseable input.
func ConfigurationError(code, message string) *Error {
	return New(code, message, nil)
}

var (
	// ErrNotText is the cause attached when a file is not valid UTF-8.
	ErrNotText = errors.New("file is not valid UTF-8 text")
	// ErrIsDirectory is the cause attached when the path names a directory.
	ErrIsDirectory = errors.New("is a directory")
)

// FileAccessError wraps a failure to load path, classifying the cause.
func FileAccessError(path string, cause error) *Error {
	var code, msg, hint string
	switch {
	case errors.Is(cause, fs.ErrNotExist):
		code, msg = ErrCodeFileNotFound, "file not found"
		hint = "check the file path"
	case errors.Is(cause, fs.ErrPermission):
		code, msg = ErrCodeFilePermission, "permission denied"
		hint = "check the file permissions"
	case errors.Is(cause, ErrNotText):
		code, msg = ErrCodeNotText, "file is not valid text"
	case errors.Is(cause, ErrIsDirectory):
		code, msg = ErrCodeNotAFile, "not a regular file"
	default:
		code, msg = ErrCodeFileRead, "failed to read file"
	}

	e := New(code, fmt.Sprintf("%s: %s", msg, path), cause).WithDetail("path", path)
	if hint != "" {
		e.WithSuggestion(hint)
	}
	return e
}

// CheckText returns ErrNotText unless data is valid UTF-8.
func CheckText(data []byte) error {
	if !utf8.Valid(data) {
		return ErrNotText
	}
	return nil
}

// OutputError wraps a failure to write matches.
func OutputError(cause error) *Error {
	return New(ErrCodeOutputFailed, "failed to write output", cause)
}

// IsConfiguration reports whether err is a configuration error.
func IsConfiguration(err error) bool {
	return GetCategory(err) == CategoryConfig
}

// IsFileAccess reports whether err is a file access error.
func IsFileAccess(err error) bool {
	return GetCategory(err) == CategoryFileAccess
}

// IsFatal checks if an error has fatal severity.
func IsFatal(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Severity == SeverityFatal
	}
	return false
}

// GetCode extracts the error code from err.
// Returns empty string if err does not wrap an *Error.
func GetCode(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// GetCategory extracts the category from err.
// Returns empty string if err does not wrap an *Error.
func GetCategory(err error) Category {
	var e *Error
	if errors.As(err, &e) {
		return e.Category
	}
	return ""
}
