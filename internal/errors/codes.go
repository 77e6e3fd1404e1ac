// Package errors provides the structured error taxonomy for minigrep.
//
// Error codes follow the pattern ERR_XXX_DESCRIPTION where:
//   - 1XX: Configuration errors (bad arguments, bad environment)
//   - 2XX: File access errors
//   - 3XX: Output errors
//   - 5XX: Internal errors
package errors

// Category defines error categories for classification.
type Category string

const (
	// CategoryConfig indicates a missing or unparseable input, detected before a search runs.
	CategoryConfig Category = "CONFIG"
	// CategoryFileAccess indicates the target file could not be loaded as text.
	CategoryFileAccess Category = "FILE_ACCESS"
	// CategoryOutput indicates writing matches failed.
	CategoryOutput Category = "OUTPUT"
	// CategoryInternal indicates unexpected internal errors.
	CategoryInternal Category = "INTERNAL"
)

// Severity defines error severity levels.
type Severity string

const (
	// SeverityFatal ends the invocation.
	SeverityFatal Severity = "FATAL"
	// SeverityError indicates the operation failed.
	SeverityError Severity = "ERROR"
)

// Error codes organized by category.
const (
	// Configuration errors (100-199)
	ErrCodeMissingArgument = "ERR_101_MISSING_ARGUMENT"
	ErrCodeInvalidArgument = "ERR_102_INVALID_ARGUMENT"
	ErrCodeInvalidEnv      = "ERR_103_INVALID_ENV"

	// File access errors (200-299)
	ErrCodeFileNotFound   = "ERR_201_FILE_NOT_FOUND"
	ErrCodeFilePermission = "ERR_202_FILE_PERMISSION"
	ErrCodeNotAFile       = "ERR_203_NOT_A_FILE"
	ErrCodeNotText        = "ERR_204_NOT_TEXT"
	ErrCodeFileRead       = "ERR_205_FILE_READ"

	// Output errors (300-399)
	ErrCodeOutputFailed = "ERR_301_OUTPUT_FAILED"

	// Internal errors (500-599)
	ErrCodeInternal = "ERR_501_INTERNAL"
)

// categoryFromCode extracts category from error code.
func categoryFromCode(code string) Category {
	if len(code) < 7 {
		return CategoryInternal
	}

	// e.g. "201" from "ERR_201_FILE_NOT_FOUND"
	switch code[4] {
	case '1':
		return CategoryConfig
	case '2':
		return CategoryFileAccess
	case '3':
		return CategoryOutput
	default:
		return CategoryInternal
	}
}

// severityFromCode determines severity based on error code.
// Nothing is retried in a one-shot CLI, so configuration and file access
// failures always end the invocation.
func severityFromCode(code string) Severity {
	switch categoryFromCode(code) {
	case CategoryConfig, CategoryFileAccess:
		return SeverityFatal
	default:
		return SeverityError
	}
}
