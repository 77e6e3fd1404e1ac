// Package config resolves command-line and environment input into the
// immutable SearchConfig consumed by the runner.
package config

import (
	"fmt"
	"strings"

	"github.com/Aman-CERP/minigrep/internal/errors"
)

// Environment variables read at the command-line boundary.
const (
	// EnvCaseInsensitive switches to case-insensitive matching when set to any value.
	EnvCaseInsensitive = "CASE_INSENSITIVE"
	// EnvIgnoreCase is the namespaced boolean form of EnvCaseInsensitive.
	EnvIgnoreCase = "MINIGREP_IGNORE_CASE"
	// EnvLogLevel sets the log level (debug, info, warn, error).
	EnvLogLevel = "MINIGREP_LOG_LEVEL"
)

// DefaultLogLevel is used when EnvLogLevel is unset.
const DefaultLogLevel = "warn"

// LookupFunc reports the value of an environment variable and whether it is set.
// Production callers pass os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// SearchConfig is the resolved input for a single search.
// Matching is case-sensitive unless relaxed by flag or environment.
type SearchConfig struct {
	Query         string
	Filename      string
	CaseSensitive bool
}

// New builds a SearchConfig from positional args (query, file), the
// ignore-case flag, and the environment. An empty query is accepted.
func New(args []string, ignoreCase bool, lookup LookupFunc) (SearchConfig, error) {
	if len(args) < 2 {
		return SearchConfig{}, errors.ConfigurationError(errors.ErrCodeMissingArgument, "not enough arguments").
			WithSuggestion("usage: minigrep <query> <file>")
	}
	if len(args) > 2 {
		return SearchConfig{}, errors.ConfigurationError(errors.ErrCodeInvalidArgument,
			fmt.Sprintf("too many arguments: expected 2, got %d", len(args))).
			WithSuggestion("quote queries that contain spaces")
	}

	insensitive, err := IgnoreCaseFromEnv(lookup)
	if err != nil {
		return SearchConfig{}, err
	}

	return SearchConfig{
		Query:         args[0],
		Filename:      args[1],
		CaseSensitive: !(ignoreCase || insensitive),
	}, nil
}

// IgnoreCaseFromEnv reports whether the environment asks for case-insensitive
// matching. CASE_INSENSITIVE counts when present at all, even empty;
// MINIGREP_IGNORE_CASE must hold a boolean.
func IgnoreCaseFromEnv(lookup LookupFunc) (bool, error) {
	if lookup == nil {
		return false, nil
	}
	if _, ok := lookup(EnvCaseInsensitive); ok {
		return true, nil
	}

	v, ok := lookup(EnvIgnoreCase)
	if !ok || v == "" {
		return false, nil
	}
	b, valid := parseBool(v)
	if !valid {
		return false, errors.ConfigurationError(errors.ErrCodeInvalidEnv,
			fmt.Sprintf("%s must be a boolean, got %q", EnvIgnoreCase, v))
	}
	return b, nil
}

// IgnoreCaseNote returns a note for the user when -i overrides an explicit
// MINIGREP_IGNORE_CASE=false, or "" when there is nothing to say.
func IgnoreCaseNote(ignoreCase bool, lookup LookupFunc) string {
	if !ignoreCase || lookup == nil {
		return ""
	}
	v, ok := lookup(EnvIgnoreCase)
	if !ok {
		return ""
	}
	if b, valid := parseBool(v); valid && !b {
		return fmt.Sprintf("ignoring %s=%s because -i was given", EnvIgnoreCase, v)
	}
	return ""
}

// LogLevel returns the log level requested by the environment, or
// DefaultLogLevel when unset.
func LogLevel(lookup LookupFunc) (string, error) {
	if lookup == nil {
		return DefaultLogLevel, nil
	}
	v, ok := lookup(EnvLogLevel)
	if !ok || v == "" {
		return DefaultLogLevel, nil
	}

	level := strings.ToLower(strings.TrimSpace(v))
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "warning": true, "error": true}
	if !validLevels[level] {
		return "", errors.ConfigurationError(errors.ErrCodeInvalidEnv,
			fmt.Sprintf("%s must be 'debug', 'info', 'warn', or 'error', got %s", EnvLogLevel, v))
	}
	return level, nil
}

// parseBool accepts the spellings people put in shell profiles.
func parseBool(s string) (value, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true, true
	case "0", "false", "no", "off":
		return false, true
	default:
		return false, false
	}
}
