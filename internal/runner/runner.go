// Package runner sequences one search: load the file, pick the matching
// policy, search, and hand the matches to a sink.
package runner

import (
	"io/fs"
	"log/slog"
	"os"
	"time"

	"github.com/Aman-CERP/minigrep/internal/config"
	"github.com/Aman-CERP/minigrep/internal/errors"
	"github.com/Aman-CERP/minigrep/internal/logging"
	"github.com/Aman-CERP/minigrep/internal/search"
)

// Sink receives the ordered matches of one search.
type Sink interface {
	WriteLines(lines []string) error
}

// ReadFileFunc loads a whole file. os.ReadFile by default.
type ReadFileFunc func(name string) ([]byte, error)

// Runner executes searches against a single sink.
type Runner struct {
	sink     Sink
	logger   *slog.Logger
	readFile ReadFileFunc
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger. Records are dropped by default.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithReadFile replaces the file loader.
func WithReadFile(fn ReadFileFunc) Option {
	return func(r *Runner) {
		if fn != nil {
			r.readFile = fn
		}
	}
}

// New creates a Runner writing matches to sink.
func New(sink Sink, opts ...Option) *Runner {
	r := &Runner{
		sink:     sink,
		logger:   logging.Discard(),
		readFile: readRegularFile,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run loads cfg.Filename, searches it for cfg.Query and writes the matches.
// A file access failure returns before anything is written. Sink errors are
// returned unchanged.
func (r *Runner) Run(cfg config.SearchConfig) error {
	start := time.Now()
	policy := search.PolicyFor(cfg.CaseSensitive)

	r.logger.Debug("search_started",
		slog.String("query", cfg.Query),
		slog.String("file", cfg.Filename),
		slog.String("policy", policy.String()))

	contents, err := r.load(cfg.Filename)
	if err != nil {
		r.logger.Debug("search_failed", slog.Any("error", errors.FormatForLog(err)))
		return err
	}

	matches := search.Find(policy, cfg.Query, contents)

	if err := r.sink.WriteLines(matches); err != nil {
		return err
	}

	r.logger.Debug("search_complete",
		slog.Int("bytes", len(contents)),
		slog.Int("matches", len(matches)),
		slog.Duration("duration", time.Since(start)))

	return nil
}

// load reads the whole file and checks that it is UTF-8 text.
func (r *Runner) load(name string) (string, error) {
	data, err := r.readFile(name)
	if err != nil {
		return "", errors.FileAccessError(name, err)
	}
	if err := errors.CheckText(data); err != nil {
		return "", errors.FileAccessError(name, err)
	}
	return string(data), nil
}

// readRegularFile is os.ReadFile with a clear error for directories,
// which some platforms only report as a generic read failure.
func readRegularFile(name string) ([]byte, error) {
	info, err := os.Stat(name)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, &fs.PathError{Op: "read", Path: name, Err: errors.ErrIsDirectory}
	}
	return os.ReadFile(name)
}
