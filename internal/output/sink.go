package output

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Aman-CERP/minigrep/internal/errors"
	"github.com/Aman-CERP/minigrep/internal/runner"
)

// Format selects how matches are written.
type Format string

const (
	// FormatText writes one match per line.
	FormatText Format = "text"
	// FormatJSON writes the matches as a JSON array of strings.
	FormatJSON Format = "json"
	// FormatYAML writes the matches as a YAML sequence.
	FormatYAML Format = "yaml"
)

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", errors.ConfigurationError(errors.ErrCodeInvalidArgument,
			fmt.Sprintf("unknown output format %q", s)).
			WithSuggestion("use one of: text, json, yaml")
	}
}

// NewSink returns the runner.Sink for format writing to w.
func NewSink(format Format, w io.Writer) (runner.Sink, error) {
	switch format {
	case FormatText, "":
		return &TextSink{w: w}, nil
	case FormatJSON:
		return &JSONSink{w: w}, nil
	case FormatYAML:
		return &YAMLSink{w: w}, nil
	default:
		return nil, errors.ConfigurationError(errors.ErrCodeInvalidArgument,
			fmt.Sprintf("unknown output format %q", string(format)))
	}
}

var (
	_ runner.Sink = (*TextSink)(nil)
	_ runner.Sink = (*JSONSink)(nil)
	_ runner.Sink = (*YAMLSink)(nil)
)

// TextSink writes each line followed by a newline, in order.
type TextSink struct {
	w io.Writer
}

// NewTextSink creates a TextSink writing to w.
func NewTextSink(w io.Writer) *TextSink {
	return &TextSink{w: w}
}

// WriteLines implements runner.Sink.
func (s *TextSink) WriteLines(lines []string) error {
	bw := bufio.NewWriter(s.w)
	for _, line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return errors.OutputError(err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return errors.OutputError(err)
		}
	}
	if err := bw.Flush(); err != nil {
		return errors.OutputError(err)
	}
	return nil
}

// JSONSink writes the matches as one JSON array.
type JSONSink struct {
	w io.Writer
}

// WriteLines implements runner.Sink. No matches encode as [].
func (s *JSONSink) WriteLines(lines []string) error {
	if lines == nil {
		lines = []string{}
	}
	enc := json.NewEncoder(s.w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(lines); err != nil {
		return errors.OutputError(err)
	}
	return nil
}

// YAMLSink writes the matches as one YAML sequence.
type YAMLSink struct {
	w io.Writer
}

// WriteLines implements runner.Sink. No matches encode as [].
func (s *YAMLSink) WriteLines(lines []string) error {
	if lines == nil {
		lines = []string{}
	}
	enc := yaml.NewEncoder(s.w)
	enc.SetIndent(2)
	if err := enc.Encode(lines); err != nil {
		return errors.OutputError(err)
	}
	if err := enc.Close(); err != nil {
		return errors.OutputError(err)
	}
	return nil
}
