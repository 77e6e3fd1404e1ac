// Package output writes matches to standard output and reports failures on
// standard error.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/Aman-CERP/minigrep/internal/errors"
)

// Colors for stderr reporting (256-color palette).
const (
	ColorRed    = "196"
	ColorYellow = "220"
	ColorGray   = "245"
)

// Writer prints human-facing messages, styled when the destination is a terminal.
type Writer struct {
	out      io.Writer
	useColor bool

	errStyle  lipgloss.Style
	warnStyle lipgloss.Style
	dimStyle  lipgloss.Style
}

// New creates a Writer without color.
func New(out io.Writer) *Writer {
	return newWriter(out, false)
}

// NewAuto creates a Writer that uses color when out is a terminal and
// NO_COLOR is unset.
func NewAuto(out io.Writer) *Writer {
	return newWriter(out, IsTTY(out) && !DetectNoColor())
}

func newWriter(out io.Writer, useColor bool) *Writer {
	r := lipgloss.NewRenderer(out)
	return &Writer{
		out:       out,
		useColor:  useColor,
		errStyle:  r.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorRed)),
		warnStyle: r.NewStyle().Foreground(lipgloss.Color(ColorYellow)),
		dimStyle:  r.NewStyle().Foreground(lipgloss.Color(ColorGray)),
	}
}

// Error prints an error message.
// Errors from writing are intentionally ignored for console output.
func (w *Writer) Error(msg string) {
	_, _ = fmt.Fprintln(w.out, w.style(w.errStyle, msg))
}

// Warning prints a warning message.
func (w *Writer) Warning(msg string) {
	_, _ = fmt.Fprintln(w.out, w.style(w.warnStyle, msg))
}

// Report prints err in CLI format: the first line styled as an error and
// the cause, hint and code lines dimmed.
func (w *Writer) Report(err error) {
	text := strings.TrimRight(errors.FormatForCLI(err), "\n")
	if text == "" {
		return
	}

	head, rest, _ := strings.Cut(text, "\n")
	w.Error(head)
	if rest != "" {
		_, _ = fmt.Fprintln(w.out, w.style(w.dimStyle, rest))
	}
}

// ReportJSON prints err as a single JSON object, for callers that asked
// for machine-readable output. Never styled.
func (w *Writer) ReportJSON(err error) {
	if err == nil {
		return
	}
	data, jerr := errors.FormatJSON(err)
	if jerr != nil {
		w.Report(err)
		return
	}
	_, _ = fmt.Fprintln(w.out, string(data))
}

func (w *Writer) style(s lipgloss.Style, msg string) string {
	if !w.useColor {
		return msg
	}
	return s.Render(msg)
}

// IsTTY checks if output is a terminal.
func IsTTY(w io.Writer) bool {
	if w == nil {
		return false
	}
	if f, ok := w.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return false
}

// DetectNoColor checks if NO_COLOR environment variable is set.
func DetectNoColor() bool {
	_, exists := os.LookupEnv("NO_COLOR")
	return exists
}
