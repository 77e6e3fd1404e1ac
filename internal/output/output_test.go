package output

import (
	"bytes"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aman-CERP/minigrep/internal/errors"
)

func TestWriter_Error_PrintsMessage(t *testing.T) {
	// Given: a writer with a buffer
	buf := &bytes.Buffer{}
	w := New(buf)

	// When: printing an error message
	w.Error("Problem parsing arguments: not enough arguments")

	// Then: output is the plain message
	assert.Equal(t, "Problem parsing arguments: not enough arguments\n", buf.String())
}

func TestWriter_Warning_PrintsMessage(t *testing.T) {
	buf := &bytes.Buffer{}
	New(buf).Warning("careful")

	assert.Equal(t, "careful\n", buf.String())
}

func TestWriter_Report_FormatsStructuredError(t *testing.T) {
	// Given: a file access error
	buf := &bytes.Buffer{}
	w := New(buf)
	err := errors.FileAccessError("missing.txt", fs.ErrNotExist)

	// When: reporting it
	w.Report(err)

	// Then: message, hint and code are printed without escape codes
	out := buf.String()
	assert.Contains(t, out, "Error: file not found: missing.txt\n")
	assert.Contains(t, out, "Hint: check the file path")
	assert.Contains(t, out, "Code: ERR_201_FILE_NOT_FOUND")
	assert.NotContains(t, out, "\x1b[")
}

func TestWriter_ReportJSON_WritesOneObject(t *testing.T) {
	// Given: a colored writer, which JSON reports must ignore
	buf := &bytes.Buffer{}
	w := newWriter(buf, true)

	// When: reporting a file access error as JSON
	w.ReportJSON(errors.FileAccessError("missing.txt", fs.ErrNotExist))

	// Then: stderr holds one parseable object with the code
	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, errors.ErrCodeFileNotFound, got["code"])
	assert.Equal(t, "missing.txt", got["details"].(map[string]any)["path"])
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestWriter_ReportJSON_Nil(t *testing.T) {
	buf := &bytes.Buffer{}
	New(buf).ReportJSON(nil)

	assert.Empty(t, buf.String())
}

func TestWriter_Report_Nil(t *testing.T) {
	buf := &bytes.Buffer{}
	New(buf).Report(nil)

	assert.Empty(t, buf.String())
}

func TestNewAuto_BufferHasNoColor(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewAuto(buf)

	w.Error("plain")
	assert.Equal(t, "plain\n", buf.String())
}

func TestWriter_ColorKeepsText(t *testing.T) {
	buf := &bytes.Buffer{}
	w := newWriter(buf, true)

	w.Error("boom")
	assert.Contains(t, buf.String(), "boom")
}

func TestIsTTY(t *testing.T) {
	assert.False(t, IsTTY(nil))
	assert.False(t, IsTTY(&bytes.Buffer{}))

	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	assert.False(t, IsTTY(f))
}

func TestDetectNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	assert.True(t, DetectNoColor())

	require.NoError(t, os.Unsetenv("NO_COLOR"))
	assert.False(t, DetectNoColor())
}
