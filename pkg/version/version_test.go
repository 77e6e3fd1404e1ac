package version

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString_ContainsBuildInfo(t *testing.T) {
	s := String()

	assert.Contains(t, s, "minigrep")
	assert.Contains(t, s, Version)
	assert.Contains(t, s, "commit: "+Commit)
	assert.Contains(t, s, runtime.Version())
}

func TestShort(t *testing.T) {
	old := Version
	defer func() { Version = old }()

	Version = "1.2.3"
	assert.Equal(t, "1.2.3", Short())
}
