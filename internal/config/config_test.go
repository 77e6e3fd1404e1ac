package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aman-CERP/minigrep/internal/errors"
)

// envMap returns a LookupFunc backed by m.
func envMap(m map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestNew_DefaultsToCaseSensitive(t *testing.T) {
	// Given: query and file with no flag and an empty environment
	cfg, err := New([]string{"duct", "poem.txt"}, false, envMap(nil))

	// Then: the search is case-sensitive
	require.NoError(t, err)
	assert.Equal(t, SearchConfig{Query: "duct", Filename: "poem.txt", CaseSensitive: true}, cfg)
}

func TestNew_IgnoreCaseFlag(t *testing.T) {
	cfg, err := New([]string{"rust", "poem.txt"}, true, envMap(nil))

	require.NoError(t, err)
	assert.False(t, cfg.CaseSensitive)
}

func TestNew_Environment(t *testing.T) {
	tests := []struct {
		name          string
		env           map[string]string
		caseSensitive bool
	}{
		{"CASE_INSENSITIVE set", map[string]string{EnvCaseInsensitive: "1"}, false},
		{"CASE_INSENSITIVE empty still counts", map[string]string{EnvCaseInsensitive: ""}, false},
		{"MINIGREP_IGNORE_CASE true", map[string]string{EnvIgnoreCase: "true"}, false},
		{"MINIGREP_IGNORE_CASE yes", map[string]string{EnvIgnoreCase: "YES"}, false},
		{"MINIGREP_IGNORE_CASE false", map[string]string{EnvIgnoreCase: "0"}, true},
		{"MINIGREP_IGNORE_CASE empty", map[string]string{EnvIgnoreCase: ""}, true},
		{"unrelated", map[string]string{"HOME": "/root"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := New([]string{"q", "f"}, false, envMap(tt.env))
			require.NoError(t, err)
			assert.Equal(t, tt.caseSensitive, cfg.CaseSensitive)
		})
	}
}

func TestNew_FlagWinsOverFalseEnv(t *testing.T) {
	cfg, err := New([]string{"q", "f"}, true, envMap(map[string]string{EnvIgnoreCase: "false"}))

	require.NoError(t, err)
	assert.False(t, cfg.CaseSensitive)
}

func TestIgnoreCaseNote(t *testing.T) {
	tests := []struct {
		name       string
		ignoreCase bool
		env        map[string]string
		want       string
	}{
		{"flag overrides false", true, map[string]string{EnvIgnoreCase: "false"}, "ignoring MINIGREP_IGNORE_CASE=false because -i was given"},
		{"flag agrees with env", true, map[string]string{EnvIgnoreCase: "1"}, ""},
		{"no flag", false, map[string]string{EnvIgnoreCase: "false"}, ""},
		{"env unset", true, nil, ""},
		{"env unparseable", true, map[string]string{EnvIgnoreCase: "maybe"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IgnoreCaseNote(tt.ignoreCase, envMap(tt.env)))
		})
	}

	assert.Empty(t, IgnoreCaseNote(true, nil))
}

func TestNew_InvalidEnvBoolean(t *testing.T) {
	_, err := New([]string{"q", "f"}, false, envMap(map[string]string{EnvIgnoreCase: "maybe"}))

	require.Error(t, err)
	assert.True(t, errors.IsConfiguration(err))
	assert.Equal(t, errors.ErrCodeInvalidEnv, errors.GetCode(err))
}

func TestNew_ArgumentCount(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode string
	}{
		{"none", nil, errors.ErrCodeMissingArgument},
		{"query only", []string{"duct"}, errors.ErrCodeMissingArgument},
		{"too many", []string{"a", "b", "c"}, errors.ErrCodeInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.args, false, envMap(nil))

			require.Error(t, err)
			assert.True(t, errors.IsConfiguration(err))
			assert.Equal(t, tt.wantCode, errors.GetCode(err))
		})
	}
}

func TestNew_EmptyQueryAccepted(t *testing.T) {
	cfg, err := New([]string{"", "poem.txt"}, false, nil)

	require.NoError(t, err)
	assert.Equal(t, "", cfg.Query)
	assert.True(t, cfg.CaseSensitive)
}

func TestLogLevel(t *testing.T) {
	level, err := LogLevel(envMap(nil))
	require.NoError(t, err)
	assert.Equal(t, DefaultLogLevel, level)

	level, err = LogLevel(envMap(map[string]string{EnvLogLevel: " DEBUG "}))
	require.NoError(t, err)
	assert.Equal(t, "debug", level)

	_, err = LogLevel(envMap(map[string]string{EnvLogLevel: "loud"}))
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidEnv, errors.GetCode(err))

	level, err = LogLevel(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultLogLevel, level)
}
