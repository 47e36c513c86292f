package sketch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, LengthEps, cfg.LengthEpsilon)
}

func TestParseConfig(t *testing.T) {
	want := Config{ChordTolerance: 0.01, MaxSegments: 50, LengthEpsilon: LengthEps}
	tests := []struct {
		format string
		data   string
	}{
		{"toml", "chord_tolerance = 0.01\nmax_segments = 50\n"},
		{"TOML", "chord_tolerance = 0.01\nmax_segments = 50\n"},
		{"yaml", "chord_tolerance: 0.01\nmax_segments: 50\n"},
		{"yml", "chord_tolerance: 0.01\nmax_segments: 50\n"},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			cfg, err := ParseConfig([]byte(tt.data), tt.format)
			require.NoError(t, err)
			diff(t, want, cfg)
		})
	}
}

func TestParseConfigEmpty(t *testing.T) {
	for _, format := range []string{"toml", "yaml"} {
		cfg, err := ParseConfig(nil, format)
		require.NoError(t, err, format)
		diff(t, DefaultConfig(), cfg)
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name   string
		format string
		data   string
		msg    string
	}{
		{"unknown toml field", "toml", "chord_tolerance = 0.1\nsegments = 3\n", "decoding TOML"},
		{"unknown yaml field", "yaml", "segments: 3\n", "decoding YAML"},
		{"malformed toml", "toml", "chord_tolerance = \n", "decoding TOML"},
		{"negative tolerance", "yaml", "chord_tolerance: -1\n", "chord tolerance must be positive"},
		{"zero segments", "toml", "max_segments = 0\n", "max segments must be at least 1"},
		{"unknown format", "json", "{}", "unknown config format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.data), tt.format)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestValidateReportsAll(t *testing.T) {
	err := Config{}.Validate()
	require.Error(t, err)
	for _, msg := range []string{"chord tolerance", "max segments", "length epsilon"} {
		assert.Contains(t, err.Error(), msg)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sketch.toml")
	require.NoError(t, os.WriteFile(path, []byte("length_epsilon = 1e-9\n"), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 1e-9, cfg.LengthEpsilon)
	assert.Equal(t, DefaultConfig().ChordTolerance, cfg.ChordTolerance)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("max_segments: -2\n"), 0o644))
	_, err = LoadConfig(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), bad)

	_, err = LoadConfig(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
