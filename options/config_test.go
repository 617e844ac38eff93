package options_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"naming-clt/options"
)

func TestParseConfig(t *testing.T) {
	cfg, err := options.Parse([]byte("filter: [S, s, h]\noutput: [s, k]\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"S", "s", "h"}, cfg.Filter)
	assert.Equal(t, []string{"s", "k"}, cfg.Output)
}

func TestParseConfigFillsDefaults(t *testing.T) {
	cfg, err := options.Parse([]byte("filter: [k]\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"k"}, cfg.Filter)
	assert.Equal(t, options.DefaultTags(), cfg.Output)

	cfg, err = options.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, options.DefaultTags(), cfg.Filter)
	assert.Equal(t, options.DefaultTags(), cfg.Output)
}

func TestParseConfigRejectsBadYAML(t *testing.T) {
	_, err := options.Parse([]byte("filter: [unterminated"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "naming.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: [p]\n"), 0o644))

	cfg, err := options.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"p"}, cfg.Output)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := options.LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
