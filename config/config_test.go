/*
File    : mixvm/config/config_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_HasSpecMinimumCallDepth(t *testing.T) {
	cfg := Default()
	assert.Equal(t, 256, cfg.MaxCallDepth)
	assert.ElementsMatch(t, AllNativeGroups, cfg.EnabledNatives)
}

func TestLoad_EmptyPathReturnsDefault(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_OverridesFromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mixvm.yaml")
	content := "max_call_depth: 512\nenabled_natives:\n  - core\n  - math\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 512, cfg.MaxCallDepth)
	assert.Equal(t, []string{"core", "math"}, cfg.EnabledNatives)
	// Fields absent from the file keep Default's values.
	assert.Equal(t, "v1.0.0", cfg.REPL.Version)
}

func TestLoad_MissingFileIsError(t *testing.T) {
	_, err := Load("/nonexistent/mixvm.yaml")
	assert.Error(t, err)
}
