package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadConfig(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "data"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "data", "config.yaml"),
		[]byte("API_PORT: 7070\nWAYPOINTS_FILE: ./data/points.txt\n"), 0o644))
	chdir(t, dir)

	require.NoError(t, ReadConfig())
	assert.Equal(t, 7070, viper.GetInt("API_PORT"))
	assert.Equal(t, "./data/points.txt", viper.GetString("WAYPOINTS_FILE"))
}

func TestReadConfigMissingFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)
	chdir(t, t.TempDir())

	assert.NoError(t, ReadConfig())
}

// chdir changes the working directory for the duration of the test (t.Chdir needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(wd)) })
}
