package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_WithValidConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	cfg := `{
		"logLevel": "debug",
		"tickHz": 30,
		"scripts": { "dir": "./myscripts", "loadPlugins": false }
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.json"), []byte(cfg), 0644))

	err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", GetString("logLevel"))
	assert.Equal(t, 30, GetInt("tickHz"))
	assert.Equal(t, "./myscripts", GetString("scripts.dir"))
	assert.Equal(t, false, GetBool("scripts.loadPlugins"))
}

func TestLoad_DefaultValues(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.json"), []byte(`{}`), 0644))

	err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "info", GetString("logLevel"))
	assert.Equal(t, 60, GetInt("tickHz"))
	assert.Equal(t, "./plugins", GetString("scripts.dir"))
	assert.Equal(t, true, GetBool("scripts.loadPlugins"))
	assert.Equal(t, true, GetBool("examples.vehicleExit"))
	assert.Equal(t, true, GetBool("examples.indicators"))
	assert.Equal(t, true, GetBool("examples.physicsDemo"))
	assert.Equal(t, true, GetBool("examples.pedPatrol"))
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Cleanup(viper.Reset)

	err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "info", GetString("logLevel"))
	assert.Equal(t, 60, GetInt("tickHz"))
}
