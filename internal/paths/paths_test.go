package paths

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigDir_Linux(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("linux-only test")
	}

	t.Run("uses XDG_CONFIG_HOME when set", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg-config")
		got, err := DefaultConfigDir()
		require.NoError(t, err)
		assert.Equal(t, "/tmp/xdg-config/shortlink", got)
	})

	t.Run("falls back to ~/.config when XDG unset", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		home, err := os.UserHomeDir()
		require.NoError(t, err)

		got, err := DefaultConfigDir()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".config", "shortlink"), got)
	})
}

func TestResolveConfigDir(t *testing.T) {
	t.Run("flag wins over env", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "/tmp/from-env")
		got, err := ResolveConfigDir("/tmp/from-flag")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/from-flag", got)
	})

	t.Run("env wins over default", func(t *testing.T) {
		t.Setenv(EnvConfigDir, "/tmp/from-env")
		got, err := ResolveConfigDir("")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/from-env", got)
	})
}

func TestResolveDataDir(t *testing.T) {
	t.Run("flag wins over everything", func(t *testing.T) {
		t.Setenv(EnvDataDir, "/tmp/env-data")
		got, err := ResolveDataDir("/tmp/flag-data", "/tmp/cfg-data")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/flag-data", got)
	})

	t.Run("config value wins over env", func(t *testing.T) {
		t.Setenv(EnvDataDir, "/tmp/env-data")
		got, err := ResolveDataDir("", "/tmp/cfg-data")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/cfg-data", got)
	})

	t.Run("env wins over CWD default", func(t *testing.T) {
		t.Setenv(EnvDataDir, "/tmp/env-data")
		got, err := ResolveDataDir("", "")
		require.NoError(t, err)
		assert.Equal(t, "/tmp/env-data", got)
	})

	t.Run("CWD default when nothing is set", func(t *testing.T) {
		t.Setenv(EnvDataDir, "")
		cwd, err := os.Getwd()
		require.NoError(t, err)

		got, err := ResolveDataDir("", "")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(cwd, DefaultDataDirName), got)
	})
}

func TestDataFilePaths(t *testing.T) {
	dir := "/srv/shortlink"
	assert.Equal(t, filepath.Join(dir, "links.json"), Links(dir))
	assert.Equal(t, filepath.Join(dir, "users.json"), Users(dir))
	assert.Equal(t, filepath.Join(dir, "events.json"), Events(dir))
	assert.Equal(t, filepath.Join(dir, "user.uuid"), UserUUID(dir))
}
