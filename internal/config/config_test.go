package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Reads the yml file", func(t *testing.T) {
		// Given: a config file
		path := filepath.Join(t.TempDir(), "config.yml")
		content := "log-level: debug\ndictionary-path: words.txt\nsnapshot:\n  format: yaml\nstorage:\n  driver: redis\n  redis:\n    host: cache\n    db: 2\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: it is loaded
		conf, err := Load(path)

		// Then: file values win over defaults
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "words.txt", conf.DictionaryPath)
		assert.Equal(t, "yaml", conf.Snapshot.Format)
		assert.Equal(t, DriverRedis, conf.Storage.Driver)
		assert.Equal(t, "cache:6379", conf.Storage.Redis.GetRedisAddr())
		assert.Equal(t, 2, conf.Storage.Redis.DB)
		assert.Equal(t, "saves", conf.Storage.SaveDir)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("storage:\n  driver: redis\n"), 0o600))
		t.Setenv("STORAGE_DRIVER", "sqlite")
		t.Setenv("HANGMAN_SLOT", "morning")

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, DriverSQLite, conf.Storage.Driver)
		assert.Equal(t, "morning", conf.Slot)
	})

	t.Run("Falls back to defaults without a file", func(t *testing.T) {
		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, "google-10000-english-no-swears.txt", conf.DictionaryPath)
		assert.Equal(t, "json", conf.Snapshot.Format)
		assert.Equal(t, DriverFile, conf.Storage.Driver)
		assert.Equal(t, "localhost:6379", conf.Storage.Redis.GetRedisAddr())
		assert.Equal(t, 0, conf.Storage.Redis.DB)
	})

	t.Run("Broken file panics in MustLoad", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("log-level: [unclosed\n"), 0o600))

		assert.Panics(t, func() { MustLoad(path) })
	})
}
