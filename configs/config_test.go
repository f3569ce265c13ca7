package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_FromFile(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	path := filepath.Join(t.TempDir(), "config.yml")
	err := os.WriteFile(path, []byte(`
api:
  url: http://localhost:8080
  timeout: 3s
  maxRetries: 4
storage:
  preferences:
    type: memory
`), 0o600)
	require.NoError(t, err)

	require.NoError(t, LoadConfig(path))

	assert.Equal(t, "http://localhost:8080", Cfg.API.URL)
	assert.Equal(t, 3*time.Second, Cfg.API.Timeout)
	assert.Equal(t, 4, Cfg.API.MaxRetries)
	assert.Equal(t, time.Second, Cfg.API.BackoffUnit)
	assert.Equal(t, "page_%d", Cfg.API.CursorFormat)
	assert.Equal(t, PreferenceStoreMemory, Cfg.Storage.Preferences.Type)
	assert.Equal(t, "Mainnet", Cfg.Network.Default)
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	viper.Reset()
	defer viper.Reset()

	err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}
