package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"todoTracker/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_MissingFile тестирует дефолты при отсутствии конфига
func TestLoad_MissingFile(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "config.yml"))
	require.NoError(t, err)

	assert.Equal(t, config.StorageJSONFile, cfg.Storage.Type)
	assert.Equal(t, config.DefaultFile, cfg.Storage.File)
	assert.False(t, cfg.Logging.Enabled)
	assert.True(t, cfg.Logging.Development)
}

// TestLoad_FromYAML тестирует чтение значений из файла
func TestLoad_FromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	content := `storage:
  type: inmemory
  file: /tmp/other.json
logging:
  enabled: true
  development: false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, config.StorageInMemory, cfg.Storage.Type)
	assert.Equal(t, "/tmp/other.json", cfg.Storage.File)
	assert.True(t, cfg.Logging.Enabled)
	assert.False(t, cfg.Logging.Development)
}

// TestLoad_PartialYAML тестирует, что непрописанные ключи берут дефолты
func TestLoad_PartialYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("storage:\n  file: my.json\n"), 0644))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "my.json", cfg.Storage.File)
	assert.Equal(t, config.StorageJSONFile, cfg.Storage.Type)
}

// TestLoad_EmptyFile тестирует пустой конфиг
func TestLoad_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(""), 0644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultFile, cfg.Storage.File)
}

// TestLoad_EnvOverride тестирует приоритет TODO_FILE над конфигом
func TestLoad_EnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("storage:\n  file: from-yaml.json\n"), 0644))

	t.Setenv("TODO_FILE", "from-env.json")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env.json", cfg.Storage.File)
}

// TestLoad_MalformedYAML тестирует ошибку парсинга
func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("storage: [broken\n"), 0644))

	_, err := config.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ошибка парсинга")
}
