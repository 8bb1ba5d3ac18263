package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

const StorageJSONFile = "jsonfile"
const StorageInMemory = "inmemory"

const DefaultFile = "todos.json"

type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Logging LoggingConfig `yaml:"logging"`
}

type StorageConfig struct {
	Type string `yaml:"type"` // "jsonfile" или "inmemory"
	File string `yaml:"file"`
}

type LoggingConfig struct {
	Enabled     bool `yaml:"enabled"`
	Development bool `yaml:"development"`
}

// Load читает конфиг по явно переданному пути, без глобального пути по умолчанию.
// Отсутствующий файл - не ошибка: берутся дефолты, затем переменные окружения.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Storage: StorageConfig{
			Type: StorageJSONFile,
			File: DefaultFile,
		},
		Logging: LoggingConfig{
			Development: true,
		},
	}

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg.applyEnv()
			return cfg, nil
		}
		return nil, fmt.Errorf("не могу открыть %s: %w", path, err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("ошибка парсинга %s: %w", path, err)
	}

	cfg.applyEnv()
	return cfg, nil
}

// TODO_FILE сильнее значения из конфига
func (c *Config) applyEnv() {
	if file := os.Getenv("TODO_FILE"); file != "" {
		c.Storage.File = file
	}
}
