package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Reader interface {
	Read() (*Config, error)
}

type EnvReader struct{}

func NewEnvReader() EnvReader {
	return EnvReader{}
}

func (EnvReader) Read() (*Config, error) {
	cfg := new(Config)
	err := cleanenv.ReadEnv(cfg)
	if err != nil {
		return nil, err
	}

	err = validate(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// FileReader reads a YAML, JSON, TOML or .env file. Environment
// variables still take precedence over the file.
type FileReader struct {
	path string
}

func NewFileReader(path string) FileReader {
	return FileReader{path: path}
}

func (r FileReader) Read() (*Config, error) {
	cfg := new(Config)
	err := cleanenv.ReadConfig(r.path, cfg)
	if err != nil {
		return nil, err
	}

	err = validate(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	switch cfg.Env {
	case EnvDev, EnvProd, EnvLocal:
	default:
		return fmt.Errorf("unknown env: %q", cfg.Env)
	}

	switch cfg.Storage.Driver {
	case StorageMongo, StoragePostgres, StorageMemory:
	default:
		return fmt.Errorf("unknown storage driver: %q", cfg.Storage.Driver)
	}
	return nil
}
