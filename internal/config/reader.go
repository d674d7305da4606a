package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Reader interface {
	Read() (Config, error)
}

type EnvReader struct{}

func NewEnvReader() EnvReader {
	return EnvReader{}
}

func (EnvReader) Read() (Config, error) {
	var cfg Config
	err := cleanenv.ReadEnv(&cfg)
	if err != nil {
		return Config{}, err
	}

	err = cfg.Validate()
	if err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// FileReader reads a YAML file and then applies environment overrides.
type FileReader struct {
	path string
}

func NewFileReader(path string) FileReader {
	return FileReader{path: path}
}

func (r FileReader) Read() (Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(r.path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read %s: %w", r.path, err)
	}

	err = cfg.Validate()
	if err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// NewReader picks FileReader when path is set and EnvReader otherwise.
func NewReader(path string) Reader {
	if path == "" {
		return NewEnvReader()
	}
	return NewFileReader(path)
}
