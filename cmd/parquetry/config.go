package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
	yaml "gopkg.in/yaml.v3"
)

// Config holds the conversion knobs not exposed as flags.
type Config struct {
	ChunkThresholdMB int64 `json:"chunk_threshold_mb" toml:"chunk_threshold_mb" yaml:"chunk_threshold_mb"`
	ChunkRows        int   `json:"chunk_rows" toml:"chunk_rows" yaml:"chunk_rows"`
	Sheet            int   `json:"sheet" toml:"sheet" yaml:"sheet"`
	NoHeader         bool  `json:"no_header" toml:"no_header" yaml:"no_header"`
}

func defaultConfig() Config {
	return Config{
		ChunkThresholdMB: 50,
		ChunkRows:        200_000,
	}
}

// loadConfig reads a TOML, YAML, or JSON config, chosen by extension.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch filepath.Ext(path) {
	case ".toml":
		err = toml.Unmarshal(b, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &cfg)
	case ".json":
		err = json.Unmarshal(b, &cfg)
	default:
		return cfg, fmt.Errorf("unsupported config format %q", filepath.Ext(path))
	}
	if err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}
	return cfg, nil
}
