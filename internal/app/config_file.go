package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig is the single-file configuration schema. Nested sections map
// naturally to flags and environment variables.
type FileConfig struct {
	Listen string `yaml:"listen"`

	UserAgent string `yaml:"userAgent"`

	Vision struct {
		BaseURL string `yaml:"base"`
		APIKey  string `yaml:"key"`
		Model   string `yaml:"model"`
	} `yaml:"vision"`
}

// LoadFileConfig reads a YAML config file. A missing path is not an error
// when it was not explicitly requested.
func LoadFileConfig(path string, explicit bool) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return fc, nil
		}
		return fc, fmt.Errorf("read config %s: %w", path, err)
	}
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yml" && ext != ".yaml" {
		return fc, fmt.Errorf("unsupported config extension %q", ext)
	}
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return fc, fmt.Errorf("parse config %s: %w", path, err)
	}
	return fc, nil
}

// Merge overlays a file config onto cfg, filling only fields the caller has
// not already set through flags or environment.
func (fc FileConfig) Merge(cfg *Config) {
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = fc.Listen
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = fc.UserAgent
	}
	if cfg.Vision.BaseURL == "" {
		cfg.Vision.BaseURL = fc.Vision.BaseURL
	}
	if cfg.Vision.APIKey == "" {
		cfg.Vision.APIKey = fc.Vision.APIKey
	}
	if cfg.Vision.Model == "" {
		cfg.Vision.Model = fc.Vision.Model
	}
}
