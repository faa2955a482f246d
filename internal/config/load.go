package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/atlanticdynamic/hostfixtures/internal/config/errz"
	"github.com/atlanticdynamic/hostfixtures/internal/interpolation"
	"github.com/pelletier/go-toml/v2"
)

// LoadFile reads the TOML file at path over a copy of base and returns the
// result. Keys absent from the file keep their value from base.
func LoadFile(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errz.ErrFailedToLoadConfig, err)
	}
	return LoadBytes(data, base)
}

// LoadBytes is LoadFile for an in-memory TOML document.
func LoadBytes(data []byte, base *Config) (*Config, error) {
	cfg := &Config{}
	if base != nil {
		*cfg = *base
	}

	var versionCheck struct {
		Version string `toml:"version"`
	}
	if err := toml.Unmarshal(data, &versionCheck); err != nil {
		return nil, fmt.Errorf("%w: %w", errz.ErrFailedToLoadConfig, err)
	}
	if versionCheck.Version != "" && versionCheck.Version != VersionLatest {
		return nil, fmt.Errorf("%w: %s", errz.ErrUnsupportedConfigVer, versionCheck.Version)
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", errz.ErrFailedToLoadConfig, err)
	}
	if cfg.Version == "" {
		cfg.Version = VersionLatest
	}

	if err := interpolation.InterpolateStruct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", errz.ErrFailedToLoadConfig, err)
	}
	return cfg, nil
}

// Marshal renders cfg as TOML.
func (c *Config) Marshal() ([]byte, error) {
	return toml.Marshal(c)
}
