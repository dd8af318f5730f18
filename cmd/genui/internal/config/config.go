// Package config loads the optional genui.yaml configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// DefaultProtocolVersion is assumed when genui.yaml does not pin one.
const DefaultProtocolVersion = "0.1.0"

// supportedMajors lists the protocol major versions this build understands.
var supportedMajors = map[string]bool{
	"v0": true,
	"v1": true,
}

// Config represents the optional genui.yaml configuration.
type Config struct {
	Protocol ProtocolConfig `yaml:"protocol"`
	Replay   ReplayConfig   `yaml:"replay"`
}

// ProtocolConfig pins the protocol version a stream was produced for.
type ProtocolConfig struct {
	Version string `yaml:"version,omitempty"`
}

// ReplayConfig contains replay settings.
type ReplayConfig struct {
	Verbose bool   `yaml:"verbose,omitempty"`
	Surface string `yaml:"surface,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	ProtocolVersion string
	Verbose         bool
	Surface         string
}

// LoadOptional reads genui.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "genui.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read genui.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse genui.yaml: %w", err)
	}

	return &cfg, nil
}

// Resolve loads genui.yaml (if present) and resolves defaults. The pinned
// protocol version must be valid semver within a supported major.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	version := cfg.Protocol.Version
	if version == "" {
		version = DefaultProtocolVersion
	}
	canonical := "v" + version
	if !semver.IsValid(canonical) {
		return nil, fmt.Errorf("invalid protocol version %q", version)
	}
	if !supportedMajors[semver.Major(canonical)] {
		return nil, fmt.Errorf("unsupported protocol version %q (supported majors: v0, v1)", version)
	}

	return &Resolved{
		ProtocolVersion: version,
		Verbose:         cfg.Replay.Verbose,
		Surface:         cfg.Replay.Surface,
	}, nil
}
