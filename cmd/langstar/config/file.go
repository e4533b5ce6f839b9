// Package config provides configuration management for the langstar CLI.
//
// This file implements the persistent TOML config file. The file lives at
// <user-config-dir>/langstar/config.toml (overridable with LANGSTAR_CONFIG)
// and stores API keys, scope identifiers, and display preferences so they
// don't have to be passed on every invocation. Writes go through a
// read-merge-write cycle so a `config set` never drops unrelated fields.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// EnvConfigPath overrides the config file location when set.
const EnvConfigPath = "LANGSTAR_CONFIG"

// FileConfig mirrors the TOML config file layout. All fields are optional.
type FileConfig struct {
	SmithAPIKey    string `toml:"langsmith_api_key,omitempty"`
	GraphAPIKey    string `toml:"langgraph_api_key,omitempty"`
	OrganizationID string `toml:"organization_id,omitempty"`
	WorkspaceID    string `toml:"workspace_id,omitempty"`
	IntegrationID  string `toml:"github_integration_id,omitempty"`
	OutputFormat   string `toml:"output_format,omitempty"`
}

// FilePath returns the config file location, honoring the LANGSTAR_CONFIG
// override.
func FilePath() (string, error) {
	if override := os.Getenv(EnvConfigPath); override != "" {
		return override, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine config directory: %w", err)
	}
	return filepath.Join(dir, "langstar", "config.toml"), nil
}

// LoadFile reads the config file. A missing file is not an error and yields
// an empty config; a malformed file is reported so a typo never silently
// disables configured credentials.
func LoadFile() (FileConfig, error) {
	var cfg FileConfig

	path, err := FilePath()
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("cannot parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// SaveFile writes the full config back to disk, creating the directory on
// first use. Callers mutate a freshly loaded FileConfig and save it, so
// unrelated fields survive every update.
func SaveFile(cfg FileConfig) error {
	path, err := FilePath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot encode config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("cannot write config file %s: %w", path, err)
	}
	return nil
}

// SetField updates one config file field by key through a read-merge-write
// cycle. Returns an error for unknown keys.
func SetField(key, value string) error {
	cfg, err := LoadFile()
	if err != nil {
		return err
	}

	switch key {
	case "langsmith_api_key":
		cfg.SmithAPIKey = value
	case "langgraph_api_key":
		cfg.GraphAPIKey = value
	case "organization_id":
		cfg.OrganizationID = value
	case "workspace_id":
		cfg.WorkspaceID = value
	case "github_integration_id":
		cfg.IntegrationID = value
	case "output_format":
		cfg.OutputFormat = value
	default:
		return fmt.Errorf("unknown config key '%s' - valid keys: langsmith_api_key, langgraph_api_key, organization_id, workspace_id, github_integration_id, output_format", key)
	}

	return SaveFile(cfg)
}
