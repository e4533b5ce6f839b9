package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFileMissingIsEmpty(t *testing.T) {
	t.Setenv(EnvConfigPath, filepath.Join(t.TempDir(), "nonexistent.toml"))

	cfg, err := LoadFile()
	if err != nil {
		t.Fatalf("Expected missing file to load as empty config, got: %v", err)
	}
	if cfg != (FileConfig{}) {
		t.Errorf("Expected zero config, got %+v", cfg)
	}
}

func TestLoadFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("this is not = [valid toml"), 0o600); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	t.Setenv(EnvConfigPath, path)

	if _, err := LoadFile(); err == nil {
		t.Error("Expected parse error for malformed config file")
	}
}

func TestSetFieldPreservesOtherFields(t *testing.T) {
	t.Setenv(EnvConfigPath, filepath.Join(t.TempDir(), "config.toml"))

	if err := SetField("langsmith_api_key", "ls-key"); err != nil {
		t.Fatalf("SetField failed: %v", err)
	}
	if err := SetField("workspace_id", "ws-1"); err != nil {
		t.Fatalf("SetField failed: %v", err)
	}
	if err := SetField("workspace_id", "ws-2"); err != nil {
		t.Fatalf("SetField failed: %v", err)
	}

	cfg, err := LoadFile()
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.SmithAPIKey != "ls-key" {
		t.Errorf("Earlier field lost by later SetField: %+v", cfg)
	}
	if cfg.WorkspaceID != "ws-2" {
		t.Errorf("Expected updated workspace ws-2, got %q", cfg.WorkspaceID)
	}
}

func TestSetFieldUnknownKey(t *testing.T) {
	t.Setenv(EnvConfigPath, filepath.Join(t.TempDir(), "config.toml"))

	if err := SetField("favorite_color", "purple"); err == nil {
		t.Error("Expected error for unknown config key")
	}
}

func TestSetFieldCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "config.toml")
	t.Setenv(EnvConfigPath, path)

	if err := SetField("output_format", "json"); err != nil {
		t.Fatalf("SetField failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("Expected config file created with parent directories: %v", err)
	}
}
