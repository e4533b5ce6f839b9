package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/codekiln/langstar/internal/sdk"
)

// writeConfigFile points LANGSTAR_CONFIG at a temp file with the given TOML
// content for the duration of the test.
func writeConfigFile(t *testing.T, content string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	t.Setenv(EnvConfigPath, path)
}

// clearScopeEnv blanks every credential and scope variable so ambient shell
// configuration cannot leak into resolution tests.
func clearScopeEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		sdk.EnvSmithAPIKey, sdk.EnvGraphAPIKey, sdk.EnvOrganizationID,
		sdk.EnvWorkspaceID, sdk.EnvWorkspaceIDLegacy, sdk.EnvGitHubIntegration,
	} {
		t.Setenv(name, "")
	}
}

func TestResolveFieldPrecedence(t *testing.T) {
	t.Setenv("LANGSTAR_TEST_VAR", "from-env")

	tests := []struct {
		name           string
		flagValue      string
		fileValue      string
		expected       string
		expectedSource Source
	}{
		{"flag beats file and env", "from-flag", "from-file", "from-flag", SourceFlag},
		{"file beats env", "", "from-file", "from-file", SourceFile},
		{"env as last resort", "", "", "from-env", SourceEnv},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, source := resolveField(tt.flagValue, tt.fileValue, "LANGSTAR_TEST_VAR")
			if value != tt.expected || source != tt.expectedSource {
				t.Errorf("Expected (%q, %v), got (%q, %v)", tt.expected, tt.expectedSource, value, source)
			}
		})
	}
}

func TestResolveFieldEnvFallbackOrder(t *testing.T) {
	t.Setenv("LANGSTAR_TEST_PRIMARY", "")
	t.Setenv("LANGSTAR_TEST_LEGACY", "legacy-value")

	value, source := resolveField("", "", "LANGSTAR_TEST_PRIMARY", "LANGSTAR_TEST_LEGACY")
	if value != "legacy-value" || source != SourceEnv {
		t.Errorf("Expected legacy env fallback, got (%q, %v)", value, source)
	}

	t.Setenv("LANGSTAR_TEST_PRIMARY", "primary-value")
	value, _ = resolveField("", "", "LANGSTAR_TEST_PRIMARY", "LANGSTAR_TEST_LEGACY")
	if value != "primary-value" {
		t.Errorf("Expected primary env to win over legacy, got %q", value)
	}
}

func TestResolvePerField(t *testing.T) {
	clearScopeEnv(t)
	writeConfigFile(t, `
langsmith_api_key = "file-smith-key"
organization_id = "file-org"
`)
	t.Setenv(sdk.EnvGraphAPIKey, "env-graph-key")
	t.Setenv(sdk.EnvWorkspaceID, "env-workspace")

	resolved, err := Resolve("", "flag-workspace")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	// Each field resolves independently from its own highest layer
	if resolved.Auth.SmithAPIKey != "file-smith-key" {
		t.Errorf("Expected smith key from file, got %q", resolved.Auth.SmithAPIKey)
	}
	if resolved.Auth.GraphAPIKey != "env-graph-key" {
		t.Errorf("Expected graph key from env, got %q", resolved.Auth.GraphAPIKey)
	}
	if resolved.Auth.OrganizationID != "file-org" {
		t.Errorf("Expected organization from file, got %q", resolved.Auth.OrganizationID)
	}
	if resolved.Auth.WorkspaceID != "flag-workspace" {
		t.Errorf("Expected workspace from flag over env, got %q", resolved.Auth.WorkspaceID)
	}
	if resolved.WorkspaceSource != SourceFlag {
		t.Errorf("Expected workspace source flag, got %v", resolved.WorkspaceSource)
	}
}

func TestResolveLegacyWorkspaceEnv(t *testing.T) {
	clearScopeEnv(t)
	writeConfigFile(t, "")
	t.Setenv(sdk.EnvWorkspaceIDLegacy, "legacy-workspace")

	resolved, err := Resolve("", "")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if resolved.Auth.WorkspaceID != "legacy-workspace" {
		t.Errorf("Expected legacy workspace env honored, got %q", resolved.Auth.WorkspaceID)
	}
}

func TestImplicitScopeOverlap(t *testing.T) {
	tests := []struct {
		name            string
		orgSource       Source
		workspaceSource Source
		expected        bool
	}{
		{"both from file", SourceFile, SourceFile, true},
		{"file and env mixed", SourceFile, SourceEnv, true},
		{"both from env", SourceEnv, SourceEnv, true},
		{"org from flag", SourceFlag, SourceEnv, false},
		{"workspace from flag", SourceEnv, SourceFlag, false},
		{"org unset", SourceNone, SourceEnv, false},
		{"both unset", SourceNone, SourceNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Resolved{OrgSource: tt.orgSource, WorkspaceSource: tt.workspaceSource}
			if got := r.ImplicitScopeOverlap(); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}
