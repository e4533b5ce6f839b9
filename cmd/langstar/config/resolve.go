// Package config provides configuration management for the langstar CLI.
//
// This file resolves the effective credentials and scope for a command from
// three layers, highest precedence first: CLI flags, the config file, and
// environment variables. Resolution is per-field with no partial merging -
// each field takes its value from the highest layer that provides one, and
// the layers below are ignored for that field.
//
// The resolver also remembers WHERE each scope value came from. When both an
// organization and a workspace end up set from implicit sources (file or
// environment rather than explicit flags), commands print a one-line stderr
// advisory, since the narrower workspace scope is what the prompt hub will
// effectively use.
package config

import (
	"os"

	"github.com/codekiln/langstar/internal/sdk"
)

// Source records which layer supplied a resolved value.
type Source int

const (
	SourceNone Source = iota
	SourceFlag
	SourceFile
	SourceEnv
)

// Resolved is the effective configuration bundle for one command invocation.
type Resolved struct {
	Auth          sdk.AuthConfig
	IntegrationID string
	OutputFormat  string

	// Scope provenance, for the implicit-scope advisory.
	OrgSource       Source
	WorkspaceSource Source
}

// resolveField picks a value by precedence: flag > file > env.
func resolveField(flagValue, fileValue string, envVars ...string) (string, Source) {
	if flagValue != "" {
		return flagValue, SourceFlag
	}
	if fileValue != "" {
		return fileValue, SourceFile
	}
	for _, name := range envVars {
		if v := os.Getenv(name); v != "" {
			return v, SourceEnv
		}
	}
	return "", SourceNone
}

// Resolve builds the effective configuration for a command. flagOrg and
// flagWorkspace are the per-command scope flag values (empty when the flags
// were not given).
func Resolve(flagOrg, flagWorkspace string) (Resolved, error) {
	file, err := LoadFile()
	if err != nil {
		return Resolved{}, err
	}

	var r Resolved

	smithKey, _ := resolveField("", file.SmithAPIKey, sdk.EnvSmithAPIKey)
	graphKey, _ := resolveField("", file.GraphAPIKey, sdk.EnvGraphAPIKey)

	orgID, orgSource := resolveField(flagOrg, file.OrganizationID, sdk.EnvOrganizationID)
	workspaceID, workspaceSource := resolveField(flagWorkspace, file.WorkspaceID,
		sdk.EnvWorkspaceID, sdk.EnvWorkspaceIDLegacy)

	integrationID, _ := resolveField("", file.IntegrationID, sdk.EnvGitHubIntegration)
	outputFormat, _ := resolveField("", file.OutputFormat, "LANGSTAR_OUTPUT_FORMAT")

	r.Auth = sdk.AuthConfig{
		SmithAPIKey:    smithKey,
		GraphAPIKey:    graphKey,
		OrganizationID: orgID,
		WorkspaceID:    workspaceID,
	}
	r.IntegrationID = integrationID
	r.OutputFormat = outputFormat
	r.OrgSource = orgSource
	r.WorkspaceSource = workspaceSource
	return r, nil
}

// ImplicitScopeOverlap reports whether both organization and workspace scope
// were resolved from implicit sources (config file or environment) rather
// than explicit flags. Commands use this to warn that the workspace scope is
// the narrower of the two.
func (r Resolved) ImplicitScopeOverlap() bool {
	orgImplicit := r.OrgSource == SourceFile || r.OrgSource == SourceEnv
	workspaceImplicit := r.WorkspaceSource == SourceFile || r.WorkspaceSource == SourceEnv
	return orgImplicit && workspaceImplicit
}
