// Package sdk provides the API client layer for the langstar CLI.
//
// This file holds the credential bundle shared by all service clients.
// Keys are optional at construction time: a client built with no keys at
// all is valid, and the missing-key check only fires when a request for
// the corresponding service is actually built. This lets users run
// prompt-hub commands with only a prompt-hub key configured and vice versa.
package sdk

// Environment variable names for credentials and scope.
const (
	EnvSmithAPIKey        = "LANGSMITH_API_KEY"
	EnvGraphAPIKey        = "LANGGRAPH_API_KEY"
	EnvOrganizationID     = "LANGSMITH_ORGANIZATION_ID"
	EnvWorkspaceID        = "LANGSMITH_WORKSPACE_ID"
	EnvWorkspaceIDLegacy  = "LANGCHAIN_WORKSPACE_ID"
	EnvGitHubIntegration  = "LANGGRAPH_GITHUB_INTEGRATION_ID"
)

// AuthConfig carries API keys and scope identifiers for the three services.
// All fields are optional; requests fail with AuthError only when the key
// their service needs is absent.
type AuthConfig struct {
	// SmithAPIKey authenticates against the prompt hub and the control
	// plane (sent as x-api-key and X-Api-Key respectively).
	SmithAPIKey string
	// GraphAPIKey authenticates against the graph runtime (x-api-key).
	GraphAPIKey string
	// OrganizationID scopes prompt-hub requests (x-organization-id).
	OrganizationID string
	// WorkspaceID scopes prompt-hub and control-plane requests (X-Tenant-Id).
	WorkspaceID string
}

// RequireSmithKey returns the prompt-hub key or an AuthError when unset.
func (a AuthConfig) RequireSmithKey() (string, error) {
	if a.SmithAPIKey == "" {
		return "", &AuthError{Service: "prompt hub", EnvVar: EnvSmithAPIKey}
	}
	return a.SmithAPIKey, nil
}

// RequireGraphKey returns the graph-runtime key or an AuthError when unset.
func (a AuthConfig) RequireGraphKey() (string, error) {
	if a.GraphAPIKey == "" {
		return "", &AuthError{Service: "graph runtime", EnvVar: EnvGraphAPIKey}
	}
	return a.GraphAPIKey, nil
}
