// Package config provides configuration management for the langstar CLI.
package config

import "github.com/codekiln/langstar/internal/version"

// Version returns the current langstar CLI version from the centralized version package
var Version = version.LangstarVersion

// Global holds the global CLI configuration
var Global struct {
	LogLevel string // Log level for CLI operations
	Timeout  int    // Request timeout in seconds
	Output   string // Output format: table, json
}

// Prompt holds the prompt command configuration
var Prompt struct {
	Limit          int      // Maximum number of prompts to fetch
	Offset         int      // Number of prompts to skip
	Public         bool     // Show public prompts when scoped listing defaults to private
	OrganizationID string   // Per-call organization scope override
	WorkspaceID    string   // Per-call workspace scope override
	Owner          string   // Prompt owner for push
	Repo           string   // Prompt repository name for push
	Template       string   // Template text to push
	InputVariables []string // Template input variable names
	TemplateFormat string   // Template format (f-string, mustache)
	Description    string   // Repository description when creating on push
	PublicRepo     bool     // Create the repository as public on push
}

// Assistant holds the assistant command configuration
var Assistant struct {
	Deployment string // Deployment name or ID hosting the assistants (required)
	Limit      int    // Maximum number of assistants to fetch
	Offset     int    // Number of assistants to skip
	Watch      bool   // Enable watch mode for live updates
	GraphID    string // Graph ID for assistant creation
	Name       string // Assistant name
	ConfigJSON string // Assistant configuration as inline JSON
	ConfigFile string // Assistant configuration from a JSON file
	Force      bool   // Skip the deletion confirmation prompt
}

// Graph holds the graph (deployment) command configuration
var Graph struct {
	Limit          int      // Maximum number of deployments to fetch
	Offset         int      // Number of deployments to skip
	StatusFilter   string   // Filter deployments by status
	TypeFilter     string   // Filter deployments by deployment type
	NameContains   string   // Filter deployments by name substring
	ImageVersion   string   // Filter deployments by image version
	Watch          bool     // Enable watch mode for live updates
	Name           string   // Deployment name for creation
	Source         string   // Deployment source: github, external_docker
	RepoURL        string   // GitHub repository URL for github source
	Branch         string   // Git branch to deploy
	IntegrationID  string   // GitHub integration ID (auto-discovered when empty)
	ConfigPath     string   // Path to the graph config file inside the repo
	ImageURI       string   // Docker image for external_docker source
	DeploymentType string   // Deployment tier: dev_free, dev, prod
	Env            []string // Secret environment variables (KEY=VALUE)
	Wait           bool     // Block until the deployment is READY
	Yes            bool     // Skip the deletion confirmation prompt

	// Update fields are separate from the create fields above. pflag writes
	// a flag's default into the bound variable at registration time, so
	// binding update's --branch/--config-path to the same fields would wipe
	// out create's "main"/"langgraph.json" defaults.
	UpdateBranch     string // New git branch to roll out
	UpdateConfigPath string // New graph config path to roll out
	UpdateImageURI   string // New Docker image to roll out
	UpdateWait       bool   // Block until the new revision is DEPLOYED
}
