// Package main provides the entry point for the langstar CLI tool.
//
// This package implements the main executable for working with the three
// services behind langstar: the prompt hub for versioned prompt templates,
// the control plane for graph deployment lifecycle, and the per-deployment
// graph runtime hosting assistants.
//
// CLI ARCHITECTURE:
// The main package orchestrates the complete CLI system including:
//   - Command Structure: Hierarchical resource-based commands (prompt, assistant, graph)
//   - Handler Integration: Command execution with API client communication
//   - Flag Management: Global and command-specific configuration options
//   - Configuration Binding: Flag > config file > environment precedence
//
// COMMAND CATEGORIES:
//   - Prompt Commands: Prompt hub browsing, search, and the push pipeline
//   - Assistant Commands: Deployment-scoped assistant CRUD via the graph runtime
//   - Graph Commands: Deployment provisioning, monitoring, and revision history
//   - Org Commands: Organization and workspace discovery
//   - Config Commands: Persistent configuration file management
//
// INITIALIZATION FLOW:
// 1. Command structure setup with hierarchical organization
// 2. Flag configuration for global and command-specific options
// 3. Handler assignment linking commands to API operations
// 4. Configuration validation and CLI state management
// 5. Command execution with proper error handling and exit codes
//
// The CLI follows kubectl-style patterns with consistent interfaces and
// comprehensive help text across all resource groups.
package main

import (
	"os"

	"github.com/codekiln/langstar/cmd/langstar/commands"
	"github.com/codekiln/langstar/cmd/langstar/config"
	"github.com/codekiln/langstar/cmd/langstar/handlers"
	"github.com/codekiln/langstar/internal/logging"
	"github.com/spf13/cobra"
)

func init() {
	// Route stray standard-library log output from dependencies through the
	// unified logging pipeline at DEBUG level
	logging.RedirectStandardLog(logging.NewLevelWriter("DEBUG", "stdlib"))

	// Get root command from commands package
	rootCmd := commands.RootCmd

	// Set version and validation
	rootCmd.Version = config.Version
	rootCmd.PersistentPreRunE = config.ValidateGlobalFlags

	// Setup all command structures
	commands.SetupCommands()
	commands.SetupPromptCommands()
	commands.SetupAssistantCommands()
	commands.SetupGraphCommands()
	commands.SetupOrgCommands()
	commands.SetupConfigCommands()

	// Setup global flags
	commands.SetupGlobalFlags(rootCmd, &config.Global.LogLevel,
		&config.Global.Timeout, &config.Global.Output)

	// Setup per-command flags
	setupPromptFlags()
	setupAssistantFlags()
	setupGraphFlags()

	// Setup command handlers
	setupCommandHandlers()
}

// setupPromptFlags configures flags for prompt commands
func setupPromptFlags() {
	promptLsCmd, promptGetCmd, promptSearchCmd, promptPushCmd := commands.GetPromptCommands()

	// Scope flags shared by every prompt subcommand
	for _, cmd := range []*cobra.Command{promptLsCmd, promptGetCmd, promptSearchCmd, promptPushCmd} {
		cmd.Flags().StringVar(&config.Prompt.OrganizationID, "organization-id", "",
			"Organization scope for this call")
		cmd.Flags().StringVar(&config.Prompt.WorkspaceID, "workspace-id", "",
			"Workspace scope for this call")
	}

	// Listing and search flags
	promptLsCmd.Flags().IntVar(&config.Prompt.Limit, "limit", 20, "Maximum number of prompts to fetch")
	promptLsCmd.Flags().IntVar(&config.Prompt.Offset, "offset", 0, "Number of prompts to skip")
	promptLsCmd.Flags().BoolVar(&config.Prompt.Public, "public", false, "Show public prompts")
	promptSearchCmd.Flags().IntVar(&config.Prompt.Limit, "limit", 20, "Maximum number of prompts to fetch")
	promptSearchCmd.Flags().BoolVar(&config.Prompt.Public, "public", false, "Search public prompts")

	// Push flags
	promptPushCmd.Flags().StringVar(&config.Prompt.Owner, "owner", "", "Prompt owner handle")
	promptPushCmd.Flags().StringVar(&config.Prompt.Repo, "repo", "", "Prompt repository name")
	promptPushCmd.Flags().StringVar(&config.Prompt.Template, "template", "", "Template text to push")
	promptPushCmd.Flags().StringSliceVar(&config.Prompt.InputVariables, "input-variables", nil,
		"Template input variable names (comma-separated or repeated)")
	promptPushCmd.Flags().StringVar(&config.Prompt.TemplateFormat, "template-format", "f-string",
		"Template format: f-string, mustache")
	promptPushCmd.Flags().StringVar(&config.Prompt.Description, "description", "",
		"Repository description when creating on push")
	promptPushCmd.Flags().BoolVar(&config.Prompt.PublicRepo, "public-repo", false,
		"Create the repository as public")
	promptPushCmd.MarkFlagRequired("owner")
	promptPushCmd.MarkFlagRequired("repo")
	promptPushCmd.MarkFlagRequired("template")
}

// setupAssistantFlags configures flags for assistant commands
func setupAssistantFlags() {
	assistantLsCmd, assistantSearchCmd, assistantGetCmd, assistantCreateCmd, assistantUpdateCmd, assistantRmCmd := commands.GetAssistantCommands()

	// Every assistant subcommand targets one deployment
	for _, cmd := range []*cobra.Command{assistantLsCmd, assistantSearchCmd, assistantGetCmd,
		assistantCreateCmd, assistantUpdateCmd, assistantRmCmd} {
		cmd.Flags().StringVar(&config.Assistant.Deployment, "deployment", "",
			"Deployment name or ID hosting the assistants")
		cmd.MarkFlagRequired("deployment")
	}

	assistantLsCmd.Flags().IntVar(&config.Assistant.Limit, "limit", 20, "Maximum number of assistants to fetch")
	assistantLsCmd.Flags().IntVar(&config.Assistant.Offset, "offset", 0, "Number of assistants to skip")
	assistantLsCmd.Flags().BoolVarP(&config.Assistant.Watch, "watch", "w", false, "Watch for live updates")
	assistantSearchCmd.Flags().IntVar(&config.Assistant.Limit, "limit", 20, "Maximum number of assistants to fetch")

	assistantCreateCmd.Flags().StringVar(&config.Assistant.GraphID, "graph-id", "", "Graph ID the assistant runs")
	assistantCreateCmd.Flags().StringVar(&config.Assistant.Name, "name", "", "Assistant name")
	assistantCreateCmd.Flags().StringVar(&config.Assistant.ConfigJSON, "config", "", "Assistant configuration as inline JSON")
	assistantCreateCmd.Flags().StringVar(&config.Assistant.ConfigFile, "config-file", "", "Assistant configuration from a JSON file")
	assistantCreateCmd.MarkFlagRequired("graph-id")

	assistantUpdateCmd.Flags().StringVar(&config.Assistant.GraphID, "graph-id", "", "New graph ID")
	assistantUpdateCmd.Flags().StringVar(&config.Assistant.Name, "name", "", "New assistant name")
	assistantUpdateCmd.Flags().StringVar(&config.Assistant.ConfigJSON, "config", "", "New configuration as inline JSON")
	assistantUpdateCmd.Flags().StringVar(&config.Assistant.ConfigFile, "config-file", "", "New configuration from a JSON file")

	assistantRmCmd.Flags().BoolVar(&config.Assistant.Force, "force", false, "Skip the confirmation prompt")
}

// setupGraphFlags configures flags for graph deployment commands
func setupGraphFlags() {
	graphLsCmd, _, graphCreateCmd, graphUpdateCmd, _, graphRmCmd := commands.GetGraphCommands()

	// Graph list flags
	graphLsCmd.Flags().IntVar(&config.Graph.Limit, "limit", 20, "Maximum number of deployments to fetch")
	graphLsCmd.Flags().IntVar(&config.Graph.Offset, "offset", 0, "Number of deployments to skip")
	graphLsCmd.Flags().StringVar(&config.Graph.StatusFilter, "status", "", "Filter by deployment status")
	graphLsCmd.Flags().StringVar(&config.Graph.TypeFilter, "type", "", "Filter by deployment type")
	graphLsCmd.Flags().StringVar(&config.Graph.NameContains, "name-contains", "", "Filter by name substring")
	graphLsCmd.Flags().StringVar(&config.Graph.ImageVersion, "image-version", "", "Filter by image version")
	graphLsCmd.Flags().BoolVarP(&config.Graph.Watch, "watch", "w", false, "Watch for live updates")

	// Graph create flags
	graphCreateCmd.Flags().StringVar(&config.Graph.Name, "name", "", "Deployment name")
	graphCreateCmd.Flags().StringVar(&config.Graph.Source, "source", "github",
		"Deployment source: github, external_docker")
	graphCreateCmd.Flags().StringVar(&config.Graph.RepoURL, "repo-url", "", "GitHub repository URL")
	graphCreateCmd.Flags().StringVar(&config.Graph.Branch, "branch", "main", "Git branch to deploy")
	graphCreateCmd.Flags().StringVar(&config.Graph.IntegrationID, "integration-id", "",
		"GitHub integration ID (auto-discovered if not provided)")
	graphCreateCmd.Flags().StringVar(&config.Graph.ConfigPath, "config-path", "langgraph.json",
		"Path to the graph config file inside the repository")
	graphCreateCmd.Flags().StringVar(&config.Graph.ImageURI, "image-uri", "",
		"Docker image for external_docker source")
	graphCreateCmd.Flags().StringVar(&config.Graph.DeploymentType, "deployment-type", "dev_free",
		"Deployment tier: dev_free, dev, prod")
	graphCreateCmd.Flags().StringSliceVar(&config.Graph.Env, "env", nil,
		"Secret environment variables (KEY=VALUE, repeatable)")
	graphCreateCmd.Flags().BoolVar(&config.Graph.Wait, "wait", false,
		"Block until the deployment is READY")
	graphCreateCmd.MarkFlagRequired("name")

	// Graph update flags. Bound to dedicated fields: registering a flag
	// writes its default into the bound variable, so reusing the create
	// fields here would reset create's defaults to empty strings.
	graphUpdateCmd.Flags().StringVar(&config.Graph.UpdateBranch, "branch", "", "New git branch")
	graphUpdateCmd.Flags().StringVar(&config.Graph.UpdateConfigPath, "config-path", "", "New graph config path")
	graphUpdateCmd.Flags().StringVar(&config.Graph.UpdateImageURI, "image-uri", "", "New Docker image")
	graphUpdateCmd.Flags().BoolVar(&config.Graph.UpdateWait, "wait", false,
		"Block until the new revision is DEPLOYED")

	// Graph rm flags
	graphRmCmd.Flags().BoolVarP(&config.Graph.Yes, "yes", "y", false, "Skip the confirmation prompt")
}

// setupCommandHandlers assigns RunE functions to commands
func setupCommandHandlers() {
	promptLsCmd, promptGetCmd, promptSearchCmd, promptPushCmd := commands.GetPromptCommands()
	promptLsCmd.RunE = handlers.HandlePromptList
	promptGetCmd.RunE = handlers.HandlePromptGet
	promptSearchCmd.RunE = handlers.HandlePromptSearch
	promptPushCmd.RunE = handlers.HandlePromptPush

	assistantLsCmd, assistantSearchCmd, assistantGetCmd, assistantCreateCmd, assistantUpdateCmd, assistantRmCmd := commands.GetAssistantCommands()
	assistantLsCmd.RunE = handlers.HandleAssistantList
	assistantSearchCmd.RunE = handlers.HandleAssistantSearch
	assistantGetCmd.RunE = handlers.HandleAssistantGet
	assistantCreateCmd.RunE = handlers.HandleAssistantCreate
	assistantUpdateCmd.RunE = handlers.HandleAssistantUpdate
	assistantRmCmd.RunE = handlers.HandleAssistantDelete

	graphLsCmd, graphGetCmd, graphCreateCmd, graphUpdateCmd, graphRevisionsCmd, graphRmCmd := commands.GetGraphCommands()
	graphLsCmd.RunE = handlers.HandleGraphList
	graphGetCmd.RunE = handlers.HandleGraphGet
	graphCreateCmd.RunE = handlers.HandleGraphCreate
	graphUpdateCmd.RunE = handlers.HandleGraphUpdate
	graphRevisionsCmd.RunE = handlers.HandleGraphRevisions
	graphRmCmd.RunE = handlers.HandleGraphDelete

	orgInfoCmd, orgWorkspacesCmd := commands.GetOrgCommands()
	orgInfoCmd.RunE = handlers.HandleOrgInfo
	orgWorkspacesCmd.RunE = handlers.HandleOrgWorkspaces

	configShowCmd, configSetCmd := commands.GetConfigCommands()
	configShowCmd.RunE = handlers.HandleConfigShow
	configSetCmd.RunE = handlers.HandleConfigSet
}

// main is the main entry point
func main() {
	if err := commands.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
