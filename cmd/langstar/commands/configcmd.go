// Package commands contains all CLI command definitions for langstar.
//
// This file implements the config command group for the persistent TOML
// configuration file. API keys and scope identifiers stored there apply to
// every invocation without needing flags or environment variables, subject
// to the precedence order: flags beat the file, the file beats environment
// variables.
package commands

import (
	"fmt"

	"github.com/codekiln/langstar/internal/logging"
	"github.com/spf13/cobra"
)

// Config command (parent command for configuration operations)
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage persistent CLI configuration",
	Long: `Commands for the persistent langstar configuration file.

The file stores API keys, organization and workspace scope, the GitHub
integration ID, and the preferred output format. Values set here are used
whenever the corresponding flag or environment variable is absent.`,
}

// Config show command
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current configuration",
	Long: `Display the configuration file contents with API keys redacted,
along with the file location.`,
	Example: `  # Show the configuration
  langstar config show`,
	Args: cobra.NoArgs,
	// RunE will be set by the main package that imports this
}

// Config set command
var configSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Set a configuration value",
	Long: `Set one configuration value and write it back to the config file.
Unrelated fields are preserved.

Valid keys: langsmith_api_key, langgraph_api_key, organization_id,
workspace_id, github_integration_id, output_format.`,
	Example: `  # Store an API key
  langstar config set langsmith_api_key ls__...

  # Set the default workspace
  langstar config set workspace_id 11111111-2222-3333-4444-555555555555

  # Prefer JSON output
  langstar config set output_format json`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 2 {
			cmd.Help()
			fmt.Println()
			logging.Error("Invalid arguments: expected KEY VALUE, got %d arguments", len(args))
			return fmt.Errorf("requires exactly 2 arguments (key and value)")
		}
		return nil
	},
	// RunE will be set by the main package that imports this
}

// SetupConfigCommands initializes config commands and their relationships
func SetupConfigCommands() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}

// GetConfigCommands returns the config command structures for handler assignment
func GetConfigCommands() (*cobra.Command, *cobra.Command) {
	return configShowCmd, configSetCmd
}
