// Package commands contains all CLI command definitions for langstar.
//
// This file implements organization and workspace discovery commands against
// the prompt hub. These are read-only lookups used to find the IDs that feed
// the scope configuration.
package commands

import (
	"github.com/spf13/cobra"
)

// Org command (parent command for organization operations)
var orgCmd = &cobra.Command{
	Use:   "org",
	Short: "Inspect the current organization and its workspaces",
	Long: `Commands for inspecting the organization your API key belongs to.

Useful for discovering the organization and workspace IDs to put into the
scope configuration.`,
}

// Org info command
var orgInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the current organization",
	Long:  `Display the organization the configured API key belongs to.`,
	Example: `  # Show the current organization
  langstar org info

  # Output in JSON format
  langstar -o json org info`,
	Args: cobra.NoArgs,
	// RunE will be set by the main package that imports this
}

// Org workspaces command
var orgWorkspacesCmd = &cobra.Command{
	Use:   "workspaces",
	Short: "List workspaces visible to the API key",
	Long:  `List the workspaces visible to the configured API key.`,
	Example: `  # List workspaces
  langstar org workspaces`,
	Args: cobra.NoArgs,
	// RunE will be set by the main package that imports this
}

// SetupOrgCommands initializes org commands and their relationships
func SetupOrgCommands() {
	orgCmd.AddCommand(orgInfoCmd)
	orgCmd.AddCommand(orgWorkspacesCmd)
}

// GetOrgCommands returns the org command structures for handler assignment
func GetOrgCommands() (*cobra.Command, *cobra.Command) {
	return orgInfoCmd, orgWorkspacesCmd
}
