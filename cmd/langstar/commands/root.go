// Package commands provides the complete command tree implementation for langstar.
//
// This package defines the hierarchical command structure for the langstar CLI
// tool, implementing a resource-based command architecture similar to kubectl.
// Commands are organized into logical groups that match the three services
// behind the CLI.
//
// COMMAND STRUCTURE:
//   - prompt: Prompt hub operations (ls, get, search, push)
//   - assistant: Deployment-scoped assistant management (ls, search, get, create, update, rm)
//   - graph: Deployment lifecycle on the control plane (ls, get, create, update, revisions, rm)
//   - org: Organization and workspace discovery (info, workspaces)
//   - config: Persistent CLI configuration (show, set)
//
// All commands follow consistent patterns with standardized flag handling,
// error messages, and output formatting.
package commands

import (
	"github.com/spf13/cobra"
)

// Root command
var RootCmd = &cobra.Command{
	Use:   "langstar",
	Short: "CLI tool for managing prompts, assistants, and graph deployments",
	Long: `langstar is a command-line tool for working with versioned prompt
templates, hosted graph deployments, and the assistants running inside them.

Similar to kubectl for Kubernetes, langstar lets you browse and push prompts,
provision and monitor deployments, and manage per-deployment assistants.`,
	SilenceUsage: true,
	Example: `  # List prompts in your workspace
  langstar prompt ls

  # Search public prompts
  langstar prompt search "summarization" --public

  # List deployments
  langstar graph ls

  # Create a deployment from GitHub and wait until it is ready
  langstar graph create --name=my-agent --repo-url=https://github.com/me/agent --wait

  # List assistants inside a deployment
  langstar assistant ls --deployment=my-agent

  # Output in JSON format
  langstar --output=json graph ls
  langstar -o json prompt ls`,
}

// SetupCommands initializes all commands and their relationships
func SetupCommands() {
	// Add all top-level commands to root
	RootCmd.AddCommand(promptCmd)
	RootCmd.AddCommand(assistantCmd)
	RootCmd.AddCommand(graphCmd)
	RootCmd.AddCommand(orgCmd)
	RootCmd.AddCommand(configCmd)
}

// SetupGlobalFlags configures all global persistent flags
func SetupGlobalFlags(rootCmd *cobra.Command, logLevelPtr *string, timeoutPtr *int, outputPtr *string) {
	rootCmd.PersistentFlags().StringVar(logLevelPtr, "log-level", "ERROR",
		"Log level: DEBUG, INFO, WARN, ERROR")
	rootCmd.PersistentFlags().IntVar(timeoutPtr, "timeout", 30,
		"Request timeout in seconds")
	rootCmd.PersistentFlags().StringVarP(outputPtr, "output", "o", "table",
		"Output format: table, json")
}
