// Package commands contains all CLI command definitions for langstar.
//
// This file implements assistant management commands. Assistants live inside
// one specific graph deployment, so every subcommand requires --deployment
// naming the deployment by name or ID. The deployment's runtime URL is
// resolved through the control plane before any assistant call is made, and
// assistant calls authenticate with the graph API key only.
//
// DELETION SAFETY:
// The rm command prompts for confirmation before deleting. Declining is a
// successful no-op and happens before any network traffic.
package commands

import (
	"fmt"

	"github.com/codekiln/langstar/internal/logging"
	"github.com/spf13/cobra"
)

// Assistant command (parent command for assistant operations)
var assistantCmd = &cobra.Command{
	Use:   "assistant",
	Short: "Manage assistants inside a graph deployment",
	Long: `Commands for managing assistants inside one graph deployment.

Assistants are configured instances of a graph. Every subcommand requires
--deployment with the deployment name or ID; the deployment's runtime URL is
resolved through the control plane before the assistant operation runs.`,
}

// Assistant list command
var assistantLsCmd = &cobra.Command{
	Use:   "ls --deployment=NAME_OR_ID",
	Short: "List assistants in a deployment",
	Long: `List all assistants inside one graph deployment.

Shows assistant names, graph IDs, and update times for monitoring and
management purposes.`,
	Example: `  # List assistants in a deployment
  langstar assistant ls --deployment=my-agent

  # List with live updates
  langstar assistant ls --deployment=my-agent --watch

  # Page through results
  langstar assistant ls --deployment=my-agent --limit=50 --offset=50`,
	Args: cobra.NoArgs,
	// RunE will be set by the main package that imports this
}

// Assistant search command
var assistantSearchCmd = &cobra.Command{
	Use:   "search QUERY --deployment=NAME_OR_ID",
	Short: "Search assistants in a deployment",
	Long:  `Search assistants inside one graph deployment by query string.`,
	Example: `  # Search assistants by name
  langstar assistant search "support" --deployment=my-agent`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			cmd.Help()
			fmt.Println()
			logging.Error("Invalid arguments: expected 1 search query, got %d", len(args))
			return fmt.Errorf("requires exactly 1 argument (search query)")
		}
		return nil
	},
	// RunE will be set by the main package that imports this
}

// Assistant get command
var assistantGetCmd = &cobra.Command{
	Use:   "get ASSISTANT_ID --deployment=NAME_OR_ID",
	Short: "Show detailed information for an assistant",
	Long: `Display detailed information for a specific assistant including its
configuration and metadata.`,
	Example: `  # Show an assistant
  langstar assistant get a1b2c3d4-0000-1111-2222-333344445555 --deployment=my-agent

  # Output in JSON format
  langstar -o json assistant get a1b2c3d4-0000-1111-2222-333344445555 --deployment=my-agent`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			cmd.Help()
			fmt.Println()
			logging.Error("Invalid arguments: expected 1 assistant ID, got %d", len(args))
			return fmt.Errorf("requires exactly 1 argument (assistant ID)")
		}
		return nil
	},
	// RunE will be set by the main package that imports this
}

// Assistant create command
var assistantCreateCmd = &cobra.Command{
	Use:   "create --deployment=NAME_OR_ID --graph-id=GRAPH_ID [flags]",
	Short: "Create a new assistant in a deployment",
	Long: `Create a new assistant for a graph inside one deployment.

The assistant configuration can be provided inline as JSON with --config or
from a file with --config-file.`,
	Example: `  # Create an assistant
  langstar assistant create --deployment=my-agent --graph-id=agent --name=support-bot

  # Create with inline configuration
  langstar assistant create --deployment=my-agent --graph-id=agent \
    --config='{"configurable":{"model":"large"}}'`,
	Args: cobra.NoArgs,
	// RunE will be set by the main package that imports this
}

// Assistant update command
var assistantUpdateCmd = &cobra.Command{
	Use:   "update ASSISTANT_ID --deployment=NAME_OR_ID [flags]",
	Short: "Update an existing assistant",
	Long: `Apply a partial update to an existing assistant.

Only the provided fields are changed; everything else is left alone.`,
	Example: `  # Rename an assistant
  langstar assistant update a1b2c3d4-0000-1111-2222-333344445555 \
    --deployment=my-agent --name=renamed-bot

  # Replace its configuration from a file
  langstar assistant update a1b2c3d4-0000-1111-2222-333344445555 \
    --deployment=my-agent --config-file=config.json`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			cmd.Help()
			fmt.Println()
			logging.Error("Invalid arguments: expected 1 assistant ID, got %d", len(args))
			return fmt.Errorf("requires exactly 1 argument (assistant ID)")
		}
		return nil
	},
	// RunE will be set by the main package that imports this
}

// Assistant rm command
var assistantRmCmd = &cobra.Command{
	Use:   "rm ASSISTANT_ID --deployment=NAME_OR_ID [flags]",
	Short: "Delete an assistant from a deployment",
	Long: `Delete an assistant from a graph deployment.

Prompts for confirmation unless --force is given. Declining the confirmation
is a successful no-op and performs no network calls.`,
	Example: `  # Delete an assistant (with confirmation)
  langstar assistant rm a1b2c3d4-0000-1111-2222-333344445555 --deployment=my-agent

  # Delete without confirmation
  langstar assistant rm a1b2c3d4-0000-1111-2222-333344445555 --deployment=my-agent --force`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			cmd.Help()
			fmt.Println()
			logging.Error("Invalid arguments: expected 1 assistant ID, got %d", len(args))
			return fmt.Errorf("requires exactly 1 argument (assistant ID)")
		}
		return nil
	},
	// RunE will be set by the main package that imports this
}

// SetupAssistantCommands initializes assistant commands and their relationships
func SetupAssistantCommands() {
	assistantCmd.AddCommand(assistantLsCmd)
	assistantCmd.AddCommand(assistantSearchCmd)
	assistantCmd.AddCommand(assistantGetCmd)
	assistantCmd.AddCommand(assistantCreateCmd)
	assistantCmd.AddCommand(assistantUpdateCmd)
	assistantCmd.AddCommand(assistantRmCmd)
}

// GetAssistantCommands returns the assistant command structures for handler assignment
func GetAssistantCommands() (*cobra.Command, *cobra.Command, *cobra.Command, *cobra.Command, *cobra.Command, *cobra.Command) {
	return assistantLsCmd, assistantSearchCmd, assistantGetCmd, assistantCreateCmd, assistantUpdateCmd, assistantRmCmd
}
