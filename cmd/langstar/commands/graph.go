// Package commands contains all CLI command definitions for langstar.
//
// This file implements deployment lifecycle commands against the control
// plane. A "graph" here is a hosted graph deployment: created from a GitHub
// repository or an external Docker image, provisioned through revisions, and
// eventually serving a runtime URL that assistant commands target.
//
// DELETION SAFETY:
// The rm command requires typing 'yes' to confirm unless --yes is given.
// Declining happens before any client is constructed, so a declined delete
// performs zero network calls and exits successfully.
package commands

import (
	"fmt"

	"github.com/codekiln/langstar/internal/logging"
	"github.com/spf13/cobra"
)

// Graph command (parent command for deployment operations)
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Manage graph deployments on the control plane",
	Long: `Commands for managing hosted graph deployments.

This command group provides operations for creating, listing, inspecting,
updating, and deleting deployments. Deployments are provisioned through
revisions; a deployment is usable once its status is READY and it has been
assigned a runtime URL.`,
}

// Graph list command
var graphLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List deployments",
	Long: `List graph deployments tracked by the control plane.

Supports filtering by status, deployment type, name substring, and image
version. At most 100 deployments are returned per page.`,
	Example: `  # List all deployments
  langstar graph ls

  # List with live updates
  langstar graph ls --watch

  # Filter by status
  langstar graph ls --status=READY

  # Filter by name substring and type
  langstar graph ls --name-contains=agent --type=prod`,
	Args: cobra.NoArgs,
	// RunE will be set by the main package that imports this
}

// Graph get command
var graphGetCmd = &cobra.Command{
	Use:   "get DEPLOYMENT_ID",
	Short: "Show detailed information for a deployment",
	Long: `Display detailed information for a specific deployment including its
status, runtime URL, and revision pointers. The ID must be a UUID.`,
	Example: `  # Show a deployment
  langstar graph get 123e4567-e89b-12d3-a456-426614174000

  # Output in JSON format
  langstar -o json graph get 123e4567-e89b-12d3-a456-426614174000`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			cmd.Help()
			fmt.Println()
			logging.Error("Invalid arguments: expected 1 deployment ID, got %d", len(args))
			return fmt.Errorf("requires exactly 1 argument (deployment ID)")
		}
		return nil
	},
	// RunE will be set by the main package that imports this
}

// Graph create command
var graphCreateCmd = &cobra.Command{
	Use:   "create --name=NAME [flags]",
	Short: "Create a new deployment",
	Long: `Create a new graph deployment.

For a GitHub source (the default) a repository URL is required, and a GitHub
integration ID is resolved in precedence order: the --integration-id flag,
the configured value, then automatic discovery by scanning installed
integrations for one with access to the repository.

For an external_docker source an image URI is required instead.

With --wait the command polls the deployment until it is READY, backing off
from 10-second to 30-second intervals, and gives up after 30 minutes or when
the deployment enters a terminal failure state.`,
	Example: `  # Create from GitHub and wait until ready
  langstar graph create --name=my-agent \
    --repo-url=https://github.com/codekiln/my-agent --wait

  # Create from a specific branch with secrets
  langstar graph create --name=my-agent \
    --repo-url=https://github.com/codekiln/my-agent \
    --branch=develop --env=OPENAI_API_KEY=sk-... --env=TEAM=ai

  # Create from a Docker image
  langstar graph create --name=my-agent --source=external_docker \
    --image-uri=registry.example.com/my-agent:v1 --deployment-type=prod`,
	Args: cobra.NoArgs,
	// RunE will be set by the main package that imports this
}

// Graph update command
var graphUpdateCmd = &cobra.Command{
	Use:   "update DEPLOYMENT_ID [flags]",
	Short: "Update a deployment's source configuration",
	Long: `Update a deployment's source configuration.

Only the provided sections are sent; a successful update triggers a new
revision that builds and deploys the changed configuration.

With --wait the command polls the new revision until it is DEPLOYED, with
the same interval staging and 30-minute ceiling as create, and reports a
terminal build or deploy failure as an error.`,
	Example: `  # Switch the deployed branch
  langstar graph update 123e4567-e89b-12d3-a456-426614174000 --branch=main

  # Switch branch and wait for the new revision to finish deploying
  langstar graph update 123e4567-e89b-12d3-a456-426614174000 \
    --branch=release --wait

  # Point an external_docker deployment at a new image
  langstar graph update 123e4567-e89b-12d3-a456-426614174000 \
    --image-uri=registry.example.com/my-agent:v2`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			cmd.Help()
			fmt.Println()
			logging.Error("Invalid arguments: expected 1 deployment ID, got %d", len(args))
			return fmt.Errorf("requires exactly 1 argument (deployment ID)")
		}
		return nil
	},
	// RunE will be set by the main package that imports this
}

// Graph revisions command
var graphRevisionsCmd = &cobra.Command{
	Use:   "revisions DEPLOYMENT_ID",
	Short: "List the revisions of a deployment",
	Long: `List the build/deploy revisions of a deployment, newest first.

Useful for tracking an in-flight rollout or diagnosing a failed build.`,
	Example: `  # List revisions
  langstar graph revisions 123e4567-e89b-12d3-a456-426614174000`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			cmd.Help()
			fmt.Println()
			logging.Error("Invalid arguments: expected 1 deployment ID, got %d", len(args))
			return fmt.Errorf("requires exactly 1 argument (deployment ID)")
		}
		return nil
	},
	// RunE will be set by the main package that imports this
}

// Graph rm command
var graphRmCmd = &cobra.Command{
	Use:   "rm DEPLOYMENT_ID [flags]",
	Short: "Delete a deployment",
	Long: `Permanently delete a deployment from the control plane.

This is a hard delete and cannot be undone. Requires typing 'yes' to confirm
unless --yes is given; declining performs no network calls and exits
successfully. The ID must be a UUID.`,
	Example: `  # Delete with confirmation
  langstar graph rm 123e4567-e89b-12d3-a456-426614174000

  # Delete without confirmation
  langstar graph rm 123e4567-e89b-12d3-a456-426614174000 --yes`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			cmd.Help()
			fmt.Println()
			logging.Error("Invalid arguments: expected 1 deployment ID, got %d", len(args))
			return fmt.Errorf("requires exactly 1 argument (deployment ID)")
		}
		return nil
	},
	// RunE will be set by the main package that imports this
}

// SetupGraphCommands initializes graph commands and their relationships
func SetupGraphCommands() {
	graphCmd.AddCommand(graphLsCmd)
	graphCmd.AddCommand(graphGetCmd)
	graphCmd.AddCommand(graphCreateCmd)
	graphCmd.AddCommand(graphUpdateCmd)
	graphCmd.AddCommand(graphRevisionsCmd)
	graphCmd.AddCommand(graphRmCmd)
}

// GetGraphCommands returns the graph command structures for handler assignment
func GetGraphCommands() (*cobra.Command, *cobra.Command, *cobra.Command, *cobra.Command, *cobra.Command, *cobra.Command) {
	return graphLsCmd, graphGetCmd, graphCreateCmd, graphUpdateCmd, graphRevisionsCmd, graphRmCmd
}
