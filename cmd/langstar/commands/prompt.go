// Package commands contains all CLI command definitions for langstar.
//
// This file implements prompt hub commands for browsing, inspecting, and
// publishing versioned prompt templates. Listing and searching support
// scope flags that narrow results to an organization or workspace, and a
// visibility filter applied client-side after fetching.
//
// VISIBILITY SEMANTICS:
// When an organization or workspace scope is in effect, listings default to
// private prompts (your own); --public switches to public ones. Without any
// scope the listing shows everything. The visibility filter runs on the
// fetched page, so a filtered listing can return fewer items than --limit.
package commands

import (
	"fmt"

	"github.com/codekiln/langstar/internal/logging"
	"github.com/spf13/cobra"
)

// Prompt command (parent command for prompt hub operations)
var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Manage versioned prompt templates in the prompt hub",
	Long: `Commands for working with the prompt hub.

This command group provides operations for listing, searching, inspecting,
and publishing versioned prompt templates. Prompts are identified by an
"owner/name" handle and versioned through commits.`,
}

// Prompt list command
var promptLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List prompts from the prompt hub",
	Long: `List prompts from the prompt hub.

With an organization or workspace scope in effect the listing defaults to
your private prompts; add --public to list public ones instead. Without any
scope all prompts are listed. The visibility filter is applied after the
page is fetched, so fewer than --limit entries may be shown.`,
	Example: `  # List prompts in the configured scope
  langstar prompt ls

  # List public prompts
  langstar prompt ls --public

  # Page through results
  langstar prompt ls --limit=50 --offset=50

  # List prompts in a specific workspace
  langstar prompt ls --workspace-id=11111111-2222-3333-4444-555555555555`,
	Args: cobra.NoArgs,
	// RunE will be set by the main package that imports this
}

// Prompt get command
var promptGetCmd = &cobra.Command{
	Use:   "get OWNER/NAME",
	Short: "Show a single prompt with its manifest",
	Long: `Display a single prompt from the prompt hub including its latest
manifest, description, and usage counters.`,
	Example: `  # Show a prompt by handle
  langstar prompt get codekiln/summarizer

  # Output in JSON format
  langstar -o json prompt get codekiln/summarizer`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			cmd.Help()
			fmt.Println()
			logging.Error("Invalid arguments: expected 1 prompt handle, got %d", len(args))
			return fmt.Errorf("requires exactly 1 argument (prompt handle as owner/name)")
		}
		return nil
	},
	// RunE will be set by the main package that imports this
}

// Prompt search command
var promptSearchCmd = &cobra.Command{
	Use:   "search QUERY",
	Short: "Search prompts by query string",
	Long: `Search the prompt hub by query string.

Uses the same endpoint as listing with a query parameter added, and the same
client-side visibility filtering rules.`,
	Example: `  # Search prompts
  langstar prompt search "summarization"

  # Search public prompts only
  langstar prompt search "rag pipeline" --public`,
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

// Prompt push command
var promptPushCmd = &cobra.Command{
	Use:   "push --owner=OWNER --repo=NAME --template=TEMPLATE [flags]",
	Short: "Push a new version of a prompt template",
	Long: `Push a new version (commit) of a prompt template to the hub.

When no organization scope is configured, the current organization is looked
up automatically. When the target repository does not exist yet it is
created first. Both preparatory steps are best-effort: a failure is reported
as a warning and the push itself is still attempted.`,
	Example: `  # Push a template with one input variable
  langstar prompt push --owner=codekiln --repo=greeter \
    --template="Say hello to {name}" --input-variables=name

  # Push a mustache-format template
  langstar prompt push --owner=codekiln --repo=greeter \
    --template="Say hello to {{name}}" --input-variables=name \
    --template-format=mustache`,
	Args: cobra.NoArgs,
	// RunE will be set by the main package that imports this
}

// SetupPromptCommands initializes prompt commands and their relationships
func SetupPromptCommands() {
	promptCmd.AddCommand(promptLsCmd)
	promptCmd.AddCommand(promptGetCmd)
	promptCmd.AddCommand(promptSearchCmd)
	promptCmd.AddCommand(promptPushCmd)
}

// GetPromptCommands returns the prompt command structures for handler assignment
func GetPromptCommands() (*cobra.Command, *cobra.Command, *cobra.Command, *cobra.Command) {
	return promptLsCmd, promptGetCmd, promptSearchCmd, promptPushCmd
}
