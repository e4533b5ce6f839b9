// Package handlers provides command handler functions for langstar
// organization operations.
//
// This file contains the account inspection handlers: showing the
// organization the configured API key belongs to, and listing the workspaces
// visible within it. Both are read-only prompt hub calls, useful for finding
// the identifiers to store with `config set`.
package handlers

import (
	"github.com/codekiln/langstar/cmd/langstar/config"
	"github.com/codekiln/langstar/cmd/langstar/display"
	"github.com/codekiln/langstar/cmd/langstar/utils"
	"github.com/codekiln/langstar/internal/logging"
	"github.com/spf13/cobra"
)

// HandleOrgInfo handles the org info subcommand.
func HandleOrgInfo(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	resolved, err := config.Resolve("", "")
	if err != nil {
		return err
	}

	logging.Info("Fetching organization information")
	apiClient := buildClient(resolved)
	org, err := apiClient.GetCurrentOrganization()
	if err != nil {
		return err
	}

	display.DisplayOrganization(org)
	return nil
}

// HandleOrgWorkspaces handles the org workspaces subcommand.
func HandleOrgWorkspaces(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	resolved, err := config.Resolve("", "")
	if err != nil {
		return err
	}

	logging.Info("Fetching workspaces")
	apiClient := buildClient(resolved)
	workspaces, err := apiClient.GetWorkspaces()
	if err != nil {
		return err
	}

	display.DisplayWorkspaces(workspaces)
	logging.Success("Successfully retrieved %d workspaces", len(workspaces))
	return nil
}
