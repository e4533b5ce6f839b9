// Package handlers provides command handler functions for langstar assistant
// operations.
//
// This file contains all assistant-related command handlers. Every handler
// resolves the target deployment through the control plane first - matching
// the --deployment value by exact name or ID and extracting the deployment's
// runtime URL - then performs the assistant operation against that URL with
// the graph API key. Resolution happens on every invocation; deployment URLs
// are never cached.
//
// DELETION SAFETY: the rm handler prompts for confirmation before building
// any client, so a declined deletion performs zero network calls and exits
// successfully.
package handlers

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/codekiln/langstar/cmd/langstar/config"
	"github.com/codekiln/langstar/cmd/langstar/display"
	"github.com/codekiln/langstar/cmd/langstar/utils"
	"github.com/codekiln/langstar/internal/logging"
	"github.com/codekiln/langstar/internal/sdk"
	"github.com/codekiln/langstar/internal/workflow"
	"github.com/spf13/cobra"
)

// resolveAssistantClient builds a graph-runtime client targeting the
// deployment named by --deployment.
func resolveAssistantClient() (*sdk.Client, *sdk.Deployment, error) {
	if config.Assistant.Deployment == "" {
		return nil, nil, fmt.Errorf("--deployment is required for assistant operations")
	}

	resolved, err := config.Resolve("", "")
	if err != nil {
		return nil, nil, err
	}

	apiClient := buildClient(resolved)
	return workflow.ResolveGraphClient(apiClient, config.Assistant.Deployment)
}

// parseAssistantConfig reads the assistant configuration from --config or
// --config-file. At most one may be given.
func parseAssistantConfig() (map[string]any, error) {
	if config.Assistant.ConfigJSON != "" && config.Assistant.ConfigFile != "" {
		return nil, fmt.Errorf("--config and --config-file are mutually exclusive")
	}

	raw := []byte(config.Assistant.ConfigJSON)
	if config.Assistant.ConfigFile != "" {
		data, err := os.ReadFile(config.Assistant.ConfigFile)
		if err != nil {
			return nil, fmt.Errorf("cannot read config file: %w", err)
		}
		raw = data
	}
	if len(raw) == 0 {
		return nil, nil
	}

	var parsed map[string]any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid assistant config JSON: %w", err)
	}
	return parsed, nil
}

// HandleAssistantList handles the assistant ls subcommand for displaying all
// assistants inside one deployment. Supports live updates through watch mode.
func HandleAssistantList(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	fetchAndDisplayAssistants := func() error {
		graphClient, deployment, err := resolveAssistantClient()
		if err != nil {
			return err
		}

		logging.Info("Fetching assistants from deployment '%s'", deployment.Name)
		assistants, err := graphClient.ListAssistants(config.Assistant.Limit, config.Assistant.Offset)
		if err != nil {
			return err
		}

		display.DisplayAssistants(assistants)
		if !config.Assistant.Watch {
			logging.Success("Successfully retrieved %d assistants from deployment '%s'",
				len(assistants), deployment.Name)
		}
		return nil
	}

	return utils.RunWithWatch(fetchAndDisplayAssistants, config.Assistant.Watch)
}

// HandleAssistantSearch handles the assistant search subcommand.
func HandleAssistantSearch(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	query := args[0]

	graphClient, deployment, err := resolveAssistantClient()
	if err != nil {
		return err
	}

	logging.Info("Searching assistants in deployment '%s' for %q", deployment.Name, query)
	assistants, err := graphClient.SearchAssistants(query, config.Assistant.Limit)
	if err != nil {
		return err
	}

	display.DisplayAssistants(assistants)
	logging.Success("Found %d assistants matching %q", len(assistants), query)
	return nil
}

// HandleAssistantGet handles the assistant get subcommand.
func HandleAssistantGet(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	assistantID := args[0]

	graphClient, deployment, err := resolveAssistantClient()
	if err != nil {
		return err
	}

	logging.Info("Fetching assistant %s from deployment '%s'",
		logging.FormatAssistantID(assistantID), deployment.Name)
	assistant, err := graphClient.GetAssistant(assistantID)
	if err != nil {
		return err
	}

	display.DisplayAssistantDetails(assistant)
	return nil
}

// HandleAssistantCreate handles the assistant create subcommand.
func HandleAssistantCreate(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	if config.Assistant.GraphID == "" {
		return fmt.Errorf("--graph-id is required for assistant creation")
	}

	assistantConfig, err := parseAssistantConfig()
	if err != nil {
		return err
	}

	graphClient, deployment, err := resolveAssistantClient()
	if err != nil {
		return err
	}

	logging.Info("Creating assistant for graph '%s' in deployment '%s'",
		config.Assistant.GraphID, deployment.Name)
	assistant, err := graphClient.CreateAssistant(sdk.CreateAssistantRequest{
		GraphID: config.Assistant.GraphID,
		Name:    config.Assistant.Name,
		Config:  assistantConfig,
	})
	if err != nil {
		return err
	}

	display.DisplayAssistantDetails(assistant)
	logging.Success("Successfully created assistant '%s' with ID: %s",
		assistant.Name, assistant.AssistantID)
	return nil
}

// HandleAssistantUpdate handles the assistant update subcommand. Only the
// provided fields are sent; the server leaves everything else alone.
func HandleAssistantUpdate(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	assistantID := args[0]

	assistantConfig, err := parseAssistantConfig()
	if err != nil {
		return err
	}
	if config.Assistant.GraphID == "" && config.Assistant.Name == "" && assistantConfig == nil {
		return fmt.Errorf("nothing to update - provide --graph-id, --name, --config, or --config-file")
	}

	graphClient, deployment, err := resolveAssistantClient()
	if err != nil {
		return err
	}

	logging.Info("Updating assistant %s in deployment '%s'",
		logging.FormatAssistantID(assistantID), deployment.Name)
	assistant, err := graphClient.UpdateAssistant(assistantID, sdk.UpdateAssistantRequest{
		GraphID: config.Assistant.GraphID,
		Name:    config.Assistant.Name,
		Config:  assistantConfig,
	})
	if err != nil {
		return err
	}

	display.DisplayAssistantDetails(assistant)
	logging.Success("Successfully updated assistant %s", assistant.AssistantID)
	return nil
}

// HandleAssistantDelete handles the assistant rm subcommand. The
// confirmation prompt runs before any client construction: declining exits
// successfully with zero network calls.
func HandleAssistantDelete(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	assistantID := args[0]

	if !config.Assistant.Force {
		if !confirmDeletion(fmt.Sprintf("assistant %s", assistantID)) {
			fmt.Println("Deletion cancelled")
			return nil
		}
	}

	graphClient, deployment, err := resolveAssistantClient()
	if err != nil {
		return err
	}

	logging.Info("Deleting assistant %s from deployment '%s'",
		logging.FormatAssistantID(assistantID), deployment.Name)
	if err := graphClient.DeleteAssistant(assistantID); err != nil {
		return err
	}

	fmt.Printf("Assistant %s deleted\n", display.TruncateID(assistantID))
	logging.Success("Successfully deleted assistant %s", assistantID)
	return nil
}
