// Package handlers provides command handler functions for langstar prompt
// hub operations.
//
// This file contains all prompt-related command handlers: listing and
// searching with client-side visibility filtering, single-prompt inspection,
// and the multi-step push pipeline. The push pipeline runs two best-effort
// preparatory steps (organization lookup when unscoped, repository creation
// when missing) that warn and continue on failure - only the push itself is
// fatal.
package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/codekiln/langstar/cmd/langstar/config"
	"github.com/codekiln/langstar/cmd/langstar/display"
	"github.com/codekiln/langstar/cmd/langstar/utils"
	"github.com/codekiln/langstar/internal/logging"
	"github.com/codekiln/langstar/internal/sdk"
	"github.com/codekiln/langstar/internal/validate"
	"github.com/spf13/cobra"
)

// promptVisibility derives the effective visibility filter from the resolved
// scope and the --public flag: scoped listings default to private prompts,
// unscoped listings show everything.
func promptVisibility(resolved config.Resolved) sdk.Visibility {
	if config.Prompt.Public {
		return sdk.VisibilityPublic
	}
	if resolved.Auth.OrganizationID != "" || resolved.Auth.WorkspaceID != "" {
		return sdk.VisibilityPrivate
	}
	return sdk.VisibilityAny
}

// HandlePromptList handles the prompt ls subcommand. Fetches a page of
// prompts and applies the visibility filter client-side; the page size is
// bounded by --limit before filtering, so fewer entries may be displayed.
func HandlePromptList(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	resolved, err := config.Resolve(config.Prompt.OrganizationID, config.Prompt.WorkspaceID)
	if err != nil {
		return err
	}
	config.WarnImplicitScope(resolved)

	visibility := promptVisibility(resolved)
	logging.Info("Fetching prompts (visibility: %s)", visibility)

	apiClient := buildClient(resolved)
	prompts, err := apiClient.ListPrompts(config.Prompt.Limit, config.Prompt.Offset, visibility)
	if err != nil {
		return err
	}

	display.DisplayPrompts(prompts)
	logging.Success("Successfully retrieved %d prompts", len(prompts))
	return nil
}

// HandlePromptGet handles the prompt get subcommand for inspecting a single
// prompt by its owner/name handle.
func HandlePromptGet(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	handle := args[0]
	if err := validate.PromptHandle(handle); err != nil {
		return err
	}

	resolved, err := config.Resolve(config.Prompt.OrganizationID, config.Prompt.WorkspaceID)
	if err != nil {
		return err
	}
	config.WarnImplicitScope(resolved)

	logging.Info("Fetching prompt %s", handle)

	apiClient := buildClient(resolved)
	prompt, err := apiClient.GetPrompt(handle)
	if err != nil {
		return err
	}

	display.DisplayPromptDetails(prompt)
	return nil
}

// HandlePromptSearch handles the prompt search subcommand. Same endpoint and
// visibility rules as listing, with a query parameter added.
func HandlePromptSearch(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	query := args[0]

	resolved, err := config.Resolve(config.Prompt.OrganizationID, config.Prompt.WorkspaceID)
	if err != nil {
		return err
	}
	config.WarnImplicitScope(resolved)

	visibility := promptVisibility(resolved)
	logging.Info("Searching prompts for %q (visibility: %s)", query, visibility)

	apiClient := buildClient(resolved)
	prompts, err := apiClient.SearchPrompts(query, config.Prompt.Limit, visibility)
	if err != nil {
		return err
	}

	display.DisplayPrompts(prompts)
	logging.Success("Found %d prompts matching %q", len(prompts), query)
	return nil
}

// HandlePromptPush handles the prompt push subcommand: the multi-step
// publish pipeline. Organization lookup and repository creation are
// best-effort - failures are reported as warnings and the push proceeds.
func HandlePromptPush(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	if config.Prompt.Template == "" {
		return fmt.Errorf("template is required for push")
	}

	resolved, err := config.Resolve(config.Prompt.OrganizationID, config.Prompt.WorkspaceID)
	if err != nil {
		return err
	}
	config.WarnImplicitScope(resolved)

	apiClient := buildClient(resolved)

	// Fetch the organization when no org scope is configured so the push
	// lands in the right account. Best-effort: proceed unscoped on failure.
	if resolved.Auth.OrganizationID == "" {
		logging.Info("Fetching organization information")
		org, err := apiClient.GetCurrentOrganization()
		if err != nil {
			logging.Warn("Could not fetch organization: %v - proceeding without organization scope", err)
		} else if org.ID != nil {
			apiClient = apiClient.WithOrganizationID(*org.ID)
		}
	}

	// Create the repository if it does not exist yet. Best-effort: a failed
	// probe or creation still lets the push attempt proceed.
	handle := config.Prompt.Owner + "/" + config.Prompt.Repo
	logging.Info("Checking if repository %s exists", handle)
	if _, err := apiClient.GetPrompt(handle); err != nil {
		var apiErr *sdk.APIError
		if errors.As(err, &apiErr) && apiErr.Status == 404 {
			logging.Info("Repository not found, creating %s", handle)
			description := config.Prompt.Description
			if description == "" {
				description = "Created via langstar CLI"
			}
			create := sdk.CreateRepoRequest{
				RepoHandle:  handle,
				Description: &description,
				IsPublic:    config.Prompt.PublicRepo,
				Tags:        []string{"cli", "langstar"},
			}
			if _, err := apiClient.CreateRepo(create); err != nil {
				logging.Warn("Could not create repository: %v - will attempt to push anyway", err)
			}
		} else {
			logging.Warn("Could not check repository: %v - will attempt to push anyway", err)
		}
	}

	// Parse input variable names from repeated or comma-separated flags
	var inputVars []string
	for _, entry := range config.Prompt.InputVariables {
		for _, name := range strings.Split(entry, ",") {
			if trimmed := strings.TrimSpace(name); trimmed != "" {
				inputVars = append(inputVars, trimmed)
			}
		}
	}
	if inputVars == nil {
		inputVars = []string{}
	}

	commit := sdk.CommitRequest{
		Manifest: map[string]any{
			"type":            "prompt",
			"template":        config.Prompt.Template,
			"input_variables": inputVars,
			"template_format": config.Prompt.TemplateFormat,
		},
	}

	logging.Info("Pushing prompt to %s", handle)
	response, err := apiClient.PushPrompt(config.Prompt.Owner, config.Prompt.Repo, commit)
	if err != nil {
		return err
	}

	if config.Global.Output == "json" {
		if err := display.OutputJSON(response); err != nil {
			return err
		}
	} else {
		fmt.Printf("Prompt commit pushed successfully:\n")
		fmt.Printf("  Repository:  %s\n", handle)
		fmt.Printf("  Commit hash: %s\n", response.Commit.CommitHash)
		if response.Commit.URL != nil {
			fmt.Printf("  URL:         %s\n", *response.Commit.URL)
		}
	}

	logging.Success("Successfully pushed commit %s to %s", response.Commit.CommitHash, handle)
	return nil
}
