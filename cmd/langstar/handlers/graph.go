// Package handlers provides command handler functions for langstar graph
// deployment operations.
//
// This file contains all deployment-related command handlers for the control
// plane: listing with filters, inspection, the multi-step create workflow
// with optional wait-until-ready polling, configuration updates, revision
// history, and deletion with confirmation.
//
// CREATE WORKFLOW:
// GitHub-sourced deployments need a GitHub integration ID, resolved in
// precedence order: the --integration-id flag, the configured value, then
// automatic discovery by scanning installed integrations for one that can
// see the repository. With --wait the handler polls the deployment until it
// reaches READY, with staged intervals and a hard 30-minute ceiling.
package handlers

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/codekiln/langstar/cmd/langstar/config"
	"github.com/codekiln/langstar/cmd/langstar/display"
	"github.com/codekiln/langstar/cmd/langstar/utils"
	"github.com/codekiln/langstar/internal/logging"
	"github.com/codekiln/langstar/internal/sdk"
	"github.com/codekiln/langstar/internal/validate"
	"github.com/codekiln/langstar/internal/workflow"
	"github.com/spf13/cobra"
)

// buildDeploymentFilters converts and validates the list filter flags.
func buildDeploymentFilters() (*sdk.DeploymentFilters, error) {
	filters := &sdk.DeploymentFilters{
		NameContains: config.Graph.NameContains,
		ImageVersion: config.Graph.ImageVersion,
	}
	if config.Graph.StatusFilter != "" {
		status, err := sdk.ParseDeploymentStatus(config.Graph.StatusFilter)
		if err != nil {
			return nil, err
		}
		filters.Status = status
	}
	if config.Graph.TypeFilter != "" {
		deploymentType, err := sdk.ParseDeploymentType(config.Graph.TypeFilter)
		if err != nil {
			return nil, err
		}
		filters.DeploymentType = deploymentType
	}
	return filters, nil
}

// HandleGraphList handles the graph ls subcommand with filtering and watch
// support.
func HandleGraphList(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	fetchAndDisplayDeployments := func() error {
		filters, err := buildDeploymentFilters()
		if err != nil {
			return err
		}

		resolved, err := config.Resolve("", "")
		if err != nil {
			return err
		}

		logging.Info("Fetching deployments from control plane")
		apiClient := buildClient(resolved)
		list, err := apiClient.ListDeployments(config.Graph.Limit, config.Graph.Offset, filters)
		if err != nil {
			return err
		}

		display.DisplayDeployments(list.Resources)
		if !config.Graph.Watch {
			logging.Success("Successfully retrieved %d deployments", len(list.Resources))
		}
		return nil
	}

	return utils.RunWithWatch(fetchAndDisplayDeployments, config.Graph.Watch)
}

// HandleGraphGet handles the graph get subcommand. The argument must be a
// UUID; typos fail locally before any request is made.
func HandleGraphGet(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	deploymentID := args[0]
	if err := validate.DeploymentID(deploymentID); err != nil {
		return err
	}

	resolved, err := config.Resolve("", "")
	if err != nil {
		return err
	}

	logging.Info("Fetching deployment %s", logging.FormatDeploymentID(deploymentID))
	apiClient := buildClient(resolved)
	deployment, err := apiClient.GetDeployment(deploymentID)
	if err != nil {
		return err
	}

	display.DisplayDeploymentDetails(deployment)
	return nil
}

// resolveIntegrationID picks the GitHub integration for a create, in
// precedence order: flag, configured value, automatic discovery against the
// repository.
func resolveIntegrationID(apiClient *sdk.Client, resolved config.Resolved, repoURL string) (string, error) {
	if config.Graph.IntegrationID != "" {
		return config.Graph.IntegrationID, nil
	}
	if resolved.IntegrationID != "" {
		return resolved.IntegrationID, nil
	}

	owner, repo, err := utils.ParseRepoURL(repoURL)
	if err != nil {
		return "", err
	}

	logging.Info("Discovering GitHub integration for %s/%s", owner, repo)
	integrationID, err := apiClient.FindIntegrationForRepo(owner, repo)
	if err != nil {
		return "", fmt.Errorf("cannot resolve GitHub integration for %s/%s: %w - pass --integration-id or configure github_integration_id", owner, repo, err)
	}
	return integrationID, nil
}

// HandleGraphCreate handles the graph create subcommand: builds the source
// configuration for the chosen source kind, provisions the deployment, and
// optionally waits for it to become READY.
func HandleGraphCreate(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	if config.Graph.Name == "" {
		return fmt.Errorf("--name is required for deployment creation")
	}

	deploymentType, err := sdk.ParseDeploymentType(config.Graph.DeploymentType)
	if err != nil {
		return err
	}

	env, err := utils.ParseEnvVars(config.Graph.Env)
	if err != nil {
		return err
	}
	secrets := make([]sdk.EnvVar, 0, len(env))
	for name, value := range env {
		secrets = append(secrets, sdk.EnvVar{Name: name, Value: value})
	}

	resolved, err := config.Resolve("", "")
	if err != nil {
		return err
	}
	apiClient := buildClient(resolved)

	create := sdk.CreateDeploymentRequest{
		Name:    config.Graph.Name,
		Source:  config.Graph.Source,
		Secrets: secrets,
	}

	switch config.Graph.Source {
	case sdk.SourceGithub:
		if err := validate.RepoURL(config.Graph.RepoURL); err != nil {
			return err
		}
		integrationID, err := resolveIntegrationID(apiClient, resolved, config.Graph.RepoURL)
		if err != nil {
			return err
		}
		create.SourceConfig = map[string]any{
			"integration_id":  integrationID,
			"repo_url":        config.Graph.RepoURL,
			"deployment_type": string(deploymentType),
			"build_on_push":   false,
			"custom_url":      nil,
			"resource_spec":   nil,
		}
		create.SourceRevisionConfig = map[string]any{
			"repo_ref":              config.Graph.Branch,
			"langgraph_config_path": config.Graph.ConfigPath,
		}
	case sdk.SourceExternalDocker:
		if config.Graph.ImageURI == "" {
			return fmt.Errorf("--image-uri is required for external_docker deployments")
		}
		create.SourceConfig = map[string]any{
			"integration_id": nil,
			"image_path":     config.Graph.ImageURI,
		}
	default:
		return fmt.Errorf("invalid source %q - valid: github, external_docker", config.Graph.Source)
	}

	logging.Info("Creating deployment '%s' (source: %s)", config.Graph.Name, config.Graph.Source)
	deployment, err := apiClient.CreateDeployment(create)
	if err != nil {
		return err
	}

	display.DisplayDeploymentDetails(deployment)
	logging.Success("Successfully created deployment '%s' with ID: %s",
		deployment.Name, deployment.ID)

	if !config.Graph.Wait {
		return nil
	}

	// Allow Ctrl-C to abort the wait without leaving the deployment behind
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.RestoreOutput()
	logging.Info("Waiting for deployment '%s' to become READY", deployment.Name)

	start := time.Now()
	ready, err := workflow.WaitForReady(ctx, apiClient, deployment.ID, workflow.WaitOptions{})
	if err != nil {
		return err
	}

	logging.Success("Deployment '%s' is READY (took %s)",
		ready.Name, utils.FormatDuration(time.Since(start)))
	if url, ok := ready.CustomURL(); ok {
		fmt.Printf("Runtime URL: %s\n", url)
	}
	return nil
}

// HandleGraphUpdate handles the graph update subcommand. Only the provided
// sections are sent; a successful patch triggers a new revision. With --wait
// the handler polls that revision until it is DEPLOYED.
func HandleGraphUpdate(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	deploymentID := args[0]
	if err := validate.DeploymentID(deploymentID); err != nil {
		return err
	}

	var patch sdk.PatchDeploymentRequest
	if config.Graph.UpdateImageURI != "" {
		patch.SourceConfig = map[string]any{
			"image_path": config.Graph.UpdateImageURI,
		}
	}
	if config.Graph.UpdateBranch != "" || config.Graph.UpdateConfigPath != "" {
		revisionConfig := map[string]any{}
		if config.Graph.UpdateBranch != "" {
			revisionConfig["repo_ref"] = config.Graph.UpdateBranch
		}
		if config.Graph.UpdateConfigPath != "" {
			revisionConfig["langgraph_config_path"] = config.Graph.UpdateConfigPath
		}
		patch.SourceRevisionConfig = revisionConfig
	}
	if patch.SourceConfig == nil && patch.SourceRevisionConfig == nil {
		return fmt.Errorf("nothing to update - provide --branch, --config-path, or --image-uri")
	}

	resolved, err := config.Resolve("", "")
	if err != nil {
		return err
	}

	logging.Info("Updating deployment %s", logging.FormatDeploymentID(deploymentID))
	apiClient := buildClient(resolved)
	deployment, err := apiClient.PatchDeployment(deploymentID, patch)
	if err != nil {
		return err
	}

	display.DisplayDeploymentDetails(deployment)
	logging.Success("Successfully updated deployment %s - a new revision is rolling out", deployment.ID)

	if !config.Graph.UpdateWait {
		return nil
	}
	if deployment.LatestRevisionID == nil || *deployment.LatestRevisionID == "" {
		return fmt.Errorf("deployment %s reported no revision to wait for", deployment.ID)
	}
	revisionID := *deployment.LatestRevisionID

	// Allow Ctrl-C to abort the wait; the rollout continues server-side
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.RestoreOutput()
	logging.Info("Waiting for revision %s to deploy", logging.FormatDeploymentID(revisionID))

	start := time.Now()
	revision, err := workflow.WaitForRevisionDeployed(ctx, apiClient, deployment.ID, revisionID, workflow.WaitOptions{})
	if err != nil {
		return err
	}

	logging.Success("Revision %s is DEPLOYED (took %s)",
		revision.ID, utils.FormatDuration(time.Since(start)))
	return nil
}

// HandleGraphRevisions handles the graph revisions subcommand.
func HandleGraphRevisions(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	deploymentID := args[0]
	if err := validate.DeploymentID(deploymentID); err != nil {
		return err
	}

	resolved, err := config.Resolve("", "")
	if err != nil {
		return err
	}

	logging.Info("Fetching revisions for deployment %s", logging.FormatDeploymentID(deploymentID))
	apiClient := buildClient(resolved)
	revisions, err := apiClient.ListRevisions(deploymentID)
	if err != nil {
		return err
	}

	display.DisplayRevisions(revisions.Resources)
	logging.Success("Successfully retrieved %d revisions", len(revisions.Resources))
	return nil
}

// HandleGraphDelete handles the graph rm subcommand. The confirmation
// prompt runs before any client construction: declining exits successfully
// with zero network calls.
func HandleGraphDelete(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	deploymentID := args[0]
	if err := validate.DeploymentID(deploymentID); err != nil {
		return err
	}

	if !config.Graph.Yes {
		if !confirmDeletion(fmt.Sprintf("deployment %s", deploymentID)) {
			fmt.Println("Deletion cancelled")
			return nil
		}
	}

	resolved, err := config.Resolve("", "")
	if err != nil {
		return err
	}

	logging.Info("Deleting deployment %s", logging.FormatDeploymentID(deploymentID))
	apiClient := buildClient(resolved)
	if err := apiClient.DeleteDeployment(deploymentID); err != nil {
		return err
	}

	fmt.Printf("Deployment %s deleted\n", display.TruncateID(deploymentID))
	logging.Success("Successfully deleted deployment %s", deploymentID)
	return nil
}
