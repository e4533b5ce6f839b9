// Package sdk provides the API client layer for the langstar CLI.
//
// This file implements GitHub integration discovery against the control
// plane. Deployment creation from a GitHub source needs an integration ID;
// when none is configured, FindIntegrationForRepo scans the installed
// integrations for one that can see the target repository.
package sdk

import (
	"fmt"
	"net/http"
)

// GitHubIntegration is an installed GitHub app connection.
type GitHubIntegration struct {
	ID   string  `json:"id"`
	Name *string `json:"name,omitempty"`
}

// GitHubRepository identifies a repository an integration can access.
type GitHubRepository struct {
	Owner string `json:"owner"`
	Name  string `json:"name"`
}

// ListGitHubIntegrations lists the GitHub integrations installed for the
// workspace.
func (c *Client) ListGitHubIntegrations() ([]GitHubIntegration, error) {
	req, err := c.controlRequest()
	if err != nil {
		return nil, err
	}

	var result []GitHubIntegration
	if err := c.execute(req, http.MethodGet, c.urls.Control+"/v1/integrations/github/install", &result); err != nil {
		return nil, err
	}
	return result, nil
}

// ListGitHubRepositories lists the repositories one integration can access.
func (c *Client) ListGitHubRepositories(integrationID string) ([]GitHubRepository, error) {
	req, err := c.controlRequest()
	if err != nil {
		return nil, err
	}

	var result []GitHubRepository
	url := c.urls.Control + "/v1/integrations/github/" + integrationID + "/repos"
	if err := c.execute(req, http.MethodGet, url, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// FindIntegrationForRepo scans all installed integrations for the first one
// that has access to owner/repo. Integrations whose repository listing fails
// are skipped rather than aborting the scan. When no integration matches,
// the result is an APIError with status 404.
func (c *Client) FindIntegrationForRepo(owner, repo string) (string, error) {
	integrations, err := c.ListGitHubIntegrations()
	if err != nil {
		return "", err
	}

	for _, integration := range integrations {
		repos, err := c.ListGitHubRepositories(integration.ID)
		if err != nil {
			// Skip integrations that fail to list repos
			continue
		}
		for _, r := range repos {
			if r.Owner == owner && r.Name == repo {
				return integration.ID, nil
			}
		}
	}

	return "", &APIError{
		Status:  404,
		Message: fmt.Sprintf("No integration found with access to %s/%s", owner, repo),
	}
}
