// Package sdk provides the API client layer for the langstar CLI.
//
// This file implements organization and workspace discovery against the
// prompt hub. The push pipeline uses the current-organization lookup to
// scope pushes when no organization is configured explicitly.
package sdk

import "net/http"

// Organization is the account-level container for workspaces.
type Organization struct {
	ID          *string `json:"id,omitempty"`
	DisplayName *string `json:"display_name,omitempty"`
	IsPersonal  bool    `json:"is_personal"`
	Handle      *string `json:"handle,omitempty"`
}

// Workspace is a tenant inside an organization.
type Workspace struct {
	ID             string  `json:"id"`
	DisplayName    *string `json:"display_name,omitempty"`
	OrganizationID *string `json:"organization_id,omitempty"`
	Handle         *string `json:"handle,omitempty"`
}

// GetCurrentOrganization fetches the organization the API key belongs to.
func (c *Client) GetCurrentOrganization() (*Organization, error) {
	req, err := c.smithRequest()
	if err != nil {
		return nil, err
	}

	var result Organization
	if err := c.execute(req, http.MethodGet, c.urls.Smith+"/api/v1/orgs/current", &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetWorkspaces lists the workspaces visible to the API key within its
// current organization scope.
func (c *Client) GetWorkspaces() ([]Workspace, error) {
	req, err := c.smithRequest()
	if err != nil {
		return nil, err
	}

	var result []Workspace
	if err := c.execute(req, http.MethodGet, c.urls.Smith+"/api/v1/workspaces", &result); err != nil {
		return nil, err
	}
	return result, nil
}
