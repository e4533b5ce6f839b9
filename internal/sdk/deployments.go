// Package sdk provides the API client layer for the langstar CLI.
//
// This file implements the control-plane deployment client: deployment CRUD,
// revision inspection, and the status enums with forward-compatible decoding.
// The control plane evolves server-side, so unknown status strings decode to
// the UNKNOWN variant instead of failing the whole response.
package sdk

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
)

// DeploymentStatus is the lifecycle state of a deployment.
type DeploymentStatus string

const (
	StatusAwaitingDatabase DeploymentStatus = "AWAITING_DATABASE"
	StatusReady            DeploymentStatus = "READY"
	StatusUnused           DeploymentStatus = "UNUSED"
	StatusAwaitingDelete   DeploymentStatus = "AWAITING_DELETE"
	StatusUnknown          DeploymentStatus = "UNKNOWN"
)

// UnmarshalJSON decodes known statuses and maps anything else to UNKNOWN so
// new server-side states never break existing clients.
func (s *DeploymentStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch DeploymentStatus(raw) {
	case StatusAwaitingDatabase, StatusReady, StatusUnused, StatusAwaitingDelete:
		*s = DeploymentStatus(raw)
	default:
		*s = StatusUnknown
	}
	return nil
}

// ParseDeploymentStatus validates a user-supplied status filter value.
func ParseDeploymentStatus(s string) (DeploymentStatus, error) {
	switch DeploymentStatus(s) {
	case StatusAwaitingDatabase, StatusReady, StatusUnused, StatusAwaitingDelete, StatusUnknown:
		return DeploymentStatus(s), nil
	}
	return "", fmt.Errorf("invalid deployment status %q - valid: AWAITING_DATABASE, READY, UNUSED, AWAITING_DELETE, UNKNOWN", s)
}

// DeploymentType selects the deployment environment tier.
type DeploymentType string

const (
	TypeDevFree DeploymentType = "dev_free"
	TypeDev     DeploymentType = "dev"
	TypeProd    DeploymentType = "prod"
)

// ParseDeploymentType validates a user-supplied deployment type.
func ParseDeploymentType(s string) (DeploymentType, error) {
	switch DeploymentType(s) {
	case TypeDevFree, TypeDev, TypeProd:
		return DeploymentType(s), nil
	}
	return "", fmt.Errorf("invalid deployment type %q - valid: dev_free, dev, prod", s)
}

// Deployment source kinds.
const (
	SourceGithub         = "github"
	SourceExternalDocker = "external_docker"
)

// Deployment is a managed graph-runtime instance tracked by the control plane.
type Deployment struct {
	ID                   string           `json:"id"`
	Name                 string           `json:"name"`
	Source               string           `json:"source"`
	SourceConfig         map[string]any   `json:"source_config,omitempty"`
	SourceRevisionConfig map[string]any   `json:"source_revision_config,omitempty"`
	Secrets              []string         `json:"secrets,omitempty"`
	CreatedAt            string           `json:"created_at"`
	UpdatedAt            string           `json:"updated_at"`
	Status               DeploymentStatus `json:"status"`
	LatestRevisionID     *string          `json:"latest_revision_id,omitempty"`
	ActiveRevisionID     *string          `json:"active_revision_id,omitempty"`
	ImageVersion         *string          `json:"image_version,omitempty"`
}

// CustomURL extracts the deployment's runtime URL from its source config.
// Returns false when the source config is absent, the key is absent, or the
// value is null - all three mean the runtime URL has not been provisioned.
func (d *Deployment) CustomURL() (string, bool) {
	if d.SourceConfig == nil {
		return "", false
	}
	value, ok := d.SourceConfig["custom_url"]
	if !ok || value == nil {
		return "", false
	}
	url, ok := value.(string)
	if !ok || url == "" {
		return "", false
	}
	return url, true
}

// DeploymentsList is one page of deployments.
type DeploymentsList struct {
	Resources []Deployment `json:"resources"`
	Offset    int          `json:"offset"`
}

// DeploymentFilters narrows a deployment listing. Zero-valued fields are
// omitted from the query string entirely.
type DeploymentFilters struct {
	NameContains   string
	Status         DeploymentStatus
	DeploymentType DeploymentType
	ImageVersion   string
}

// EnvVar is a secret environment variable attached at deployment creation.
type EnvVar struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// CreateDeploymentRequest provisions a new deployment.
type CreateDeploymentRequest struct {
	Name                 string         `json:"name"`
	Source               string         `json:"source"`
	SourceConfig         map[string]any `json:"source_config"`
	SourceRevisionConfig map[string]any `json:"source_revision_config,omitempty"`
	Secrets              []EnvVar       `json:"secrets"`
}

// PatchDeploymentRequest updates a deployment's configuration. Only the
// provided sections are serialized; a successful patch triggers a new
// revision server-side.
type PatchDeploymentRequest struct {
	SourceConfig         map[string]any `json:"source_config,omitempty"`
	SourceRevisionConfig map[string]any `json:"source_revision_config,omitempty"`
}

// RevisionStatus is the build/deploy state of one deployment revision.
type RevisionStatus string

const (
	RevisionQueued       RevisionStatus = "QUEUED"
	RevisionBuilding     RevisionStatus = "BUILDING"
	RevisionDeploying    RevisionStatus = "DEPLOYING"
	RevisionDeployed     RevisionStatus = "DEPLOYED"
	RevisionBuildFailed  RevisionStatus = "BUILD_FAILED"
	RevisionDeployFailed RevisionStatus = "DEPLOY_FAILED"
	RevisionCancelled    RevisionStatus = "CANCELLED"
	RevisionUnknown      RevisionStatus = "UNKNOWN"
)

// UnmarshalJSON maps unknown revision statuses to UNKNOWN, mirroring the
// deployment status behavior.
func (s *RevisionStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch RevisionStatus(raw) {
	case RevisionQueued, RevisionBuilding, RevisionDeploying, RevisionDeployed,
		RevisionBuildFailed, RevisionDeployFailed, RevisionCancelled:
		*s = RevisionStatus(raw)
	default:
		*s = RevisionUnknown
	}
	return nil
}

// Revision is one build/deploy attempt of a deployment.
type Revision struct {
	ID        string         `json:"id"`
	Status    RevisionStatus `json:"status"`
	CreatedAt *string        `json:"created_at,omitempty"`
	UpdatedAt *string        `json:"updated_at,omitempty"`
}

// RevisionsList is one page of revisions.
type RevisionsList struct {
	Resources []Revision `json:"resources"`
	Offset    int        `json:"offset"`
}

// ListDeployments fetches a page of deployments. The limit defaults to 20
// and is capped at 100; filters translate to query parameters and are
// omitted when unset.
func (c *Client) ListDeployments(limit, offset int, filters *DeploymentFilters) (*DeploymentsList, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	req, err := c.controlRequest()
	if err != nil {
		return nil, err
	}
	req.SetQueryParams(map[string]string{
		"limit":  strconv.Itoa(limit),
		"offset": strconv.Itoa(offset),
	})
	if filters != nil {
		if filters.NameContains != "" {
			req.SetQueryParam("name_contains", filters.NameContains)
		}
		if filters.Status != "" {
			req.SetQueryParam("status", string(filters.Status))
		}
		if filters.DeploymentType != "" {
			req.SetQueryParam("deployment_type", string(filters.DeploymentType))
		}
		if filters.ImageVersion != "" {
			req.SetQueryParam("image_version", filters.ImageVersion)
		}
	}

	var result DeploymentsList
	if err := c.execute(req, http.MethodGet, c.urls.Control+"/v2/deployments", &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetDeployment fetches a single deployment by ID.
func (c *Client) GetDeployment(deploymentID string) (*Deployment, error) {
	req, err := c.controlRequest()
	if err != nil {
		return nil, err
	}

	var result Deployment
	if err := c.execute(req, http.MethodGet, c.urls.Control+"/v2/deployments/"+deploymentID, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateDeployment provisions a new deployment.
func (c *Client) CreateDeployment(create CreateDeploymentRequest) (*Deployment, error) {
	req, err := c.controlRequest()
	if err != nil {
		return nil, err
	}
	req.SetBody(create)

	var result Deployment
	if err := c.execute(req, http.MethodPost, c.urls.Control+"/v2/deployments", &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// PatchDeployment updates a deployment's source configuration, triggering a
// new revision.
func (c *Client) PatchDeployment(deploymentID string, patch PatchDeploymentRequest) (*Deployment, error) {
	req, err := c.controlRequest()
	if err != nil {
		return nil, err
	}
	req.SetBody(patch)

	var result Deployment
	if err := c.execute(req, http.MethodPatch, c.urls.Control+"/v2/deployments/"+deploymentID, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteDeployment permanently removes a deployment. The control plane
// answers 204 No Content on success.
func (c *Client) DeleteDeployment(deploymentID string) error {
	req, err := c.controlRequest()
	if err != nil {
		return err
	}
	return c.execute(req, http.MethodDelete, c.urls.Control+"/v2/deployments/"+deploymentID, nil)
}

// ListRevisions fetches the revisions of a deployment, newest first.
func (c *Client) ListRevisions(deploymentID string) (*RevisionsList, error) {
	req, err := c.controlRequest()
	if err != nil {
		return nil, err
	}

	var result RevisionsList
	url := c.urls.Control + "/v2/deployments/" + deploymentID + "/revisions"
	if err := c.execute(req, http.MethodGet, url, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetRevision fetches a single revision of a deployment.
func (c *Client) GetRevision(deploymentID, revisionID string) (*Revision, error) {
	req, err := c.controlRequest()
	if err != nil {
		return nil, err
	}

	var result Revision
	url := c.urls.Control + "/v2/deployments/" + deploymentID + "/revisions/" + revisionID
	if err := c.execute(req, http.MethodGet, url, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
