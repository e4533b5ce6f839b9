// Package sdk provides the API client layer for the langstar CLI.
//
// This file implements the graph-runtime assistant client. Assistants are
// deployment-scoped: every call goes to the graph runtime of one specific
// deployment (usually resolved to its custom URL first), authenticated with
// the graph API key only. Listing is a search with the query field entirely
// absent from the request body.
package sdk

import (
	"net/http"
)

// Assistant is a configured graph instance inside one deployment.
type Assistant struct {
	AssistantID string         `json:"assistant_id"`
	GraphID     string         `json:"graph_id"`
	Name        string         `json:"name"`
	Config      map[string]any `json:"config,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	CreatedAt   *string        `json:"created_at,omitempty"`
	UpdatedAt   *string        `json:"updated_at,omitempty"`
}

// AssistantSearchRequest is the body for POST /assistants/search. Query is
// omitted from the serialized body when empty - that is how a plain listing
// differs from a search on the wire.
type AssistantSearchRequest struct {
	Query  string `json:"query,omitempty"`
	Limit  int    `json:"limit"`
	Offset int    `json:"offset"`
}

// CreateAssistantRequest creates a new assistant for a graph.
type CreateAssistantRequest struct {
	GraphID  string         `json:"graph_id"`
	Name     string         `json:"name,omitempty"`
	Config   map[string]any `json:"config,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// UpdateAssistantRequest is a partial update; absent fields are left alone
// by the server.
type UpdateAssistantRequest struct {
	GraphID  string         `json:"graph_id,omitempty"`
	Name     string         `json:"name,omitempty"`
	Config   map[string]any `json:"config,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// ListAssistants lists assistants in the deployment this client targets.
// Implemented as a search with no query field in the body.
func (c *Client) ListAssistants(limit, offset int) ([]Assistant, error) {
	return c.searchAssistants(AssistantSearchRequest{Limit: normalizeLimit(limit), Offset: offset})
}

// SearchAssistants searches assistants by query string.
func (c *Client) SearchAssistants(query string, limit int) ([]Assistant, error) {
	return c.searchAssistants(AssistantSearchRequest{Query: query, Limit: normalizeLimit(limit)})
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return 20
	}
	return limit
}

func (c *Client) searchAssistants(search AssistantSearchRequest) ([]Assistant, error) {
	req, err := c.graphRequest()
	if err != nil {
		return nil, err
	}
	req.SetBody(search)

	var result []Assistant
	if err := c.execute(req, http.MethodPost, c.GraphURL()+"/assistants/search", &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetAssistant fetches a single assistant by ID.
func (c *Client) GetAssistant(assistantID string) (*Assistant, error) {
	req, err := c.graphRequest()
	if err != nil {
		return nil, err
	}

	var result Assistant
	if err := c.execute(req, http.MethodGet, c.GraphURL()+"/assistants/"+assistantID, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateAssistant creates a new assistant.
func (c *Client) CreateAssistant(create CreateAssistantRequest) (*Assistant, error) {
	req, err := c.graphRequest()
	if err != nil {
		return nil, err
	}
	req.SetBody(create)

	var result Assistant
	if err := c.execute(req, http.MethodPost, c.GraphURL()+"/assistants", &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// UpdateAssistant applies a partial update to an existing assistant.
func (c *Client) UpdateAssistant(assistantID string, update UpdateAssistantRequest) (*Assistant, error) {
	req, err := c.graphRequest()
	if err != nil {
		return nil, err
	}
	req.SetBody(update)

	var result Assistant
	if err := c.execute(req, http.MethodPatch, c.GraphURL()+"/assistants/"+assistantID, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteAssistant removes an assistant. The runtime answers 204 No Content
// on success, which the shared execution path tolerates.
func (c *Client) DeleteAssistant(assistantID string) error {
	req, err := c.graphRequest()
	if err != nil {
		return err
	}
	return c.execute(req, http.MethodDelete, c.GraphURL()+"/assistants/"+assistantID, nil)
}
