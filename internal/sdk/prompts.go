// Package sdk provides the API client layer for the langstar CLI.
//
// This file implements the prompt-hub resource client for versioned prompt
// templates. List and search share the same repos endpoint; search adds a
// query parameter. Both apply the visibility filter CLIENT-SIDE after the
// page is fetched: the limit parameter bounds the raw page, not the filtered
// result, so a filtered listing can return fewer items than the limit even
// when more matching prompts exist on later pages. That truncation is
// intentional and pages are never topped up.
package sdk

import (
	"fmt"
	"net/http"
	"strconv"
)

// Visibility filters prompt listings by their public flag.
type Visibility string

const (
	// VisibilityPublic keeps only public prompts.
	VisibilityPublic Visibility = "public"
	// VisibilityPrivate keeps only private prompts.
	VisibilityPrivate Visibility = "private"
	// VisibilityAny keeps everything; filtering with it is the identity.
	VisibilityAny Visibility = "any"
)

// ParseVisibility converts a user-supplied string into a Visibility value.
func ParseVisibility(s string) (Visibility, error) {
	switch Visibility(s) {
	case VisibilityPublic, VisibilityPrivate, VisibilityAny:
		return Visibility(s), nil
	}
	return "", fmt.Errorf("invalid visibility %q - valid: public, private, any", s)
}

// Prompt represents a versioned prompt template repository in the hub.
type Prompt struct {
	ID           string         `json:"id"`
	RepoHandle   string         `json:"repo_handle"`
	Description  *string        `json:"description,omitempty"`
	NumLikes     int            `json:"num_likes"`
	NumDownloads int            `json:"num_downloads"`
	Manifest     map[string]any `json:"manifest,omitempty"`
	CreatedAt    *string        `json:"created_at,omitempty"`
	UpdatedAt    *string        `json:"updated_at,omitempty"`
	IsPublic     bool           `json:"is_public"`
}

// CommitRequest is the payload for pushing a new version of a prompt.
type CommitRequest struct {
	Manifest      map[string]any `json:"manifest"`
	ParentCommit  *string        `json:"parent_commit,omitempty"`
	ExampleRunIDs []string       `json:"example_run_ids,omitempty"`
}

// CommitResponse is returned after a successful push.
type CommitResponse struct {
	Commit CommitData `json:"commit"`
}

// CommitData identifies the created commit.
type CommitData struct {
	CommitHash string  `json:"commit_hash"`
	URL        *string `json:"url,omitempty"`
}

// CreateRepoRequest creates a new prompt repository before the first push.
type CreateRepoRequest struct {
	RepoHandle  string   `json:"repo_handle"`
	Description *string  `json:"description"`
	Readme      *string  `json:"readme"`
	IsPublic    bool     `json:"is_public"`
	Tags        []string `json:"tags"`
}

// repos listing and get responses arrive wrapped
type listReposResponse struct {
	Repos []Prompt `json:"repos"`
}

type repoResponse struct {
	Repo Prompt `json:"repo"`
}

// FilterByVisibility applies the client-side visibility filter to a fetched
// page. Idempotent: filtering an already-filtered slice is a no-op, and
// VisibilityAny returns the input unchanged.
func FilterByVisibility(prompts []Prompt, visibility Visibility) []Prompt {
	if visibility == VisibilityAny {
		return prompts
	}
	filtered := make([]Prompt, 0, len(prompts))
	for _, p := range prompts {
		switch visibility {
		case VisibilityPublic:
			if p.IsPublic {
				filtered = append(filtered, p)
			}
		case VisibilityPrivate:
			if !p.IsPublic {
				filtered = append(filtered, p)
			}
		}
	}
	return filtered
}

// ListPrompts fetches a page of prompts and filters it by visibility.
// The limit bounds the fetched page, not the filtered result.
func (c *Client) ListPrompts(limit, offset int, visibility Visibility) ([]Prompt, error) {
	if limit <= 0 {
		limit = 20
	}
	req, err := c.smithRequest()
	if err != nil {
		return nil, err
	}
	req.SetQueryParams(map[string]string{
		"limit":  strconv.Itoa(limit),
		"offset": strconv.Itoa(offset),
	})

	var result listReposResponse
	if err := c.execute(req, http.MethodGet, c.urls.Smith+"/api/v1/repos/", &result); err != nil {
		return nil, err
	}
	return FilterByVisibility(result.Repos, visibility), nil
}

// SearchPrompts searches prompts by query string and filters the fetched
// page by visibility. Uses the same repos endpoint as ListPrompts with a
// query parameter added.
func (c *Client) SearchPrompts(query string, limit int, visibility Visibility) ([]Prompt, error) {
	if limit <= 0 {
		limit = 20
	}
	req, err := c.smithRequest()
	if err != nil {
		return nil, err
	}
	req.SetQueryParams(map[string]string{
		"query": query,
		"limit": strconv.Itoa(limit),
	})

	var result listReposResponse
	if err := c.execute(req, http.MethodGet, c.urls.Smith+"/api/v1/repos/", &result); err != nil {
		return nil, err
	}
	return FilterByVisibility(result.Repos, visibility), nil
}

// GetPrompt fetches a single prompt by handle ("owner/name").
func (c *Client) GetPrompt(handle string) (*Prompt, error) {
	req, err := c.smithRequest()
	if err != nil {
		return nil, err
	}

	var result repoResponse
	if err := c.execute(req, http.MethodGet, c.urls.Smith+"/api/v1/repos/"+handle, &result); err != nil {
		return nil, err
	}
	return &result.Repo, nil
}

// CreateRepo creates a new prompt repository. Used by the push pipeline when
// the target repository does not exist yet.
func (c *Client) CreateRepo(create CreateRepoRequest) (*Prompt, error) {
	req, err := c.smithRequest()
	if err != nil {
		return nil, err
	}
	req.SetBody(create)

	var result repoResponse
	if err := c.execute(req, http.MethodPost, c.urls.Smith+"/api/v1/repos", &result); err != nil {
		return nil, err
	}
	return &result.Repo, nil
}

// PushPrompt pushes a new commit to an existing prompt repository.
func (c *Client) PushPrompt(owner, repo string, commit CommitRequest) (*CommitResponse, error) {
	req, err := c.smithRequest()
	if err != nil {
		return nil, err
	}
	req.SetBody(commit)

	var result CommitResponse
	url := fmt.Sprintf("%s/api/v1/commits/%s/%s", c.urls.Smith, owner, repo)
	if err := c.execute(req, http.MethodPost, url, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
