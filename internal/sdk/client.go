// Package sdk provides the API client layer for the langstar CLI.
//
// This package implements the complete HTTP client layer for communicating
// with the three JSON services behind the CLI: the prompt hub, the graph
// runtime, and the control plane. It handles request construction with the
// correct per-service header sets, response decoding, and structured error
// handling for reliable operations.
//
// CLIENT ARCHITECTURE:
// The Client wraps a single Resty HTTP client shared across services:
//   - Header Discipline: Each service gets exactly its own header set. The
//     prompt hub takes x-api-key plus optional scope headers, the control
//     plane takes X-Api-Key plus X-Tenant-Id, and the graph runtime takes
//     x-api-key only - scope headers never attach to graph-runtime calls.
//   - Functional Updates: WithOrganizationID, WithWorkspaceID, WithGraphURL
//     and WithBaseURLs return derived copies so per-call overrides never
//     mutate the client a caller already holds.
//   - Failure Model: One fixed timeout, no automatic retries. Errors reach
//     the caller as soon as they happen.
//
// RESPONSE HANDLING:
// Non-2xx responses become APIError values carrying the status code and the
// raw response body as text. Successful responses decode into caller-supplied
// structs; 204 and empty-body successes are tolerated wherever the caller
// passes a nil result (delete operations).
package sdk

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/codekiln/langstar/internal/logging"
	"github.com/codekiln/langstar/internal/version"
	"github.com/go-resty/resty/v2"
)

// Default service endpoints. Each can be overridden through the environment
// (useful for self-hosted installations and tests) or through WithBaseURLs.
const (
	DefaultSmithURL   = "https://api.smith.langchain.com"
	DefaultGraphURL   = "https://api.langgraph.cloud"
	DefaultControlURL = "https://api.host.langchain.com"

	EnvSmithBaseURL   = "LANGSMITH_BASE_URL"
	EnvGraphBaseURL   = "LANGGRAPH_BASE_URL"
	EnvControlBaseURL = "LANGGRAPH_CONTROL_PLANE_URL"

	// DefaultTimeout applies to every request. There is deliberately no
	// retry policy: a failed call surfaces immediately.
	DefaultTimeout = 30 * time.Second
)

// BaseURLs holds the endpoints for the three services.
type BaseURLs struct {
	Smith   string // prompt hub
	Graph   string // graph runtime
	Control string // control plane
}

// DefaultBaseURLs returns the service endpoints, honoring environment
// overrides for self-hosted installations.
func DefaultBaseURLs() BaseURLs {
	urls := BaseURLs{
		Smith:   DefaultSmithURL,
		Graph:   DefaultGraphURL,
		Control: DefaultControlURL,
	}
	if v := os.Getenv(EnvSmithBaseURL); v != "" {
		urls.Smith = v
	}
	if v := os.Getenv(EnvGraphBaseURL); v != "" {
		urls.Graph = v
	}
	if v := os.Getenv(EnvControlBaseURL); v != "" {
		urls.Control = v
	}
	return urls
}

// restyLogger routes Resty's internal logs through structured logging so
// HTTP-level noise follows the same level filtering as everything else.
type restyLogger struct{}

func (restyLogger) Errorf(format string, v ...interface{}) { logging.Error(format, v...) }
func (restyLogger) Warnf(format string, v ...interface{})  { logging.Warn(format, v...) }
func (restyLogger) Debugf(format string, v ...interface{}) { logging.Debug(format, v...) }

// Client is the shared handle for all three services. The zero value is not
// usable; construct with NewClient. Client values are cheap to copy and the
// With* builders return derived copies, so a Client can be treated as
// immutable by callers.
type Client struct {
	http *resty.Client
	auth AuthConfig
	urls BaseURLs

	// graphOverride, when set, replaces urls.Graph for graph-runtime
	// requests. Populated by WithGraphURL after deployment resolution.
	graphOverride string
}

// NewClient creates a client with default endpoints and timeout.
func NewClient(auth AuthConfig) *Client {
	return NewClientWithTimeout(auth, DefaultTimeout)
}

// NewClientWithTimeout creates a client with default endpoints and an
// explicit request timeout.
func NewClientWithTimeout(auth AuthConfig, timeout time.Duration) *Client {
	httpClient := resty.New()
	httpClient.SetTimeout(timeout)
	httpClient.SetRetryCount(0)
	httpClient.SetHeader("Accept", "application/json")
	httpClient.SetHeader("User-Agent", "langstar/"+version.LangstarVersion)
	httpClient.SetLogger(restyLogger{})

	// Request/response debug logging for troubleshooting with DEBUG=true
	httpClient.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
		logging.Debug("Making %s request to %s", req.Method, req.URL)
		return nil
	})
	httpClient.OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
		logging.Debug("Received response: %d %s from %s",
			resp.StatusCode(), resp.Status(), resp.Request.URL)
		return nil
	})

	return &Client{
		http: httpClient,
		auth: auth,
		urls: DefaultBaseURLs(),
	}
}

// Auth returns the credential bundle the client was built with.
func (c *Client) Auth() AuthConfig {
	return c.auth
}

// WithBaseURLs returns a derived client targeting the given endpoints.
// Empty fields keep the current value.
func (c *Client) WithBaseURLs(urls BaseURLs) *Client {
	derived := *c
	if urls.Smith != "" {
		derived.urls.Smith = urls.Smith
	}
	if urls.Graph != "" {
		derived.urls.Graph = urls.Graph
	}
	if urls.Control != "" {
		derived.urls.Control = urls.Control
	}
	return &derived
}

// WithOrganizationID returns a derived client scoped to the given
// organization. The original client is unchanged.
func (c *Client) WithOrganizationID(orgID string) *Client {
	derived := *c
	derived.auth.OrganizationID = orgID
	return &derived
}

// WithWorkspaceID returns a derived client scoped to the given workspace.
// The original client is unchanged.
func (c *Client) WithWorkspaceID(workspaceID string) *Client {
	derived := *c
	derived.auth.WorkspaceID = workspaceID
	return &derived
}

// WithGraphURL returns a derived client whose graph-runtime requests target
// the given URL instead of the default endpoint. Used after resolving a
// deployment's custom URL from the control plane.
func (c *Client) WithGraphURL(url string) *Client {
	derived := *c
	derived.graphOverride = strings.TrimSuffix(url, "/")
	return &derived
}

// GraphURL returns the effective graph-runtime endpoint for this client.
func (c *Client) GraphURL() string {
	if c.graphOverride != "" {
		return c.graphOverride
	}
	return c.urls.Graph
}

// smithRequest builds a prompt-hub request with the x-api-key header plus
// any configured scope headers. Fails with AuthError when the key is unset.
func (c *Client) smithRequest() (*resty.Request, error) {
	key, err := c.auth.RequireSmithKey()
	if err != nil {
		return nil, err
	}
	req := c.http.R().SetHeader("x-api-key", key)
	if c.auth.OrganizationID != "" {
		req.SetHeader("x-organization-id", c.auth.OrganizationID)
	}
	if c.auth.WorkspaceID != "" {
		req.SetHeader("X-Tenant-Id", c.auth.WorkspaceID)
	}
	return req, nil
}

// graphRequest builds a graph-runtime request. The graph runtime is
// deployment-scoped: it authenticates with x-api-key only and never sees
// organization or workspace headers.
func (c *Client) graphRequest() (*resty.Request, error) {
	key, err := c.auth.RequireGraphKey()
	if err != nil {
		return nil, err
	}
	return c.http.R().SetHeader("x-api-key", key), nil
}

// controlRequest builds a control-plane request with X-Api-Key and, when a
// workspace is configured, X-Tenant-Id.
func (c *Client) controlRequest() (*resty.Request, error) {
	key, err := c.auth.RequireSmithKey()
	if err != nil {
		return nil, err
	}
	req := c.http.R().SetHeader("X-Api-Key", key)
	if c.auth.WorkspaceID != "" {
		req.SetHeader("X-Tenant-Id", c.auth.WorkspaceID)
	}
	return req, nil
}

// execute sends the request and applies the shared response contract:
// connection failures are wrapped, non-2xx responses become APIError with
// the body text, and 2xx bodies decode into result (skipped when result is
// nil or the body is empty, which covers 204 deletes).
func (c *Client) execute(req *resty.Request, method, url string, result any) error {
	resp, err := req.Execute(method, url)
	if err != nil {
		return fmt.Errorf("failed to connect to API server at %s: %w", url, err)
	}

	if resp.IsError() {
		message := strings.TrimSpace(resp.String())
		if message == "" {
			message = "Unknown error"
		}
		return &APIError{Status: resp.StatusCode(), Message: message}
	}

	if result == nil || resp.StatusCode() == http.StatusNoContent || len(resp.Body()) == 0 {
		return nil
	}

	if err := json.Unmarshal(resp.Body(), result); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", url, err)
	}
	return nil
}
