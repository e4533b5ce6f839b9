package sdk

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// headerCapture records the headers of the last request a test server saw.
type headerCapture struct {
	hits    int
	headers http.Header
}

func captureServer(t *testing.T, capture *headerCapture, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capture.hits++
		capture.headers = r.Header.Clone()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestSmithRequestHeaders(t *testing.T) {
	var capture headerCapture
	server := captureServer(t, &capture, `{"repos":[]}`)

	client := NewClient(AuthConfig{
		SmithAPIKey:    "smith-key",
		OrganizationID: "org-1",
		WorkspaceID:    "ws-1",
	}).WithBaseURLs(BaseURLs{Smith: server.URL})

	if _, err := client.ListPrompts(10, 0, VisibilityAny); err != nil {
		t.Fatalf("ListPrompts failed: %v", err)
	}

	if got := capture.headers.Get("x-api-key"); got != "smith-key" {
		t.Errorf("Expected x-api-key 'smith-key', got %q", got)
	}
	if got := capture.headers.Get("x-organization-id"); got != "org-1" {
		t.Errorf("Expected x-organization-id 'org-1', got %q", got)
	}
	if got := capture.headers.Get("X-Tenant-Id"); got != "ws-1" {
		t.Errorf("Expected X-Tenant-Id 'ws-1', got %q", got)
	}
}

func TestSmithRequestOmitsUnsetScopeHeaders(t *testing.T) {
	var capture headerCapture
	server := captureServer(t, &capture, `{"repos":[]}`)

	client := NewClient(AuthConfig{SmithAPIKey: "smith-key"}).
		WithBaseURLs(BaseURLs{Smith: server.URL})

	if _, err := client.ListPrompts(10, 0, VisibilityAny); err != nil {
		t.Fatalf("ListPrompts failed: %v", err)
	}

	if _, present := capture.headers["X-Organization-Id"]; present {
		t.Error("Expected no x-organization-id header when organization is unset")
	}
	if _, present := capture.headers["X-Tenant-Id"]; present {
		t.Error("Expected no X-Tenant-Id header when workspace is unset")
	}
}

// The graph runtime is deployment-scoped: it must never receive organization
// or workspace headers even when both are configured.
func TestGraphRequestNeverSendsScopeHeaders(t *testing.T) {
	var capture headerCapture
	server := captureServer(t, &capture, `[]`)

	client := NewClient(AuthConfig{
		SmithAPIKey:    "smith-key",
		GraphAPIKey:    "graph-key",
		OrganizationID: "org-1",
		WorkspaceID:    "ws-1",
	}).WithGraphURL(server.URL)

	if _, err := client.ListAssistants(10, 0); err != nil {
		t.Fatalf("ListAssistants failed: %v", err)
	}

	if got := capture.headers.Get("x-api-key"); got != "graph-key" {
		t.Errorf("Expected x-api-key 'graph-key', got %q", got)
	}
	if _, present := capture.headers["X-Organization-Id"]; present {
		t.Error("Graph runtime request must not carry x-organization-id")
	}
	if _, present := capture.headers["X-Tenant-Id"]; present {
		t.Error("Graph runtime request must not carry X-Tenant-Id")
	}
}

func TestControlRequestHeaders(t *testing.T) {
	var capture headerCapture
	server := captureServer(t, &capture, `{"resources":[],"offset":0}`)

	client := NewClient(AuthConfig{
		SmithAPIKey: "smith-key",
		WorkspaceID: "ws-1",
	}).WithBaseURLs(BaseURLs{Control: server.URL})

	if _, err := client.ListDeployments(10, 0, nil); err != nil {
		t.Fatalf("ListDeployments failed: %v", err)
	}

	if got := capture.headers.Get("X-Api-Key"); got != "smith-key" {
		t.Errorf("Expected X-Api-Key 'smith-key', got %q", got)
	}
	if got := capture.headers.Get("X-Tenant-Id"); got != "ws-1" {
		t.Errorf("Expected X-Tenant-Id 'ws-1', got %q", got)
	}
}

// A missing API key must fail at request-build time with zero network calls.
func TestMissingKeyFailsBeforeRequest(t *testing.T) {
	var capture headerCapture
	server := captureServer(t, &capture, `{}`)

	client := NewClient(AuthConfig{}).WithBaseURLs(BaseURLs{
		Smith: server.URL, Graph: server.URL, Control: server.URL,
	})

	if _, err := client.ListPrompts(10, 0, VisibilityAny); err == nil {
		t.Fatal("Expected error for missing prompt hub key")
	} else {
		var authErr *AuthError
		if !errors.As(err, &authErr) {
			t.Errorf("Expected AuthError, got %T: %v", err, err)
		} else if authErr.EnvVar != EnvSmithAPIKey {
			t.Errorf("Expected env var %s in error, got %s", EnvSmithAPIKey, authErr.EnvVar)
		}
	}

	if _, err := client.ListAssistants(10, 0); err == nil {
		t.Fatal("Expected error for missing graph key")
	} else {
		var authErr *AuthError
		if !errors.As(err, &authErr) {
			t.Errorf("Expected AuthError, got %T: %v", err, err)
		}
	}

	if capture.hits != 0 {
		t.Errorf("Expected zero requests for missing keys, server saw %d", capture.hits)
	}
}

func TestAPIErrorCarriesStatusAndBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte("invalid payload"))
	}))
	defer server.Close()

	client := NewClient(AuthConfig{SmithAPIKey: "key"}).WithBaseURLs(BaseURLs{Smith: server.URL})
	_, err := client.GetPrompt("me/greeting")
	if err == nil {
		t.Fatal("Expected error for 422 response")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected APIError, got %T: %v", err, err)
	}
	if apiErr.Status != http.StatusUnprocessableEntity {
		t.Errorf("Expected status 422, got %d", apiErr.Status)
	}
	if apiErr.Message != "invalid payload" {
		t.Errorf("Expected body text in message, got %q", apiErr.Message)
	}
}

func TestAPIErrorEmptyBodyPlaceholder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(AuthConfig{SmithAPIKey: "key"}).WithBaseURLs(BaseURLs{Smith: server.URL})
	_, err := client.GetPrompt("me/greeting")

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected APIError, got %T: %v", err, err)
	}
	if apiErr.Message != "Unknown error" {
		t.Errorf("Expected 'Unknown error' placeholder, got %q", apiErr.Message)
	}
}

func TestConnectionErrorWrapped(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(AuthConfig{SmithAPIKey: "key"}).WithBaseURLs(BaseURLs{Smith: url})
	_, err := client.GetPrompt("me/greeting")
	if err == nil {
		t.Fatal("Expected connection error")
	}
	if !strings.Contains(err.Error(), "failed to connect to API server at") {
		t.Errorf("Expected wrapped connection error, got: %v", err)
	}
}

func TestWithGraphURLTrimsTrailingSlash(t *testing.T) {
	client := NewClient(AuthConfig{GraphAPIKey: "key"})
	derived := client.WithGraphURL("https://my-deployment.example.com/")
	if got := derived.GraphURL(); got != "https://my-deployment.example.com" {
		t.Errorf("Expected trailing slash trimmed, got %q", got)
	}
}

func TestDerivedClientsDoNotMutateOriginal(t *testing.T) {
	original := NewClient(AuthConfig{SmithAPIKey: "key"})

	scoped := original.WithOrganizationID("org-1").WithWorkspaceID("ws-1")
	if scoped.Auth().OrganizationID != "org-1" || scoped.Auth().WorkspaceID != "ws-1" {
		t.Error("Derived client missing scope values")
	}
	if original.Auth().OrganizationID != "" || original.Auth().WorkspaceID != "" {
		t.Error("Original client mutated by With* builders")
	}

	retargeted := original.WithGraphURL("https://other.example.com")
	if original.GraphURL() == retargeted.GraphURL() {
		t.Error("Original client graph URL changed by WithGraphURL")
	}
}
