package workflow

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/codekiln/langstar/internal/sdk"
)

func deploymentListServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"resources":[
			{"id":"11111111-1111-1111-1111-111111111111","name":"my-agent","source":"github",
			 "created_at":"","updated_at":"","status":"READY",
			 "source_config":{"custom_url":"https://my-agent.example.com/"}},
			{"id":"22222222-2222-2222-2222-222222222222","name":"provisioning","source":"github",
			 "created_at":"","updated_at":"","status":"AWAITING_DATABASE",
			 "source_config":{"custom_url":null}}
		],"offset":0}`))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestResolveGraphClientByName(t *testing.T) {
	server := deploymentListServer(t)
	client := sdk.NewClient(sdk.AuthConfig{SmithAPIKey: "key", GraphAPIKey: "gkey"}).
		WithBaseURLs(sdk.BaseURLs{Control: server.URL})

	graphClient, deployment, err := ResolveGraphClient(client, "my-agent")
	if err != nil {
		t.Fatalf("ResolveGraphClient failed: %v", err)
	}
	if deployment.ID != "11111111-1111-1111-1111-111111111111" {
		t.Errorf("Matched wrong deployment: %s", deployment.ID)
	}
	if got := graphClient.GraphURL(); got != "https://my-agent.example.com" {
		t.Errorf("Expected derived client targeting custom URL without trailing slash, got %q", got)
	}
}

func TestResolveGraphClientByID(t *testing.T) {
	server := deploymentListServer(t)
	client := sdk.NewClient(sdk.AuthConfig{SmithAPIKey: "key", GraphAPIKey: "gkey"}).
		WithBaseURLs(sdk.BaseURLs{Control: server.URL})

	_, deployment, err := ResolveGraphClient(client, "11111111-1111-1111-1111-111111111111")
	if err != nil {
		t.Fatalf("ResolveGraphClient failed: %v", err)
	}
	if deployment.Name != "my-agent" {
		t.Errorf("Matched wrong deployment: %s", deployment.Name)
	}
}

func TestResolveGraphClientNotFound(t *testing.T) {
	server := deploymentListServer(t)
	client := sdk.NewClient(sdk.AuthConfig{SmithAPIKey: "key"}).
		WithBaseURLs(sdk.BaseURLs{Control: server.URL})

	_, _, err := ResolveGraphClient(client, "no-such-deployment")
	if err == nil {
		t.Fatal("Expected error for unknown deployment")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("Expected not-found error, got: %v", err)
	}
}

func TestResolveGraphClientNoCustomURL(t *testing.T) {
	server := deploymentListServer(t)
	client := sdk.NewClient(sdk.AuthConfig{SmithAPIKey: "key"}).
		WithBaseURLs(sdk.BaseURLs{Control: server.URL})

	_, _, err := ResolveGraphClient(client, "provisioning")
	if err == nil {
		t.Fatal("Expected error for deployment without custom URL")
	}
	if !strings.Contains(err.Error(), "no custom URL") {
		t.Errorf("Expected no-custom-URL error, got: %v", err)
	}
	if !strings.Contains(err.Error(), "AWAITING_DATABASE") {
		t.Errorf("Expected status in error, got: %v", err)
	}
}
