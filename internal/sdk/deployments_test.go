package sdk

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

// Unknown server-side statuses must decode to UNKNOWN instead of failing the
// whole response.
func TestDeploymentStatusForwardCompatibility(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected DeploymentStatus
	}{
		{"known status", `"READY"`, StatusReady},
		{"known provisioning status", `"AWAITING_DATABASE"`, StatusAwaitingDatabase},
		{"new server-side status", `"SOMETHING_NEW"`, StatusUnknown},
		{"empty string", `""`, StatusUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var status DeploymentStatus
			if err := json.Unmarshal([]byte(tt.raw), &status); err != nil {
				t.Fatalf("Unmarshal failed: %v", err)
			}
			if status != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, status)
			}
		})
	}
}

func TestRevisionStatusForwardCompatibility(t *testing.T) {
	var status RevisionStatus
	if err := json.Unmarshal([]byte(`"HYPERSCALING"`), &status); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if status != RevisionUnknown {
		t.Errorf("Expected UNKNOWN for unrecognized revision status, got %s", status)
	}

	if err := json.Unmarshal([]byte(`"BUILD_FAILED"`), &status); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if status != RevisionBuildFailed {
		t.Errorf("Expected BUILD_FAILED, got %s", status)
	}
}

func TestParseDeploymentStatus(t *testing.T) {
	if _, err := ParseDeploymentStatus("READY"); err != nil {
		t.Errorf("Expected READY to parse, got: %v", err)
	}
	if _, err := ParseDeploymentStatus("ready"); err == nil {
		t.Error("Expected error for lowercase status")
	}
}

func TestParseDeploymentType(t *testing.T) {
	for _, valid := range []string{"dev_free", "dev", "prod"} {
		if _, err := ParseDeploymentType(valid); err != nil {
			t.Errorf("Expected %q to parse, got: %v", valid, err)
		}
	}
	if _, err := ParseDeploymentType("staging"); err == nil {
		t.Error("Expected error for invalid deployment type")
	}
}

func TestCustomURL(t *testing.T) {
	tests := []struct {
		name     string
		config   map[string]any
		expected string
		ok       bool
	}{
		{"absent source config", nil, "", false},
		{"absent key", map[string]any{"repo_url": "x"}, "", false},
		{"null value", map[string]any{"custom_url": nil}, "", false},
		{"non-string value", map[string]any{"custom_url": 42}, "", false},
		{"empty string", map[string]any{"custom_url": ""}, "", false},
		{"provisioned", map[string]any{"custom_url": "https://d.example.com"}, "https://d.example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Deployment{SourceConfig: tt.config}
			got, ok := d.CustomURL()
			if ok != tt.ok || got != tt.expected {
				t.Errorf("Expected (%q, %v), got (%q, %v)", tt.expected, tt.ok, got, ok)
			}
		})
	}
}

func TestListDeploymentsLimitBounds(t *testing.T) {
	tests := []struct {
		name     string
		limit    int
		expected string
	}{
		{"zero defaults to 20", 0, "20"},
		{"negative defaults to 20", -5, "20"},
		{"within bounds passes through", 50, "50"},
		{"over 100 capped", 500, "100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var query url.Values
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				query = r.URL.Query()
				w.Write([]byte(`{"resources":[],"offset":0}`))
			}))
			defer server.Close()

			client := NewClient(AuthConfig{SmithAPIKey: "key"}).WithBaseURLs(BaseURLs{Control: server.URL})
			if _, err := client.ListDeployments(tt.limit, 0, nil); err != nil {
				t.Fatalf("ListDeployments failed: %v", err)
			}
			if got := query.Get("limit"); got != tt.expected {
				t.Errorf("Expected limit %s on the wire, got %q", tt.expected, got)
			}
		})
	}
}

func TestListDeploymentsFilterParams(t *testing.T) {
	var query url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.Write([]byte(`{"resources":[],"offset":0}`))
	}))
	defer server.Close()

	client := NewClient(AuthConfig{SmithAPIKey: "key"}).WithBaseURLs(BaseURLs{Control: server.URL})

	// Unset filters stay off the wire entirely
	if _, err := client.ListDeployments(10, 0, &DeploymentFilters{}); err != nil {
		t.Fatalf("ListDeployments failed: %v", err)
	}
	for _, param := range []string{"name_contains", "status", "deployment_type", "image_version"} {
		if query.Has(param) {
			t.Errorf("Expected %s to be omitted when unset", param)
		}
	}

	filters := &DeploymentFilters{
		NameContains:   "agent",
		Status:         StatusReady,
		DeploymentType: TypeProd,
		ImageVersion:   "0.2.1",
	}
	if _, err := client.ListDeployments(10, 0, filters); err != nil {
		t.Fatalf("ListDeployments failed: %v", err)
	}
	if query.Get("name_contains") != "agent" || query.Get("status") != "READY" ||
		query.Get("deployment_type") != "prod" || query.Get("image_version") != "0.2.1" {
		t.Errorf("Filter params not all on the wire: %v", query)
	}
}

func TestDeleteDeploymentTolerates204(t *testing.T) {
	var method string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient(AuthConfig{SmithAPIKey: "key"}).WithBaseURLs(BaseURLs{Control: server.URL})
	if err := client.DeleteDeployment("11111111-2222-3333-4444-555555555555"); err != nil {
		t.Fatalf("DeleteDeployment failed on 204: %v", err)
	}
	if method != http.MethodDelete {
		t.Errorf("Expected DELETE, got %s", method)
	}
}

func TestPatchDeploymentOmitsAbsentSections(t *testing.T) {
	var body map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&body)
		w.Write([]byte(`{"id":"d1","name":"agent","source":"github","created_at":"","updated_at":"","status":"READY"}`))
	}))
	defer server.Close()

	client := NewClient(AuthConfig{SmithAPIKey: "key"}).WithBaseURLs(BaseURLs{Control: server.URL})
	patch := PatchDeploymentRequest{
		SourceRevisionConfig: map[string]any{"repo_ref": "release"},
	}
	if _, err := client.PatchDeployment("d1", patch); err != nil {
		t.Fatalf("PatchDeployment failed: %v", err)
	}

	if _, present := body["source_config"]; present {
		t.Error("Expected absent source_config to be omitted from the patch body")
	}
	revision, ok := body["source_revision_config"].(map[string]any)
	if !ok || revision["repo_ref"] != "release" {
		t.Errorf("Expected repo_ref in source_revision_config, got %v", body)
	}
}
