package sdk

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// A plain listing is a search with the query field entirely absent from the
// body - that absence is the only difference on the wire.
func TestListAssistantsOmitsQueryField(t *testing.T) {
	var body map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&body)
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(AuthConfig{GraphAPIKey: "key"}).WithGraphURL(server.URL)
	if _, err := client.ListAssistants(0, 5); err != nil {
		t.Fatalf("ListAssistants failed: %v", err)
	}

	if _, present := body["query"]; present {
		t.Error("Expected query field absent from listing body")
	}
	if body["limit"] != float64(20) {
		t.Errorf("Expected default limit 20, got %v", body["limit"])
	}
	if body["offset"] != float64(5) {
		t.Errorf("Expected offset 5, got %v", body["offset"])
	}
}

func TestSearchAssistantsIncludesQuery(t *testing.T) {
	var body map[string]any
	var path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		json.NewDecoder(r.Body).Decode(&body)
		w.Write([]byte(`[{"assistant_id":"a1","graph_id":"agent","name":"support"}]`))
	}))
	defer server.Close()

	client := NewClient(AuthConfig{GraphAPIKey: "key"}).WithGraphURL(server.URL)
	assistants, err := client.SearchAssistants("support", 10)
	if err != nil {
		t.Fatalf("SearchAssistants failed: %v", err)
	}

	if path != "/assistants/search" {
		t.Errorf("Expected /assistants/search, got %q", path)
	}
	if body["query"] != "support" {
		t.Errorf("Expected query 'support' in body, got %v", body["query"])
	}
	if len(assistants) != 1 || assistants[0].AssistantID != "a1" {
		t.Errorf("Unexpected assistants decoded: %+v", assistants)
	}
}

func TestUpdateAssistantUsesPatch(t *testing.T) {
	var method string
	var body map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		json.NewDecoder(r.Body).Decode(&body)
		w.Write([]byte(`{"assistant_id":"a1","graph_id":"agent","name":"renamed"}`))
	}))
	defer server.Close()

	client := NewClient(AuthConfig{GraphAPIKey: "key"}).WithGraphURL(server.URL)
	assistant, err := client.UpdateAssistant("a1", UpdateAssistantRequest{Name: "renamed"})
	if err != nil {
		t.Fatalf("UpdateAssistant failed: %v", err)
	}

	if method != http.MethodPatch {
		t.Errorf("Expected PATCH, got %s", method)
	}
	// Partial update: absent fields must stay out of the body
	if _, present := body["graph_id"]; present {
		t.Error("Expected absent graph_id omitted from update body")
	}
	if assistant.Name != "renamed" {
		t.Errorf("Expected updated name, got %q", assistant.Name)
	}
}

func TestDeleteAssistantTolerates204(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient(AuthConfig{GraphAPIKey: "key"}).WithGraphURL(server.URL)
	if err := client.DeleteAssistant("a1"); err != nil {
		t.Fatalf("DeleteAssistant failed on 204: %v", err)
	}
}
