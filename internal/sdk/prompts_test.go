package sdk

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

func promptPage() []Prompt {
	return []Prompt{
		{ID: "1", RepoHandle: "me/public-one", IsPublic: true},
		{ID: "2", RepoHandle: "me/private-one", IsPublic: false},
		{ID: "3", RepoHandle: "me/public-two", IsPublic: true},
		{ID: "4", RepoHandle: "me/private-two", IsPublic: false},
	}
}

func TestFilterByVisibility(t *testing.T) {
	page := promptPage()

	tests := []struct {
		name       string
		visibility Visibility
		expected   []string
	}{
		{"public only", VisibilityPublic, []string{"me/public-one", "me/public-two"}},
		{"private only", VisibilityPrivate, []string{"me/private-one", "me/private-two"}},
		{"any keeps everything", VisibilityAny, []string{"me/public-one", "me/private-one", "me/public-two", "me/private-two"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered := FilterByVisibility(page, tt.visibility)
			if len(filtered) != len(tt.expected) {
				t.Fatalf("Expected %d prompts, got %d", len(tt.expected), len(filtered))
			}
			for i, handle := range tt.expected {
				if filtered[i].RepoHandle != handle {
					t.Errorf("Position %d: expected %s, got %s", i, handle, filtered[i].RepoHandle)
				}
			}
		})
	}
}

func TestFilterByVisibilityIdempotent(t *testing.T) {
	once := FilterByVisibility(promptPage(), VisibilityPublic)
	twice := FilterByVisibility(once, VisibilityPublic)
	if len(once) != len(twice) {
		t.Errorf("Filtering twice changed the result: %d vs %d", len(once), len(twice))
	}
}

func TestParseVisibility(t *testing.T) {
	for _, valid := range []string{"public", "private", "any"} {
		if _, err := ParseVisibility(valid); err != nil {
			t.Errorf("Expected %q to parse, got: %v", valid, err)
		}
	}
	if _, err := ParseVisibility("everyone"); err == nil {
		t.Error("Expected error for invalid visibility")
	}
}

// The limit bounds the fetched page, not the filtered result: a filtered
// listing can legitimately return fewer items than the limit.
func TestListPromptsFiltersAfterFetch(t *testing.T) {
	var query url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.Write([]byte(`{"repos":[
			{"id":"1","repo_handle":"me/public-one","is_public":true},
			{"id":"2","repo_handle":"me/private-one","is_public":false},
			{"id":"3","repo_handle":"me/private-two","is_public":false},
			{"id":"4","repo_handle":"me/public-two","is_public":true}
		]}`))
	}))
	defer server.Close()

	client := NewClient(AuthConfig{SmithAPIKey: "key"}).WithBaseURLs(BaseURLs{Smith: server.URL})
	prompts, err := client.ListPrompts(4, 0, VisibilityPublic)
	if err != nil {
		t.Fatalf("ListPrompts failed: %v", err)
	}

	if query.Get("limit") != "4" {
		t.Errorf("Expected limit=4 on the wire, got %q", query.Get("limit"))
	}
	if len(prompts) != 2 {
		t.Errorf("Expected 2 public prompts after filtering a page of 4, got %d", len(prompts))
	}
}

func TestListPromptsDefaultLimit(t *testing.T) {
	var query url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.Write([]byte(`{"repos":[]}`))
	}))
	defer server.Close()

	client := NewClient(AuthConfig{SmithAPIKey: "key"}).WithBaseURLs(BaseURLs{Smith: server.URL})
	if _, err := client.ListPrompts(0, 0, VisibilityAny); err != nil {
		t.Fatalf("ListPrompts failed: %v", err)
	}

	if query.Get("limit") != "20" {
		t.Errorf("Expected default limit 20, got %q", query.Get("limit"))
	}
	if query.Get("offset") != "0" {
		t.Errorf("Expected offset 0, got %q", query.Get("offset"))
	}
}

func TestSearchPromptsQueryParam(t *testing.T) {
	var query url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.Write([]byte(`{"repos":[]}`))
	}))
	defer server.Close()

	client := NewClient(AuthConfig{SmithAPIKey: "key"}).WithBaseURLs(BaseURLs{Smith: server.URL})
	if _, err := client.SearchPrompts("summarization", 5, VisibilityAny); err != nil {
		t.Fatalf("SearchPrompts failed: %v", err)
	}

	if query.Get("query") != "summarization" {
		t.Errorf("Expected query param 'summarization', got %q", query.Get("query"))
	}
	if query.Get("limit") != "5" {
		t.Errorf("Expected limit 5, got %q", query.Get("limit"))
	}
}

func TestGetPromptUnwrapsResponse(t *testing.T) {
	var path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		w.Write([]byte(`{"repo":{"id":"1","repo_handle":"me/greeting","is_public":false,"num_likes":3}}`))
	}))
	defer server.Close()

	client := NewClient(AuthConfig{SmithAPIKey: "key"}).WithBaseURLs(BaseURLs{Smith: server.URL})
	prompt, err := client.GetPrompt("me/greeting")
	if err != nil {
		t.Fatalf("GetPrompt failed: %v", err)
	}

	if path != "/api/v1/repos/me/greeting" {
		t.Errorf("Expected repos path, got %q", path)
	}
	if prompt.RepoHandle != "me/greeting" || prompt.NumLikes != 3 {
		t.Errorf("Unexpected prompt decoded: %+v", prompt)
	}
}

func TestPushPromptPathAndResponse(t *testing.T) {
	var method, path string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		w.Write([]byte(`{"commit":{"commit_hash":"abc123"}}`))
	}))
	defer server.Close()

	client := NewClient(AuthConfig{SmithAPIKey: "key"}).WithBaseURLs(BaseURLs{Smith: server.URL})
	response, err := client.PushPrompt("me", "greeting", CommitRequest{
		Manifest: map[string]any{"type": "prompt", "template": "Hello {name}"},
	})
	if err != nil {
		t.Fatalf("PushPrompt failed: %v", err)
	}

	if method != http.MethodPost {
		t.Errorf("Expected POST, got %s", method)
	}
	if path != "/api/v1/commits/me/greeting" {
		t.Errorf("Expected commits path, got %q", path)
	}
	if response.Commit.CommitHash != "abc123" {
		t.Errorf("Expected commit hash abc123, got %q", response.Commit.CommitHash)
	}
}
