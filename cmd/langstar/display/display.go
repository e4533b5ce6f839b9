// Package display provides output formatting and display functions for langstar.
//
// This package handles all user-facing output formatting including table and
// JSON output for prompts, assistants, deployments, revisions, and workspace
// information. It provides consistent formatting across all langstar commands
// with support for different output formats and proper error handling for
// display operations.
//
// The display functions handle:
// - Prompt hub listings with like/download counts and relative timestamps
// - Assistant and deployment tables with truncated UUIDs
// - Deployment detail views including revision history
// - Consistent table formatting using text/tabwriter
// - JSON output with proper indentation and error handling
//
// All display functions respect the global configuration for output format
// while maintaining clean separation from business logic.
package display

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/codekiln/langstar/cmd/langstar/config"
	"github.com/codekiln/langstar/internal/logging"
	"github.com/codekiln/langstar/internal/sdk"
	internalutils "github.com/codekiln/langstar/internal/utils"
	"github.com/dustin/go-humanize"
)

// TruncateID shortens a UUID for table display.
func TruncateID(id string) string {
	return internalutils.TruncateIDSafe(id)
}

// OutputJSON writes any value as indented JSON to stdout.
func OutputJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		logging.Error("Failed to encode JSON: %v", err)
		return fmt.Errorf("failed to encode response")
	}
	return nil
}

// relativeTime renders an RFC3339 timestamp as a humanized age ("3 days ago").
// Unparseable or absent timestamps fall back to a dash or the raw string.
func relativeTime(ts *string) string {
	if ts == nil || *ts == "" {
		return "-"
	}
	parsed, err := time.Parse(time.RFC3339, *ts)
	if err != nil {
		return *ts
	}
	return humanize.Time(parsed)
}

// stringOrDash renders optional string fields in tables.
func stringOrDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

// visibilityLabel maps the public flag to the table column value.
func visibilityLabel(isPublic bool) string {
	if isPublic {
		return "public"
	}
	return "private"
}

// DisplayPrompts displays prompt hub listings in tabular or JSON format.
// Handles empty result sets gracefully.
func DisplayPrompts(prompts []sdk.Prompt) {
	if len(prompts) == 0 {
		if config.Global.Output == "json" {
			fmt.Println("[]")
		} else {
			fmt.Println("No prompts found")
		}
		return
	}

	if config.Global.Output == "json" {
		OutputJSON(prompts)
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "HANDLE\tVISIBILITY\tLIKES\tDOWNLOADS\tUPDATED")
	for _, p := range prompts {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			p.RepoHandle, visibilityLabel(p.IsPublic),
			humanize.Comma(int64(p.NumLikes)), humanize.Comma(int64(p.NumDownloads)),
			relativeTime(p.UpdatedAt))
	}
}

// DisplayPromptDetails displays a single prompt with its description and
// manifest in tabular or JSON format.
func DisplayPromptDetails(prompt *sdk.Prompt) {
	if config.Global.Output == "json" {
		OutputJSON(prompt)
		return
	}

	fmt.Printf("Handle:      %s\n", prompt.RepoHandle)
	fmt.Printf("ID:          %s\n", prompt.ID)
	fmt.Printf("Visibility:  %s\n", visibilityLabel(prompt.IsPublic))
	fmt.Printf("Likes:       %s\n", humanize.Comma(int64(prompt.NumLikes)))
	fmt.Printf("Downloads:   %s\n", humanize.Comma(int64(prompt.NumDownloads)))
	fmt.Printf("Description: %s\n", stringOrDash(prompt.Description))
	fmt.Printf("Created:     %s\n", relativeTime(prompt.CreatedAt))
	fmt.Printf("Updated:     %s\n", relativeTime(prompt.UpdatedAt))

	if prompt.Manifest != nil {
		fmt.Println("Manifest:")
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("  ", "  ")
		if err := encoder.Encode(prompt.Manifest); err != nil {
			logging.Error("Failed to encode manifest: %v", err)
		}
	}
}

// DisplayAssistants displays assistants of one deployment in tabular or JSON format.
func DisplayAssistants(assistants []sdk.Assistant) {
	if len(assistants) == 0 {
		if config.Global.Output == "json" {
			fmt.Println("[]")
		} else {
			fmt.Println("No assistants found")
		}
		return
	}

	if config.Global.Output == "json" {
		OutputJSON(assistants)
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "ID\tNAME\tGRAPH\tUPDATED")
	for _, a := range assistants {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			TruncateID(a.AssistantID), a.Name, a.GraphID, relativeTime(a.UpdatedAt))
	}
}

// DisplayAssistantDetails displays a single assistant including its config
// and metadata in tabular or JSON format.
func DisplayAssistantDetails(assistant *sdk.Assistant) {
	if config.Global.Output == "json" {
		OutputJSON(assistant)
		return
	}

	fmt.Printf("ID:       %s\n", assistant.AssistantID)
	fmt.Printf("Name:     %s\n", assistant.Name)
	fmt.Printf("Graph:    %s\n", assistant.GraphID)
	fmt.Printf("Created:  %s\n", relativeTime(assistant.CreatedAt))
	fmt.Printf("Updated:  %s\n", relativeTime(assistant.UpdatedAt))

	if assistant.Config != nil {
		fmt.Println("Config:")
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("  ", "  ")
		if err := encoder.Encode(assistant.Config); err != nil {
			logging.Error("Failed to encode config: %v", err)
		}
	}
}

// DisplayDeployments displays control-plane deployments in tabular or JSON format.
func DisplayDeployments(deployments []sdk.Deployment) {
	if len(deployments) == 0 {
		if config.Global.Output == "json" {
			fmt.Println("[]")
		} else {
			fmt.Println("No deployments found")
		}
		return
	}

	if config.Global.Output == "json" {
		OutputJSON(deployments)
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "ID\tNAME\tSOURCE\tSTATUS\tCREATED")
	for _, d := range deployments {
		created := d.CreatedAt
		if parsed, err := time.Parse(time.RFC3339, d.CreatedAt); err == nil {
			created = humanize.Time(parsed)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			TruncateID(d.ID), d.Name, d.Source, d.Status, created)
	}
}

// DisplayDeploymentDetails displays one deployment including its runtime URL
// and revision pointers in tabular or JSON format.
func DisplayDeploymentDetails(deployment *sdk.Deployment) {
	if config.Global.Output == "json" {
		OutputJSON(deployment)
		return
	}

	fmt.Printf("ID:       %s\n", deployment.ID)
	fmt.Printf("Name:     %s\n", deployment.Name)
	fmt.Printf("Source:   %s\n", deployment.Source)
	fmt.Printf("Status:   %s\n", deployment.Status)
	if url, ok := deployment.CustomURL(); ok {
		fmt.Printf("URL:      %s\n", url)
	} else {
		fmt.Printf("URL:      - (not provisioned yet)\n")
	}
	fmt.Printf("Latest:   %s\n", stringOrDash(deployment.LatestRevisionID))
	fmt.Printf("Active:   %s\n", stringOrDash(deployment.ActiveRevisionID))
	fmt.Printf("Created:  %s\n", deployment.CreatedAt)
	fmt.Printf("Updated:  %s\n", deployment.UpdatedAt)
}

// DisplayRevisions displays a deployment's revision history in tabular or JSON format.
func DisplayRevisions(revisions []sdk.Revision) {
	if len(revisions) == 0 {
		if config.Global.Output == "json" {
			fmt.Println("[]")
		} else {
			fmt.Println("No revisions found")
		}
		return
	}

	if config.Global.Output == "json" {
		OutputJSON(revisions)
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "ID\tSTATUS\tCREATED")
	for _, r := range revisions {
		fmt.Fprintf(w, "%s\t%s\t%s\n", TruncateID(r.ID), r.Status, relativeTime(r.CreatedAt))
	}
}

// DisplayOrganization displays the current organization in tabular or JSON format.
func DisplayOrganization(org *sdk.Organization) {
	if config.Global.Output == "json" {
		OutputJSON(org)
		return
	}

	fmt.Printf("ID:        %s\n", stringOrDash(org.ID))
	fmt.Printf("Name:      %s\n", stringOrDash(org.DisplayName))
	fmt.Printf("Handle:    %s\n", stringOrDash(org.Handle))
	fmt.Printf("Personal:  %t\n", org.IsPersonal)
}

// DisplayWorkspaces displays workspace listings in tabular or JSON format.
func DisplayWorkspaces(workspaces []sdk.Workspace) {
	if len(workspaces) == 0 {
		if config.Global.Output == "json" {
			fmt.Println("[]")
		} else {
			fmt.Println("No workspaces found")
		}
		return
	}

	if config.Global.Output == "json" {
		OutputJSON(workspaces)
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "ID\tNAME\tHANDLE")
	for _, ws := range workspaces {
		fmt.Fprintf(w, "%s\t%s\t%s\n", TruncateID(ws.ID), stringOrDash(ws.DisplayName), stringOrDash(ws.Handle))
	}
}
