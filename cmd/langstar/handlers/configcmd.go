// Package handlers provides command handler functions for langstar
// configuration file operations.
//
// This file contains the config show and config set handlers. Show always
// redacts API keys; set goes through the read-merge-write cycle in the
// config package so unrelated fields survive every update.
package handlers

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/codekiln/langstar/cmd/langstar/config"
	"github.com/codekiln/langstar/cmd/langstar/display"
	"github.com/codekiln/langstar/cmd/langstar/utils"
	"github.com/codekiln/langstar/internal/logging"
	"github.com/codekiln/langstar/internal/validate"
	"github.com/spf13/cobra"
)

// redactKey masks an API key for display, keeping the last four characters
// so keys remain distinguishable.
func redactKey(key string) string {
	if key == "" {
		return "(not set)"
	}
	if len(key) <= 4 {
		return "****"
	}
	return "****" + key[len(key)-4:]
}

func displayValue(value string) string {
	if value == "" {
		return "(not set)"
	}
	return value
}

// HandleConfigShow handles the config show subcommand.
func HandleConfigShow(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	path, err := config.FilePath()
	if err != nil {
		return err
	}

	cfg, err := config.LoadFile()
	if err != nil {
		return err
	}

	if config.Global.Output == "json" {
		redacted := map[string]string{
			"config_file":           path,
			"langsmith_api_key":     redactKey(cfg.SmithAPIKey),
			"langgraph_api_key":     redactKey(cfg.GraphAPIKey),
			"organization_id":       cfg.OrganizationID,
			"workspace_id":          cfg.WorkspaceID,
			"github_integration_id": cfg.IntegrationID,
			"output_format":         cfg.OutputFormat,
		}
		return display.OutputJSON(redacted)
	}

	fmt.Printf("Config file: %s\n\n", path)
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tVALUE")
	fmt.Fprintf(w, "langsmith_api_key\t%s\n", redactKey(cfg.SmithAPIKey))
	fmt.Fprintf(w, "langgraph_api_key\t%s\n", redactKey(cfg.GraphAPIKey))
	fmt.Fprintf(w, "organization_id\t%s\n", displayValue(cfg.OrganizationID))
	fmt.Fprintf(w, "workspace_id\t%s\n", displayValue(cfg.WorkspaceID))
	fmt.Fprintf(w, "github_integration_id\t%s\n", displayValue(cfg.IntegrationID))
	fmt.Fprintf(w, "output_format\t%s\n", displayValue(cfg.OutputFormat))
	w.Flush()
	return nil
}

// HandleConfigSet handles the config set subcommand.
func HandleConfigSet(cmd *cobra.Command, args []string) error {
	utils.SetupLogging()

	key, value := args[0], args[1]
	if err := validate.ValidateRequiredString(value, "value"); err != nil {
		return err
	}
	if err := config.SetField(key, value); err != nil {
		return err
	}

	path, _ := config.FilePath()
	fmt.Printf("Updated %s in %s\n", key, path)
	logging.Success("Successfully set %s", key)
	return nil
}
