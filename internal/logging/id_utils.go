// Package logging provides ID formatting utilities for consistent ID display
// across all logging contexts in the langstar CLI.
//
// Implements intelligent ID truncation that preserves full UUIDs in debug
// contexts while providing user-friendly short IDs in info/warning contexts,
// improving log readability without sacrificing traceability when detailed
// debugging is needed.
package logging

import (
	"github.com/charmbracelet/log"
	"github.com/codekiln/langstar/internal/utils"
)

// FormatID formats an ID for logging based on the current log level context.
// Returns the full UUID for debug logging to ensure complete traceability
// during troubleshooting, while returning a truncated 8-character ID for
// other log levels to improve readability.
func FormatID(id string) string {
	// If debug level is enabled, show full IDs for complete traceability
	// Use stderr logger since debug messages go to stderr
	if stderrLogger.GetLevel() <= log.DebugLevel {
		return id
	}

	// For info/warn/error/success contexts, use truncated IDs for readability
	return utils.TruncateIDSafe(id)
}

// FormatDeploymentID formats a deployment ID for logging with context-aware truncation.
//
// Usage: logging.Info("Created deployment %s", logging.FormatDeploymentID(id))
func FormatDeploymentID(deploymentID string) string {
	return FormatID(deploymentID)
}

// FormatAssistantID formats an assistant ID for logging with context-aware truncation.
//
// Usage: logging.Info("Deleted assistant %s", logging.FormatAssistantID(id))
func FormatAssistantID(assistantID string) string {
	return FormatID(assistantID)
}
