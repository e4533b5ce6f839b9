// Package config provides configuration management for the langstar CLI.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/codekiln/langstar/internal/logging"
	"github.com/codekiln/langstar/internal/validate"
	"github.com/spf13/cobra"
)

// ValidateGlobalFlags validates all global flags before running any command.
// Also applies the output-format fallback chain when the --output flag was
// not given explicitly: config file first, then LANGSTAR_OUTPUT_FORMAT.
func ValidateGlobalFlags(cmd *cobra.Command, args []string) error {
	if !cmd.Flags().Changed("output") {
		if resolved, err := Resolve("", ""); err == nil && resolved.OutputFormat != "" {
			Global.Output = resolved.OutputFormat
		}
	}

	if err := ValidateOutputFormat(); err != nil {
		return err
	}

	if err := ValidateLogLevel(); err != nil {
		return err
	}

	if err := ValidateTimeout(); err != nil {
		return err
	}

	return nil
}

// ValidateOutputFormat validates the --output flag
func ValidateOutputFormat() error {
	validOutputs := map[string]bool{
		"table": true,
		"json":  true,
	}
	if !validOutputs[Global.Output] {
		logging.Error("Invalid output format '%s' - valid formats are: table, json", Global.Output)
		return fmt.Errorf("invalid output format - valid: table, json")
	}
	return nil
}

// ValidateLogLevel validates the --log-level flag
func ValidateLogLevel() error {
	if err := logging.ValidateLogLevel(Global.LogLevel); err != nil {
		logging.Error("Invalid log level '%s' - valid levels are: DEBUG, INFO, WARN, ERROR", Global.LogLevel)
		return fmt.Errorf("invalid log level - valid: DEBUG, INFO, WARN, ERROR")
	}
	return nil
}

// ValidateTimeout validates the --timeout flag
func ValidateTimeout() error {
	if err := validate.ValidatePositiveTimeout(time.Duration(Global.Timeout)*time.Second, "timeout"); err != nil {
		logging.Error("Invalid timeout %d - must be a positive number of seconds", Global.Timeout)
		return fmt.Errorf("timeout must be a positive number of seconds")
	}
	return nil
}

// WarnImplicitScope prints a one-line stderr advisory when both organization
// and workspace scope come from implicit sources. Written directly to stderr
// rather than the logger so it survives the CLI's default log suppression.
func WarnImplicitScope(r Resolved) {
	if r.ImplicitScopeOverlap() {
		fmt.Fprintln(os.Stderr,
			"Note: both organization and workspace scope are configured; the workspace (narrower) scope takes effect on the server")
	}
}
