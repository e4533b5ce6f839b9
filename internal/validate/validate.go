// Package validate provides input validation utilities for langstar CLI
// operations, ensuring user-supplied identifiers and flags are well formed
// before any network traffic happens.
//
// Implements validation rules for deployment IDs, prompt handles, URLs, and
// configuration parameters. Prevents malformed input from turning into
// confusing API errors halfway through a multi-step operation.
//
// VALIDATION COVERAGE:
//   - Deployment IDs: UUID format validation for get/delete targeting
//   - Prompt Handles: "owner/name" format validation for hub operations
//   - URLs: Repository and endpoint URL validation
//   - Configuration: Parameter validation for CLI flags and config values
//
// Used throughout CLI flag processing and handlers to ensure consistent
// input validation across all entry points.
package validate

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var (
	// Global validator instance using built-in validations
	validate *validator.Validate
)

func init() {
	validate = validator.New()
	// Using built-in validators: required, url, min, max - no custom registration needed
}

// ValidateField validates individual values against specified validation rules
// using the go-playground/validator library. Supports all built-in validation
// tags including URLs, numeric ranges, and required field validation.
//
// Example: ValidateField("https://github.com/owner/repo", "required,url")
func ValidateField(value interface{}, tag string) error {
	return validate.Var(value, tag)
}

// DeploymentID validates that an identifier is a well-formed UUID before it
// is used to target a deployment for get or delete operations. Catches typos
// locally instead of sending them to the control plane.
func DeploymentID(id string) error {
	if id == "" {
		return fmt.Errorf("deployment ID cannot be empty")
	}
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("invalid deployment ID '%s' - expected a UUID", id)
	}
	return nil
}

// PromptHandle validates an "owner/name" prompt handle. Both components must
// be present and non-empty.
func PromptHandle(handle string) error {
	if handle == "" {
		return fmt.Errorf("prompt handle cannot be empty")
	}
	parts := strings.SplitN(handle, "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return fmt.Errorf("invalid prompt handle '%s' - expected format: owner/name", handle)
	}
	return nil
}

// RepoURL validates a GitHub repository URL used as a deployment source.
func RepoURL(repoURL string) error {
	if err := ValidateField(repoURL, "required,url"); err != nil {
		return fmt.Errorf("invalid repository URL '%s' - expected format: https://github.com/owner/repo", repoURL)
	}
	return nil
}
