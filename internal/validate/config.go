// Package validate provides configuration validation utilities for langstar
// components.
//
// This file implements common validation patterns used by the CLI config
// package to ensure consistency and reduce duplication. All functions
// leverage the go-playground/validator library for standardized validation
// behavior.
package validate

import (
	"fmt"
	"time"
)

// ValidateRequiredString validates that a string field is not empty.
// Uses the validator library for consistent error handling across config validation.
func ValidateRequiredString(value, fieldName string) error {
	if err := ValidateField(value, "required"); err != nil {
		return fmt.Errorf("%s cannot be empty", fieldName)
	}
	return nil
}

// ValidatePositiveTimeout validates that a timeout duration is positive (> 0).
// Prevents timeout configurations that would cause infinite waits or
// immediate failures in API operations.
func ValidatePositiveTimeout(timeout time.Duration, name string) error {
	if timeout <= 0 {
		return fmt.Errorf("%s must be positive", name)
	}
	return nil
}
