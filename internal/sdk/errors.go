// Package sdk provides the API client layer for the langstar CLI.
//
// This file defines the typed errors returned by client operations. Callers
// branch on these with errors.As: AuthError means a request could not even be
// built because the required API key is missing, while APIError carries the
// HTTP status and raw response body from a failed call so commands can react
// to specific statuses (404 during integration discovery, for example).
package sdk

import "fmt"

// AuthError indicates a required API key was not configured. Raised at
// request-build time, before any network traffic happens.
type AuthError struct {
	// Service names the credential that was missing, e.g. "prompt hub"
	// or "graph runtime".
	Service string
	// EnvVar is the environment variable that would supply the key.
	EnvVar string
}

// Error implements the error interface with a hint at how to fix the problem.
func (e *AuthError) Error() string {
	return fmt.Sprintf("missing %s API key - set %s or add it to the config file", e.Service, e.EnvVar)
}

// APIError represents a non-2xx response from one of the services. Message
// holds the raw response body as text; when the body cannot be read the
// message degrades to a placeholder but the status is always preserved.
type APIError struct {
	Status  int
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("API request failed with status %d: %s", e.Status, e.Message)
}
