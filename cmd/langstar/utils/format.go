// Package utils provides utility functions for the langstar CLI.
package utils

import (
	"fmt"
	"strings"
	"time"
)

// FormatDuration converts Go time.Duration values into human-readable string
// representations for CLI output display. Uses progressive time unit scaling
// to present durations in the most appropriate unit based on magnitude.
func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	} else if d < time.Hour {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	} else if d < 24*time.Hour {
		return fmt.Sprintf("%dh", int(d.Hours()))
	} else {
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	}
}

// ParseEnvVars converts KEY=VALUE strings from repeated --env flags into
// name/value pairs, rejecting malformed entries before any API call happens.
func ParseEnvVars(entries []string) (map[string]string, error) {
	env := make(map[string]string, len(entries))
	for _, entry := range entries {
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid env format '%s', expected KEY=VALUE", entry)
		}
		key := strings.TrimSpace(parts[0])
		if key == "" {
			return nil, fmt.Errorf("invalid env '%s', key must be non-empty", entry)
		}
		env[key] = parts[1]
	}
	return env, nil
}

// ParseRepoURL extracts the owner and repository name from a GitHub
// repository URL like https://github.com/owner/repo (an optional trailing
// ".git" is stripped).
func ParseRepoURL(repoURL string) (owner, repo string, err error) {
	trimmed := strings.TrimSuffix(strings.TrimSuffix(repoURL, "/"), ".git")
	trimmed = strings.TrimPrefix(trimmed, "https://")
	trimmed = strings.TrimPrefix(trimmed, "http://")
	parts := strings.Split(trimmed, "/")
	if len(parts) < 3 || parts[0] != "github.com" || parts[1] == "" || parts[2] == "" {
		return "", "", fmt.Errorf("cannot parse repository URL '%s' - expected format: https://github.com/owner/repo", repoURL)
	}
	return parts[1], parts[2], nil
}
