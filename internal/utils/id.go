// Package utils provides common utility functions for the langstar CLI.
//
// This file implements ID truncation for display purposes. Deployments,
// assistants, and prompts are all identified by UUIDs; full 36-character
// IDs clutter tables and log lines, so displays use a short prefix while
// full IDs remain available in debug output and JSON mode.
package utils

// ShortIDLength is the display prefix length for UUIDs, long enough to be
// unambiguous in any realistic listing.
const ShortIDLength = 8

// TruncateIDSafe returns the first 8 characters of an ID for display,
// or the full string when it is already short.
func TruncateIDSafe(id string) string {
	if len(id) <= ShortIDLength {
		return id
	}
	return id[:ShortIDLength]
}
