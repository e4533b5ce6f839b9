// Package version provides centralized version information for the langstar CLI.
// The version follows semantic versioning (semver) conventions and is surfaced
// through the root command's --version flag.
package version

// LangstarVersion holds the current langstar CLI version.
// Format: major.minor.patch[-prerelease][+build]
const LangstarVersion = "0.1.0-dev"
