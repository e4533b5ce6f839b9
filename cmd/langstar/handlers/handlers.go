// Package handlers provides command handler functions for langstar operations.
//
// This file contains shared infrastructure used by all resource handlers:
// client construction from the resolved configuration, and the interactive
// deletion confirmation. Handlers follow a consistent pattern: set up
// logging first, resolve configuration, run confirmation prompts BEFORE
// building any client so a declined destructive operation performs zero
// network calls, then execute and display.
package handlers

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/codekiln/langstar/cmd/langstar/config"
	"github.com/codekiln/langstar/internal/sdk"
)

// buildClient constructs an API client from resolved configuration and the
// global timeout flag.
func buildClient(resolved config.Resolved) *sdk.Client {
	return sdk.NewClientWithTimeout(resolved.Auth, time.Duration(config.Global.Timeout)*time.Second)
}

// confirmDeletion prompts the user to type 'yes' and reports whether they
// did. Anything else, including a read error on a closed stdin, counts as
// declining. Callers must invoke this before constructing a client.
func confirmDeletion(what string) bool {
	fmt.Printf("About to permanently delete %s.\nType 'yes' to confirm: ", what)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	return strings.TrimSpace(line) == "yes"
}
