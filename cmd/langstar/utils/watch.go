// Package utils provides watch mode functionality for continuous CLI monitoring.
//
// This file implements real-time display capabilities for the langstar CLI,
// enabling users to monitor deployment and assistant state continuously
// without manual command repetition. The watch functionality provides live
// updates with clean terminal management and graceful interrupt handling.
//
// WATCH MODE ARCHITECTURE:
// The watch system uses a timer-based refresh loop combined with signal
// handling to provide responsive real-time monitoring:
//
//   - Periodic Updates: 5-second refresh intervals for live data display
//   - Signal Handling: Clean shutdown on SIGINT/SIGTERM for user interruption
//   - Terminal Management: Screen clearing and cursor positioning for smooth updates
//
// Watch mode eliminates the need to repeatedly run commands while waiting for
// a deployment to provision or assistants to appear, reducing cognitive load
// during operations and debugging sessions.
package utils

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/codekiln/langstar/internal/logging"
)

// RunWithWatch executes a function either once or repeatedly in watch mode with
// terminal management and graceful shutdown handling. Refreshes the display
// every 5 seconds until user interruption via SIGINT or SIGTERM signals.
//
// Handles display errors gracefully to maintain watch functionality even
// during transient API connectivity issues.
func RunWithWatch(fn func() error, enableWatch bool) error {
	if !enableWatch {
		return fn()
	}

	// Set up signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Create a ticker for periodic updates
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	// Clear screen and show initial data
	fmt.Print("\033[2J\033[H") // Clear screen and move cursor to top
	if err := fn(); err != nil {
		return err
	}

	for {
		select {
		case <-ticker.C:
			fmt.Print("\033[2J\033[H") // Clear screen and move cursor to top
			if err := fn(); err != nil {
				logging.Error("Error updating display: %v", err)
				continue
			}
		case <-sigChan:
			fmt.Println("\nWatch mode interrupted")
			return nil
		}
	}
}
