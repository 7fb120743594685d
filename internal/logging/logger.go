// Package logging is the shared log layer for the assistant: stdlib
// log with a [subsystem] prefix. Debug output is gated by the
// SCHEDBOT_DEBUG environment variable so the interactive surfaces stay
// quiet by default.
package logging

import (
	"log"
	"os"
	"strings"
)

var debugEnabled = func() bool {
	v := os.Getenv("SCHEDBOT_DEBUG")
	return v == "true" || v == "1"
}()

// Info logs an informational message (always shown)
func Info(subsystem, format string, args ...any) {
	log.Printf("[%s] "+format, append([]any{subsystem}, args...)...)
}

// Debug logs a debug message (only shown if SCHEDBOT_DEBUG is set)
func Debug(subsystem, format string, args ...any) {
	if debugEnabled {
		log.Printf("[%s] "+format, append([]any{subsystem}, args...)...)
	}
}

// Truncate truncates a string to maxLen and adds ellipsis
func Truncate(s string, maxLen int) string {
	// Replace newlines with spaces for one-line logs
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.TrimSpace(s)
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
