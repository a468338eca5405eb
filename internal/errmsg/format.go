// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import (
	"context"
	"errors"
	"fmt"

	"github.com/llehouerou/turntable/internal/audio"
	"github.com/llehouerou/turntable/internal/bandapi"
)

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Band API
	OpBandsLoad Op = "load bands"
	OpBandLoad  Op = "load band"

	// Playback
	OpPlaybackStart Op = "start playback"

	// State
	OpStateOpen   Op = "open state database"
	OpVolumeSave  Op = "save volume"
	OpBandRestore Op = "restore last band"

	// Initialization
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, reason(err))
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, reason(err))
}

// reason shortens well-known errors to what the user can act on.
func reason(err error) any {
	switch {
	case errors.Is(err, audio.ErrNotFound):
		return "song file not found"
	case errors.Is(err, bandapi.ErrNotFound):
		return "band not found"
	case errors.Is(err, context.DeadlineExceeded):
		return "request timed out"
	default:
		return err
	}
}
