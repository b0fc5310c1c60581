// Package tui provides the Bubble Tea integration for bricker.
// The arena runs on its own frame goroutine; this package carries frames,
// keys and dialog answers between it and the Bubble Tea program.
package tui

import (
	"time"
)

// FrameMsg carries one rendered frame from the frame loop to the model.
type FrameMsg string

// DialogMsg asks the model to show the end-of-game dialog.
type DialogMsg struct {
	Message string
}

// tickInterval returns the frame period for a tick rate in Hz.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 60
	}
	return time.Second / time.Duration(tickRate)
}
