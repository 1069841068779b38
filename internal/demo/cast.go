package demo

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
)

// castHeader is the first line of an asciicast v2 file
type castHeader struct {
	Version   int               `json:"version"`
	Width     int               `json:"width"`
	Height    int               `json:"height"`
	Timestamp int64             `json:"timestamp,omitempty"`
	Title     string            `json:"title,omitempty"`
	Env       map[string]string `json:"env,omitempty"`
}

// clearScreen moves the cursor home and clears, so every frame redraws fully
const clearScreen = "\x1b[H\x1b[2J"

// GenerateASCIICast writes frames as an asciicast v2 recording. Each frame
// is drawn after the sum of the delays before it; annotations become
// marker events.
func GenerateASCIICast(w io.Writer, frames []Frame, width, height int) error {
	header := castHeader{
		Version: 2,
		Width:   width,
		Height:  height,
		Title:   "tsplay",
		Env:     map[string]string{"TERM": "xterm-256color"},
	}
	enc := json.NewEncoder(w)
	if err := enc.Encode(header); err != nil {
		return fmt.Errorf("writing cast header: %w", err)
	}

	var at time.Duration
	for i, f := range frames {
		at += f.Delay
		seconds := at.Seconds()

		// Terminals expect CRLF line endings in raw output
		out := clearScreen + strings.ReplaceAll(f.Content, "\n", "\r\n")
		if err := enc.Encode([]any{seconds, "o", out}); err != nil {
			return fmt.Errorf("writing frame %d: %w", i, err)
		}
		if f.Annotation != "" {
			if err := enc.Encode([]any{seconds, "m", f.Annotation}); err != nil {
				return fmt.Errorf("writing marker %d: %w", i, err)
			}
		}
	}
	return nil
}
