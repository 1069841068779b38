// Package demo provides infrastructure for generating demos of tsplay.
// It drives the real app model with fake clipboard and browser collaborators
// to create deterministic, reproducible recordings.
package demo

import (
	"fmt"
	"time"

	"github.com/zhubert/tsplay/internal/playground"
	"github.com/zhubert/tsplay/internal/ui"
)

// StepType represents the type of action in a demo step.
type StepType int

const (
	// StepWait pauses for a duration (for timing/pacing).
	StepWait StepType = iota
	// StepKey sends a single key press.
	StepKey
	// StepResize changes the terminal size, e.g. to cross the mobile breakpoint.
	StepResize
	// StepCapture captures the current frame (for selective capture).
	StepCapture
	// StepAnnotate adds an annotation/caption to the next frame.
	StepAnnotate
	// StepFlash shows a footer flash message.
	StepFlash
)

// Step represents a single action in a demo scenario.
type Step struct {
	Type        StepType
	Description string // Human-readable description of what this step does

	// For StepKey
	Key string

	// For StepWait
	Duration time.Duration

	// For StepResize
	Width  int
	Height int

	// For StepAnnotate
	Annotation string

	// For StepFlash
	FlashText string
	FlashType ui.FlashType
}

// Scenario defines a complete demo scenario.
type Scenario struct {
	Name        string
	Description string
	Width       int // Terminal width (default 120)
	Height      int // Terminal height (default 40)
	Setup       *ScenarioSetup
	Steps       []Step
}

// ScenarioSetup defines the initial state for a demo.
type ScenarioSetup struct {
	// State the playground starts with
	State playground.State

	// SourceName is shown in the navigation bar
	SourceName string

	// MobileBreakpoint overrides the default layout breakpoint (0 = default)
	MobileBreakpoint int
}

const demoCode = `interface Task {
  id: number;
  title: string;
  done?: boolean;
}

export function pending(tasks: Task[]): Task[] {
  return tasks.filter((t) => !t.done);
}
`

// DefaultSetup returns a minimal setup for demos.
func DefaultSetup() *ScenarioSetup {
	s := playground.DefaultState()
	s.Code = demoCode
	s.ESLintRC = `{
  "rules": {
    "@typescript-eslint/no-unnecessary-condition": "error"
  }
}`
	return &ScenarioSetup{
		State:      s,
		SourceName: "tasks.ts",
	}
}

// Validate checks that the scenario is valid.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return &ValidationError{Field: "Name", Message: "scenario name is required"}
	}
	if s.Width <= 0 {
		s.Width = 120
	}
	if s.Height <= 0 {
		s.Height = 40
	}
	if s.Setup == nil {
		s.Setup = DefaultSetup()
	}
	if err := playground.Validate(s.Setup.State); err != nil {
		return &ValidationError{Field: "Setup.State", Message: err.Error()}
	}
	for i, step := range s.Steps {
		if step.Type == StepResize && (step.Width <= 0 || step.Height <= 0) {
			return &ValidationError{Field: "Steps", Message: fmt.Sprintf("resize step %d needs a positive size", i)}
		}
	}
	return nil
}

// ValidationError represents a scenario validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return "validation error: " + e.Field + ": " + e.Message
}

// Step builder functions for fluent scenario construction

// Wait creates a wait step.
func Wait(d time.Duration) Step {
	return Step{
		Type:     StepWait,
		Duration: d,
	}
}

// Key creates a key press step.
func Key(key string) Step {
	return Step{
		Type: StepKey,
		Key:  key,
	}
}

// KeyWithDesc creates a key press step with a description.
func KeyWithDesc(key, description string) Step {
	return Step{
		Type:        StepKey,
		Key:         key,
		Description: description,
	}
}

// Keys creates one key press step per key.
func Keys(keys ...string) []Step {
	steps := make([]Step, 0, len(keys))
	for _, k := range keys {
		steps = append(steps, Key(k))
	}
	return steps
}

// Resize creates a terminal resize step.
func Resize(width, height int) Step {
	return Step{
		Type:   StepResize,
		Width:  width,
		Height: height,
	}
}

// Annotate creates an annotation step.
func Annotate(text string) Step {
	return Step{
		Type:       StepAnnotate,
		Annotation: text,
	}
}

// Capture creates a frame capture step.
func Capture() Step {
	return Step{
		Type: StepCapture,
	}
}

// Flash creates a flash message step.
func Flash(text string, flashType ui.FlashType) Step {
	return Step{
		Type:      StepFlash,
		FlashText: text,
		FlashType: flashType,
	}
}
