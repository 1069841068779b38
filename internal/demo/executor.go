package demo

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/tsplay/internal/app"
	"github.com/zhubert/tsplay/internal/config"
	"github.com/zhubert/tsplay/internal/logger"
	"github.com/zhubert/tsplay/internal/ui"
)

// maxSettleDepth bounds how many command/message rounds one input may cause
const maxSettleDepth = 8

// Frame represents a captured frame from the demo.
type Frame struct {
	Content    string        // ANSI-encoded terminal content
	Delay      time.Duration // Delay before this frame
	Annotation string        // Optional annotation/caption
	StepIndex  int           // Index of the step that produced this frame
}

// ExecutorConfig configures the demo executor.
type ExecutorConfig struct {
	// CaptureEveryStep captures a frame after every step (default: false)
	CaptureEveryStep bool

	// KeyDelay is the delay after key presses (default: 100ms)
	KeyDelay time.Duration

	// CommandTimeout is how long a command may run before its message is
	// dropped. Timers such as the copy feedback reset outlive it, so
	// feedback stays visible for the rest of the demo (default: 50ms).
	CommandTimeout time.Duration
}

// DefaultExecutorConfig returns the default executor configuration.
func DefaultExecutorConfig() ExecutorConfig {
	return ExecutorConfig{
		CaptureEveryStep: false, // Don't capture every step by default for cleaner demos
		KeyDelay:         100 * time.Millisecond,
		CommandTimeout:   50 * time.Millisecond,
	}
}

// recorder stands in for the clipboard and the browser
type recorder struct {
	mu     sync.Mutex
	copied []string
	opened []string
}

func (r *recorder) WriteText(text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.copied = append(r.copied, text)
	return nil
}

func (r *recorder) Open(url string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.opened = append(r.opened, url)
	return nil
}

// Executor runs demo scenarios and captures frames.
type Executor struct {
	config   ExecutorConfig
	model    *app.Model
	recorder *recorder
	frames   []Frame
	tempDir  string

	currentAnnotation string
}

// NewExecutor creates a new demo executor.
func NewExecutor(cfg ExecutorConfig) *Executor {
	return &Executor{
		config:   cfg,
		recorder: &recorder{},
		frames:   []Frame{},
	}
}

// Cleanup closes the model and removes the scratch config.
func (e *Executor) Cleanup() {
	if e.model != nil {
		e.model.Close()
	}
	if e.tempDir != "" {
		os.RemoveAll(e.tempDir)
		e.tempDir = ""
	}
}

// Copied returns everything the demo copied to its clipboard, in order.
func (e *Executor) Copied() []string {
	e.recorder.mu.Lock()
	defer e.recorder.mu.Unlock()
	return append([]string(nil), e.recorder.copied...)
}

// Opened returns every URL the demo opened, in order.
func (e *Executor) Opened() []string {
	e.recorder.mu.Lock()
	defer e.recorder.mu.Unlock()
	return append([]string(nil), e.recorder.opened...)
}

// Run executes a scenario and returns the captured frames.
func (e *Executor) Run(scenario *Scenario) ([]Frame, error) {
	if err := scenario.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	if err := e.setup(scenario); err != nil {
		return nil, fmt.Errorf("setup failed: %w", err)
	}
	defer e.Cleanup()

	// Capture initial frame
	e.captureFrame(0, 500*time.Millisecond)

	for i, step := range scenario.Steps {
		if err := e.executeStep(i, step); err != nil {
			return nil, fmt.Errorf("step %d failed: %w", i, err)
		}
	}

	logger.WithComponent("demo").Info("scenario finished", "name", scenario.Name, "frames", len(e.frames))
	return e.frames, nil
}

// setup initializes the model for the scenario.
func (e *Executor) setup(scenario *Scenario) error {
	dir, err := os.MkdirTemp("", "tsplay-demo-")
	if err != nil {
		return err
	}
	e.tempDir = dir

	cfg := config.New(filepath.Join(dir, "config.json"))
	cfg.SetPlayground(scenario.Setup.State)
	cfg.MobileBreakpoint = scenario.Setup.MobileBreakpoint

	e.model = app.New(cfg, "demo", app.Options{
		Clipboard:  e.recorder,
		Browser:    e.recorder,
		SourceName: scenario.Setup.SourceName,
	})
	e.update(tea.WindowSizeMsg{Width: scenario.Width, Height: scenario.Height})
	return nil
}

// executeStep executes a single demo step.
func (e *Executor) executeStep(index int, step Step) error {
	switch step.Type {
	case StepWait:
		e.captureFrame(index, step.Duration)

	case StepKey:
		e.update(keyPress(step.Key))
		if e.config.CaptureEveryStep {
			e.captureFrame(index, e.config.KeyDelay)
		}

	case StepResize:
		e.update(tea.WindowSizeMsg{Width: step.Width, Height: step.Height})
		e.captureFrame(index, 200*time.Millisecond)

	case StepAnnotate:
		e.currentAnnotation = step.Annotation
		// Don't capture, annotation applies to next frame

	case StepCapture:
		e.captureFrame(index, 0)

	case StepFlash:
		e.model.ShowFlash(step.FlashText, step.FlashType)
		e.captureFrame(index, 100*time.Millisecond)

	default:
		return fmt.Errorf("unknown step type %d", step.Type)
	}
	return nil
}

// captureFrame captures the current view as a frame.
func (e *Executor) captureFrame(stepIndex int, delay time.Duration) {
	frame := Frame{
		Content:    e.model.RenderToString(),
		Delay:      delay,
		Annotation: e.currentAnnotation,
		StepIndex:  stepIndex,
	}
	e.frames = append(e.frames, frame)

	// Clear annotation after use
	e.currentAnnotation = ""
}

// update delivers msg and runs whatever it causes, the way the program loop would
func (e *Executor) update(msg tea.Msg) {
	_, cmd := e.model.Update(msg)
	e.settle(cmd, 0)
}

// settle runs cmd and feeds its message back into the model
func (e *Executor) settle(cmd tea.Cmd, depth int) {
	if cmd == nil || depth > maxSettleDepth {
		return
	}

	switch msg := e.run(cmd).(type) {
	case nil:
	case tea.BatchMsg:
		for _, c := range msg {
			e.settle(c, depth+1)
		}
	case ui.FlashTickMsg:
		// Flashes stay until the next one in a recording
	default:
		_, next := e.model.Update(msg)
		e.settle(next, depth+1)
	}
}

// run calls cmd, giving up after CommandTimeout
func (e *Executor) run(cmd tea.Cmd) tea.Msg {
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	select {
	case msg := <-done:
		return msg
	case <-time.After(e.config.CommandTimeout):
		return nil
	}
}

// keyPress converts a key string to a tea.KeyPressMsg.
// Duplicated from the app tests to avoid an import cycle.
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "escape", "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "left":
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case "pgup":
		return tea.KeyPressMsg{Code: tea.KeyPgUp}
	case "pgdown":
		return tea.KeyPressMsg{Code: tea.KeyPgDown}
	case "space":
		return tea.KeyPressMsg{Code: tea.KeySpace}
	case "ctrl+c":
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	default:
		if len(key) == 1 {
			return tea.KeyPressMsg{Code: rune(key[0]), Text: key}
		}
		return tea.KeyPressMsg{Text: key}
	}
}
