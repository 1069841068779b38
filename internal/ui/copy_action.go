package ui

import (
	"errors"
	"sync/atomic"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/tsplay/internal/clipboard"
	perrors "github.com/zhubert/tsplay/internal/errors"
	"github.com/zhubert/tsplay/internal/logger"
)

// CopyFeedbackWindow is how long an action shows "Copied" after a
// successful copy.
const CopyFeedbackWindow = 1500 * time.Millisecond

var lastCopyID int64

func nextCopyID() int {
	return int(atomic.AddInt64(&lastCopyID, 1))
}

// CopyResultMsg carries the outcome of a clipboard write
type CopyResultMsg struct {
	ID  int
	Err error
}

// CopyResetMsg ends a feedback window. Gen identifies which window.
type CopyResetMsg struct {
	ID  int
	Gen int
}

// tickFunc matches tea.Tick so tests can schedule resets by hand
type tickFunc func(time.Duration, func(time.Time) tea.Msg) tea.Cmd

// CopyAction copies a produced string to the clipboard and reports
// "copied" for CopyFeedbackWindow after each success. Triggering again
// while active restarts the window; a failed copy closes it. All state changes happen in Update,
// on the event loop.
type CopyAction struct {
	id      int
	produce func() string
	writer  clipboard.Writer
	osc52   bool
	tick    tickFunc
	window  time.Duration

	active bool
	gen    int
	closed bool
}

// NewCopyAction creates a copy action for the given text producer
func NewCopyAction(produce func() string, writer clipboard.Writer) *CopyAction {
	return &CopyAction{
		id:      nextCopyID(),
		produce: produce,
		writer:  writer,
		tick:    tea.Tick,
		window:  CopyFeedbackWindow,
	}
}

// WithOSC52 also sends the text to the terminal clipboard (OSC 52)
func (c *CopyAction) WithOSC52() *CopyAction {
	c.osc52 = true
	return c
}

// ID returns the identifier carried by this action's messages
func (c *CopyAction) ID() int { return c.id }

// Active reports whether the feedback window is open
func (c *CopyAction) Active() bool { return c.active }

// Closed reports whether Close has been called
func (c *CopyAction) Closed() bool { return c.closed }

// Trigger evaluates the producer now and returns the command that writes
// the text. The result arrives later as a CopyResultMsg.
func (c *CopyAction) Trigger() tea.Cmd {
	if c.closed {
		return nil
	}
	text := c.produce()
	id, w := c.id, c.writer

	// A press cancels the pending reset; only this write's outcome may
	// close or reopen the window
	c.gen++

	write := func() tea.Msg {
		if w == nil {
			return CopyResultMsg{ID: id, Err: perrors.ClipboardUnavailable(errors.New("no clipboard writer"))}
		}
		return CopyResultMsg{ID: id, Err: w.WriteText(text)}
	}
	if c.osc52 {
		return tea.Batch(tea.SetClipboard(text), write)
	}
	return write
}

// Update consumes this action's result and reset messages. Anything else,
// including messages for other actions, is ignored.
func (c *CopyAction) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case CopyResultMsg:
		if msg.ID != c.id || c.closed {
			return nil
		}
		if msg.Err != nil {
			logger.WithComponent("copy").Warn("copy failed", "action", c.id, "error", msg.Err)
			// The window's reset was cancelled by the press, so close it here
			c.active = false
			return nil
		}
		c.active = true
		c.gen++
		id, gen := c.id, c.gen
		return c.tick(c.window, func(time.Time) tea.Msg {
			return CopyResetMsg{ID: id, Gen: gen}
		})

	case CopyResetMsg:
		if msg.ID != c.id || c.closed || msg.Gen != c.gen {
			return nil
		}
		c.active = false
	}
	return nil
}

// Close tears the action down. Pending results and resets become no-ops.
func (c *CopyAction) Close() {
	c.closed = true
	c.gen++
}

// Label returns copied while the window is open, idle otherwise
func (c *CopyAction) Label(idle, copied string) string {
	if c.active {
		return copied
	}
	return idle
}
