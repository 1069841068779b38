package ui

import (
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// FlashType selects the style of a footer flash message
type FlashType int

const (
	FlashInfo FlashType = iota
	FlashSuccess
	FlashWarning
	FlashError
)

// FlashDuration is how long a flash message stays in the footer
const FlashDuration = 3 * time.Second

// FlashTickMsg asks the footer to drop an expired flash
type FlashTickMsg time.Time

// FlashTick returns a command that sends a FlashTickMsg
func FlashTick() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return FlashTickMsg(t)
	})
}

type flash struct {
	text    string
	kind    FlashType
	expires time.Time
}

// Footer represents the bottom bar: key help, or a flash message while one is showing
type Footer struct {
	width    int
	help     help.Model
	bindings []key.Binding
	flash    *flash
	now      func() time.Time
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	f := &Footer{
		help: help.New(),
		now:  time.Now,
	}
	f.bindings = DefaultKeyMap().ShortHelp()
	return f
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetBindings replaces the keys shown in the footer
func (f *Footer) SetBindings(bindings []key.Binding) {
	f.bindings = bindings
}

// SetFlash shows text until FlashDuration passes
func (f *Footer) SetFlash(text string, kind FlashType) {
	f.flash = &flash{text: text, kind: kind, expires: f.now().Add(FlashDuration)}
}

// HasFlash reports whether a flash message is showing
func (f *Footer) HasFlash() bool {
	return f.flash != nil
}

// FlashText returns the current flash message, if any
func (f *Footer) FlashText() string {
	if f.flash == nil {
		return ""
	}
	return f.flash.text
}

// ClearIfExpired drops an expired flash and reports whether it did
func (f *Footer) ClearIfExpired() bool {
	if f.flash == nil || f.now().Before(f.flash.expires) {
		return false
	}
	f.flash = nil
	return true
}

// View renders the footer
func (f *Footer) View() string {
	var content string
	if f.flash != nil {
		content = flashStyle(f.flash.kind).Render(f.flash.text)
	} else {
		f.help.Styles.ShortKey = FooterKeyStyle
		f.help.Styles.ShortDesc = FooterDescStyle
		f.help.Styles.ShortSeparator = FooterDescStyle
		content = f.help.ShortHelpView(f.bindings)
	}

	if f.width > 2 {
		content = ansi.Truncate(content, f.width-2, "…")
	}
	return FooterStyle.Width(f.width).Render(content)
}

func flashStyle(kind FlashType) lipgloss.Style {
	switch kind {
	case FlashSuccess:
		return FlashSuccessStyle
	case FlashWarning:
		return FlashWarningStyle
	case FlashError:
		return FlashErrorStyle
	default:
		return FlashInfoStyle
	}
}
