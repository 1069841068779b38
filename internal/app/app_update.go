package app

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/tsplay/internal/browser"
	"github.com/zhubert/tsplay/internal/keys"
	"github.com/zhubert/tsplay/internal/logger"
	"github.com/zhubert/tsplay/internal/playground"
	"github.com/zhubert/tsplay/internal/report"
	"github.com/zhubert/tsplay/internal/ui"
	"github.com/zhubert/tsplay/internal/ui/modals"
	"github.com/zhubert/tsplay/internal/watch"
)

// keyString lets a plain key name be matched against key bindings, for
// keys that do not come from a KeyPressMsg (help modal shortcuts)
type keyString string

func (k keyString) String() string { return string(k) }

// Update handles messages. This is the core Bubble Tea update function that routes
// all messages to appropriate handlers.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.closed {
		return m, nil
	}

	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport = ui.ClassifyWith(msg.Width, m.config.GetMobileBreakpoint())
		if m.viewport != ui.ViewportMobile {
			m.nav.CloseMenu()
		}
		m.updateSizes()

	case tea.KeyPressMsg:
		cmds = append(cmds, m.handleKeyPress(msg))

	case ui.CopyResultMsg:
		cmds = append(cmds, m.routeCopy(msg))
		if msg.Err != nil && m.ownsCopy(msg.ID) {
			cmds = append(cmds, m.ShowFlashWarning("Copy failed: "+msg.Err.Error()))
		}

	case ui.CopyResetMsg:
		cmds = append(cmds, m.routeCopy(msg))

	case ui.FlashTickMsg:
		if !m.footer.ClearIfExpired() && m.footer.HasFlash() {
			cmds = append(cmds, ui.FlashTick())
		}

	case ConfigSavedMsg:
		if msg.Err != nil {
			cmds = append(cmds, m.ShowFlashError("Could not save settings: "+msg.Err.Error()))
		}

	case BrowserOpenedMsg:
		if msg.Err != nil {
			cmds = append(cmds, m.ShowFlashError(msg.Err.Error()))
		} else {
			cmds = append(cmds, m.ShowFlashInfo("Opened the issue form in your browser"))
		}

	case watch.ChangedMsg:
		cmds = append(cmds, m.handleSourceChanged(msg))

	default:
		if m.modal.IsVisible() {
			_, cmd := m.modal.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	cmds = append(cmds, m.takeSave())
	return m, tea.Batch(cmds...)
}

// routeCopy hands a copy message to every copy action; each ignores ids
// that are not its own
func (m *Model) routeCopy(msg tea.Msg) tea.Cmd {
	return tea.Batch(
		m.copyLink.Update(msg),
		m.copyMarkdown.Update(msg),
		m.copyPreview.Update(msg),
	)
}

func (m *Model) ownsCopy(id int) bool {
	return id == m.copyLink.ID() || id == m.copyMarkdown.ID() || id == m.copyPreview.ID()
}

// handleKeyPress handles all keyboard input
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) tea.Cmd {
	logger.WithComponent("app").Debug("key press", "key", msg.String(), "modal", m.modal.IsVisible())

	if m.modal.IsVisible() {
		return m.handleModalKey(msg)
	}

	switch msg.String() {
	case keys.PgUp, keys.PgDown:
		return m.source.Update(msg)
	}

	// Without a visible panel, line movement scrolls the source instead
	if !m.panelVisible() && (key.Matches(msg, m.keys.Up) || key.Matches(msg, m.keys.Down)) {
		return m.source.Update(msg)
	}

	return m.handleKey(msg.String())
}

// handleKey runs the global binding for k
func (m *Model) handleKey(k string) tea.Cmd {
	ks := keyString(k)

	switch {
	case key.Matches(ks, m.keys.Quit):
		m.Close()
		return tea.Quit

	case key.Matches(ks, m.keys.Help):
		m.modal.Show(modals.NewHelpStateFromSections(m.keys.HelpSections()))

	case key.Matches(ks, m.keys.Menu):
		if m.viewport == ui.ViewportMobile {
			m.nav.ToggleMenu()
		}

	case key.Matches(ks, m.keys.Close):
		m.nav.CloseMenu()

	case key.Matches(ks, m.keys.Preview):
		md := m.markdown()
		m.modal.Show(modals.NewReportPreviewState("markdown", md, ui.HighlightCode(md, "markdown")))

	case key.Matches(ks, m.keys.Params):
		params := m.issueParams()
		m.modal.Show(modals.NewReportPreviewState("params", params, params))

	case !m.panelVisible():
		return nil

	case key.Matches(ks, m.keys.Up):
		m.moveFocus(-1)

	case key.Matches(ks, m.keys.Down):
		m.moveFocus(1)

	case key.Matches(ks, m.keys.Left):
		m.cycleFocused(-1)

	case key.Matches(ks, m.keys.Right):
		m.cycleFocused(1)

	case key.Matches(ks, m.keys.Activate):
		return m.activate()
	}
	return nil
}

// panelVisible reports whether the options panel is on screen, inline or
// in the open menu drawer
func (m *Model) panelVisible() bool {
	return m.viewport != ui.ViewportMobile || m.nav.MenuOpen()
}

// handleModalKey routes key events to the visible modal
func (m *Model) handleModalKey(msg tea.KeyPressMsg) tea.Cmd {
	k := msg.String()

	switch s := m.modal.State.(type) {
	case *modals.SelectState:
		switch k {
		case keys.Escape:
			m.modal.Hide()
			return nil
		case keys.Enter:
			m.applySelection(s)
			m.modal.Hide()
			return nil
		}

	case *modals.ReportPreviewState:
		switch k {
		case keys.Escape:
			m.modal.Hide()
			return nil
		case "c":
			return m.copyPreview.Trigger()
		}

	case *modals.HelpState:
		if s.IsFiltering() {
			break
		}
		switch k {
		case keys.Escape, "?":
			m.modal.Hide()
			return nil
		case keys.Enter:
			shortcut := s.GetSelectedShortcut()
			m.modal.Hide()
			if shortcut == nil {
				return nil
			}
			return m.handleKey(shortcut.Key)
		}
	}

	_, cmd := m.modal.Update(msg)
	return cmd
}

// applySelection writes the picker's choice through the matching binding
func (m *Model) applySelection(s *modals.SelectState) {
	for _, b := range m.bindings() {
		if b.Setting != s.Setting {
			continue
		}
		if !b.Choose(s.Selected()) {
			logger.WithComponent("app").Warn("picker choice refused", "setting", s.Setting, "value", s.Selected())
		}
		return
	}
}

func (m *Model) moveFocus(delta int) {
	m.focus = ui.ClampFocus(m.focus+delta, m.optionsProps())
}

// cycleFocused steps the focused select binding through its options
func (m *Model) cycleFocused(delta int) {
	props := m.optionsProps()
	t, ok := m.focusedTarget(props)
	if !ok || t.Kind != ui.TargetBinding {
		return
	}
	props.Bindings[t.Index].Cycle(delta)
}

func (m *Model) focusedTarget(props ui.OptionsProps) (ui.Target, bool) {
	targets := ui.FocusTargets(props)
	if m.focus < 0 || m.focus >= len(targets) {
		return ui.Target{}, false
	}
	return targets[m.focus], true
}

// activate runs the focused row: collapse a section, open a picker, flip a
// toggle or run an action
func (m *Model) activate() tea.Cmd {
	props := m.optionsProps()
	t, ok := m.focusedTarget(props)
	if !ok {
		return nil
	}

	switch t.Kind {
	case ui.TargetSection:
		m.collapsed[t.Section] = !m.collapsed[t.Section]
		m.focus = ui.ClampFocus(m.focus, m.optionsProps())

	case ui.TargetBinding:
		b := props.Bindings[t.Index]
		if b.Kind == playground.KindToggle {
			b.Toggle()
			return nil
		}
		m.modal.Show(modals.NewSelectState(b.Setting, b.Label, b.Options, b.Value))

	case ui.TargetAction:
		return m.runAction(t.Index)
	}
	return nil
}

func (m *Model) runAction(index int) tea.Cmd {
	switch index {
	case ActionCopyLink:
		return m.copyLink.Trigger()
	case ActionCopyMarkdown:
		return m.copyMarkdown.Trigger()
	case ActionReportIssue:
		return openIssue(m.browser, report.IssueURL(m.config.GetIssueURL(), m.issueParams()))
	}
	return nil
}

// openIssue opens url off the event loop
func openIssue(b browser.Opener, url string) tea.Cmd {
	return func() tea.Msg {
		err := b.Open(url)
		if err != nil {
			logger.WithComponent("app").Error("failed to open issue form", "error", err)
		}
		return BrowserOpenedMsg{URL: url, Err: err}
	}
}
