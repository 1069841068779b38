package app

import (
	"path/filepath"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/tsplay/internal/logger"
	"github.com/zhubert/tsplay/internal/playground"
	"github.com/zhubert/tsplay/internal/watch"
)

// onStateChange runs after every store merge. The model only merges from
// Update, so this runs on the event loop too.
func (m *Model) onStateChange(s playground.State) {
	m.config.SetPlayground(s)
	m.dirty = true
	m.syncSource()
}

// syncSource pushes the current state into the source pane
func (m *Model) syncSource() {
	s := m.store.State()
	m.source.SetSource(s.Code, s.FileType, s.ShowTokens, s.Scroll)
}

// takeSave returns the autosave command when state changed since the last
// call, nil otherwise
func (m *Model) takeSave() tea.Cmd {
	if !m.dirty {
		return nil
	}
	m.dirty = false
	return saveConfig(m.config)
}

// saveConfig writes the config off the event loop
func saveConfig(cfg interface{ Save() error }) tea.Cmd {
	return func() tea.Msg {
		err := cfg.Save()
		if err != nil {
			logger.WithComponent("app").Error("autosave failed", "error", err)
		}
		return ConfigSavedMsg{Err: err}
	}
}

// handleSourceChanged loads new code from the watched file and waits for
// the next change
func (m *Model) handleSourceChanged(msg watch.ChangedMsg) tea.Cmd {
	var flash tea.Cmd
	switch {
	case msg.Err != nil:
		logger.WithComponent("app").Warn("source reload failed", "path", msg.Path, "error", msg.Err)
		flash = m.ShowFlashWarning("Could not reload " + filepath.Base(msg.Path) + ": " + msg.Err.Error())
	case msg.Code != m.store.State().Code:
		m.store.SetState(playground.Partial{Code: playground.String(msg.Code)})
		flash = m.ShowFlashInfo("Reloaded " + filepath.Base(msg.Path))
	}

	if m.watcher == nil {
		return flash
	}
	return tea.Batch(flash, m.watcher.Next())
}
