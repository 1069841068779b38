package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/tsplay/internal/ui"
	"github.com/zhubert/tsplay/internal/ui/modals"
)

// bodyHeight is the height between the navigation bar and the footer
func (m *Model) bodyHeight() int {
	return max(m.height-ui.HeaderHeight-ui.FooterHeight, 0)
}

// updateSizes recalculates and applies dimensions to all UI components
func (m *Model) updateSizes() {
	m.nav.SetWidth(m.width)
	m.footer.SetWidth(m.width)

	sourceWidth := m.width
	if m.viewport != ui.ViewportMobile {
		sourceWidth -= ui.OptionsPanelWidth
	}
	m.source.SetSize(max(sourceWidth, 0), m.bodyHeight())
}

// View renders the app
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.SetContent(m.RenderToString())
	return v
}

// RenderToString renders the current view as a string.
// This is useful for testing.
func (m *Model) RenderToString() string {
	m.nav.BeginFrame()
	panel := m.shell.Render(m.viewport, m.optionsProps())

	if m.modal.IsVisible() {
		if s, ok := m.modal.State.(*modals.ReportPreviewState); ok {
			s.SetCopied(m.copyPreview.Active())
		}
		return m.modal.View(m.width, m.height)
	}

	var body string
	switch {
	case m.viewport == ui.ViewportMobile && m.nav.MenuOpen():
		// The drawer under the navigation bar takes the body's place
	case m.viewport == ui.ViewportMobile:
		body = m.source.View()
	default:
		inline := ui.PanelFocusedStyle.
			Width(ui.OptionsPanelWidth).
			Height(m.bodyHeight()).
			Render(panel)
		body = lipgloss.JoinHorizontal(lipgloss.Top, inline, m.source.View())
	}

	parts := []string{m.nav.View()}
	if body != "" {
		parts = append(parts, body)
	}
	parts = append(parts, m.footer.View())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
