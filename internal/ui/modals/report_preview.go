package modals

import (
	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// ReportPreviewState shows a generated report in a scrollable viewport
type ReportPreviewState struct {
	Format string
	Raw    string // Text copied by "c"; the viewport shows the highlighted form

	viewport viewport.Model
	copied   bool
}

func (*ReportPreviewState) modalState() {}

func (s *ReportPreviewState) PreferredWidth() int { return ModalWidthWide }

func (s *ReportPreviewState) Title() string { return "Report preview (" + s.Format + ")" }

func (s *ReportPreviewState) Help() string {
	if s.copied {
		return "✓ Copied  Esc: close"
	}
	return "↑/↓/pgup/pgdn: scroll  c: copy  Esc: close"
}

func (s *ReportPreviewState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.viewport.View(), help)
}

func (s *ReportPreviewState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.viewport, cmd = s.viewport.Update(msg)
	return s, cmd
}

// SetSize fits the viewport inside the modal, leaving room for the title and help
func (s *ReportPreviewState) SetSize(width, height int) {
	const titleAndHelpOverhead = 4
	if h := height - titleAndHelpOverhead; h > 0 {
		s.viewport.SetHeight(h)
	}
	if width > 0 {
		s.viewport.SetWidth(width)
	}
}

// SetCopied switches the help line to the copied confirmation
func (s *ReportPreviewState) SetCopied(copied bool) {
	s.copied = copied
}

// ScrollPercent reports how far the preview is scrolled
func (s *ReportPreviewState) ScrollPercent() float64 {
	return s.viewport.ScrollPercent()
}

// NewReportPreviewState creates a preview of raw, displayed as rendered
func NewReportPreviewState(format, raw, rendered string) *ReportPreviewState {
	vp := viewport.New()
	vp.SoftWrap = true
	vp.SetWidth(ModalWidthWide - 6)
	vp.SetHeight(20)
	vp.SetContent(rendered)

	return &ReportPreviewState{
		Format:   format,
		Raw:      raw,
		viewport: vp,
	}
}
