package modals

import (
	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"
)

// SelectMaxVisible is the most options a picker shows at once
const SelectMaxVisible = 8

// SelectState is a picker for one enumerated setting. The app applies the
// choice when the user presses Enter.
type SelectState struct {
	Setting string
	Label   string

	options  []string
	selected string
	form     *huh.Form
}

func (*SelectState) modalState() {}

func (s *SelectState) Title() string { return "Select " + s.Label }

func (s *SelectState) Help() string {
	return "↑/↓: choose  Enter: apply  Esc: cancel"
}

func (s *SelectState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), help)
}

func (s *SelectState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	return s, cmd
}

// Selected returns the highlighted option
func (s *SelectState) Selected() string {
	return s.selected
}

// Options returns the options offered, in order
func (s *SelectState) Options() []string {
	return s.options
}

// NewSelectState creates a picker for setting with the current value highlighted.
// An empty current value highlights the first option.
func NewSelectState(setting, label string, options []string, current string) *SelectState {
	s := &SelectState{
		Setting:  setting,
		Label:    label,
		options:  options,
		selected: current,
	}
	if s.selected == "" && len(options) > 0 {
		s.selected = options[0]
	}

	height := len(options)
	if height > SelectMaxVisible {
		height = SelectMaxVisible
	}

	s.form = newModalForm(ModalWidth-10,
		huh.NewSelect[string]().
			Title(label).
			Options(huh.NewOptions(options...)...).
			Height(height+1).
			Value(&s.selected),
	)
	return s
}
