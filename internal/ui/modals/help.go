package modals

import (
	"fmt"
	"io"

	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// HelpModalMaxVisible is the list height of the help modal
const HelpModalMaxVisible = 14

const helpKeyColumnWidth = 12

// shortcutItem is one selectable row. Filtering matches the key, the
// description and the note.
type shortcutItem struct {
	shortcut HelpShortcut
}

func (i shortcutItem) FilterValue() string {
	return i.shortcut.Display + " " + i.shortcut.Desc + " " + i.shortcut.Note
}

// headerItem titles a group of shortcuts. Filtering always drops it.
type headerItem string

func (headerItem) FilterValue() string { return "" }

type shortcutDelegate struct{}

func (shortcutDelegate) Height() int                          { return 1 }
func (shortcutDelegate) Spacing() int                         { return 0 }
func (shortcutDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

func (shortcutDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	switch i := item.(type) {
	case headerItem:
		fmt.Fprint(w, lipgloss.NewStyle().Bold(true).Foreground(ColorSecondary).Render(string(i)))

	case shortcutItem:
		fmt.Fprint(w, shortcutRow(i.shortcut, index == m.Index()))
	}
}

// shortcutRow lays out key, description and note. The selected row is
// drawn inverted with a cursor.
func shortcutRow(sc HelpShortcut, selected bool) string {
	keyStyle := lipgloss.NewStyle().Bold(true).Width(helpKeyColumnWidth).Foreground(ColorPrimary)
	descStyle := lipgloss.NewStyle().Foreground(ColorText)
	noteStyle := lipgloss.NewStyle().Foreground(ColorTextMuted).Italic(true)
	cursor := "  "
	if selected {
		keyStyle = keyStyle.Foreground(ColorTextInverse).Background(ColorPrimary)
		descStyle = descStyle.Foreground(ColorTextInverse).Background(ColorPrimary)
		cursor = "> "
	}

	row := cursor + keyStyle.Render(sc.Display) + descStyle.Render(sc.Desc)
	if sc.Note != "" {
		row += " " + noteStyle.Render("("+sc.Note+")")
	}
	return row
}

// HelpState lists every key binding by section. Enter runs the selected one.
type HelpState struct {
	list list.Model
}

func (*HelpState) modalState() {}

func (s *HelpState) Title() string { return "Keyboard Shortcuts" }

func (s *HelpState) Help() string {
	if s.list.SettingFilter() {
		return "Type to filter  Enter: apply  Esc: cancel"
	}
	return "/: filter  ↑/↓: navigate  Enter: run  Esc: close"
}

func (s *HelpState) Render() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		ModalTitleStyle.Render(s.Title()),
		s.list.View(),
		ModalHelpStyle.Render(s.Help()),
	)
}

func (s *HelpState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.list, cmd = s.list.Update(msg)
	return s, cmd
}

// SetSize fits the list between the title and the help line
func (s *HelpState) SetSize(width, height int) {
	const titleAndHelpOverhead = 4
	s.list.SetSize(width, max(height-titleAndHelpOverhead, 1))
}

// GetSelectedShortcut returns the selected shortcut, or nil on a section
// header or an empty list.
func (s *HelpState) GetSelectedShortcut() *HelpShortcut {
	if si, ok := s.list.SelectedItem().(shortcutItem); ok {
		return &si.shortcut
	}
	return nil
}

// IsFiltering reports whether the filter input has focus
func (s *HelpState) IsFiltering() bool {
	return s.list.SettingFilter()
}

// NewHelpStateFromSections creates a HelpState with the cursor on the first shortcut
func NewHelpStateFromSections(sections []HelpSection) *HelpState {
	var items []list.Item
	first := -1
	for _, section := range sections {
		items = append(items, headerItem(section.Title))
		for _, sc := range section.Shortcuts {
			if first < 0 {
				first = len(items)
			}
			items = append(items, shortcutItem{shortcut: sc})
		}
	}

	l := list.New(items, shortcutDelegate{}, ModalWidth, HelpModalMaxVisible)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)
	l.DisableQuitKeybindings()
	l.SetFilteringEnabled(true)
	if first >= 0 {
		l.Select(first)
	}

	return &HelpState{list: l}
}
