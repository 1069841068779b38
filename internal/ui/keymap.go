package ui

import (
	"charm.land/bubbles/v2/key"

	"github.com/zhubert/tsplay/internal/ui/modals"
)

// KeyMap holds the app's key bindings. It implements help.KeyMap for the
// footer and feeds the help modal.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Activate key.Binding
	Menu     key.Binding
	Preview  key.Binding
	Params   key.Binding
	Help     key.Binding
	Close    key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the standard bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous value"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next value"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter", "space"),
			key.WithHelp("enter", "select"),
		),
		Menu: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "options menu"),
		),
		Preview: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "preview report"),
		),
		Params: key.NewBinding(
			key.WithKeys("P"),
			key.WithHelp("P", "preview issue params"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns the footer bindings
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Right, k.Activate, k.Preview, k.Help, k.Quit}
}

// FullHelp returns every binding, grouped
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Activate, k.Preview, k.Params, k.Menu},
		{k.Help, k.Close, k.Quit},
	}
}

// HelpSections converts FullHelp into help modal sections
func (k KeyMap) HelpSections() []modals.HelpSection {
	titles := []string{"Navigation", "Actions", "General"}
	var sections []modals.HelpSection
	for i, group := range k.FullHelp() {
		section := modals.HelpSection{Title: titles[i]}
		for _, b := range group {
			if !b.Enabled() || len(b.Keys()) == 0 {
				continue
			}
			sc := modals.HelpShortcut{
				Key:     b.Keys()[0],
				Display: b.Help().Key,
				Desc:    b.Help().Desc,
			}
			if sc.Key == k.Menu.Keys()[0] {
				sc.Note = "narrow terminals"
			}
			section.Shortcuts = append(section.Shortcuts, sc)
		}
		sections = append(sections, section)
	}
	return sections
}
