// Package ui provides constants for layout calculations and configuration.
package ui

// Layout constants for panel sizing
const (
	// HeaderHeight is the height of the navigation bar in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// OptionsPanelWidth is the width of the inline options panel, borders included
	OptionsPanelWidth = 44

	// MenuDrawerWidth is the width of the secondary menu drawer, borders included
	MenuDrawerWidth = 48

	// LabelColumnWidth is the width of the label column in option rows
	LabelColumnWidth = 14

	// DefaultWrapWidth is the default width for text wrapping when viewport width is unknown
	DefaultWrapWidth = 80

	// MaxTokenRows is the number of tokens listed under the source when tokens are shown
	MaxTokenRows = 200
)

// MobileBreakpoint is the terminal width below which the options panel
// moves into the navigation menu.
const MobileBreakpoint = 80

// Modal dimensions
const (
	// ModalWidth is the default width of modals
	ModalWidth = 60

	// ModalWidthWide is the width of the report preview modal
	ModalWidthWide = 100
)
