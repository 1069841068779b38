package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

const navTitle = " tsplay"

// NavHost is the top navigation bar. It owns a secondary-menu slot that
// the shell fills with the options content on narrow terminals; the slot
// is cleared at the start of every frame so it only holds what the
// current render put there.
type NavHost struct {
	width    int
	subtitle string
	menuOpen bool

	slot      ContentFunc
	slotProps OptionsProps
}

// NewNavHost creates a new navigation bar
func NewNavHost() *NavHost {
	return &NavHost{}
}

// SetWidth sets the bar width
func (h *NavHost) SetWidth(width int) {
	h.width = width
}

// SetSubtitle sets the text shown on the right of the bar, e.g. the source file
func (h *NavHost) SetSubtitle(s string) {
	h.subtitle = s
}

// BeginFrame empties the menu slot before a render
func (h *NavHost) BeginFrame() {
	h.slot = nil
	h.slotProps = OptionsProps{}
}

// Fill puts render into the secondary menu for this frame
func (h *NavHost) Fill(render ContentFunc, props OptionsProps) {
	h.slot = render
	h.slotProps = props
}

// Filled reports whether the current frame delegated content to the menu
func (h *NavHost) Filled() bool {
	return h.slot != nil
}

// ToggleMenu opens or closes the secondary menu
func (h *NavHost) ToggleMenu() {
	h.menuOpen = !h.menuOpen
}

// CloseMenu closes the secondary menu
func (h *NavHost) CloseMenu() {
	h.menuOpen = false
}

// MenuOpen reports whether the secondary menu is open
func (h *NavHost) MenuOpen() bool {
	return h.menuOpen
}

// View renders the bar and, when the menu is open and filled, the drawer below it
func (h *NavHost) View() string {
	rightText := h.subtitle
	if h.Filled() {
		indicator := "≡ options (o)"
		if h.menuOpen {
			indicator = "× close (o)"
		}
		if rightText != "" {
			rightText += "  "
		}
		rightText += indicator
	}
	if rightText != "" {
		rightText += " "
	}

	paddingLen := h.width - ansi.StringWidth(navTitle) - ansi.StringWidth(rightText)
	if paddingLen < 0 {
		paddingLen = 0
	}
	bar := renderGradient(navTitle + strings.Repeat(" ", paddingLen) + rightText)

	if !h.menuOpen || !h.Filled() {
		return bar
	}

	drawerWidth := MenuDrawerWidth
	if h.width > 0 && drawerWidth > h.width {
		drawerWidth = h.width
	}
	props := h.slotProps
	props.Width = drawerWidth - BorderSize
	drawer := PanelFocusedStyle.Width(drawerWidth).Render(h.slot(props))

	return lipgloss.JoinVertical(lipgloss.Left, bar, drawer)
}

// parseHexColor parses a hex color string (e.g., "#7C3AED") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient renders the bar with a background fading from the
// theme's primary color to its background
func renderGradient(content string) string {
	if len(content) == 0 {
		return ""
	}

	theme := CurrentTheme()
	startR, startG, startB := parseHexColor(theme.Primary)
	endR, endG, endB := parseHexColor(theme.Bg)
	textColor := lipgloss.Color(theme.Text)

	runes := []rune(content)
	width := len(runes)
	titleLen := len([]rune(navTitle))
	var result strings.Builder

	for i, r := range runes {
		t := float64(i) / float64(width)
		cr := int(float64(startR)*(1-t) + float64(endR)*t)
		cg := int(float64(startG)*(1-t) + float64(endG)*t)
		cb := int(float64(startB)*(1-t) + float64(endB)*t)

		style := lipgloss.NewStyle().
			Background(lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb))).
			Foreground(textColor).
			Bold(i < titleLen)

		result.WriteString(style.Render(string(r)))
	}

	return result.String()
}
