package ui

// Viewport is the size class of the terminal
type Viewport int

const (
	// ViewportUnknown means no size message has arrived yet
	ViewportUnknown Viewport = iota
	ViewportMobile
	ViewportDesktop
)

func (v Viewport) String() string {
	switch v {
	case ViewportMobile:
		return "mobile"
	case ViewportDesktop:
		return "desktop"
	default:
		return "unknown"
	}
}

// Classify maps a terminal width to a viewport using MobileBreakpoint
func Classify(width int) Viewport {
	return ClassifyWith(width, MobileBreakpoint)
}

// ClassifyWith maps a terminal width to a viewport. A breakpoint of zero
// or less means MobileBreakpoint.
func ClassifyWith(width, breakpoint int) Viewport {
	if width <= 0 {
		return ViewportUnknown
	}
	if breakpoint <= 0 {
		breakpoint = MobileBreakpoint
	}
	if width < breakpoint {
		return ViewportMobile
	}
	return ViewportDesktop
}
