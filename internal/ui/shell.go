package ui

// MenuHost is where the options content goes when the viewport is too
// narrow to show it inline
type MenuHost interface {
	Fill(render ContentFunc, props OptionsProps)
}

// Shell places the options content for the current viewport: handed to
// the host on mobile, rendered inline otherwise. Placement is decided on
// every render.
type Shell struct {
	content ContentFunc
	host    MenuHost
}

// NewShell creates a shell that renders content and delegates to host
func NewShell(content ContentFunc, host MenuHost) *Shell {
	return &Shell{content: content, host: host}
}

// Render returns the inline panel content, or "" after delegating it to
// the host on mobile. The host is never touched outside mobile.
func (s *Shell) Render(viewport Viewport, props OptionsProps) string {
	if viewport == ViewportMobile {
		s.host.Fill(s.content, props)
		return ""
	}
	return s.content(props)
}
