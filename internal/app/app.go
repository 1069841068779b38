package app

import (
	"maps"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/tsplay/internal/browser"
	"github.com/zhubert/tsplay/internal/clipboard"
	"github.com/zhubert/tsplay/internal/config"
	"github.com/zhubert/tsplay/internal/logger"
	"github.com/zhubert/tsplay/internal/playground"
	"github.com/zhubert/tsplay/internal/report"
	"github.com/zhubert/tsplay/internal/ui"
	"github.com/zhubert/tsplay/internal/ui/modals"
)

// Action indexes in the Actions section
const (
	ActionCopyLink = iota
	ActionCopyMarkdown
	ActionReportIssue
)

// Options are the collaborators New would otherwise create itself.
// Tests replace the clipboard and browser with fakes.
type Options struct {
	Clipboard clipboard.Writer
	Browser   browser.Opener
	Store     *playground.Store

	// SourceName is shown in the navigation bar, e.g. the file the code came from
	SourceName string

	// OSC52 also copies through the terminal, for remote sessions
	OSC52 bool

	// Watcher reloads the code when the source file changes
	Watcher SourceWatcher
}

// SourceWatcher produces a watch.ChangedMsg for each change to the source file
type SourceWatcher interface {
	Next() tea.Cmd
}

// Model is the main Bubble Tea model
type Model struct {
	config  *config.Config
	version string
	store   *playground.Store
	browser browser.Opener
	watcher SourceWatcher

	nav    *ui.NavHost
	footer *ui.Footer
	source *ui.SourcePane
	modal  *ui.Modal
	shell  *ui.Shell
	keys   ui.KeyMap

	copyLink     *ui.CopyAction
	copyMarkdown *ui.CopyAction
	copyPreview  *ui.CopyAction

	width    int
	height   int
	viewport ui.Viewport

	focus     int
	collapsed map[string]bool

	dirty  bool // state changed since the last save was scheduled
	closed bool
}

// ConfigSavedMsg reports the outcome of an autosave
type ConfigSavedMsg struct {
	Err error
}

// BrowserOpenedMsg reports the outcome of opening the issue page
type BrowserOpenedMsg struct {
	URL string
	Err error
}

// New creates a new app model
func New(cfg *config.Config, version string, opts Options) *Model {
	if savedTheme := cfg.GetTheme(); savedTheme != "" {
		ui.SetThemeByName(savedTheme)
	}

	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.NewSystem()
	}
	if opts.Browser == nil {
		opts.Browser = browser.System{}
	}
	if opts.Store == nil {
		opts.Store = playground.NewStore(cfg.GetPlayground())
	}

	m := &Model{
		config:    cfg,
		version:   version,
		store:     opts.Store,
		browser:   opts.Browser,
		watcher:   opts.Watcher,
		nav:       ui.NewNavHost(),
		footer:    ui.NewFooter(),
		source:    ui.NewSourcePane(),
		modal:     ui.NewModal(),
		keys:      ui.DefaultKeyMap(),
		collapsed: make(map[string]bool),
	}
	m.shell = ui.NewShell(ui.RenderOptions, m.nav)
	m.nav.SetSubtitle(opts.SourceName)
	m.footer.SetBindings(m.keys.ShortHelp())

	m.copyLink = ui.NewCopyAction(m.link, opts.Clipboard)
	m.copyMarkdown = ui.NewCopyAction(m.markdown, opts.Clipboard)
	m.copyPreview = ui.NewCopyAction(m.previewText, opts.Clipboard)
	if opts.OSC52 {
		m.copyLink.WithOSC52()
		m.copyMarkdown.WithOSC52()
		m.copyPreview.WithOSC52()
	}

	m.store.Subscribe(m.onStateChange)
	m.syncSource()

	logger.WithComponent("app").Info("app started", "version", version, "ts", m.store.State().TS)
	return m
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	if m.watcher != nil {
		return m.watcher.Next()
	}
	return nil
}

// Close tears the model down. Copy feedback still pending is dropped and
// every later message is ignored.
func (m *Model) Close() {
	if m.closed {
		return
	}
	m.closed = true
	m.copyLink.Close()
	m.copyMarkdown.Close()
	m.copyPreview.Close()
	logger.WithComponent("app").Info("app closed")
}

// Store returns the playground store the model reads and writes
func (m *Model) Store() *playground.Store {
	return m.store
}

// link is the shareable playground link for the current state
func (m *Model) link() string {
	return report.PlaygroundLink(m.config.GetPlaygroundURL(), m.store.State())
}

// markdown is the issue report for the current state
func (m *Model) markdown() string {
	s := m.store.State()
	return report.ToMarkdown(s, m.link(), report.EnvVersions(s.TS))
}

// issueParams is the issue form query for the current state
func (m *Model) issueParams() string {
	s := m.store.State()
	return report.ToIssueParams(s, m.link(), report.EnvVersions(s.TS))
}

// previewText is whatever the open report preview shows
func (m *Model) previewText() string {
	if s, ok := m.modal.State.(*modals.ReportPreviewState); ok {
		return s.Raw
	}
	return ""
}

// bindings are the panel controls for the current state. Every control
// writes through the store.
func (m *Model) bindings() []playground.Binding {
	return playground.Bindings(m.store.State(), m.store.SetState)
}

// optionsProps snapshots everything the options content needs
func (m *Model) optionsProps() ui.OptionsProps {
	s := m.store.State()
	return ui.OptionsProps{
		Bindings: m.bindings(),
		Versions: report.EnvVersions(s.TS),
		Actions: []ui.ActionItem{
			ActionCopyLink:     {Label: "Copy link", ActiveLabel: "Copied", Active: m.copyLink.Active()},
			ActionCopyMarkdown: {Label: "Copy Markdown", ActiveLabel: "Copied", Active: m.copyMarkdown.Active()},
			ActionReportIssue:  {Label: "Report as Issue"},
		},
		Collapsed: maps.Clone(m.collapsed),
		Focus:     m.focus,
	}
}
