// Package ui provides the user interface components for the tsplay TUI.
//
// # Layout System
//
// On a wide terminal the options panel sits beside the source pane:
//
//	┌─────────────────────────────────────────────────────┐
//	│ Navigation bar (1 line)                             │
//	├──────────────────┬──────────────────────────────────┤
//	│                  │                                  │
//	│  Options panel   │         Source pane              │
//	│                  │                                  │
//	├──────────────────┴──────────────────────────────────┤
//	│ Footer (1 line)                                     │
//	└─────────────────────────────────────────────────────┘
//
// Below MobileBreakpoint columns the panel is not drawn inline. The Shell
// hands the same content function and props to the NavHost, which shows
// them in a drawer under the navigation bar when the menu is opened with
// "o".
//
// # Components
//
// Shell: Decides placement on every render from the Viewport classification.
//
// NavHost: The navigation bar and its secondary-menu slot. BeginFrame
// clears the slot so only the current frame's content is ever shown.
//
// RenderOptions: The panel content, in three collapsible sections (Info,
// Options, Actions). FocusTargets lists the rows the cursor can land on.
//
// CopyAction: A clipboard copy with a "Copied" window of CopyFeedbackWindow.
// Results and resets are tagged messages; stale ones are dropped.
//
// Footer: Key help from the KeyMap, replaced by flash messages while they last.
//
// SourcePane: Chroma-highlighted source with an optional token list.
//
// Modal: Popup dialogs whose states live in the modals package.
//
// # Styles
//
// Styles are package variables rebuilt by SetTheme. The modals package
// receives its copies through RefreshModalStyles.
package ui
