package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/zhubert/tsplay/internal/playground"
	"github.com/zhubert/tsplay/internal/report"
)

// Panel sections, in display order
const (
	SectionInfo    = "Info"
	SectionOptions = "Options"
	SectionActions = "Actions"
)

// Sections lists the panel sections in display order
var Sections = []string{SectionInfo, SectionOptions, SectionActions}

// ActionItem is one button in the Actions section
type ActionItem struct {
	Label       string
	ActiveLabel string // shown while Active, e.g. "Copied"
	Active      bool
}

// OptionsProps is everything the options content needs to render.
// The same value is rendered inline or inside the navigation menu.
type OptionsProps struct {
	Bindings  []playground.Binding
	Versions  report.Versions
	Actions   []ActionItem
	Collapsed map[string]bool
	Focus     int // index into FocusTargets
	Width     int // 0 means OptionsPanelWidth minus borders
}

// ContentFunc renders the options panel content
type ContentFunc func(OptionsProps) string

// TargetKind says what a focusable row does
type TargetKind int

const (
	TargetSection TargetKind = iota
	TargetBinding
	TargetAction
)

// Target is one focusable row. Index points into Bindings or Actions.
type Target struct {
	Kind    TargetKind
	Section string
	Index   int
}

// sectionOf places a binding in the Info or Options section
func sectionOf(setting string) string {
	if setting == playground.SettingTS {
		return SectionInfo
	}
	return SectionOptions
}

// FocusTargets lists the focusable rows of props in display order.
// Rows of collapsed sections are skipped.
func FocusTargets(props OptionsProps) []Target {
	var targets []Target
	for _, section := range Sections {
		targets = append(targets, Target{Kind: TargetSection, Section: section})
		if props.Collapsed[section] {
			continue
		}
		if section == SectionActions {
			for i := range props.Actions {
				targets = append(targets, Target{Kind: TargetAction, Section: section, Index: i})
			}
			continue
		}
		for i, b := range props.Bindings {
			if sectionOf(b.Setting) == section {
				targets = append(targets, Target{Kind: TargetBinding, Section: section, Index: i})
			}
		}
	}
	return targets
}

// ClampFocus keeps focus within the targets of props
func ClampFocus(focus int, props OptionsProps) int {
	n := len(FocusTargets(props))
	if focus >= n {
		focus = n - 1
	}
	if focus < 0 {
		focus = 0
	}
	return focus
}

// RenderOptions is the options panel content: the Info, Options and
// Actions sections with the focused row highlighted.
func RenderOptions(props OptionsProps) string {
	width := props.Width
	if width <= 0 {
		width = OptionsPanelWidth - BorderSize
	}

	var lines []string
	for i, target := range FocusTargets(props) {
		focused := i == props.Focus
		var row string
		switch target.Kind {
		case TargetSection:
			row = sectionRow(target.Section, props.Collapsed[target.Section])
			if i > 0 {
				lines = append(lines, "")
			}
		case TargetBinding:
			row = bindingRow(props.Bindings[target.Index])
		case TargetAction:
			row = actionRow(props.Actions[target.Index])
		}
		lines = append(lines, fitRow(row, width, focused))

		// Version rows follow the TypeScript select and are not focusable
		if target.Kind == TargetBinding && props.Bindings[target.Index].Setting == playground.SettingTS {
			lines = append(lines,
				fitRow(infoRow("ESLint", props.Versions.ESLint), width, false),
				fitRow(infoRow("TSESLint", props.Versions.TSESLint), width, false),
			)
		}
	}
	return strings.Join(lines, "\n")
}

func sectionRow(section string, collapsed bool) string {
	marker := "▾"
	if collapsed {
		marker = "▸"
	}
	return OptionsSectionStyle.Render(marker + " " + section)
}

func bindingRow(b playground.Binding) string {
	label := OptionsLabelStyle.Render(padLabel(b.Label))
	switch b.Kind {
	case playground.KindToggle:
		box := "[ ]"
		if b.Checked {
			box = "[x]"
		}
		return label + OptionsValueStyle.Render(box)
	default:
		return label + OptionsValueStyle.Render("‹ "+b.Value+" ›")
	}
}

func infoRow(label, value string) string {
	return OptionsLabelStyle.Render(padLabel(label)) + value
}

func actionRow(a ActionItem) string {
	if a.Active {
		return "  " + OptionsCopiedStyle.Render("✓ "+a.ActiveLabel)
	}
	return "  " + a.Label
}

// padLabel pads label to the label column, measuring display cells
func padLabel(label string) string {
	return runewidth.FillRight(label, LabelColumnWidth)
}

// fitRow prefixes the cursor and truncates to width cells
func fitRow(row string, width int, focused bool) string {
	cursor := "  "
	if focused {
		cursor = "> "
	}
	line := ansi.Truncate(cursor+row, width, "…")
	if focused {
		return OptionsSelectedStyle.Render(line)
	}
	return line
}
