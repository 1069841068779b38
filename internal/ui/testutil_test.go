package ui

import (
	"reflect"
	"slices"

	"github.com/zhubert/tsplay/internal/playground"
	"github.com/zhubert/tsplay/internal/report"
)

// scenarioState is the reference scenario: TS 5.4.2, ts file, no sourceType
func scenarioState() playground.State {
	s := playground.DefaultState()
	s.TS = "5.4.2"
	s.FileType = "ts"
	s.SourceType = ""
	s.Scroll = true
	s.ShowTokens = false
	return s
}

// testProps builds panel props for s with the three standard actions
func testProps(s playground.State) OptionsProps {
	return OptionsProps{
		Bindings: playground.Bindings(s, func(playground.Partial) {}),
		Versions: report.Versions{TypeScript: s.TS, ESLint: "9.17.0", TSESLint: "8.18.2"},
		Actions: []ActionItem{
			{Label: "Copy link", ActiveLabel: "Copied"},
			{Label: "Copy Markdown", ActiveLabel: "Copied"},
			{Label: "Report as Issue"},
		},
		Collapsed: map[string]bool{},
		Width:     60,
	}
}

// sameProps compares props field by field. Bindings carry a setter func,
// which reflect.DeepEqual never treats as equal, so they are compared by
// their visible fields.
func sameProps(a, b OptionsProps) bool {
	if a.Focus != b.Focus || a.Width != b.Width || a.Versions != b.Versions {
		return false
	}
	if !reflect.DeepEqual(a.Actions, b.Actions) || !reflect.DeepEqual(a.Collapsed, b.Collapsed) {
		return false
	}
	if len(a.Bindings) != len(b.Bindings) {
		return false
	}
	for i := range a.Bindings {
		x, y := a.Bindings[i], b.Bindings[i]
		if x.Setting != y.Setting || x.Label != y.Label || x.Kind != y.Kind ||
			x.Value != y.Value || x.Checked != y.Checked || !slices.Equal(x.Options, y.Options) {
			return false
		}
	}
	return true
}
