// Package scenarios contains built-in demo scenarios for tsplay.
package scenarios

import (
	"time"

	"github.com/zhubert/tsplay/internal/demo"
)

// Basic walks the options panel on a wide terminal:
// - Switching the TypeScript version and the source type
// - Turning on the token list
// - Copying a playground link and watching the "Copied" feedback
// - Previewing the Markdown bug report
var Basic = &demo.Scenario{
	Name:        "basic",
	Description: "Change settings, copy a link, preview the report",
	Width:       120,
	Height:      36,
	Setup:       demo.DefaultSetup(),
	Steps: concat(
		[]demo.Step{
			demo.Annotate("The options panel sits beside the source"),
			demo.Wait(1 * time.Second),
		},
		// TypeScript is the first row under Info
		demo.Keys("down", "right", "right"),
		[]demo.Step{
			demo.Annotate("←/→ cycles the TypeScript version"),
			demo.Wait(800 * time.Millisecond),
		},
		// Source type shows "module" until one is chosen
		demo.Keys("down", "down", "down", "enter"),
		[]demo.Step{
			demo.Annotate("Enter opens a picker"),
			demo.Wait(800 * time.Millisecond),
			demo.Key("enter"),
			demo.Wait(500 * time.Millisecond),
		},
		demo.Keys("down", "down", "space"),
		[]demo.Step{
			demo.Annotate("Show tokens lists what the lexer sees"),
			demo.Wait(1 * time.Second),
		},
		demo.Keys("down", "down", "enter"),
		[]demo.Step{
			demo.Annotate("Copy link confirms for 1.5 seconds"),
			demo.Wait(1 * time.Second),
			demo.Key("p"),
			demo.Annotate("p previews the bug report"),
			demo.Wait(1500 * time.Millisecond),
			demo.Key("esc"),
			demo.Wait(500 * time.Millisecond),
		},
	),
}

// Mobile shows the panel moving into the navigation menu on a narrow terminal
var Mobile = &demo.Scenario{
	Name:        "mobile",
	Description: "Narrow terminal: the panel moves into the menu",
	Width:       70,
	Height:      32,
	Setup:       demo.DefaultSetup(),
	Steps: concat(
		[]demo.Step{
			demo.Annotate("Below 80 columns only the source is shown"),
			demo.Wait(1 * time.Second),
			demo.KeyWithDesc("o", "open the options menu"),
			demo.Annotate("o opens the same panel in a drawer"),
			demo.Wait(1 * time.Second),
		},
		demo.Keys("down", "down", "down", "right"),
		[]demo.Step{
			demo.Wait(800 * time.Millisecond),
			demo.KeyWithDesc("esc", "close the menu"),
			demo.Wait(500 * time.Millisecond),
			demo.Resize(120, 32),
			demo.Annotate("Wider again, the panel is back inline"),
			demo.Wait(1 * time.Second),
		},
	),
}

func concat(groups ...[]demo.Step) []demo.Step {
	var steps []demo.Step
	for _, g := range groups {
		steps = append(steps, g...)
	}
	return steps
}

// All returns all built-in scenarios.
func All() []*demo.Scenario {
	return []*demo.Scenario{
		Basic,
		Mobile,
	}
}

// Get returns a scenario by name, or nil if not found.
func Get(name string) *demo.Scenario {
	for _, s := range All() {
		if s.Name == name {
			return s
		}
	}
	return nil
}
