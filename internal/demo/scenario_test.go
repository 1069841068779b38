package demo

import (
	"testing"
	"time"

	"github.com/zhubert/tsplay/internal/playground"
	"github.com/zhubert/tsplay/internal/ui"
)

func TestScenarioValidate(t *testing.T) {
	tests := []struct {
		name      string
		scenario  *Scenario
		wantErr   bool
		errField  string
		wantWidth int
	}{
		{
			name: "valid scenario",
			scenario: &Scenario{
				Name:        "test",
				Description: "Test scenario",
				Width:       100,
				Height:      30,
				Setup:       DefaultSetup(),
			},
			wantErr:   false,
			wantWidth: 100,
		},
		{
			name: "missing name",
			scenario: &Scenario{
				Description: "Test scenario",
			},
			wantErr:  true,
			errField: "Name",
		},
		{
			name: "default width and height",
			scenario: &Scenario{
				Name:        "test",
				Description: "Test scenario",
			},
			wantErr:   false,
			wantWidth: 120, // Default
		},
		{
			name: "default setup",
			scenario: &Scenario{
				Name: "test",
			},
			wantErr: false,
		},
		{
			name: "unknown file type",
			scenario: &Scenario{
				Name:  "test",
				Setup: &ScenarioSetup{State: badFileTypeState()},
			},
			wantErr:  true,
			errField: "Setup.State",
		},
		{
			name: "resize without a size",
			scenario: &Scenario{
				Name:  "test",
				Steps: []Step{Resize(0, 24)},
			},
			wantErr:  true,
			errField: "Steps",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.scenario.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr && err != nil {
				if ve, ok := err.(*ValidationError); ok {
					if ve.Field != tt.errField {
						t.Errorf("Validate() error field = %v, want %v", ve.Field, tt.errField)
					}
				}
			}
			if !tt.wantErr && tt.wantWidth > 0 {
				if tt.scenario.Width != tt.wantWidth {
					t.Errorf("Width = %v, want %v", tt.scenario.Width, tt.wantWidth)
				}
			}
		})
	}
}

func TestStepBuilders(t *testing.T) {
	t.Run("Wait", func(t *testing.T) {
		step := Wait(500 * time.Millisecond)
		if step.Type != StepWait {
			t.Errorf("Type = %v, want StepWait", step.Type)
		}
		if step.Duration != 500*time.Millisecond {
			t.Errorf("Duration = %v, want 500ms", step.Duration)
		}
	})

	t.Run("Key", func(t *testing.T) {
		step := Key("enter")
		if step.Type != StepKey {
			t.Errorf("Type = %v, want StepKey", step.Type)
		}
		if step.Key != "enter" {
			t.Errorf("Key = %v, want enter", step.Key)
		}
	})

	t.Run("KeyWithDesc", func(t *testing.T) {
		step := KeyWithDesc("enter", "Submit the form")
		if step.Type != StepKey {
			t.Errorf("Type = %v, want StepKey", step.Type)
		}
		if step.Description != "Submit the form" {
			t.Errorf("Description = %v, want 'Submit the form'", step.Description)
		}
	})

	t.Run("Keys", func(t *testing.T) {
		steps := Keys("down", "down", "enter")
		if len(steps) != 3 {
			t.Fatalf("len = %d, want 3", len(steps))
		}
		for _, step := range steps {
			if step.Type != StepKey {
				t.Errorf("Type = %v, want StepKey", step.Type)
			}
		}
		if steps[2].Key != "enter" {
			t.Errorf("Key = %v, want enter", steps[2].Key)
		}
	})

	t.Run("Resize", func(t *testing.T) {
		step := Resize(70, 30)
		if step.Type != StepResize || step.Width != 70 || step.Height != 30 {
			t.Errorf("Resize(70, 30) = %+v", step)
		}
	})

	t.Run("Flash", func(t *testing.T) {
		step := Flash("saved", ui.FlashWarning)
		if step.Type != StepFlash || step.FlashText != "saved" || step.FlashType != ui.FlashWarning {
			t.Errorf("Flash() = %+v", step)
		}
	})
}

func badFileTypeState() playground.State {
	s := playground.DefaultState()
	s.FileType = "rs"
	return s
}

func TestDefaultSetup(t *testing.T) {
	setup := DefaultSetup()

	if err := playground.Validate(setup.State); err != nil {
		t.Errorf("DefaultSetup state is invalid: %v", err)
	}

	if setup.State.Code == "" {
		t.Error("Expected demo source code")
	}

	if setup.SourceName != "tasks.ts" {
		t.Errorf("SourceName = %v, want 'tasks.ts'", setup.SourceName)
	}
}
func TestValidationError(t *testing.T) {
	err := &ValidationError{
		Field:   "Name",
		Message: "is required",
	}

	expected := "validation error: Name: is required"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}
