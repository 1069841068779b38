package ui

import "testing"

func TestGetTheme(t *testing.T) {
	if GetTheme(ThemeNord).Name != "Nord" {
		t.Error("GetTheme(nord) returned the wrong theme")
	}
	if GetTheme("missing").Name != BuiltinThemes[DefaultTheme].Name {
		t.Error("unknown theme should fall back to the default")
	}
}

func TestThemeNamesAreBuiltin(t *testing.T) {
	for _, name := range ThemeNames() {
		th, ok := BuiltinThemes[name]
		if !ok {
			t.Errorf("theme %q listed but not defined", name)
			continue
		}
		if th.CodeStyle == "" || th.Primary == "" || th.Success == "" {
			t.Errorf("theme %q is incomplete", name)
		}
	}
	if len(ThemeNames()) != len(BuiltinThemes) {
		t.Error("ThemeNames and BuiltinThemes disagree")
	}
}

func TestSetTheme(t *testing.T) {
	t.Cleanup(func() { SetTheme(DefaultTheme) })

	SetThemeByName(string(ThemeLight))
	if CurrentThemeName() != ThemeLight {
		t.Errorf("CurrentThemeName() = %q", CurrentThemeName())
	}
	if CurrentTheme().CodeStyle != "github" {
		t.Errorf("CodeStyle = %q", CurrentTheme().CodeStyle)
	}
}

func TestThemeDefaults(t *testing.T) {
	th := Theme{Primary: "#111111"}
	if th.GetBgSelected() != "#111111" || th.GetBorderFocus() != "#111111" {
		t.Error("selection and focus colors should default to Primary")
	}
	th.BgSelected = "#222222"
	th.BorderFocus = "#333333"
	if th.GetBgSelected() != "#222222" || th.GetBorderFocus() != "#333333" {
		t.Error("explicit colors should win")
	}
}
