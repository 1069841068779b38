package playground

import (
	"slices"
	"testing"

	perrors "github.com/zhubert/tsplay/internal/errors"
)

// recorder collects the partials bindings send.
type recorder struct {
	partials []Partial
}

func (r *recorder) set(p Partial) { r.partials = append(r.partials, p) }

func scenarioState() State {
	return State{TS: "5.4.2", FileType: "ts", Scroll: true, ShowTokens: false}
}

func findBinding(t *testing.T, bs []Binding, setting string) Binding {
	t.Helper()
	for _, b := range bs {
		if b.Setting == setting {
			return b
		}
	}
	t.Fatalf("no binding for %s", setting)
	return Binding{}
}

func TestBindings_Order(t *testing.T) {
	bs := Bindings(scenarioState(), func(Partial) {})

	var got []string
	for _, b := range bs {
		got = append(got, b.Setting)
	}
	want := []string{SettingTS, SettingFileType, SettingSourceType, SettingScroll, SettingShowTokens}
	if !slices.Equal(got, want) {
		t.Errorf("binding order = %v, want %v", got, want)
	}
}

func TestBindings_CurrentValues(t *testing.T) {
	bs := Bindings(scenarioState(), func(Partial) {})

	if b := findBinding(t, bs, SettingTS); b.Value != "5.4.2" || b.Index() < 0 {
		t.Errorf("ts binding value = %q (index %d)", b.Value, b.Index())
	}
	if b := findBinding(t, bs, SettingFileType); b.Value != "ts" {
		t.Errorf("fileType binding value = %q", b.Value)
	}
	if b := findBinding(t, bs, SettingScroll); !b.Checked {
		t.Error("scroll binding should be checked")
	}
	if b := findBinding(t, bs, SettingShowTokens); b.Checked {
		t.Error("showTokens binding should not be checked")
	}
}

func TestBindings_SourceTypeFallback(t *testing.T) {
	tests := []struct {
		name       string
		sourceType string
		want       string
	}{
		{"absent shows module", "", "module"},
		{"script shown as is", "script", "script"},
		{"module shown as is", "module", "module"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := scenarioState()
			s.SourceType = tt.sourceType

			if got := DisplaySourceType(s); got != tt.want {
				t.Errorf("DisplaySourceType() = %q, want %q", got, tt.want)
			}
			b := findBinding(t, Bindings(s, func(Partial) {}), SettingSourceType)
			if b.Value != tt.want {
				t.Errorf("binding value = %q, want %q", b.Value, tt.want)
			}
		})
	}
}

func TestBindings_OnlySetOwnField(t *testing.T) {
	s := scenarioState()
	rec := &recorder{}

	for _, b := range Bindings(s, rec.set) {
		rec.partials = nil
		switch b.Kind {
		case KindSelect:
			for _, opt := range b.Options {
				if !b.Choose(opt) {
					t.Errorf("%s: Choose(%q) refused a candidate", b.Setting, opt)
				}
			}
		case KindToggle:
			if !b.Toggle() {
				t.Errorf("%s: Toggle() refused", b.Setting)
			}
		}

		if len(rec.partials) == 0 {
			t.Errorf("%s: no partial sent", b.Setting)
		}
		for _, p := range rec.partials {
			if fields := p.Fields(); !slices.Equal(fields, []string{b.Setting}) {
				t.Errorf("%s: partial sets %v", b.Setting, fields)
			}
		}
	}
}

func TestBinding_ChooseRejectsOutOfRange(t *testing.T) {
	rec := &recorder{}
	b := findBinding(t, Bindings(scenarioState(), rec.set), SettingSourceType)

	if b.Choose("commonjs") {
		t.Error("Choose accepted a value outside the candidates")
	}
	if len(rec.partials) != 0 {
		t.Errorf("out-of-range choice sent %d partials", len(rec.partials))
	}
}

func TestBinding_KindMismatch(t *testing.T) {
	rec := &recorder{}
	bs := Bindings(scenarioState(), rec.set)

	if findBinding(t, bs, SettingScroll).Choose("true") {
		t.Error("toggle binding accepted Choose")
	}
	if findBinding(t, bs, SettingTS).Toggle() {
		t.Error("select binding accepted Toggle")
	}
	if len(rec.partials) != 0 {
		t.Errorf("mismatched calls sent %d partials", len(rec.partials))
	}
}

func TestBinding_Cycle(t *testing.T) {
	tests := []struct {
		name       string
		sourceType string
		delta      int
		want       string
	}{
		{"forward from absent", "", 1, "script"},
		{"forward wraps", "module", 1, "script"},
		{"backward wraps", "script", -1, "module"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := scenarioState()
			s.SourceType = tt.sourceType
			store := NewStore(s)

			b := findBinding(t, Bindings(store.State(), store.SetState), SettingSourceType)
			if !b.Cycle(tt.delta) {
				t.Fatal("Cycle refused")
			}
			if got := store.State().SourceType; got != tt.want {
				t.Errorf("SourceType = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBinding_ToggleThroughStore(t *testing.T) {
	store := NewStore(scenarioState())

	findBinding(t, Bindings(store.State(), store.SetState), SettingShowTokens).Toggle()

	got := store.State()
	if !got.ShowTokens {
		t.Error("ShowTokens not toggled")
	}
	if !got.Scroll || got.TS != "5.4.2" {
		t.Errorf("toggle touched other fields: %+v", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*State)
		wantErr bool
	}{
		{"default state", func(*State) {}, false},
		{"absent source type", func(s *State) { s.SourceType = "" }, false},
		{"unknown ts", func(s *State) { s.TS = "1.0.0" }, true},
		{"unknown file type", func(s *State) { s.FileType = "py" }, true},
		{"unknown source type", func(s *State) { s.SourceType = "commonjs" }, true},
		{"unknown ast view", func(s *State) { s.ShowAST = "tree" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultState()
			tt.mutate(&s)
			err := Validate(s)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !perrors.Is(err, perrors.KindInvalid) {
				t.Errorf("Validate() error kind = %v, want invalid", perrors.GetKind(err))
			}
		})
	}
}

func TestValidatePartial(t *testing.T) {
	if err := ValidatePartial(Partial{TS: String("5.4.2")}); err != nil {
		t.Errorf("valid partial rejected: %v", err)
	}
	if err := ValidatePartial(Partial{FileType: String("rs")}); err == nil {
		t.Error("invalid partial accepted")
	}
}

func TestDefaultState_IsValid(t *testing.T) {
	s := DefaultState()
	if err := Validate(s); err != nil {
		t.Errorf("DefaultState() invalid: %v", err)
	}
	if s.SourceType != "" {
		t.Errorf("DefaultState().SourceType = %q, want absent", s.SourceType)
	}
	if !Contains(TSVersions, "5.4.2") {
		t.Error("TSVersions missing 5.4.2")
	}
}
