package playground

// Kind is the widget a binding drives
type Kind int

const (
	KindSelect Kind = iota
	KindToggle
)

// Binding connects one setting to its control. Every change a binding makes
// is a partial holding only its own setting.
type Binding struct {
	Setting string
	Label   string
	Kind    Kind
	Value   string   // current value, select bindings
	Checked bool     // current value, toggle bindings
	Options []string // candidates, select bindings

	set func(Partial)
}

// Bindings returns the panel's controls for s, in display order.
// set is called with the partial each control produces.
func Bindings(s State, set func(Partial)) []Binding {
	return []Binding{
		{Setting: SettingTS, Label: "TypeScript", Kind: KindSelect, Value: s.TS, Options: TSVersions, set: set},
		{Setting: SettingFileType, Label: "File type", Kind: KindSelect, Value: s.FileType, Options: FileTypes, set: set},
		{Setting: SettingSourceType, Label: "Source type", Kind: KindSelect, Value: DisplaySourceType(s), Options: SourceTypes, set: set},
		{Setting: SettingScroll, Label: "Auto scroll", Kind: KindToggle, Checked: s.Scroll, set: set},
		{Setting: SettingShowTokens, Label: "Show tokens", Kind: KindToggle, Checked: s.ShowTokens, set: set},
	}
}

// Choose proposes value for a select binding. Values outside Options are
// refused and nothing is sent.
func (b Binding) Choose(value string) bool {
	if b.Kind != KindSelect || !Contains(b.Options, value) {
		return false
	}
	b.set(b.selectPartial(value))
	return true
}

// Cycle chooses the option delta steps away from the current one, wrapping.
// A value not found in Options cycles from the first option.
func (b Binding) Cycle(delta int) bool {
	if b.Kind != KindSelect || len(b.Options) == 0 {
		return false
	}
	idx := b.Index()
	if idx < 0 {
		idx = 0
	}
	n := len(b.Options)
	next := ((idx+delta)%n + n) % n
	return b.Choose(b.Options[next])
}

// Toggle flips a toggle binding
func (b Binding) Toggle() bool {
	if b.Kind != KindToggle {
		return false
	}
	b.set(b.togglePartial(!b.Checked))
	return true
}

// Index returns the position of the current value in Options, or -1
func (b Binding) Index() int {
	for i, o := range b.Options {
		if o == b.Value {
			return i
		}
	}
	return -1
}

func (b Binding) selectPartial(value string) Partial {
	switch b.Setting {
	case SettingTS:
		return Partial{TS: String(value)}
	case SettingFileType:
		return Partial{FileType: String(value)}
	case SettingSourceType:
		return Partial{SourceType: String(value)}
	case SettingShowAST:
		return Partial{ShowAST: String(value)}
	}
	return Partial{}
}

func (b Binding) togglePartial(value bool) Partial {
	switch b.Setting {
	case SettingScroll:
		return Partial{Scroll: Bool(value)}
	case SettingShowTokens:
		return Partial{ShowTokens: Bool(value)}
	case SettingShowComments:
		return Partial{ShowComments: Bool(value)}
	}
	return Partial{}
}
