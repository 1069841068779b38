package playground

import (
	"slices"

	perrors "github.com/zhubert/tsplay/internal/errors"
)

// Candidate tables for the enum-valued settings. Order is display order.
var (
	// TSVersions lists the TypeScript versions the playground can load
	TSVersions = []string{"5.7.2", "5.6.3", "5.5.4", "5.4.5", "5.4.2", "5.3.3", "5.2.2", "5.1.6", "5.0.4", "4.9.5"}

	// FileTypes lists the file extensions the source can be parsed as
	FileTypes = []string{"ts", "tsx", "d.ts", "cts", "mts", "d.cts", "d.mts", "js", "jsx", "cjs", "mjs"}

	// SourceTypes lists the module goals the parser accepts
	SourceTypes = []string{"script", "module"}

	// ASTViews lists the tree views the source pane can show; "" hides it
	ASTViews = []string{"", "es", "ts", "scope", "types"}
)

// DefaultSourceType is shown when the model holds no source type
const DefaultSourceType = "module"

const defaultCode = `const answer: number = 42;
console.log(answer);
`

const defaultESLintRC = `{
  "rules": {}
}`

const defaultTSConfig = `{
  "compilerOptions": {
    "strict": true
  }
}`

// DefaultState returns the state a fresh playground starts with.
// SourceType is left absent on purpose.
func DefaultState() State {
	return State{
		TS:       TSVersions[0],
		FileType: "ts",
		Scroll:   true,
		Code:     defaultCode,
		ESLintRC: defaultESLintRC,
		TSConfig: defaultTSConfig,
	}
}

// Contains reports whether value is one of options
func Contains(options []string, value string) bool {
	return slices.Contains(options, value)
}

// DisplaySourceType returns the source type a control should show
func DisplaySourceType(s State) string {
	if s.SourceType == "" {
		return DefaultSourceType
	}
	return s.SourceType
}

// Validate checks that every enum field holds a candidate value.
// The store never calls this; it is for states built from outside input.
func Validate(s State) error {
	if !Contains(TSVersions, s.TS) {
		return perrors.InvalidSetting(SettingTS, s.TS)
	}
	if !Contains(FileTypes, s.FileType) {
		return perrors.InvalidSetting(SettingFileType, s.FileType)
	}
	if s.SourceType != "" && !Contains(SourceTypes, s.SourceType) {
		return perrors.InvalidSetting(SettingSourceType, s.SourceType)
	}
	if !Contains(ASTViews, s.ShowAST) {
		return perrors.InvalidSetting(SettingShowAST, s.ShowAST)
	}
	return nil
}

// ValidatePartial checks the enum fields a partial sets
func ValidatePartial(p Partial) error {
	return Validate(Apply(DefaultState(), p))
}
