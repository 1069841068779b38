package report

import (
	"net/url"
	"strings"
	"testing"

	perrors "github.com/zhubert/tsplay/internal/errors"
	"github.com/zhubert/tsplay/internal/playground"
)

// scenarioState is the model from the panel's reference scenario.
func scenarioState() playground.State {
	return playground.State{
		TS:         "5.4.2",
		FileType:   "ts",
		Scroll:     true,
		ShowTokens: false,
		Code:       "let x: number = 1;\n",
		ESLintRC:   `{"rules": {"no-unused-vars": "error", "eqeqeq": "warn"}}`,
		TSConfig:   `{"compilerOptions": {}}`,
	}
}

var testVersions = Versions{TypeScript: "5.4.2", ESLint: "9.0.0", TSESLint: "8.0.0"}

const testLink = "https://typescript-eslint.io/play#ts=5.4.2"

func TestToIssueParams_Scenario(t *testing.T) {
	params := ToIssueParams(scenarioState(), testLink, testVersions)

	q, err := url.ParseQuery(params)
	if err != nil {
		t.Fatalf("params are not a query string: %v", err)
	}
	want := map[string]string{
		"ts":         "5.4.2",
		"fileType":   "ts",
		"scroll":     "true",
		"showTokens": "false",
		"sourceType": "module",
	}
	for k, v := range want {
		if got := q.Get(k); got != v {
			t.Errorf("params[%s] = %q, want %q", k, got, v)
		}
	}
	for _, raw := range []string{"ts=5.4.2", "fileType=ts", "scroll=true", "showTokens=false", "sourceType=module"} {
		if !strings.Contains(params, raw) {
			t.Errorf("params missing encoded entry %q", raw)
		}
	}
}

func TestToIssueParams_PercentEncoded(t *testing.T) {
	params := ToIssueParams(scenarioState(), testLink, testVersions)

	for _, bad := range []string{" ", "\n", "{", "}", "\"", "#"} {
		if strings.Contains(params, bad) {
			t.Errorf("params contain unencoded %q", bad)
		}
	}
	q, _ := url.ParseQuery(params)
	if q.Get("repro-code") != scenarioState().Code {
		t.Errorf("repro-code = %q, want the source", q.Get("repro-code"))
	}
	if q.Get("playground-link") != testLink {
		t.Errorf("playground-link = %q", q.Get("playground-link"))
	}
	if q.Get("labels") != issueLabels || q.Get("template") != issueTemplate {
		t.Error("bug report template fields missing")
	}
}

func TestPayloads_Deterministic(t *testing.T) {
	s := scenarioState()

	if ToMarkdown(s, testLink, testVersions) != ToMarkdown(s, testLink, testVersions) {
		t.Error("ToMarkdown differs between calls")
	}
	if ToIssueParams(s, testLink, testVersions) != ToIssueParams(s, testLink, testVersions) {
		t.Error("ToIssueParams differs between calls")
	}
	if PlaygroundLink(DefaultPlaygroundURL, s) != PlaygroundLink(DefaultPlaygroundURL, s) {
		t.Error("PlaygroundLink differs between calls")
	}
}

func TestPayloads_ParamsCoverMarkdownFields(t *testing.T) {
	states := []playground.State{
		scenarioState(),
		playground.DefaultState(),
		{TS: "4.9.5", FileType: "jsx", SourceType: "script", ShowAST: "scope", ShowComments: true},
	}

	for _, s := range states {
		md := ToMarkdown(s, testLink, testVersions)
		q, err := url.ParseQuery(ToIssueParams(s, testLink, testVersions))
		if err != nil {
			t.Fatalf("params do not parse: %v", err)
		}
		for _, f := range settingsFields(s) {
			row := "| `" + f.name + "` | `" + f.value + "` |"
			if !strings.Contains(md, row) {
				t.Errorf("markdown missing row %q", row)
			}
			if got := q.Get(f.name); got != f.value {
				t.Errorf("params[%s] = %q, markdown shows %q", f.name, got, f.value)
			}
		}
		if !strings.Contains(md, s.Code) && s.Code != "" {
			t.Error("markdown missing source")
		}
		if q.Get("repro-code") != s.Code || q.Get("eslint-config") != s.ESLintRC || q.Get("typescript-config") != s.TSConfig {
			t.Error("params missing a source text the markdown reproduces")
		}
	}
}

func TestToMarkdown_Sections(t *testing.T) {
	md := ToMarkdown(scenarioState(), testLink, testVersions)

	for _, want := range []string{
		"[Playground](" + testLink + ")",
		"### Repro Code",
		"```ts\nlet x: number = 1;\n```",
		"### ESLint Config",
		"### tsconfig",
		"| `sourceType` | `module` |",
		"| `@typescript-eslint/parser` | `8.0.0` |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
}

func TestIssueTitle(t *testing.T) {
	tests := []struct {
		name     string
		eslintrc string
		want     string
	}{
		{"first rule in document order", `{"rules": {"no-unused-vars": "error", "eqeqeq": "warn"}}`, "Bug: [no-unused-vars] <short description of the issue>"},
		{"no rules", `{"rules": {}}`, "Bug: <short description of the issue>"},
		{"missing rules key", `{}`, "Bug: <short description of the issue>"},
		{"not json", `rules: yes`, "Bug: <short description of the issue>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := issueTitle(tt.eslintrc); got != tt.want {
				t.Errorf("issueTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCodeBlock_LongerFence(t *testing.T) {
	got := codeBlock("md", "before\n```\ninside\n```")
	if !strings.HasPrefix(got, "````md\n") || !strings.HasSuffix(got, "\n````") {
		t.Errorf("codeBlock() did not lengthen the fence:\n%s", got)
	}
}

func TestFenceLanguage(t *testing.T) {
	tests := map[string]string{"ts": "ts", "d.mts": "ts", "tsx": "tsx", "cjs": "js", "jsx": "jsx"}
	for in, want := range tests {
		if got := fenceLanguage(in); got != want {
			t.Errorf("fenceLanguage(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestIssueURL(t *testing.T) {
	if got := IssueURL(DefaultIssueURL, "a=1"); got != DefaultIssueURL+"?a=1" {
		t.Errorf("IssueURL() = %q", got)
	}
}

func TestEnvVersions(t *testing.T) {
	t.Setenv("ESLINT_VERSION", "8.57.0")
	t.Setenv("TS_ESLINT_VERSION", "")

	v := EnvVersions("5.4.2")
	if v.TypeScript != "5.4.2" || v.ESLint != "8.57.0" || v.TSESLint != TSESLintVersion {
		t.Errorf("EnvVersions() = %+v", v)
	}
}

func TestPlaygroundLink_RoundTrip(t *testing.T) {
	s := scenarioState()
	s.SourceType = "script"
	s.ShowAST = "ts"
	s.Code = "const a = `x & y #1`;\n"

	p, err := ParseLink(PlaygroundLink(DefaultPlaygroundURL, s))
	if err != nil {
		t.Fatalf("ParseLink() error = %v", err)
	}
	if got := playground.Apply(playground.State{}, p); got != s {
		t.Errorf("round trip = %+v, want %+v", got, s)
	}
}

func TestPlaygroundLink_AbsentSourceTypeStaysAbsent(t *testing.T) {
	p, err := ParseLink(PlaygroundLink(DefaultPlaygroundURL, scenarioState()))
	if err != nil {
		t.Fatalf("ParseLink() error = %v", err)
	}
	if p.SourceType != nil {
		t.Errorf("SourceType = %q, want nil", *p.SourceType)
	}
}

func TestParseLink_Errors(t *testing.T) {
	tests := []struct {
		name string
		link string
	}{
		{"no fragment", "https://typescript-eslint.io/play"},
		{"bad bool", "https://x/play#scroll=maybe"},
		{"bad base64", "https://x/play#code=%%%"},
		{"bad code encoding", "https://x/play#code=!!"},
		{"out of range ts", "https://x/play#ts=0.1.0"},
		{"out of range source type", "https://x/play#sourceType=commonjs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseLink(tt.link); err == nil {
				t.Error("ParseLink() accepted a bad link")
			} else if !perrors.Is(err, perrors.KindInvalid) {
				t.Errorf("error kind = %v, want invalid", perrors.GetKind(err))
			}
		})
	}
}

func TestParseLink_PartialLink(t *testing.T) {
	p, err := ParseLink("https://x/play#fileType=tsx&showTokens=true")
	if err != nil {
		t.Fatalf("ParseLink() error = %v", err)
	}
	if p.FileType == nil || *p.FileType != "tsx" || p.ShowTokens == nil || !*p.ShowTokens {
		t.Errorf("ParseLink() = %+v", p)
	}
	if p.TS != nil || p.Code != nil {
		t.Error("keys missing from the link should stay nil")
	}
}
