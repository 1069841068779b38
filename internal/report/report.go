// Package report derives shareable payloads from the playground state: a
// markdown reproduction snippet, the query string of a prefilled bug report
// and the playground link itself. Everything here is a pure function of its
// arguments.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/zhubert/tsplay/internal/playground"
)

// DefaultIssueURL is where "Report as Issue" sends the user
const DefaultIssueURL = "https://github.com/typescript-eslint/typescript-eslint/issues/new"

// Bug report template fields
const (
	issueLabels   = "bug,package: eslint-plugin,triage"
	issueTemplate = "01-bug-report-plugin.yaml"
	issueSummary  = "<short description of the issue>"
)

// Build-time defaults for the environment-supplied versions, set via ldflags
var (
	ESLintVersion   = "9.17.0"
	TSESLintVersion = "8.18.2"
)

// Versions are the tool versions shown in the panel and in reports
type Versions struct {
	TypeScript string
	ESLint     string
	TSESLint   string
}

// EnvVersions returns the versions for a session running TypeScript ts.
// ESLINT_VERSION and TS_ESLINT_VERSION override the build defaults.
func EnvVersions(ts string) Versions {
	v := Versions{TypeScript: ts, ESLint: ESLintVersion, TSESLint: TSESLintVersion}
	if env := os.Getenv("ESLINT_VERSION"); env != "" {
		v.ESLint = env
	}
	if env := os.Getenv("TS_ESLINT_VERSION"); env != "" {
		v.TSESLint = env
	}
	return v
}

// field is one reproducible setting with its rendered value
type field struct {
	name  string
	value string
}

// settingsFields lists the settings both projections reproduce, in order.
// The source type fallback is applied here so neither projection shows an
// absent value.
func settingsFields(s playground.State) []field {
	ast := s.ShowAST
	if ast == "" {
		ast = "none"
	}
	return []field{
		{playground.SettingTS, s.TS},
		{playground.SettingFileType, s.FileType},
		{playground.SettingSourceType, playground.DisplaySourceType(s)},
		{playground.SettingScroll, strconv.FormatBool(s.Scroll)},
		{playground.SettingShowTokens, strconv.FormatBool(s.ShowTokens)},
		{playground.SettingShowAST, ast},
		{playground.SettingShowComments, strconv.FormatBool(s.ShowComments)},
	}
}

// ToMarkdown renders the reproduction snippet pasted into issues and chats
func ToMarkdown(s playground.State, link string, v Versions) string {
	sections := []string{
		fmt.Sprintf("[Playground](%s)", link),
		"### Repro Code",
		codeBlock(fenceLanguage(s.FileType), s.Code),
		"### ESLint Config",
		codeBlock("json", s.ESLintRC),
		"### tsconfig",
		codeBlock("json", s.TSConfig),
		"### Settings",
		settingsTable(s),
		"### Versions",
		versionsTable(v),
	}
	return strings.Join(sections, "\n\n") + "\n"
}

// ToIssueParams returns the percent-encoded query string that prefills the
// bug report form. Keys are sorted, so equal states give equal output.
func ToIssueParams(s playground.State, link string, v Versions) string {
	q := url.Values{}
	q.Set("labels", issueLabels)
	q.Set("template", issueTemplate)
	q.Set("title", issueTitle(s.ESLintRC))
	q.Set("playground-link", link)
	q.Set("repro-code", s.Code)
	q.Set("eslint-config", s.ESLintRC)
	q.Set("typescript-config", s.TSConfig)
	q.Set("versions", versionsTable(v))
	for _, f := range settingsFields(s) {
		q.Set(f.name, f.value)
	}
	return q.Encode()
}

// IssueURL joins the issue form URL and its query string
func IssueURL(base, params string) string {
	return base + "?" + params
}

func issueTitle(eslintrc string) string {
	if rule := firstRule(eslintrc); rule != "" {
		return fmt.Sprintf("Bug: [%s] %s", rule, issueSummary)
	}
	return "Bug: " + issueSummary
}

// firstRule returns the first rule key of an ESLint config in document
// order, or "" when the config has no rules or does not parse.
func firstRule(eslintrc string) string {
	var cfg struct {
		Rules json.RawMessage `json:"rules"`
	}
	if err := json.Unmarshal([]byte(eslintrc), &cfg); err != nil || len(cfg.Rules) == 0 {
		return ""
	}

	dec := json.NewDecoder(bytes.NewReader(cfg.Rules))
	if tok, err := dec.Token(); err != nil || tok != json.Delim('{') {
		return ""
	}
	tok, err := dec.Token()
	if err != nil {
		return ""
	}
	name, _ := tok.(string)
	return name
}

func settingsTable(s playground.State) string {
	rows := [][2]string{{"option", "value"}}
	for _, f := range settingsFields(s) {
		rows = append(rows, [2]string{"`" + f.name + "`", "`" + f.value + "`"})
	}
	return table(rows)
}

func versionsTable(v Versions) string {
	return table([][2]string{
		{"package", "version"},
		{"`typescript`", "`" + v.TypeScript + "`"},
		{"`eslint`", "`" + v.ESLint + "`"},
		{"`@typescript-eslint/parser`", "`" + v.TSESLint + "`"},
	})
}

func table(rows [][2]string) string {
	var b strings.Builder
	for i, r := range rows {
		fmt.Fprintf(&b, "| %s | %s |\n", r[0], r[1])
		if i == 0 {
			b.WriteString("| --- | --- |\n")
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// codeBlock fences code with enough backticks that the code cannot close it
func codeBlock(lang, code string) string {
	fence := "```"
	for strings.Contains(code, fence) {
		fence += "`"
	}
	return fence + lang + "\n" + strings.TrimSuffix(code, "\n") + "\n" + fence
}

// fenceLanguage maps a playground file type to a markdown fence language
func fenceLanguage(fileType string) string {
	switch fileType {
	case "tsx":
		return "tsx"
	case "jsx":
		return "jsx"
	case "js", "cjs", "mjs":
		return "js"
	default:
		return "ts"
	}
}

// Language returns the chroma lexer name for a playground file type
func Language(fileType string) string {
	switch fenceLanguage(fileType) {
	case "tsx":
		return "tsx"
	case "js", "jsx":
		return "javascript"
	default:
		return "typescript"
	}
}
