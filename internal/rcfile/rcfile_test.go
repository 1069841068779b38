package rcfile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	perrors "github.com/zhubert/tsplay/internal/errors"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		want    string
	}{
		{
			name:    "json verbatim",
			file:    ".eslintrc.json",
			content: `{"rules": {}}`,
			want:    `{"rules": {}}`,
		},
		{
			name:    "tsconfig with comments",
			file:    "tsconfig.json",
			content: "{\n  // strict mode\n  \"compilerOptions\": {\"strict\": true}\n}",
			want:    "{\n  // strict mode\n  \"compilerOptions\": {\"strict\": true}\n}",
		},
		{
			name:    "yaml converted",
			file:    ".eslintrc.yml",
			content: "rules:\n  no-console: error\n",
			want:    "{\n  \"rules\": {\n    \"no-console\": \"error\"\n  }\n}",
		},
		{
			name:    "empty yaml",
			file:    "empty.yaml",
			content: "",
			want:    "{}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Load(writeFile(t, tt.file, tt.content))
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Load() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if !perrors.Is(err, perrors.KindIO) {
		t.Errorf("Load() error = %v, want KindIO", err)
	}
}

func TestFromYAMLInvalid(t *testing.T) {
	_, err := FromYAML([]byte("rules: [unclosed"))
	if !perrors.Is(err, perrors.KindInvalid) {
		t.Errorf("FromYAML() error = %v, want KindInvalid", err)
	}
}

func TestFromYAMLNonStringKeys(t *testing.T) {
	got, err := FromYAML([]byte("levels:\n  1: warn\n  2: error\nlist:\n  - a: 1\n"))
	if err != nil {
		t.Fatalf("FromYAML() error = %v", err)
	}

	var v map[string]any
	if err := json.Unmarshal([]byte(got), &v); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, got)
	}
	levels, ok := v["levels"].(map[string]any)
	if !ok || levels["2"] != "error" {
		t.Errorf("levels = %v", v["levels"])
	}
}
