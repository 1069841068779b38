// Package rcfile reads ESLint and TypeScript configuration files into the
// text the playground editors hold.
package rcfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	perrors "github.com/zhubert/tsplay/internal/errors"
)

// Load returns the contents of path as playground config text. YAML files
// are converted to indented JSON. Anything else is returned verbatim, since
// tsconfig files routinely carry comments that a strict JSON parser rejects.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", perrors.E(perrors.Op("rcfile.Load"), perrors.KindIO, err)
	}

	if !isYAML(path) {
		return string(data), nil
	}
	return FromYAML(data)
}

// FromYAML converts a YAML document to indented JSON
func FromYAML(data []byte) (string, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return "", perrors.E(perrors.Op("rcfile.FromYAML"), perrors.KindInvalid, "failed to parse YAML", err)
	}
	if v == nil {
		return "{}", nil
	}

	out, err := json.MarshalIndent(normalize(v), "", "  ")
	if err != nil {
		return "", perrors.E(perrors.Op("rcfile.FromYAML"), perrors.KindInvalid, "YAML has no JSON form", err)
	}
	return string(out), nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// normalize turns the map[any]any yaml produces for non-string keys into
// something encoding/json accepts
func normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			t[k] = normalize(val)
		}
		return t
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, val := range t {
			m[fmt.Sprint(k)] = normalize(val)
		}
		return m
	case []any:
		for i, val := range t {
			t[i] = normalize(val)
		}
		return t
	default:
		return v
	}
}
