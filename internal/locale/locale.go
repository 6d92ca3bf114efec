// Package locale serves the embedded per-language string tables used for
// presence button labels.
package locale

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// fallbackLang is used when the requested language has no table
const fallbackLang = "en"

// Table holds the flattened string tables, keyed by language then by
// dotted string key
type Table struct {
	logger  *zap.Logger
	strings map[string]map[string]string
}

// NewTable parses every embedded locale file
func NewTable(logger *zap.Logger) (*Table, error) {
	t := &Table{
		logger:  logger,
		strings: make(map[string]map[string]string),
	}

	entries, err := fs.ReadDir(localeFS, "locales")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded locales: %w", err)
	}
	for _, entry := range entries {
		lang := strings.TrimSuffix(entry.Name(), ".yaml")
		data, err := localeFS.ReadFile("locales/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("failed to read locale %s: %w", lang, err)
		}
		var raw map[string]interface{}
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse locale %s: %w", lang, err)
		}
		flat := make(map[string]string)
		flatten("", raw, flat)
		t.strings[lang] = flat
	}

	if _, ok := t.strings[fallbackLang]; !ok {
		return nil, fmt.Errorf("embedded locales are missing the %q table", fallbackLang)
	}

	logger.Info("Locale tables loaded", zap.Int("languages", len(t.strings)))
	return t, nil
}

// Lookup returns the string for key in lang. Unknown languages fall back
// to English; unknown keys return the key itself so a missing
// translation stays visible rather than blanking a label.
func (t *Table) Lookup(lang, key string) string {
	table, ok := t.strings[lang]
	if !ok {
		table = t.strings[fallbackLang]
	}
	if v, ok := table[key]; ok {
		return v
	}
	if lang != fallbackLang {
		if v, ok := t.strings[fallbackLang][key]; ok {
			return v
		}
	}
	t.logger.Debug("Missing locale string", zap.String("lang", lang), zap.String("key", key))
	return key
}

// flatten turns nested YAML maps into dotted keys
func flatten(prefix string, in map[string]interface{}, out map[string]string) {
	for k, v := range in {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]interface{}:
			flatten(key, val, out)
		case string:
			out[key] = val
		default:
			out[key] = fmt.Sprintf("%v", val)
		}
	}
}
