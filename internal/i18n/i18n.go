// Package i18n provides flat key/value string lookup with {{name}}-style
// interpolation. The table is selected by the user's persisted language.
package i18n

import (
	"embed"
	"encoding/json"
	"log"
	"strings"
)

//go:embed locales/*.json
var localesFS embed.FS

const DefaultLanguage = "en"

var tables = map[string]map[string]string{}

func init() {
	for _, lang := range []string{"en", "hi"} {
		raw, err := localesFS.ReadFile("locales/" + lang + ".json")
		if err != nil {
			log.Printf("i18n: missing locale file for %s: %v", lang, err)
			continue
		}
		table := map[string]string{}
		if err := json.Unmarshal(raw, &table); err != nil {
			log.Printf("i18n: malformed locale file for %s: %v", lang, err)
			continue
		}
		tables[lang] = table
	}
}

// Supported reports whether lang has a locale table.
func Supported(lang string) bool {
	_, ok := tables[lang]
	return ok
}

// Table returns a copy of the locale table for lang, falling back to the
// default language. Clients fetch this once and interpolate locally.
func Table(lang string) map[string]string {
	table, ok := tables[lang]
	if !ok {
		table = tables[DefaultLanguage]
	}
	out := make(map[string]string, len(table))
	for k, v := range table {
		out[k] = v
	}
	return out
}

// Translate looks key up in the table for lang and substitutes {{name}}
// placeholders with opts values. A missing key degrades to returning the key
// itself. Placeholder matching is case-sensitive and replaces every
// occurrence; substitution order does not matter.
func Translate(lang, key string, opts map[string]string) string {
	table, ok := tables[lang]
	if !ok {
		table = tables[DefaultLanguage]
	}

	text, ok := table[key]
	if !ok {
		text = key
	}

	for name, value := range opts {
		text = strings.ReplaceAll(text, "{{"+name+"}}", value)
	}
	return text
}
