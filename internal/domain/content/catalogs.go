// Package content turns a visitor context into the personalized pieces of the
// page: greeting, call-to-action links and the mood card.
package content

import "strings"

// Catalog is a nested key to string mapping, as decoded from a translation file.
type Catalog map[string]any

// Lookup resolves a dotted path such as "greeting.morning". It returns false when
// any segment is missing or the leaf is not a non-empty string.
func (c Catalog) Lookup(path string) (string, bool) {
	if c == nil || path == "" {
		return "", false
	}
	var node any = map[string]any(c)
	for _, part := range strings.Split(path, ".") {
		m, ok := asMap(node)
		if !ok {
			return "", false
		}
		node, ok = m[part]
		if !ok {
			return "", false
		}
	}
	s, ok := node.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case Catalog:
		return m, true
	default:
		return nil, false
	}
}

// GreetingCatalog maps locale to greeting key ("morning" ... "night", "generic").
type GreetingCatalog map[string]map[string]string

func (g GreetingCatalog) get(locale, key string) (string, bool) {
	if g == nil {
		return "", false
	}
	s, ok := g[locale][key]
	return s, ok && s != ""
}

// Catalogs are the translation documents loaded for one visitor. Any of them may
// be nil; every consumer degrades on absence.
type Catalogs struct {
	// Full is the complete catalog for the visitor's locale, present only when the
	// locale is fully localized and its file could be read.
	Full Catalog
	// UI is the catalog used for interface strings: Full when available, English
	// otherwise.
	UI Catalog
	// Greetings is the greetings-only catalog covering many more locales.
	Greetings GreetingCatalog
}
