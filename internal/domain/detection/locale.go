package detection

import (
	"strings"

	"golang.org/x/text/language"
)

// DefaultLocale is used when the browser reports no language at all.
const DefaultLocale = "en"

// DefaultSupportedLocales are the locales with a complete translation catalog.
var DefaultSupportedLocales = []string{"en", "fr", "pt", "es"}

// LocaleResult is the outcome of ResolveLocale.
type LocaleResult struct {
	Locale              string
	HasFullLocalization bool
}

// ResolveLocale reduces a language preference to its lower-cased base subtag and
// reports whether that locale is fully localized. The preference may be a single
// tag ("pt-BR") or a whole Accept-Language header; in the latter case the entry
// with the highest weight is used.
func ResolveLocale(preference string, supported []string) LocaleResult {
	locale := baseSubtag(preferredTag(preference))
	if locale == "" {
		locale = DefaultLocale
	}

	full := false
	for _, s := range supported {
		if strings.EqualFold(s, locale) {
			full = true
			break
		}
	}
	return LocaleResult{Locale: locale, HasFullLocalization: full}
}

// preferredTag picks the most preferred raw tag out of preference. Weights are
// read per entry so the tag comes back as sent, not in canonical form
// ("iw" stays "iw"). Ties keep header order.
func preferredTag(preference string) string {
	preference = strings.TrimSpace(preference)
	if preference == "" {
		return ""
	}

	if strings.ContainsAny(preference, ",;") {
		best, bestQ := "", float32(0)
		for _, entry := range strings.Split(preference, ",") {
			raw, _, _ := strings.Cut(entry, ";")
			raw = strings.TrimSpace(raw)
			if raw == "" || raw == "*" {
				continue
			}
			_, q, err := language.ParseAcceptLanguage(entry)
			if err != nil || len(q) == 0 {
				continue
			}
			if q[0] > bestQ {
				best, bestQ = raw, q[0]
			}
		}
		if best != "" {
			return best
		}
	}

	first, _, _ := strings.Cut(preference, ",")
	first, _, _ = strings.Cut(first, ";")
	return strings.TrimSpace(first)
}

func baseSubtag(tag string) string {
	tag = strings.ReplaceAll(tag, "_", "-")
	base, _, _ := strings.Cut(tag, "-")
	return strings.ToLower(strings.TrimSpace(base))
}
