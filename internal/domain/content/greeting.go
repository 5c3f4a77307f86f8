package content

import "github.com/AtRiskMedia/adaptive-profile/internal/domain/visitor"

// FallbackGreeting is returned when no catalog has anything for the visitor.
const FallbackGreeting = "Hello"

// ResolveGreeting picks the greeting text, trying in order: the full catalog
// (fully localized visitors only), the greetings catalog keyed by time of day, the
// greetings catalog's generic entry, and finally FallbackGreeting.
func ResolveGreeting(vc visitor.Context, cat Catalogs) string {
	tod := string(vc.TimeOfDay)

	if vc.HasFullLocalization {
		if s, ok := cat.Full.Lookup("greeting." + tod); ok {
			return s
		}
	}
	if s, ok := cat.Greetings.get(vc.Locale, tod); ok {
		return s
	}
	if s, ok := cat.Greetings.get(vc.Locale, "generic"); ok {
		return s
	}
	return FallbackGreeting
}
