package detection

import (
	"net/url"
	"strings"

	"github.com/AtRiskMedia/adaptive-profile/internal/domain/visitor"
)

// VisitorTypeParams are the query parameter names carrying a visitor-type code,
// in priority order.
var VisitorTypeParams = []string{"r", "ref"}

var visitorTypeCodes = map[string]visitor.Type{
	"li": visitor.TypeRecruiter,
	"sp": visitor.TypeSpeaker,
	"gh": visitor.TypeDeveloper,
	"ex": visitor.TypeExecutive,
	"qr": visitor.TypeInPerson,
}

type referrerRule struct {
	domains []string
	typ     visitor.Type
}

var referrerRules = []referrerRule{
	{domains: []string{"linkedin.com"}, typ: visitor.TypeRecruiter},
	{domains: []string{"github.com"}, typ: visitor.TypeDeveloper},
	{domains: []string{"eventbrite.com", "meetup.com", "sessionize.com", "papercall.io"}, typ: visitor.TypeSpeaker},
}

// InferVisitorType resolves the audience of a visit. An explicit, known code in
// the query string wins; otherwise the referrer host is matched against per-type
// domain sets; otherwise the visit is general.
func InferVisitorType(query url.Values, referrer string) visitor.Type {
	if code := visitorTypeCode(query); code != "" {
		if typ, ok := visitorTypeCodes[code]; ok {
			return typ
		}
	}

	host := ReferrerDomain(referrer)
	if host == "" {
		return visitor.TypeGeneral
	}
	host = strings.ToLower(host)
	for _, rule := range referrerRules {
		for _, domain := range rule.domains {
			if host == domain || strings.HasSuffix(host, "."+domain) {
				return rule.typ
			}
		}
	}
	return visitor.TypeGeneral
}

func visitorTypeCode(query url.Values) string {
	for _, name := range VisitorTypeParams {
		if v := strings.TrimSpace(query.Get(name)); v != "" {
			return strings.ToLower(v)
		}
	}
	return ""
}

// ReferrerDomain returns the hostname of an absolute referrer URL, or "" when the
// referrer is empty or cannot be parsed.
func ReferrerDomain(referrer string) string {
	referrer = strings.TrimSpace(referrer)
	if referrer == "" {
		return ""
	}
	u, err := url.Parse(referrer)
	if err != nil || u.Scheme == "" {
		return ""
	}
	return u.Hostname()
}
