package content

import "github.com/AtRiskMedia/adaptive-profile/internal/domain/visitor"

// Action is a single call-to-action link.
type Action struct {
	Text string `json:"text"`
	Href string `json:"href"`
}

// CTA is the hero call-to-action configuration.
type CTA struct {
	Primary   Action  `json:"primary"`
	Secondary *Action `json:"secondary"`
}

var ctaTable = map[visitor.Type]CTA{
	visitor.TypeRecruiter: {
		Primary:   Action{Text: "View my results", Href: "#results"},
		Secondary: &Action{Text: "LinkedIn", Href: "https://linkedin.com/in/davidgraca"},
	},
	visitor.TypeSpeaker: {
		Primary:   Action{Text: "Book me to speak", Href: "mailto:davidgraca@gmail.com?subject=Speaking%20Inquiry"},
		Secondary: &Action{Text: "Speaking topics", Href: "#speaking"},
	},
	visitor.TypeDeveloper: {
		Primary:   Action{Text: "GitHub", Href: "https://github.com/dmgrok"},
		Secondary: &Action{Text: "What I build", Href: "#results"},
	},
	visitor.TypeExecutive: {
		Primary:   Action{Text: "Let's talk AI strategy", Href: "mailto:davidgraca@gmail.com?subject=AI%20Strategy"},
		Secondary: &Action{Text: "See results", Href: "#results"},
	},
	visitor.TypeInPerson: {
		Primary:   Action{Text: "Connect on LinkedIn", Href: "https://linkedin.com/in/davidgraca"},
		Secondary: &Action{Text: "Email me", Href: "mailto:davidgraca@gmail.com"},
	},
	visitor.TypeGeneral: {
		Primary: Action{Text: "Let's connect", Href: "#contact"},
	},
}

// SelectCTA returns the call-to-action for a visitor type. Unknown types get the
// general entry. The returned value is a copy and safe to modify.
func SelectCTA(t visitor.Type) CTA {
	cta, ok := ctaTable[t]
	if !ok {
		cta = ctaTable[visitor.TypeGeneral]
	}
	if cta.Secondary != nil {
		secondary := *cta.Secondary
		cta.Secondary = &secondary
	}
	return cta
}
