package detection

import (
	"net/url"
	"strings"
	"testing"

	"github.com/AtRiskMedia/adaptive-profile/internal/domain/visitor"
	"github.com/stretchr/testify/assert"
)

func TestClassifyBot_OverrideWins(t *testing.T) {
	got := ClassifyBot("Mozilla/5.0 (Windows NT 10.0) Chrome/120.0", true, "qa-bot")
	assert.Equal(t, BotResult{IsBot: true, Name: "qa-bot"}, got)
}

func TestClassifyBot_AutomationFlag(t *testing.T) {
	got := ClassifyBot("Mozilla/5.0 (X11; Linux x86_64) Chrome/120.0", true, "")
	assert.Equal(t, BotResult{IsBot: true, Name: HeadlessBotName}, got)
}

func TestClassifyBot_CatalogOrder(t *testing.T) {
	tests := []struct {
		ua   string
		want string
	}{
		{"Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)", "bot"},
		{"facebookexternalhit/1.1 (+http://www.facebook.com/externalhit_uatext.php)", "facebookexternalhit"},
		{"WhatsApp/2.23.20.0", "whatsapp"},
		{"Mozilla/5.0 AppleWebKit/537.36 (KHTML, like Gecko; compatible; ChatGPT-User/1.0)", "chatgpt"},
		{"Sogou web spider/4.0", "spider"},
		{"Mozilla/5.0 (compatible; Yahoo! Slurp)", "slurp"},
		{"Mozilla/5.0 (compatible; Claude-Web/1.0)", "claude-web"},
		{"Mozilla/5.0 BingPreview/1.0b", "bingpreview"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := ClassifyBot(tt.ua, false, "")
			assert.True(t, got.IsBot)
			assert.Equal(t, tt.want, got.Name)
		})
	}
}

func TestClassifyBot_EveryCatalogEntryMatchesCaseInsensitively(t *testing.T) {
	for _, token := range BotCatalog() {
		ua := "Mozilla/5.0 " + strings.ToUpper(token) + "/1.0"
		got := ClassifyBot(ua, false, "")
		assert.True(t, got.IsBot, token)
		assert.True(t, strings.Contains(strings.ToLower(ua), got.Name), token)
	}
}

func TestClassifyBot_Human(t *testing.T) {
	uas := []string{
		"",
		"Mozilla/5.0 (Macintosh; Intel Mac OS X 14_0) AppleWebKit/605.1.15 Safari/605.1.15",
		"Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) Mobile/15E148",
	}
	for _, ua := range uas {
		assert.Equal(t, BotResult{}, ClassifyBot(ua, false, ""), ua)
	}
}

func TestResolveLocale(t *testing.T) {
	tests := []struct {
		pref     string
		wantLoc  string
		wantFull bool
	}{
		{"", "en", true},
		{"fr-FR", "fr", true},
		{"PT-br", "pt", true},
		{"de-DE", "de", false},
		{"ja", "ja", false},
		{"es_MX", "es", true},
		{"de-CH,de;q=0.9,en;q=0.8", "de", false},
		{"en;q=0.5,fr-CA;q=0.9", "fr", true},
		{"iw-IL,en;q=0.5", "iw", false},
		{"tl,en;q=0.5", "tl", false},
		{"in,en;q=0.5", "in", false},
		{"sh,en;q=0.5", "sh", false},
		{"mo,en;q=0.5", "mo", false},
		{"*,fr;q=0.8", "fr", true},
		{"de;q=0,pt;q=0.3", "pt", true},
		{"de;q=0.7,ja;q=0.7", "de", false},
	}
	for _, tt := range tests {
		t.Run(tt.pref, func(t *testing.T) {
			got := ResolveLocale(tt.pref, DefaultSupportedLocales)
			assert.Equal(t, tt.wantLoc, got.Locale)
			assert.Equal(t, tt.wantFull, got.HasFullLocalization)
		})
	}
}

func TestResolveLocale_Idempotent(t *testing.T) {
	for _, pref := range []string{"fr-FR", "de-AT", "pt", "ko-KR", "", "iw-IL,en;q=0.5"} {
		first := ResolveLocale(pref, DefaultSupportedLocales)
		second := ResolveLocale(first.Locale, DefaultSupportedLocales)
		assert.Equal(t, first, second, pref)
	}
}

func TestClassifyTimeOfDay_AllHours(t *testing.T) {
	want := map[int]visitor.TimeOfDay{}
	for h := 0; h < 24; h++ {
		switch {
		case h >= 5 && h < 12:
			want[h] = visitor.Morning
		case h >= 12 && h < 17:
			want[h] = visitor.Afternoon
		case h >= 17 && h < 21:
			want[h] = visitor.Evening
		default:
			want[h] = visitor.Night
		}
	}
	for h := 0; h < 24; h++ {
		assert.Equal(t, want[h], ClassifyTimeOfDay(h), "hour %d", h)
	}

	assert.Equal(t, visitor.Night, ClassifyTimeOfDay(4))
	assert.Equal(t, visitor.Morning, ClassifyTimeOfDay(5))
	assert.Equal(t, visitor.Afternoon, ClassifyTimeOfDay(12))
	assert.Equal(t, visitor.Evening, ClassifyTimeOfDay(17))
	assert.Equal(t, visitor.Night, ClassifyTimeOfDay(21))
}

func TestInferVisitorType(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		referrer string
		want     visitor.Type
	}{
		{"r code", "r=li", "", visitor.TypeRecruiter},
		{"ref code", "ref=sp", "", visitor.TypeSpeaker},
		{"r beats ref", "r=gh&ref=ex", "", visitor.TypeDeveloper},
		{"qr code", "r=qr", "", visitor.TypeInPerson},
		{"executive", "ref=EX", "", visitor.TypeExecutive},
		{"code beats referrer", "r=ex", "https://github.com/someone", visitor.TypeExecutive},
		{"unknown code falls through", "r=zz", "https://www.linkedin.com/feed/", visitor.TypeRecruiter},
		{"github referrer", "", "https://github.com/dmgrok", visitor.TypeDeveloper},
		{"sessionize referrer", "", "https://sessionize.com/app/speaker", visitor.TypeSpeaker},
		{"meetup subdomain", "", "https://www.meetup.com/group", visitor.TypeSpeaker},
		{"lookalike domain", "", "https://notgithub.com/x", visitor.TypeGeneral},
		{"malformed referrer", "", "http://[::1", visitor.TypeGeneral},
		{"relative referrer", "", "/just/a/path", visitor.TypeGeneral},
		{"nothing", "", "", visitor.TypeGeneral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, InferVisitorType(q, tt.referrer))
		})
	}
}

func TestReferrerDomain(t *testing.T) {
	assert.Equal(t, "www.linkedin.com", ReferrerDomain("https://www.linkedin.com/in/x?y=1"))
	assert.Equal(t, "", ReferrerDomain(""))
	assert.Equal(t, "", ReferrerDomain("http://[::1"))
	assert.Equal(t, "", ReferrerDomain("not a url"))
}

func TestIsDeveloperLikely(t *testing.T) {
	tests := []struct {
		name  string
		hints DeviceHints
		want  bool
	}{
		{"unknown", DeviceHints{}, false},
		{"high spec", DeviceHints{Cores: 12, MemoryGB: 16, Platform: "MacIntel"}, true},
		{"cores only", DeviceHints{Cores: 16, MemoryGB: 8, Platform: "Win32"}, false},
		{"linux desktop", DeviceHints{Cores: 4, MemoryGB: 4, Platform: "Linux x86_64", UserAgent: "Mozilla/5.0 (X11; Linux x86_64)"}, true},
		{"android", DeviceHints{Cores: 8, MemoryGB: 8, Platform: "Linux armv8l", UserAgent: "Mozilla/5.0 (Linux; Android 14)"}, false},
		{"freebsd", DeviceHints{Platform: "FreeBSD amd64"}, true},
		{"windows", DeviceHints{Cores: 4, MemoryGB: 8, Platform: "Win32"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDeveloperLikely(tt.hints))
		})
	}
}

func TestIsMobileUserAgent(t *testing.T) {
	assert.True(t, IsMobileUserAgent("Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X)"))
	assert.True(t, IsMobileUserAgent("Mozilla/5.0 (Linux; Android 14; Pixel 8)"))
	assert.False(t, IsMobileUserAgent("Mozilla/5.0 (Windows NT 10.0; Win64; x64)"))
}
