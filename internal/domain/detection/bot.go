// Package detection holds the pure, side-effect free detectors that feed the
// visitor context: bot, locale, time of day, visitor type and device.
package detection

import "strings"

// HeadlessBotName is reported when the browser says it is driven by automation.
const HeadlessBotName = "headless"

// botCatalog is scanned in order against the lower-cased user agent; the first
// substring found names the bot. Generic tokens come first on purpose, so
// "Googlebot" is reported as "bot".
var botCatalog = []string{
	"bot", "crawl", "spider", "slurp",
	"gptbot", "chatgpt", "claudebot", "claude-web", "anthropic",
	"perplexitybot", "google-extended", "bingpreview",
	"facebookexternalhit", "twitterbot", "linkedinbot",
	"whatsapp", "telegrambot", "discordbot", "slackbot",
	"applebot", "ahrefsbot", "semrushbot", "bytespider",
	"amazonbot", "ccbot", "dataforseobot",
}

// BotCatalog returns a copy of the user-agent substrings that mark a bot.
func BotCatalog() []string {
	out := make([]string, len(botCatalog))
	copy(out, botCatalog)
	return out
}

// BotResult is the outcome of ClassifyBot.
type BotResult struct {
	IsBot bool
	Name  string
}

// ClassifyBot decides whether the visitor is an automated agent. A non-empty
// override always wins, then the automation flag, then the user-agent catalog.
func ClassifyBot(userAgent string, automation bool, override string) BotResult {
	if override != "" {
		return BotResult{IsBot: true, Name: override}
	}
	if automation {
		return BotResult{IsBot: true, Name: HeadlessBotName}
	}

	ua := strings.ToLower(userAgent)
	for _, token := range botCatalog {
		if strings.Contains(ua, token) {
			return BotResult{IsBot: true, Name: token}
		}
	}
	return BotResult{}
}
