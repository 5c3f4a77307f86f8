package content

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/AtRiskMedia/adaptive-profile/internal/domain/visitor"
)

// Category drives the visual style of the mood card.
type Category string

const (
	CategoryTechHub Category = "tech-hub"
	CategoryCozy    Category = "cozy"
	CategorySnowy   Category = "snowy"
	CategoryHot     Category = "hot"
	CategorySunny   Category = "sunny"
	CategoryRainy   Category = "rainy"
	CategoryStormy  Category = "stormy"
	CategoryFoggy   Category = "foggy"
	CategoryCloudy  Category = "cloudy"
)

// Mood is the content of the mood card.
type Mood struct {
	Emoji    string   `json:"emoji"`
	Message  string   `json:"message"`
	Subtext  string   `json:"subtext"`
	Category Category `json:"category"`
}

// weatherRule is one row of the weather and temperature table. Subtexts with and
// without a known city are kept side by side.
type weatherRule struct {
	match    func(desc visitor.WeatherDescription, temp int) bool
	emoji    string
	message  string // {temp} is replaced by the rounded temperature
	subtext  string // {city} is replaced by the city name
	fallback string // subtext when the city is unknown
	category Category
}

func isWet(d visitor.WeatherDescription) bool {
	return d == visitor.WeatherRainy || d == visitor.WeatherDrizzle
}

// weatherRules are evaluated top to bottom; the first match wins.
var weatherRules = []weatherRule{
	{
		match:    func(d visitor.WeatherDescription, t int) bool { return d == visitor.WeatherClear && t < 10 },
		emoji:    "☕🔥",
		message:  "{temp}°C sunshine is nature's deception. Hot cocoa + a good IDE = perfection.",
		subtext:  "Stay warm, ship code from {city}",
		fallback: "Stay warm, ship code",
		category: CategoryCozy,
	},
	{
		match:    func(_ visitor.WeatherDescription, t int) bool { return t < 0 },
		emoji:    "🧣❄️",
		message:  "{temp}°C! CPUs love the cold. You? Grab a blanket and let's build something.",
		subtext:  "Frozen outside, fire in the code in {city}",
		fallback: "Frozen outside, fire in the code",
		category: CategorySnowy,
	},
	{
		match:    func(d visitor.WeatherDescription, t int) bool { return isWet(d) && t < 15 },
		emoji:    "🔥☕",
		message:  "{temp}°C and rainy is why laptops were invented. Fireplace mode: ON.",
		subtext:  "Peak debugging weather in {city}",
		fallback: "Peak debugging weather",
		category: CategoryCozy,
	},
	{
		match:    func(d visitor.WeatherDescription, _ int) bool { return d == visitor.WeatherSnowy },
		emoji:    "❄️☃️",
		message:  "Snow at {temp}°C! Neural networks train better in cold weather. Trust me. 😉",
		subtext:  "Winter hackathon vibes from {city}",
		fallback: "Winter hackathon vibes",
		category: CategorySnowy,
	},
	{
		match:    func(_ visitor.WeatherDescription, t int) bool { return t > 30 },
		emoji:    "🧊🥵",
		message:  "{temp}°C?! Even GPUs would thermal throttle. Stay cool, stay hydrated, keep shipping.",
		subtext:  "Hot takes from {city}",
		fallback: "Hot takes, cool code",
		category: CategoryHot,
	},
	{
		match:    func(d visitor.WeatherDescription, t int) bool { return d == visitor.WeatherClear && t >= 18 && t <= 28 },
		emoji:    "☀️😎",
		message:  "{temp}°C perfection! The kind of day where even compiling feels faster.",
		subtext:  "Optimal conditions in {city}",
		fallback: "Optimal conditions",
		category: CategorySunny,
	},
	{
		match:    func(d visitor.WeatherDescription, t int) bool { return isWet(d) && t >= 15 },
		emoji:    "🌧️💻",
		message:  "Rain at {temp}°C. Nature's way of saying: \"Stay in, fix that bug.\"",
		subtext:  "Maximum focus weather in {city}",
		fallback: "Maximum focus weather",
		category: CategoryRainy,
	},
	{
		match:    func(d visitor.WeatherDescription, _ int) bool { return d == visitor.WeatherStormy },
		emoji:    "⛈️🏠",
		message:  "Storm outside, but your code is lightning fast! ...right?",
		subtext:  "Dramatic skies over {city}",
		fallback: "Dramatic skies",
		category: CategoryStormy,
	},
	{
		match:    func(d visitor.WeatherDescription, _ int) bool { return d == visitor.WeatherFoggy },
		emoji:    "🌫️🔮",
		message:  "Foggy at {temp}°C. Like debugging: sometimes you can't see far, but you keep going.",
		subtext:  "Mysterious vibes in {city}",
		fallback: "Mysterious vibes",
		category: CategoryFoggy,
	},
	{
		match:    func(d visitor.WeatherDescription, _ int) bool { return d == visitor.WeatherCloudy },
		emoji:    "☁️💭",
		message:  "Cloudy at {temp}°C. Not cloud computing, but close enough. Ideas are forming.",
		subtext:  "Thinking weather in {city}",
		fallback: "Thinking weather",
		category: CategoryCloudy,
	},
}

// SelectMood picks the mood card content, or nil when there is nothing worth
// showing and the card should stay hidden. Tiers, first match wins: known city,
// weather and temperature rules, then time-based fallbacks.
func SelectMood(vc visitor.Context) *Mood {
	city := vc.City()
	temp, hasTemp := roundedTemperature(vc.Weather)

	if hub, ok := knownCities[city]; ok && city != "" {
		subtext := city + " • Building the future"
		if hasTemp {
			subtext = fmt.Sprintf("%d°C in %s • Building the future", temp, city)
		}
		return &Mood{Emoji: hub.Emoji, Message: hub.Message, Subtext: subtext, Category: hub.Category}
	}

	if hasTemp && vc.Weather.Description != "" {
		if m := weatherMood(vc.Weather.Description, temp, city); m != nil {
			return m
		}
	}

	return timeMood(vc, city)
}

func weatherMood(desc visitor.WeatherDescription, temp int, city string) *Mood {
	for _, rule := range weatherRules {
		if !rule.match(desc, temp) {
			continue
		}
		r := strings.NewReplacer("{temp}", strconv.Itoa(temp), "{city}", city)
		subtext := rule.fallback
		if city != "" {
			subtext = r.Replace(rule.subtext)
		}
		return &Mood{Emoji: rule.emoji, Message: r.Replace(rule.message), Subtext: subtext, Category: rule.category}
	}
	return nil
}

func timeMood(vc visitor.Context, city string) *Mood {
	withCity := func(format, fallback string) string {
		if city == "" {
			return fallback
		}
		return fmt.Sprintf(format, city)
	}

	switch {
	case vc.LocalHour >= 0 && vc.LocalHour < 5:
		return &Mood{
			Emoji:    "🌙💻",
			Message:  "Still up? The best algorithms are written when the world sleeps.",
			Subtext:  withCity("Night owl mode in %s", "3AM code is underrated"),
			Category: CategoryCozy,
		}
	case vc.LocalHour >= 5 && vc.LocalHour < 7:
		return &Mood{
			Emoji:    "🌅☕",
			Message:  "Early bird gets the merge conflict resolved first. ☕ required.",
			Subtext:  withCity("Dawn in %s", "First commit of the day"),
			Category: CategorySunny,
		}
	case vc.IsWeekend():
		return &Mood{
			Emoji:    "🎮🛋️",
			Message:  "Weekend mode! Even AI needs rest days. (Actually, no it doesn't, but you do.)",
			Subtext:  withCity("Relaxing in %s", "Work hard, rest hard"),
			Category: CategoryCozy,
		}
	case city != "":
		return &Mood{
			Emoji:    "👋🌍",
			Message:  fmt.Sprintf("Hello from %s! Wherever there's WiFi, there's a way.", city),
			Subtext:  fmt.Sprintf("Connected from %s • Building the future together", city),
			Category: CategoryTechHub,
		}
	default:
		return nil
	}
}

// roundedTemperature rounds half up, so -2.5 becomes -2.
func roundedTemperature(w *visitor.Weather) (int, bool) {
	if w == nil {
		return 0, false
	}
	return int(math.Floor(w.TemperatureC + 0.5)), true
}

var weatherEmoji = map[visitor.WeatherDescription]string{
	visitor.WeatherClear:   "☀️",
	visitor.WeatherCloudy:  "☁️",
	visitor.WeatherFoggy:   "🌫️",
	visitor.WeatherDrizzle: "🌦️",
	visitor.WeatherRainy:   "🌧️",
	visitor.WeatherSnowy:   "❄️",
	visitor.WeatherStormy:  "⛈️",
}

// WeatherEmoji returns the icon for a weather description.
func WeatherEmoji(d visitor.WeatherDescription) string {
	if e, ok := weatherEmoji[d]; ok {
		return e
	}
	return "🌤️"
}
