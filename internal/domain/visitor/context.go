// Package visitor defines the immutable snapshot of everything detected about a
// single page load, plus the persisted visit history record.
package visitor

import "time"

// TimeOfDay buckets the visitor's local hour.
type TimeOfDay string

const (
	Morning   TimeOfDay = "morning"
	Afternoon TimeOfDay = "afternoon"
	Evening   TimeOfDay = "evening"
	Night     TimeOfDay = "night"
)

// Type is the inferred audience of the visit.
type Type string

const (
	TypeRecruiter Type = "recruiter"
	TypeSpeaker   Type = "speaker"
	TypeDeveloper Type = "developer"
	TypeExecutive Type = "executive"
	TypeInPerson  Type = "inperson"
	TypeGeneral   Type = "general"
)

// WeatherDescription is the coarse condition derived from a numeric weather code.
type WeatherDescription string

const (
	WeatherClear   WeatherDescription = "clear"
	WeatherCloudy  WeatherDescription = "cloudy"
	WeatherFoggy   WeatherDescription = "foggy"
	WeatherDrizzle WeatherDescription = "drizzle"
	WeatherRainy   WeatherDescription = "rainy"
	WeatherSnowy   WeatherDescription = "snowy"
	WeatherStormy  WeatherDescription = "stormy"
)

// DescribeWeatherCode maps a WMO weather code onto a WeatherDescription.
func DescribeWeatherCode(code int) WeatherDescription {
	switch {
	case code == 0:
		return WeatherClear
	case code <= 3:
		return WeatherCloudy
	case code <= 48:
		return WeatherFoggy
	case code <= 55:
		return WeatherDrizzle
	case code <= 67:
		return WeatherRainy
	case code <= 77:
		return WeatherSnowy
	case code <= 82:
		return WeatherRainy
	case code <= 86:
		return WeatherSnowy
	default:
		return WeatherStormy
	}
}

// Location is the IP-derived, city-level position of the visitor.
type Location struct {
	City        string  `json:"city"`
	Region      string  `json:"region"`
	Country     string  `json:"country"`
	CountryCode string  `json:"countryCode"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Timezone    string  `json:"timezone"`
	ISP         string  `json:"isp"`
	Org         string  `json:"org"`
	IsProxy     bool    `json:"isProxy"`
	IsHosting   bool    `json:"isHosting"`
	IsMobile    bool    `json:"isMobile"`
}

// HasCoordinates reports whether the location carries a usable position.
// A zero latitude or longitude is treated as missing.
func (l *Location) HasCoordinates() bool {
	if l == nil {
		return false
	}
	if l.Latitude == 0 || l.Longitude == 0 {
		return false
	}
	return l.Latitude >= -90 && l.Latitude <= 90 && l.Longitude >= -180 && l.Longitude <= 180
}

// Weather is the current weather at the visitor's location.
type Weather struct {
	TemperatureC float64            `json:"temperatureC"`
	WeatherCode  int                `json:"weatherCode"`
	Description  WeatherDescription `json:"weatherDescription"`
	IsDay        bool               `json:"isDay"`
	WindSpeed    float64            `json:"windSpeed"`
}

// Context is the snapshot of all detected signals for one page load. Once built it
// is passed by value and never mutated. When IsBot is true only IsBot and BotName
// carry meaning.
type Context struct {
	IsBot   bool   `json:"isBot"`
	BotName string `json:"botName,omitempty"`

	Locale              string `json:"locale"`
	HasFullLocalization bool   `json:"hasFullLocalization"`

	LocalHour    int          `json:"localHour"`
	LocalWeekday time.Weekday `json:"localWeekday"`
	TimeOfDay    TimeOfDay    `json:"timeOfDay"`
	Timezone     string       `json:"timezone,omitempty"`

	VisitorType    Type   `json:"visitorType"`
	ReferrerDomain string `json:"referrerDomain,omitempty"`

	IsDeveloperLikely bool `json:"isDeveloperLikely"`
	IsMobile          bool `json:"isMobile"`

	IsReturningVisitor bool       `json:"isReturningVisitor"`
	VisitCount         int        `json:"visitCount"`
	LastVisit          *time.Time `json:"lastVisit,omitempty"`

	Location *Location `json:"location,omitempty"`
	Weather  *Weather  `json:"weather,omitempty"`
}

// City returns the resolved city name, or "" when unknown.
func (c Context) City() string {
	if c.Location == nil {
		return ""
	}
	return c.Location.City
}

// IsWeekend reports whether the visitor's local day is Saturday or Sunday.
func (c Context) IsWeekend() bool {
	return c.LocalWeekday == time.Saturday || c.LocalWeekday == time.Sunday
}
