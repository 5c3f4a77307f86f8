package visitor

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDescribeWeatherCode_Boundaries(t *testing.T) {
	tests := []struct {
		code int
		want WeatherDescription
	}{
		{0, WeatherClear},
		{1, WeatherCloudy},
		{3, WeatherCloudy},
		{4, WeatherFoggy},
		{48, WeatherFoggy},
		{49, WeatherDrizzle},
		{55, WeatherDrizzle},
		{56, WeatherRainy},
		{67, WeatherRainy},
		{68, WeatherSnowy},
		{77, WeatherSnowy},
		{78, WeatherRainy},
		{82, WeatherRainy},
		{83, WeatherSnowy},
		{86, WeatherSnowy},
		{87, WeatherStormy},
		{99, WeatherStormy},
		{1000, WeatherStormy},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("code %d", tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, DescribeWeatherCode(tt.code))
		})
	}
}

func TestLocation_HasCoordinates(t *testing.T) {
	tests := []struct {
		name string
		loc  *Location
		want bool
	}{
		{"nil location", nil, false},
		{"zero latitude", &Location{Latitude: 0, Longitude: 2.35}, false},
		{"zero longitude", &Location{Latitude: 48.85, Longitude: 0}, false},
		{"latitude out of range", &Location{Latitude: 91, Longitude: 2.35}, false},
		{"longitude out of range", &Location{Latitude: 48.85, Longitude: -181}, false},
		{"paris", &Location{Latitude: 48.85, Longitude: 2.35}, true},
		{"southern and western edges", &Location{Latitude: -90, Longitude: -180}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.loc.HasCoordinates())
		})
	}
}

func TestContext_IsWeekend(t *testing.T) {
	weekend := map[time.Weekday]bool{time.Saturday: true, time.Sunday: true}
	for d := time.Sunday; d <= time.Saturday; d++ {
		assert.Equal(t, weekend[d], Context{LocalWeekday: d}.IsWeekend(), d.String())
	}
}

func TestContext_City(t *testing.T) {
	assert.Equal(t, "", Context{}.City())
	assert.Equal(t, "Porto", Context{Location: &Location{City: "Porto"}}.City())
}
