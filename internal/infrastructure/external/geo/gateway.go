// Package geo looks up the visitor's approximate location (ip-api.com) and the
// current weather there (open-meteo.com). Every failure is reported as absence.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/netip"
	"net/url"
	"strconv"
	"time"

	"github.com/AtRiskMedia/adaptive-profile/internal/domain/visitor"
	"github.com/AtRiskMedia/adaptive-profile/internal/infrastructure/observability/logging"
	"github.com/AtRiskMedia/adaptive-profile/internal/infrastructure/observability/metrics"
	"golang.org/x/time/rate"
)

const (
	DefaultLocationEndpoint = "http://ip-api.com/json"
	DefaultWeatherEndpoint  = "https://api.open-meteo.com/v1/forecast"
	DefaultTimeout          = 3 * time.Second

	locationFields = "status,country,countryCode,regionName,city,lat,lon,timezone,isp,org,mobile,proxy,hosting"

	lookupLocation = "location"
	lookupWeather  = "weather"
)

// Lookup is the contract the context builder depends on. A nil result means
// the data is unavailable, whatever the reason.
type Lookup interface {
	FetchLocation(ctx context.Context, ip string) *visitor.Location
	FetchWeather(ctx context.Context, latitude, longitude float64) *visitor.Weather
}

// Config tunes a Gateway. Zero values fall back to the public endpoints, a 3s
// timeout and no throttling.
type Config struct {
	LocationEndpoint string
	WeatherEndpoint  string
	Timeout          time.Duration
	RatePerMinute    float64
	Burst            int
	HTTPClient       *http.Client
}

// Gateway is the production Lookup. It is safe for concurrent use.
type Gateway struct {
	locationEndpoint string
	weatherEndpoint  string
	timeout          time.Duration
	client           *http.Client
	limiter          *rate.Limiter
	logger           *logging.ChanneledLogger
	metrics          *metrics.Metrics
}

// NewGateway creates a gateway; logger and m may be nil.
func NewGateway(cfg Config, logger *logging.ChanneledLogger, m *metrics.Metrics) *Gateway {
	if cfg.LocationEndpoint == "" {
		cfg.LocationEndpoint = DefaultLocationEndpoint
	}
	if cfg.WeatherEndpoint == "" {
		cfg.WeatherEndpoint = DefaultWeatherEndpoint
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{}
	}

	limit := rate.Inf
	if cfg.RatePerMinute > 0 {
		limit = rate.Limit(cfg.RatePerMinute / 60)
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}

	return &Gateway{
		locationEndpoint: cfg.LocationEndpoint,
		weatherEndpoint:  cfg.WeatherEndpoint,
		timeout:          cfg.Timeout,
		client:           cfg.HTTPClient,
		limiter:          rate.NewLimiter(limit, burst),
		logger:           logger,
		metrics:          m,
	}
}

type ipAPIResponse struct {
	Status      string  `json:"status"`
	Country     string  `json:"country"`
	CountryCode string  `json:"countryCode"`
	RegionName  string  `json:"regionName"`
	City        string  `json:"city"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	Timezone    string  `json:"timezone"`
	ISP         string  `json:"isp"`
	Org         string  `json:"org"`
	Mobile      bool    `json:"mobile"`
	Proxy       bool    `json:"proxy"`
	Hosting     bool    `json:"hosting"`
}

// FetchLocation resolves the city-level location of a public IP address.
// Private, loopback and malformed addresses are never sent out.
func (g *Gateway) FetchLocation(ctx context.Context, ip string) *visitor.Location {
	if !IsPublicIP(ip) {
		g.record(lookupLocation, metrics.OutcomeSkipped, 0, nil)
		return nil
	}
	if !g.limiter.Allow() {
		g.record(lookupLocation, metrics.OutcomeRateLimited, 0, nil)
		return nil
	}

	endpoint := fmt.Sprintf("%s/%s?fields=%s", g.locationEndpoint, url.PathEscape(ip), locationFields)

	var body ipAPIResponse
	start := time.Now()
	if err := g.getJSON(ctx, endpoint, &body); err != nil {
		g.record(lookupLocation, metrics.OutcomeError, time.Since(start), err)
		return nil
	}
	if body.Status != "success" {
		g.record(lookupLocation, metrics.OutcomeError, time.Since(start), fmt.Errorf("lookup status %q", body.Status))
		return nil
	}
	g.record(lookupLocation, metrics.OutcomeOK, time.Since(start), nil)

	return &visitor.Location{
		City:        body.City,
		Region:      body.RegionName,
		Country:     body.Country,
		CountryCode: body.CountryCode,
		Latitude:    body.Lat,
		Longitude:   body.Lon,
		Timezone:    body.Timezone,
		ISP:         body.ISP,
		Org:         body.Org,
		IsProxy:     body.Proxy,
		IsHosting:   body.Hosting,
		IsMobile:    body.Mobile,
	}
}

type openMeteoResponse struct {
	CurrentWeather *struct {
		Temperature *float64 `json:"temperature"`
		WindSpeed   float64  `json:"windspeed"`
		WeatherCode int      `json:"weathercode"`
		IsDay       int      `json:"is_day"`
	} `json:"current_weather"`
}

// FetchWeather returns the current conditions at the given coordinates.
func (g *Gateway) FetchWeather(ctx context.Context, latitude, longitude float64) *visitor.Weather {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(latitude, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(longitude, 'f', -1, 64))
	q.Set("current_weather", "true")
	endpoint := g.weatherEndpoint + "?" + q.Encode()

	var body openMeteoResponse
	start := time.Now()
	if err := g.getJSON(ctx, endpoint, &body); err != nil {
		g.record(lookupWeather, metrics.OutcomeError, time.Since(start), err)
		return nil
	}
	cw := body.CurrentWeather
	if cw == nil || cw.Temperature == nil {
		g.record(lookupWeather, metrics.OutcomeError, time.Since(start), fmt.Errorf("response has no current_weather"))
		return nil
	}
	g.record(lookupWeather, metrics.OutcomeOK, time.Since(start), nil)

	return &visitor.Weather{
		TemperatureC: *cw.Temperature,
		WeatherCode:  cw.WeatherCode,
		Description:  visitor.DescribeWeatherCode(cw.WeatherCode),
		IsDay:        cw.IsDay == 1,
		WindSpeed:    cw.WindSpeed,
	}
}

func (g *Gateway) getJSON(ctx context.Context, endpoint string, out any) error {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (g *Gateway) record(lookup, outcome string, duration time.Duration, err error) {
	g.metrics.ObserveLookup(lookup, outcome, duration)
	if g.logger != nil {
		g.logger.LogGatewayLookup(lookup, outcome, duration, err)
	}
}

// IsPublicIP reports whether ip is a routable unicast address worth looking up.
func IsPublicIP(ip string) bool {
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	return addr.IsGlobalUnicast() && !addr.IsPrivate() && !addr.IsLoopback()
}
