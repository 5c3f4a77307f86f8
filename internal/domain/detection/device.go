package detection

import (
	"regexp"
	"strings"
)

// DeviceHints are the hardware capability hints a browser is willing to share.
// Zero values mean unknown.
type DeviceHints struct {
	Cores     int
	MemoryGB  float64
	Platform  string
	UserAgent string
}

var (
	desktopUnixPlatforms = []string{"linux", "freebsd", "openbsd", "netbsd"}
	mobileUserAgent      = regexp.MustCompile(`(?i)Mobile|Android|iPhone`)
)

// IsDeveloperLikely is a best-effort guess that the visitor sits at a developer
// machine: a high-spec box, or a desktop Unix-like OS that is not Android.
func IsDeveloperLikely(h DeviceHints) bool {
	if h.Cores >= 8 && h.MemoryGB >= 16 {
		return true
	}

	platform := strings.ToLower(h.Platform)
	if platform == "" || strings.Contains(strings.ToLower(h.UserAgent), "android") {
		return false
	}
	for _, p := range desktopUnixPlatforms {
		if strings.Contains(platform, p) {
			return true
		}
	}
	return false
}

// IsMobileUserAgent reports whether the user agent advertises a mobile device.
func IsMobileUserAgent(userAgent string) bool {
	return mobileUserAgent.MatchString(userAgent)
}
