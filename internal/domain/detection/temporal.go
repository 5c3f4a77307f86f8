package detection

import "github.com/AtRiskMedia/adaptive-profile/internal/domain/visitor"

// ClassifyTimeOfDay buckets an hour of the day. Ranges are inclusive-low,
// exclusive-high; anything outside [5,21) is night.
func ClassifyTimeOfDay(hour int) visitor.TimeOfDay {
	switch {
	case hour >= 5 && hour < 12:
		return visitor.Morning
	case hour >= 12 && hour < 17:
		return visitor.Afternoon
	case hour >= 17 && hour < 21:
		return visitor.Evening
	default:
		return visitor.Night
	}
}
