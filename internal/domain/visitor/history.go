package visitor

import "time"

// HistoryVersion is the only record layout written today.
const HistoryVersion = 1

// HistoryRecord is the visit counter persisted under a single storage key.
// LastLocale is informational and is not re-validated on read.
type HistoryRecord struct {
	Version             int        `json:"version"`
	VisitCount          int        `json:"visitCount"`
	FirstVisitTimestamp *time.Time `json:"firstVisitTimestamp,omitempty"`
	LastVisitTimestamp  *time.Time `json:"lastVisitTimestamp,omitempty"`
	LastLocale          string     `json:"lastLocale,omitempty"`
}

// History is the result of the read path: the next visit count to use for this
// page load and the timestamps carried over from the stored record.
type History struct {
	VisitCount  int
	IsReturning bool
	FirstVisit  *time.Time
	LastVisit   *time.Time
	LastLocale  string
}

// NewVisitorHistory is what the read path yields when nothing usable is stored.
func NewVisitorHistory() History {
	return History{VisitCount: 1}
}
