package domain

import (
	"fmt"
	"time"

	analytics "peakdash-service/internal/analytics/core/domain"
)

// Event is one user action as written to the event log.
type Event struct {
	UserID     string
	Screen     string
	Event      string
	Timestamp  time.Time
	DurationMs *float64
	Metadata   map[string]any
	DedupeKey  string
}

// NewDedupeKey identifies an event by user, screen, name and second.
func NewDedupeKey(userID, screen, event string, t time.Time) string {
	return fmt.Sprintf("%s|%s|%s|%d", userID, screen, event, t.Unix())
}

// Document is the stored form read back by the analytics dashboard.
func (e *Event) Document() map[string]any {
	doc := map[string]any{
		"userId":    e.UserID,
		"screen":    e.Screen,
		"event":     e.Event,
		"timestamp": analytics.EncodeTimestamp(e.Timestamp),
	}
	if e.DurationMs != nil {
		doc["duration_ms"] = *e.DurationMs
	}
	if len(e.Metadata) > 0 {
		doc["metadata"] = e.Metadata
	}
	return doc
}
