package domain

import (
	"fmt"
	"slices"
	"time"

	analytics "peakdash-service/internal/analytics/core/domain"
)

const (
	UnknownDate = "Unknown Date"
	NoLocation  = "No location"

	dateLabelLayout = "Jan 2, 2006 3:04 PM"
)

type Location struct {
	Latitude  float64
	Longitude float64
}

// CheckIn is one photo check-in stored under users/{uid}/checkins.
type CheckIn struct {
	ID        string
	UserID    string
	Timestamp time.Time // zero when the document carries none
	PhotoURL  string
	Location  *Location
}

// Collection is the per-user sub-collection holding check-ins.
func Collection(userID string) string {
	return "users/" + userID + "/checkins"
}

// DecodeCheckIn tolerates missing fields; labels fall back to placeholders.
func DecodeCheckIn(id, userID string, doc map[string]any) CheckIn {
	c := CheckIn{ID: id, UserID: userID}

	if ts, ok := analytics.ParseTimestamp(doc["timestamp"]); ok {
		c.Timestamp = ts
	}
	c.PhotoURL, _ = doc["photoUrl"].(string)

	if loc, ok := doc["location"].(map[string]any); ok {
		lat, latOK := loc["latitude"].(float64)
		lng, lngOK := loc["longitude"].(float64)
		if latOK && lngOK {
			c.Location = &Location{Latitude: lat, Longitude: lng}
		}
	}

	return c
}

func (c *CheckIn) Document() map[string]any {
	doc := map[string]any{
		"photoUrl": c.PhotoURL,
	}
	if !c.Timestamp.IsZero() {
		doc["timestamp"] = analytics.EncodeTimestamp(c.Timestamp)
	}
	if c.Location != nil {
		doc["location"] = map[string]any{
			"latitude":  c.Location.Latitude,
			"longitude": c.Location.Longitude,
		}
	}
	return doc
}

func (c *CheckIn) DateLabel() string {
	if c.Timestamp.IsZero() {
		return UnknownDate
	}
	return c.Timestamp.UTC().Format(dateLabelLayout)
}

func (c *CheckIn) LocationLabel() string {
	if c.Location == nil {
		return NoLocation
	}
	return fmt.Sprintf("%.2f, %.2f", c.Location.Latitude, c.Location.Longitude)
}

// SortTimeline orders check-ins newest first. Undated entries go last and keep their relative order.
func SortTimeline(items []CheckIn) {
	slices.SortStableFunc(items, func(a, b CheckIn) int {
		switch {
		case a.Timestamp.IsZero() && b.Timestamp.IsZero():
			return 0
		case a.Timestamp.IsZero():
			return 1
		case b.Timestamp.IsZero():
			return -1
		}
		return b.Timestamp.Compare(a.Timestamp)
	})
}
