package domain

import (
	"cmp"
	"math"
	"slices"
	"time"
)

const (
	AllScreens = "all"
	dayLayout  = "2006-01-02"
)

// Filter selects a subset of the event log. WindowDays == 0 means no time restriction.
type Filter struct {
	Screen     string
	WindowDays int
}

type ScreenDuration struct {
	Screen      string
	AvgDuration int64 // ms, rounded to nearest
}

type EventTypeCount struct {
	Name  string
	Value int64
}

type DailyCount struct {
	Date  string // YYYY-MM-DD, UTC
	Count int64
}

// Dashboard holds the derived views for one filter selection.
type Dashboard struct {
	Filter          Filter
	TotalEvents     int
	Screens         []string
	AverageDuration []ScreenDuration
	EventTypes      []EventTypeCount
	Daily           []DailyCount
}

// BuildDashboard derives every view from the unfiltered record list.
func BuildDashboard(records []EventRecord, f Filter, now time.Time) Dashboard {
	filtered := FilterRecords(records, f, now)
	return Dashboard{
		Filter:          f,
		TotalEvents:     len(filtered),
		Screens:         DistinctScreens(records),
		AverageDuration: AverageDurationByScreen(filtered),
		EventTypes:      CountByEventType(filtered),
		Daily:           CountByDay(filtered),
	}
}

// MaxWindowDays is the widest window whose cutoff fits in a time.Duration.
const MaxWindowDays = int(math.MaxInt64 / int64(24*time.Hour))

// FilterRecords applies the screen and time-window selection. The cutoff now-N days is inclusive.
// With no restriction at all the input slice is returned as is.
func FilterRecords(records []EventRecord, f Filter, now time.Time) []EventRecord {
	byScreen := f.Screen != "" && f.Screen != AllScreens
	// a window wider than MaxWindowDays reaches past any representable cutoff
	byTime := f.WindowDays > 0 && f.WindowDays <= MaxWindowDays
	if !byScreen && !byTime {
		return records
	}

	cutoff := now.Add(-time.Duration(f.WindowDays) * 24 * time.Hour)

	out := make([]EventRecord, 0, len(records))
	for _, r := range records {
		if byScreen && r.Screen != f.Screen {
			continue
		}
		if byTime && r.Timestamp.Before(cutoff) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// AverageDurationByScreen emits one row per screen with at least one duration, sorted by screen.
func AverageDurationByScreen(records []EventRecord) []ScreenDuration {
	type acc struct {
		total float64
		count int
	}
	sums := map[string]*acc{}
	for _, r := range records {
		if r.DurationMs == nil {
			continue
		}
		a, ok := sums[r.Screen]
		if !ok {
			a = &acc{}
			sums[r.Screen] = a
		}
		a.total += *r.DurationMs
		a.count++
	}

	out := make([]ScreenDuration, 0, len(sums))
	for screen, a := range sums {
		out = append(out, ScreenDuration{
			Screen:      screen,
			AvgDuration: int64(math.Round(a.total / float64(a.count))),
		})
	}
	slices.SortFunc(out, func(a, b ScreenDuration) int {
		return cmp.Compare(a.Screen, b.Screen)
	})
	return out
}

// CountByEventType emits one row per event type, most frequent first, ties by name.
func CountByEventType(records []EventRecord) []EventTypeCount {
	counts := map[string]int64{}
	for _, r := range records {
		counts[r.Event]++
	}

	out := make([]EventTypeCount, 0, len(counts))
	for name, n := range counts {
		out = append(out, EventTypeCount{Name: name, Value: n})
	}
	slices.SortFunc(out, func(a, b EventTypeCount) int {
		if c := cmp.Compare(b.Value, a.Value); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return out
}

// CountByDay emits one row per UTC calendar day, ascending.
func CountByDay(records []EventRecord) []DailyCount {
	counts := map[string]int64{}
	for _, r := range records {
		counts[r.Timestamp.UTC().Format(dayLayout)]++
	}

	out := make([]DailyCount, 0, len(counts))
	for day, n := range counts {
		out = append(out, DailyCount{Date: day, Count: n})
	}
	slices.SortFunc(out, func(a, b DailyCount) int {
		return cmp.Compare(a.Date, b.Date)
	})
	return out
}

// DistinctScreens lists every screen of the given records, sorted.
func DistinctScreens(records []EventRecord) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0)
	for _, r := range records {
		if _, ok := seen[r.Screen]; ok {
			continue
		}
		seen[r.Screen] = struct{}{}
		out = append(out, r.Screen)
	}
	slices.Sort(out)
	return out
}
