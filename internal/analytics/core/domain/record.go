package domain

import (
	"encoding/json"
	"strings"
	"time"
)

// Document is one semi-structured record as stored in a collection.
type Document map[string]any

// EventRecord is one observed user action decoded from the event log.
type EventRecord struct {
	UserID     string
	Screen     string
	Event      string
	Timestamp  time.Time // always usable; see DecodeEventRecord
	DurationMs *float64  // nil when the event does not measure duration
}

// DecodeEventRecord maps an event-log document to an EventRecord.
// ok is false when the document has no usable timestamp.
func DecodeEventRecord(doc Document) (EventRecord, bool) {
	ts, ok := ParseTimestamp(doc["timestamp"])
	if !ok {
		return EventRecord{}, false
	}

	rec := EventRecord{
		UserID:    stringField(doc, "userId"),
		Screen:    stringField(doc, "screen"),
		Event:     stringField(doc, "event"),
		Timestamp: ts,
	}

	// zero or negative counts as "not measured", same as a missing field
	if d, ok := toFloat(doc["duration_ms"]); ok && d > 0 {
		rec.DurationMs = &d
	}

	return rec, true
}

// DecodeEventRecords keeps the documents carrying a usable timestamp, in input order,
// and reports how many were dropped.
func DecodeEventRecords(docs []Document) ([]EventRecord, int) {
	records := make([]EventRecord, 0, len(docs))
	dropped := 0
	for _, doc := range docs {
		rec, ok := DecodeEventRecord(doc)
		if !ok {
			dropped++
			continue
		}
		records = append(records, rec)
	}
	return records, dropped
}

// ParseTimestamp accepts {"seconds": N, "nanoseconds": M}, a bare epoch-seconds number,
// an RFC3339 string or a time.Time. A zero seconds value is not usable.
func ParseTimestamp(v any) (time.Time, bool) {
	switch t := v.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		if t.IsZero() || t.Unix() == 0 {
			return time.Time{}, false
		}
		return t.UTC(), true
	case *time.Time:
		if t == nil {
			return time.Time{}, false
		}
		return ParseTimestamp(*t)
	case map[string]any:
		secs, ok := toFloat(firstPresent(t, "seconds", "_seconds"))
		if !ok || secs == 0 {
			return time.Time{}, false
		}
		nanos, _ := toFloat(firstPresent(t, "nanoseconds", "_nanoseconds"))
		return time.Unix(int64(secs), int64(nanos)).UTC(), true
	case Document:
		return ParseTimestamp(map[string]any(t))
	case string:
		parsed, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(t))
		if err != nil || parsed.Unix() == 0 {
			return time.Time{}, false
		}
		return parsed.UTC(), true
	default:
		secs, ok := toFloat(v)
		if !ok || secs == 0 {
			return time.Time{}, false
		}
		return time.Unix(int64(secs), 0).UTC(), true
	}
}

// EncodeTimestamp is the stored form understood by ParseTimestamp.
func EncodeTimestamp(t time.Time) map[string]any {
	t = t.UTC()
	return map[string]any{
		"seconds":     t.Unix(),
		"nanoseconds": t.Nanosecond(),
	}
}

func firstPresent(m map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			return v
		}
	}
	return nil
}

func stringField(doc Document, key string) string {
	s, _ := doc[key].(string)
	return s
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
