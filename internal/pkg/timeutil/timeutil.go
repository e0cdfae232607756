// Package timeutil normalizes the timestamp shapes accepted at the API
// boundary and provides the calendar helpers used by workload accounting.
package timeutil

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// Timestamp is a time.Time that unmarshals from every shape clients send:
//   - an RFC3339 string ("2025-03-10T09:00:00Z"), with or without fractional
//     seconds, or a plain date ("2025-03-10")
//   - epoch seconds as a JSON number (fractional part becomes nanoseconds)
//   - a {"seconds": ..., "nanoseconds": ...} object
//   - a serialized {"_seconds": ..., "_nanoseconds": ...} object
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	parsed, err := Parse(json.RawMessage(data))
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Time.Format(time.RFC3339Nano))
}

var stringLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

type secondsPair struct {
	Seconds     *int64 `json:"seconds"`
	Nanoseconds int64  `json:"nanoseconds"`
}

type serializedSecondsPair struct {
	Seconds     *int64 `json:"_seconds"`
	Nanoseconds int64  `json:"_nanoseconds"`
}

// Parse normalizes a raw JSON value into a UTC time.Time.
func Parse(raw json.RawMessage) (time.Time, error) {
	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		for _, layout := range stringLayouts {
			if t, err := time.Parse(layout, asString); err == nil {
				return t.UTC(), nil
			}
		}
		return time.Time{}, fmt.Errorf("unrecognized timestamp string %q", asString)
	}

	var asNumber float64
	if err := json.Unmarshal(raw, &asNumber); err == nil {
		sec, frac := math.Modf(asNumber)
		return time.Unix(int64(sec), int64(frac*float64(time.Second))).UTC(), nil
	}

	var pair secondsPair
	if err := json.Unmarshal(raw, &pair); err == nil && pair.Seconds != nil {
		return time.Unix(*pair.Seconds, pair.Nanoseconds).UTC(), nil
	}

	var serialized serializedSecondsPair
	if err := json.Unmarshal(raw, &serialized); err == nil && serialized.Seconds != nil {
		return time.Unix(*serialized.Seconds, serialized.Nanoseconds).UTC(), nil
	}

	return time.Time{}, fmt.Errorf("unrecognized timestamp value %s", string(raw))
}

// StartOfDay returns midnight of t's day in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns 23:59:59.999 of t's day in t's location.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}

// StartOfISOWeek returns Monday 00:00 of the ISO week (Mon-Sun) containing t.
func StartOfISOWeek(t time.Time) time.Time {
	offset := int(t.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7 // Sunday belongs to the week that started the previous Monday
	}
	return StartOfDay(t.AddDate(0, 0, -offset))
}

// EndOfISOWeek returns Sunday 23:59:59.999 of the ISO week containing t.
func EndOfISOWeek(t time.Time) time.Time {
	return EndOfDay(StartOfISOWeek(t).AddDate(0, 0, 6))
}

// LastDayOfMonth returns the day number of the last day of t's month.
func LastDayOfMonth(t time.Time) int {
	firstOfNext := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).AddDate(0, 1, 0)
	return firstOfNext.AddDate(0, 0, -1).Day()
}
