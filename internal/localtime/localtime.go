// Package localtime formats timestamps in a location's local time using the
// timezone offset reported by the weather API. The shifted instant is always
// read through UTC fields so the host machine's timezone never leaks into
// the output.
package localtime

import (
	"fmt"
	"time"
)

// at shifts a UTC unix timestamp by the location's offset (seconds east of
// UTC) and returns it pinned to UTC for field access.
func at(timestamp int64, offsetSeconds int) time.Time {
	return time.Unix(timestamp+int64(offsetSeconds), 0).UTC()
}

// FormatLocalDate renders a timestamp as "Monday 01:00" in local time.
func FormatLocalDate(timestamp int64, offsetSeconds int) string {
	local := at(timestamp, offsetSeconds)
	return fmt.Sprintf("%s %02d:%02d", local.Weekday(), local.Hour(), local.Minute())
}

// FormatDay renders a timestamp as a short local weekday name, e.g. "Tue".
func FormatDay(timestamp int64, offsetSeconds int) string {
	return at(timestamp, offsetSeconds).Weekday().String()[:3]
}

// DateKey returns the local calendar date as "YYYY-MM-DD". Keys sort
// lexicographically in chronological order.
func DateKey(timestamp int64, offsetSeconds int) string {
	return at(timestamp, offsetSeconds).Format("2006-01-02")
}

// Hour returns the local hour of day (0-23) for a timestamp.
func Hour(timestamp int64, offsetSeconds int) int {
	return at(timestamp, offsetSeconds).Hour()
}
