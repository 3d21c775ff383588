package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultDurationHours is assumed when a hackathon's duration field is
// missing or unparseable.
const DefaultDurationHours = 48

// ParseDurationHours extracts the hour count from a duration label such
// as "48 hours". Only the leading integer is read; anything after the
// first space is ignored.
func ParseDurationHours(duration string) int {
	fields := strings.Fields(duration)
	if len(fields) == 0 {
		return DefaultDurationHours
	}
	hours, err := strconv.Atoi(fields[0])
	if err != nil || hours <= 0 {
		return DefaultDurationHours
	}
	return hours
}

// Deadline returns the moment a countdown that started at start with
// the given duration label runs out.
func Deadline(start time.Time, duration string) time.Time {
	return start.Add(time.Duration(ParseDurationHours(duration)) * time.Hour)
}

// Remaining returns how much countdown time is left at now. Negative
// values are clamped to zero; the deadline is soft, so callers must not
// use a zero remainder to block anything.
func Remaining(start time.Time, duration string, now time.Time) time.Duration {
	left := Deadline(start, duration).Sub(now)
	if left < 0 {
		return 0
	}
	return left
}

// FormatRemaining renders a remaining duration as "47h 59m 59s", or
// "Time's up!" once it reaches zero.
func FormatRemaining(left time.Duration) string {
	if left <= 0 {
		return "Time's up!"
	}
	total := int(left / time.Second)
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
}
