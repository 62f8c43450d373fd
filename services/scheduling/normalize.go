package scheduling

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const dateKeyLayout = "2006-01-02"

// NormalizeDateKey converts a date string to the canonical "YYYY-MM-DD" key.
// "MM/DD/YYYY" is rewritten with zero-padded month and day; empty input stays
// empty; any other format is passed through unchanged.
func NormalizeDateKey(raw string) string {
	if raw == "" {
		return ""
	}
	if strings.Contains(raw, "/") {
		parts := strings.Split(raw, "/")
		if len(parts) != 3 {
			return raw
		}
		return fmt.Sprintf("%s-%s-%s", parts[2], pad2(parts[0]), pad2(parts[1]))
	}
	// Assume "YYYY-MM-DD".
	return raw
}

func pad2(s string) string {
	if len(s) < 2 {
		return "0" + s
	}
	return s
}

// NormalizeTimeSlot lowercases, trims and strips all whitespace from a slot
// label ("10:30 AM" -> "10:30am"). Two slot strings identify the same slot
// iff their normalized forms are equal.
func NormalizeTimeSlot(raw string) string {
	trimmed := strings.ToLower(strings.TrimSpace(raw))
	return strings.Join(strings.Fields(trimmed), "")
}

// SlotLabel renders minutes since midnight as a 12-hour slot label: no
// leading zero on the hour, zero-padded minutes, lowercase meridiem.
// Midnight maps to "12:xxam" and noon to "12:xxpm".
func SlotLabel(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60

	displayHour := hours
	meridiem := "am"
	switch {
	case hours == 0:
		displayHour = 12
	case hours == 12:
		meridiem = "pm"
	case hours > 12:
		displayHour = hours - 12
		meridiem = "pm"
	}
	return fmt.Sprintf("%d:%02d%s", displayHour, mins, meridiem)
}

// SlotMinutes parses a slot label back to minutes since midnight. It accepts
// any label whose normalized form is "{h}:{mm}{am|pm}".
func SlotMinutes(label string) (int, error) {
	norm := NormalizeTimeSlot(label)

	var meridiem string
	switch {
	case strings.HasSuffix(norm, "am"):
		meridiem = "am"
	case strings.HasSuffix(norm, "pm"):
		meridiem = "pm"
	default:
		return 0, fmt.Errorf("invalid slot label %q", label)
	}
	clock := strings.TrimSuffix(norm, meridiem)

	hourStr, minStr, ok := strings.Cut(clock, ":")
	if !ok {
		return 0, fmt.Errorf("invalid slot label %q", label)
	}
	hour, err := strconv.Atoi(hourStr)
	if err != nil || hour < 1 || hour > 12 {
		return 0, fmt.Errorf("invalid slot label %q", label)
	}
	mins, err := strconv.Atoi(minStr)
	if err != nil || mins < 0 || mins > 59 {
		return 0, fmt.Errorf("invalid slot label %q", label)
	}

	if hour == 12 {
		hour = 0
	}
	if meridiem == "pm" {
		hour += 12
	}
	return hour*60 + mins, nil
}

// ParseClock converts a 24-hour "HH:MM" string to minutes since midnight.
func ParseClock(s string) (int, error) {
	hourStr, minStr, ok := strings.Cut(s, ":")
	if !ok {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	hour, err := strconv.Atoi(hourStr)
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	mins, err := strconv.Atoi(minStr)
	if err != nil || mins < 0 || mins > 59 {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}
	return hour*60 + mins, nil
}

// DateFromKey parses a "YYYY-MM-DD" key as local midnight. The practice runs
// in a single time zone, so local time is the scheduling time base.
func DateFromKey(dateKey string) (time.Time, error) {
	t, err := time.ParseInLocation(dateKeyLayout, dateKey, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date key %q: %w", dateKey, err)
	}
	return t, nil
}

// DateKeyOf renders a timestamp's local date as the canonical key.
func DateKeyOf(t time.Time) string {
	return t.In(time.Local).Format(dateKeyLayout)
}

// minutesOfDay returns the local minutes-since-midnight of a timestamp.
func minutesOfDay(t time.Time) int {
	local := t.In(time.Local)
	return local.Hour()*60 + local.Minute()
}
