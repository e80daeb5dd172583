// Package timeline implements the pure ordering, grouping, and
// interval-mapping engine behind dailyflo's views. All functions are
// side-effect free and never mutate their inputs; hosts pass task
// snapshots in and render the derived orderings out.
package timeline

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/harveym4n4lili/dailyflo/internal/domain"
)

const minutesPerDay = 24 * 60

// ParseClock splits a "HH:MM" string into hour and minute components.
// Parsing is lenient: a malformed component parses as 0. Callers are
// expected to supply well-formed zero-padded times.
func ParseClock(s string) (hours, minutes int) {
	h, m, _ := strings.Cut(s, ":")
	hours, _ = strconv.Atoi(strings.TrimSpace(h))
	minutes, _ = strconv.Atoi(strings.TrimSpace(m))
	return hours, minutes
}

// MinutesBetween returns the whole-minute delta from a's clock time to b's,
// treating both as instants on the same day. The bool is false when either
// task is untimed.
func MinutesBetween(a, b domain.Task) (int, bool) {
	if !a.IsTimed() || !b.IsTimed() {
		return 0, false
	}
	ah, am := ParseClock(a.Time)
	bh, bm := ParseClock(b.Time)
	return (bh*60 + bm) - (ah*60 + am), true
}

// EndTime adds a duration to a "HH:MM" start time and re-renders it
// zero-padded. Returns "" when the start is empty or the duration is not
// positive. The result wraps across midnight: only hours and minutes are
// retained, so "23:50" + 20 yields "00:10", not "24:10".
func EndTime(start string, durationMinutes int) string {
	if start == "" || durationMinutes <= 0 {
		return ""
	}
	h, m := ParseClock(start)
	total := h*60 + m + durationMinutes
	total = ((total % minutesPerDay) + minutesPerDay) % minutesPerDay
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// FormatClock converts a 24-hour "HH:MM" string to "h:mm AM/PM" display
// form. Hours 0 and 12 both render as 12.
func FormatClock(s string) string {
	body, suffix := clock12(s)
	return body + " " + suffix
}

// clock12 returns the 12-hour rendering of a "HH:MM" string and its
// AM/PM suffix separately.
func clock12(s string) (body, suffix string) {
	h, m := ParseClock(s)
	suffix = "AM"
	if h >= 12 {
		suffix = "PM"
	}
	h %= 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%02d", h, m), suffix
}

// FormatRange renders a start time and duration as a display range.
// With no positive duration only the start is shown ("2:30 PM"); otherwise
// the AM/PM suffix appears on the end time alone ("2:30 - 3:15 PM").
func FormatRange(start string, durationMinutes int) string {
	if durationMinutes <= 0 {
		return FormatClock(start)
	}
	startBody, _ := clock12(start)
	return startBody + " - " + FormatClock(EndTime(start, durationMinutes))
}
