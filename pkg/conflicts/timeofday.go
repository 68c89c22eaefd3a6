package conflicts

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Minutes is a wall-clock time expressed as minutes since midnight of the
// activity's day. Values past 1440 belong to the following day.
//
// A checked sequence is one day of a schedule: dates are never compared, so
// callers split multi-day input by day before detection.
type Minutes int

const minutesPerDay Minutes = 24 * 60

func (m Minutes) String() string {
	d := ((m % minutesPerDay) + minutesPerDay) % minutesPerDay
	return fmt.Sprintf("%02d:%02d", int(d)/60, int(d)%60)
}

// ParseClock accepts "15:04", "9:04", "15:04:05", "3:04 PM" and RFC3339
// timestamps. An RFC3339 value contributes only its wall clock in its own
// offset; the date is dropped. ok is false for anything else; callers skip
// the value instead of failing.
func ParseClock(s string) (Minutes, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return Minutes(t.Hour()*60 + t.Minute()), true
	}

	upper := strings.ToUpper(s)
	meridiem := ""
	switch {
	case strings.HasSuffix(upper, "AM"):
		meridiem = "AM"
	case strings.HasSuffix(upper, "PM"):
		meridiem = "PM"
	}
	if meridiem != "" {
		upper = strings.TrimSpace(strings.TrimSuffix(upper, meridiem))
	}

	parts := strings.Split(upper, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, false
	}

	hour, ok := clockField(parts[0], 1, 2)
	if !ok {
		return 0, false
	}
	minute, ok := clockField(parts[1], 2, 2)
	if !ok || minute > 59 {
		return 0, false
	}
	if len(parts) == 3 {
		sec, ok := clockField(parts[2], 2, 2)
		if !ok || sec > 59 {
			return 0, false
		}
	}

	switch meridiem {
	case "":
		if hour > 23 {
			return 0, false
		}
	default:
		if hour < 1 || hour > 12 {
			return 0, false
		}
		hour %= 12
		if meridiem == "PM" {
			hour += 12
		}
	}

	return Minutes(hour*60 + minute), true
}

func clockField(s string, minLen, maxLen int) (int, bool) {
	if len(s) < minLen || len(s) > maxLen {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Span is the half-open interval [Start, End) an activity occupies.
type Span struct {
	Start Minutes
	End   Minutes
}

// ParseSpan parses both ends of an activity. An end earlier than the start
// is read as crossing midnight.
func ParseSpan(start, end string) (Span, bool) {
	s, ok := ParseClock(start)
	if !ok {
		return Span{}, false
	}
	e, ok := ParseClock(end)
	if !ok {
		return Span{}, false
	}
	if e < s {
		e += minutesPerDay
	}
	return Span{Start: s, End: e}, true
}

func (s Span) Overlaps(o Span) bool {
	return s.Start < o.End && o.Start < s.End
}

func (s Span) SameStart(o Span) bool {
	return s.Start == o.Start
}

// OverlapMinutes is the length of the shared part of two spans, 0 if disjoint.
func (s Span) OverlapMinutes(o Span) int {
	lo, hi := s.Start, s.End
	if o.Start > lo {
		lo = o.Start
	}
	if o.End < hi {
		hi = o.End
	}
	if hi <= lo {
		return 0
	}
	return int(hi - lo)
}

// GapTo is the free time between the end of s and the start of next.
// Negative when they overlap.
func (s Span) GapTo(next Span) int {
	return int(next.Start - s.End)
}

func formatDuration(minutes int) string {
	if minutes < 0 {
		minutes = -minutes
	}
	h, m := minutes/60, minutes%60
	switch {
	case h == 0:
		if m == 1 {
			return "1 minute"
		}
		return fmt.Sprintf("%d minutes", m)
	case m == 0:
		if h == 1 {
			return "1 hour"
		}
		return fmt.Sprintf("%d hours", h)
	default:
		return fmt.Sprintf("%dh %02dm", h, m)
	}
}
