package utils

import "time"

const DefaultScheduleZone = "Asia/Ho_Chi_Minh"

// LoadScheduleLocation resolves the zone schedules are written in, falling
// back to a fixed +07:00 when the tz database is unavailable.
func LoadScheduleLocation(name string) *time.Location {
	if name == "" {
		name = DefaultScheduleZone
	}
	if loc, err := time.LoadLocation(name); err == nil {
		return loc
	}
	return time.FixedZone("ICT", 7*3600)
}

// FromUnixSeconds returns zero time for t<=0 so callers decide how to render it.
func FromUnixSeconds(t int64, loc *time.Location) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.Unix(t, 0).In(loc)
}

// FormatClock renders the wall clock ("15:04") of t in loc, "" for zero time.
func FormatClock(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	return t.In(loc).Format("15:04")
}

func FormatDate(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	return t.In(loc).Format(time.DateOnly)
}

func FormatRFC3339(t time.Time, loc *time.Location) string {
	if t.IsZero() {
		return ""
	}
	return t.In(loc).Format(time.RFC3339)
}
