// Package conflicts detects impossible or fragile itinerary schedules:
// overlapping bookings, too little time to travel between activities, tight
// transitions and long idle gaps.
//
// Detect is a pure function of its inputs. It keeps no state, performs no
// I/O and never fails: activities whose times cannot be parsed are left out
// of the checks and reported in Result.Skipped. Callers that re-run it on
// every change should memoize on the input themselves.
package conflicts

import (
	"fmt"
	"strings"
)

const (
	DefaultMinBufferMinutes   = 5
	DefaultTightBufferMinutes = 15
	DefaultLongGapMinutes     = 180
	DefaultIncludeInfos       = true
)

type Options struct {
	MinBufferMinutes   int  `json:"min_buffer_minutes"`
	TightBufferMinutes int  `json:"tight_buffer_minutes"`
	LongGapMinutes     int  `json:"long_gap_minutes"`
	IncludeInfos       bool `json:"include_infos"`
}

func DefaultOptions() Options {
	return Options{
		MinBufferMinutes:   DefaultMinBufferMinutes,
		TightBufferMinutes: DefaultTightBufferMinutes,
		LongGapMinutes:     DefaultLongGapMinutes,
		IncludeInfos:       DefaultIncludeInfos,
	}
}

// tightThreshold is the slack a leg needs to not be tight. The minimum
// buffer is a floor under the tight buffer.
func (o Options) tightThreshold() int {
	if o.MinBufferMinutes > o.TightBufferMinutes {
		return o.MinBufferMinutes
	}
	return o.TightBufferMinutes
}

// Option overrides one field of DefaultOptions. Negative values are ignored.
type Option func(*Options)

func WithMinBuffer(minutes int) Option {
	return func(o *Options) {
		if minutes >= 0 {
			o.MinBufferMinutes = minutes
		}
	}
}

func WithTightBuffer(minutes int) Option {
	return func(o *Options) {
		if minutes >= 0 {
			o.TightBufferMinutes = minutes
		}
	}
}

func WithLongGap(minutes int) Option {
	return func(o *Options) {
		if minutes >= 0 {
			o.LongGapMinutes = minutes
		}
	}
}

func WithInfos(include bool) Option {
	return func(o *Options) { o.IncludeInfos = include }
}

// ResolveOptions applies opts over the defaults.
func ResolveOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

type TimeConflict struct {
	ID           string       `json:"id"`
	Type         ConflictType `json:"type"`
	Severity     Severity     `json:"severity"`
	ActivityIDs  []string     `json:"activity_ids"`
	Message      string       `json:"message"`
	ShortMessage string       `json:"short_message"`
	SuggestedFix string       `json:"suggested_fix,omitempty"`
}

type Summary struct {
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
	Infos    int `json:"infos"`
}

func (s Summary) Total() int { return s.Errors + s.Warnings + s.Infos }

// SkippedActivity names an activity left out of every check because its
// times could not be read.
type SkippedActivity struct {
	ActivityID string `json:"activity_id"`
	Reason     string `json:"reason"`
}

type ConflictCheckResult struct {
	Conflicts           []TimeConflict            `json:"conflicts"`
	HasErrors           bool                      `json:"has_errors"`
	HasWarnings         bool                      `json:"has_warnings"`
	Summary             Summary                   `json:"summary"`
	ConflictsByActivity map[string][]TimeConflict `json:"conflicts_by_activity"`
	Skipped             []SkippedActivity         `json:"skipped"`
}

// ForActivity returns the conflicts referencing id, nil if none.
func (r ConflictCheckResult) ForActivity(id string) []TimeConflict {
	return r.ConflictsByActivity[id]
}

// Detect runs every rule over activities, in sequence order, and builds the
// aggregate result. The same activities and options always give the same
// conflicts, ids and order.
func Detect(activities []Activity, opts ...Option) ConflictCheckResult {
	return DetectWithOptions(activities, ResolveOptions(opts...))
}

// DetectWithOptions is Detect with fully resolved options.
func DetectWithOptions(activities []Activity, opts Options) ConflictCheckResult {
	result := ConflictCheckResult{
		Conflicts:           []TimeConflict{},
		ConflictsByActivity: map[string][]TimeConflict{},
		Skipped:             []SkippedActivity{},
	}

	items := schedule(activities)
	for _, it := range items {
		if !it.ok {
			result.Skipped = append(result.Skipped, SkippedActivity{
				ActivityID: it.ID,
				Reason:     skipReason(it.Activity),
			})
		}
	}

	seen := make(map[string]int)
	for _, rule := range rules {
		for _, d := range rule(items, opts) {
			c := buildConflict(d)
			if c.Severity == SeverityInfo && !opts.IncludeInfos {
				continue
			}
			// duplicate activity ids in the input would otherwise collide
			if n := seen[c.ID]; n > 0 {
				seen[c.ID] = n + 1
				c.ID = fmt.Sprintf("%s#%d", c.ID, n+1)
			} else {
				seen[c.ID] = 1
			}
			result.Conflicts = append(result.Conflicts, c)
		}
	}

	for _, c := range result.Conflicts {
		switch c.Severity {
		case SeverityError:
			result.Summary.Errors++
		case SeverityWarning:
			result.Summary.Warnings++
		case SeverityInfo:
			result.Summary.Infos++
		}
		indexed := make(map[string]bool, len(c.ActivityIDs))
		for _, id := range c.ActivityIDs {
			if indexed[id] {
				continue
			}
			indexed[id] = true
			result.ConflictsByActivity[id] = append(result.ConflictsByActivity[id], c)
		}
	}
	result.HasErrors = result.Summary.Errors > 0
	result.HasWarnings = result.Summary.Warnings > 0

	return result
}

func buildConflict(d detection) TimeConflict {
	ids := []string{d.first.ID, d.second.ID}
	cls := classify(d)
	return TimeConflict{
		ID:           conflictID(d.kind, ids),
		Type:         d.kind,
		Severity:     cls.severity,
		ActivityIDs:  ids,
		Message:      cls.message,
		ShortMessage: cls.shortMessage,
		SuggestedFix: cls.suggestedFix,
	}
}

func conflictID(kind ConflictType, ids []string) string {
	return string(kind) + ":" + strings.Join(ids, ":")
}

func skipReason(a Activity) string {
	switch {
	case strings.TrimSpace(a.StartTime) == "":
		return "missing start time"
	case strings.TrimSpace(a.EndTime) == "":
		return "missing end time"
	}
	if _, ok := ParseClock(a.StartTime); !ok {
		return fmt.Sprintf("unparsable start time %q", a.StartTime)
	}
	return fmt.Sprintf("unparsable end time %q", a.EndTime)
}

// MostSevere returns the highest-severity conflict; on ties the earliest one
// in the list. ok is false for an empty list.
func MostSevere(conflicts []TimeConflict) (TimeConflict, bool) {
	if len(conflicts) == 0 {
		return TimeConflict{}, false
	}
	best := conflicts[0]
	for _, c := range conflicts[1:] {
		if c.Severity > best.Severity {
			best = c
		}
	}
	return best, true
}

// FilterBySeverity keeps conflicts at or above floor, preserving order.
func FilterBySeverity(conflicts []TimeConflict, floor Severity) []TimeConflict {
	out := make([]TimeConflict, 0, len(conflicts))
	for _, c := range conflicts {
		if c.Severity >= floor {
			out = append(out, c)
		}
	}
	return out
}
