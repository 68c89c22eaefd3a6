package conflicts

import (
	"fmt"
	"strings"
)

// Severity is ordered: SeverityError > SeverityWarning > SeverityInfo.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	}
	return fmt.Sprintf("severity(%d)", int(s))
}

func (s Severity) MarshalText() ([]byte, error) {
	switch s {
	case SeverityError, SeverityWarning, SeverityInfo:
		return []byte(s.String()), nil
	}
	return nil, fmt.Errorf("unknown severity %d", int(s))
}

func (s *Severity) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "error":
		*s = SeverityError
	case "warning":
		*s = SeverityWarning
	case "info":
		*s = SeverityInfo
	default:
		return fmt.Errorf("unknown severity %q", string(b))
	}
	return nil
}

type ConflictType string

const (
	TypeOverlap            ConflictType = "overlap"
	TypeSameTime           ConflictType = "same_time"
	TypeInsufficientTravel ConflictType = "insufficient_travel"
	TypeTightTransition    ConflictType = "tight_transition"
	TypeLongGap            ConflictType = "long_gap"
)

// AllConflictTypes is every type the rules can emit. Each one must have an
// entry in policies; policy_test checks it.
var AllConflictTypes = []ConflictType{
	TypeOverlap, TypeSameTime, TypeInsufficientTravel, TypeTightTransition, TypeLongGap,
}

// detection carries what a rule found, before wording.
type detection struct {
	kind     ConflictType
	first    Activity
	second   Activity
	span1    Span
	span2    Span
	gap      int // free minutes between the pair, travel rules only
	required int // minutes the leg needs, travel rules only
	buffer   int // slack the tight rule asks for
	mode     TransportationMode
}

type classification struct {
	severity     Severity
	shortMessage string
	message      string
	suggestedFix string
}

type policy struct {
	severity Severity
	short    string
	describe func(d detection) (message, fix string)
}

var policies = map[ConflictType]policy{
	TypeOverlap: {
		severity: SeverityError,
		short:    "Overlapping times",
		describe: func(d detection) (string, string) {
			msg := fmt.Sprintf("%q (%s-%s) overlaps with %q (%s-%s) by %s.",
				d.first.label(), d.span1.Start, d.span1.End,
				d.second.label(), d.span2.Start, d.span2.End,
				formatDuration(d.span1.OverlapMinutes(d.span2)))
			later, earlier := d.second, d.span1
			if d.span2.Start < d.span1.Start {
				later, earlier = d.first, d.span2
			}
			fix := fmt.Sprintf("Move the start of %q to %s or later.", later.label(), earlier.End)
			return msg, fix
		},
	},
	TypeSameTime: {
		severity: SeverityError,
		short:    "Same start time",
		describe: func(d detection) (string, string) {
			msg := fmt.Sprintf("%q and %q both start at %s.", d.first.label(), d.second.label(), d.span1.Start)
			if d.span1.End == d.span1.Start {
				return msg, fmt.Sprintf("Give %q and %q different start times.", d.first.label(), d.second.label())
			}
			fix := fmt.Sprintf("Move the start of %q to %s or later.", d.second.label(), d.span1.End)
			return msg, fix
		},
	},
	TypeInsufficientTravel: {
		severity: SeverityError,
		short:    "Not enough travel time",
		describe: func(d detection) (string, string) {
			msg := fmt.Sprintf("Only %s between %q and %q, but the %s takes about %s.",
				formatDuration(d.gap), d.first.label(), d.second.label(),
				profileFor(d.mode).noun, formatDuration(d.required))
			fix := fmt.Sprintf("Add %s more or choose a faster transportation mode.",
				formatDuration(d.required-d.gap))
			return msg, fix
		},
	},
	TypeTightTransition: {
		severity: SeverityWarning,
		short:    "Tight transition",
		describe: func(d detection) (string, string) {
			slack := d.gap - d.required
			msg := fmt.Sprintf("Only %s of slack for the %s from %q to %q, which takes about %s.",
				formatDuration(slack), profileFor(d.mode).noun,
				d.first.label(), d.second.label(), formatDuration(d.required))
			fix := fmt.Sprintf("Add %s more to allow for delays.", formatDuration(d.buffer-slack))
			return msg, fix
		},
	},
	TypeLongGap: {
		severity: SeverityInfo,
		short:    "Long gap",
		describe: func(d detection) (string, string) {
			msg := fmt.Sprintf("%s of free time between %q (ends %s) and %q (starts %s).",
				formatDuration(d.gap), d.first.label(), d.span1.End, d.second.label(), d.span2.Start)
			return msg, ""
		},
	},
}

func classify(d detection) classification {
	p, ok := policies[d.kind]
	if !ok {
		// rules only emit declared types; keep output well formed regardless
		return classification{severity: SeverityWarning, shortMessage: string(d.kind), message: string(d.kind)}
	}
	msg, fix := p.describe(d)
	return classification{
		severity:     p.severity,
		shortMessage: p.short,
		message:      msg,
		suggestedFix: fix,
	}
}

// SeverityOf returns the fixed severity of a conflict type.
func SeverityOf(t ConflictType) Severity {
	if p, ok := policies[t]; ok {
		return p.severity
	}
	return SeverityWarning
}
