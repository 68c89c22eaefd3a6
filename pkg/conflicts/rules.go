package conflicts

// scheduled is an activity with its parsed span. ok is false when either
// time could not be parsed; such activities take part in no rule.
type scheduled struct {
	Activity
	span Span
	ok   bool
}

func schedule(activities []Activity) []scheduled {
	out := make([]scheduled, len(activities))
	for i, a := range activities {
		span, ok := ParseSpan(a.StartTime, a.EndTime)
		out[i] = scheduled{Activity: a, span: span, ok: ok}
	}
	return out
}

// overlapRule checks every pair, not only neighbours: overlapping bookings
// need not be adjacent in display order. Pairs come out in input order.
func overlapRule(items []scheduled, _ Options) []detection {
	var found []detection
	for i := 0; i < len(items); i++ {
		if !items[i].ok {
			continue
		}
		for j := i + 1; j < len(items); j++ {
			if !items[j].ok {
				continue
			}
			// a shared start clashes even when one side has no length
			same := items[i].span.SameStart(items[j].span)
			if !same && !items[i].span.Overlaps(items[j].span) {
				continue
			}
			kind := TypeOverlap
			if same {
				kind = TypeSameTime
			}
			found = append(found, detection{
				kind:   kind,
				first:  items[i].Activity,
				second: items[j].Activity,
				span1:  items[i].span,
				span2:  items[j].span,
			})
		}
	}
	return found
}

// travelRule walks consecutive pairs and emits at most one of
// insufficient_travel, tight_transition or long_gap per pair.
// Overlapping or same-start neighbours are left to overlapRule.
func travelRule(items []scheduled, opts Options) []detection {
	var found []detection
	for i := 0; i+1 < len(items); i++ {
		cur, next := items[i], items[i+1]
		if !cur.ok || !next.ok {
			continue
		}
		gap := cur.span.GapTo(next.span)
		if gap < 0 || cur.span.SameStart(next.span) {
			continue
		}

		d := detection{
			first:  cur.Activity,
			second: next.Activity,
			span1:  cur.span,
			span2:  next.span,
			gap:    gap,
		}

		leg := cur.TransportToNext
		if leg == nil {
			if gap > opts.LongGapMinutes {
				d.kind = TypeLongGap
				found = append(found, d)
			}
			continue
		}

		d.mode = leg.TransportationMode
		d.required = leg.RequiredMinutes()
		d.buffer = opts.tightThreshold()
		switch {
		case gap < d.required:
			d.kind = TypeInsufficientTravel
		case gap < d.required+d.buffer:
			d.kind = TypeTightTransition
		default:
			continue
		}
		found = append(found, d)
	}
	return found
}

// rules run in this order; the order fixes the order of Result.Conflicts.
var rules = []func([]scheduled, Options) []detection{
	overlapRule,
	travelRule,
}
