package conflicts

// Display lookups for presentation adapters. Nothing here affects detection.

var severityColors = map[Severity]string{
	SeverityError:   "#DC2626",
	SeverityWarning: "#F59E0B",
	SeverityInfo:    "#3B82F6",
}

var conflictIcons = map[ConflictType]string{
	TypeOverlap:            "calendar-x",
	TypeSameTime:           "clock-alert",
	TypeInsufficientTravel: "route-off",
	TypeTightTransition:    "timer",
	TypeLongGap:            "hourglass",
}

func SeverityColor(s Severity) string {
	if c, ok := severityColors[s]; ok {
		return c
	}
	return "#6B7280"
}

func SeverityLabel(s Severity) string {
	switch s {
	case SeverityError:
		return "Conflict"
	case SeverityWarning:
		return "Warning"
	default:
		return "Note"
	}
}

func ConflictIcon(t ConflictType) string {
	if i, ok := conflictIcons[t]; ok {
		return i
	}
	return "alert-circle"
}

func ModeIcon(m TransportationMode) string {
	return profileFor(m).icon
}
