package conflicts

import "math"

type ActivityType string

const (
	ActivitySightseeing ActivityType = "sightseeing"
	ActivityDining      ActivityType = "dining"
	ActivityLodging     ActivityType = "lodging"
	ActivityShopping    ActivityType = "shopping"
	ActivityEntertain   ActivityType = "entertainment"
	ActivityOutdoor     ActivityType = "outdoor"
	ActivityTransport   ActivityType = "transport"
	ActivityOther       ActivityType = "other"
)

type Location struct {
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}

// Activity is one scheduled itinerary item. StartTime and EndTime are
// schedule-local clock strings, see ParseClock.
type Activity struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Type            ActivityType  `json:"type"`
	StartTime       string        `json:"start_time"`
	EndTime         string        `json:"end_time"`
	Location        Location      `json:"location"`
	TransportToNext *ItineraryLeg `json:"transport_to_next,omitempty"`
}

func (a Activity) label() string {
	if a.Name != "" {
		return a.Name
	}
	if a.Location.Name != "" {
		return a.Location.Name
	}
	return a.ID
}

// ItineraryLeg is the hop from an activity to the next one in sequence.
// EstimatedDuration is in minutes, EstimatedDistance in kilometres.
type ItineraryLeg struct {
	ID                 string             `json:"id"`
	TransportationMode TransportationMode `json:"transportation_mode"`
	EstimatedDuration  int                `json:"estimated_duration"`
	EstimatedDistance  float64            `json:"estimated_distance"`
}

type TransportationMode string

const (
	ModeDrive     TransportationMode = "drive"
	ModeRideshare TransportationMode = "rideshare"
	ModeTaxi      TransportationMode = "taxi"
	ModeTransit   TransportationMode = "transit"
	ModeBike      TransportationMode = "bike"
	ModeWalk      TransportationMode = "walk"
	ModeFerry     TransportationMode = "ferry"
	ModeFlight    TransportationMode = "flight"
)

// AllTransportationModes lists every mode with an entry in the mode table.
var AllTransportationModes = []TransportationMode{
	ModeDrive, ModeRideshare, ModeTaxi, ModeTransit, ModeBike, ModeWalk, ModeFerry, ModeFlight,
}

// Baseline pace used to turn a distance into driving minutes (40 km/h).
const baselineMinutesPerKm = 1.5

type modeProfile struct {
	multiplier float64 // relative to driving the same distance
	noun       string  // "the drive takes about ..."
	icon       string
}

var modeTable = map[TransportationMode]modeProfile{
	ModeDrive:     {multiplier: 1.0, noun: "drive", icon: "car"},
	ModeRideshare: {multiplier: 1.15, noun: "rideshare trip", icon: "car-side"},
	ModeTaxi:      {multiplier: 1.1, noun: "taxi ride", icon: "taxi"},
	ModeTransit:   {multiplier: 1.6, noun: "transit ride", icon: "bus"},
	ModeBike:      {multiplier: 2.5, noun: "bike ride", icon: "bicycle"},
	ModeWalk:      {multiplier: 8.0, noun: "walk", icon: "walking"},
	ModeFerry:     {multiplier: 2.0, noun: "ferry crossing", icon: "ship"},
	ModeFlight:    {multiplier: 0.3, noun: "flight", icon: "plane"},
}

func profileFor(m TransportationMode) modeProfile {
	if p, ok := modeTable[m]; ok {
		return p
	}
	// unknown modes from callers are costed like driving
	return modeProfile{multiplier: 1.0, noun: "trip", icon: "route"}
}

// ModeMultiplier returns the fixed duration factor of a mode relative to driving.
func ModeMultiplier(m TransportationMode) float64 {
	return profileFor(m).multiplier
}

// MaxLegMinutes caps the travel time of a single leg so that absurd
// distances or durations still compare as "too long" instead of overflowing.
const MaxLegMinutes = math.MaxInt32

// RequiredMinutes is the travel time the leg needs. A supplied duration wins
// and a negative one counts as 0; otherwise the time is derived from the
// distance with the mode table.
func (l ItineraryLeg) RequiredMinutes() int {
	switch {
	case l.EstimatedDuration < 0:
		return 0
	case l.EstimatedDuration > 0:
		return min(l.EstimatedDuration, MaxLegMinutes)
	}
	if !(l.EstimatedDistance > 0) {
		return 0
	}
	raw := math.Ceil(l.EstimatedDistance * baselineMinutesPerKm * ModeMultiplier(l.TransportationMode))
	if math.IsInf(raw, 1) || raw >= MaxLegMinutes {
		return MaxLegMinutes
	}
	return int(raw)
}
