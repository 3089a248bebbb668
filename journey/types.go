package journey

import "time"

// Location types.
const (
	LocationTypeStop    = "stop"
	LocationTypePOI     = "poi"
	LocationTypeAddress = "address"
)

// Normalized transport modes. The decoder only ever emits values from
// this set, a config-supplied mapping, or a lower-cased parent category
// for primary modes the table does not list.
const (
	ModePublicTransport = "public_transport"
	ModeTrain           = "train"
	ModeRegionalTrain   = "regional_train"
	ModeSBahn           = "s_bahn"
	ModeIntercity       = "intercity"
	ModeHighSpeedRail   = "high_speed_rail"
	ModeBus             = "bus"
	ModeExpressBus      = "express_bus"
	ModeNightBus        = "night_bus"
	ModeTram            = "tram"
	ModeMetro           = "metro"
	ModeFunicular       = "funicular"
	ModeCableCar        = "cable_car"
	ModeWalk            = "walk"
	ModeWalking         = "walking"
)

// Coordinates is a WGS84 position. Always fully populated when present;
// a position with only one valid component is dropped, never halved.
type Coordinates struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// Location is a named place: a stop, point of interest or address.
// Probability is only set on search results, never on trip endpoints.
type Location struct {
	ID          string       `json:"id,omitempty"`
	Name        string       `json:"name"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
	Type        string       `json:"type"`
	Probability *float64     `json:"probability,omitempty"`
}

// Leg is one segment of a trip. Origin and destination are always
// populated, degrading to a placeholder location rather than being
// absent. DurationMinutes is carried mainly by transfer legs; timed
// legs derive their duration from the two instants instead.
type Leg struct {
	Mode            string     `json:"mode"`
	Origin          Location   `json:"origin"`
	Destination     Location   `json:"destination"`
	DepartureTime   *time.Time `json:"departureTime,omitempty"`
	ArrivalTime     *time.Time `json:"arrivalTime,omitempty"`
	DurationMinutes *int       `json:"durationMinutes,omitempty"`
	LineName        string     `json:"lineName,omitempty"`
	Direction       string     `json:"direction,omitempty"`
}

// Trip is an ordered, non-empty leg sequence plus derived totals.
type Trip struct {
	Legs                 []Leg      `json:"legs"`
	TotalDurationMinutes int        `json:"totalDurationMinutes"`
	DepartureTime        *time.Time `json:"departureTime,omitempty"`
	ArrivalTime          *time.Time `json:"arrivalTime,omitempty"`
	Transfers            int        `json:"transfers"`
}

// TripResponse is the envelope returned by trip decoding. ErrorMessage
// is set exactly when Success is false.
type TripResponse struct {
	Success      bool      `json:"success"`
	ErrorMessage string    `json:"errorMessage,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
	Trips        []Trip    `json:"trips"`
}

// LocationResponse is the envelope returned by location decoding.
type LocationResponse struct {
	Success      bool       `json:"success"`
	ErrorMessage string     `json:"errorMessage,omitempty"`
	Timestamp    time.Time  `json:"timestamp"`
	Locations    []Location `json:"locations"`
}
