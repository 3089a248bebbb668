package ojp

// Bindings for the element shapes the provider is observed to emit.
// Fields are matched by local name only, so documents using the default
// ojp namespace, an explicit ojp: prefix, or siri: for SIRI-owned leaves
// (StopPointRef, Longitude, Latitude) all decode the same way. Leaf
// values stay strings; numeric and temporal conversion happens in the
// decoder so a bad value degrades that field, not the document.

// TripResult is one trip option inside an OJPTripDelivery.
type TripResult struct {
	ID   string       `xml:"Id"`
	Trip *TripElement `xml:"Trip"`
}

// TripElement wraps the ordered leg sequence of a trip result.
type TripElement struct {
	Duration string `xml:"Duration"`
	Legs     []Leg  `xml:"Leg"`
}

// Leg carries exactly one of TimedLeg, ContinuousLeg or TransferLeg.
type Leg struct {
	ID            string         `xml:"Id"`
	Duration      string         `xml:"Duration"`
	TimedLeg      *TimedLeg      `xml:"TimedLeg"`
	ContinuousLeg *ContinuousLeg `xml:"ContinuousLeg"`
	TransferLeg   *TransferLeg   `xml:"TransferLeg"`
}

// TimedLeg is a leg on a published service with board and alight calls.
type TimedLeg struct {
	LegBoard  *StopCall `xml:"LegBoard"`
	LegAlight *StopCall `xml:"LegAlight"`
	Service   *Service  `xml:"Service"`
}

// StopCall is a LegBoard or LegAlight element.
type StopCall struct {
	StopPointRef     string             `xml:"StopPointRef"`
	StopPointName    *InternationalText `xml:"StopPointName"`
	ServiceDeparture *ServiceTime       `xml:"ServiceDeparture"`
	ServiceArrival   *ServiceTime       `xml:"ServiceArrival"`
}

// ServiceTime holds the timetabled instant and, when available, the
// real-time estimate for one call.
type ServiceTime struct {
	TimetabledTime string `xml:"TimetabledTime"`
	EstimatedTime  string `xml:"EstimatedTime"`
}

// Service describes the operated line of a timed leg.
type Service struct {
	Mode                 *Mode              `xml:"Mode"`
	PublishedServiceName *InternationalText `xml:"PublishedServiceName"`
	PublicCode           string             `xml:"PublicCode"`
	DestinationText      *InternationalText `xml:"DestinationText"`
}

// Mode is the vendor transport mode with its optional refinements.
type Mode struct {
	PtMode      string `xml:"PtMode"`
	RailSubmode string `xml:"RailSubmode"`
	BusSubmode  string `xml:"BusSubmode"`
}

// ContinuousLeg is self-propelled movement; the provider nests the
// transfer details one level below the leg here.
type ContinuousLeg struct {
	Duration    string       `xml:"Duration"`
	TransferLeg *TransferLeg `xml:"TransferLeg"`
}

// TransferLeg is a transfer movement, either nested in a ContinuousLeg
// or sitting directly under the Leg.
type TransferLeg struct {
	TransferType string         `xml:"TransferType"`
	LegStart     *TransferPoint `xml:"LegStart"`
	LegEnd       *TransferPoint `xml:"LegEnd"`
	Duration     string         `xml:"Duration"`
}

// TransferPoint is a LegStart or LegEnd. The provider emits the point
// name under either of two spellings, and the reference only when the
// point is a stop.
type TransferPoint struct {
	StopPointRef string             `xml:"StopPointRef"`
	Name         *InternationalText `xml:"Name"`
	ShortName    *InternationalText `xml:"n"`
}

// PlaceResult is one match inside an OJPLocationInformationDelivery.
type PlaceResult struct {
	Place       *Place `xml:"Place"`
	Probability string `xml:"Probability"`
}

// Place is the matched place of a search result.
type Place struct {
	Name        *InternationalText `xml:"Name"`
	StopPlace   *StopPlace         `xml:"StopPlace"`
	GeoPosition *GeoPosition       `xml:"GeoPosition"`
}

// StopPlace carries the stop-specific reference and name of a place.
type StopPlace struct {
	StopPlaceRef  string             `xml:"StopPlaceRef"`
	StopPlaceName *InternationalText `xml:"StopPlaceName"`
}

// GeoPosition is a WGS84 position with string components.
type GeoPosition struct {
	Longitude string `xml:"Longitude"`
	Latitude  string `xml:"Latitude"`
}

// InternationalText is the Text wrapper OJP uses for translatable names.
type InternationalText struct {
	Text string `xml:"Text"`
}
