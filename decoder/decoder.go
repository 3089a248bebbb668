package decoder

import (
	"fmt"
	"time"

	"github.com/theoremus-urban-solutions/ojp-to-journeys/journey"
	"github.com/theoremus-urban-solutions/ojp-to-journeys/ojp"
)

// DefaultPlaceholderName labels endpoints and places whose name the
// document does not resolve.
const DefaultPlaceholderName = "Unknown"

// Options configures a Decoder.
type Options struct {
	// PlaceholderName replaces missing location names. Empty means
	// DefaultPlaceholderName.
	PlaceholderName string
	// ModeOverrides adds to or replaces entries of the built-in mode
	// normalization table.
	ModeOverrides []ModeMapping
}

// Decoder turns raw OJP response documents into normalized journey
// responses.
type Decoder struct {
	placeholder string
	modes       map[modeKey]string
}

// NewDecoder creates a decoder with the built-in mode table merged with
// any overrides from opts.
func NewDecoder(opts Options) *Decoder {
	placeholder := opts.PlaceholderName
	if placeholder == "" {
		placeholder = DefaultPlaceholderName
	}
	modes := make(map[modeKey]string, len(defaultModeTable)+len(opts.ModeOverrides))
	for k, v := range defaultModeTable {
		modes[k] = v
	}
	for _, m := range opts.ModeOverrides {
		modes[modeKey{m.PtMode, m.Submode}] = m.Normalized
	}
	return &Decoder{placeholder: placeholder, modes: modes}
}

// DecodeTripResponse decodes one trip response document. Trip results
// that cannot be decoded are skipped; only a malformed document flips
// the envelope to failure.
func (d *Decoder) DecodeTripResponse(data []byte) *journey.TripResponse {
	doc, err := ojp.ParseDocument(data)
	if err != nil {
		return &journey.TripResponse{
			ErrorMessage: fmt.Sprintf("failed to parse trip response: %v", err),
			Timestamp:    time.Now().UTC(),
			Trips:        []journey.Trip{},
		}
	}
	trips := []journey.Trip{}
	for i := range doc.TripResults {
		if t := d.decodeTripResult(&doc.TripResults[i]); t != nil {
			trips = append(trips, *t)
		}
	}
	return &journey.TripResponse{
		Success:   true,
		Timestamp: time.Now().UTC(),
		Trips:     trips,
	}
}

// DecodeLocationResponse decodes one location information response
// document, collecting every place result that yields a location.
func (d *Decoder) DecodeLocationResponse(data []byte) *journey.LocationResponse {
	doc, err := ojp.ParseDocument(data)
	if err != nil {
		return &journey.LocationResponse{
			ErrorMessage: fmt.Sprintf("failed to parse location response: %v", err),
			Timestamp:    time.Now().UTC(),
			Locations:    []journey.Location{},
		}
	}
	locations := []journey.Location{}
	for i := range doc.PlaceResults {
		if loc := d.placeLocation(&doc.PlaceResults[i]); loc != nil {
			locations = append(locations, *loc)
		}
	}
	return &journey.LocationResponse{
		Success:   true,
		Timestamp: time.Now().UTC(),
		Locations: locations,
	}
}
