package decoder

import (
	"strconv"

	"github.com/theoremus-urban-solutions/ojp-to-journeys/journey"
	"github.com/theoremus-urban-solutions/ojp-to-journeys/ojp"
)

// stopCallLocation extracts the endpoint of a timed leg. Board and
// alight points carry a stop name and reference, never coordinates.
func (d *Decoder) stopCallLocation(c *ojp.StopCall) journey.Location {
	return journey.Location{
		ID:   c.StopPointRef,
		Name: d.nameOrPlaceholder(textOf(c.StopPointName)),
		Type: journey.LocationTypeStop,
	}
}

// transferPointLocation extracts a transfer endpoint. The point is not
// always a stop, so the reference may be absent, and the name appears
// under either of two spellings.
func (d *Decoder) transferPointLocation(p *ojp.TransferPoint) journey.Location {
	if p == nil {
		return journey.Location{Name: d.placeholder, Type: journey.LocationTypeStop}
	}
	return journey.Location{
		ID:   p.StopPointRef,
		Name: d.nameOrPlaceholder(firstNonEmpty(textOf(p.Name), textOf(p.ShortName))),
		Type: journey.LocationTypeStop,
	}
}

// placeLocation extracts a search-result place. The place name falls
// back to the stop place name; a result resolving no name at all yields
// no location and is skipped by the caller.
func (d *Decoder) placeLocation(pr *ojp.PlaceResult) *journey.Location {
	place := pr.Place
	if place == nil {
		return nil
	}

	name := textOf(place.Name)
	if name == "" && place.StopPlace != nil {
		name = textOf(place.StopPlace.StopPlaceName)
	}
	if name == "" {
		return nil
	}

	loc := &journey.Location{
		Name:        name,
		Type:        journey.LocationTypeStop,
		Coordinates: geoCoordinates(place.GeoPosition),
	}
	if place.StopPlace != nil {
		loc.ID = place.StopPlace.StopPlaceRef
	}
	if p, err := strconv.ParseFloat(pr.Probability, 64); err == nil && p >= 0 && p <= 1 {
		loc.Probability = &p
	}
	return loc
}

// geoCoordinates converts a GeoPosition when both components are numeric
// and inside WGS84 bounds; otherwise the position is absent.
func geoCoordinates(gp *ojp.GeoPosition) *journey.Coordinates {
	if gp == nil {
		return nil
	}
	lon, errLon := strconv.ParseFloat(gp.Longitude, 64)
	lat, errLat := strconv.ParseFloat(gp.Latitude, 64)
	if errLon != nil || errLat != nil {
		return nil
	}
	if lon < -180 || lon > 180 || lat < -90 || lat > 90 {
		return nil
	}
	return &journey.Coordinates{Longitude: lon, Latitude: lat}
}

func (d *Decoder) nameOrPlaceholder(name string) string {
	if name == "" {
		return d.placeholder
	}
	return name
}

// textOf reads the Text child of an optional international text element.
func textOf(t *ojp.InternationalText) string {
	if t == nil {
		return ""
	}
	return t.Text
}

// firstNonEmpty returns the first non-empty candidate, evaluating the
// fallback chain in order.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
