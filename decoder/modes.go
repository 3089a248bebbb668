package decoder

import (
	"strings"

	"github.com/theoremus-urban-solutions/ojp-to-journeys/journey"
	"github.com/theoremus-urban-solutions/ojp-to-journeys/ojp"
)

// ModeMapping is one vendor mode table entry. Entries with an empty
// Submode act as the fallback for their primary mode.
type ModeMapping struct {
	PtMode     string
	Submode    string
	Normalized string
}

type modeKey struct {
	ptMode  string
	submode string
}

// defaultModeTable maps the provider's primary mode and submode
// vocabulary onto the normalized modes callers see. Unknown submodes
// degrade to the empty-submode entry of their primary mode, so vendor
// jargon never leaks through.
var defaultModeTable = map[modeKey]string{
	{"rail", "regionalRail"}:      journey.ModeRegionalTrain,
	{"rail", "suburbanRailway"}:   journey.ModeSBahn,
	{"rail", "interregionalRail"}: journey.ModeIntercity,
	{"rail", "highSpeedRail"}:     journey.ModeHighSpeedRail,
	{"rail", ""}:                  journey.ModeTrain,
	{"bus", "localBus"}:           journey.ModeBus,
	{"bus", "expressBus"}:         journey.ModeExpressBus,
	{"bus", "nightBus"}:           journey.ModeNightBus,
	{"bus", ""}:                   journey.ModeBus,
	{"tram", ""}:                  journey.ModeTram,
	{"metro", ""}:                 journey.ModeMetro,
	{"funicular", ""}:             journey.ModeFunicular,
	{"cableCar", ""}:              journey.ModeCableCar,
}

// normalizeMode resolves a vendor mode element: exact primary+submode
// entry first, then the primary's fallback entry, then the lower-cased
// primary itself. Legs without a primary mode are generic public
// transport.
func (d *Decoder) normalizeMode(m *ojp.Mode) string {
	if m == nil || m.PtMode == "" {
		return journey.ModePublicTransport
	}
	submode := ""
	switch m.PtMode {
	case "rail":
		submode = m.RailSubmode
	case "bus":
		submode = m.BusSubmode
	}
	if v, ok := d.modes[modeKey{m.PtMode, submode}]; ok {
		return v
	}
	if v, ok := d.modes[modeKey{m.PtMode, ""}]; ok {
		return v
	}
	return strings.ToLower(m.PtMode)
}
