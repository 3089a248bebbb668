package decoder

import (
	"strings"
	"time"

	"github.com/theoremus-urban-solutions/ojp-to-journeys/journey"
	"github.com/theoremus-urban-solutions/ojp-to-journeys/ojp"
	"github.com/theoremus-urban-solutions/ojp-to-journeys/utils"
)

// decodeLeg classifies a leg element by the variant sub-element it
// carries and decodes it. Exactly one variant applies; a leg matching
// none of the known shapes is dropped.
func (d *Decoder) decodeLeg(leg *ojp.Leg) *journey.Leg {
	switch {
	case leg.TimedLeg != nil:
		return d.decodeTimedLeg(leg.TimedLeg)
	case leg.ContinuousLeg != nil:
		return d.decodeContinuousLeg(leg)
	case leg.TransferLeg != nil:
		return d.decodeTransferLeg(leg)
	default:
		return nil
	}
}

// decodeTimedLeg decodes a scheduled service leg. Both the board and
// the alight call are required; everything else degrades field by field.
func (d *Decoder) decodeTimedLeg(tl *ojp.TimedLeg) *journey.Leg {
	if tl.LegBoard == nil || tl.LegAlight == nil {
		return nil
	}

	var mode *ojp.Mode
	lineName := ""
	direction := ""
	if svc := tl.Service; svc != nil {
		mode = svc.Mode
		lineName = firstNonEmpty(textOf(svc.PublishedServiceName), svc.PublicCode)
		direction = textOf(svc.DestinationText)
	}

	return &journey.Leg{
		Mode:          d.normalizeMode(mode),
		Origin:        d.stopCallLocation(tl.LegBoard),
		Destination:   d.stopCallLocation(tl.LegAlight),
		DepartureTime: serviceInstant(tl.LegBoard.ServiceDeparture),
		ArrivalTime:   serviceInstant(tl.LegAlight.ServiceArrival),
		LineName:      lineName,
		Direction:     direction,
	}
}

// decodeContinuousLeg decodes self-propelled movement. The transfer
// details sit one level below the leg; without them the leg is
// undecodable.
func (d *Decoder) decodeContinuousLeg(leg *ojp.Leg) *journey.Leg {
	cl := leg.ContinuousLeg
	if cl.TransferLeg == nil {
		return nil
	}
	return d.transferMovement(cl.TransferLeg, leg.Duration, cl.Duration, cl.TransferLeg.Duration)
}

// decodeTransferLeg decodes a transfer that sits directly under the leg.
// Same shape as the continuous variant, one nesting level up.
func (d *Decoder) decodeTransferLeg(leg *ojp.Leg) *journey.Leg {
	return d.transferMovement(leg.TransferLeg, leg.Duration, leg.TransferLeg.Duration)
}

// transferMovement normalizes both transfer shapes: endpoints via the
// transfer-point strategy, mode from TransferType (walking when absent),
// duration from the first source in precedence order that decodes.
func (d *Decoder) transferMovement(tl *ojp.TransferLeg, durationSources ...string) *journey.Leg {
	mode := journey.ModeWalking
	if tl.TransferType != "" {
		mode = strings.ToLower(tl.TransferType)
	}

	var duration *int
	for _, raw := range durationSources {
		if minutes, ok := utils.ParseISODurationMinutes(raw); ok {
			duration = &minutes
			break
		}
	}

	return &journey.Leg{
		Mode:            mode,
		Origin:          d.transferPointLocation(tl.LegStart),
		Destination:     d.transferPointLocation(tl.LegEnd),
		DurationMinutes: duration,
	}
}

// serviceInstant reads one call time, preferring the real-time estimate
// over the timetabled instant.
func serviceInstant(st *ojp.ServiceTime) *time.Time {
	if st == nil {
		return nil
	}
	for _, raw := range []string{st.EstimatedTime, st.TimetabledTime} {
		if t, ok := utils.ParseISOTimestamp(raw); ok {
			return &t
		}
	}
	return nil
}
