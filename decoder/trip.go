package decoder

import (
	"time"

	"github.com/theoremus-urban-solutions/ojp-to-journeys/journey"
	"github.com/theoremus-urban-solutions/ojp-to-journeys/ojp"
)

// decodeTripResult decodes every leg of one trip result and assembles
// the totals. A result with no decodable leg yields no trip.
func (d *Decoder) decodeTripResult(tr *ojp.TripResult) *journey.Trip {
	if tr.Trip == nil {
		return nil
	}
	var legs []journey.Leg
	for i := range tr.Trip.Legs {
		if leg := d.decodeLeg(&tr.Trip.Legs[i]); leg != nil {
			legs = append(legs, *leg)
		}
	}
	if len(legs) == 0 {
		return nil
	}
	return assembleTrip(legs)
}

// assembleTrip derives the trip totals from an ordered, non-empty leg
// sequence under the partial-information fallback rules.
func assembleTrip(legs []journey.Leg) *journey.Trip {
	// A trip can start or end with an untimed walking leg, so the trip
	// instants come from the first leg carrying a departure and the
	// last leg carrying an arrival.
	var departure, arrival *time.Time
	for i := range legs {
		if legs[i].DepartureTime != nil {
			departure = legs[i].DepartureTime
			break
		}
	}
	for i := len(legs) - 1; i >= 0; i-- {
		if legs[i].ArrivalTime != nil {
			arrival = legs[i].ArrivalTime
			break
		}
	}

	total := 0
	if departure != nil && arrival != nil {
		total = int(arrival.Sub(*departure) / time.Minute)
	} else {
		// No timed pair anywhere: sum what the legs know. A leg with
		// neither a duration nor both instants contributes zero.
		for i := range legs {
			leg := &legs[i]
			switch {
			case leg.DurationMinutes != nil:
				total += *leg.DurationMinutes
			case leg.DepartureTime != nil && leg.ArrivalTime != nil:
				total += int(leg.ArrivalTime.Sub(*leg.DepartureTime) / time.Minute)
			}
		}
	}

	transit := 0
	for i := range legs {
		if !isWalking(legs[i].Mode) {
			transit++
		}
	}
	transfers := transit - 1
	if transfers < 0 {
		transfers = 0
	}

	return &journey.Trip{
		Legs:                 legs,
		TotalDurationMinutes: total,
		DepartureTime:        departure,
		ArrivalTime:          arrival,
		Transfers:            transfers,
	}
}

// isWalking reports whether a leg neither counts as a transfer nor
// reduces the count of others.
func isWalking(mode string) bool {
	return mode == journey.ModeWalk || mode == journey.ModeWalking
}
