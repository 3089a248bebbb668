package decoder

import (
	"testing"
	"time"
)

const tripResponseXML = `<?xml version="1.0" encoding="UTF-8"?>
<siri:OJP xmlns:siri="http://www.siri.org.uk/siri" xmlns:ojp="http://www.vdv.de/ojp" version="2.0">
 <siri:OJPResponse>
  <siri:ServiceDelivery>
   <siri:ResponseTimestamp>2025-06-20T07:00:00Z</siri:ResponseTimestamp>
   <ojp:OJPTripDelivery>
    <ojp:TripResult>
     <ojp:Id>TR-1</ojp:Id>
     <ojp:Trip>
      <ojp:Leg>
       <ojp:TimedLeg>
        <ojp:LegBoard>
         <siri:StopPointRef>8503091</siri:StopPointRef>
         <ojp:StopPointName><ojp:Text>Zürich Giesshübel</ojp:Text></ojp:StopPointName>
         <ojp:ServiceDeparture><ojp:TimetabledTime>2025-06-20T09:00:00Z</ojp:TimetabledTime></ojp:ServiceDeparture>
        </ojp:LegBoard>
        <ojp:LegAlight>
         <siri:StopPointRef>8503000</siri:StopPointRef>
         <ojp:StopPointName><ojp:Text>Zürich HB</ojp:Text></ojp:StopPointName>
         <ojp:ServiceArrival><ojp:TimetabledTime>2025-06-20T09:08:00Z</ojp:TimetabledTime></ojp:ServiceArrival>
        </ojp:LegAlight>
        <ojp:Service>
         <ojp:Mode><ojp:PtMode>rail</ojp:PtMode><siri:RailSubmode>suburbanRailway</siri:RailSubmode></ojp:Mode>
         <ojp:PublishedServiceName><ojp:Text>S4</ojp:Text></ojp:PublishedServiceName>
         <ojp:DestinationText><ojp:Text>Zürich HB</ojp:Text></ojp:DestinationText>
        </ojp:Service>
       </ojp:TimedLeg>
      </ojp:Leg>
      <ojp:Leg>
       <ojp:TransferLeg>
        <ojp:TransferType>walk</ojp:TransferType>
        <ojp:LegStart><ojp:Name><ojp:Text>Zürich HB</ojp:Text></ojp:Name></ojp:LegStart>
        <ojp:LegEnd><ojp:Name><ojp:Text>Zürich, Bahnhofquai</ojp:Text></ojp:Name></ojp:LegEnd>
        <ojp:Duration>PT5M</ojp:Duration>
       </ojp:TransferLeg>
      </ojp:Leg>
     </ojp:Trip>
    </ojp:TripResult>
    <ojp:TripResult>
     <ojp:Id>TR-2</ojp:Id>
     <ojp:Trip>
      <ojp:Leg>
       <ojp:Duration>PT5M</ojp:Duration>
      </ojp:Leg>
     </ojp:Trip>
    </ojp:TripResult>
   </ojp:OJPTripDelivery>
  </siri:ServiceDelivery>
 </siri:OJPResponse>
</siri:OJP>`

const locationResponseXML = `<?xml version="1.0" encoding="UTF-8"?>
<siri:OJP xmlns:siri="http://www.siri.org.uk/siri" xmlns:ojp="http://www.vdv.de/ojp" version="2.0">
 <siri:OJPResponse>
  <siri:ServiceDelivery>
   <ojp:OJPLocationInformationDelivery>
    <ojp:PlaceResult>
     <ojp:Place>
      <ojp:Name><ojp:Text>Zürich HB</ojp:Text></ojp:Name>
      <ojp:StopPlace>
       <ojp:StopPlaceRef>8503000</ojp:StopPlaceRef>
       <ojp:StopPlaceName><ojp:Text>Zürich HB</ojp:Text></ojp:StopPlaceName>
      </ojp:StopPlace>
      <ojp:GeoPosition>
       <siri:Longitude>8.540192</siri:Longitude>
       <siri:Latitude>47.378177</siri:Latitude>
      </ojp:GeoPosition>
     </ojp:Place>
     <ojp:Probability>0.92</ojp:Probability>
    </ojp:PlaceResult>
    <ojp:PlaceResult>
     <ojp:Place>
      <ojp:StopPlace>
       <ojp:StopPlaceRef>8591105</ojp:StopPlaceRef>
       <ojp:StopPlaceName><ojp:Text>Zürich, Central</ojp:Text></ojp:StopPlaceName>
      </ojp:StopPlace>
     </ojp:Place>
    </ojp:PlaceResult>
    <ojp:PlaceResult>
     <ojp:Place>
      <ojp:GeoPosition>
       <siri:Longitude>8.54</siri:Longitude>
       <siri:Latitude>47.37</siri:Latitude>
      </ojp:GeoPosition>
     </ojp:Place>
    </ojp:PlaceResult>
   </ojp:OJPLocationInformationDelivery>
  </siri:ServiceDelivery>
 </siri:OJPResponse>
</siri:OJP>`

func TestDecodeTripResponse(t *testing.T) {
	d := NewDecoder(Options{})

	res := d.DecodeTripResponse([]byte(tripResponseXML))

	if !res.Success {
		t.Fatalf("success = false, error: %s", res.ErrorMessage)
	}
	if res.ErrorMessage != "" {
		t.Errorf("error message should be absent on success, got %q", res.ErrorMessage)
	}
	if res.Timestamp.IsZero() {
		t.Error("envelope timestamp should be set")
	}
	// second result has no decodable leg and is skipped
	if len(res.Trips) != 1 {
		t.Fatalf("trips = %d, want 1", len(res.Trips))
	}

	trip := res.Trips[0]
	if len(trip.Legs) != 2 {
		t.Fatalf("legs = %d, want 2", len(trip.Legs))
	}
	if trip.Legs[0].Mode != "s_bahn" {
		t.Errorf("first leg mode = %q, want s_bahn", trip.Legs[0].Mode)
	}
	if trip.Legs[1].Mode != "walk" {
		t.Errorf("second leg mode = %q, want walk", trip.Legs[1].Mode)
	}
	if trip.Transfers != 0 {
		t.Errorf("transfers = %d, want 0", trip.Transfers)
	}
	if trip.TotalDurationMinutes != 8 {
		t.Errorf("total duration = %d, want 8", trip.TotalDurationMinutes)
	}
	wantDep := time.Date(2025, 6, 20, 9, 0, 0, 0, time.UTC)
	if trip.DepartureTime == nil || !trip.DepartureTime.Equal(wantDep) {
		t.Errorf("departure = %v, want %v", trip.DepartureTime, wantDep)
	}
	wantArr := time.Date(2025, 6, 20, 9, 8, 0, 0, time.UTC)
	if trip.ArrivalTime == nil || !trip.ArrivalTime.Equal(wantArr) {
		t.Errorf("arrival = %v, want %v", trip.ArrivalTime, wantArr)
	}
}

func TestDecodeTripResponse_MalformedDocument(t *testing.T) {
	d := NewDecoder(Options{})

	for _, data := range []string{"", "not xml at all", "<siri:OJP><unclosed"} {
		res := d.DecodeTripResponse([]byte(data))
		if res.Success {
			t.Errorf("success = true for %q, want false", data)
		}
		if res.ErrorMessage == "" {
			t.Errorf("error message missing for %q", data)
		}
		if len(res.Trips) != 0 {
			t.Errorf("trips = %d for %q, want none", len(res.Trips), data)
		}
	}
}

func TestDecodeTripResponse_NoResults(t *testing.T) {
	d := NewDecoder(Options{})

	res := d.DecodeTripResponse([]byte(`<siri:OJP xmlns:siri="http://www.siri.org.uk/siri"></siri:OJP>`))
	if !res.Success {
		t.Fatalf("well-formed document without results is still a success, error: %s", res.ErrorMessage)
	}
	if res.Trips == nil || len(res.Trips) != 0 {
		t.Errorf("trips = %v, want empty non-nil collection", res.Trips)
	}
}

func TestDecodeLocationResponse(t *testing.T) {
	d := NewDecoder(Options{})

	res := d.DecodeLocationResponse([]byte(locationResponseXML))

	if !res.Success {
		t.Fatalf("success = false, error: %s", res.ErrorMessage)
	}
	// third result resolves no name and is skipped
	if len(res.Locations) != 2 {
		t.Fatalf("locations = %d, want 2", len(res.Locations))
	}

	first := res.Locations[0]
	if first.Name != "Zürich HB" || first.ID != "8503000" {
		t.Errorf("first location = %+v", first)
	}
	if first.Coordinates == nil || first.Coordinates.Longitude != 8.540192 {
		t.Errorf("first coordinates = %+v", first.Coordinates)
	}
	if first.Probability == nil || *first.Probability != 0.92 {
		t.Errorf("first probability = %v, want 0.92", first.Probability)
	}

	second := res.Locations[1]
	if second.Name != "Zürich, Central" {
		t.Errorf("second name = %q, want stop place fallback", second.Name)
	}
	if second.Probability != nil {
		t.Errorf("second probability = %v, want absent", second.Probability)
	}
}

func TestDecodeLocationResponse_MalformedDocument(t *testing.T) {
	d := NewDecoder(Options{})

	res := d.DecodeLocationResponse([]byte("<broken"))
	if res.Success {
		t.Error("success = true, want false")
	}
	if res.ErrorMessage == "" {
		t.Error("error message missing")
	}
	if len(res.Locations) != 0 {
		t.Errorf("locations = %d, want none", len(res.Locations))
	}
}
