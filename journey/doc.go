// Package journey defines the normalized journey model the decoder
// produces: coordinates, locations, legs, trips and the response
// envelopes. All types are plain data records with no vendor field
// names left, ready for direct serialization by the caller.
package journey
