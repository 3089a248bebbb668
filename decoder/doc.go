// Package decoder is the main entry point for OJP-to-journey decoding.
//
// A Decoder takes one complete OJP 2.0 response document and produces a
// normalized journey response: trips with legs and locations for trip
// responses, plain locations for location information responses.
//
// Failure handling is tiered. A field that is absent or malformed
// degrades to its default, a leg or place that cannot reach its minimal
// shape is dropped without touching its siblings, and only a document
// that does not parse at all flips the envelope to failure.
//
// Basic setup:
//
//	d := decoder.NewDecoder(decoder.Options{})
//	res := d.DecodeTripResponse(data)
//
// A Decoder is immutable after construction and safe for concurrent use;
// every call owns its own document tree.
package decoder
