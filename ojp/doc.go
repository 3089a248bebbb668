// Package ojp contains typed bindings for the subset of OJP 2.0 response
// elements the decoder consumes, plus the document-level parse step.
//
// The main entry is ParseDocument, which reads one complete response
// buffer and collects every TripResult and PlaceResult element,
// regardless of which delivery wraps them.
package ojp
