// Package utils provides internal utility functions for the OJP decoder.
// This package is not intended to be imported by external code.
//
// It contains:
//   - ISO 8601 timestamp parsing with ordered layout fallback
//   - Restricted ISO 8601 partial-duration parsing (PT[nH][nM])
package utils
