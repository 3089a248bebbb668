// Package formatter serializes decoded journey responses for output.
//
// The decoded model carries json tags, so serialization is a plain
// encoding/json pass with an optional indented variant for humans.
package formatter
