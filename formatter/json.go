package formatter

import "encoding/json"

type responseBuilder struct {
	indent bool
}

// NewResponseBuilder creates a builder for serializing decoded
// responses. With indent set the output is pretty-printed.
func NewResponseBuilder(indent bool) *responseBuilder {
	return &responseBuilder{indent: indent}
}

// BuildJSON serializes a decoded response envelope to JSON.
func (rb *responseBuilder) BuildJSON(res any) []byte {
	if rb.indent {
		b, _ := json.MarshalIndent(res, "", "  ")
		return b
	}
	b, _ := json.Marshal(res)
	return b
}
