package ojp

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
)

// Namespaces used by OJP response documents.
const (
	NamespaceOJP  = "http://www.vdv.de/ojp"
	NamespaceSIRI = "http://www.siri.org.uk/siri"
)

var errNoElements = errors.New("document contains no elements")

// Document holds the result elements collected from one response document.
type Document struct {
	TripResults  []TripResult
	PlaceResults []PlaceResult
}

// ParseDocument walks one OJP response document and collects every
// TripResult and PlaceResult element, wherever the delivery nests them.
// It fails only when the buffer is not a well-formed XML document; a
// well-formed document with no result elements yields an empty Document.
func ParseDocument(data []byte) (*Document, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	doc := &Document{}
	seen := false
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		se, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		seen = true
		switch se.Name.Local {
		case "TripResult":
			var tr TripResult
			if err := dec.DecodeElement(&tr, &se); err != nil {
				return nil, err
			}
			doc.TripResults = append(doc.TripResults, tr)
		case "PlaceResult":
			var pr PlaceResult
			if err := dec.DecodeElement(&pr, &se); err != nil {
				return nil, err
			}
			doc.PlaceResults = append(doc.PlaceResults, pr)
		}
	}
	if !seen {
		return nil, errNoElements
	}
	return doc, nil
}
