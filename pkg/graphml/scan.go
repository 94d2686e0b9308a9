package graphml

import (
	"encoding/xml"
	"errors"
	"io"

	errs "github.com/matzehuels/graphml2gv/pkg/errors"
)

// handler receives scanner events in document order.
type handler interface {
	onOpen(name string, attrs []Attr)
	onClose(name string)
	onText(p []byte)
}

// scanner feeds a markup stream to a handler one token at a time.
type scanner struct {
	dec *xml.Decoder
}

func newScanner(r io.Reader) *scanner {
	return &scanner{dec: xml.NewDecoder(r)}
}

// line returns the current input line.
func (s *scanner) line() int {
	line, _ := s.dec.InputPos()
	return line
}

// run scans until the end of input. Malformed markup is reported as a
// MALFORMED_DOCUMENT error carrying the line the scanner stopped at.
func (s *scanner) run(h handler) error {
	for {
		tok, err := s.dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			var se *xml.SyntaxError
			if errors.As(err, &se) {
				return errs.Malformed(se.Line, se.Msg)
			}
			return errs.Wrap(errs.ErrCodeMalformed, err, "read document at line %d", s.line())
		}
		switch t := tok.(type) {
		case xml.StartElement:
			h.onOpen(t.Name.Local, attrsOf(t.Attr))
		case xml.EndElement:
			h.onClose(t.Name.Local)
		case xml.CharData:
			h.onText(t)
		}
	}
}

// attrsOf keeps attribute order and drops namespace declarations.
func attrsOf(in []xml.Attr) []Attr {
	out := make([]Attr, 0, len(in))
	for _, a := range in {
		if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
			continue
		}
		out = append(out, Attr{Key: a.Name.Local, Value: a.Value})
	}
	return out
}
