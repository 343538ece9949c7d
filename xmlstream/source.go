// SPDX-FileCopyrightText: 2024 The xmlvalue Authors
//
// SPDX-License-Identifier: MIT

package xmlstream

import (
	"encoding/xml"
	"io"

	"github.com/pkg/errors"

	"github.com/ssbc/xmlvalue"
)

// Source is an xmlvalue.Source over an XML byte stream.
//
// It works on raw tokens, so mismatched end tags are reported as events
// instead of being rejected by the tokenizer. The XML declaration,
// comments and directives are skipped.
type Source struct {
	dec *xml.Decoder

	ev    xmlvalue.EventType
	name  string
	attrs []xml.Attr
	text  string

	depth int // of the current element
	open  int // elements started but not ended
}

var _ xmlvalue.Source = (*Source)(nil)

// NewSource returns a Source reading UTF-8 XML from r.
func NewSource(r io.Reader) *Source {
	dec := xml.NewDecoder(r)
	dec.Strict = true
	return &Source{dec: dec}
}

func (s *Source) Event() xmlvalue.EventType { return s.ev }

func (s *Source) Next() (xmlvalue.EventType, error) {
	if s.ev == xmlvalue.EndDocument {
		return s.ev, nil
	}

	for {
		tok, err := s.dec.RawToken()
		if err == io.EOF {
			s.ev = xmlvalue.EndDocument
			s.name, s.attrs, s.text = "", nil, ""
			s.depth = 0
			return s.ev, nil
		}
		if err != nil {
			return s.ev, errors.Wrapf(err, "xmlstream: token after line %d", s.line())
		}

		switch t := tok.(type) {
		case xml.StartElement:
			s.open++
			s.ev = xmlvalue.StartTag
			s.name = qualified(t.Name)
			s.attrs = t.Attr
			s.text = ""
			s.depth = s.open

		case xml.EndElement:
			s.ev = xmlvalue.EndTag
			s.name = qualified(t.Name)
			s.attrs = nil
			s.text = ""
			s.depth = s.open
			s.open--

		case xml.CharData:
			s.ev = xmlvalue.Text
			s.name, s.attrs = "", nil
			s.text = string(t)
			s.depth = s.open

		default:
			// declaration, comments, directives
			continue
		}
		return s.ev, nil
	}
}

func (s *Source) Name() string { return s.name }

func (s *Source) Attr(name string) (string, bool) {
	for _, a := range s.attrs {
		if a.Name.Space == "" && a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

func (s *Source) Text() string { return s.text }

func (s *Source) Depth() int { return s.depth }

func (s *Source) line() int {
	line, _ := s.dec.InputPos()
	return line
}

func qualified(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}
