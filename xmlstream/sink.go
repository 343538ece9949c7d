// SPDX-FileCopyrightText: 2024 The xmlvalue Authors
//
// SPDX-License-Identifier: MIT

package xmlstream

import (
	"encoding/xml"
	"io"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/ssbc/xmlvalue"
)

// DefaultIndent is the indentation used by the codec facade.
const DefaultIndent = "    "

// Sink is an xmlvalue.Sink writing UTF-8 XML.
//
// A start tag is held back until its first child event so that attributes
// can still be added to it.
type Sink struct {
	w   io.Writer
	enc *xml.Encoder

	started bool
	pending *xml.StartElement
	stack   []string
}

var _ xmlvalue.Sink = (*Sink)(nil)

// NewSink returns a Sink writing to w. An empty indent writes everything on
// one line.
func NewSink(w io.Writer, indent string) *Sink {
	enc := xml.NewEncoder(w)
	if indent != "" {
		enc.Indent("", indent)
	}
	return &Sink{w: w, enc: enc}
}

// StartDocument writes the XML declaration. It has to come first.
func (s *Sink) StartDocument() error {
	if s.started {
		return errors.New("xmlstream: StartDocument after content")
	}
	s.started = true
	_, err := io.WriteString(s.w, xml.Header)
	return errors.Wrap(err, "xmlstream: writing declaration failed")
}

// EndDocument checks that every tag was closed and flushes the output.
func (s *Sink) EndDocument() error {
	if err := s.flushStart(); err != nil {
		return err
	}
	if n := len(s.stack); n > 0 {
		return errors.Errorf("xmlstream: EndDocument with <%s> still open", s.stack[n-1])
	}
	if err := s.enc.Flush(); err != nil {
		return errors.Wrap(err, "xmlstream: flush failed")
	}
	_, err := io.WriteString(s.w, "\n")
	return errors.Wrap(err, "xmlstream: writing trailing newline failed")
}

func (s *Sink) StartTag(name string) error {
	if err := s.flushStart(); err != nil {
		return err
	}
	s.started = true
	s.pending = &xml.StartElement{Name: xml.Name{Local: name}}
	s.stack = append(s.stack, name)
	return nil
}

func (s *Sink) Attribute(name, value string) error {
	if s.pending == nil {
		return errors.Errorf("xmlstream: attribute %q outside of a start tag", name)
	}
	if !validChars(value) {
		return &xmlvalue.Error{Kind: xmlvalue.InvalidCharacter, Tag: s.pending.Name.Local, Attr: name, Found: value}
	}
	s.pending.Attr = append(s.pending.Attr, xml.Attr{Name: xml.Name{Local: name}, Value: value})
	return nil
}

func (s *Sink) Text(text string) error {
	if err := s.flushStart(); err != nil {
		return err
	}
	if len(s.stack) == 0 {
		return errors.New("xmlstream: text outside of an element")
	}
	if !validChars(text) {
		return &xmlvalue.Error{Kind: xmlvalue.InvalidCharacter, Tag: s.stack[len(s.stack)-1], Found: text}
	}
	return errors.Wrap(s.enc.EncodeToken(xml.CharData(text)), "xmlstream: writing text failed")
}

func (s *Sink) EndTag(name string) error {
	if err := s.flushStart(); err != nil {
		return err
	}
	n := len(s.stack)
	if n == 0 {
		return errors.Errorf("xmlstream: end tag </%s> without start tag", name)
	}
	if open := s.stack[n-1]; open != name {
		return errors.Errorf("xmlstream: end tag </%s> does not close <%s>", name, open)
	}
	s.stack = s.stack[:n-1]
	err := s.enc.EncodeToken(xml.EndElement{Name: xml.Name{Local: name}})
	return errors.Wrapf(err, "xmlstream: writing </%s> failed", name)
}

// Flush writes buffered output to the underlying writer.
func (s *Sink) Flush() error {
	if err := s.flushStart(); err != nil {
		return err
	}
	return errors.Wrap(s.enc.Flush(), "xmlstream: flush failed")
}

func (s *Sink) flushStart() error {
	if s.pending == nil {
		return nil
	}
	start := *s.pending
	s.pending = nil
	err := s.enc.EncodeToken(start)
	return errors.Wrapf(err, "xmlstream: writing <%s> failed", start.Name.Local)
}

// validChars reports whether s is valid UTF-8 made only of characters XML 1.0
// can carry. The encoder would replace anything else with U+FFFD.
func validChars(s string) bool {
	if !utf8.ValidString(s) {
		return false
	}
	for _, r := range s {
		switch {
		case r == '\t', r == '\n', r == '\r':
		case r >= 0x20 && r <= 0xD7FF:
		case r >= 0xE000 && r <= 0xFFFD:
		case r >= 0x10000 && r <= utf8.MaxRune:
		default:
			return false
		}
	}
	return true
}
