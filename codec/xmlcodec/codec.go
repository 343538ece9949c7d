// SPDX-FileCopyrightText: 2024 The xmlvalue Authors
//
// SPDX-License-Identifier: MIT

// Package xmlcodec is the byte level entry point to xmlvalue. It frames a
// single value as an indented UTF-8 XML document and reads it back.
package xmlcodec // import "github.com/ssbc/xmlvalue/codec/xmlcodec"

import (
	"bytes"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/ssbc/xmlvalue"
	cdc "github.com/ssbc/xmlvalue/codec"
	"github.com/ssbc/xmlvalue/xmlstream"
)

// Option configures a Codec.
type Option func(*Codec)

// WithWriteHook installs the hook used to write Opaque values.
func WithWriteHook(h xmlvalue.WriteHook) Option {
	return func(c *Codec) { c.writeOpts = append(c.writeOpts, xmlvalue.WithWriteHook(h)) }
}

// WithReadHook installs the hook used for unknown tags.
func WithReadHook(h xmlvalue.ReadHook) Option {
	return func(c *Codec) { c.readOpts = append(c.readOpts, xmlvalue.WithReadHook(h)) }
}

// WithMaxDepth limits nesting on decode.
func WithMaxDepth(n int) Option {
	return func(c *Codec) { c.readOpts = append(c.readOpts, xmlvalue.WithMaxDepth(n)) }
}

// WithIndent sets the indentation string. The empty string disables indentation.
func WithIndent(indent string) Option {
	return func(c *Codec) { c.indent = indent }
}

// Codec implements codec.Codec for the XML wire grammar.
type Codec struct {
	indent    string
	writeOpts []xmlvalue.WriterOption
	readOpts  []xmlvalue.ReaderOption

	w *xmlvalue.Writer
	r *xmlvalue.Reader
}

var _ cdc.Codec = (*Codec)(nil)

// New returns a Codec configured by opts.
func New(opts ...Option) *Codec {
	c := &Codec{indent: xmlstream.DefaultIndent}
	for _, o := range opts {
		o(c)
	}
	c.w = xmlvalue.NewWriter(c.writeOpts...)
	c.r = xmlvalue.NewReader(c.readOpts...)
	return c
}

func (c *Codec) Marshal(v xmlvalue.Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := c.EncodeTo(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (c *Codec) Unmarshal(data []byte) (xmlvalue.Value, error) {
	return c.DecodeFrom(bytes.NewReader(data))
}

// EncodeTo writes v as a complete document to w.
func (c *Codec) EncodeTo(w io.Writer, v xmlvalue.Value) error {
	sink := xmlstream.NewSink(w, c.indent)
	if err := sink.StartDocument(); err != nil {
		return err
	}
	if err := c.w.Write(sink, v); err != nil {
		return err
	}
	return sink.EndDocument()
}

// DecodeFrom reads the document in r and returns its top-level value.
// Anything but whitespace, comments and processing instructions after the
// value is an error.
func (c *Codec) DecodeFrom(r io.Reader) (xmlvalue.Value, error) {
	src := xmlstream.NewSource(r)
	v, err := c.r.Read(src)
	if err != nil {
		return nil, err
	}
	if err := expectEnd(src); err != nil {
		return nil, err
	}
	return v, nil
}

func expectEnd(src *xmlstream.Source) error {
	for {
		ev, err := src.Next()
		if err != nil {
			return errors.Wrap(err, "xmlcodec: reading after top-level value failed")
		}
		switch ev {
		case xmlvalue.EndDocument:
			return nil
		case xmlvalue.StartTag:
			return &xmlvalue.Error{Kind: xmlvalue.UnexpectedStartTag, Found: src.Name()}
		case xmlvalue.EndTag:
			return &xmlvalue.Error{Kind: xmlvalue.UnexpectedEndTag, Found: src.Name()}
		case xmlvalue.Text:
			if strings.TrimSpace(src.Text()) != "" {
				return &xmlvalue.Error{Kind: xmlvalue.UnexpectedText, Found: src.Text()}
			}
		}
	}
}

func (c *Codec) NewEncoder(w io.Writer) cdc.Encoder {
	return &encoder{
		sink: xmlstream.NewSink(w, c.indent),
		w:    c.w,
	}
}

func (c *Codec) NewDecoder(r io.Reader) cdc.Decoder {
	return &decoder{
		src: xmlstream.NewSource(r),
		r:   c.r,
	}
}

type encoder struct {
	sink    *xmlstream.Sink
	w       *xmlvalue.Writer
	started bool
}

// Encode writes v as the next top-level element. The declaration is
// written before the first one.
func (enc *encoder) Encode(v xmlvalue.Value) error {
	if !enc.started {
		enc.started = true
		if err := enc.sink.StartDocument(); err != nil {
			return err
		}
	}
	if err := enc.w.Write(enc.sink, v); err != nil {
		return err
	}
	return enc.sink.Flush()
}

type decoder struct {
	src *xmlstream.Source
	r   *xmlvalue.Reader
}

// Decode returns the next top-level value, or io.EOF when only whitespace
// remains.
func (dec *decoder) Decode() (xmlvalue.Value, error) {
	ev, err := dec.src.Next()
	for err == nil {
		if ev == xmlvalue.EndDocument {
			return nil, io.EOF
		}
		if ev != xmlvalue.Text || strings.TrimSpace(dec.src.Text()) != "" {
			break
		}
		ev, err = dec.src.Next()
	}
	if err != nil {
		return nil, errors.Wrap(err, "xmlcodec: decode failed")
	}
	return dec.r.Read(dec.src)
}
