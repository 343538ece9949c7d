// SPDX-FileCopyrightText: 2024 The xmlvalue Authors
//
// SPDX-License-Identifier: MIT

// Package msgpack provides a hook pair that carries Opaque values through
// the XML grammar as hex encoded msgpack:
//
//	<msgpack name="endpoint" num="12">82a4686f7374...</msgpack>
package msgpack // import "github.com/ssbc/xmlvalue/ext/msgpack"

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/ugorji/go/codec"

	"github.com/ssbc/xmlvalue"
	"github.com/ssbc/xmlvalue/codec/xmlcodec"
)

// DefaultTag is the element name used unless WithTag says otherwise.
const DefaultTag = "msgpack"

// Option configures Hooks.
type Option func(*Hooks)

// WithTag changes the element name.
func WithTag(tag string) Option {
	return func(h *Hooks) { h.tag = tag }
}

// Hooks implements both xmlvalue.WriteHook and xmlvalue.ReadHook.
type Hooks struct {
	tag    string
	handle *codec.MsgpackHandle
}

var (
	_ xmlvalue.WriteHook = (*Hooks)(nil)
	_ xmlvalue.ReadHook  = (*Hooks)(nil)
)

// New returns Hooks configured by opts.
func New(opts ...Option) *Hooks {
	var mh codec.MsgpackHandle
	mh.WriteExt = true
	mh.RawToString = true
	mh.SignedInteger = true
	mh.MapType = reflect.TypeOf(map[string]interface{}(nil))

	h := &Hooks{tag: DefaultTag, handle: &mh}
	for _, o := range opts {
		o(h)
	}
	return h
}

// CodecOptions installs h as both hooks of an xmlcodec.Codec.
func (h *Hooks) CodecOptions() []xmlcodec.Option {
	return []xmlcodec.Option{
		xmlcodec.WithWriteHook(h),
		xmlcodec.WithReadHook(h),
	}
}

func (h *Hooks) WriteValue(sink xmlvalue.Sink, name string, named bool, v interface{}) error {
	var data []byte
	if err := codec.NewEncoderBytes(&data, h.handle).Encode(v); err != nil {
		return errors.Wrapf(err, "msgpack: encoding %T failed", v)
	}

	if err := xmlvalue.WriteStart(sink, h.tag, name, named); err != nil {
		return err
	}
	if err := sink.Attribute(xmlvalue.AttrNum, strconv.Itoa(len(data))); err != nil {
		return err
	}
	if len(data) > 0 {
		if err := sink.Text(xmlvalue.EncodeHex(data)); err != nil {
			return err
		}
	}
	return sink.EndTag(h.tag)
}

func (h *Hooks) ReadValue(src xmlvalue.Source, tag string) (xmlvalue.Value, error) {
	if tag != h.tag {
		return nil, &xmlvalue.Error{Kind: xmlvalue.UnknownTag, Found: tag}
	}

	numStr, ok := src.Attr(xmlvalue.AttrNum)
	if !ok {
		return nil, &xmlvalue.Error{Kind: xmlvalue.MissingAttribute, Tag: tag, Attr: xmlvalue.AttrNum}
	}
	num, err := strconv.Atoi(numStr)
	if err != nil || num < 0 {
		return nil, &xmlvalue.Error{Kind: xmlvalue.MalformedNumber, Tag: tag, Attr: xmlvalue.AttrNum, Found: numStr, Err: err}
	}

	var text strings.Builder
	for {
		ev, err := src.Next()
		if err != nil {
			return nil, errors.Wrapf(err, "msgpack: reading <%s> failed", tag)
		}
		switch ev {
		case xmlvalue.Text:
			text.WriteString(src.Text())
			continue
		case xmlvalue.StartTag:
			return nil, &xmlvalue.Error{Kind: xmlvalue.UnexpectedStartTag, Tag: tag, Found: src.Name()}
		case xmlvalue.EndDocument:
			return nil, &xmlvalue.Error{Kind: xmlvalue.UnexpectedEndOfStream, Tag: tag}
		}
		// end tag; the Reader checks that it is ours
		break
	}

	data, err := xmlvalue.DecodeHex(strings.TrimSpace(text.String()), num)
	if err != nil {
		return nil, &xmlvalue.Error{Kind: xmlvalue.InvalidByteArrayEncoding, Tag: tag, Err: err}
	}

	var v interface{}
	if err := codec.NewDecoderBytes(data, h.handle).Decode(&v); err != nil {
		return nil, errors.Wrap(err, "msgpack: decoding payload failed")
	}
	return xmlvalue.Opaque{V: v}, nil
}
