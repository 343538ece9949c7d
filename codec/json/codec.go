// SPDX-FileCopyrightText: 2024 The xmlvalue Authors
//
// SPDX-License-Identifier: MIT

// Package json converts value graphs to and from JSON. JSON has fewer
// types than the XML grammar: integers decode as Int64, other numbers as
// Float64, arrays as List and objects as Map.
package json // import "github.com/ssbc/xmlvalue/codec/json"

import (
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"

	"github.com/ssbc/xmlvalue"
	cdc "github.com/ssbc/xmlvalue/codec"
)

// NewCodec creates a json codec. Indent is used for Marshal and encoders;
// an empty string produces compact output.
func NewCodec(indent string) cdc.Codec {
	return &codec{indent: indent}
}

type codec struct {
	indent string
}

func (c *codec) Marshal(v xmlvalue.Value) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if c.indent == "" {
		data, err = json.Marshal(xmlvalue.ToNative(v))
	} else {
		data, err = json.MarshalIndent(xmlvalue.ToNative(v), "", c.indent)
	}
	return data, errors.Wrap(err, "json codec: encode failed")
}

func (c *codec) Unmarshal(data []byte) (xmlvalue.Value, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("json codec: invalid json")
	}
	return FromResult(gjson.ParseBytes(data)), nil
}

func (c *codec) NewEncoder(w io.Writer) cdc.Encoder {
	enc := json.NewEncoder(w)
	enc.SetIndent("", c.indent)
	return &encoder{enc: enc}
}

func (c *codec) NewDecoder(r io.Reader) cdc.Decoder {
	return &decoder{dec: json.NewDecoder(r)}
}

type encoder struct {
	enc *json.Encoder
}

func (enc *encoder) Encode(v xmlvalue.Value) error {
	return errors.Wrap(enc.enc.Encode(xmlvalue.ToNative(v)), "json codec: encode failed")
}

type decoder struct {
	dec *json.Decoder
}

// Decode splits the stream into documents and converts each one.
func (dec *decoder) Decode() (xmlvalue.Value, error) {
	var raw json.RawMessage
	if err := dec.dec.Decode(&raw); err != nil {
		if err == io.EOF {
			return nil, err
		}
		return nil, errors.Wrap(err, "json codec: decode failed")
	}
	return FromResult(gjson.ParseBytes(raw)), nil
}

// FromResult converts a parsed gjson document into a value graph.
func FromResult(res gjson.Result) xmlvalue.Value {
	switch res.Type {
	case gjson.False:
		return xmlvalue.Bool(false)
	case gjson.True:
		return xmlvalue.Bool(true)
	case gjson.String:
		return xmlvalue.String(res.Str)
	case gjson.Number:
		if isIntLiteral(res.Raw) {
			if i, err := strconv.ParseInt(res.Raw, 10, 64); err == nil {
				return xmlvalue.Int64(i)
			}
		}
		return xmlvalue.Float64(res.Num)
	case gjson.JSON:
		if res.IsArray() {
			elems := res.Array()
			l := make(xmlvalue.List, len(elems))
			for i, e := range elems {
				l[i] = FromResult(e)
			}
			return l
		}
		m := make(xmlvalue.Map)
		res.ForEach(func(k, v gjson.Result) bool {
			m[k.String()] = FromResult(v)
			return true
		})
		return m
	}
	return xmlvalue.Null{}
}

func isIntLiteral(raw string) bool {
	return raw != "" && !strings.ContainsAny(raw, ".eE")
}
