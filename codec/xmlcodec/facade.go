// SPDX-FileCopyrightText: 2024 The xmlvalue Authors
//
// SPDX-License-Identifier: MIT

package xmlcodec

import (
	"bytes"
	"io"

	"github.com/ssbc/xmlvalue"
)

// Encode serializes v into a standalone document.
func Encode(v xmlvalue.Value, opts ...Option) ([]byte, error) {
	return New(opts...).Marshal(v)
}

// EncodeTo writes v as a standalone document to w. Closing w is up to the caller.
func EncodeTo(w io.Writer, v xmlvalue.Value, opts ...Option) error {
	return New(opts...).EncodeTo(w, v)
}

// Decode reads the top-level value of the document in data.
func Decode(data []byte, opts ...Option) (xmlvalue.Value, error) {
	return New(opts...).Unmarshal(data)
}

// DecodeFrom reads the top-level value of the document in r.
func DecodeFrom(r io.Reader, opts ...Option) (xmlvalue.Value, error) {
	return New(opts...).DecodeFrom(r)
}

// EncodeMap writes m as a document whose root is a map.
func EncodeMap(w io.Writer, m xmlvalue.Map, opts ...Option) error {
	return EncodeTo(w, m, opts...)
}

// EncodeList writes l as a document whose root is a list.
func EncodeList(w io.Writer, l xmlvalue.List, opts ...Option) error {
	return EncodeTo(w, l, opts...)
}

// DecodeMap reads a document whose root must be a map.
func DecodeMap(r io.Reader, opts ...Option) (xmlvalue.Map, error) {
	v, err := expect(r, xmlvalue.KindMap, opts)
	if err != nil {
		return nil, err
	}
	return v.(xmlvalue.Map), nil
}

// DecodeList reads a document whose root must be a list.
func DecodeList(r io.Reader, opts ...Option) (xmlvalue.List, error) {
	v, err := expect(r, xmlvalue.KindList, opts)
	if err != nil {
		return nil, err
	}
	return v.(xmlvalue.List), nil
}

// DecodeSet reads a document whose root must be a set.
func DecodeSet(r io.Reader, opts ...Option) (xmlvalue.Set, error) {
	v, err := expect(r, xmlvalue.KindSet, opts)
	if err != nil {
		return nil, err
	}
	return v.(xmlvalue.Set), nil
}

// DecodeMapBytes is DecodeMap for an in-memory document.
func DecodeMapBytes(data []byte, opts ...Option) (xmlvalue.Map, error) {
	return DecodeMap(bytes.NewReader(data), opts...)
}

func expect(r io.Reader, k xmlvalue.Kind, opts []Option) (xmlvalue.Value, error) {
	v, err := DecodeFrom(r, opts...)
	if err != nil {
		return nil, err
	}
	if got := xmlvalue.KindOf(v); got != k {
		return nil, &xmlvalue.Error{
			Kind:     xmlvalue.UnexpectedTopLevel,
			Expected: k.String(),
			Found:    got.String(),
		}
	}
	return v, nil
}
