// SPDX-FileCopyrightText: 2024 The xmlvalue Authors
//
// SPDX-License-Identifier: MIT

package xmlvalue

import (
	"fmt"
	"sort"
	"strconv"
)

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithWriteHook installs the hook used for Opaque values.
func WithWriteHook(h WriteHook) WriterOption {
	return func(w *Writer) {
		w.hook = h
	}
}

// Writer serializes values depth first into a Sink.
// It holds no per-stream state and can be shared.
type Writer struct {
	hook WriteHook
}

// NewWriter returns a Writer configured by opts.
func NewWriter(opts ...WriterOption) *Writer {
	w := &Writer{}
	for _, o := range opts {
		o(w)
	}
	return w
}

// Write writes v without a name attribute.
func (w *Writer) Write(sink Sink, v Value) error {
	return w.write(sink, v, "", false)
}

// WriteNamed writes v labelled with name.
func (w *Writer) WriteNamed(sink Sink, name string, v Value) error {
	return w.write(sink, v, name, true)
}

func (w *Writer) write(sink Sink, v Value, name string, named bool) error {
	switch tv := v.(type) {
	case nil, Null:
		return writeEmpty(sink, TagNull, name, named)

	case String:
		if err := WriteStart(sink, TagString, name, named); err != nil {
			return err
		}
		if tv != "" {
			if err := sink.Text(string(tv)); err != nil {
				return err
			}
		}
		return sink.EndTag(TagString)

	case Int32:
		return writeScalar(sink, TagInt, name, named, strconv.FormatInt(int64(tv), 10))
	case Int64:
		return writeScalar(sink, TagLong, name, named, strconv.FormatInt(int64(tv), 10))
	case Float32:
		return writeScalar(sink, TagFloat, name, named, strconv.FormatFloat(float64(tv), 'g', -1, 32))
	case Float64:
		return writeScalar(sink, TagDouble, name, named, strconv.FormatFloat(float64(tv), 'g', -1, 64))
	case Bool:
		return writeScalar(sink, TagBoolean, name, named, strconv.FormatBool(bool(tv)))

	case ByteArray:
		if err := WriteStart(sink, TagByteArray, name, named); err != nil {
			return err
		}
		if err := sink.Attribute(AttrNum, strconv.Itoa(len(tv))); err != nil {
			return err
		}
		if len(tv) > 0 {
			if err := sink.Text(EncodeHex(tv)); err != nil {
				return err
			}
		}
		return sink.EndTag(TagByteArray)

	case Int32Array:
		return writeItems(sink, TagIntArray, name, named, tv, func(i int32) string {
			return strconv.FormatInt(int64(i), 10)
		})
	case Int64Array:
		return writeItems(sink, TagLongArray, name, named, tv, func(i int64) string {
			return strconv.FormatInt(i, 10)
		})
	case Float64Array:
		return writeItems(sink, TagDoubleArray, name, named, tv, func(f float64) string {
			return strconv.FormatFloat(f, 'g', -1, 64)
		})
	case StringArray:
		return writeItems(sink, TagStringArray, name, named, tv, func(s string) string { return s })
	case BoolArray:
		return writeItems(sink, TagBooleanArray, name, named, tv, strconv.FormatBool)

	case List:
		return w.writeChildren(sink, TagList, name, named, tv)
	case Set:
		return w.writeChildren(sink, TagSet, name, named, tv)

	case Map:
		if err := WriteStart(sink, TagMap, name, named); err != nil {
			return err
		}
		keys := make([]string, 0, len(tv))
		for k := range tv {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if err := w.write(sink, tv[k], k, true); err != nil {
				return err
			}
		}
		return sink.EndTag(TagMap)

	case Opaque:
		if w.hook == nil {
			return &Error{Kind: UnsupportedValueType, Found: fmt.Sprintf("%T", tv.V)}
		}
		return w.hook.WriteValue(sink, name, named, tv.V)
	}

	return &Error{Kind: UnsupportedValueType, Found: fmt.Sprintf("%T", v)}
}

func (w *Writer) writeChildren(sink Sink, tag, name string, named bool, children []Value) error {
	if err := WriteStart(sink, tag, name, named); err != nil {
		return err
	}
	for _, c := range children {
		if err := w.write(sink, c, "", false); err != nil {
			return err
		}
	}
	return sink.EndTag(tag)
}

func writeEmpty(sink Sink, tag, name string, named bool) error {
	if err := WriteStart(sink, tag, name, named); err != nil {
		return err
	}
	return sink.EndTag(tag)
}

func writeScalar(sink Sink, tag, name string, named bool, text string) error {
	if err := WriteStart(sink, tag, name, named); err != nil {
		return err
	}
	if err := sink.Attribute(AttrValue, text); err != nil {
		return err
	}
	return sink.EndTag(tag)
}

func writeItems[T any](sink Sink, tag, name string, named bool, items []T, format func(T) string) error {
	if err := WriteStart(sink, tag, name, named); err != nil {
		return err
	}
	if err := sink.Attribute(AttrNum, strconv.Itoa(len(items))); err != nil {
		return err
	}
	for _, it := range items {
		if err := sink.StartTag(TagItem); err != nil {
			return err
		}
		if err := sink.Attribute(AttrValue, format(it)); err != nil {
			return err
		}
		if err := sink.EndTag(TagItem); err != nil {
			return err
		}
	}
	return sink.EndTag(tag)
}
