// SPDX-FileCopyrightText: 2024 The xmlvalue Authors
//
// SPDX-License-Identifier: MIT

package xmlvalue

import "github.com/pkg/errors"

// ValueMarshaler is implemented by types that can describe themselves as a Value.
type ValueMarshaler interface {
	MarshalValue() (Value, error)
}

// ValueUnmarshaler is implemented by types that can load themselves from a Value.
type ValueUnmarshaler interface {
	UnmarshalValue(Value) error
}

// FromNative converts builtin Go values into a Value graph. Values that
// already are a Value are returned as is, ValueMarshalers convert
// themselves, and anything without a built-in mapping becomes Opaque.
func FromNative(x interface{}) (Value, error) {
	switch tx := x.(type) {
	case nil:
		return Null{}, nil
	case Value:
		return tx, nil
	case ValueMarshaler:
		v, err := tx.MarshalValue()
		return v, errors.Wrapf(err, "xmlvalue: marshaling %T failed", x)
	case string:
		return String(tx), nil
	case int32:
		return Int32(tx), nil
	case int:
		return Int64(tx), nil
	case int64:
		return Int64(tx), nil
	case float32:
		return Float32(tx), nil
	case float64:
		return Float64(tx), nil
	case bool:
		return Bool(tx), nil
	case []byte:
		return ByteArray(tx), nil
	case []int32:
		return Int32Array(tx), nil
	case []int64:
		return Int64Array(tx), nil
	case []float64:
		return Float64Array(tx), nil
	case []string:
		return StringArray(tx), nil
	case []bool:
		return BoolArray(tx), nil
	case []interface{}:
		l := make(List, len(tx))
		for i, e := range tx {
			v, err := FromNative(e)
			if err != nil {
				return nil, errors.Wrapf(err, "xmlvalue: list element %d", i)
			}
			l[i] = v
		}
		return l, nil
	case map[string]interface{}:
		m := make(Map, len(tx))
		for k, e := range tx {
			v, err := FromNative(e)
			if err != nil {
				return nil, errors.Wrapf(err, "xmlvalue: map entry %q", k)
			}
			m[k] = v
		}
		return m, nil
	}
	return Opaque{V: x}, nil
}

// ToNative converts v into builtin Go values. Lists and sets become
// []interface{}, maps map[string]interface{} and Opaque yields its payload.
func ToNative(v Value) interface{} {
	switch tv := v.(type) {
	case nil, Null:
		return nil
	case String:
		return string(tv)
	case Int32:
		return int32(tv)
	case Int64:
		return int64(tv)
	case Float32:
		return float32(tv)
	case Float64:
		return float64(tv)
	case Bool:
		return bool(tv)
	case ByteArray:
		return []byte(tv)
	case Int32Array:
		return []int32(tv)
	case Int64Array:
		return []int64(tv)
	case Float64Array:
		return []float64(tv)
	case StringArray:
		return []string(tv)
	case BoolArray:
		return []bool(tv)
	case List:
		return nativeSlice(tv)
	case Set:
		return nativeSlice(tv)
	case Map:
		m := make(map[string]interface{}, len(tv))
		for k, e := range tv {
			m[k] = ToNative(e)
		}
		return m
	case Opaque:
		return tv.V
	}
	return nil
}

func nativeSlice(vs []Value) []interface{} {
	out := make([]interface{}, len(vs))
	for i, e := range vs {
		out[i] = ToNative(e)
	}
	return out
}

// Unmarshal loads v into target, which must implement ValueUnmarshaler.
func Unmarshal(v Value, target interface{}) error {
	u, ok := target.(ValueUnmarshaler)
	if !ok {
		return errors.Errorf("xmlvalue: %T does not implement ValueUnmarshaler", target)
	}
	return u.UnmarshalValue(v)
}
