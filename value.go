// SPDX-FileCopyrightText: 2024 The xmlvalue Authors
//
// SPDX-License-Identifier: MIT

package xmlvalue // import "github.com/ssbc/xmlvalue"

import (
	"math"
	"reflect"
)

// Kind identifies the variant of a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindString
	KindInt32
	KindInt64
	KindFloat32
	KindFloat64
	KindBool
	KindByteArray
	KindInt32Array
	KindInt64Array
	KindFloat64Array
	KindStringArray
	KindBoolArray
	KindList
	KindSet
	KindMap
	KindOpaque
)

var kindNames = [...]string{
	KindNull:         "null",
	KindString:       "string",
	KindInt32:        "int32",
	KindInt64:        "int64",
	KindFloat32:      "float32",
	KindFloat64:      "float64",
	KindBool:         "bool",
	KindByteArray:    "byte-array",
	KindInt32Array:   "int32-array",
	KindInt64Array:   "int64-array",
	KindFloat64Array: "float64-array",
	KindStringArray:  "string-array",
	KindBoolArray:    "bool-array",
	KindList:         "list",
	KindSet:          "set",
	KindMap:          "map",
	KindOpaque:       "opaque",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Value is a node of a value graph. The set of implementations is closed;
// values outside of it are carried by Opaque and handled by hooks.
type Value interface {
	Kind() Kind

	isValue()
}

type (
	// Null is the absent value.
	Null struct{}

	String  string
	Int32   int32
	Int64   int64
	Float32 float32
	Float64 float64
	Bool    bool

	ByteArray    []byte
	Int32Array   []int32
	Int64Array   []int64
	Float64Array []float64
	StringArray  []string
	BoolArray    []bool

	// List is an ordered sequence. Its order survives a round trip.
	List []Value

	// Set is an unordered collection. The order of the slice is the write
	// order; readers make no promise about it.
	Set []Value

	// Map is a string keyed mapping.
	Map map[string]Value

	// Opaque carries a value the core grammar has no representation for.
	// It can only be written with a WriteHook installed.
	Opaque struct {
		V interface{}
	}
)

func (Null) Kind() Kind         { return KindNull }
func (String) Kind() Kind       { return KindString }
func (Int32) Kind() Kind        { return KindInt32 }
func (Int64) Kind() Kind        { return KindInt64 }
func (Float32) Kind() Kind      { return KindFloat32 }
func (Float64) Kind() Kind      { return KindFloat64 }
func (Bool) Kind() Kind         { return KindBool }
func (ByteArray) Kind() Kind    { return KindByteArray }
func (Int32Array) Kind() Kind   { return KindInt32Array }
func (Int64Array) Kind() Kind   { return KindInt64Array }
func (Float64Array) Kind() Kind { return KindFloat64Array }
func (StringArray) Kind() Kind  { return KindStringArray }
func (BoolArray) Kind() Kind    { return KindBoolArray }
func (List) Kind() Kind         { return KindList }
func (Set) Kind() Kind          { return KindSet }
func (Map) Kind() Kind          { return KindMap }
func (Opaque) Kind() Kind       { return KindOpaque }

func (Null) isValue()         {}
func (String) isValue()       {}
func (Int32) isValue()        {}
func (Int64) isValue()        {}
func (Float32) isValue()      {}
func (Float64) isValue()      {}
func (Bool) isValue()         {}
func (ByteArray) isValue()    {}
func (Int32Array) isValue()   {}
func (Int64Array) isValue()   {}
func (Float64Array) isValue() {}
func (StringArray) isValue()  {}
func (BoolArray) isValue()    {}
func (List) isValue()         {}
func (Set) isValue()          {}
func (Map) isValue()          {}
func (Opaque) isValue()       {}

// KindOf returns the kind of v, treating a nil interface as Null.
func KindOf(v Value) Kind {
	if v == nil {
		return KindNull
	}
	return v.Kind()
}

// Equal reports whether a and b describe the same value.
// Lists compare element-wise in order, sets and maps by membership.
// Floating point values compare by bit pattern so NaN equals NaN.
func Equal(a, b Value) bool {
	if KindOf(a) != KindOf(b) {
		return false
	}

	switch av := a.(type) {
	case nil, Null:
		return true
	case String:
		return av == b.(String)
	case Int32:
		return av == b.(Int32)
	case Int64:
		return av == b.(Int64)
	case Float32:
		return math.Float32bits(float32(av)) == math.Float32bits(float32(b.(Float32)))
	case Float64:
		return math.Float64bits(float64(av)) == math.Float64bits(float64(b.(Float64)))
	case Bool:
		return av == b.(Bool)
	case ByteArray:
		return sliceEqual(av, b.(ByteArray), func(x, y byte) bool { return x == y })
	case Int32Array:
		return sliceEqual(av, b.(Int32Array), func(x, y int32) bool { return x == y })
	case Int64Array:
		return sliceEqual(av, b.(Int64Array), func(x, y int64) bool { return x == y })
	case Float64Array:
		return sliceEqual(av, b.(Float64Array), func(x, y float64) bool {
			return math.Float64bits(x) == math.Float64bits(y)
		})
	case StringArray:
		return sliceEqual(av, b.(StringArray), func(x, y string) bool { return x == y })
	case BoolArray:
		return sliceEqual(av, b.(BoolArray), func(x, y bool) bool { return x == y })
	case List:
		return sliceEqual(av, b.(List), Equal)
	case Set:
		return setEqual(av, b.(Set))
	case Map:
		bm := b.(Map)
		if len(av) != len(bm) {
			return false
		}
		for k, v := range av {
			w, ok := bm[k]
			if !ok || !Equal(v, w) {
				return false
			}
		}
		return true
	case Opaque:
		return reflect.DeepEqual(av.V, b.(Opaque).V)
	}
	return false
}

func sliceEqual[T any](a, b []T, eq func(T, T) bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !eq(a[i], b[i]) {
			return false
		}
	}
	return true
}

// setEqual matches every element of a against a distinct element of b.
func setEqual(a, b Set) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
outer:
	for _, x := range a {
		for i, y := range b {
			if !used[i] && Equal(x, y) {
				used[i] = true
				continue outer
			}
		}
		return false
	}
	return true
}

// Contains reports whether s holds an element equal to v.
func (s Set) Contains(v Value) bool {
	for _, e := range s {
		if Equal(e, v) {
			return true
		}
	}
	return false
}
