// SPDX-FileCopyrightText: 2024 The xmlvalue Authors
//
// SPDX-License-Identifier: MIT

package xmlvalue

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	a := assert.New(t)

	a.Equal(KindNull, KindOf(nil))
	a.Equal(KindNull, KindOf(Null{}))
	a.Equal(KindMap, KindOf(Map{}))
	a.Equal(KindOpaque, KindOf(Opaque{V: struct{}{}}))
	a.Equal("byte-array", KindByteArray.String())
	a.Equal("unknown", Kind(200).String())
}

func TestEqual(t *testing.T) {
	nan := math.NaN()

	type tcase struct {
		name string
		a, b Value
		eq   bool
	}
	tcs := []tcase{
		{"nil null", nil, Null{}, true},
		{"strings", String("a"), String("a"), true},
		{"string differs", String("a"), String("b"), false},
		{"int widths differ", Int32(1), Int64(1), false},
		{"nan", Float64(nan), Float64(nan), true},
		{"nan32", Float32(float32(nan)), Float32(float32(nan)), true},
		{"signed zero", Float64(0), Float64(math.Copysign(0, -1)), false},
		{"bytes", ByteArray{1, 2}, ByteArray{1, 2}, true},
		{"bytes length", ByteArray{1, 2}, ByteArray{1}, false},
		{"list order", List{Int32(1), Int32(2)}, List{Int32(2), Int32(1)}, false},
		{"set order", Set{Int32(1), Int32(2)}, Set{Int32(2), Int32(1)}, true},
		{"set multiplicity", Set{Int32(1), Int32(1)}, Set{Int32(1), Int32(2)}, false},
		{"maps", Map{"a": Bool(true), "b": Null{}}, Map{"b": Null{}, "a": Bool(true)}, true},
		{"map value", Map{"a": Bool(true)}, Map{"a": Bool(false)}, false},
		{"map key", Map{"a": Bool(true)}, Map{"b": Bool(true)}, false},
		{"nested", List{Map{"x": Float64Array{nan}}}, List{Map{"x": Float64Array{nan}}}, true},
		{"opaque", Opaque{V: []int{1}}, Opaque{V: []int{1}}, true},
		{"list vs set", List{}, Set{}, false},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.eq, Equal(tc.a, tc.b))
			assert.Equal(t, tc.eq, Equal(tc.b, tc.a), "not symmetric")
		})
	}
}

func TestSetContains(t *testing.T) {
	s := Set{String("a"), List{Int64(3)}}
	assert.True(t, s.Contains(String("a")))
	assert.True(t, s.Contains(List{Int64(3)}))
	assert.False(t, s.Contains(List{Int32(3)}))
	assert.False(t, Set{}.Contains(Null{}))
}
