// SPDX-FileCopyrightText: 2024 The xmlvalue Authors
//
// SPDX-License-Identifier: MIT

package xmlvalue

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type volume struct {
	Level int32
	Muted bool
}

func (v volume) MarshalValue() (Value, error) {
	if v.Level < 0 {
		return nil, errors.New("negative level")
	}
	return Map{"level": Int32(v.Level), "muted": Bool(v.Muted)}, nil
}

func (v *volume) UnmarshalValue(val Value) error {
	m, ok := val.(Map)
	if !ok {
		return errors.Errorf("expected map, got %s", KindOf(val))
	}
	l, ok := m["level"].(Int32)
	if !ok {
		return errors.New("level missing")
	}
	v.Level = int32(l)
	v.Muted = m["muted"] == Bool(true)
	return nil
}

func TestFromNative(t *testing.T) {
	r := require.New(t)

	type other struct{ A int }

	v, err := FromNative(map[string]interface{}{
		"s":   "x",
		"i":   42,
		"i32": int32(1),
		"f":   2.5,
		"b":   []byte{1},
		"l":   []interface{}{nil, true, []string{"a"}},
		"vol": volume{Level: 3},
		"v":   Int64Array{9},
		"o":   other{A: 1},
	})
	r.NoError(err)

	want := Map{
		"s":   String("x"),
		"i":   Int64(42),
		"i32": Int32(1),
		"f":   Float64(2.5),
		"b":   ByteArray{1},
		"l":   List{Null{}, Bool(true), StringArray{"a"}},
		"vol": Map{"level": Int32(3), "muted": Bool(false)},
		"v":   Int64Array{9},
		"o":   Opaque{V: other{A: 1}},
	}
	r.True(Equal(want, v), cmp.Diff(want, v))

	_, err = FromNative([]interface{}{volume{Level: -1}})
	r.Error(err)
	r.Contains(err.Error(), "negative level")
}

func TestToNative(t *testing.T) {
	v := Map{
		"l": List{Int32(1), Null{}},
		"s": Set{String("a")},
		"o": Opaque{V: 3.5},
		"d": Float32(0.5),
	}
	want := map[string]interface{}{
		"l": []interface{}{int32(1), nil},
		"s": []interface{}{"a"},
		"o": 3.5,
		"d": float32(0.5),
	}
	if d := cmp.Diff(want, ToNative(v)); d != "" {
		t.Errorf("native form differs (-want +got):\n%s", d)
	}
}

func TestUnmarshal(t *testing.T) {
	r := require.New(t)

	var vol volume
	r.NoError(Unmarshal(Map{"level": Int32(7), "muted": Bool(true)}, &vol))
	r.Equal(volume{Level: 7, Muted: true}, vol)

	r.Error(Unmarshal(List{}, &vol))

	var notUnmarshaler int
	r.Error(Unmarshal(Int32(1), &notUnmarshaler))
}
