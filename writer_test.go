// SPDX-FileCopyrightText: 2024 The xmlvalue Authors
//
// SPDX-License-Identifier: MIT

package xmlvalue

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

// recSink records events in a compact notation:
// "<tag", "@attr=value", "'text", ">tag".
type recSink struct {
	evs []string
	err error
}

func (s *recSink) StartTag(name string) error {
	s.evs = append(s.evs, "<"+name)
	return s.err
}

func (s *recSink) Attribute(name, value string) error {
	s.evs = append(s.evs, "@"+name+"="+value)
	return s.err
}

func (s *recSink) Text(text string) error {
	s.evs = append(s.evs, "'"+text)
	return s.err
}

func (s *recSink) EndTag(name string) error {
	s.evs = append(s.evs, ">"+name)
	return s.err
}

func TestWriterEvents(t *testing.T) {
	type tcase struct {
		v     Value
		named string
		evs   string
	}

	tcs := []tcase{
		{v: nil, evs: "<null >null"},
		{v: Null{}, named: "n", evs: "<null @name=n >null"},
		{v: String(""), evs: "<string >string"},
		{v: String("a&b"), named: "s", evs: "<string @name=s 'a&b >string"},
		{v: Int32(-7), evs: "<int @value=-7 >int"},
		{v: Int64(math.MaxInt64), evs: "<long @value=9223372036854775807 >long"},
		{v: Float32(1.5), evs: "<float @value=1.5 >float"},
		{v: Float64(0.1), evs: "<double @value=0.1 >double"},
		{v: Float64(math.Inf(-1)), evs: "<double @value=-Inf >double"},
		{v: Bool(true), named: "b", evs: "<boolean @name=b @value=true >boolean"},
		{v: ByteArray{}, evs: "<byte-array @num=0 >byte-array"},
		{v: ByteArray{0x01, 0xab}, evs: "<byte-array @num=2 '01ab >byte-array"},
		{v: Int32Array{1, 2}, evs: "<int-array @num=2 <item @value=1 >item <item @value=2 >item >int-array"},
		{v: Int64Array{}, evs: "<long-array @num=0 >long-array"},
		{v: Float64Array{2.5}, evs: "<double-array @num=1 <item @value=2.5 >item >double-array"},
		{v: StringArray{"x"}, evs: "<string-array @num=1 <item @value=x >item >string-array"},
		{v: BoolArray{false}, evs: "<boolean-array @num=1 <item @value=false >item >boolean-array"},
		{v: List{Int32(1), Null{}}, evs: "<list <int @value=1 >int <null >null >list"},
		{v: Set{String("a")}, evs: "<set <string 'a >string >set"},
		{
			v:   Map{"z": Int32(1), "a": Bool(false)},
			evs: "<map <boolean @name=a @value=false >boolean <int @name=z @value=1 >int >map",
		},
	}

	w := NewWriter()
	for i, tc := range tcs {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			var s recSink
			var err error
			if tc.named != "" {
				err = w.WriteNamed(&s, tc.named, tc.v)
			} else {
				err = w.Write(&s, tc.v)
			}
			require.NoError(t, err)
			if d := cmp.Diff(strings.Fields(tc.evs), s.evs); d != "" {
				t.Errorf("events differ (-want +got):\n%s", d)
			}
		})
	}
}

func TestWriterOpaque(t *testing.T) {
	r := require.New(t)

	type point struct{ X, Y int }

	var s recSink
	err := NewWriter().Write(&s, List{Opaque{V: point{1, 2}}})
	r.True(IsKind(err, UnsupportedValueType), "got %v", err)
	r.Contains(err.Error(), "point")

	hook := WriteHookFunc(func(sink Sink, name string, named bool, v interface{}) error {
		p, ok := v.(point)
		if !ok {
			return errors.Errorf("unexpected %T", v)
		}
		if err := WriteStart(sink, "point", name, named); err != nil {
			return err
		}
		if err := sink.Attribute("x", fmt.Sprint(p.X)); err != nil {
			return err
		}
		return sink.EndTag("point")
	})

	s = recSink{}
	err = NewWriter(WithWriteHook(hook)).Write(&s, Map{"p": Opaque{V: point{3, 4}}})
	r.NoError(err)
	r.Equal([]string{"<map", "<point", "@name=p", "@x=3", ">point", ">map"}, s.evs)
}

func TestWriterSinkError(t *testing.T) {
	boom := errors.New("boom")
	s := recSink{err: boom}
	err := NewWriter().Write(&s, List{Int32(1)})
	require.ErrorIs(t, err, boom)
	require.Len(t, s.evs, 1, "writing should stop at the first error")
}
