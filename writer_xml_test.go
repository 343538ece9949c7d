// SPDX-FileCopyrightText: 2024 The xmlvalue Authors
//
// SPDX-License-Identifier: MIT

package xmlvalue_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ssbc/xmlvalue"
	"github.com/ssbc/xmlvalue/xmlstream"
)

func TestWriterRejectsInvalidCharacters(t *testing.T) {
	type tcase struct {
		name string
		v    xmlvalue.Value
	}
	tcs := []tcase{
		{"control char in string", xmlvalue.String("a\x01b")},
		{"nul in string", xmlvalue.List{xmlvalue.String("\x00")}},
		{"invalid utf8 in string", xmlvalue.String("bad\xffutf8")},
		{"noncharacter in string", xmlvalue.String("\uFFFE")},
		{"control char in string-array item", xmlvalue.StringArray{"ok", "\x02"}},
		{"control char in map key", xmlvalue.Map{"k\x01": xmlvalue.Int32(1), "k\x02": xmlvalue.Int32(2)}},
		{"invalid utf8 in map key", xmlvalue.Map{"\xc3": xmlvalue.Null{}}},
	}

	w := xmlvalue.NewWriter()
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			sink := xmlstream.NewSink(new(bytes.Buffer), "")
			err := w.Write(sink, tc.v)
			require.True(t, xmlvalue.IsKind(err, xmlvalue.InvalidCharacter), "got %v", err)
		})
	}
}

func TestWriterKeepsValidCharacters(t *testing.T) {
	r := require.New(t)

	v := xmlvalue.Map{
		"tab\tkey": xmlvalue.String("cr\r lf\n tab\t"),
		"emoji":    xmlvalue.StringArray{"\U0001F600", "\uFFFD", "\uE000", ""},
	}

	var buf bytes.Buffer
	sink := xmlstream.NewSink(&buf, "")
	r.NoError(xmlvalue.NewWriter().Write(sink, v))
	r.NoError(sink.Flush())

	got, err := xmlvalue.NewReader().Read(xmlstream.NewSource(&buf))
	r.NoError(err)
	r.True(xmlvalue.Equal(v, got), "%#v", got)
}
