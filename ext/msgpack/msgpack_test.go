// SPDX-FileCopyrightText: 2024 The xmlvalue Authors
//
// SPDX-License-Identifier: MIT

package msgpack

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/ssbc/xmlvalue"
	"github.com/ssbc/xmlvalue/codec/xmlcodec"
)

func TestRoundTrip(t *testing.T) {
	r := require.New(t)

	endpoint := map[string]interface{}{
		"host":  "example.org",
		"port":  int64(8008),
		"flags": []interface{}{"tls", true},
	}
	v := xmlvalue.Map{
		"endpoint": xmlvalue.Opaque{V: endpoint},
		"retries":  xmlvalue.Int32(3),
	}

	c := xmlcodec.New(New().CodecOptions()...)
	data, err := c.Marshal(v)
	r.NoError(err)
	r.Contains(string(data), `<msgpack name="endpoint" num="`)

	got, err := c.Unmarshal(data)
	r.NoError(err)
	r.True(xmlvalue.Equal(v, got), cmp.Diff(v, got))
}

func TestWithTag(t *testing.T) {
	r := require.New(t)

	c := xmlcodec.New(New(WithTag("blob")).CodecOptions()...)
	data, err := c.Marshal(xmlvalue.List{xmlvalue.Opaque{V: "hi"}})
	r.NoError(err)
	r.Contains(string(data), `<blob num="3">a26869</blob>`)

	got, err := c.Unmarshal(data)
	r.NoError(err)
	r.True(xmlvalue.Equal(xmlvalue.List{xmlvalue.Opaque{V: "hi"}}, got))

	// the default tag is not known to this codec
	_, err = c.Unmarshal([]byte(`<msgpack num="1">c0</msgpack>`))
	r.True(xmlvalue.IsKind(err, xmlvalue.UnknownTag), "got %v", err)
}

func TestReadErrors(t *testing.T) {
	c := xmlcodec.New(New().CodecOptions()...)

	type tcase struct {
		doc  string
		kind xmlvalue.ErrorKind
	}
	tcs := []tcase{
		{`<msgpack>c0</msgpack>`, xmlvalue.MissingAttribute},
		{`<msgpack num="x">c0</msgpack>`, xmlvalue.MalformedNumber},
		{`<msgpack num="2">c0</msgpack>`, xmlvalue.InvalidByteArrayEncoding},
		{`<msgpack num="1"><null/></msgpack>`, xmlvalue.UnexpectedStartTag},
		{`<msgpack num="1">c0`, xmlvalue.UnexpectedEndOfStream},
		{`<msgpack num="1">c0</list>`, xmlvalue.UnexpectedEndTag},
	}
	for _, tc := range tcs {
		_, err := c.Unmarshal([]byte(tc.doc))
		require.True(t, xmlvalue.IsKind(err, tc.kind), "%s: want %s, got %v", tc.doc, tc.kind, err)
	}

	v, err := c.Unmarshal([]byte(`<msgpack num="1">c0</msgpack>`))
	require.NoError(t, err)
	require.Equal(t, xmlvalue.Opaque{V: nil}, v)
}
