// SPDX-FileCopyrightText: 2024 The xmlvalue Authors
//
// SPDX-License-Identifier: MIT

package xmlstream

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/ssbc/xmlvalue"
)

func TestSourceEvents(t *testing.T) {
	r := require.New(t)

	doc := `<?xml version="1.0" encoding="UTF-8"?>
<!-- settings -->
<map name="m"><x:int value="1"/>hi</list></map>`

	src := NewSource(strings.NewReader(doc))
	r.Equal(xmlvalue.StartDocument, src.Event())

	var got []string
	for {
		ev, err := src.Next()
		r.NoError(err)
		switch ev {
		case xmlvalue.StartTag:
			name, _ := src.Attr("name")
			got = append(got, fmt.Sprintf("start %s %d %q", src.Name(), src.Depth(), name))
		case xmlvalue.EndTag:
			got = append(got, fmt.Sprintf("end %s %d", src.Name(), src.Depth()))
		case xmlvalue.Text:
			got = append(got, fmt.Sprintf("text %q %d", src.Text(), src.Depth()))
		}
		if ev == xmlvalue.EndDocument {
			break
		}
	}

	want := []string{
		`text "\n" 0`,
		`text "\n" 0`,
		`start map 1 "m"`,
		`start x:int 2 ""`,
		`end x:int 2`,
		`text "hi" 1`,
		`end list 1`,
		`end map 0`,
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("events differ (-want +got):\n%s", d)
	}

	// stays at the end
	ev, err := src.Next()
	r.NoError(err)
	r.Equal(xmlvalue.EndDocument, ev)
}

func TestSourceAttr(t *testing.T) {
	r := require.New(t)

	src := NewSource(strings.NewReader(`<int ns:value="2" value="1 &lt; 2"/>`))
	_, err := src.Next()
	r.NoError(err)

	v, ok := src.Attr("value")
	r.True(ok)
	r.Equal("1 < 2", v)

	_, ok = src.Attr("num")
	r.False(ok)
}

func TestSourceSyntaxError(t *testing.T) {
	src := NewSource(strings.NewReader(`<int value=1/>`))
	_, err := src.Next()
	require.Error(t, err)
}

func TestSinkIndented(t *testing.T) {
	r := require.New(t)

	var buf bytes.Buffer
	s := NewSink(&buf, DefaultIndent)
	r.NoError(s.StartDocument())
	r.NoError(s.StartTag("map"))
	r.NoError(s.StartTag("string"))
	r.NoError(s.Attribute("name", `a"b`))
	r.NoError(s.Text("x < y & z"))
	r.NoError(s.EndTag("string"))
	r.NoError(s.StartTag("null"))
	r.NoError(s.EndTag("null"))
	r.NoError(s.EndTag("map"))
	r.NoError(s.EndDocument())

	want := `<?xml version="1.0" encoding="UTF-8"?>
<map>
    <string name="a&#34;b">x &lt; y &amp; z</string>
    <null></null>
</map>
`
	r.Equal(want, buf.String())
}

func TestSinkCompact(t *testing.T) {
	r := require.New(t)

	var buf bytes.Buffer
	s := NewSink(&buf, "")
	r.NoError(s.StartTag("list"))
	r.NoError(s.StartTag("int"))
	r.NoError(s.Attribute("value", "1"))
	r.NoError(s.EndTag("int"))
	r.NoError(s.EndTag("list"))
	r.NoError(s.Flush())
	r.Equal(`<list><int value="1"></int></list>`, buf.String())
}

func TestSinkMisuse(t *testing.T) {
	r := require.New(t)

	s := NewSink(new(bytes.Buffer), "")
	r.Error(s.Attribute("name", "x"), "attribute without tag")
	r.Error(s.Text("x"), "text without tag")
	r.Error(s.EndTag("list"), "end without start")

	r.NoError(s.StartTag("list"))
	r.Error(s.StartDocument(), "declaration after content")
	r.NoError(s.StartTag("int"))
	r.Error(s.EndTag("list"), "mismatched end")
	r.NoError(s.EndTag("int"))
	r.Error(s.EndDocument(), "list still open")
}

func TestSinkInvalidCharacters(t *testing.T) {
	r := require.New(t)

	s := NewSink(new(bytes.Buffer), "")
	r.NoError(s.StartTag("int"))
	err := s.Attribute("name", "k\x01")

	var ge *xmlvalue.Error
	r.ErrorAs(err, &ge)
	r.Equal(xmlvalue.InvalidCharacter, ge.Kind)
	r.Equal("int", ge.Tag)
	r.Equal("name", ge.Attr)

	r.NoError(s.Attribute("value", "1"))
	r.NoError(s.EndTag("int"))

	r.NoError(s.StartTag("string"))
	err = s.Text("\xff")
	r.ErrorAs(err, &ge)
	r.Equal(xmlvalue.InvalidCharacter, ge.Kind)
	r.Equal("string", ge.Tag)

	r.NoError(s.Text("tab\tcr\r\U0001F600"))
}
