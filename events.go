// SPDX-FileCopyrightText: 2024 The xmlvalue Authors
//
// SPDX-License-Identifier: MIT

package xmlvalue

// EventType is the kind of event a Source is positioned at.
type EventType uint8

const (
	// StartDocument is the position of a fresh Source before the first Next.
	StartDocument EventType = iota
	StartTag
	EndTag
	Text
	EndDocument
)

func (t EventType) String() string {
	switch t {
	case StartDocument:
		return "start-document"
	case StartTag:
		return "start-tag"
	case EndTag:
		return "end-tag"
	case Text:
		return "text"
	case EndDocument:
		return "end-document"
	}
	return "unknown"
}

// Source is a forward-only, pull-style cursor over markup events.
// Name, Attr and Depth describe the current event; Next advances.
type Source interface {
	// Event returns the type of the current event.
	Event() EventType

	// Next advances to the following event and returns its type.
	// After EndDocument it keeps returning EndDocument.
	Next() (EventType, error)

	// Name is the tag name of the current StartTag or EndTag.
	Name() string

	// Attr looks up an attribute of the current StartTag.
	Attr(name string) (string, bool)

	// Text is the character data of the current Text event.
	Text() string

	// Depth is the nesting level of the current element. A start tag and
	// its matching end tag report the same depth; top level is 1.
	Depth() int
}

// Sink receives markup events. Attributes belong to the most recent
// StartTag and must be emitted before any text or child tag.
type Sink interface {
	StartTag(name string) error
	Attribute(name, value string) error
	Text(text string) error
	EndTag(name string) error
}
