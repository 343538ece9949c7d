// SPDX-FileCopyrightText: 2024 The xmlvalue Authors
//
// SPDX-License-Identifier: MIT

package xmlvalue

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind classifies grammar errors raised while reading or writing.
type ErrorKind uint8

const (
	_ ErrorKind = iota
	MissingAttribute
	MalformedNumber
	UnexpectedStartTag
	UnexpectedEndTag
	UnexpectedText
	UnexpectedEndOfStream
	InvalidByteArrayEncoding
	ArrayLengthMismatch
	UnknownTag
	NestingTooDeep
	UnexpectedTopLevel
	UnsupportedValueType
	InvalidCharacter
)

func (k ErrorKind) String() string {
	switch k {
	case MissingAttribute:
		return "missing attribute"
	case MalformedNumber:
		return "malformed number"
	case UnexpectedStartTag:
		return "unexpected start tag"
	case UnexpectedEndTag:
		return "unexpected end tag"
	case UnexpectedText:
		return "unexpected text"
	case UnexpectedEndOfStream:
		return "unexpected end of stream"
	case InvalidByteArrayEncoding:
		return "invalid byte-array encoding"
	case ArrayLengthMismatch:
		return "array length mismatch"
	case UnknownTag:
		return "unknown tag"
	case NestingTooDeep:
		return "nesting too deep"
	case UnexpectedTopLevel:
		return "unexpected top-level value"
	case UnsupportedValueType:
		return "unsupported value type"
	case InvalidCharacter:
		return "invalid character"
	}
	return fmt.Sprintf("ErrorKind(%d)", uint8(k))
}

// Error is returned for every violation of the tag grammar. Which of the
// context fields are set depends on Kind.
type Error struct {
	Kind ErrorKind

	// Tag is the element being processed when the error occurred.
	Tag string

	// Attr names the attribute for MissingAttribute and MalformedNumber.
	Attr string

	Expected string
	Found    string

	// Err is the underlying parse error, if any.
	Err error
}

func (e *Error) Error() string {
	msg := "xmlvalue: " + e.Kind.String()
	switch e.Kind {
	case MissingAttribute:
		msg += fmt.Sprintf(" %q in <%s>", e.Attr, e.Tag)
	case MalformedNumber:
		msg += fmt.Sprintf(" %q in %s attribute of <%s>", e.Found, e.Attr, e.Tag)
	case UnexpectedEndTag:
		if e.Expected == "" {
			msg += fmt.Sprintf(" </%s>", e.Found)
		} else {
			msg += fmt.Sprintf(": expected </%s>, found </%s>", e.Expected, e.Found)
		}
	case UnexpectedStartTag, UnknownTag:
		msg += fmt.Sprintf(" <%s>", e.Found)
		if e.Tag != "" {
			msg += fmt.Sprintf(" in <%s>", e.Tag)
		}
	case UnexpectedText:
		msg += fmt.Sprintf(" %q", e.Found)
		if e.Tag != "" {
			msg += fmt.Sprintf(" in <%s>", e.Tag)
		}
	case ArrayLengthMismatch:
		msg += fmt.Sprintf(" in <%s>: num=%s but found %s", e.Tag, e.Expected, e.Found)
	case UnexpectedTopLevel:
		msg += fmt.Sprintf(": expected %s, found %s", e.Expected, e.Found)
	case UnsupportedValueType:
		msg += " " + e.Found
	case InvalidCharacter:
		msg += fmt.Sprintf(" in %q", e.Found)
		if e.Attr != "" {
			msg += fmt.Sprintf(" (%s attribute)", e.Attr)
		}
		if e.Tag != "" {
			msg += fmt.Sprintf(" of <%s>", e.Tag)
		}
	default:
		if e.Tag != "" {
			msg += fmt.Sprintf(" in <%s>", e.Tag)
		}
		if e.Found != "" {
			msg += fmt.Sprintf(": %q", e.Found)
		}
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// IsKind returns whether err is, or wraps, a grammar error of kind k.
func IsKind(err error, k ErrorKind) bool {
	var ge *Error
	if !errors.As(err, &ge) {
		return false
	}
	return ge.Kind == k
}

func errMissingAttr(tag, attr string) error {
	return &Error{Kind: MissingAttribute, Tag: tag, Attr: attr}
}

func errMalformed(tag, attr, text string, cause error) error {
	return &Error{Kind: MalformedNumber, Tag: tag, Attr: attr, Found: text, Err: cause}
}

func errStartTag(in, found string) error {
	return &Error{Kind: UnexpectedStartTag, Tag: in, Found: found}
}

func errEndTag(expected, found string) error {
	return &Error{Kind: UnexpectedEndTag, Tag: expected, Expected: expected, Found: found}
}

func errText(in, text string) error {
	return &Error{Kind: UnexpectedText, Tag: in, Found: text}
}

func errEOS(in string) error {
	return &Error{Kind: UnexpectedEndOfStream, Tag: in}
}
