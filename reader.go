// SPDX-FileCopyrightText: 2024 The xmlvalue Authors
//
// SPDX-License-Identifier: MIT

package xmlvalue

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// DefaultMaxDepth bounds element nesting unless WithMaxDepth says otherwise.
const DefaultMaxDepth = 512

// ReaderOption configures a Reader.
type ReaderOption func(*Reader)

// WithReadHook installs the hook used for tags outside the grammar.
func WithReadHook(h ReadHook) ReaderOption {
	return func(r *Reader) {
		r.hook = h
	}
}

// WithMaxDepth limits how deep values may nest. n <= 0 disables the limit.
func WithMaxDepth(n int) ReaderOption {
	return func(r *Reader) {
		r.maxDepth = n
	}
}

// Node is a decoded value together with its optional name attribute.
type Node struct {
	Value Value
	Name  string
	Named bool
}

// Reader reconstructs values from a Source by recursive descent.
// It holds no per-stream state and can be shared.
type Reader struct {
	hook     ReadHook
	maxDepth int
}

// NewReader returns a Reader configured by opts.
func NewReader(opts ...ReaderOption) *Reader {
	r := &Reader{maxDepth: DefaultMaxDepth}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Read advances src to the next start tag and decodes the value it opens.
// On success src is positioned at the value's end tag.
func (r *Reader) Read(src Source) (Value, error) {
	n, err := r.ReadTop(src)
	if err != nil {
		return nil, err
	}
	return n.Value, nil
}

// ReadTop is like Read but also returns the name attribute of the value.
func (r *Reader) ReadTop(src Source) (Node, error) {
	ev := src.Event()
	for {
		switch ev {
		case StartTag:
			return r.ReadNode(src)
		case EndTag:
			return Node{}, errEndTag("", src.Name())
		case Text:
			if !isSpace(src.Text()) {
				return Node{}, errText("", src.Text())
			}
		case EndDocument:
			return Node{}, errEOS("")
		}

		var err error
		ev, err = src.Next()
		if err != nil {
			return Node{}, errors.Wrap(err, "xmlvalue: reading stream failed")
		}
	}
}

// ReadNode decodes the element whose start tag src is positioned at.
// On success src is positioned at the matching end tag.
func (r *Reader) ReadNode(src Source) (Node, error) {
	if src.Event() != StartTag {
		return Node{}, errors.Errorf("xmlvalue: ReadNode called at %s, not at a start tag", src.Event())
	}
	if r.maxDepth > 0 && src.Depth() > r.maxDepth {
		return Node{}, &Error{Kind: NestingTooDeep, Tag: src.Name()}
	}

	tag := src.Name()
	n := Node{}
	n.Name, n.Named = src.Attr(AttrName)

	var err error
	switch tag {
	case TagNull:
		n.Value = Null{}
		err = skipToEnd(src, tag)

	case TagString:
		n.Value, err = readString(src)

	case TagInt, TagLong, TagFloat, TagDouble, TagBoolean:
		n.Value, err = readScalar(src, tag)
		if err == nil {
			err = skipToEnd(src, tag)
		}

	case TagByteArray:
		n.Value, err = readByteArray(src)

	case TagIntArray:
		var items []int32
		items, err = readItems(src, tag, func(s string) (int32, error) {
			i, err := strconv.ParseInt(s, 10, 32)
			return int32(i), err
		})
		n.Value = Int32Array(items)
	case TagLongArray:
		var items []int64
		items, err = readItems(src, tag, func(s string) (int64, error) {
			return strconv.ParseInt(s, 10, 64)
		})
		n.Value = Int64Array(items)
	case TagDoubleArray:
		var items []float64
		items, err = readItems(src, tag, func(s string) (float64, error) {
			return strconv.ParseFloat(s, 64)
		})
		n.Value = Float64Array(items)
	case TagStringArray:
		var items []string
		items, err = readItems(src, tag, func(s string) (string, error) {
			return s, nil
		})
		n.Value = StringArray(items)
	case TagBooleanArray:
		var items []bool
		items, err = readItems(src, tag, parseBool)
		n.Value = BoolArray(items)

	case TagMap:
		m := make(Map)
		err = r.readChildren(src, tag, func(c Node) error {
			if !c.Named {
				return errMissingAttr(TagMap, AttrName)
			}
			m[c.Name] = c.Value
			return nil
		})
		n.Value = m
	case TagList:
		l := List{}
		err = r.readChildren(src, tag, func(c Node) error {
			l = append(l, c.Value)
			return nil
		})
		n.Value = l
	case TagSet:
		s := Set{}
		err = r.readChildren(src, tag, func(c Node) error {
			if !s.Contains(c.Value) {
				s = append(s, c.Value)
			}
			return nil
		})
		n.Value = s

	default:
		if r.hook == nil {
			return Node{}, &Error{Kind: UnknownTag, Found: tag}
		}
		depth := src.Depth()
		n.Value, err = r.hook.ReadValue(src, tag)
		if err == nil {
			err = skipPast(src, tag, depth)
		}
		if n.Value == nil {
			n.Value = Null{}
		}
	}
	if err != nil {
		return Node{}, err
	}
	return n, nil
}

// readChildren decodes every child element of the container tag the
// source is positioned at, handing each one to add.
func (r *Reader) readChildren(src Source, tag string, add func(Node) error) error {
	for {
		ev, err := src.Next()
		if err != nil {
			return errors.Wrapf(err, "xmlvalue: reading <%s> failed", tag)
		}
		switch ev {
		case StartTag:
			c, err := r.ReadNode(src)
			if err != nil {
				return err
			}
			if err := add(c); err != nil {
				return err
			}
		case EndTag:
			if src.Name() != tag {
				return errEndTag(tag, src.Name())
			}
			return nil
		case Text:
			if !isSpace(src.Text()) {
				return errText(tag, src.Text())
			}
		case EndDocument:
			return errEOS(tag)
		}
	}
}

func readString(src Source) (Value, error) {
	var sb strings.Builder
	for {
		ev, err := src.Next()
		if err != nil {
			return nil, errors.Wrap(err, "xmlvalue: reading <string> failed")
		}
		switch ev {
		case Text:
			sb.WriteString(src.Text())
		case StartTag:
			return nil, errStartTag(TagString, src.Name())
		case EndTag:
			if src.Name() != TagString {
				return nil, errEndTag(TagString, src.Name())
			}
			return String(sb.String()), nil
		case EndDocument:
			return nil, errEOS(TagString)
		}
	}
}

func readScalar(src Source, tag string) (Value, error) {
	s, ok := src.Attr(AttrValue)
	if !ok {
		return nil, errMissingAttr(tag, AttrValue)
	}

	var (
		v   Value
		err error
	)
	switch tag {
	case TagInt:
		var i int64
		i, err = strconv.ParseInt(s, 10, 32)
		v = Int32(i)
	case TagLong:
		var i int64
		i, err = strconv.ParseInt(s, 10, 64)
		v = Int64(i)
	case TagFloat:
		var f float64
		f, err = strconv.ParseFloat(s, 32)
		v = Float32(f)
	case TagDouble:
		var f float64
		f, err = strconv.ParseFloat(s, 64)
		v = Float64(f)
	case TagBoolean:
		var b bool
		b, err = parseBool(s)
		v = Bool(b)
	}
	if err != nil {
		return nil, errMalformed(tag, AttrValue, s, err)
	}
	return v, nil
}

// parseBool accepts only the two spellings the Writer produces.
func parseBool(s string) (bool, error) {
	switch s {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, errors.Errorf("invalid boolean %q", s)
}

func readNum(src Source, tag string) (int, error) {
	s, ok := src.Attr(AttrNum)
	if !ok {
		return 0, errMissingAttr(tag, AttrNum)
	}
	num, err := strconv.Atoi(s)
	if err != nil {
		return 0, errMalformed(tag, AttrNum, s, err)
	}
	if num < 0 {
		return 0, errMalformed(tag, AttrNum, s, errors.New("negative element count"))
	}
	return num, nil
}

func readByteArray(src Source) (Value, error) {
	num, err := readNum(src, TagByteArray)
	if err != nil {
		return nil, err
	}

	var text strings.Builder
	for {
		ev, err := src.Next()
		if err != nil {
			return nil, errors.Wrap(err, "xmlvalue: reading <byte-array> failed")
		}
		switch ev {
		case Text:
			text.WriteString(src.Text())
		case StartTag:
			return nil, errStartTag(TagByteArray, src.Name())
		case EndTag:
			if src.Name() != TagByteArray {
				return nil, errEndTag(TagByteArray, src.Name())
			}
			s := text.String()
			if num == 0 && isSpace(s) {
				return ByteArray{}, nil
			}
			b, err := DecodeHex(s, num)
			if err != nil {
				return nil, &Error{Kind: InvalidByteArrayEncoding, Tag: TagByteArray, Found: s, Err: err}
			}
			return ByteArray(b), nil
		case EndDocument:
			return nil, errEOS(TagByteArray)
		}
	}
}

// preallocation cap for declared array lengths, so a hostile num attribute
// cannot force a huge allocation up front.
const maxPrealloc = 1 << 10

// readItems reads the item children of a typed array. The number of items
// must match the num attribute exactly.
func readItems[T any](src Source, tag string, parse func(string) (T, error)) ([]T, error) {
	num, err := readNum(src, tag)
	if err != nil {
		return nil, err
	}

	items := make([]T, 0, min(num, maxPrealloc))
	for {
		ev, err := src.Next()
		if err != nil {
			return nil, errors.Wrapf(err, "xmlvalue: reading <%s> failed", tag)
		}
		switch ev {
		case StartTag:
			if src.Name() != TagItem {
				return nil, errStartTag(tag, src.Name())
			}
			if len(items) == num {
				return nil, errLength(tag, num, "more items")
			}
			s, ok := src.Attr(AttrValue)
			if !ok {
				return nil, errMissingAttr(TagItem, AttrValue)
			}
			v, err := parse(s)
			if err != nil {
				return nil, errMalformed(TagItem, AttrValue, s, err)
			}
			items = append(items, v)
			if err := skipToEnd(src, TagItem); err != nil {
				return nil, err
			}
		case EndTag:
			if src.Name() != tag {
				return nil, errEndTag(tag, src.Name())
			}
			if len(items) != num {
				return nil, errLength(tag, num, strconv.Itoa(len(items)))
			}
			return items, nil
		case Text:
			if !isSpace(src.Text()) {
				return nil, errText(tag, src.Text())
			}
		case EndDocument:
			return nil, errEOS(tag)
		}
	}
}

func errLength(tag string, num int, found string) error {
	return &Error{Kind: ArrayLengthMismatch, Tag: tag, Expected: strconv.Itoa(num), Found: found}
}

// skipToEnd expects nothing but formatting whitespace before the end tag
// of the leaf element tag.
func skipToEnd(src Source, tag string) error {
	for {
		ev, err := src.Next()
		if err != nil {
			return errors.Wrapf(err, "xmlvalue: reading <%s> failed", tag)
		}
		switch ev {
		case EndTag:
			if src.Name() != tag {
				return errEndTag(tag, src.Name())
			}
			return nil
		case Text:
			if !isSpace(src.Text()) {
				return errText(tag, src.Text())
			}
		case StartTag:
			return errStartTag(tag, src.Name())
		case EndDocument:
			return errEOS(tag)
		}
	}
}

// skipPast moves src to the end tag closing the element opened at depth,
// skipping any content a read hook left behind.
func skipPast(src Source, tag string, depth int) error {
	for {
		switch src.Event() {
		case EndTag:
			if src.Depth() == depth {
				if src.Name() != tag {
					return errEndTag(tag, src.Name())
				}
				return nil
			}
			if src.Depth() < depth {
				return errEndTag(tag, src.Name())
			}
		case EndDocument:
			return errEOS(tag)
		}
		if _, err := src.Next(); err != nil {
			return errors.Wrapf(err, "xmlvalue: reading <%s> failed", tag)
		}
	}
}

func isSpace(s string) bool {
	return strings.TrimSpace(s) == ""
}
