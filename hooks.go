// SPDX-FileCopyrightText: 2024 The xmlvalue Authors
//
// SPDX-License-Identifier: MIT

package xmlvalue

// WriteHook is called by the Writer for Opaque values. The hook writes the
// complete element, start tag through end tag, and must put name into a
// name attribute when named is set.
type WriteHook interface {
	WriteValue(sink Sink, name string, named bool, v interface{}) error
}

// WriteHookFunc adapts a function to WriteHook.
type WriteHookFunc func(sink Sink, name string, named bool, v interface{}) error

func (f WriteHookFunc) WriteValue(sink Sink, name string, named bool, v interface{}) error {
	return f(sink, name, named, v)
}

// ReadHook is called by the Reader for tags outside the built-in grammar.
// The source is positioned at the start tag, so attributes can be read.
// The hook may consume as much of the element as it likes; the Reader
// skips whatever is left up to the matching end tag.
type ReadHook interface {
	ReadValue(src Source, tag string) (Value, error)
}

// ReadHookFunc adapts a function to ReadHook.
type ReadHookFunc func(src Source, tag string) (Value, error)

func (f ReadHookFunc) ReadValue(src Source, tag string) (Value, error) {
	return f(src, tag)
}

// WriteStart emits the start tag and the optional name attribute.
func WriteStart(sink Sink, tag, name string, named bool) error {
	if err := sink.StartTag(tag); err != nil {
		return err
	}
	if named {
		return sink.Attribute(AttrName, name)
	}
	return nil
}
