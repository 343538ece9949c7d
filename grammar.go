// SPDX-FileCopyrightText: 2024 The xmlvalue Authors
//
// SPDX-License-Identifier: MIT

package xmlvalue

// Tag names of the wire grammar.
const (
	TagNull         = "null"
	TagString       = "string"
	TagInt          = "int"
	TagLong         = "long"
	TagFloat        = "float"
	TagDouble       = "double"
	TagBoolean      = "boolean"
	TagByteArray    = "byte-array"
	TagIntArray     = "int-array"
	TagLongArray    = "long-array"
	TagDoubleArray  = "double-array"
	TagStringArray  = "string-array"
	TagBooleanArray = "boolean-array"
	TagItem         = "item"
	TagMap          = "map"
	TagList         = "list"
	TagSet          = "set"
)

// Attribute names of the wire grammar.
const (
	AttrName  = "name"
	AttrValue = "value"
	AttrNum   = "num"
)
