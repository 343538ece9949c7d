// SPDX-FileCopyrightText: 2024 The xmlvalue Authors
//
// SPDX-License-Identifier: MIT

package codec // import "github.com/ssbc/xmlvalue/codec"

import (
	"io"

	"github.com/ssbc/xmlvalue"
)

// Codec converts between value graphs and one serialized representation.
type Codec interface {
	// Marshal encodes a single value and returns the serialized byte slice.
	Marshal(v xmlvalue.Value) ([]byte, error)

	// Unmarshal decodes and returns the value stored in data.
	Unmarshal(data []byte) (xmlvalue.Value, error)

	NewDecoder(io.Reader) Decoder
	NewEncoder(io.Writer) Encoder
}

// Decoder reads successive values from a stream. It returns io.EOF once
// the stream ends cleanly between values.
type Decoder interface {
	Decode() (xmlvalue.Value, error)
}

// Encoder writes successive values to a stream.
type Encoder interface {
	Encode(v xmlvalue.Value) error
}
