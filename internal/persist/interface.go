// SPDX-FileCopyrightText: 2024 The xmlvalue Authors
//
// SPDX-License-Identifier: MIT

package persist

import (
	"io"

	"github.com/pkg/errors"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -o persistfakes/fake_saver.go . Saver

type Key []byte

var ErrNotFound = errors.New("persist: item not found")

// Saver is a flat key-value store for serialized documents.
type Saver interface {
	Put(Key, []byte) error
	Get(Key) ([]byte, error)
	Delete(Key) error

	List() ([]Key, error)

	io.Closer
}
