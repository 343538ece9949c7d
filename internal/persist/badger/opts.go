// SPDX-FileCopyrightText: 2024 The xmlvalue Authors
//
// SPDX-License-Identifier: MIT

//go:build !lite
// +build !lite

package badger

import (
	"github.com/dgraph-io/badger/v3"
)

// BadgerOpts are the options New opens a database with.
func BadgerOpts(dbPath string) badger.Options {
	return badger.DefaultOptions(dbPath).
		WithLoggingLevel(badger.WARNING)
}
