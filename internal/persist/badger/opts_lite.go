// SPDX-FileCopyrightText: 2024 The xmlvalue Authors
//
// SPDX-License-Identifier: MIT

//go:build lite
// +build lite

package badger

import (
	"github.com/dgraph-io/badger/v3"
)

// BadgerOpts are the options New opens a database with. Settings documents
// are small, so the lite build keeps tables and caches tiny.
func BadgerOpts(dbPath string) badger.Options {
	return badger.DefaultOptions(dbPath).
		WithMemTableSize(1 << 22).
		WithValueLogFileSize(1 << 24).
		WithNumMemtables(2).
		WithNumLevelZeroTables(2).
		WithNumLevelZeroTablesStall(4).
		WithNumCompactors(2).
		WithIndexCacheSize(1 << 22).
		WithBlockCacheSize(1 << 22).
		WithLogger(nil)
}
