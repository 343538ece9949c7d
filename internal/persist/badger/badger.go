// SPDX-FileCopyrightText: 2024 The xmlvalue Authors
//
// SPDX-License-Identifier: MIT

package badger

import (
	"github.com/dgraph-io/badger/v3"
	"github.com/pkg/errors"

	"github.com/ssbc/xmlvalue/internal/persist"
)

// ModernSaver stores documents in a badger database. With a prefix it acts
// as one bucket of a database shared with other users.
type ModernSaver struct {
	db     *badger.DB
	prefix []byte
	shared bool
}

var _ persist.Saver = (*ModernSaver)(nil)

// New opens (or creates) a badger database at path owned by the saver.
func New(path string) (*ModernSaver, error) {
	db, err := badger.Open(BadgerOpts(path))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create KV %s", path)
	}
	return &ModernSaver{db: db}, nil
}

// NewShared returns a saver that keeps its keys under prefix in db.
// Closing it leaves db open.
func NewShared(db *badger.DB, prefix []byte) (*ModernSaver, error) {
	if len(prefix) == 0 {
		return nil, errors.New("persist/badger: shared saver needs a prefix")
	}
	return &ModernSaver{
		db:     db,
		prefix: append([]byte(nil), prefix...),
		shared: true,
	}, nil
}

func (sl *ModernSaver) Close() error {
	if sl.shared {
		return nil
	}
	return sl.db.Close()
}

func (sl *ModernSaver) key(k persist.Key) []byte {
	if len(sl.prefix) == 0 {
		return k
	}
	full := make([]byte, 0, len(sl.prefix)+len(k))
	full = append(full, sl.prefix...)
	return append(full, k...)
}
