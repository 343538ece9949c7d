// SPDX-FileCopyrightText: 2024 The xmlvalue Authors
//
// SPDX-License-Identifier: MIT

// Package mkv keeps documents in a modernc.org/kv database file.
package mkv // import "github.com/ssbc/xmlvalue/internal/persist/mkv"

import (
	"io"

	"github.com/pkg/errors"
	"modernc.org/kv"

	"github.com/ssbc/xmlvalue/internal/persist"
)

// FileName is the database file used when New is given a directory.
const FileName = "documents.kv"

type Saver struct {
	db *kv.DB
}

var _ persist.Saver = (*Saver)(nil)

// New opens the database at path, which is either a kv file or a directory
// to keep FileName in. Missing files are created.
func New(path string) (*Saver, error) {
	file, exists, err := persist.Locate(path, FileName)
	if err != nil {
		return nil, err
	}

	open := kv.Create
	if exists {
		open = kv.Open
	}
	db, err := open(file, &kv.Options{})
	if err != nil {
		return nil, errors.Wrapf(err, "persist/mkv: failed to open %s", file)
	}
	return &Saver{db: db}, nil
}

func (s *Saver) Put(key persist.Key, data []byte) error {
	return errors.Wrapf(s.db.Set(key, data), "persist/mkv/put(%x)", key)
}

func (s *Saver) Get(key persist.Key) ([]byte, error) {
	data, err := s.db.Get(nil, key)
	if err != nil {
		return nil, errors.Wrapf(err, "persist/mkv/get(%x)", key)
	}
	if data == nil {
		return nil, persist.ErrNotFound
	}
	return data, nil
}

func (s *Saver) Delete(key persist.Key) error {
	return errors.Wrapf(s.db.Delete(key), "persist/mkv/delete(%x)", key)
}

// List walks the database in key order.
func (s *Saver) List() ([]persist.Key, error) {
	var keys []persist.Key

	enum, err := s.db.SeekFirst()
	if err == io.EOF {
		return keys, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "persist/mkv/list: seek failed")
	}

	for {
		k, _, err := enum.Next()
		if err == io.EOF {
			return keys, nil
		}
		if err != nil {
			return nil, errors.Wrap(err, "persist/mkv/list: iteration failed")
		}
		keys = append(keys, append(persist.Key(nil), k...))
	}
}

func (s *Saver) Close() error {
	return errors.Wrap(s.db.Close(), "persist/mkv: close failed")
}
