// SPDX-FileCopyrightText: 2024 The xmlvalue Authors
//
// SPDX-License-Identifier: MIT

package fs

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/ssbc/xmlvalue/internal/persist"
)

const suffix = ".xml"

// Saver keeps one file per key in a directory. File names are the hex
// encoded key.
type Saver struct {
	base string
}

var _ persist.Saver = (*Saver)(nil)

func New(base string) (*Saver, error) {
	if err := os.MkdirAll(base, 0700); err != nil {
		return nil, errors.Wrapf(err, "persist/fs: failed to create %s", base)
	}
	return &Saver{base: base}, nil
}

func (s Saver) path(key persist.Key) string {
	return filepath.Join(s.base, hex.EncodeToString(key)+suffix)
}

func (s Saver) Put(key persist.Key, data []byte) error {
	tmp, err := os.CreateTemp(s.base, ".put-*")
	if err != nil {
		return errors.Wrap(err, "persist/fs/put: failed to create temp file")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrap(err, "persist/fs/put: failed to write data")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "persist/fs/put: failed to close temp file")
	}
	return errors.Wrap(os.Rename(tmp.Name(), s.path(key)), "persist/fs/put: failed to move file into place")
}

func (s Saver) Get(key persist.Key) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, persist.ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "persist/fs/get(%x): failed to read file", key)
	}
	return data, nil
}

func (s Saver) Delete(key persist.Key) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "persist/fs/delete(%x): failed to remove file", key)
	}
	return nil
}

func (s Saver) List() ([]persist.Key, error) {
	entries, err := os.ReadDir(s.base)
	if err != nil {
		return nil, errors.Wrap(err, "persist/fs/list: failed to read directory")
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), suffix) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), suffix))
	}
	sort.Strings(names)

	keys := make([]persist.Key, 0, len(names))
	for _, n := range names {
		k, err := hex.DecodeString(n)
		if err != nil {
			return nil, errors.Wrapf(err, "persist/fs/list: invalid file name: %q", n)
		}
		keys = append(keys, k)
	}
	return keys, nil
}

func (s Saver) Close() error { return nil }
