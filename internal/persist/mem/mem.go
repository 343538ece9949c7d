// SPDX-FileCopyrightText: 2024 The xmlvalue Authors
//
// SPDX-License-Identifier: MIT

// Package mem is a Saver that keeps documents in memory. Nothing survives
// Close.
package mem // import "github.com/ssbc/xmlvalue/internal/persist/mem"

import (
	"bytes"
	"sort"
	"sync"

	"github.com/pkg/errors"

	"github.com/ssbc/xmlvalue/internal/persist"
)

type Saver struct {
	l sync.Mutex

	docs   map[string][]byte
	closed bool
}

var _ persist.Saver = (*Saver)(nil)

func New() *Saver {
	return &Saver{docs: make(map[string][]byte)}
}

var errClosed = errors.New("persist/mem: saver closed")

func (s *Saver) Put(key persist.Key, data []byte) error {
	s.l.Lock()
	defer s.l.Unlock()
	if s.closed {
		return errClosed
	}
	s.docs[string(key)] = bytes.Clone(data)
	return nil
}

func (s *Saver) Get(key persist.Key) ([]byte, error) {
	s.l.Lock()
	defer s.l.Unlock()
	if s.closed {
		return nil, errClosed
	}
	data, ok := s.docs[string(key)]
	if !ok {
		return nil, persist.ErrNotFound
	}
	return bytes.Clone(data), nil
}

func (s *Saver) Delete(key persist.Key) error {
	s.l.Lock()
	defer s.l.Unlock()
	if s.closed {
		return errClosed
	}
	delete(s.docs, string(key))
	return nil
}

func (s *Saver) List() ([]persist.Key, error) {
	s.l.Lock()
	defer s.l.Unlock()
	if s.closed {
		return nil, errClosed
	}
	keys := make([]persist.Key, 0, len(s.docs))
	for k := range s.docs {
		keys = append(keys, persist.Key(k))
	}
	sort.Slice(keys, func(i, j int) bool { return bytes.Compare(keys[i], keys[j]) < 0 })
	return keys, nil
}

func (s *Saver) Close() error {
	s.l.Lock()
	defer s.l.Unlock()
	s.closed = true
	s.docs = nil
	return nil
}
