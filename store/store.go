// SPDX-FileCopyrightText: 2024 The xmlvalue Authors
//
// SPDX-License-Identifier: MIT

// Package store keeps named value documents, such as application settings,
// in a persistence backend. Documents are stored in their serialized form
// and can be observed for changes.
package store // import "github.com/ssbc/xmlvalue/store"

import (
	"context"
	"sort"
	"sync"

	"github.com/pkg/errors"
	"github.com/ssbc/go-luigi"
	"go.mindeco.de/log"
	"go.mindeco.de/log/level"

	"github.com/ssbc/xmlvalue"
	"github.com/ssbc/xmlvalue/codec"
	"github.com/ssbc/xmlvalue/codec/xmlcodec"
	"github.com/ssbc/xmlvalue/internal/persist"
)

// ErrNotFound is returned by Get for keys without a document.
var ErrNotFound = errors.New("store: document not found")

// Unset is the value of an observable for a key without a document.
type Unset struct {
	Key string
}

// Option configures a Store.
type Option func(*Store)

// WithCodec sets the codec documents are serialized with. Defaults to the
// XML codec.
func WithCodec(c codec.Codec) Option {
	return func(s *Store) { s.codec = c }
}

// WithLogger sets the logger. Defaults to a nop logger.
func WithLogger(l log.Logger) Option {
	return func(s *Store) { s.log = l }
}

// Store maps string keys to documents. It is safe for concurrent use.
type Store struct {
	saver persist.Saver
	codec codec.Codec
	log   log.Logger

	l    sync.Mutex
	obvs map[string]luigi.Observable
}

// New returns a Store on top of saver. The store takes ownership of saver
// and closes it in Close.
func New(saver persist.Saver, opts ...Option) *Store {
	s := &Store{
		saver: saver,
		codec: xmlcodec.New(),
		log:   log.NewNopLogger(),
		obvs:  make(map[string]luigi.Observable),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Put serializes v and stores it under key, replacing any earlier document.
func (s *Store) Put(ctx context.Context, key string, v xmlvalue.Value) error {
	if err := checkKey(ctx, key); err != nil {
		return err
	}

	data, err := s.codec.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "store: failed to encode %q", key)
	}

	if err := s.saver.Put(persist.Key(key), data); err != nil {
		return errors.Wrapf(err, "store: failed to save %q", key)
	}
	level.Debug(s.log).Log("event", "put", "key", key, "kind", xmlvalue.KindOf(v), "bytes", len(data))

	return s.notify(key, v)
}

// Get loads and decodes the document stored under key.
func (s *Store) Get(ctx context.Context, key string) (xmlvalue.Value, error) {
	if err := checkKey(ctx, key); err != nil {
		return nil, err
	}

	data, err := s.saver.Get(persist.Key(key))
	if errors.Is(err, persist.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "store: failed to load %q", key)
	}

	v, err := s.codec.Unmarshal(data)
	if err != nil {
		level.Warn(s.log).Log("event", "decode failed", "key", key, "err", err)
		return nil, errors.Wrapf(err, "store: document %q is not decodable", key)
	}
	return v, nil
}

// Delete removes the document stored under key. Deleting a missing key is
// not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := checkKey(ctx, key); err != nil {
		return err
	}

	if err := s.saver.Delete(persist.Key(key)); err != nil {
		return errors.Wrapf(err, "store: failed to delete %q", key)
	}
	level.Debug(s.log).Log("event", "delete", "key", key)

	return s.notify(key, Unset{Key: key})
}

// Keys returns all keys with a document, sorted.
func (s *Store) Keys(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := s.saver.List()
	if err != nil {
		return nil, errors.Wrap(err, "store: failed to list keys")
	}

	keys := make([]string, len(raw))
	for i, k := range raw {
		keys[i] = string(k)
	}
	sort.Strings(keys)
	return keys, nil
}

// Observe returns a read-only observable holding the current document of
// key, or Unset if there is none. It is updated by Put and Delete.
func (s *Store) Observe(ctx context.Context, key string) (luigi.Observable, error) {
	if err := checkKey(ctx, key); err != nil {
		return nil, err
	}

	s.l.Lock()
	obv, ok := s.obvs[key]
	s.l.Unlock()
	if ok {
		return roObv{obv}, nil
	}

	var cur interface{}
	v, err := s.Get(ctx, key)
	switch {
	case errors.Is(err, ErrNotFound):
		cur = Unset{Key: key}
	case err != nil:
		return nil, err
	default:
		cur = v
	}

	s.l.Lock()
	defer s.l.Unlock()
	// a concurrent Observe might have won
	if obv, ok := s.obvs[key]; ok {
		return roObv{obv}, nil
	}
	obv = luigi.NewObservable(cur)
	s.obvs[key] = obv
	return roObv{obv}, nil
}

// Close closes the underlying saver.
func (s *Store) Close() error {
	return s.saver.Close()
}

func (s *Store) notify(key string, v interface{}) error {
	s.l.Lock()
	obv, ok := s.obvs[key]
	s.l.Unlock()
	if !ok {
		return nil
	}
	return errors.Wrap(obv.Set(v), "store: failed to update observable")
}

func checkKey(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if key == "" {
		return errors.New("store: empty key")
	}
	return nil
}

type roObv struct {
	luigi.Observable
}

func (obv roObv) Set(interface{}) error {
	return errors.New("store: read-only observable")
}
