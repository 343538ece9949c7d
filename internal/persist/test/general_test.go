// SPDX-FileCopyrightText: 2024 The xmlvalue Authors
//
// SPDX-License-Identifier: MIT

package test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ssbc/xmlvalue/internal/persist"
	"github.com/ssbc/xmlvalue/internal/persist/badger"
	"github.com/ssbc/xmlvalue/internal/persist/fs"
	"github.com/ssbc/xmlvalue/internal/persist/mem"
	"github.com/ssbc/xmlvalue/internal/persist/mkv"
	"github.com/ssbc/xmlvalue/internal/persist/sqlite"
)

func SimpleSaver(mk func(t *testing.T) persist.Saver) func(*testing.T) {
	return func(t *testing.T) {
		r := require.New(t)
		p := mk(t)
		defer p.Close()

		l, err := p.List()
		r.NoError(err)
		r.Len(l, 0, "%v", l)

		k := persist.Key{0, 0, 0, 1}
		d, err := p.Get(k)
		r.ErrorIs(err, persist.ErrNotFound)
		r.Nil(d)

		testData := []byte(`<string name="greeting">hello</string>`)

		err = p.Put(k, testData)
		r.NoError(err)

		l, err = p.List()
		r.NoError(err)
		r.Len(l, 1)
		r.Equal(k, l[0])

		d, err = p.Get(k)
		r.NoError(err)
		r.Equal(testData, d)

		// overwrite
		testData = []byte(`<null name="greeting" />`)
		r.NoError(p.Put(k, testData))
		d, err = p.Get(k)
		r.NoError(err)
		r.Equal(testData, d)

		k2 := persist.Key("second")
		r.NoError(p.Put(k2, []byte("<list />")))
		l, err = p.List()
		r.NoError(err)
		r.Len(l, 2)

		r.NoError(p.Delete(k))
		_, err = p.Get(k)
		r.ErrorIs(err, persist.ErrNotFound)

		l, err = p.List()
		r.NoError(err)
		r.Equal([]persist.Key{k2}, l)
	}
}

func TestSaver(t *testing.T) {
	t.Run("mem", SimpleSaver(makeMem))
	t.Run("fs", SimpleSaver(makeFS))
	t.Run("sqlite", SimpleSaver(makeSqlite))
	t.Run("mkv", SimpleSaver(makeMKV))
	t.Run("badger", SimpleSaver(makeBadger))
}

func makeMem(t *testing.T) persist.Saver {
	return mem.New()
}

func makeFS(t *testing.T) persist.Saver {
	s, err := fs.New(t.TempDir())
	require.NoError(t, err)
	return s
}

func makeSqlite(t *testing.T) persist.Saver {
	s, err := sqlite.New(t.TempDir())
	require.NoError(t, err)
	return s
}

func makeMKV(t *testing.T) persist.Saver {
	s, err := mkv.New(filepath.Join(t.TempDir(), "docs.kv"))
	require.NoError(t, err)
	return s
}

func makeBadger(t *testing.T) persist.Saver {
	s, err := badger.New(t.TempDir())
	require.NoError(t, err)
	return s
}
