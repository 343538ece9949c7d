// SPDX-FileCopyrightText: 2024 The xmlvalue Authors
//
// SPDX-License-Identifier: MIT

package persist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocate(t *testing.T) {
	r := require.New(t)
	base := t.TempDir()

	// missing directory gets created
	dir := filepath.Join(base, "a", "b")
	f, exists, err := Locate(dir, "docs.db")
	r.NoError(err)
	r.False(exists)
	r.Equal(filepath.Join(dir, "docs.db"), f)
	fi, err := os.Stat(dir)
	r.NoError(err)
	r.True(fi.IsDir())

	// file inside an existing directory
	r.NoError(os.WriteFile(f, []byte("x"), 0600))
	f2, exists, err := Locate(dir, "docs.db")
	r.NoError(err)
	r.True(exists)
	r.Equal(f, f2)

	// an existing file is used directly
	f3, exists, err := Locate(f, "ignored")
	r.NoError(err)
	r.True(exists)
	r.Equal(f, f3)
}
