// SPDX-FileCopyrightText: 2024 The xmlvalue Authors
//
// SPDX-License-Identifier: MIT

package persist

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Locate resolves the database file of a single-file backend. An existing
// regular file at path is used as is. Otherwise path is a directory,
// created if needed, holding a file called name. exists reports whether
// that file is already there.
func Locate(path, name string) (file string, exists bool, err error) {
	fi, err := os.Stat(path)
	switch {
	case os.IsNotExist(err):
		if err := os.MkdirAll(path, 0700); err != nil {
			return "", false, errors.Wrapf(err, "persist: failed to create %s", path)
		}
	case err != nil:
		return "", false, errors.Wrapf(err, "persist: failed to stat %s", path)
	case !fi.IsDir():
		return path, true, nil
	}

	file = filepath.Join(path, name)
	_, err = os.Stat(file)
	if os.IsNotExist(err) {
		return file, false, nil
	}
	if err != nil {
		return "", false, errors.Wrapf(err, "persist: failed to stat %s", file)
	}
	return file, true, nil
}
