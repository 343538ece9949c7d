// SPDX-FileCopyrightText: 2024 The xmlvalue Authors
//
// SPDX-License-Identifier: MIT

package sqlite

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"

	"github.com/ssbc/xmlvalue/internal/persist"
)

const table = "persisted_documents"

const schemaVersion1 = `
CREATE TABLE IF NOT EXISTS persisted_documents (
	doc_key TEXT PRIMARY KEY,
	data BLOB
);
PRAGMA user_version = 1;
`

// SqliteSaver stores documents in a single sqlite table.
type SqliteSaver struct {
	db *sql.DB
}

var _ persist.Saver = (*SqliteSaver)(nil)

// New opens the database at path. If path is a directory (or does not exist
// yet), the database file documents.db is created inside it.
func New(path string) (*SqliteSaver, error) {
	path, _, err := persist.Locate(path, "documents.db")
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, errors.Wrapf(err, "persist/sqlite: failed to open sqlite file: %s", path)
	}

	var version int
	err = db.QueryRow(`PRAGMA user_version`).Scan(&version)
	if err == sql.ErrNoRows || (err == nil && version == 0) {
		if _, err := db.Exec(schemaVersion1); err != nil {
			db.Close()
			return nil, errors.Wrap(err, "persist/sqlite: failed to init schema v1")
		}
	} else if err != nil {
		db.Close()
		return nil, errors.Wrapf(err, "persist/sqlite: schema version lookup failed %s", path)
	}

	return &SqliteSaver{db: db}, nil
}

func (s SqliteSaver) Close() error {
	return s.db.Close()
}
