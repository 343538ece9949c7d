// SPDX-FileCopyrightText: 2024 The xmlvalue Authors
//
// SPDX-License-Identifier: MIT

package sqlite

import (
	"database/sql"
	"encoding/hex"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/ssbc/xmlvalue/internal/persist"
)

func (s SqliteSaver) Put(key persist.Key, data []byte) error {
	hexKey := hex.EncodeToString(key)
	_, err := squirrel.Replace(table).
		Columns("doc_key", "data").
		Values(hexKey, data).
		RunWith(s.db).
		Exec()
	if err != nil {
		return errors.Wrap(err, "persist/sqlite/put: failed to replace value")
	}
	return nil
}

func (s SqliteSaver) Get(key persist.Key) ([]byte, error) {
	var data []byte
	hexKey := hex.EncodeToString(key)
	err := squirrel.Select("data").
		From(table).
		Where(squirrel.Eq{"doc_key": hexKey}).
		RunWith(s.db).
		QueryRow().
		Scan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, persist.ErrNotFound
		}
		return nil, errors.Wrapf(err, "persist/sqlite/get(%s): failed to execute query", hexKey)
	}
	return data, nil
}

func (s SqliteSaver) Delete(key persist.Key) error {
	hexKey := hex.EncodeToString(key)
	_, err := squirrel.Delete(table).
		Where(squirrel.Eq{"doc_key": hexKey}).
		RunWith(s.db).
		Exec()
	return errors.Wrapf(err, "persist/sqlite/delete(%s): failed to execute statement", hexKey)
}

func (s SqliteSaver) List() ([]persist.Key, error) {
	var keys []persist.Key
	rows, err := squirrel.Select("doc_key").
		From(table).
		OrderBy("doc_key").
		RunWith(s.db).
		Query()
	if err != nil {
		return nil, errors.Wrap(err, "persist/sqlite/list: failed to execute rows query")
	}
	defer rows.Close()

	for rows.Next() {
		var k string
		err := rows.Scan(&k)
		if err != nil {
			return nil, errors.Wrap(err, "persist/sqlite/list: failed to scan row result")
		}
		bk, err := hex.DecodeString(k)
		if err != nil {
			return nil, errors.Wrapf(err, "persist/sqlite/list: invalid key: %q", k)
		}
		keys = append(keys, bk)
	}

	return keys, rows.Err()
}
