// SPDX-FileCopyrightText: 2024 The xmlvalue Authors
//
// SPDX-License-Identifier: MIT

package xmlvalue

import (
	"encoding/hex"

	"github.com/pkg/errors"
)

// EncodeHex renders b as lowercase hex, high nibble first, without separators.
func EncodeHex(b []byte) string {
	return hex.EncodeToString(b)
}

// DecodeHex parses exactly num bytes worth of hex digits from s.
func DecodeHex(s string, num int) ([]byte, error) {
	if len(s) != 2*num {
		return nil, errors.Errorf("expected %d hex digits, got %d", 2*num, len(s))
	}
	buf := make([]byte, num)
	if _, err := hex.Decode(buf, []byte(s)); err != nil {
		return nil, err
	}
	return buf, nil
}
