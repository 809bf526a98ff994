// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"github.com/mr-tron/base58"
)

// ToBase58 - encode a byte slice as Base58 text
func ToBase58(data []byte) string {
	return base58.Encode(data)
}

// FromBase58 - decode Base58 text to a byte slice
//
// returns an empty slice on malformed input
func FromBase58(encoded string) []byte {
	data, err := base58.Decode(encoded)
	if nil != err {
		return []byte{}
	}
	return data
}
