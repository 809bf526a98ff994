// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package nft

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/venued/fault"
)

// limits
const (
	TokenIdLength = 32
)

// TokenID - the type for a token identifier
// stored as a fixed byte array
// represented as hex text for JSON encoding
// to get the bytes value just use tokenId[:]
type TokenID [TokenIdLength]byte

// NewTokenID - create a token id from a byte record
//
// SHA3-256 hash, for providers that derive identity from content
func NewTokenID(record []byte) TokenID {
	return TokenID(sha3.Sum256(record))
}

// String - convert a binary tokenId to hex string for use by the fmt package (for %s)
func (tokenId TokenID) String() string {
	return hex.EncodeToString(tokenId[:])
}

// GoString - convert a binary tokenId to hex string for use by the fmt package (for %#v)
func (tokenId TokenID) GoString() string {
	return "<token:" + hex.EncodeToString(tokenId[:]) + ">"
}

// Scan - convert a hex text representation to a tokenId for use by the format package scan routines
func (tokenId *TokenID) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(c rune) bool {
		if c >= '0' && c <= '9' {
			return true
		}
		if c >= 'A' && c <= 'F' {
			return true
		}
		if c >= 'a' && c <= 'f' {
			return true
		}
		return false
	})
	if nil != err {
		return err
	}
	if len(token) != hex.EncodedLen(TokenIdLength) {
		return fault.NotTokenId
	}

	byteCount, err := hex.Decode(tokenId[:], token)
	if nil != err {
		return err
	}

	if TokenIdLength != byteCount {
		return fault.NotTokenId
	}
	return nil
}

// MarshalText - convert tokenId to hex text
func (tokenId TokenID) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(tokenId))
	buffer := make([]byte, size)
	hex.Encode(buffer, tokenId[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into a tokenId
func (tokenId *TokenID) UnmarshalText(s []byte) error {
	if len(tokenId) != hex.DecodedLen(len(s)) {
		return fault.NotTokenId
	}
	byteCount, err := hex.Decode(tokenId[:], s)
	if nil != err {
		return err
	}
	if TokenIdLength != byteCount {
		return fault.NotTokenId
	}
	return nil
}

// TokenIDFromBytes - convert a byte slice to a tokenId
func TokenIDFromBytes(tokenId *TokenID, buffer []byte) error {
	if TokenIdLength != len(buffer) {
		return fault.NotTokenId
	}
	copy(tokenId[:], buffer)
	return nil
}
