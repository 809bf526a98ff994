// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/venued/fault"
	"github.com/bitmark-inc/venued/util"
)

// supported key algorithms
const (
	ED25519 = iota
	// end of list (one greater than last item)
	algorithmLimit = iota
)

// miscellaneous constants
const (
	checksumLength = 4
	publicKeySize  = 32

	// bits in key code starting from LSB
	publicKeyCode = 0x01
	testKeyCode   = 0x02

	algorithmShift = 4 // shift 4 bits to get algorithm
)

// Account - the identity a token can be transferred to
type Account struct {
	Test      bool
	PublicKey []byte
}

// AccountFromBase58 - convert a Base58 encoded string to an account
func AccountFromBase58(accountBase58Encoded string) (*Account, error) {
	accountDecoded := util.FromBase58(accountBase58Encoded)
	if 0 == len(accountDecoded) {
		return nil, fault.CannotDecodeAccount
	}

	// parse the key variant
	keyVariant, keyVariantLength := util.FromVarint64(accountDecoded)

	// check key type
	if 0 == keyVariantLength || keyVariant&publicKeyCode != publicKeyCode {
		return nil, fault.NotPublicKey
	}

	// compute algorithm
	keyAlgorithm := keyVariant >> algorithmShift
	if keyAlgorithm >= algorithmLimit {
		return nil, fault.InvalidKeyType
	}

	// network selection
	isTest := 0 != keyVariant&testKeyCode

	// compute key length
	keyLength := len(accountDecoded) - keyVariantLength - checksumLength
	if keyLength != publicKeySize {
		return nil, fault.InvalidKeyLength
	}

	// checksum
	checksumStart := len(accountDecoded) - checksumLength
	checksum := sha3.Sum256(accountDecoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], accountDecoded[checksumStart:]) {
		return nil, fault.ChecksumMismatch
	}

	publicKey := accountDecoded[keyVariantLength:checksumStart]
	return &Account{
		Test:      isTest,
		PublicKey: publicKey,
	}, nil
}

// AccountFromBytes - convert a binary encoded buffer to an account
func AccountFromBytes(accountBytes []byte) (*Account, error) {
	keyVariant, keyVariantLength := util.FromVarint64(accountBytes)

	if 0 == keyVariantLength || keyVariant&publicKeyCode != publicKeyCode {
		return nil, fault.NotPublicKey
	}

	keyAlgorithm := keyVariant >> algorithmShift
	if keyAlgorithm >= algorithmLimit {
		return nil, fault.InvalidKeyType
	}

	isTest := 0 != keyVariant&testKeyCode

	keyLength := len(accountBytes) - keyVariantLength
	if keyLength != publicKeySize {
		return nil, fault.InvalidKeyLength
	}

	publicKey := accountBytes[keyVariantLength:]
	return &Account{
		Test:      isTest,
		PublicKey: publicKey,
	}, nil
}

// Bytes - binary encoded form: key variant byte followed by raw key
func (account *Account) Bytes() []byte {
	keyVariant := byte(ED25519<<algorithmShift) | publicKeyCode
	if account.Test {
		keyVariant |= testKeyCode
	}
	return append([]byte{keyVariant}, account.PublicKey...)
}

// String - Base58 encoding of encoded key with checksum
func (account *Account) String() string {
	buffer := account.Bytes()
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return util.ToBase58(buffer)
}

// MarshalText - convert an account to its Base58 JSON form
func (account Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// UnmarshalText - convert a Base58 JSON form back to an account
func (account *Account) UnmarshalText(s []byte) error {
	a, err := AccountFromBase58(string(s))
	if nil != err {
		return err
	}
	account.Test = a.Test
	account.PublicKey = a.PublicKey
	return nil
}

// IsTesting - return whether the account is in test mode or not
func (account *Account) IsTesting() bool {
	return account.Test
}
