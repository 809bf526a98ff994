// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package nft_test

import (
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/venued/fault"
	"github.com/bitmark-inc/venued/nft"
)

func TestNewTokenID(t *testing.T) {
	one := nft.NewTokenID([]byte("some token payload"))
	same := nft.NewTokenID([]byte("some token payload"))
	other := nft.NewTokenID([]byte("a different payload"))

	assert.Equal(t, one, same, "identical records must hash to the same id")
	assert.NotEqual(t, one, other, "different records must hash to different ids")
}

func TestTokenIDString(t *testing.T) {
	tokenId := nft.NewTokenID([]byte("fingerprint"))

	expected := hex.EncodeToString(tokenId[:])
	assert.Equal(t, expected, tokenId.String(), "wrong string")
	assert.Equal(t, "<token:"+expected+">", tokenId.GoString(), "wrong go string")
	assert.Equal(t, expected, fmt.Sprintf("%s", tokenId), "wrong fmt output")
}

func TestTokenIDMarshalText(t *testing.T) {
	tokenId := nft.NewTokenID([]byte("fingerprint"))

	text, err := tokenId.MarshalText()
	assert.Nil(t, err, "marshal error")

	var restored nft.TokenID
	err = restored.UnmarshalText(text)
	assert.Nil(t, err, "unmarshal error")
	assert.Equal(t, tokenId, restored, "round trip mismatch")
}

func TestTokenIDUnmarshalTextRejectsWrongLength(t *testing.T) {
	var tokenId nft.TokenID
	err := tokenId.UnmarshalText([]byte("0123456789abcdef"))
	assert.Equal(t, fault.NotTokenId, err, "wrong error")
}

func TestTokenIDFromBytes(t *testing.T) {
	tokenId := nft.NewTokenID([]byte("fingerprint"))

	var restored nft.TokenID
	err := nft.TokenIDFromBytes(&restored, tokenId[:])
	assert.Nil(t, err, "from bytes error")
	assert.Equal(t, tokenId, restored, "round trip mismatch")

	err = nft.TokenIDFromBytes(&restored, tokenId[:nft.TokenIdLength-1])
	assert.Equal(t, fault.NotTokenId, err, "wrong error")
}
