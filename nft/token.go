// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package nft

// Token - an opaque sellable unit
//
// the payload belongs to the provider that issued the token; custody
// code moves the whole value by identifier and never looks inside
type Token struct {
	Id      TokenID `json:"id"`
	Payload []byte  `json:"payload"`
}

// NewToken - wrap a provider supplied identifier and payload
func NewToken(tokenId TokenID, payload []byte) Token {
	return Token{
		Id:      tokenId,
		Payload: payload,
	}
}
