// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package warehouse

import (
	"github.com/bitmark-inc/venued/bag"
	"github.com/bitmark-inc/venued/fault"
	"github.com/bitmark-inc/venued/nft"
)

// Warehouse - custody for tokens of one logical collection
//
// invariant: the identifiers in onSale are exactly the keys of tokens
//
// no internal locking: the caller must hold exclusive access for any
// mutating call (see the listing package)
type Warehouse struct {
	onSale []nft.TokenID
	tokens *bag.Bag[nft.TokenID]
}

// New - create an empty warehouse
func New() *Warehouse {
	return &Warehouse{
		onSale: make([]nft.TokenID, 0, 10),
		tokens: bag.New[nft.TokenID](),
	}
}

// Deposit - take custody of a token
//
// always succeeds; the token is now listed for sale
func (w *Warehouse) Deposit(token nft.Token) {
	w.onSale = append(w.onSale, token.Id)
	bag.Insert(w.tokens, token.Id, token)
}

// Redeem - release custody of the most recently deposited token
//
// the identifier pop and the keyed removal are one atomic step: once
// the identifier is popped the keyed entry must exist, anything else
// is corruption and aborts the process
func (w *Warehouse) Redeem() (nft.Token, error) {
	if 0 == len(w.onSale) {
		return nft.Token{}, fault.EmptyInventory
	}

	last := len(w.onSale) - 1
	tokenId := w.onSale[last]
	w.onSale = w.onSale[:last]

	token, err := bag.Remove[nft.Token](w.tokens, tokenId)
	if nil != err {
		fault.Panicf("warehouse.Redeem: listed token missing from store: %s", tokenId)
	}
	return token, nil
}

// Length - number of tokens on sale
func (w *Warehouse) Length() int {
	return len(w.onSale)
}

// IsEmpty - check if no tokens remain
func (w *Warehouse) IsEmpty() bool {
	return 0 == len(w.onSale)
}
