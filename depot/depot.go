// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package depot

import (
	"encoding/binary"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/venued/fault"
	"github.com/bitmark-inc/venued/nft"
	"github.com/bitmark-inc/venued/storage"
)

// from storage/setup.go:
//
//   S ++ count    - order of arrival of tokens on sale
//   T ++ token id - token payload

// globals
type globalDataType struct {
	sync.Mutex
	log         *logger.L
	onSale      *storage.PoolHandle
	tokens      *storage.PoolHandle
	initialised bool
}

// global storage
var globalData globalDataType

// Initialise - attach the custody pools
func Initialise(onSale, tokens *storage.PoolHandle) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("depot")
	globalData.log.Info("starting…")

	globalData.onSale = onSale
	globalData.tokens = tokens
	globalData.initialised = true

	return nil
}

// Finalise - shut down the custody store
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.onSale = nil
	globalData.tokens = nil
	globalData.initialised = false

	return nil
}

// Deposit - take custody of a token
//
// the sale sequence entry and the payload record become durable
// together
func Deposit(token nft.Token) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	if globalData.tokens.Has(token.Id[:]) {
		return fault.AlreadyDeposited
	}

	next := uint64(0)
	if e, found := globalData.onSale.LastElement(); found {
		next = binary.BigEndian.Uint64(e.Key) + 1
	}
	nextKey := make([]byte, 8)
	binary.BigEndian.PutUint64(nextKey, next)

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}
	trx.Put(globalData.onSale, nextKey, token.Id[:])
	trx.Put(globalData.tokens, token.Id[:], token.Payload)
	return trx.Commit()
}

// Redeem - release the most recently deposited token
func Redeem() (nft.Token, error) {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return nft.Token{}, fault.NotInitialised
	}

	e, found := globalData.onSale.LastElement()
	if !found {
		return nft.Token{}, fault.EmptyInventory
	}

	var tokenId nft.TokenID
	err := nft.TokenIDFromBytes(&tokenId, e.Value)
	if nil != err {
		globalData.log.Criticalf("corrupt sale sequence entry: %x", e.Value)
		return nft.Token{}, fault.DataInconsistent
	}

	payload := globalData.tokens.Get(e.Value)
	if nil == payload {
		globalData.log.Criticalf("no payload for token: %s", tokenId)
		return nft.Token{}, fault.DataInconsistent
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return nft.Token{}, err
	}
	trx.Delete(globalData.onSale, e.Key)
	trx.Delete(globalData.tokens, e.Value)
	err = trx.Commit()
	if nil != err {
		return nft.Token{}, err
	}

	return nft.Token{
		Id:      tokenId,
		Payload: payload,
	}, nil
}

// Count - number of tokens currently in custody
//
// the sale sequence keys stay dense because deposits append and
// redeems pop from the end, so the highest key determines the count
func Count() uint64 {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return 0
	}

	e, found := globalData.onSale.LastElement()
	if !found {
		return 0
	}
	return binary.BigEndian.Uint64(e.Key) + 1
}

// IsEmpty - check for an empty inventory
func IsEmpty() bool {
	return 0 == Count()
}
