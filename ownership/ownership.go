// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/venued/account"
	"github.com/bitmark-inc/venued/fault"
	"github.com/bitmark-inc/venued/nft"
	"github.com/bitmark-inc/venued/storage"
)

// Ownership - interface for the owner index
type Ownership interface {
	Transfer(token nft.Token, to *account.Account) error
	CurrentOwner(tokenId nft.TokenID) (*account.Account, error)
	ListTokensFor(owner *account.Account, start uint64, count int) ([]Record, error)
}

type ownership struct {
	sync.Mutex
	log            *logger.L
	poolOwners     *storage.PoolHandle
	poolNextCount  *storage.PoolHandle
	poolOwnerList  *storage.PoolHandle
	poolOwnerIndex *storage.PoolHandle
	initialised    bool
}

var data ownership

// Initialise - attach the owner index pools
func Initialise(owners, nextCount, ownerList, ownerIndex *storage.PoolHandle) error {
	data.Lock()
	defer data.Unlock()

	if data.initialised {
		return fault.AlreadyInitialised
	}

	data.log = logger.New("ownership")
	data.log.Info("starting…")

	data.poolOwners = owners
	data.poolNextCount = nextCount
	data.poolOwnerList = ownerList
	data.poolOwnerIndex = ownerIndex
	data.initialised = true

	return nil
}

// Finalise - detach the owner index
func Finalise() error {
	data.Lock()
	defer data.Unlock()

	if !data.initialised {
		return fault.NotInitialised
	}

	data.log.Info("shutting down…")
	data.log.Flush()

	data.poolOwners = nil
	data.poolNextCount = nil
	data.poolOwnerList = nil
	data.poolOwnerIndex = nil
	data.initialised = false

	return nil
}

// Get - return the owner index
func Get() Ownership {
	return &data
}
