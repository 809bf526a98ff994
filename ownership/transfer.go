// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"encoding/binary"

	"github.com/bitmark-inc/venued/account"
	"github.com/bitmark-inc/venued/fault"
	"github.com/bitmark-inc/venued/nft"
	"github.com/bitmark-inc/venued/storage"
)

const uint64ByteSize = 8

// Transfer - move a token to a new owner
//
// removes the previous owner's enumeration entries when the token was
// owned before, then appends the token to the new owner's list; all
// updates become durable together
func (o *ownership) Transfer(token nft.Token, to *account.Account) error {

	// ensure single threaded
	o.Lock()
	defer o.Unlock()

	if !o.initialised {
		return fault.NotInitialised
	}

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return err
	}

	// remove the current owner's records if the token was released before
	previousOwner := trx.Get(o.poolOwners, token.Id[:])
	if nil != previousOwner {

		dKey := append(append([]byte{}, previousOwner...), token.Id[:]...)
		dCount := trx.Get(o.poolOwnerIndex, dKey)
		if nil == dCount {
			o.log.Criticalf("transfer: no index entry for token: %s  owner: %x", token.Id, previousOwner)
			trx.Abort()
			return fault.DataInconsistent
		}

		oKey := append(append([]byte{}, previousOwner...), dCount...)
		trx.Delete(o.poolOwnerList, oKey)
		trx.Delete(o.poolOwnerIndex, dKey)
	}

	// increment the count for the new owner
	nKey := to.Bytes()
	count := trx.Get(o.poolNextCount, nKey)
	if nil == count {
		count = []byte{0, 0, 0, 0, 0, 0, 0, 0}
	} else if uint64ByteSize != len(count) {
		o.log.Criticalf("transfer: corrupt next count for owner: %x", nKey)
		trx.Abort()
		return fault.DataInconsistent
	}
	newCount := make([]byte, uint64ByteSize)
	binary.BigEndian.PutUint64(newCount, binary.BigEndian.Uint64(count)+1)
	trx.Put(o.poolNextCount, nKey, newCount)

	// write to the owner list
	oKey := append(to.Bytes(), count...)
	trx.Put(o.poolOwnerList, oKey, token.Id[:])

	// write new index record
	dKey := append(to.Bytes(), token.Id[:]...)
	trx.Put(o.poolOwnerIndex, dKey, count)

	// record the current owner of the token
	trx.Put(o.poolOwners, token.Id[:], to.Bytes())

	return trx.Commit()
}

// CurrentOwner - account currently holding a released token
func (o *ownership) CurrentOwner(tokenId nft.TokenID) (*account.Account, error) {
	o.Lock()
	defer o.Unlock()

	if !o.initialised {
		return nil, fault.NotInitialised
	}

	ownerBytes := o.poolOwners.Get(tokenId[:])
	if nil == ownerBytes {
		return nil, fault.OwnerNotFound
	}
	return account.AccountFromBytes(ownerBytes)
}
