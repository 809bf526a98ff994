// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"bytes"
	"encoding/binary"

	"github.com/bitmark-inc/venued/account"
	"github.com/bitmark-inc/venued/fault"
	"github.com/bitmark-inc/venued/nft"
)

// Record - one entry in an owner's token list
type Record struct {
	N       uint64      `json:"n,string"`
	TokenId nft.TokenID `json:"tokenId"`
}

// ListTokensFor - fetch a list of tokens for an owner
//
// start is the first count value to include, count limits the number
// of returned records; repeated calls with the last N + 1 page
// through one owner's holdings
func (o *ownership) ListTokensFor(owner *account.Account, start uint64, count int) ([]Record, error) {
	o.Lock()
	defer o.Unlock()

	if !o.initialised {
		return nil, fault.NotInitialised
	}

	startBytes := make([]byte, uint64ByteSize)
	binary.BigEndian.PutUint64(startBytes, start)

	ownerBytes := owner.Bytes()
	prefix := append(append([]byte{}, ownerBytes...), startBytes...)

	cursor := o.poolOwnerList.NewFetchCursor().Seek(prefix)

	// owner ++ count → token id
	items, err := cursor.Fetch(count)
	if nil != err {
		return nil, err
	}

	records := make([]Record, 0, len(items))

loop:
	for _, item := range items {
		n := len(item.Key)
		split := n - uint64ByteSize
		if split <= 0 {
			o.log.Criticalf("list: truncated owner list key: %x", item.Key)
			return nil, fault.DataInconsistent
		}
		itemOwner := item.Key[:split]
		if !bytes.Equal(ownerBytes, itemOwner) {
			break loop
		}

		record := Record{
			N: binary.BigEndian.Uint64(item.Key[split:]),
		}
		err = nft.TokenIDFromBytes(&record.TokenId, item.Value)
		if nil != err {
			o.log.Criticalf("list: corrupt owner list entry: %x", item.Value)
			return nil, fault.DataInconsistent
		}
		records = append(records, record)
	}
	return records, nil
}
