// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/venued/account"
	"github.com/bitmark-inc/venued/depot"
	"github.com/bitmark-inc/venued/nft"
	"github.com/bitmark-inc/venued/ownership"
)

func runRedeem(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	var receiver *account.Account
	if receiverBase58 := c.String("receiver"); "" != receiverBase58 {
		a, err := account.AccountFromBase58(receiverBase58)
		if nil != err {
			return err
		}
		receiver = a
	}

	if m.verbose && nil != receiver {
		fmt.Fprintf(m.e, "receiver: %s\n", receiver)
	}

	shutdown, err := initialiseStack(m)
	if nil != err {
		return err
	}
	defer shutdown()

	token, err := depot.Redeem()
	if nil != err {
		return err
	}

	response := struct {
		TokenId  nft.TokenID `json:"tokenId"`
		Payload  []byte      `json:"payload"`
		Receiver string      `json:"receiver,omitempty"`
		Count    uint64      `json:"count"`
	}{
		TokenId: token.Id,
		Payload: token.Payload,
		Count:   depot.Count(),
	}

	if nil != receiver {
		err = ownership.Get().Transfer(token, receiver)
		if nil != err {
			// put the token back so the inventory is unchanged
			if e := depot.Deposit(token); nil != e {
				return e
			}
			return err
		}
		response.Receiver = receiver.String()
		response.Count = depot.Count()
	}

	return printJson(m.w, response)
}
