// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/venued/depot"
	"github.com/bitmark-inc/venued/nft"
)

func runDeposit(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	payloadHex := c.String("payload")
	if "" == payloadHex {
		return fmt.Errorf("payload is required")
	}

	payload, err := hex.DecodeString(payloadHex)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "payload: %x\n", payload)
	}

	shutdown, err := initialiseStack(m)
	if nil != err {
		return err
	}
	defer shutdown()

	token := nft.NewToken(nft.NewTokenID(payload), payload)

	err = depot.Deposit(token)
	if nil != err {
		return err
	}

	response := struct {
		TokenId nft.TokenID `json:"tokenId"`
		Count   uint64      `json:"count"`
	}{
		TokenId: token.Id,
		Count:   depot.Count(),
	}
	return printJson(m.w, response)
}
