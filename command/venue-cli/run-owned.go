// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/venued/account"
	"github.com/bitmark-inc/venued/ownership"
)

func runOwned(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	ownerBase58 := c.String("owner")
	if "" == ownerBase58 {
		return fmt.Errorf("owner is required")
	}

	owner, err := account.AccountFromBase58(ownerBase58)
	if nil != err {
		return err
	}

	start := c.Uint64("start")
	count := c.Int("count")
	if count <= 0 {
		return fmt.Errorf("invalid count: %d", count)
	}

	if m.verbose {
		fmt.Fprintf(m.e, "owner: %s\n", owner)
		fmt.Fprintf(m.e, "start: %d\n", start)
		fmt.Fprintf(m.e, "count: %d\n", count)
	}

	shutdown, err := initialiseStack(m)
	if nil != err {
		return err
	}
	defer shutdown()

	records, err := ownership.Get().ListTokensFor(owner, start, count)
	if nil != err {
		return err
	}

	response := struct {
		Owner   string             `json:"owner"`
		Records []ownership.Record `json:"records"`
	}{
		Owner:   owner.String(),
		Records: records,
	}
	return printJson(m.w, response)
}
