// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/venued/depot"
)

func runInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	shutdown, err := initialiseStack(m)
	if nil != err {
		return err
	}
	defer shutdown()

	response := struct {
		Database string `json:"database"`
		Count    uint64 `json:"count"`
		Empty    bool   `json:"empty"`
	}{
		Database: m.config.Database.Name,
		Count:    depot.Count(),
		Empty:    depot.IsEmpty(),
	}
	return printJson(m.w, response)
}
