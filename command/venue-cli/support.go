// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/venued/depot"
	"github.com/bitmark-inc/venued/fault"
	"github.com/bitmark-inc/venued/ownership"
	"github.com/bitmark-inc/venued/storage"
)

// bring up logging, the database and the custody modules
//
// the returned function shuts everything down in reverse order
func initialiseStack(m *metadata) (func(), error) {

	err := logger.Initialise(m.config.Logging)
	if nil != err {
		return nil, err
	}

	err = fault.Initialise()
	if nil != err {
		logger.Finalise()
		return nil, err
	}

	err = storage.Initialise(m.config.Database.Name, storage.ReadWrite)
	if nil != err {
		logger.Finalise()
		return nil, err
	}

	err = depot.Initialise(storage.Pool.OnSale, storage.Pool.Tokens)
	if nil != err {
		storage.Finalise()
		logger.Finalise()
		return nil, err
	}

	err = ownership.Initialise(
		storage.Pool.Owners,
		storage.Pool.OwnerNextCount,
		storage.Pool.OwnerList,
		storage.Pool.OwnerTxIndex,
	)
	if nil != err {
		_ = depot.Finalise()
		storage.Finalise()
		logger.Finalise()
		return nil, err
	}

	shutdown := func() {
		_ = ownership.Finalise()
		_ = depot.Finalise()
		storage.Finalise()
		fault.Finalise()
		logger.Finalise()
	}
	return shutdown, nil
}
