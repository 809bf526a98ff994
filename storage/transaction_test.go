// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/venued/fault"
	"github.com/bitmark-inc/venued/storage"
)

func TestTransactionCommit(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin transaction error")

	trx.Put(p, []byte("alpha"), []byte("one"))
	trx.PutN(p, []byte("counter"), 7)

	// pending writes are visible through the transaction cache
	assert.Equal(t, []byte("one"), trx.Get(p, []byte("alpha")), "pending record not visible")
	assert.True(t, trx.Has(p, []byte("alpha")), "pending record not visible")
	n, found := trx.GetN(p, []byte("counter"))
	assert.True(t, found, "pending counter not visible")
	assert.Equal(t, uint64(7), n, "wrong counter")

	err = trx.Commit()
	assert.Nil(t, err, "commit error")

	assert.Equal(t, []byte("one"), p.Get([]byte("alpha")), "committed record missing")
	n, found = p.GetN([]byte("counter"))
	assert.True(t, found, "committed counter missing")
	assert.Equal(t, uint64(7), n, "wrong counter")
}

func TestTransactionAbort(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData
	p.Put([]byte("keep"), []byte("original"))

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin transaction error")

	trx.Put(p, []byte("discard"), []byte("never written"))
	trx.Delete(p, []byte("keep"))
	trx.Abort()

	assert.Nil(t, p.Get([]byte("discard")), "aborted record was written")
	assert.Equal(t, []byte("original"), p.Get([]byte("keep")), "aborted delete was applied")
}

func TestTransactionInUse(t *testing.T) {
	setup(t)
	defer teardown(t)

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin transaction error")

	_, err = storage.NewDBTransaction()
	assert.Equal(t, fault.TransactionAlreadyInUse, err, "wrong error")

	// commit releases the transaction for reuse
	err = trx.Commit()
	assert.Nil(t, err, "commit error")

	trx, err = storage.NewDBTransaction()
	assert.Nil(t, err, "begin transaction error")
	trx.Abort()
}
