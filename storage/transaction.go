// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
)

// Transaction - atomic batch of pool updates
//
// writes made through a transaction become durable together on
// Commit; Abort discards everything since Begin
type Transaction interface {
	Abort()
	Begin() error
	Commit() error
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) []byte
	GetN(*PoolHandle, []byte) (uint64, bool)
	Has(*PoolHandle, []byte) bool
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
}

type TransactionImpl struct {
	access Access
}

func newTransaction(access Access) Transaction {
	return &TransactionImpl{
		access: access,
	}
}

func (t *TransactionImpl) Begin() error {
	return t.access.Begin()
}

func (t *TransactionImpl) Put(handle *PoolHandle, key []byte, value []byte) {
	handle.put(key, value)
}

func (t *TransactionImpl) PutN(handle *PoolHandle, key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	handle.put(key, buffer)
}

func (t *TransactionImpl) Delete(handle *PoolHandle, key []byte) {
	handle.remove(key)
}

func (t *TransactionImpl) Get(handle *PoolHandle, key []byte) []byte {
	return handle.Get(key)
}

func (t *TransactionImpl) GetN(handle *PoolHandle, key []byte) (uint64, bool) {
	return handle.GetN(key)
}

func (t *TransactionImpl) Has(handle *PoolHandle, key []byte) bool {
	return handle.Has(key)
}

func (t *TransactionImpl) Commit() error {
	err := t.access.Commit()
	if nil != err {
		return err
	}
	t.access.Abort()
	return nil
}

func (t *TransactionImpl) Abort() {
	t.access.Abort()
}
