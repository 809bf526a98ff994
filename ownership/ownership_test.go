// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership_test

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/venued/account"
	"github.com/bitmark-inc/venued/fault"
	"github.com/bitmark-inc/venued/listing"
	"github.com/bitmark-inc/venued/nft"
	"github.com/bitmark-inc/venued/ownership"
	"github.com/bitmark-inc/venued/storage"
)

const (
	databaseFileName = "test.leveldb"
	logDirectory     = "log"
)

// the owner index must satisfy the listing transfer collaborator
var _ listing.Transferrer = ownership.Get()

func setupTestLogger() {
	_ = os.RemoveAll(logDirectory)
	_ = os.Mkdir(logDirectory, 0700)

	logging := logger.Configuration{
		Directory: logDirectory,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func TestMain(m *testing.M) {
	setupTestLogger()
	rc := m.Run()
	_ = os.RemoveAll(logDirectory)
	os.Exit(rc)
}

// configure for testing
func setup(t *testing.T) {
	os.RemoveAll(databaseFileName)
	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
	err = ownership.Initialise(
		storage.Pool.Owners,
		storage.Pool.OwnerNextCount,
		storage.Pool.OwnerList,
		storage.Pool.OwnerTxIndex,
	)
	if nil != err {
		t.Fatalf("ownership initialise error: %s", err)
	}
}

// post test cleanup
func teardown(t *testing.T) {
	_ = ownership.Finalise()
	storage.Finalise()
	os.RemoveAll(databaseFileName)
}

// make a token with a payload derived identifier
func makeToken(n int) nft.Token {
	payload := []byte(fmt.Sprintf("owned token %d", n))
	return nft.NewToken(nft.NewTokenID(payload), payload)
}

// make a distinct test account
func makeAccount(seed byte) *account.Account {
	publicKey := make([]byte, 32)
	for i := 0; i < len(publicKey); i += 1 {
		publicKey[i] = seed + byte(i)
	}
	return &account.Account{
		Test:      true,
		PublicKey: publicKey,
	}
}

func TestTransferAndCurrentOwner(t *testing.T) {
	setup(t)
	defer teardown(t)

	own := ownership.Get()

	alpha := makeAccount(0x10)
	beta := makeAccount(0x80)
	token := makeToken(1)

	_, err := own.CurrentOwner(token.Id)
	assert.Equal(t, fault.OwnerNotFound, err, "wrong error")

	err = own.Transfer(token, alpha)
	assert.Nil(t, err, "transfer error")

	holder, err := own.CurrentOwner(token.Id)
	assert.Nil(t, err, "current owner error")
	assert.Equal(t, alpha.Bytes(), holder.Bytes(), "wrong owner")

	// move the token on to a second account
	err = own.Transfer(token, beta)
	assert.Nil(t, err, "transfer error")

	holder, err = own.CurrentOwner(token.Id)
	assert.Nil(t, err, "current owner error")
	assert.Equal(t, beta.Bytes(), holder.Bytes(), "wrong owner")

	// the first owner's enumeration entries are gone
	records, err := own.ListTokensFor(alpha, 0, 10)
	assert.Nil(t, err, "list error")
	assert.Equal(t, 0, len(records), "stale entries for previous owner")

	records, err = own.ListTokensFor(beta, 0, 10)
	assert.Nil(t, err, "list error")
	assert.Equal(t, 1, len(records), "wrong record count")
	assert.Equal(t, token.Id, records[0].TokenId, "wrong token id")
}

func TestListTokensFor(t *testing.T) {
	setup(t)
	defer teardown(t)

	own := ownership.Get()

	alpha := makeAccount(0x10)
	beta := makeAccount(0x80)

	tokens := make([]nft.Token, 5)
	for i := 0; i < len(tokens); i += 1 {
		tokens[i] = makeToken(i)
		assert.Nil(t, own.Transfer(tokens[i], alpha), "transfer error")
	}

	// another owner's holdings must not leak into the listing
	other := makeToken(99)
	assert.Nil(t, own.Transfer(other, beta), "transfer error")

	records, err := own.ListTokensFor(alpha, 0, 10)
	assert.Nil(t, err, "list error")
	assert.Equal(t, len(tokens), len(records), "wrong record count")
	for i, r := range records {
		assert.Equal(t, uint64(i), r.N, "wrong sequence number")
		assert.Equal(t, tokens[i].Id, r.TokenId, "wrong token id")
	}

	// page through two at a time
	page, err := own.ListTokensFor(alpha, 0, 2)
	assert.Nil(t, err, "list error")
	assert.Equal(t, 2, len(page), "wrong page size")

	page, err = own.ListTokensFor(alpha, page[1].N+1, 2)
	assert.Nil(t, err, "list error")
	assert.Equal(t, 2, len(page), "wrong page size")
	assert.Equal(t, tokens[2].Id, page[0].TokenId, "wrong token id")
	assert.Equal(t, tokens[3].Id, page[1].TokenId, "wrong token id")
}
