// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package venue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/venued/fault"
	"github.com/bitmark-inc/venued/venue"
)

// sample market types
type fixedPrice struct {
	price uint64
}

type dutchAuction struct {
	reservePrice uint64
}

func TestNewVenueFlags(t *testing.T) {
	v := venue.New(fixedPrice{price: 100}, true)

	assert.False(t, v.IsLive(), "a venue must start not live")
	assert.True(t, v.IsWhitelisted(), "wrong whitelist flag")

	open := venue.New(fixedPrice{price: 100}, false)
	assert.False(t, open.IsWhitelisted(), "wrong whitelist flag")
}

func TestFlagWrites(t *testing.T) {
	v := venue.New(fixedPrice{price: 100}, false)

	v.SetLive(true)
	assert.True(t, v.IsLive(), "live flag not set")

	v.SetWhitelisted(true)
	assert.True(t, v.IsWhitelisted(), "whitelist flag not set")

	// flags are free standing: either can flip indefinitely
	v.SetLive(false)
	assert.False(t, v.IsLive(), "live flag not cleared")
	assert.True(t, v.IsWhitelisted(), "whitelist flag must be untouched")
}

func TestMarketAccess(t *testing.T) {
	v := venue.New(fixedPrice{price: 100}, false)

	m, err := venue.Market[fixedPrice](v)
	assert.Nil(t, err, "market access error")
	assert.Equal(t, uint64(100), m.price, "wrong market value")

	// pointer access mutates in place
	m.price = 175
	again, err := venue.Market[fixedPrice](v)
	assert.Nil(t, err, "market access error")
	assert.Equal(t, uint64(175), again.price, "market mutation lost")
}

func TestMarketWrongType(t *testing.T) {
	v := venue.New(fixedPrice{price: 100}, false)

	_, err := venue.Market[dutchAuction](v)
	assert.Equal(t, fault.IncorrectMarketType, err, "wrong error")

	_, err = venue.Delete[dutchAuction](v)
	assert.Equal(t, fault.IncorrectMarketType, err, "wrong error")

	// a failed delete must leave the venue intact
	m, err := venue.Market[fixedPrice](v)
	assert.Nil(t, err, "market access error")
	assert.Equal(t, uint64(100), m.price, "market lost by failed delete")
}

func TestDelete(t *testing.T) {
	v := venue.New(fixedPrice{price: 100}, true)

	market, err := venue.Delete[fixedPrice](v)
	assert.Nil(t, err, "delete error")
	assert.Equal(t, uint64(100), market.price, "wrong recovered market")

	// the venue is dismantled: any further typed access is a bug
	assert.Panics(t, func() {
		_, _ = venue.Market[fixedPrice](v)
	}, "access after delete must panic")

	assert.Panics(t, func() {
		_, _ = venue.Delete[fixedPrice](v)
	}, "second delete must panic")
}

func TestAsserts(t *testing.T) {
	v := venue.New(fixedPrice{price: 100}, false)

	assert.Equal(t, fault.NotLive, v.AssertIsLive(), "wrong error")
	assert.Equal(t, fault.NotWhitelisted, v.AssertIsWhitelisted(), "wrong error")
	assert.Nil(t, v.AssertIsNotWhitelisted(), "unexpected error")

	v.SetLive(true)
	v.SetWhitelisted(true)

	assert.Nil(t, v.AssertIsLive(), "unexpected error")
	assert.Nil(t, v.AssertIsWhitelisted(), "unexpected error")
	assert.Equal(t, fault.CurrentlyWhitelisted, v.AssertIsNotWhitelisted(), "wrong error")
}
