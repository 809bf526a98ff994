// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package venue

import (
	"github.com/bitmark-inc/venued/bag"
	"github.com/bitmark-inc/venued/fault"
)

// key of the single market entry in the private bag
const marketKey = byte('M')

// Venue - one market gated by live and whitelist flags
type Venue struct {
	slot          *bag.Bag[byte]
	isLive        bool
	isWhitelisted bool
}

// New - wrap a market whose type is fixed at this call
//
// a venue always starts not live
func New[M any](market M, isWhitelisted bool) *Venue {
	v := &Venue{
		slot:          bag.New[byte](),
		isLive:        false,
		isWhitelisted: isWhitelisted,
	}
	bag.Insert(v.slot, marketKey, market)
	return v
}

// SetLive - unconditional flag write
func (v *Venue) SetLive(isLive bool) {
	v.isLive = isLive
}

// SetWhitelisted - unconditional flag write
func (v *Venue) SetWhitelisted(isWhitelisted bool) {
	v.isWhitelisted = isWhitelisted
}

// IsLive - query the live flag
func (v *Venue) IsLive() bool {
	return v.isLive
}

// IsWhitelisted - query the whitelist flag
func (v *Venue) IsWhitelisted() bool {
	return v.isWhitelisted
}

// Market - typed access to the wrapped market
//
// the pointer aliases the stored value so this is also the mutable
// accessor; calling after Delete is a programming error and aborts
func Market[M any](v *Venue) (*M, error) {
	if !v.slot.Has(marketKey) {
		fault.Panic("venue.Market: venue already dismantled")
	}
	market, err := bag.Get[M](v.slot, marketKey)
	if nil != err {
		return nil, fault.IncorrectMarketType
	}
	return market, nil
}

// Delete - dismantle the venue returning ownership of the market
//
// this is the only way to recover the wrapped market; the venue must
// not be used afterwards
func Delete[M any](v *Venue) (M, error) {
	var zero M
	if !v.slot.Has(marketKey) {
		fault.Panic("venue.Delete: venue already dismantled")
	}
	market, err := bag.Remove[M](v.slot, marketKey)
	if nil != err {
		return zero, fault.IncorrectMarketType
	}
	return market, nil
}

// AssertIsLive - precondition for purchase flows
func (v *Venue) AssertIsLive() error {
	if !v.isLive {
		return fault.NotLive
	}
	return nil
}

// AssertIsWhitelisted - precondition for whitelist gated purchases
func (v *Venue) AssertIsWhitelisted() error {
	if !v.isWhitelisted {
		return fault.NotWhitelisted
	}
	return nil
}

// AssertIsNotWhitelisted - precondition for open purchases
func (v *Venue) AssertIsNotWhitelisted() error {
	if v.isWhitelisted {
		return fault.CurrentlyWhitelisted
	}
	return nil
}
