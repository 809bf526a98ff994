// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listing

import (
	"github.com/bitmark-inc/venued/account"
	"github.com/bitmark-inc/venued/bag"
	"github.com/bitmark-inc/venued/fault"
	"github.com/bitmark-inc/venued/nft"
	"github.com/bitmark-inc/venued/warehouse"
)

// MarketID - registry local market identifier
//
// identifiers are a sequence that never repeats within one listing;
// they are never reused even though markets cannot be removed
type MarketID uint64

// per market gate flags, kept as one record so the two cannot drift
type marketFlags struct {
	live        bool
	whitelisted bool
}

// Transferrer - external collaborator completing an ownership transfer
type Transferrer interface {
	Transfer(token nft.Token, to *account.Account) error
}

// Listing - a sale registry of markets over one inventory
//
// no internal locking: the caller must hold exclusive access for any
// mutating call, shared access is sufficient for queries (see the
// concurrency note in the package comment of bag)
type Listing struct {
	flags        map[MarketID]marketFlags
	markets      *bag.Bag[MarketID]
	nextMarketId MarketID

	// fixed at construction
	justInTime bool

	// stocked ahead mode only
	warehouse *warehouse.Warehouse

	// just in time mode only: same lockstep invariant as a warehouse
	jitOnSale []nft.TokenID
	jitTokens *bag.Bag[nft.TokenID]
}

// New - create a listing with a fixed custody mode
//
// justInTime false attaches an embedded warehouse to stock before the
// sale; justInTime true keeps tokens directly on the listing
func New(justInTime bool) *Listing {
	l := &Listing{
		flags:      make(map[MarketID]marketFlags),
		markets:    bag.New[MarketID](),
		justInTime: justInTime,
	}
	if justInTime {
		l.jitOnSale = make([]nft.TokenID, 0, 10)
		l.jitTokens = bag.New[nft.TokenID]()
	} else {
		l.warehouse = warehouse.New()
	}
	return l
}

// IsJustInTime - query the custody mode
func (l *Listing) IsJustInTime() bool {
	return l.justInTime
}

// AddMarket - attach a market behind fresh gate flags
//
// the sole insertion path: the flags record and the stored market are
// created together so the collections cannot drift; markets start not
// live and there is no removal counterpart
func AddMarket[M any](l *Listing, market M, isWhitelisted bool) MarketID {
	marketId := l.nextMarketId
	l.nextMarketId += 1

	l.flags[marketId] = marketFlags{
		live:        false,
		whitelisted: isWhitelisted,
	}
	bag.Insert(l.markets, marketId, market)
	return marketId
}

// DepositToken - stock the embedded warehouse ahead of the sale
//
// only valid when the listing was created with justInTime false
func (l *Listing) DepositToken(token nft.Token) error {
	if l.justInTime {
		return fault.InvalidSaleMode
	}
	l.warehouse.Deposit(token)
	return nil
}

// DepositTokenJustInTime - attach a token directly to the listing
//
// only valid when the listing was created with justInTime true; the
// token is keyed by its own identifier and recorded on the listing's
// own on sale list
func (l *Listing) DepositTokenJustInTime(token nft.Token) error {
	if !l.justInTime {
		return fault.InvalidSaleMode
	}
	l.jitOnSale = append(l.jitOnSale, token.Id)
	bag.Insert(l.jitTokens, token.Id, token)
	return nil
}

// RedeemToken - release the most recently available token
//
// pops from whichever custody the mode selects; a failed redeem
// leaves the listing unchanged
func (l *Listing) RedeemToken() (nft.Token, error) {
	if !l.justInTime {
		token, err := l.warehouse.Redeem()
		if nil != err {
			return nft.Token{}, fault.NoTokensLeft
		}
		return token, nil
	}

	if 0 == len(l.jitOnSale) {
		return nft.Token{}, fault.NoTokensLeft
	}
	last := len(l.jitOnSale) - 1
	tokenId := l.jitOnSale[last]
	l.jitOnSale = l.jitOnSale[:last]

	token, err := bag.Remove[nft.Token](l.jitTokens, tokenId)
	if nil != err {
		fault.Panicf("listing.RedeemToken: listed token missing from store: %s", tokenId)
	}
	return token, nil
}

// RedeemTokenTo - redeem and hand the token to a recipient
//
// the transfer collaborator completes the ownership change; if it
// fails the token is returned to custody so the whole operation is
// all or nothing
func (l *Listing) RedeemTokenTo(to *account.Account, trf Transferrer) error {
	token, err := l.RedeemToken()
	if nil != err {
		return err
	}

	err = trf.Transfer(token, to)
	if nil != err {
		// restore pre call custody state
		if l.justInTime {
			l.jitOnSale = append(l.jitOnSale, token.Id)
			bag.Insert(l.jitTokens, token.Id, token)
		} else {
			l.warehouse.Deposit(token)
		}
		return err
	}
	return nil
}

// SetLive - overwrite the live flag of one market
func (l *Listing) SetLive(marketId MarketID, isLive bool) error {
	f, ok := l.flags[marketId]
	if !ok {
		return fault.UndefinedMarket
	}
	f.live = isLive
	l.flags[marketId] = f
	return nil
}

// SetWhitelisted - overwrite the whitelist flag of one market
func (l *Listing) SetWhitelisted(marketId MarketID, isWhitelisted bool) error {
	f, ok := l.flags[marketId]
	if !ok {
		return fault.UndefinedMarket
	}
	f.whitelisted = isWhitelisted
	l.flags[marketId] = f
	return nil
}

// IsLive - query the live flag of one market
func (l *Listing) IsLive(marketId MarketID) (bool, error) {
	f, ok := l.flags[marketId]
	if !ok {
		return false, fault.UndefinedMarket
	}
	return f.live, nil
}

// IsWhitelisted - query the whitelist flag of one market
func (l *Listing) IsWhitelisted(marketId MarketID) (bool, error) {
	f, ok := l.flags[marketId]
	if !ok {
		return false, fault.UndefinedMarket
	}
	return f.whitelisted, nil
}

// MarketCount - number of markets ever added
func (l *Listing) MarketCount() int {
	return l.markets.Len()
}

// Length - number of tokens on sale in the active custody mode
func (l *Listing) Length() int {
	if l.justInTime {
		return len(l.jitOnSale)
	}
	return l.warehouse.Length()
}

// IsEmpty - check if no tokens remain on sale
func (l *Listing) IsEmpty() bool {
	return 0 == l.Length()
}

// Market - typed access to a stored market
//
// the pointer aliases the stored value so this is also the mutable
// accessor
func Market[M any](l *Listing, marketId MarketID) (*M, error) {
	if _, ok := l.flags[marketId]; !ok {
		return nil, fault.UndefinedMarket
	}
	market, err := bag.Get[M](l.markets, marketId)
	if nil != err {
		return nil, fault.IncorrectMarketType
	}
	return market, nil
}

// AssertMarket - precondition that a market exists with this exact type
func AssertMarket[M any](l *Listing, marketId MarketID) error {
	_, err := Market[M](l, marketId)
	return err
}

// AssertIsLive - precondition for purchase flows
func (l *Listing) AssertIsLive(marketId MarketID) error {
	live, err := l.IsLive(marketId)
	if nil != err {
		return err
	}
	if !live {
		return fault.NotLive
	}
	return nil
}

// AssertIsWhitelisted - precondition for whitelist gated purchases
func (l *Listing) AssertIsWhitelisted(marketId MarketID) error {
	whitelisted, err := l.IsWhitelisted(marketId)
	if nil != err {
		return err
	}
	if !whitelisted {
		return fault.NotWhitelisted
	}
	return nil
}

// AssertIsNotWhitelisted - precondition for open purchases
func (l *Listing) AssertIsNotWhitelisted(marketId MarketID) error {
	whitelisted, err := l.IsWhitelisted(marketId)
	if nil != err {
		return err
	}
	if whitelisted {
		return fault.CurrentlyWhitelisted
	}
	return nil
}
