// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package warehouse - custody list for tokens awaiting sale
//
// An insertion ordered list of token identifiers paired with a keyed
// store of the owned tokens; the two are kept in lockstep so a token
// can be deposited, listed and redeemed exactly once.  Redemption is
// LIFO; a caller wanting another order must build it on top.
package warehouse
