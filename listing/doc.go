// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package listing - multi market sale registry with token custody
//
// A listing composes any number of independently implemented market
// mechanisms behind one handle, each gated by its own live and
// whitelist flags, over a single inventory.  The inventory either
// lives in an embedded warehouse (stocked ahead of the sale) or is
// attached just in time directly to the listing; the mode is fixed at
// construction and the two custody paths never mix.
//
// Markets are permanent once added: the registry is append only and
// there is no removal operation.
package listing
