// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package nft - opaque sellable units
//
// A token is tracked by its identifier only; the ledger never
// inspects the payload bytes.
package nft
