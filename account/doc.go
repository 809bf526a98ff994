// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - transfer destination identities
//
// An account is the public half of a key pair, represented as a key
// variant byte, the raw key and a SHA3 checksum, all Base58 encoded
// for the text form.  Signature checking belongs to the owning
// system; this ledger only needs a stable identity to record token
// ownership against.
package account
