// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Operator tool for the venue custody database
//
// deposit tokens into custody, redeem the most recent arrival and
// optionally hand it straight to a receiving account, list the tokens
// held by an account and show the inventory state
//
// e.g.
//   venue-cli --config-file=venued.conf deposit --payload=48656c6c6f
//   venue-cli --config-file=venued.conf redeem --receiver=<account>
package main
