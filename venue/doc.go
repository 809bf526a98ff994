// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package venue - a single market wrapper
//
// One opaque market value plus independent live and whitelist flags.
// The market type is fixed at construction; every later typed access
// must name that exact type.  The flags carry no internal access
// control: whoever holds the venue mutates them, the precondition
// asserts are for purchase flows layered on top.
package venue
