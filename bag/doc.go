// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bag - typed heterogeneous keyed store
//
// Values of arbitrary static type are stored behind one handle; the
// static type used at insertion is recorded and every later typed
// access must name exactly the same type or it is rejected.  This is
// the primitive underneath both the market registry and the warehouse
// custody list.
package bag
