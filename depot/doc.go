// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package depot - on-disk token custody
//
// keeps the operator's token inventory in the database so it survives
// a restart: the sale sequence pool records the order of arrival under
// big endian counter keys and the token pool holds the payload of each
// token keyed by its identifier
//
// redeem always releases the most recent arrival, matching the in
// memory warehouse behaviour
package depot
