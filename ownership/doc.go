// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ownership - record which account holds each released token
//
// maintains the owner index pools:
//
//   O ++ token id          - current owner of the token
//   N ++ owner             - next count value for appending to owned items
//   L ++ owner ++ count    - list of owned items
//   D ++ owner ++ token id - position in list, for delete after transfer
//
// the owner ++ count key layout keeps one owner's tokens contiguous so
// a cursor can enumerate them in acquisition order
package ownership
