// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. token id     = payload digest as 32 byte SHA3-256(data)
// 4. count        = successive index value as big endian uint64 (8 bytes)
// 5. owner        = venue account (32 byte public key)
// 6. *others*     = byte values of various length
//
// Tokens:
//
//   T ++ token id              - tokens currently held in custody
//                                data: packed token payload
//
// Sale sequence:
//
//   S ++ count                 - order of arrival of tokens on sale
//                                data: token id
//
// Ownership:
//
//   O ++ token id              - current owner of a released token
//                                data: owner
//   N ++ owner                 - next count value to use for appending to owned items
//                                data: count
//   L ++ owner ++ count        - list of owned items
//                                data: token id
//   D ++ owner ++ token id     - position in list of owned items, for delete after transfer
//                                data: count
//
// Testing:
//   Z ++ key                   - testing data
package storage
