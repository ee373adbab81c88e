// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2026 Ledger Works
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintains a single LevelDB database with prefixed key pools:
//
//   Counters:
//     N ⧺ "total"               - count of live commodities
//                                 data: 8 byte big endian count
//     N ⧺ "burned"              - lifetime count of burned commodities
//                                 data: 8 byte big endian count
//
//   Per-account totals:
//     T ⧺ owner                 - live count for one account
//                                 data: 8 byte big endian count
//
//   Holdings:
//     L ⧺ owner ⧺ commodityId   - the commodities owned by an account,
//                                 iterating the owner prefix enumerates
//                                 them in identifier order
//                                 data: packed commodity payload
//
//   Ownership index:
//     O ⧺ commodityId           - current owner of a commodity,
//                                 absence means it does not exist
//                                 data: owner account bytes
//
//   Testing:
//     Z ⧺ key                   - scratch area for tests
//
// the registry collects the writes of one operation into a
// Transaction, which commits as a single LevelDB batch so a partially
// applied operation can never reach the disk
package storage
