// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2026 Ledger Works
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package commodityrecord - the commodity payload and its identifier
//
// A commodity is described by a small record of strings.  The record
// packs to a canonical byte sequence and the SHA3-512 digest of that
// sequence is the commodity identifier, so identity is entirely
// content derived: equal payloads are the same commodity.
package commodityrecord
