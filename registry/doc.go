// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2026 Ledger Works
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry - the commodity ownership state machine
//
// Five mutually consistent indices make up the ledger state:
//
//   total            - count of commodities currently in existence
//   burned           - lifetime count of destroyed commodities
//   totalForAccount  - live count per account
//   holdings         - per-account collection ordered by identifier
//   ownerOf          - identifier to current owner, the existence test
//
// Every operation either fails before touching any index or updates
// all of them in one step: the disk writes go through a single batch
// transaction and the in-memory indices are only changed after that
// batch is durable, all under one lock.  No caller can ever observe a
// state where the indices disagree.
//
// Signature verification and the administrator check for minting are
// the dispatch layer's job.  Burn and transfer additionally take the
// already-authenticated origin account and compare it against the
// recorded owner under the registry lock, so a concurrent transfer
// cannot invalidate an ownership check made outside it.
package registry
