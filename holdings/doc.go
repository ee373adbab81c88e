// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2026 Ledger Works
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package holdings - an account's ordered collection of commodities
//
// A balanced binary tree keyed only by commodity identifier; the
// payload rides along as node data and never takes part in ordering
// or lookup.  Parent pointers allow in-order iteration and subtree
// counts allow positional access for paginated listing.
//
// Note: an individual tree is not thread safe; the registry serialises
//       all access behind its own lock.
package holdings
