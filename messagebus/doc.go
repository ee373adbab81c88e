// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2026 Ledger Works
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - the notification sink for completed operations
//
// the dispatch layer sends exactly one event per successful mint,
// burn or transfer; interested observers read them from a single
// buffered channel
package messagebus
