// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2026 Ledger Works
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package dispatch - authorisation gate in front of the registry
//
// every request arrives as a typed body plus an ed25519 signature made
// by the originating account over the packed body bytes; a request is
// executed only when the signature verifies and the origin holds the
// required role: the configured administrator for mint, the recorded
// owner for burn and transfer
//
// each successfully executed request places exactly one event on the
// message bus
package dispatch
