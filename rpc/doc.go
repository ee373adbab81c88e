// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2026 Ledger Works
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - JSON-RPC 1.0 interface over TLS
//
// services:
//   Commodity - mint, burn and transfer signed requests
//   Owner     - paginated holdings listing and counts
//   Node      - node level information
//
// connections are TLS only; the certificate fingerprint is the
// SHA3-256 digest of the DER form so clients can pin it
package rpc
