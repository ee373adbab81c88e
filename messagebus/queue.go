// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2026 Ledger Works
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"github.com/ledger-works/commodityd/account"
	"github.com/ledger-works/commodityd/commodityrecord"
)

// internal constants
const (
	queueSize = 1000
)

// MintedEvent - a commodity was created and assigned to an owner
type MintedEvent struct {
	CommodityId commodityrecord.CommodityIdentifier
	Owner       account.Account
}

// BurnedEvent - a commodity was destroyed
type BurnedEvent struct {
	CommodityId commodityrecord.CommodityIdentifier
}

// TransferredEvent - a commodity changed owner
type TransferredEvent struct {
	CommodityId commodityrecord.CommodityIdentifier
	Destination account.Account
}

// Message - one event together with its source tag
type Message struct {
	From string
	Item interface{}
}

var (
	// for queueing event data
	queue = make(chan Message, queueSize)
)

// Send - queue an event
func Send(from string, item interface{}) {
	queue <- Message{
		From: from,
		Item: item,
	}
}

// Chan - channel to read events from
func Chan() <-chan Message {
	return queue
}
