// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2026 Ledger Works
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus_test

import (
	"testing"
	"time"

	"github.com/ledger-works/commodityd/commodityrecord"
	"github.com/ledger-works/commodityd/messagebus"
)

// events must come out in the order they were sent
func TestQueueOrder(t *testing.T) {

	first := commodityrecord.CommodityData{Name: "first"}.Id()
	second := commodityrecord.CommodityData{Name: "second"}.Id()

	messagebus.Send("test", messagebus.BurnedEvent{CommodityId: first})
	messagebus.Send("test", messagebus.BurnedEvent{CommodityId: second})

	expected := []commodityrecord.CommodityIdentifier{first, second}
	for i, want := range expected {
		select {
		case message := <-messagebus.Chan():
			if "test" != message.From {
				t.Errorf("%d: from: %q  expected: %q", i, message.From, "test")
			}
			event, ok := message.Item.(messagebus.BurnedEvent)
			if !ok {
				t.Fatalf("%d: unexpected item type: %T", i, message.Item)
			}
			if event.CommodityId != want {
				t.Errorf("%d: id: %v  expected: %v", i, event.CommodityId, want)
			}
		case <-time.After(time.Second):
			t.Fatalf("%d: no event received", i)
		}
	}
}
