// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2026 Ledger Works
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dispatch_test

import (
	"fmt"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/ledger-works/commodityd/account"
	"github.com/ledger-works/commodityd/commodityrecord"
	"github.com/ledger-works/commodityd/dispatch"
	"github.com/ledger-works/commodityd/fault"
	"github.com/ledger-works/commodityd/messagebus"
	"github.com/ledger-works/commodityd/registry"
	"github.com/ledger-works/commodityd/storage"
)

// test database file
const (
	databaseFileName = "test.leveldb"
)

// accounts shared by all tests
var (
	admin       account.Account
	adminKey    account.PrivateKey
	alice       account.Account
	aliceKey    account.PrivateKey
	bob         account.Account
	bobKey      account.PrivateKey
	outsider    account.Account
	outsiderKey account.PrivateKey
)

func TestMain(m *testing.M) {
	removeFiles()
	logging := logger.Configuration{
		Directory: ".",
		File:      "test.log",
		Size:      1048576,
		Count:     10,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	if err := logger.Initialise(logging); nil != err {
		panic(fmt.Sprintf("logger initialise failed: %s", err))
	}

	var err error
	if admin, adminKey, err = account.Generate(); nil != err {
		panic(err)
	}
	if alice, aliceKey, err = account.Generate(); nil != err {
		panic(err)
	}
	if bob, bobKey, err = account.Generate(); nil != err {
		panic(err)
	}
	if outsider, outsiderKey, err = account.Generate(); nil != err {
		panic(err)
	}

	rc := m.Run()
	removeFiles()
	os.Exit(rc)
}

// remove all files created by test
func removeFiles() {
	os.RemoveAll(databaseFileName)
	os.RemoveAll("test.log")
}

// configure for testing
func setup(t *testing.T) {
	removeFiles()
	err := storage.Initialise(databaseFileName)
	assert.NoError(t, err, "storage initialise")
	err = registry.Initialise(registry.Limits{
		CommodityLimit:     1000,
		UserCommodityLimit: 10,
	})
	assert.NoError(t, err, "registry initialise")
	err = dispatch.Initialise(admin)
	assert.NoError(t, err, "dispatch initialise")
	drainEvents()
}

// post test cleanup
func teardown(t *testing.T) {
	dispatch.Finalise()
	registry.Finalise()
	storage.Finalise()
	removeFiles()
}

// empty the event queue, returning what was in it
func drainEvents() []messagebus.Message {
	events := []messagebus.Message(nil)
	for {
		select {
		case m := <-messagebus.Chan():
			events = append(events, m)
		default:
			return events
		}
	}
}

// a distinct payload per name
func payload(name string) commodityrecord.CommodityData {
	return commodityrecord.CommodityData{
		Name:        name,
		Metadata:    "colour\x00blue",
		Fingerprint: "01" + name,
	}
}

// mint as administrator, aborting the test on failure
func mustMint(t *testing.T, owner account.Account, data commodityrecord.CommodityData) commodityrecord.CommodityIdentifier {
	t.Helper()
	request := dispatch.MintRequest{Owner: owner, Data: data}
	id, err := dispatch.Mint(admin, adminKey.Sign(request.Pack()), request)
	assert.NoError(t, err, "mint")
	return id
}

func TestMintByAdministrator(t *testing.T) {
	setup(t)
	defer teardown(t)

	request := dispatch.MintRequest{Owner: alice, Data: payload("gem")}
	id, err := dispatch.Mint(admin, adminKey.Sign(request.Pack()), request)
	assert.NoError(t, err, "mint")
	assert.Equal(t, alice, registry.OwnerOf(id), "owner")

	events := drainEvents()
	assert.Equal(t, 1, len(events), "event count")
	minted, ok := events[0].Item.(messagebus.MintedEvent)
	assert.True(t, ok, "event type")
	assert.Equal(t, id, minted.CommodityId, "event id")
	assert.Equal(t, alice, minted.Owner, "event owner")
}

func TestMintByNonAdministrator(t *testing.T) {
	setup(t)
	defer teardown(t)

	request := dispatch.MintRequest{Owner: alice, Data: payload("gem")}
	_, err := dispatch.Mint(alice, aliceKey.Sign(request.Pack()), request)
	assert.Equal(t, fault.ErrNotCommodityAdministrator, err, "mint error")
	assert.Equal(t, uint64(0), registry.Total(), "total")
	assert.Equal(t, 0, len(drainEvents()), "event count")
}

func TestMintBadSignature(t *testing.T) {
	setup(t)
	defer teardown(t)

	request := dispatch.MintRequest{Owner: alice, Data: payload("gem")}

	// signed by the wrong key
	_, err := dispatch.Mint(admin, outsiderKey.Sign(request.Pack()), request)
	assert.Equal(t, fault.ErrInvalidSignature, err, "mint error")

	// signed over different bytes
	other := dispatch.MintRequest{Owner: bob, Data: payload("gem")}
	_, err = dispatch.Mint(admin, adminKey.Sign(other.Pack()), request)
	assert.Equal(t, fault.ErrInvalidSignature, err, "mint error")

	assert.Equal(t, 0, len(drainEvents()), "event count")
}

func TestBurnByOwner(t *testing.T) {
	setup(t)
	defer teardown(t)

	id := mustMint(t, alice, payload("gem"))
	drainEvents()

	request := dispatch.BurnRequest{CommodityId: id}
	err := dispatch.Burn(alice, aliceKey.Sign(request.Pack()), request)
	assert.NoError(t, err, "burn")
	assert.Equal(t, account.Nobody, registry.OwnerOf(id), "owner")

	events := drainEvents()
	assert.Equal(t, 1, len(events), "event count")
	burned, ok := events[0].Item.(messagebus.BurnedEvent)
	assert.True(t, ok, "event type")
	assert.Equal(t, id, burned.CommodityId, "event id")
}

func TestBurnByNonOwner(t *testing.T) {
	setup(t)
	defer teardown(t)

	id := mustMint(t, alice, payload("gem"))
	drainEvents()

	request := dispatch.BurnRequest{CommodityId: id}

	// a valid signature from an account that is not the owner
	err := dispatch.Burn(bob, bobKey.Sign(request.Pack()), request)
	assert.Equal(t, fault.ErrNotCommodityOwner, err, "burn error")

	// even the administrator cannot burn another account's commodity
	err = dispatch.Burn(admin, adminKey.Sign(request.Pack()), request)
	assert.Equal(t, fault.ErrNotCommodityOwner, err, "burn error")

	assert.Equal(t, alice, registry.OwnerOf(id), "owner")
	assert.Equal(t, 0, len(drainEvents()), "event count")
}

func TestBurnNonexistent(t *testing.T) {
	setup(t)
	defer teardown(t)

	request := dispatch.BurnRequest{
		CommodityId: commodityrecord.NewCommodityIdentifier(payload("never-minted").Pack()),
	}
	err := dispatch.Burn(alice, aliceKey.Sign(request.Pack()), request)
	assert.Equal(t, fault.ErrNonexistentCommodity, err, "burn error")
	assert.Equal(t, 0, len(drainEvents()), "event count")
}

func TestTransferByOwner(t *testing.T) {
	setup(t)
	defer teardown(t)

	id := mustMint(t, alice, payload("gem"))
	drainEvents()

	request := dispatch.TransferRequest{Destination: bob, CommodityId: id}
	err := dispatch.Transfer(alice, aliceKey.Sign(request.Pack()), request)
	assert.NoError(t, err, "transfer")
	assert.Equal(t, bob, registry.OwnerOf(id), "owner")

	events := drainEvents()
	assert.Equal(t, 1, len(events), "event count")
	transferred, ok := events[0].Item.(messagebus.TransferredEvent)
	assert.True(t, ok, "event type")
	assert.Equal(t, id, transferred.CommodityId, "event id")
	assert.Equal(t, bob, transferred.Destination, "event destination")

	// the old owner can no longer move it
	back := dispatch.TransferRequest{Destination: alice, CommodityId: id}
	err = dispatch.Transfer(alice, aliceKey.Sign(back.Pack()), back)
	assert.Equal(t, fault.ErrNotCommodityOwner, err, "transfer error")

	// the new owner can
	err = dispatch.Transfer(bob, bobKey.Sign(back.Pack()), back)
	assert.NoError(t, err, "transfer back")
	assert.Equal(t, alice, registry.OwnerOf(id), "owner")
}

// concurrent transfers signed by the same original owner must not
// both succeed: the loser must see the ownership change
func TestTransferConcurrentStaleOwner(t *testing.T) {
	setup(t)
	defer teardown(t)

	const iterations = 200

	for i := 0; i < iterations; i += 1 {
		id := mustMint(t, alice, payload(fmt.Sprintf("gem-%d", i)))
		drainEvents()

		toBob := dispatch.TransferRequest{Destination: bob, CommodityId: id}
		toOutsider := dispatch.TransferRequest{Destination: outsider, CommodityId: id}
		bobSignature := aliceKey.Sign(toBob.Pack())
		outsiderSignature := aliceKey.Sign(toOutsider.Pack())

		errors := make(chan error, 2)
		go func() {
			errors <- dispatch.Transfer(alice, bobSignature, toBob)
		}()
		go func() {
			errors <- dispatch.Transfer(alice, outsiderSignature, toOutsider)
		}()
		first := <-errors
		second := <-errors

		succeeded := 0
		for _, err := range []error{first, second} {
			switch err {
			case nil:
				succeeded += 1
			case fault.ErrNotCommodityOwner:
			default:
				t.Fatalf("%d: unexpected transfer error: %s", i, err)
			}
		}
		if 1 != succeeded {
			t.Fatalf("%d: transfers succeeded: %d  expected: 1", i, succeeded)
		}

		owner := registry.OwnerOf(id)
		if owner != bob && owner != outsider {
			t.Fatalf("%d: owner: %s  expected: %s or %s", i, owner, bob, outsider)
		}
		if events := drainEvents(); 1 != len(events) {
			t.Fatalf("%d: event count: %d  expected: 1", i, len(events))
		}

		// reset for the next round
		burn := dispatch.BurnRequest{CommodityId: id}
		var key account.PrivateKey
		if bob == owner {
			key = bobKey
		} else {
			key = outsiderKey
		}
		if err := dispatch.Burn(owner, key.Sign(burn.Pack()), burn); nil != err {
			t.Fatalf("%d: burn error: %s", i, err)
		}
		drainEvents()
	}
}

func TestTransferReplayRejected(t *testing.T) {
	setup(t)
	defer teardown(t)

	id := mustMint(t, alice, payload("gem"))
	drainEvents()

	request := dispatch.TransferRequest{Destination: bob, CommodityId: id}
	signature := aliceKey.Sign(request.Pack())

	err := dispatch.Transfer(alice, signature, request)
	assert.NoError(t, err, "transfer")

	// replaying the same signed request fails: alice no longer owns it
	err = dispatch.Transfer(alice, signature, request)
	assert.Equal(t, fault.ErrNotCommodityOwner, err, "transfer error")
}
