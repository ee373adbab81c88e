// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2026 Ledger Works
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/bitmark-inc/logger"

	"github.com/ledger-works/commodityd/account"
	"github.com/ledger-works/commodityd/commodityrecord"
	"github.com/ledger-works/commodityd/fault"
	"github.com/ledger-works/commodityd/holdings"
	"github.com/ledger-works/commodityd/storage"
)

// key of a holdings record: owner ⧺ commodityId
func holdingKey(owner account.Account, id commodityrecord.CommodityIdentifier) []byte {
	key := make([]byte, 0, account.PublicKeySize+commodityrecord.CommodityIdentifierLength)
	key = append(key, owner.Bytes()...)
	return append(key, id[:]...)
}

// Mint - create a commodity and assign it to an owner
//
// checks run in a fixed order and the first failure wins without any
// index being touched: duplicate identifier, then the owner's ceiling,
// then the global ceiling
func Mint(owner account.Account, data commodityrecord.CommodityData) (commodityrecord.CommodityIdentifier, error) {
	globalData.Lock()
	defer globalData.Unlock()

	var nilId commodityrecord.CommodityIdentifier

	if !globalData.initialised {
		return nilId, fault.ErrNotInitialised
	}
	if owner.IsZero() {
		return nilId, fault.ErrInvalidAccount
	}

	packed := data.Pack()
	id := commodityrecord.NewCommodityIdentifier(packed)

	if _, exists := globalData.ownerOf[id]; exists {
		return nilId, fault.ErrCommodityExists
	}

	ownerCount := globalData.totalForAccount[owner]
	if ownerCount >= globalData.limits.UserCommodityLimit {
		return nilId, fault.ErrTooManyForAccount
	}

	if globalData.total >= globalData.limits.CommodityLimit {
		return nilId, fault.ErrTooManyCommodities
	}

	// all checks passed: write every index in one batch
	trx := storage.NewTransaction()
	trx.PutN(storage.Pool.Counters, storage.TotalCounterKey, globalData.total+1)
	trx.PutN(storage.Pool.TotalForAccount, owner.Bytes(), ownerCount+1)
	trx.Put(storage.Pool.Holdings, holdingKey(owner, id), packed)
	trx.Put(storage.Pool.OwnerOf, id[:], owner.Bytes())
	logger.PanicIfError("registry: mint commit", trx.Commit())

	globalData.total += 1
	globalData.totalForAccount[owner] = ownerCount + 1

	tree, ok := globalData.holdings[owner]
	if !ok {
		tree = holdings.New()
		globalData.holdings[owner] = tree
	}
	if !tree.Insert(id, data) {
		// unreachable: the ownerOf check above covers this
		logger.Panicf("registry: mint: id already held: %s", id)
	}
	globalData.ownerOf[id] = owner

	globalData.log.Infof("minted: %s for account: %s", id, owner)
	return id, nil
}

// Burn - destroy an existing commodity
//
// origin must be the recorded owner; the check runs under the same
// lock as the mutation so a concurrent transfer cannot slip between
// authorization and removal
func Burn(origin account.Account, id commodityrecord.CommodityIdentifier) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	owner, ok := globalData.ownerOf[id]
	if !ok || owner.IsZero() {
		return fault.ErrNonexistentCommodity
	}
	if origin != owner {
		return fault.ErrNotCommodityOwner
	}

	ownerCount := globalData.totalForAccount[owner]
	if 0 == ownerCount {
		logger.Panicf("registry: burn: zero count for owning account: %s", owner)
	}

	trx := storage.NewTransaction()
	trx.PutN(storage.Pool.Counters, storage.TotalCounterKey, globalData.total-1)
	trx.PutN(storage.Pool.Counters, storage.BurnedCounterKey, globalData.burned+1)
	if 1 == ownerCount {
		trx.Delete(storage.Pool.TotalForAccount, owner.Bytes())
	} else {
		trx.PutN(storage.Pool.TotalForAccount, owner.Bytes(), ownerCount-1)
	}
	trx.Delete(storage.Pool.Holdings, holdingKey(owner, id))
	trx.Delete(storage.Pool.OwnerOf, id[:])
	logger.PanicIfError("registry: burn commit", trx.Commit())

	globalData.total -= 1
	globalData.burned += 1
	if 1 == ownerCount {
		delete(globalData.totalForAccount, owner)
	} else {
		globalData.totalForAccount[owner] = ownerCount - 1
	}

	tree := globalData.holdings[owner]
	if nil == tree {
		logger.Panicf("registry: burn: no holdings for owning account: %s", owner)
	}
	if _, removed := tree.Remove(id); !removed {
		// ownership was just confirmed, so this is index corruption
		logger.Panicf("registry: burn: holdings missing commodity: %s", id)
	}
	if tree.IsEmpty() {
		delete(globalData.holdings, owner)
	}
	delete(globalData.ownerOf, id)

	globalData.log.Infof("burned: %s", id)
	return nil
}

// Transfer - reassign a commodity to a new owner
//
// origin must be the recorded owner, verified under the same lock as
// the mutation; total and burned are unaffected; a self transfer runs
// the same checks and leaves the ledger unchanged
func Transfer(origin account.Account, destination account.Account, id commodityrecord.CommodityIdentifier) error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}
	if destination.IsZero() {
		return fault.ErrInvalidAccount
	}

	owner, ok := globalData.ownerOf[id]
	if !ok || owner.IsZero() {
		return fault.ErrNonexistentCommodity
	}
	if origin != owner {
		return fault.ErrNotCommodityOwner
	}

	if globalData.totalForAccount[destination] >= globalData.limits.UserCommodityLimit {
		return fault.ErrTooManyForAccount
	}

	srcCount := globalData.totalForAccount[owner]
	if 0 == srcCount {
		logger.Panicf("registry: transfer: zero count for owning account: %s", owner)
	}

	srcTree := globalData.holdings[owner]
	if nil == srcTree {
		logger.Panicf("registry: transfer: no holdings for owning account: %s", owner)
	}
	data, removed := srcTree.Remove(id)
	if !removed {
		// ownership was just confirmed, so this is index corruption
		logger.Panicf("registry: transfer: holdings missing commodity: %s", id)
	}

	trx := storage.NewTransaction()
	if destination != owner {
		if 1 == srcCount {
			trx.Delete(storage.Pool.TotalForAccount, owner.Bytes())
		} else {
			trx.PutN(storage.Pool.TotalForAccount, owner.Bytes(), srcCount-1)
		}
		trx.PutN(storage.Pool.TotalForAccount, destination.Bytes(), globalData.totalForAccount[destination]+1)
	}
	trx.Delete(storage.Pool.Holdings, holdingKey(owner, id))
	trx.Put(storage.Pool.Holdings, holdingKey(destination, id), data.Pack())
	trx.Put(storage.Pool.OwnerOf, id[:], destination.Bytes())
	logger.PanicIfError("registry: transfer commit", trx.Commit())

	if destination != owner {
		if 1 == srcCount {
			delete(globalData.totalForAccount, owner)
		} else {
			globalData.totalForAccount[owner] = srcCount - 1
		}
		globalData.totalForAccount[destination] += 1
	}

	dstTree, ok := globalData.holdings[destination]
	if !ok {
		dstTree = holdings.New()
		globalData.holdings[destination] = dstTree
	}
	if !dstTree.Insert(id, data) {
		logger.Panicf("registry: transfer: id already held by destination: %s", id)
	}
	if srcTree.IsEmpty() && destination != owner {
		delete(globalData.holdings, owner)
	}
	globalData.ownerOf[id] = destination

	globalData.log.Infof("transferred: %s to account: %s", id, destination)
	return nil
}
