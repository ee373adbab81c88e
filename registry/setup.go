// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2026 Ledger Works
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/ledger-works/commodityd/account"
	"github.com/ledger-works/commodityd/commodityrecord"
	"github.com/ledger-works/commodityd/fault"
	"github.com/ledger-works/commodityd/holdings"
	"github.com/ledger-works/commodityd/storage"
)

// Limits - the configured ceilings, fixed for the life of the registry
type Limits struct {
	CommodityLimit     uint64 `gluamapper:"commodity_limit" json:"commodity_limit"`
	UserCommodityLimit uint64 `gluamapper:"user_commodity_limit" json:"user_commodity_limit"`
}

// number of holdings records fetched per chunk when reloading
const reloadChunkSize = 100

// globals
var globalData struct {
	sync.RWMutex
	log    *logger.L
	limits Limits

	total           uint64
	burned          uint64
	totalForAccount map[account.Account]uint64
	holdings        map[account.Account]*holdings.Tree
	ownerOf         map[commodityrecord.CommodityIdentifier]account.Account

	// set once during initialise
	initialised bool
}

// Initialise - load the ledger state from storage
//
// storage must already be initialised
func Initialise(limits Limits) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}
	if !storage.IsInitialised() {
		return fault.ErrNotInitialised
	}

	globalData.log = logger.New("registry")
	globalData.log.Info("starting…")

	globalData.limits = limits
	globalData.total = 0
	globalData.burned = 0
	globalData.totalForAccount = make(map[account.Account]uint64)
	globalData.holdings = make(map[account.Account]*holdings.Tree)
	globalData.ownerOf = make(map[commodityrecord.CommodityIdentifier]account.Account)

	if err := reload(); nil != err {
		return err
	}

	globalData.log.Infof("loaded: %d commodities, %d burned", globalData.total, globalData.burned)

	globalData.initialised = true
	return nil
}

// Finalise - drop all in-memory state
func Finalise() {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.totalForAccount = nil
	globalData.holdings = nil
	globalData.ownerOf = nil
	globalData.initialised = false
}

// rebuild the in-memory indices from the holdings pool and verify
// them against the stored counters
//
// must hold the lock
func reload() error {

	cursor := storage.Pool.Holdings.NewFetchCursor()

	for {
		elements, err := cursor.Fetch(reloadChunkSize)
		if nil != err {
			return err
		}
		if 0 == len(elements) {
			break
		}

		for _, e := range elements {
			if account.PublicKeySize+commodityrecord.CommodityIdentifierLength != len(e.Key) {
				logger.Panicf("registry: holdings pool corrupt: bad key length: %d", len(e.Key))
			}

			owner, err := account.AccountFromBytes(e.Key[:account.PublicKeySize])
			if nil != err {
				logger.Panicf("registry: holdings pool corrupt: %s", err)
			}

			var id commodityrecord.CommodityIdentifier
			if err := commodityrecord.CommodityIdentifierFromBytes(&id, e.Key[account.PublicKeySize:]); nil != err {
				logger.Panicf("registry: holdings pool corrupt: %s", err)
			}

			data, err := commodityrecord.Packed(e.Value).Unpack()
			if nil != err {
				logger.Panicf("registry: holdings pool corrupt: %s", err)
			}

			if _, ok := globalData.ownerOf[id]; ok {
				logger.Panicf("registry: holdings pool corrupt: duplicate id: %s", id)
			}

			tree, ok := globalData.holdings[owner]
			if !ok {
				tree = holdings.New()
				globalData.holdings[owner] = tree
			}
			if !tree.Insert(id, data) {
				logger.Panicf("registry: holdings pool corrupt: duplicate insert: %s", id)
			}

			globalData.ownerOf[id] = owner
			globalData.totalForAccount[owner] += 1
			globalData.total += 1
		}
	}

	// cross-check the reverse index and per-account counts
	for owner, count := range globalData.totalForAccount {
		if stored, ok := storage.Pool.TotalForAccount.GetN(owner.Bytes()); !ok || stored != count {
			logger.Panicf("registry: count index corrupt for account: %s", owner)
		}
	}
	for id, owner := range globalData.ownerOf {
		recorded, err := account.AccountFromBytes(storage.Pool.OwnerOf.Get(id[:]))
		if nil != err || recorded != owner {
			logger.Panicf("registry: owner index corrupt for commodity: %s", id)
		}
	}

	// counters only exist after the first mint
	if stored, ok := storage.Pool.Counters.GetN(storage.TotalCounterKey); ok {
		if stored != globalData.total {
			logger.Panicf("registry: total counter: %d  holdings: %d", stored, globalData.total)
		}
	} else if 0 != globalData.total {
		logger.Panicf("registry: total counter missing with: %d holdings", globalData.total)
	}
	if stored, ok := storage.Pool.Counters.GetN(storage.BurnedCounterKey); ok {
		globalData.burned = stored
	}

	return nil
}
