// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2026 Ledger Works
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"github.com/ledger-works/commodityd/account"
	"github.com/ledger-works/commodityd/commodityrecord"
)

// Total - number of commodities currently in existence
func Total() uint64 {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.total
}

// Burned - number of commodities destroyed over the full history
func Burned() uint64 {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.burned
}

// TotalForAccount - number of commodities held by one account
//
// zero for accounts that have never held anything
func TotalForAccount(owner account.Account) uint64 {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.totalForAccount[owner]
}

// OwnerOf - the current holder of a commodity
//
// returns account.Nobody when the commodity does not exist
func OwnerOf(id commodityrecord.CommodityIdentifier) account.Account {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.ownerOf[id]
}

// CommodityFor - fetch the payload of a single commodity
func CommodityFor(id commodityrecord.CommodityIdentifier) (commodityrecord.CommodityData, bool) {
	globalData.RLock()
	defer globalData.RUnlock()

	owner, ok := globalData.ownerOf[id]
	if !ok {
		return commodityrecord.CommodityData{}, false
	}
	tree := globalData.holdings[owner]
	if nil == tree {
		return commodityrecord.CommodityData{}, false
	}
	return tree.Search(id)
}

// ListCommoditiesFor - a page of commodities held by an account
//
// items come out in identifier order starting at the given offset; the
// caller pages by advancing offset by the length of each result
func ListCommoditiesFor(owner account.Account, offset int, count int) []commodityrecord.Commodity {
	globalData.RLock()
	defer globalData.RUnlock()

	if offset < 0 || count <= 0 {
		return nil
	}

	tree := globalData.holdings[owner]
	if nil == tree || offset >= tree.Count() {
		return nil
	}

	node := tree.Get(offset)
	result := make([]commodityrecord.Commodity, 0, count)
	for nil != node && len(result) < count {
		result = append(result, commodityrecord.Commodity{
			Id:   node.Id(),
			Data: node.Data(),
		})
		node = node.Next()
	}
	return result
}

// CommoditiesForAccount - every commodity held by an account in
// identifier order
func CommoditiesForAccount(owner account.Account) []commodityrecord.CommodityIdentifier {
	globalData.RLock()
	defer globalData.RUnlock()

	tree := globalData.holdings[owner]
	if nil == tree {
		return nil
	}

	result := make([]commodityrecord.CommodityIdentifier, 0, tree.Count())
	for node := tree.First(); nil != node; node = node.Next() {
		result = append(result, node.Id())
	}
	return result
}

// IsLimitReached - true when no further commodity can be minted at all
func IsLimitReached() bool {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.total >= globalData.limits.CommodityLimit
}
