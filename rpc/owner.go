// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2026 Ledger Works
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/ledger-works/commodityd/account"
	"github.com/ledger-works/commodityd/commodityrecord"
	"github.com/ledger-works/commodityd/registry"
)

// Owner - type for the RPC
type Owner struct {
	Log     *logger.L
	Limiter *rate.Limiter
}

const (
	maximumCommoditiesCount = 100
	rateLimitOwner          = 200
	rateBurstOwner          = 100
)

// CommoditiesArguments - arguments for RPC
type CommoditiesArguments struct {
	Owner account.Account `json:"owner"`        // base58
	Start uint64          `json:"start,string"` // first record number
	Count int             `json:"count"`        // number of records
}

// CommodityRecord - one owned commodity
type CommodityRecord struct {
	CommodityId commodityrecord.CommodityIdentifier `json:"commodityId"`
	Name        string                              `json:"name"`
	Metadata    string                              `json:"metadata"`
	Fingerprint string                              `json:"fingerprint"`
}

// CommoditiesReply - result of owner RPC
type CommoditiesReply struct {
	Next uint64            `json:"next,string"` // start value for the next call
	Data []CommodityRecord `json:"data"`
}

// Commodities - list commodities belonging to an account
func (owner *Owner) Commodities(arguments *CommoditiesArguments, reply *CommoditiesReply) error {

	if err := rateLimitN(owner.Limiter, arguments.Count, maximumCommoditiesCount); nil != err {
		return err
	}

	log := owner.Log
	log.Infof("Owner.Commodities: %+v", arguments)

	items := registry.ListCommoditiesFor(arguments.Owner, int(arguments.Start), arguments.Count)

	data := make([]CommodityRecord, len(items))
	for i, item := range items {
		data[i] = CommodityRecord{
			CommodityId: item.Id,
			Name:        item.Data.Name,
			Metadata:    item.Data.Metadata,
			Fingerprint: item.Data.Fingerprint,
		}
	}

	reply.Next = arguments.Start + uint64(len(items))
	reply.Data = data
	return nil
}

// CountArguments - arguments for RPC
type CountArguments struct {
	Owner account.Account `json:"owner"` // base58
}

// CountReply - result of count RPC
type CountReply struct {
	Count uint64 `json:"count,string"`
}

// Count - number of commodities held by an account
func (owner *Owner) Count(arguments *CountArguments, reply *CountReply) error {

	if err := rateLimit(owner.Limiter); nil != err {
		return err
	}

	reply.Count = registry.TotalForAccount(arguments.Owner)
	return nil
}

// OfArguments - arguments for RPC
type OfArguments struct {
	CommodityId commodityrecord.CommodityIdentifier `json:"commodityId"`
}

// OfReply - result of ownership lookup RPC
type OfReply struct {
	Owner  account.Account `json:"owner"` // base58, the zero account when nonexistent
	Exists bool            `json:"exists"`
}

// Of - the current owner of a commodity
func (owner *Owner) Of(arguments *OfArguments, reply *OfReply) error {

	if err := rateLimit(owner.Limiter); nil != err {
		return err
	}

	holder := registry.OwnerOf(arguments.CommodityId)
	reply.Owner = holder
	reply.Exists = !holder.IsZero()
	return nil
}
