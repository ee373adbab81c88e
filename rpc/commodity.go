// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2026 Ledger Works
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"encoding/hex"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/ledger-works/commodityd/account"
	"github.com/ledger-works/commodityd/commodityrecord"
	"github.com/ledger-works/commodityd/dispatch"
	"github.com/ledger-works/commodityd/fault"
)

// Commodity - type for the RPC
type Commodity struct {
	Log     *logger.L
	Limiter *rate.Limiter
}

const (
	rateLimitCommodity = 200
	rateBurstCommodity = 100
)

// decode a hex signature from the wire form
func decodeSignature(s string) (account.Signature, error) {
	signature, err := hex.DecodeString(s)
	if nil != err {
		return nil, fault.ErrInvalidSignature
	}
	return account.Signature(signature), nil
}

// Commodity mint
// --------------

// MintArguments - arguments for RPC
type MintArguments struct {
	Origin      account.Account `json:"origin"`    // base58
	Signature   string          `json:"signature"` // hex
	Owner       account.Account `json:"owner"`     // base58
	Name        string          `json:"name"`
	Metadata    string          `json:"metadata"`
	Fingerprint string          `json:"fingerprint"`
}

// MintReply - result of mint RPC
type MintReply struct {
	CommodityId commodityrecord.CommodityIdentifier `json:"commodityId"`
}

// Mint - create a commodity
func (commodity *Commodity) Mint(arguments *MintArguments, reply *MintReply) error {

	if err := rateLimit(commodity.Limiter); nil != err {
		return err
	}

	log := commodity.Log
	log.Infof("Commodity.Mint: %+v", arguments)

	signature, err := decodeSignature(arguments.Signature)
	if nil != err {
		return err
	}

	request := dispatch.MintRequest{
		Owner: arguments.Owner,
		Data: commodityrecord.CommodityData{
			Name:        arguments.Name,
			Metadata:    arguments.Metadata,
			Fingerprint: arguments.Fingerprint,
		},
	}

	id, err := dispatch.Mint(arguments.Origin, signature, request)
	if nil != err {
		return err
	}

	reply.CommodityId = id
	return nil
}

// Commodity burn
// --------------

// BurnArguments - arguments for RPC
type BurnArguments struct {
	Origin      account.Account                     `json:"origin"`    // base58
	Signature   string                              `json:"signature"` // hex
	CommodityId commodityrecord.CommodityIdentifier `json:"commodityId"`
}

// BurnReply - result of burn RPC
type BurnReply struct {
	Burned bool `json:"burned"`
}

// Burn - destroy a commodity
func (commodity *Commodity) Burn(arguments *BurnArguments, reply *BurnReply) error {

	if err := rateLimit(commodity.Limiter); nil != err {
		return err
	}

	log := commodity.Log
	log.Infof("Commodity.Burn: %+v", arguments)

	signature, err := decodeSignature(arguments.Signature)
	if nil != err {
		return err
	}

	request := dispatch.BurnRequest{
		CommodityId: arguments.CommodityId,
	}

	if err := dispatch.Burn(arguments.Origin, signature, request); nil != err {
		return err
	}

	reply.Burned = true
	return nil
}

// Commodity transfer
// ------------------

// TransferArguments - arguments for RPC
type TransferArguments struct {
	Origin      account.Account                     `json:"origin"`      // base58
	Signature   string                              `json:"signature"`   // hex
	Destination account.Account                     `json:"destination"` // base58
	CommodityId commodityrecord.CommodityIdentifier `json:"commodityId"`
}

// TransferReply - result of transfer RPC
type TransferReply struct {
	Transferred bool `json:"transferred"`
}

// Transfer - reassign a commodity to a new owner
func (commodity *Commodity) Transfer(arguments *TransferArguments, reply *TransferReply) error {

	if err := rateLimit(commodity.Limiter); nil != err {
		return err
	}

	log := commodity.Log
	log.Infof("Commodity.Transfer: %+v", arguments)

	signature, err := decodeSignature(arguments.Signature)
	if nil != err {
		return err
	}

	request := dispatch.TransferRequest{
		Destination: arguments.Destination,
		CommodityId: arguments.CommodityId,
	}

	if err := dispatch.Transfer(arguments.Origin, signature, request); nil != err {
		return err
	}

	reply.Transferred = true
	return nil
}
