// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2026 Ledger Works
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dispatch

import (
	"github.com/ledger-works/commodityd/account"
	"github.com/ledger-works/commodityd/commodityrecord"
	"github.com/ledger-works/commodityd/fault"
	"github.com/ledger-works/commodityd/messagebus"
	"github.com/ledger-works/commodityd/registry"
)

// request tags, first byte of every signed request
const (
	tagMint     = 'M'
	tagBurn     = 'B'
	tagTransfer = 'T'
)

// MintRequest - create a commodity for an owner
type MintRequest struct {
	Owner account.Account
	Data  commodityrecord.CommodityData
}

// Pack - the bytes the origin signs
func (request MintRequest) Pack() []byte {
	message := make([]byte, 0, 1+account.PublicKeySize+len(request.Data.Pack()))
	message = append(message, tagMint)
	message = append(message, request.Owner.Bytes()...)
	return append(message, request.Data.Pack()...)
}

// BurnRequest - destroy a commodity
type BurnRequest struct {
	CommodityId commodityrecord.CommodityIdentifier
}

// Pack - the bytes the origin signs
func (request BurnRequest) Pack() []byte {
	message := make([]byte, 0, 1+commodityrecord.CommodityIdentifierLength)
	message = append(message, tagBurn)
	return append(message, request.CommodityId[:]...)
}

// TransferRequest - reassign a commodity
type TransferRequest struct {
	Destination account.Account
	CommodityId commodityrecord.CommodityIdentifier
}

// Pack - the bytes the origin signs
func (request TransferRequest) Pack() []byte {
	message := make([]byte, 0, 1+account.PublicKeySize+commodityrecord.CommodityIdentifierLength)
	message = append(message, tagTransfer)
	message = append(message, request.Destination.Bytes()...)
	return append(message, request.CommodityId[:]...)
}

// verify the signature and that dispatch is running
func authenticate(origin account.Account, message []byte, signature account.Signature) error {
	if !globalData.initialised {
		return fault.ErrNotInitialised
	}
	if origin.IsZero() {
		return fault.ErrInvalidAccount
	}
	return origin.CheckSignature(message, signature)
}

// Mint - execute a signed mint request
//
// only the administrator account may mint
func Mint(origin account.Account, signature account.Signature, request MintRequest) (commodityrecord.CommodityIdentifier, error) {
	globalData.RLock()
	defer globalData.RUnlock()

	var nilId commodityrecord.CommodityIdentifier

	if err := authenticate(origin, request.Pack(), signature); nil != err {
		return nilId, err
	}
	if origin != globalData.administrator {
		return nilId, fault.ErrNotCommodityAdministrator
	}

	id, err := registry.Mint(request.Owner, request.Data)
	if nil != err {
		return nilId, err
	}

	globalData.log.Infof("mint: %s for: %s", id, request.Owner)
	messagebus.Send("dispatch", messagebus.MintedEvent{
		CommodityId: id,
		Owner:       request.Owner,
	})
	return id, nil
}

// Burn - execute a signed burn request
//
// only the recorded owner may burn; the registry re-checks the owner
// under its own lock so concurrent requests cannot act on a stale
// ownership read
func Burn(origin account.Account, signature account.Signature, request BurnRequest) error {
	globalData.RLock()
	defer globalData.RUnlock()

	if err := authenticate(origin, request.Pack(), signature); nil != err {
		return err
	}

	if err := registry.Burn(origin, request.CommodityId); nil != err {
		return err
	}

	globalData.log.Infof("burn: %s", request.CommodityId)
	messagebus.Send("dispatch", messagebus.BurnedEvent{
		CommodityId: request.CommodityId,
	})
	return nil
}

// Transfer - execute a signed transfer request
//
// only the recorded owner may transfer; the registry re-checks the
// owner under its own lock so concurrent requests cannot act on a
// stale ownership read
func Transfer(origin account.Account, signature account.Signature, request TransferRequest) error {
	globalData.RLock()
	defer globalData.RUnlock()

	if err := authenticate(origin, request.Pack(), signature); nil != err {
		return err
	}

	if err := registry.Transfer(origin, request.Destination, request.CommodityId); nil != err {
		return err
	}

	globalData.log.Infof("transfer: %s to: %s", request.CommodityId, request.Destination)
	messagebus.Send("dispatch", messagebus.TransferredEvent{
		CommodityId: request.CommodityId,
		Destination: request.Destination,
	})
	return nil
}
