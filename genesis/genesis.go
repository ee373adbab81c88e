// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2026 Ledger Works
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package genesis - bootstrap commodities minted at first start
//
// entries come from the configuration file; each names an owner and a
// payload. An entry whose commodity was minted by an earlier run is
// skipped, so a restart over an existing database is a no-op. Two
// entries with the same payload in one configuration are a
// configuration error. Any other mint failure aborts startup.
package genesis

import (
	"github.com/bitmark-inc/logger"

	"github.com/ledger-works/commodityd/account"
	"github.com/ledger-works/commodityd/commodityrecord"
	"github.com/ledger-works/commodityd/fault"
	"github.com/ledger-works/commodityd/registry"
)

// Entry - one bootstrap commodity from the configuration
type Entry struct {
	Owner       string `gluamapper:"owner" json:"owner"`
	Name        string `gluamapper:"name" json:"name"`
	Metadata    string `gluamapper:"metadata" json:"metadata"`
	Fingerprint string `gluamapper:"fingerprint" json:"fingerprint"`
}

// Initialise - mint the configured entries
//
// the registry must already be initialised
func Initialise(entries []Entry) error {
	log := logger.New("genesis")

	minted := 0
	seen := make(map[commodityrecord.CommodityIdentifier]int)
	for i, entry := range entries {
		if "" == entry.Name {
			log.Errorf("entry: %d has no name", i)
			return fault.ErrRequiredCommodityName
		}

		owner, err := account.AccountFromBase58(entry.Owner)
		if nil != err {
			log.Errorf("entry: %d owner: %q error: %s", i, entry.Owner, err)
			return err
		}

		data := commodityrecord.CommodityData{
			Name:        entry.Name,
			Metadata:    entry.Metadata,
			Fingerprint: entry.Fingerprint,
		}

		// duplicates within one configuration are fatal; only
		// commodities minted by an earlier run may be skipped
		if first, duplicated := seen[data.Id()]; duplicated {
			log.Errorf("entry: %d duplicates entry: %d", i, first)
			return fault.ErrCommodityExists
		}
		seen[data.Id()] = i

		id, err := registry.Mint(owner, data)
		if fault.ErrCommodityExists == err {
			log.Infof("entry: %d already present", i)
			continue
		}
		if nil != err {
			log.Errorf("entry: %d mint error: %s", i, err)
			return err
		}
		log.Infof("minted: %s for: %s", id, owner)
		minted += 1
	}

	log.Infof("bootstrap complete: %d minted of %d entries", minted, len(entries))
	return nil
}
