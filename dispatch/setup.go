// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2026 Ledger Works
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dispatch

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/ledger-works/commodityd/account"
	"github.com/ledger-works/commodityd/fault"
)

// globals
var globalData struct {
	sync.RWMutex
	log           *logger.L
	administrator account.Account
	initialised   bool
}

// Initialise - record the administrator account that may mint
func Initialise(administrator account.Account) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}
	if administrator.IsZero() {
		return fault.ErrInvalidAccount
	}

	globalData.log = logger.New("dispatch")
	globalData.administrator = administrator
	globalData.initialised = true
	return nil
}

// Finalise - shut down
func Finalise() {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return
	}
	globalData.log.Flush()
	globalData.administrator = account.Nobody
	globalData.initialised = false
}

// Administrator - the account allowed to mint
func Administrator() account.Account {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.administrator
}
