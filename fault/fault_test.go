// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2026 Ledger Works
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"testing"

	"github.com/ledger-works/commodityd/fault"
)

var (
	errExistsOne   = fault.ExistsError("exists one")
	errExistsTwo   = fault.ExistsError("exists two")
	errInvalidOne  = fault.InvalidError("invalid one")
	errInvalidTwo  = fault.InvalidError("invalid two")
	errLimitOne    = fault.LimitError("limit one")
	errLimitTwo    = fault.LimitError("limit two")
	errNotFoundOne = fault.NotFoundError("not found one")
	errNotFoundTwo = fault.NotFoundError("not found two")
	errProcessOne  = fault.ProcessError("process one")
	errProcessTwo  = fault.ProcessError("process two")
)

// test that the various error classes stay distinguishable
func TestClasses(t *testing.T) {
	errorList := []struct {
		err      error
		exists   bool
		invalid  bool
		limit    bool
		notFound bool
		process  bool
	}{
		{errExistsOne, true, false, false, false, false},
		{errExistsTwo, true, false, false, false, false},
		{errInvalidOne, false, true, false, false, false},
		{errInvalidTwo, false, true, false, false, false},
		{errLimitOne, false, false, true, false, false},
		{errLimitTwo, false, false, true, false, false},
		{errNotFoundOne, false, false, false, true, false},
		{errNotFoundTwo, false, false, false, true, false},
		{errProcessOne, false, false, false, false, true},
		{errProcessTwo, false, false, false, false, true},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrLimit(err) != e.limit {
			t.Errorf("%d: expected 'limit' == %v for err = %v", i, e.limit, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
	}
}

// the registry errors must compare equal to themselves only
func TestRegistryErrors(t *testing.T) {
	registryErrors := []error{
		fault.ErrCommodityExists,
		fault.ErrNonexistentCommodity,
		fault.ErrNotCommodityOwner,
		fault.ErrTooManyCommodities,
		fault.ErrTooManyForAccount,
	}

	for i, e := range registryErrors {
		for j, f := range registryErrors {
			if i == j && e != f {
				t.Errorf("%d: error: %v does not equal itself", i, e)
			}
			if i != j && e == f {
				t.Errorf("%d/%d: distinct errors compare equal: %v", i, j, e)
			}
		}
	}
}
