// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2026 Ledger Works
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"testing"

	"github.com/ledger-works/commodityd/account"
	"github.com/ledger-works/commodityd/fault"
)

// round trip an account through its text form
func TestBase58RoundTrip(t *testing.T) {

	acc, _, err := account.Generate()
	if nil != err {
		t.Fatalf("generate error: %s", err)
	}

	text := acc.String()
	decoded, err := account.AccountFromBase58(text)
	if nil != err {
		t.Fatalf("decode error: %s", err)
	}
	if decoded != acc {
		t.Errorf("account: %v  expected: %v", decoded, acc)
	}

	// corrupt the checksum
	corrupted := text[:len(text)-1] + "1"
	if corrupted == text {
		corrupted = text[:len(text)-1] + "2"
	}
	_, err = account.AccountFromBase58(corrupted)
	if nil == err {
		t.Error("corrupted text unexpectedly decoded")
	}
}

// the zero account is the nonexistence sentinel
func TestZeroSentinel(t *testing.T) {

	if !account.Nobody.IsZero() {
		t.Error("Nobody is not zero")
	}

	acc, _, err := account.Generate()
	if nil != err {
		t.Fatalf("generate error: %s", err)
	}
	if acc.IsZero() {
		t.Error("generated account is zero")
	}
}

func TestCheckSignature(t *testing.T) {

	acc, privateKey, err := account.Generate()
	if nil != err {
		t.Fatalf("generate error: %s", err)
	}
	if privateKey.Account() != acc {
		t.Error("private key does not recover its account")
	}

	message := []byte("valuable one-off item")
	signature := privateKey.Sign(message)

	if err := acc.CheckSignature(message, signature); nil != err {
		t.Errorf("signature rejected: %s", err)
	}

	if err := acc.CheckSignature([]byte("different message"), signature); fault.ErrInvalidSignature != err {
		t.Errorf("wrong message: error: %v  expected: %v", err, fault.ErrInvalidSignature)
	}

	other, _, err := account.Generate()
	if nil != err {
		t.Fatalf("generate error: %s", err)
	}
	if err := other.CheckSignature(message, signature); fault.ErrInvalidSignature != err {
		t.Errorf("wrong account: error: %v  expected: %v", err, fault.ErrInvalidSignature)
	}

	if err := acc.CheckSignature(message, signature[:10]); fault.ErrInvalidSignature != err {
		t.Errorf("short signature: error: %v  expected: %v", err, fault.ErrInvalidSignature)
	}
}

func TestMarshalText(t *testing.T) {

	acc, _, err := account.Generate()
	if nil != err {
		t.Fatalf("generate error: %s", err)
	}

	text, err := acc.MarshalText()
	if nil != err {
		t.Fatalf("marshal error: %s", err)
	}

	var restored account.Account
	if err := restored.UnmarshalText(text); nil != err {
		t.Fatalf("unmarshal error: %s", err)
	}
	if restored != acc {
		t.Errorf("account: %v  expected: %v", restored, acc)
	}
}
