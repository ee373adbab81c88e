// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2026 Ledger Works
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package account - owner identifiers
//
// An account is the ed25519 public key of its holder.  The zero value
// is reserved as the "no owner" marker and can never correspond to a
// usable key pair, so it is safe for the registry to treat it as the
// nonexistence sentinel.
//
// The text form is Base58 of the key bytes followed by a four byte
// SHA3-256 checksum.
package account

import (
	"crypto/rand"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/ledger-works/commodityd/fault"
)

// sizes of the fixed length fields
const (
	PublicKeySize  = ed25519.PublicKeySize
	SignatureSize  = ed25519.SignatureSize
	checksumLength = 4
)

// Account - the identifier of a commodity owner
type Account [PublicKeySize]byte

// Signature - raw ed25519 signature bytes
type Signature []byte

// PrivateKey - signing half of an account key pair
type PrivateKey []byte

// Nobody - the distinguished "no owner" account
var Nobody = Account{}

// Generate - create a new random account and its signing key
func Generate() (Account, PrivateKey, error) {
	publicKey, privateKey, err := ed25519.GenerateKey(rand.Reader)
	if nil != err {
		return Nobody, nil, err
	}
	var account Account
	copy(account[:], publicKey)
	return account, PrivateKey(privateKey), nil
}

// AccountFromBytes - convert and validate a binary byte slice
func AccountFromBytes(buffer []byte) (Account, error) {
	var account Account
	if PublicKeySize != len(buffer) {
		return Nobody, fault.ErrInvalidKeyLength
	}
	copy(account[:], buffer)
	return account, nil
}

// AccountFromBase58 - decode the Base58 text form of an account
func AccountFromBase58(accountBase58Encoded string) (Account, error) {
	decoded, err := base58.Decode(accountBase58Encoded)
	if nil != err {
		return Nobody, fault.ErrCannotDecodeAccount
	}
	if PublicKeySize+checksumLength != len(decoded) {
		return Nobody, fault.ErrCannotDecodeAccount
	}

	keyBytes := decoded[:PublicKeySize]
	digest := sha3.Sum256(keyBytes)
	for i := 0; i < checksumLength; i += 1 {
		if digest[i] != decoded[PublicKeySize+i] {
			return Nobody, fault.ErrChecksumMismatch
		}
	}

	return AccountFromBytes(keyBytes)
}

// IsZero - true for the "no owner" sentinel
func (account Account) IsZero() bool {
	return account == Nobody
}

// Bytes - the raw public key
func (account Account) Bytes() []byte {
	return account[:]
}

// String - Base58 text form for use by the fmt package (for %s)
func (account Account) String() string {
	digest := sha3.Sum256(account[:])
	buffer := make([]byte, 0, PublicKeySize+checksumLength)
	buffer = append(buffer, account[:]...)
	buffer = append(buffer, digest[:checksumLength]...)
	return base58.Encode(buffer)
}

// GoString - for use by the fmt package (for %#v)
func (account Account) GoString() string {
	return "<account:" + account.String() + ">"
}

// MarshalText - convert account to Base58 text
func (account Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// UnmarshalText - convert Base58 text to an account
func (account *Account) UnmarshalText(s []byte) error {
	a, err := AccountFromBase58(string(s))
	if nil != err {
		return err
	}
	*account = a
	return nil
}

// CheckSignature - verify that a message was signed by this account
func (account Account) CheckSignature(message []byte, signature Signature) error {
	if SignatureSize != len(signature) {
		return fault.ErrInvalidSignature
	}
	if !ed25519.Verify(ed25519.PublicKey(account[:]), message, []byte(signature)) {
		return fault.ErrInvalidSignature
	}
	return nil
}

// Sign - produce a signature over a message
func (privateKey PrivateKey) Sign(message []byte) Signature {
	return Signature(ed25519.Sign(ed25519.PrivateKey(privateKey), message))
}

// Account - recover the account from a signing key
func (privateKey PrivateKey) Account() Account {
	var account Account
	copy(account[:], ed25519.PrivateKey(privateKey).Public().(ed25519.PublicKey))
	return account
}
