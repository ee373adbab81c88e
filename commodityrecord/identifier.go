// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2026 Ledger Works
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package commodityrecord

import (
	"bytes"
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/ledger-works/commodityd/fault"
)

// CommodityIdentifierLength - size of the identifier digest
const CommodityIdentifierLength = 64

// CommodityIdentifier - the content derived identifier of a commodity
//
// represented as hex text for JSON encoding
// to get the bytes value just use id[:]
type CommodityIdentifier [CommodityIdentifierLength]byte

// NewCommodityIdentifier - derive an identifier from a packed payload
//
// SHA3-512 hash
func NewCommodityIdentifier(record Packed) CommodityIdentifier {
	return CommodityIdentifier(sha3.Sum512(record))
}

// Compare - byte-wise order over identifiers
//
// this is the order of per-account collections and of enumeration
func (id CommodityIdentifier) Compare(other CommodityIdentifier) int {
	return bytes.Compare(id[:], other[:])
}

// String - convert a binary identifier to hex text for use by the fmt package (for %s)
func (id CommodityIdentifier) String() string {
	return hex.EncodeToString(id[:])
}

// GoString - convert a binary identifier to hex text for use by the fmt package (for %#v)
func (id CommodityIdentifier) GoString() string {
	return "<commodity:" + hex.EncodeToString(id[:]) + ">"
}

// MarshalText - convert identifier to hex text
func (id CommodityIdentifier) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(id))
	buffer := make([]byte, size)
	hex.Encode(buffer, id[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into an identifier
func (id *CommodityIdentifier) UnmarshalText(s []byte) error {
	if len(id) != hex.DecodedLen(len(s)) {
		return fault.ErrNotCommodityIdentifier
	}
	byteCount, err := hex.Decode(id[:], s)
	if nil != err {
		return err
	}
	if CommodityIdentifierLength != byteCount {
		return fault.ErrNotCommodityIdentifier
	}
	return nil
}

// CommodityIdentifierFromBytes - convert and validate a binary byte slice
func CommodityIdentifierFromBytes(id *CommodityIdentifier, buffer []byte) error {
	if CommodityIdentifierLength != len(buffer) {
		return fault.ErrNotCommodityIdentifier
	}
	copy(id[:], buffer)
	return nil
}
