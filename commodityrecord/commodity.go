// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2026 Ledger Works
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package commodityrecord

import (
	"strings"

	"github.com/ledger-works/commodityd/fault"
	"github.com/ledger-works/commodityd/util"
)

// CommodityData - the descriptive payload of a commodity
type CommodityData struct {
	Name        string `json:"name"`
	Metadata    string `json:"metadata"`
	Fingerprint string `json:"fingerprint"`
}

// Packed - canonical byte form of a commodity payload
type Packed []byte

// Commodity - an identifier together with its payload, the unit held
// in per-account collections
type Commodity struct {
	Id   CommodityIdentifier `json:"id"`
	Data CommodityData       `json:"data"`
}

// Pack - serialise the payload to its canonical byte form
//
// each field is length prefixed with a Varint64 and appended in
// declaration order, so equal payloads always pack identically
func (data CommodityData) Pack() Packed {
	packed := appendString(nil, data.Name)
	packed = appendString(packed, data.Metadata)
	packed = appendString(packed, data.Fingerprint)
	return packed
}

// Unpack - decode a canonical byte form back into a payload
func (packed Packed) Unpack() (CommodityData, error) {
	data := CommodityData{}

	s, packed, err := nextString(packed)
	if nil != err {
		return data, err
	}
	data.Name = s

	s, packed, err = nextString(packed)
	if nil != err {
		return data, err
	}
	data.Metadata = s

	s, packed, err = nextString(packed)
	if nil != err {
		return data, err
	}
	data.Fingerprint = s

	if 0 != len(packed) {
		return CommodityData{}, fault.ErrNotCommodityPack
	}
	return data, nil
}

// Compare - strict total order over payloads
//
// returns -1, 0, +1 like strings.Compare
func (data CommodityData) Compare(other CommodityData) int {
	if c := strings.Compare(data.Name, other.Name); 0 != c {
		return c
	}
	if c := strings.Compare(data.Metadata, other.Metadata); 0 != c {
		return c
	}
	return strings.Compare(data.Fingerprint, other.Fingerprint)
}

// Id - derive the identifier of this payload
func (data CommodityData) Id() CommodityIdentifier {
	return NewCommodityIdentifier(data.Pack())
}

func appendString(buffer []byte, s string) []byte {
	buffer = append(buffer, util.ToVarint64(uint64(len(s)))...)
	return append(buffer, s...)
}

func nextString(buffer []byte) (string, []byte, error) {
	length, count := util.FromVarint64(buffer)
	if 0 == count {
		return "", nil, fault.ErrNotCommodityPack
	}
	buffer = buffer[count:]
	if uint64(len(buffer)) < length {
		return "", nil, fault.ErrNotCommodityPack
	}
	return string(buffer[:length]), buffer[length:], nil
}
