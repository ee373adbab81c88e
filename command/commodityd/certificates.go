// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2026 Ledger Works
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/pem"
	"io/ioutil"
	"os"
	"time"

	"github.com/bitmark-inc/certgen"
	"golang.org/x/crypto/sha3"

	"github.com/ledger-works/commodityd/fault"
	"github.com/ledger-works/commodityd/util"
)

// create a self-signed certificate
func makeSelfSignedCertificate(name string, certificateFileName string, privateKeyFileName string, override bool, extraHosts []string) error {

	if util.EnsureFileExists(certificateFileName) {
		return fault.ErrCertificateFileExists
	}

	if util.EnsureFileExists(privateKeyFileName) {
		return fault.ErrKeyFileExists
	}

	org := "commodityd self signed cert for: " + name
	validUntil := time.Now().Add(10 * 365 * 24 * time.Hour)
	cert, key, err := certgen.NewTLSCertPair(org, validUntil, override, extraHosts)
	if nil != err {
		return err
	}

	if err = ioutil.WriteFile(certificateFileName, cert, 0666); nil != err {
		return err
	}

	if err = ioutil.WriteFile(privateKeyFileName, key, 0600); nil != err {
		os.Remove(certificateFileName)
		return err
	}

	return nil
}

// compute the fingerprint of a PEM certificate file
//
// FreeBSD: openssl x509 -outform DER -in rpc.crt | sha3sum -a 256
func certificateFingerprint(certificateFileName string) ([32]byte, error) {

	data, err := ioutil.ReadFile(certificateFileName)
	if nil != err {
		return [32]byte{}, err
	}

	block, _ := pem.Decode(data)
	if nil == block || "CERTIFICATE" != block.Type {
		return [32]byte{}, fault.ErrCertificateFileInvalid
	}

	return sha3.Sum256(block.Bytes), nil
}
