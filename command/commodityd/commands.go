// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2026 Ledger Works
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"path/filepath"

	"github.com/bitmark-inc/exitwithstatus"

	"github.com/ledger-works/commodityd/account"
)

const (
	rpcCertificateFilename = "rpc.crt"
	rpcPrivateKeyFilename  = "rpc.key"
)

// setup command handler
//
// commands that run to create key and certificate files; these
// commands cannot access any internal database or states or the
// configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "gen-rpc-cert", "rpc":
		certificateFileName := getFilenameWithDirectory(arguments, rpcCertificateFilename)
		privateKeyFileName := getFilenameWithDirectory(arguments, rpcPrivateKeyFilename)

		addresses := []string{}
		if len(arguments) >= 2 {
			for _, a := range arguments[1:] {
				if "" != a {
					addresses = append(addresses, a)
				}
			}
		}

		err := makeSelfSignedCertificate("rpc", certificateFileName, privateKeyFileName, 0 != len(addresses), addresses)
		if nil != err {
			fmt.Printf("generate RPC key: %q and certificate: %q error: %s\n", privateKeyFileName, certificateFileName, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("generated RPC key: %q and certificate: %q\n", privateKeyFileName, certificateFileName)

	case "fingerprint", "fp":
		if 0 == len(arguments) || "" == arguments[0] {
			fmt.Printf("error: missing certificate file name\n")
			exitwithstatus.Exit(1)
		}
		fingerprint, err := certificateFingerprint(arguments[0])
		if nil != err {
			fmt.Printf("certificate: %q error: %s\n", arguments[0], err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("fingerprint: %x\n", fingerprint)

	case "new-account", "acc":
		acc, privateKey, err := account.Generate()
		if nil != err {
			fmt.Printf("account generate error: %s\n", err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("account:     %s\n", acc)
		fmt.Printf("private key: %s\n", hex.EncodeToString(privateKey))

	case "start", "run":
		return false // continue processing

	case "config-test", "cfg":
		return false // defer processing until configuration is read

	case "version", "v":
		fmt.Printf("%s\n", version)

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)
		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                 (h)    - display this message\n\n")
		fmt.Printf("  version              (v)    - display version string\n\n")

		fmt.Printf("  gen-rpc-cert [DIR]   (rpc)  - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                and the certificate in: %q\n", "DIR/"+rpcCertificateFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-rpc-cert [DIR] [IPs...] - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                and the certificate in: %q\n", "DIR/"+rpcCertificateFilename)
		fmt.Printf("\n")

		fmt.Printf("  fingerprint FILE     (fp)   - display the SHA3-256 fingerprint of a certificate\n")
		fmt.Printf("\n")

		fmt.Printf("  new-account          (acc)  - generate an account and private key\n")
		fmt.Printf("\n")

		fmt.Printf("  start                (run)  - just run the program, same as no arguments\n")
		fmt.Printf("                                for convenience when passing script arguments\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test          (cfg)  - just check the configuration file\n")
		fmt.Printf("\n")
	}
	return true
}

// configuration command handler
//
// commands that require the configuration file but no databases
func processConfigCommand(arguments []string, theConfiguration *Configuration) bool {

	if 0 == len(arguments) {
		return false
	}

	switch arguments[0] {
	case "config-test", "cfg":
		fmt.Printf("data directory: %q\n", theConfiguration.DataDirectory)
		fmt.Printf("database:       %q\n", theConfiguration.Database.Name)
		fmt.Printf("administrator:  %q\n", theConfiguration.Administrator)
		fmt.Printf("limits:         commodity: %d  per account: %d\n",
			theConfiguration.Registry.CommodityLimit,
			theConfiguration.Registry.UserCommodityLimit)
		fmt.Printf("genesis:        %d entries\n", len(theConfiguration.Genesis))
		fmt.Printf("rpc listen:     %v\n", theConfiguration.ClientRPC.Listen)
		fmt.Printf("configuration is ok\n")
		return true

	default:
		return false
	}
}

// combine a directory from the arguments with a file name
func getFilenameWithDirectory(arguments []string, name string) string {
	dir := "."
	if len(arguments) >= 1 && "" != arguments[0] {
		dir = arguments[0]
	}
	return filepath.Join(dir, name)
}
