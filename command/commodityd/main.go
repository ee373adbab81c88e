// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2026 Ledger Works
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/ledger-works/commodityd/account"
	"github.com/ledger-works/commodityd/dispatch"
	"github.com/ledger-works/commodityd/genesis"
	"github.com/ledger-works/commodityd/messagebus"
	"github.com/ledger-works/commodityd/registry"
	"github.com/ledger-works/commodityd/rpc"
	"github.com/ledger-works/commodityd/storage"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// ------------------
	// start of real main
	// ------------------

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if nil != err {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	// the administrator account that is allowed to mint
	if "" == theConfiguration.Administrator {
		log.Critical("administrator account is not configured")
		exitwithstatus.Message("administrator account is not configured")
	}
	administrator, err := account.AccountFromBase58(theConfiguration.Administrator)
	if nil != err {
		log.Criticalf("administrator account: %q error: %s", theConfiguration.Administrator, err)
		exitwithstatus.Message("administrator account: %q error: %s", theConfiguration.Administrator, err)
	}

	// general info
	log.Infof("database: %q", theConfiguration.Database.Name)
	log.Debugf("%s = %#v", "ClientRPC", theConfiguration.ClientRPC)

	// start the data storage
	log.Info("initialise storage")
	err = storage.Initialise(theConfiguration.Database.Name)
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("storage initialise error: %s", err)
	}
	defer storage.Finalise()

	// load the ledger
	log.Info("initialise registry")
	err = registry.Initialise(theConfiguration.Registry)
	if nil != err {
		log.Criticalf("registry initialise error: %s", err)
		exitwithstatus.Message("registry initialise error: %s", err)
	}
	defer registry.Finalise()

	// bootstrap commodities
	log.Info("initialise genesis")
	err = genesis.Initialise(theConfiguration.Genesis)
	if nil != err {
		log.Criticalf("genesis initialise error: %s", err)
		exitwithstatus.Message("genesis initialise error: %s", err)
	}

	// the authorisation gate
	log.Info("initialise dispatch")
	err = dispatch.Initialise(administrator)
	if nil != err {
		log.Criticalf("dispatch initialise error: %s", err)
		exitwithstatus.Message("dispatch initialise error: %s", err)
	}
	defer dispatch.Finalise()

	// consume ledger events
	go eventLoop(logger.New("events"))

	// the RPC configuration references certificate files; the server
	// needs the PEM content
	certificatePEM, err := ioutil.ReadFile(theConfiguration.ClientRPC.Certificate)
	if nil != err {
		log.Criticalf("certificate: %q error: %s", theConfiguration.ClientRPC.Certificate, err)
		exitwithstatus.Message("certificate: %q error: %s", theConfiguration.ClientRPC.Certificate, err)
	}
	keyPEM, err := ioutil.ReadFile(theConfiguration.ClientRPC.PrivateKey)
	if nil != err {
		log.Criticalf("private key: %q error: %s", theConfiguration.ClientRPC.PrivateKey, err)
		exitwithstatus.Message("private key: %q error: %s", theConfiguration.ClientRPC.PrivateKey, err)
	}
	theConfiguration.ClientRPC.Certificate = string(certificatePEM)
	theConfiguration.ClientRPC.PrivateKey = string(keyPEM)

	// start up the rpc background processes
	err = rpc.Initialise(&theConfiguration.ClientRPC, version)
	if nil != err {
		log.Criticalf("rpc initialise error: %s", err)
		exitwithstatus.Message("rpc initialise error: %s", err)
	}
	defer rpc.Finalise()

	// wait for CTRL-C before shutting down to allow manual testing
	if 0 == len(options["quiet"]) {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if 0 == len(options["quiet"]) {
		fmt.Printf("\nreceived signal: %v\n", sig)
		fmt.Printf("\nshutting down…\n")
	}

	log.Info("shutting down…")
}

// log every ledger event placed on the bus
func eventLoop(log *logger.L) {
	for message := range messagebus.Chan() {
		switch event := message.Item.(type) {
		case messagebus.MintedEvent:
			log.Infof("%s: minted: %s owner: %s", message.From, event.CommodityId, event.Owner)
		case messagebus.BurnedEvent:
			log.Infof("%s: burned: %s", message.From, event.CommodityId)
		case messagebus.TransferredEvent:
			log.Infof("%s: transferred: %s to: %s", message.From, event.CommodityId, event.Destination)
		default:
			log.Warnf("%s: unknown event: %v", message.From, message.Item)
		}
	}
}
