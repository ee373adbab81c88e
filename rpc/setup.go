// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2026 Ledger Works
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"crypto/tls"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/ledger-works/commodityd/counter"
	"github.com/ledger-works/commodityd/fault"
)

const (
	logName            = "client_rpc"
	minConnectionCount = 1
)

// RPCConfiguration - configuration file data for RPC setup
//
// Certificate and PrivateKey hold PEM content, not file names; the
// configuration layer reads the files
type RPCConfiguration struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string `gluamapper:"listen" json:"listen"`
	Certificate        string   `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string   `gluamapper:"private_key" json:"private_key"`
}

// globals
var globalData struct {
	sync.RWMutex

	log       *logger.L
	listeners []net.Listener
	count     counter.Counter

	// set once during initialise
	initialised bool
}

// Initialise - start serving
func Initialise(configuration *RPCConfiguration, version string) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", logName, configuration.MaximumConnections)
		return fault.ErrMissingParameters
	}
	if 0 == len(configuration.Listen) {
		log.Errorf("missing %s listen", logName)
		return fault.ErrMissingParameters
	}

	tlsConfiguration, certificateFingerprint, err := getCertificate(log, logName, configuration.Certificate, configuration.PrivateKey)
	if nil != err {
		return err
	}
	log.Infof("%s: SHA3-256 fingerprint: %x", logName, certificateFingerprint)

	server := createServer(log, version, &globalData.count)

	for _, listen := range configuration.Listen {
		log.Infof("starting RPC server: %s", listen)
		listener, err := tls.Listen("tcp", listen, tlsConfiguration)
		if nil != err {
			log.Errorf("rpc server listen error: %s", err)
			return err
		}
		globalData.listeners = append(globalData.listeners, listener)

		go doServeRPC(listener, server, configuration.MaximumConnections, log, &globalData.count)
	}

	globalData.initialised = true
	return nil
}

// Finalise - stop serving
func Finalise() {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return
	}

	globalData.log.Info("shutting down…")
	for _, listener := range globalData.listeners {
		_ = listener.Close()
	}
	globalData.listeners = nil
	globalData.log.Flush()
	globalData.initialised = false
}

// register all services
func createServer(log *logger.L, version string, count *counter.Counter) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()
	_ = server.Register(&Commodity{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitCommodity, rateBurstCommodity),
	})
	_ = server.Register(&Owner{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitOwner, rateBurstOwner),
	})
	_ = server.Register(&Node{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:   start,
		Version: version,
		Counter: count,
	})
	return server
}

// accept loop for one listener
func doServeRPC(listen net.Listener, server *rpc.Server, maximumConnections uint64, log *logger.L, count *counter.Counter) {
	for {
		conn, err := listen.Accept()
		if nil != err {
			log.Errorf("rpc.server terminated: accept error: %s", err)
			break
		}
		if count.Increment() <= maximumConnections {
			go func() {
				server.ServeCodec(jsonrpc.NewServerCodec(conn))
				_ = conn.Close()
				count.Decrement()
			}()
		} else {
			count.Decrement()
			_ = conn.Close()
		}
	}
	_ = listen.Close()
	log.Error("RPC accept terminated")
}
