// SPDX-License-Identifier: ISC
// Copyright (c) 2020-2026 Ledger Works
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/ledger-works/commodityd/counter"
	"github.com/ledger-works/commodityd/registry"
)

// Node - type for RPC calls
type Node struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Start   time.Time
	Version string
	Counter *counter.Counter
}

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Total        uint64 `json:"total,string"`
	Burned       uint64 `json:"burned,string"`
	LimitReached bool   `json:"limitReached"`
	Connections  uint64 `json:"connections"`
	Version      string `json:"version"`
	Uptime       string `json:"uptime"`
}

// Info - return some information about this node
// only enough for clients to determine node state
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := rateLimit(node.Limiter); nil != err {
		return err
	}

	reply.Total = registry.Total()
	reply.Burned = registry.Burned()
	reply.LimitReached = registry.IsLimitReached()
	reply.Connections = node.Counter.Uint64()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	return nil
}
