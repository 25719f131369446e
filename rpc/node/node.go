// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Open MicroGrid Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/openmicrogrid/gridledgerd/clock"
	"github.com/openmicrogrid/gridledgerd/ledger"
	"github.com/openmicrogrid/gridledgerd/protocol"
	"github.com/openmicrogrid/gridledgerd/rpc/listeners"
	"github.com/openmicrogrid/gridledgerd/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for the RPC
type Node struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Start   time.Time
	Version string
	counter *listeners.ConnectionCounter
}

func New(log *logger.L, start time.Time, version string, counter *listeners.ConnectionCounter) *Node {
	return &Node{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:   start,
		Version: version,
		counter: counter,
	}
}

// ---

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	ProtocolActive   bool   `json:"protocolActive"`
	GlobalEfficiency uint64 `json:"globalEfficiency"`
	TotalGrids       uint64 `json:"totalGrids"`
	TotalResources   uint64 `json:"totalResources"`
	Height           uint64 `json:"height"`
	RPCs             uint64 `json:"rpcs"`
	Version          string `json:"version"`
	Uptime           string `json:"uptime"`
}

// Info - return enough information for clients to determine node state
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	reply.ProtocolActive = protocol.IsActive()
	reply.GlobalEfficiency = protocol.GlobalEfficiency()
	reply.TotalGrids = ledger.TotalGrids()
	reply.TotalResources = ledger.TotalResourcesTracked()
	reply.Height = clock.Height()
	reply.RPCs = node.counter.Uint64()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()

	return nil
}
