// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Open MicroGrid Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package connection

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/openmicrogrid/gridledgerd/gridrecord"
	"github.com/openmicrogrid/gridledgerd/identity"
	"github.com/openmicrogrid/gridledgerd/ledger"
	"github.com/openmicrogrid/gridledgerd/rpc/ratelimit"
)

const (
	rateLimitConnection = 200
	rateBurstConnection = 100
)

// Connection - type for the RPC
type Connection struct {
	Log     *logger.L
	Limiter *rate.Limiter
}

func New(log *logger.L) *Connection {
	return &Connection{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitConnection, rateBurstConnection),
	}
}

// ---

// ConnectArguments - arguments for establishing a route
type ConnectArguments struct {
	Caller   identity.Principal `json:"caller"`
	FromGrid uint64             `json:"fromGrid"`
	ToGrid   uint64             `json:"toGrid"`
	Capacity uint64             `json:"capacity,string"`
}

// ConnectReply - the created route
type ConnectReply struct {
	Connection *gridrecord.GridConnection `json:"connection"`
}

// Connect - create or fully overwrite a directional route
func (connection *Connection) Connect(arguments *ConnectArguments, reply *ConnectReply) error {

	if err := ratelimit.Limit(connection.Limiter); nil != err {
		return err
	}

	connection.Log.Infof("Connection.Connect: %+v", arguments)

	record, err := ledger.ConnectGrids(arguments.Caller, arguments.FromGrid, arguments.ToGrid, arguments.Capacity)
	if nil != err {
		return err
	}
	reply.Connection = record

	return nil
}

// ---

// CascadeArguments - arguments for recording a transfer
type CascadeArguments struct {
	Caller   identity.Principal `json:"caller"`
	FromGrid uint64             `json:"fromGrid"`
	ToGrid   uint64             `json:"toGrid"`
	Amount   uint64             `json:"amount,string"`
}

// CascadeReply - the route after the transfer
type CascadeReply struct {
	Connection *gridrecord.GridConnection `json:"connection"`
}

// Cascade - record an asserted transfer over an active route
func (connection *Connection) Cascade(arguments *CascadeArguments, reply *CascadeReply) error {

	if err := ratelimit.Limit(connection.Limiter); nil != err {
		return err
	}

	connection.Log.Infof("Connection.Cascade: %+v", arguments)

	record, err := ledger.CascadeResources(arguments.Caller, arguments.FromGrid, arguments.ToGrid, arguments.Amount)
	if nil != err {
		return err
	}
	reply.Connection = record

	return nil
}

// ---

// GetArguments - arguments for a route lookup
type GetArguments struct {
	FromGrid uint64 `json:"fromGrid"`
	ToGrid   uint64 `json:"toGrid"`
}

// GetReply - results from a route lookup
type GetReply struct {
	Connection *gridrecord.GridConnection `json:"connection"`
}

// Get - fetch the directional route between two grids
func (connection *Connection) Get(arguments *GetArguments, reply *GetReply) error {

	if err := ratelimit.Limit(connection.Limiter); nil != err {
		return err
	}

	record, err := ledger.GetConnection(arguments.FromGrid, arguments.ToGrid)
	if nil != err {
		return err
	}
	reply.Connection = record

	return nil
}
