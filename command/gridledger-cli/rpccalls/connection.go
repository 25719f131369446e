// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Open MicroGrid Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/openmicrogrid/gridledgerd/identity"
	"github.com/openmicrogrid/gridledgerd/rpc/connection"
)

// ConnectGrids - create or fully overwrite a directional route
func (client *Client) ConnectGrids(caller identity.Principal, fromGrid uint64, toGrid uint64, capacity uint64) (*connection.ConnectReply, error) {

	args := connection.ConnectArguments{
		Caller:   caller,
		FromGrid: fromGrid,
		ToGrid:   toGrid,
		Capacity: capacity,
	}

	client.printJson("Connection Connect Request", args)

	var reply connection.ConnectReply
	if err := client.client.Call("Connection.Connect", &args, &reply); err != nil {
		return nil, err
	}

	client.printJson("Connection Connect Reply", reply)

	return &reply, nil
}

// CascadeResources - record a transfer over an active route
func (client *Client) CascadeResources(caller identity.Principal, fromGrid uint64, toGrid uint64, amount uint64) (*connection.CascadeReply, error) {

	args := connection.CascadeArguments{
		Caller:   caller,
		FromGrid: fromGrid,
		ToGrid:   toGrid,
		Amount:   amount,
	}

	client.printJson("Connection Cascade Request", args)

	var reply connection.CascadeReply
	if err := client.client.Call("Connection.Cascade", &args, &reply); err != nil {
		return nil, err
	}

	client.printJson("Connection Cascade Reply", reply)

	return &reply, nil
}

// GetConnection - fetch the directional route between two grids
func (client *Client) GetConnection(fromGrid uint64, toGrid uint64) (*connection.GetReply, error) {

	args := connection.GetArguments{
		FromGrid: fromGrid,
		ToGrid:   toGrid,
	}

	client.printJson("Connection Get Request", args)

	var reply connection.GetReply
	if err := client.client.Call("Connection.Get", &args, &reply); err != nil {
		return nil, err
	}

	client.printJson("Connection Get Reply", reply)

	return &reply, nil
}
