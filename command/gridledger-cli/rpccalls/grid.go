// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Open MicroGrid Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/openmicrogrid/gridledgerd/digest"
	"github.com/openmicrogrid/gridledgerd/identity"
	"github.com/openmicrogrid/gridledgerd/rpc/grid"
)

// RegisterGrid - register a new grid operated by the given principal
func (client *Client) RegisterGrid(operator identity.Principal, locationHash digest.Digest, initialCapacity uint64) (*grid.RegisterReply, error) {

	args := grid.RegisterArguments{
		Operator:        operator,
		LocationHash:    locationHash,
		InitialCapacity: initialCapacity,
	}

	client.printJson("Grid Register Request", args)

	var reply grid.RegisterReply
	if err := client.client.Call("Grid.Register", &args, &reply); err != nil {
		return nil, err
	}

	client.printJson("Grid Register Reply", reply)

	return &reply, nil
}

// GetGrid - fetch one grid by its identifier
func (client *Client) GetGrid(gridId uint64) (*grid.GetReply, error) {

	args := grid.GetArguments{
		GridId: gridId,
	}

	client.printJson("Grid Get Request", args)

	var reply grid.GetReply
	if err := client.client.Call("Grid.Get", &args, &reply); err != nil {
		return nil, err
	}

	client.printJson("Grid Get Reply", reply)

	return &reply, nil
}

// UpdateGridEfficiency - overwrite a grid's efficiency score
func (client *Client) UpdateGridEfficiency(caller identity.Principal, gridId uint64, efficiencyScore uint64) (*grid.UpdateEfficiencyReply, error) {

	args := grid.UpdateEfficiencyArguments{
		Caller:          caller,
		GridId:          gridId,
		EfficiencyScore: efficiencyScore,
	}

	client.printJson("Grid UpdateEfficiency Request", args)

	var reply grid.UpdateEfficiencyReply
	if err := client.client.Call("Grid.UpdateEfficiency", &args, &reply); err != nil {
		return nil, err
	}

	client.printJson("Grid UpdateEfficiency Reply", reply)

	return &reply, nil
}
