// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Open MicroGrid Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/openmicrogrid/gridledgerd/identity"
	"github.com/openmicrogrid/gridledgerd/rpc/governance"
)

// Stake - record a governance deposit on a grid
func (client *Client) Stake(staker identity.Principal, gridId uint64, amount uint64) (*governance.StakeReply, error) {

	args := governance.StakeArguments{
		Staker: staker,
		GridId: gridId,
		Amount: amount,
	}

	client.printJson("Governance Stake Request", args)

	var reply governance.StakeReply
	if err := client.client.Call("Governance.Stake", &args, &reply); err != nil {
		return nil, err
	}

	client.printJson("Governance Stake Reply", reply)

	return &reply, nil
}

// GetStake - fetch the cumulative stake of one staker on one grid
func (client *Client) GetStake(staker identity.Principal, gridId uint64) (*governance.GetReply, error) {

	args := governance.GetArguments{
		Staker: staker,
		GridId: gridId,
	}

	client.printJson("Governance Get Request", args)

	var reply governance.GetReply
	if err := client.client.Call("Governance.Get", &args, &reply); err != nil {
		return nil, err
	}

	client.printJson("Governance Get Reply", reply)

	return &reply, nil
}
