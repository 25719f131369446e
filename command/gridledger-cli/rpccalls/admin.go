// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Open MicroGrid Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/openmicrogrid/gridledgerd/identity"
	"github.com/openmicrogrid/gridledgerd/rpc/admin"
)

// ToggleProtocol - flip the protocol kill switch, owner only
func (client *Client) ToggleProtocol(caller identity.Principal) (*admin.ToggleReply, error) {

	args := admin.ToggleArguments{
		Caller: caller,
	}

	client.printJson("Admin Toggle Request", args)

	var reply admin.ToggleReply
	if err := client.client.Call("Admin.Toggle", &args, &reply); err != nil {
		return nil, err
	}

	client.printJson("Admin Toggle Reply", reply)

	return &reply, nil
}

// SetGlobalEfficiency - overwrite the global scalar, owner only
func (client *Client) SetGlobalEfficiency(caller identity.Principal, score uint64) (*admin.UpdateGlobalEfficiencyReply, error) {

	args := admin.UpdateGlobalEfficiencyArguments{
		Caller: caller,
		Score:  score,
	}

	client.printJson("Admin UpdateGlobalEfficiency Request", args)

	var reply admin.UpdateGlobalEfficiencyReply
	if err := client.client.Call("Admin.UpdateGlobalEfficiency", &args, &reply); err != nil {
		return nil, err
	}

	client.printJson("Admin UpdateGlobalEfficiency Reply", reply)

	return &reply, nil
}
