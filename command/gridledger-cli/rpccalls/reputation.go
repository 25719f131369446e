// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Open MicroGrid Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/openmicrogrid/gridledgerd/identity"
	"github.com/openmicrogrid/gridledgerd/rpc/reputation"
)

// AdoptInnovation - credit an innovation to an operator
func (client *Client) AdoptInnovation(innovator identity.Principal) (*reputation.AdoptReply, error) {

	args := reputation.AdoptArguments{
		Innovator: innovator,
	}

	client.printJson("Reputation Adopt Request", args)

	var reply reputation.AdoptReply
	if err := client.client.Call("Reputation.Adopt", &args, &reply); err != nil {
		return nil, err
	}

	client.printJson("Reputation Adopt Reply", reply)

	return &reply, nil
}

// GetOperatorStats - fetch the statistics of one operator
func (client *Client) GetOperatorStats(operator identity.Principal) (*reputation.GetReply, error) {

	args := reputation.GetArguments{
		Operator: operator,
	}

	client.printJson("Reputation Get Request", args)

	var reply reputation.GetReply
	if err := client.client.Call("Reputation.Get", &args, &reply); err != nil {
		return nil, err
	}

	client.printJson("Reputation Get Reply", reply)

	return &reply, nil
}
