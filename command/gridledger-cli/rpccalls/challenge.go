// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Open MicroGrid Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/openmicrogrid/gridledgerd/identity"
	"github.com/openmicrogrid/gridledgerd/rpc/challenge"
)

// JoinChallenge - file a self-reported efficiency claim for a season
func (client *Client) JoinChallenge(participant identity.Principal, season uint64, efficiencyImprovement uint64) (*challenge.JoinReply, error) {

	args := challenge.JoinArguments{
		Participant:           participant,
		Season:                season,
		EfficiencyImprovement: efficiencyImprovement,
	}

	client.printJson("Challenge Join Request", args)

	var reply challenge.JoinReply
	if err := client.client.Call("Challenge.Join", &args, &reply); err != nil {
		return nil, err
	}

	client.printJson("Challenge Join Reply", reply)

	return &reply, nil
}

// GetParticipation - fetch one participant's claim for one season
func (client *Client) GetParticipation(participant identity.Principal, season uint64) (*challenge.GetReply, error) {

	args := challenge.GetArguments{
		Participant: participant,
		Season:      season,
	}

	client.printJson("Challenge Get Request", args)

	var reply challenge.GetReply
	if err := client.client.Call("Challenge.Get", &args, &reply); err != nil {
		return nil, err
	}

	client.printJson("Challenge Get Reply", reply)

	return &reply, nil
}
