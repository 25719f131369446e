// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Open MicroGrid Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package challenge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/openmicrogrid/gridledgerd/fault"
	"github.com/openmicrogrid/gridledgerd/rpc/challenge"
	"github.com/openmicrogrid/gridledgerd/rpc/fixtures"
)

func TestJoinAndGet(t *testing.T) {
	fixtures.SetupTestLedger(t)
	defer fixtures.TeardownTestLedger(t)

	participant := fixtures.MakePrincipal(0x50)
	c := challenge.New(logger.New("test"))

	var joinReply challenge.JoinReply
	err := c.Join(&challenge.JoinArguments{
		Participant:           participant,
		Season:                3,
		EfficiencyImprovement: 75,
	}, &joinReply)
	assert.Nil(t, err, "wrong Join")

	// a second claim overwrites the first
	err = c.Join(&challenge.JoinArguments{
		Participant:           participant,
		Season:                3,
		EfficiencyImprovement: 40,
	}, &joinReply)
	assert.Nil(t, err, "wrong Join")

	var getReply challenge.GetReply
	err = c.Get(&challenge.GetArguments{Participant: participant, Season: 3}, &getReply)
	assert.Nil(t, err, "wrong Get")
	assert.Equal(t, uint64(40), getReply.Participation.EfficiencyImprovement, "claim must overwrite")

	err = c.Get(&challenge.GetArguments{Participant: participant, Season: 4}, &getReply)
	assert.Equal(t, fault.ParticipationNotFound, err, "wrong error")
}
