// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Open MicroGrid Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package governance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/openmicrogrid/gridledgerd/digest"
	"github.com/openmicrogrid/gridledgerd/fault"
	"github.com/openmicrogrid/gridledgerd/ledger"
	"github.com/openmicrogrid/gridledgerd/rpc/fixtures"
	"github.com/openmicrogrid/gridledgerd/rpc/governance"
)

func TestStakeAndGet(t *testing.T) {
	fixtures.SetupTestLedger(t)
	defer fixtures.TeardownTestLedger(t)

	operator := fixtures.MakePrincipal(0x30)
	staker := fixtures.MakePrincipal(0x40)
	_, err := ledger.RegisterGrid(operator, digest.NewDigest([]byte("west field")), 5000)
	assert.Nil(t, err, "wrong RegisterGrid")

	g := governance.New(logger.New("test"))

	var stakeReply governance.StakeReply
	err = g.Stake(&governance.StakeArguments{
		Staker: staker,
		GridId: 1,
		Amount: ledger.MinimumStake - 1,
	}, &stakeReply)
	assert.Equal(t, fault.InsufficientStake, err, "wrong error")

	err = g.Stake(&governance.StakeArguments{
		Staker: staker,
		GridId: 1,
		Amount: 1000000000,
	}, &stakeReply)
	assert.Nil(t, err, "wrong Stake")
	assert.Equal(t, uint64(1000), stakeReply.Stake.GovernancePower, "wrong power")

	var getReply governance.GetReply
	err = g.Get(&governance.GetArguments{Staker: staker, GridId: 1}, &getReply)
	assert.Nil(t, err, "wrong Get")
	assert.Equal(t, uint64(1000000000), getReply.Stake.Amount, "wrong amount")
}
