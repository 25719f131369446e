// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Open MicroGrid Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/openmicrogrid/gridledgerd/digest"
	"github.com/openmicrogrid/gridledgerd/fault"
	"github.com/openmicrogrid/gridledgerd/rpc/fixtures"
	"github.com/openmicrogrid/gridledgerd/rpc/grid"
)

func TestRegisterAndGet(t *testing.T) {
	fixtures.SetupTestLedger(t)
	defer fixtures.TeardownTestLedger(t)

	g := grid.New(logger.New("test"))
	operator := fixtures.MakePrincipal(0x30)

	registerArgs := grid.RegisterArguments{
		Operator:        operator,
		LocationHash:    digest.NewDigest([]byte("north field")),
		InitialCapacity: 5000,
	}
	var registerReply grid.RegisterReply
	err := g.Register(&registerArgs, &registerReply)
	assert.Nil(t, err, "wrong Register")
	assert.Equal(t, uint64(1), registerReply.GridId, "wrong grid id")
	assert.Equal(t, operator, registerReply.Grid.Operator, "wrong operator")

	var getReply grid.GetReply
	err = g.Get(&grid.GetArguments{GridId: 1}, &getReply)
	assert.Nil(t, err, "wrong Get")
	assert.Equal(t, uint64(5000), getReply.Grid.TotalCapacity, "wrong capacity")

	err = g.Get(&grid.GetArguments{GridId: 2}, &getReply)
	assert.Equal(t, fault.GridNotFound, err, "wrong error")
}

func TestUpdateEfficiency(t *testing.T) {
	fixtures.SetupTestLedger(t)
	defer fixtures.TeardownTestLedger(t)

	g := grid.New(logger.New("test"))
	operator := fixtures.MakePrincipal(0x30)
	stranger := fixtures.MakePrincipal(0x40)

	var registerReply grid.RegisterReply
	err := g.Register(&grid.RegisterArguments{
		Operator:        operator,
		LocationHash:    digest.NewDigest([]byte("north field")),
		InitialCapacity: 5000,
	}, &registerReply)
	assert.Nil(t, err, "wrong Register")

	var updateReply grid.UpdateEfficiencyReply
	err = g.UpdateEfficiency(&grid.UpdateEfficiencyArguments{
		Caller:          stranger,
		GridId:          1,
		EfficiencyScore: 500,
	}, &updateReply)
	assert.Equal(t, fault.NotAuthorized, err, "wrong error")

	err = g.UpdateEfficiency(&grid.UpdateEfficiencyArguments{
		Caller:          operator,
		GridId:          1,
		EfficiencyScore: 500,
	}, &updateReply)
	assert.Nil(t, err, "wrong UpdateEfficiency")
	assert.Equal(t, uint64(500), updateReply.Grid.EfficiencyScore, "wrong score")
}
