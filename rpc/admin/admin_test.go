// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Open MicroGrid Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package admin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/openmicrogrid/gridledgerd/fault"
	"github.com/openmicrogrid/gridledgerd/rpc/admin"
	"github.com/openmicrogrid/gridledgerd/rpc/fixtures"
)

func TestToggle(t *testing.T) {
	fixtures.SetupTestLedger(t)
	defer fixtures.TeardownTestLedger(t)

	a := admin.New(logger.New("test"))
	stranger := fixtures.MakePrincipal(0x70)

	var toggleReply admin.ToggleReply
	err := a.Toggle(&admin.ToggleArguments{Caller: stranger}, &toggleReply)
	assert.Equal(t, fault.NotAuthorized, err, "wrong error")

	err = a.Toggle(&admin.ToggleArguments{Caller: fixtures.Owner}, &toggleReply)
	assert.Nil(t, err, "wrong Toggle")
	assert.False(t, toggleReply.Active, "wrong toggled state")

	err = a.Toggle(&admin.ToggleArguments{Caller: fixtures.Owner}, &toggleReply)
	assert.Nil(t, err, "wrong Toggle")
	assert.True(t, toggleReply.Active, "wrong toggled state")
}

func TestUpdateGlobalEfficiency(t *testing.T) {
	fixtures.SetupTestLedger(t)
	defer fixtures.TeardownTestLedger(t)

	a := admin.New(logger.New("test"))
	stranger := fixtures.MakePrincipal(0x70)

	var reply admin.UpdateGlobalEfficiencyReply
	err := a.UpdateGlobalEfficiency(&admin.UpdateGlobalEfficiencyArguments{
		Caller: stranger,
		Score:  500,
	}, &reply)
	assert.Equal(t, fault.NotAuthorized, err, "wrong error")

	err = a.UpdateGlobalEfficiency(&admin.UpdateGlobalEfficiencyArguments{
		Caller: fixtures.Owner,
		Score:  500,
	}, &reply)
	assert.Nil(t, err, "wrong UpdateGlobalEfficiency")
	assert.Equal(t, uint64(500), reply.Score, "wrong stored score")
}
