// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Open MicroGrid Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package admin

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/openmicrogrid/gridledgerd/identity"
	"github.com/openmicrogrid/gridledgerd/protocol"
	"github.com/openmicrogrid/gridledgerd/rpc/ratelimit"
)

const (
	rateLimitAdmin = 10
	rateBurstAdmin = 5
)

// Admin - type for the RPC, owner gated operations
type Admin struct {
	Log     *logger.L
	Limiter *rate.Limiter
}

func New(log *logger.L) *Admin {
	return &Admin{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitAdmin, rateBurstAdmin),
	}
}

// ---

// ToggleArguments - arguments for flipping the kill switch
type ToggleArguments struct {
	Caller identity.Principal `json:"caller"`
}

// ToggleReply - the new protocol state
type ToggleReply struct {
	Active bool `json:"active"`
}

// Toggle - flip the protocol kill switch, owner only
func (admin *Admin) Toggle(arguments *ToggleArguments, reply *ToggleReply) error {

	if err := ratelimit.Limit(admin.Limiter); nil != err {
		return err
	}

	admin.Log.Infof("Admin.Toggle: %+v", arguments)

	active, err := protocol.Toggle(arguments.Caller)
	if nil != err {
		return err
	}
	reply.Active = active

	return nil
}

// ---

// UpdateGlobalEfficiencyArguments - arguments for overwriting the
// global scalar
type UpdateGlobalEfficiencyArguments struct {
	Caller identity.Principal `json:"caller"`
	Score  uint64             `json:"score"`
}

// UpdateGlobalEfficiencyReply - the stored scalar
type UpdateGlobalEfficiencyReply struct {
	Score uint64 `json:"score"`
}

// UpdateGlobalEfficiency - overwrite the global scalar, owner only
func (admin *Admin) UpdateGlobalEfficiency(arguments *UpdateGlobalEfficiencyArguments, reply *UpdateGlobalEfficiencyReply) error {

	if err := ratelimit.Limit(admin.Limiter); nil != err {
		return err
	}

	admin.Log.Infof("Admin.UpdateGlobalEfficiency: %+v", arguments)

	err := protocol.SetGlobalEfficiency(arguments.Caller, arguments.Score)
	if nil != err {
		return err
	}
	reply.Score = protocol.GlobalEfficiency()

	return nil
}
