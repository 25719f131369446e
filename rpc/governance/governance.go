// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Open MicroGrid Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package governance

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/openmicrogrid/gridledgerd/gridrecord"
	"github.com/openmicrogrid/gridledgerd/identity"
	"github.com/openmicrogrid/gridledgerd/ledger"
	"github.com/openmicrogrid/gridledgerd/rpc/ratelimit"
)

const (
	rateLimitGovernance = 200
	rateBurstGovernance = 100
)

// Governance - type for the RPC
type Governance struct {
	Log     *logger.L
	Limiter *rate.Limiter
}

func New(log *logger.L) *Governance {
	return &Governance{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitGovernance, rateBurstGovernance),
	}
}

// ---

// StakeArguments - arguments for a governance deposit
type StakeArguments struct {
	Staker identity.Principal `json:"staker"`
	GridId uint64             `json:"gridId"`
	Amount uint64             `json:"amount,string"`
}

// StakeReply - the cumulative stake after the deposit
type StakeReply struct {
	Stake *gridrecord.Stake `json:"stake"`
}

// Stake - record a governance deposit on a grid
//
// the deposit is an accounting intent, no token movement happens here
func (governance *Governance) Stake(arguments *StakeArguments, reply *StakeReply) error {

	if err := ratelimit.Limit(governance.Limiter); nil != err {
		return err
	}

	governance.Log.Infof("Governance.Stake: %+v", arguments)

	stake, err := ledger.StakeForGovernance(arguments.Staker, arguments.GridId, arguments.Amount)
	if nil != err {
		return err
	}
	reply.Stake = stake

	return nil
}

// ---

// GetArguments - arguments for a stake lookup
type GetArguments struct {
	Staker identity.Principal `json:"staker"`
	GridId uint64             `json:"gridId"`
}

// GetReply - results from a stake lookup
type GetReply struct {
	Stake *gridrecord.Stake `json:"stake"`
}

// Get - fetch the cumulative stake of one staker on one grid
func (governance *Governance) Get(arguments *GetArguments, reply *GetReply) error {

	if err := ratelimit.Limit(governance.Limiter); nil != err {
		return err
	}

	stake, err := ledger.GetStake(arguments.Staker, arguments.GridId)
	if nil != err {
		return err
	}
	reply.Stake = stake

	return nil
}
