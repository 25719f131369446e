// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Open MicroGrid Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package reputation

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/openmicrogrid/gridledgerd/gridrecord"
	"github.com/openmicrogrid/gridledgerd/identity"
	"github.com/openmicrogrid/gridledgerd/ledger"
	"github.com/openmicrogrid/gridledgerd/rpc/ratelimit"
)

const (
	rateLimitReputation = 200
	rateBurstReputation = 100
)

// Reputation - type for the RPC
type Reputation struct {
	Log     *logger.L
	Limiter *rate.Limiter
}

func New(log *logger.L) *Reputation {
	return &Reputation{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitReputation, rateBurstReputation),
	}
}

// ---

// AdoptArguments - arguments for crediting an innovation
type AdoptArguments struct {
	Innovator identity.Principal `json:"innovator"`
}

// AdoptReply - the statistics after the credit
type AdoptReply struct {
	Stats *gridrecord.OperatorStats `json:"stats"`
}

// Adopt - credit an innovation to an operator
//
// unrestricted, any caller may credit any identity
func (reputation *Reputation) Adopt(arguments *AdoptArguments, reply *AdoptReply) error {

	if err := ratelimit.Limit(reputation.Limiter); nil != err {
		return err
	}

	reputation.Log.Infof("Reputation.Adopt: %+v", arguments)

	stats, err := ledger.RecordInnovationAdoption(arguments.Innovator)
	if nil != err {
		return err
	}
	reply.Stats = stats

	return nil
}

// ---

// GetArguments - arguments for a statistics lookup
type GetArguments struct {
	Operator identity.Principal `json:"operator"`
}

// GetReply - results from a statistics lookup
type GetReply struct {
	Stats *gridrecord.OperatorStats `json:"stats"`
}

// Get - fetch the statistics of one operator
func (reputation *Reputation) Get(arguments *GetArguments, reply *GetReply) error {

	if err := ratelimit.Limit(reputation.Limiter); nil != err {
		return err
	}

	stats, err := ledger.GetOperatorStats(arguments.Operator)
	if nil != err {
		return err
	}
	reply.Stats = stats

	return nil
}
