// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Open MicroGrid Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package challenge

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/openmicrogrid/gridledgerd/gridrecord"
	"github.com/openmicrogrid/gridledgerd/identity"
	"github.com/openmicrogrid/gridledgerd/ledger"
	"github.com/openmicrogrid/gridledgerd/rpc/ratelimit"
)

const (
	rateLimitChallenge = 200
	rateBurstChallenge = 100
)

// Challenge - type for the RPC
type Challenge struct {
	Log     *logger.L
	Limiter *rate.Limiter
}

func New(log *logger.L) *Challenge {
	return &Challenge{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitChallenge, rateBurstChallenge),
	}
}

// ---

// JoinArguments - arguments for filing a seasonal claim
type JoinArguments struct {
	Participant           identity.Principal `json:"participant"`
	Season                uint64             `json:"season"`
	EfficiencyImprovement uint64             `json:"efficiencyImprovement,string"`
}

// JoinReply - the filed claim
type JoinReply struct {
	Participation *gridrecord.ChallengeParticipation `json:"participation"`
}

// Join - file a self-reported efficiency claim for a season
//
// re-joining the same season overwrites the previous claim
func (challenge *Challenge) Join(arguments *JoinArguments, reply *JoinReply) error {

	if err := ratelimit.Limit(challenge.Limiter); nil != err {
		return err
	}

	challenge.Log.Infof("Challenge.Join: %+v", arguments)

	participation, err := ledger.JoinSeasonalChallenge(arguments.Participant, arguments.Season, arguments.EfficiencyImprovement)
	if nil != err {
		return err
	}
	reply.Participation = participation

	return nil
}

// ---

// GetArguments - arguments for a claim lookup
type GetArguments struct {
	Participant identity.Principal `json:"participant"`
	Season      uint64             `json:"season"`
}

// GetReply - results from a claim lookup
type GetReply struct {
	Participation *gridrecord.ChallengeParticipation `json:"participation"`
}

// Get - fetch one participant's claim for one season
func (challenge *Challenge) Get(arguments *GetArguments, reply *GetReply) error {

	if err := ratelimit.Limit(challenge.Limiter); nil != err {
		return err
	}

	participation, err := ledger.GetParticipation(arguments.Participant, arguments.Season)
	if nil != err {
		return err
	}
	reply.Participation = participation

	return nil
}
