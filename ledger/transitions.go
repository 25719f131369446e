// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Open MicroGrid Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"unicode/utf8"

	"github.com/openmicrogrid/gridledgerd/clock"
	"github.com/openmicrogrid/gridledgerd/digest"
	"github.com/openmicrogrid/gridledgerd/fault"
	"github.com/openmicrogrid/gridledgerd/gridrecord"
	"github.com/openmicrogrid/gridledgerd/identity"
	"github.com/openmicrogrid/gridledgerd/protocol"
	"github.com/openmicrogrid/gridledgerd/resourcetype"
)

// RegisterGrid - create a grid under the next sequential identifier
//
// the caller becomes the grid's operator and the operator statistics
// are created or updated in the same operation
func RegisterGrid(operator identity.Principal, locationHash digest.Digest, initialCapacity uint64) (*gridrecord.Grid, error) {
	globalData.Lock()
	defer globalData.Unlock()

	if !protocol.IsActive() {
		return nil, fault.NotAuthorized
	}
	if operator.IsZero() {
		return nil, fault.InvalidPrincipal
	}
	if 0 == initialCapacity {
		return nil, fault.InvalidAmount
	}

	gridId := globalData.totalGrids + 1

	grid := &gridrecord.Grid{
		GridId:          gridId,
		Operator:        operator,
		LocationHash:    locationHash,
		Active:          true,
		TotalCapacity:   initialCapacity,
		CurrentLoad:     0,
		EfficiencyScore: gridrecord.InitialEfficiencyScore,
		CarbonFootprint: 0,
		CreatedAt:       clock.Advance(),
	}

	stats, err := fetchOperatorStats(operator)
	if fault.OperatorNotFound == err {
		stats = gridrecord.NewOperatorStats(operator)
	} else if nil != err {
		return nil, err
	}
	stats.AddGrid()

	if err := store(globalData.pools.Grids, uint64Key(gridId), grid); nil != err {
		return nil, err
	}
	if err := store(globalData.pools.Operators, operator.Bytes(), stats); nil != err {
		return nil, err
	}

	globalData.totalGrids = gridId
	globalData.log.Infof("grid %d registered by %s", gridId, operator)

	return grid, nil
}

// TrackResource - write an immutable provenance record
//
// no authorization beyond the protocol gate, external oracles submit
// on behalf of grids
func TrackResource(
	resourceType resourcetype.ResourceType,
	gridId uint64,
	generationMethod string,
	carbonFootprint uint64,
	harmonyMetric uint64,
	metadataHash digest.Digest,
) (*gridrecord.ResourceDna, error) {
	globalData.Lock()
	defer globalData.Unlock()

	if !protocol.IsActive() {
		return nil, fault.NotAuthorized
	}
	if _, err := fetchGrid(gridId); nil != err {
		return nil, err
	}
	if !resourceType.IsValid() {
		return nil, fault.InvalidResource
	}
	if utf8.RuneCountInString(generationMethod) > gridrecord.MaxGenerationMethodLength {
		return nil, fault.GenerationMethodTooLong
	}

	resourceId := globalData.totalResources + 1

	resource := &gridrecord.ResourceDna{
		ResourceId:       resourceId,
		ResourceType:     resourceType,
		GridId:           gridId,
		GenerationMethod: generationMethod,
		CarbonFootprint:  carbonFootprint,
		HarmonyMetric:    harmonyMetric,
		OriginTimestamp:  clock.Advance(),
		MetadataHash:     metadataHash,
	}

	if err := store(globalData.pools.Resources, uint64Key(resourceId), resource); nil != err {
		return nil, err
	}

	globalData.totalResources = resourceId
	globalData.log.Infof("resource %d (%s) tracked on grid %d", resourceId, resourceType, gridId)

	return resource, nil
}

// StakeForGovernance - record a governance deposit on a grid
//
// an accounting intent only, token movement happens elsewhere;
// repeated deposits accumulate into the same (staker, grid) record
func StakeForGovernance(staker identity.Principal, gridId uint64, amount uint64) (*gridrecord.Stake, error) {
	globalData.Lock()
	defer globalData.Unlock()

	if !protocol.IsActive() {
		return nil, fault.NotAuthorized
	}
	if staker.IsZero() {
		return nil, fault.InvalidPrincipal
	}
	if _, err := fetchGrid(gridId); nil != err {
		return nil, err
	}
	if amount < MinimumStake {
		return nil, fault.InsufficientStake
	}

	power := GovernancePower(amount, StakeDurationUnit)

	stake, err := fetchStake(staker, gridId)
	if fault.StakeNotFound == err {
		stake = &gridrecord.Stake{
			Staker:          staker,
			GridId:          gridId,
			Amount:          amount,
			StakedAt:        clock.Advance(),
			GovernancePower: power,
			RewardsEarned:   0,
		}
	} else if nil != err {
		return nil, err
	} else {
		stake.Accumulate(amount, power)
	}

	if err := store(globalData.pools.Stakes, stakeKey(staker, gridId), stake); nil != err {
		return nil, err
	}

	globalData.log.Infof("stake on grid %d by %s: %d (power %d)", gridId, staker, stake.Amount, stake.GovernancePower)

	return stake, nil
}

// UpdateGridEfficiency - overwrite a grid's efficiency score
//
// operator only; zero is a permitted score
func UpdateGridEfficiency(caller identity.Principal, gridId uint64, newScore uint64) (*gridrecord.Grid, error) {
	globalData.Lock()
	defer globalData.Unlock()

	grid, err := fetchGrid(gridId)
	if nil != err {
		return nil, err
	}
	if caller != grid.Operator {
		return nil, fault.NotAuthorized
	}
	if newScore > gridrecord.MaximumEfficiencyScore {
		return nil, fault.InvalidAmount
	}

	grid.EfficiencyScore = newScore

	if err := store(globalData.pools.Grids, uint64Key(gridId), grid); nil != err {
		return nil, err
	}

	globalData.log.Infof("grid %d efficiency: %d", gridId, newScore)

	return grid, nil
}

// ConnectGrids - create or fully overwrite a directional route
//
// overwrite, not merge: a re-connection starts a fresh transfer
// accumulator
func ConnectGrids(caller identity.Principal, fromGrid uint64, toGrid uint64, capacity uint64) (*gridrecord.GridConnection, error) {
	globalData.Lock()
	defer globalData.Unlock()

	from, err := fetchGrid(fromGrid)
	if nil != err {
		return nil, err
	}
	if _, err := fetchGrid(toGrid); nil != err {
		return nil, err
	}
	if caller != from.Operator {
		return nil, fault.NotAuthorized
	}
	if 0 == capacity {
		return nil, fault.InvalidAmount
	}

	connection := &gridrecord.GridConnection{
		FromGrid:         fromGrid,
		ToGrid:           toGrid,
		Capacity:         capacity,
		Active:           true,
		TotalTransferred: 0,
	}

	if err := store(globalData.pools.Connections, connectionKey(fromGrid, toGrid), connection); nil != err {
		return nil, err
	}

	globalData.log.Infof("connection %d→%d capacity %d", fromGrid, toGrid, capacity)

	return connection, nil
}

// CascadeResources - record an asserted transfer over a route
//
// the capacity bounds each call separately, the accumulator is not
// budgeted against it and grows without limit across calls
func CascadeResources(caller identity.Principal, fromGrid uint64, toGrid uint64, amount uint64) (*gridrecord.GridConnection, error) {
	globalData.Lock()
	defer globalData.Unlock()

	connection, err := fetchConnection(fromGrid, toGrid)
	if nil != err {
		return nil, err
	}
	if !connection.Active {
		// a deactivated route behaves as if absent
		return nil, fault.ConnectionNotFound
	}

	from, err := fetchGrid(fromGrid)
	if nil != err {
		return nil, err
	}
	if caller != from.Operator {
		return nil, fault.NotAuthorized
	}
	if amount > connection.Capacity {
		return nil, fault.InvalidAmount
	}

	connection.RecordTransfer(amount)

	if err := store(globalData.pools.Connections, connectionKey(fromGrid, toGrid), connection); nil != err {
		return nil, err
	}

	globalData.log.Infof("cascade %d→%d amount %d total %d", fromGrid, toGrid, amount, connection.TotalTransferred)

	return connection, nil
}

// RecordInnovationAdoption - credit an innovation to an operator
//
// no authorization restriction, any caller may credit any identity
func RecordInnovationAdoption(innovator identity.Principal) (*gridrecord.OperatorStats, error) {
	globalData.Lock()
	defer globalData.Unlock()

	if innovator.IsZero() {
		return nil, fault.InvalidPrincipal
	}

	stats, err := fetchOperatorStats(innovator)
	if fault.OperatorNotFound == err {
		stats = gridrecord.NewOperatorStats(innovator)
	} else if nil != err {
		return nil, err
	}
	stats.AdoptInnovation()

	if err := store(globalData.pools.Operators, innovator.Bytes(), stats); nil != err {
		return nil, err
	}

	globalData.log.Infof("innovation adopted by %s reputation %d", innovator, stats.ReputationScore)

	return stats, nil
}

// JoinSeasonalChallenge - file a self-reported efficiency claim
//
// re-joining the same season overwrites the previous claim
func JoinSeasonalChallenge(participant identity.Principal, season uint64, efficiencyImprovement uint64) (*gridrecord.ChallengeParticipation, error) {
	globalData.Lock()
	defer globalData.Unlock()

	if !protocol.IsActive() {
		return nil, fault.NotAuthorized
	}
	if participant.IsZero() {
		return nil, fault.InvalidPrincipal
	}

	participation := &gridrecord.ChallengeParticipation{
		Participant:           participant,
		Season:                season,
		EfficiencyImprovement: efficiencyImprovement,
		RewardsClaimed:        0,
		Rank:                  0,
	}

	if err := store(globalData.pools.Challenges, challengeKey(participant, season), participation); nil != err {
		return nil, err
	}

	globalData.log.Infof("challenge season %d joined by %s", season, participant)

	return participation, nil
}
