// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Open MicroGrid Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/openmicrogrid/gridledgerd/gridrecord"
	"github.com/openmicrogrid/gridledgerd/identity"
)

// read only lookups, never mutate

// GetGrid - look up one grid by identifier
func GetGrid(gridId uint64) (*gridrecord.Grid, error) {
	globalData.RLock()
	defer globalData.RUnlock()
	return fetchGrid(gridId)
}

// GetResource - look up one provenance record by identifier
func GetResource(resourceId uint64) (*gridrecord.ResourceDna, error) {
	globalData.RLock()
	defer globalData.RUnlock()
	return fetchResource(resourceId)
}

// GetStake - look up the cumulative stake of one staker on one grid
func GetStake(staker identity.Principal, gridId uint64) (*gridrecord.Stake, error) {
	globalData.RLock()
	defer globalData.RUnlock()
	return fetchStake(staker, gridId)
}

// GetOperatorStats - look up the statistics of one operator
func GetOperatorStats(operator identity.Principal) (*gridrecord.OperatorStats, error) {
	globalData.RLock()
	defer globalData.RUnlock()
	return fetchOperatorStats(operator)
}

// GetConnection - look up the directional route between two grids
func GetConnection(fromGrid uint64, toGrid uint64) (*gridrecord.GridConnection, error) {
	globalData.RLock()
	defer globalData.RUnlock()
	return fetchConnection(fromGrid, toGrid)
}

// GetParticipation - look up one participant's claim for one season
func GetParticipation(participant identity.Principal, season uint64) (*gridrecord.ChallengeParticipation, error) {
	globalData.RLock()
	defer globalData.RUnlock()
	return fetchParticipation(participant, season)
}
