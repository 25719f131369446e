// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Open MicroGrid Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/openmicrogrid/gridledgerd/fault"
	"github.com/openmicrogrid/gridledgerd/gridrecord"
	"github.com/openmicrogrid/gridledgerd/identity"
	"github.com/openmicrogrid/gridledgerd/storage"
)

// typed fetch helpers, callers hold the global lock
//
// a nil buffer maps to the entity specific not found error; a buffer
// that decodes to the wrong record type indicates database corruption

func fetchGrid(gridId uint64) (*gridrecord.Grid, error) {
	record, err := fetch(globalData.pools.Grids, uint64Key(gridId), fault.GridNotFound)
	if nil != err {
		return nil, err
	}
	grid, ok := record.(*gridrecord.Grid)
	if !ok {
		return nil, fault.CannotDecodeRecord
	}
	return grid, nil
}

func fetchResource(resourceId uint64) (*gridrecord.ResourceDna, error) {
	record, err := fetch(globalData.pools.Resources, uint64Key(resourceId), fault.ResourceNotFound)
	if nil != err {
		return nil, err
	}
	resource, ok := record.(*gridrecord.ResourceDna)
	if !ok {
		return nil, fault.CannotDecodeRecord
	}
	return resource, nil
}

func fetchStake(staker identity.Principal, gridId uint64) (*gridrecord.Stake, error) {
	record, err := fetch(globalData.pools.Stakes, stakeKey(staker, gridId), fault.StakeNotFound)
	if nil != err {
		return nil, err
	}
	stake, ok := record.(*gridrecord.Stake)
	if !ok {
		return nil, fault.CannotDecodeRecord
	}
	return stake, nil
}

func fetchOperatorStats(operator identity.Principal) (*gridrecord.OperatorStats, error) {
	record, err := fetch(globalData.pools.Operators, operator.Bytes(), fault.OperatorNotFound)
	if nil != err {
		return nil, err
	}
	stats, ok := record.(*gridrecord.OperatorStats)
	if !ok {
		return nil, fault.CannotDecodeRecord
	}
	return stats, nil
}

func fetchConnection(fromGrid uint64, toGrid uint64) (*gridrecord.GridConnection, error) {
	record, err := fetch(globalData.pools.Connections, connectionKey(fromGrid, toGrid), fault.ConnectionNotFound)
	if nil != err {
		return nil, err
	}
	connection, ok := record.(*gridrecord.GridConnection)
	if !ok {
		return nil, fault.CannotDecodeRecord
	}
	return connection, nil
}

func fetchParticipation(participant identity.Principal, season uint64) (*gridrecord.ChallengeParticipation, error) {
	record, err := fetch(globalData.pools.Challenges, challengeKey(participant, season), fault.ParticipationNotFound)
	if nil != err {
		return nil, err
	}
	participation, ok := record.(*gridrecord.ChallengeParticipation)
	if !ok {
		return nil, fault.CannotDecodeRecord
	}
	return participation, nil
}

func fetch(pool storage.Handle, key []byte, missing error) (interface{}, error) {
	buffer := pool.Get(key)
	if nil == buffer {
		return nil, missing
	}
	record, _, err := gridrecord.Packed(buffer).Unpack()
	if nil != err {
		return nil, err
	}
	return record, nil
}

// pack and write one record, callers hold the global lock
func store(pool storage.Handle, key []byte, record gridrecord.Record) error {
	packed, err := record.Pack()
	if nil != err {
		return err
	}
	pool.Put(key, packed)
	return nil
}
