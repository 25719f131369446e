// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Open MicroGrid Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gridrecord

import (
	"encoding/binary"

	"github.com/openmicrogrid/gridledgerd/digest"
	"github.com/openmicrogrid/gridledgerd/fault"
	"github.com/openmicrogrid/gridledgerd/identity"
	"github.com/openmicrogrid/gridledgerd/resourcetype"
)

// Unpack - turn a byte slice into a record
//
// must cast result to correct type
//
// e.g.
//
//	grid, _, err := record.Unpack()
//	if nil != err { ... }
//	switch g := grid.(type) {
//	case *Grid:
//	...
func (record Packed) Unpack() (interface{}, int, error) {

	tag, n := binary.Uvarint(record)
	if n <= 0 {
		return nil, 0, fault.CannotDecodeRecord
	}

	d := &decoder{buffer: record, offset: n}

	switch TagType(tag) {

	case GridTag:
		grid := &Grid{}
		grid.GridId = d.uint64()
		grid.Operator = d.principal()
		grid.LocationHash = d.digest()
		grid.Active = d.bool()
		grid.TotalCapacity = d.uint64()
		grid.CurrentLoad = d.uint64()
		grid.EfficiencyScore = d.uint64()
		grid.CarbonFootprint = d.uint64()
		grid.CreatedAt = d.uint64()
		if nil != d.err {
			return nil, 0, d.err
		}
		return grid, d.offset, nil

	case ResourceDnaTag:
		dna := &ResourceDna{}
		dna.ResourceId = d.uint64()
		dna.ResourceType = resourcetype.ResourceType(d.uint64())
		dna.GridId = d.uint64()
		dna.GenerationMethod = d.string(4 * MaxGenerationMethodLength) // UTF-8 bytes, not runes
		dna.CarbonFootprint = d.uint64()
		dna.HarmonyMetric = d.uint64()
		dna.OriginTimestamp = d.uint64()
		dna.MetadataHash = d.digest()
		if nil != d.err {
			return nil, 0, d.err
		}
		if !dna.ResourceType.IsValid() {
			return nil, 0, fault.InvalidResource
		}
		return dna, d.offset, nil

	case StakeTag:
		stake := &Stake{}
		stake.Staker = d.principal()
		stake.GridId = d.uint64()
		stake.Amount = d.uint64()
		stake.StakedAt = d.uint64()
		stake.GovernancePower = d.uint64()
		stake.RewardsEarned = d.uint64()
		if nil != d.err {
			return nil, 0, d.err
		}
		return stake, d.offset, nil

	case OperatorStatsTag:
		stats := &OperatorStats{}
		stats.Operator = d.principal()
		stats.GridsOperated = d.uint64()
		stats.TotalEfficiency = d.uint64()
		stats.InnovationsAdopted = d.uint64()
		stats.ReputationScore = d.uint64()
		if nil != d.err {
			return nil, 0, d.err
		}
		return stats, d.offset, nil

	case GridConnectionTag:
		conn := &GridConnection{}
		conn.FromGrid = d.uint64()
		conn.ToGrid = d.uint64()
		conn.Capacity = d.uint64()
		conn.Active = d.bool()
		conn.TotalTransferred = d.uint64()
		if nil != d.err {
			return nil, 0, d.err
		}
		return conn, d.offset, nil

	case ChallengeParticipationTag:
		participation := &ChallengeParticipation{}
		participation.Participant = d.principal()
		participation.Season = d.uint64()
		participation.EfficiencyImprovement = d.uint64()
		participation.RewardsClaimed = d.uint64()
		participation.Rank = d.uint64()
		if nil != d.err {
			return nil, 0, d.err
		}
		return participation, d.offset, nil

	case ProtocolStateTag:
		state := &ProtocolState{}
		state.Active = d.bool()
		state.GlobalEfficiencyScore = d.uint64()
		if nil != d.err {
			return nil, 0, d.err
		}
		return state, d.offset, nil

	default:
		return nil, 0, fault.CannotDecodeRecord
	}
}

// sequential field decoder
//
// the first error sticks; all subsequent reads return zero values
type decoder struct {
	buffer []byte
	offset int
	err    error
}

func (d *decoder) uint64() uint64 {
	if nil != d.err {
		return 0
	}
	value, n := binary.Uvarint(d.buffer[d.offset:])
	if n <= 0 {
		d.err = fault.CannotDecodeRecord
		return 0
	}
	d.offset += n
	return value
}

func (d *decoder) string(maximumLength int) string {
	if nil != d.err {
		return ""
	}
	length := d.uint64()
	if nil != d.err {
		return ""
	}
	if length > uint64(maximumLength) || d.offset+int(length) > len(d.buffer) {
		d.err = fault.CannotDecodeRecord
		return ""
	}
	s := string(d.buffer[d.offset : d.offset+int(length)])
	d.offset += int(length)
	return s
}

func (d *decoder) principal() identity.Principal {
	var principal identity.Principal
	if nil != d.err {
		return principal
	}
	if d.offset+identity.Length > len(d.buffer) {
		d.err = fault.CannotDecodeRecord
		return principal
	}
	copy(principal[:], d.buffer[d.offset:d.offset+identity.Length])
	d.offset += identity.Length
	return principal
}

func (d *decoder) digest() digest.Digest {
	var dg digest.Digest
	if nil != d.err {
		return dg
	}
	if d.offset+digest.Length > len(d.buffer) {
		d.err = fault.CannotDecodeRecord
		return dg
	}
	copy(dg[:], d.buffer[d.offset:d.offset+digest.Length])
	d.offset += digest.Length
	return dg
}

func (d *decoder) bool() bool {
	if nil != d.err {
		return false
	}
	if d.offset >= len(d.buffer) {
		d.err = fault.CannotDecodeRecord
		return false
	}
	b := d.buffer[d.offset]
	d.offset += 1
	return 0 != b
}
