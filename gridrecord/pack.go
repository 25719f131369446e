// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Open MicroGrid Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gridrecord

import (
	"encoding/binary"
	"unicode/utf8"

	"github.com/openmicrogrid/gridledgerd/digest"
	"github.com/openmicrogrid/gridledgerd/fault"
	"github.com/openmicrogrid/gridledgerd/identity"
)

// Pack - pack a Grid
//
// varint(tag) followed by fields in order as the struct above
func (grid *Grid) Pack() (Packed, error) {
	if 0 == grid.GridId {
		return nil, fault.InvalidAmount
	}
	if grid.Operator.IsZero() {
		return nil, fault.InvalidPrincipal
	}

	message := appendUint64(nil, uint64(GridTag))
	message = appendUint64(message, grid.GridId)
	message = appendPrincipal(message, grid.Operator)
	message = appendDigest(message, grid.LocationHash)
	message = appendBool(message, grid.Active)
	message = appendUint64(message, grid.TotalCapacity)
	message = appendUint64(message, grid.CurrentLoad)
	message = appendUint64(message, grid.EfficiencyScore)
	message = appendUint64(message, grid.CarbonFootprint)
	message = appendUint64(message, grid.CreatedAt)
	return message, nil
}

// Pack - pack a ResourceDna
//
// varint(tag) followed by fields in order as the struct above
func (dna *ResourceDna) Pack() (Packed, error) {
	if 0 == dna.ResourceId {
		return nil, fault.InvalidAmount
	}
	if !dna.ResourceType.IsValid() {
		return nil, fault.InvalidResource
	}
	if utf8.RuneCountInString(dna.GenerationMethod) > MaxGenerationMethodLength {
		return nil, fault.GenerationMethodTooLong
	}

	message := appendUint64(nil, uint64(ResourceDnaTag))
	message = appendUint64(message, dna.ResourceId)
	message = appendUint64(message, dna.ResourceType.Uint64())
	message = appendUint64(message, dna.GridId)
	message = appendString(message, dna.GenerationMethod)
	message = appendUint64(message, dna.CarbonFootprint)
	message = appendUint64(message, dna.HarmonyMetric)
	message = appendUint64(message, dna.OriginTimestamp)
	message = appendDigest(message, dna.MetadataHash)
	return message, nil
}

// Pack - pack a Stake
func (stake *Stake) Pack() (Packed, error) {
	if stake.Staker.IsZero() {
		return nil, fault.InvalidPrincipal
	}

	message := appendUint64(nil, uint64(StakeTag))
	message = appendPrincipal(message, stake.Staker)
	message = appendUint64(message, stake.GridId)
	message = appendUint64(message, stake.Amount)
	message = appendUint64(message, stake.StakedAt)
	message = appendUint64(message, stake.GovernancePower)
	message = appendUint64(message, stake.RewardsEarned)
	return message, nil
}

// Pack - pack an OperatorStats
func (stats *OperatorStats) Pack() (Packed, error) {
	if stats.Operator.IsZero() {
		return nil, fault.InvalidPrincipal
	}

	message := appendUint64(nil, uint64(OperatorStatsTag))
	message = appendPrincipal(message, stats.Operator)
	message = appendUint64(message, stats.GridsOperated)
	message = appendUint64(message, stats.TotalEfficiency)
	message = appendUint64(message, stats.InnovationsAdopted)
	message = appendUint64(message, stats.ReputationScore)
	return message, nil
}

// Pack - pack a GridConnection
func (conn *GridConnection) Pack() (Packed, error) {
	if 0 == conn.FromGrid || 0 == conn.ToGrid {
		return nil, fault.InvalidAmount
	}

	message := appendUint64(nil, uint64(GridConnectionTag))
	message = appendUint64(message, conn.FromGrid)
	message = appendUint64(message, conn.ToGrid)
	message = appendUint64(message, conn.Capacity)
	message = appendBool(message, conn.Active)
	message = appendUint64(message, conn.TotalTransferred)
	return message, nil
}

// Pack - pack a ChallengeParticipation
func (participation *ChallengeParticipation) Pack() (Packed, error) {
	if participation.Participant.IsZero() {
		return nil, fault.InvalidPrincipal
	}

	message := appendUint64(nil, uint64(ChallengeParticipationTag))
	message = appendPrincipal(message, participation.Participant)
	message = appendUint64(message, participation.Season)
	message = appendUint64(message, participation.EfficiencyImprovement)
	message = appendUint64(message, participation.RewardsClaimed)
	message = appendUint64(message, participation.Rank)
	return message, nil
}

// Pack - pack a ProtocolState
func (state *ProtocolState) Pack() (Packed, error) {
	message := appendUint64(nil, uint64(ProtocolStateTag))
	message = appendBool(message, state.Active)
	message = appendUint64(message, state.GlobalEfficiencyScore)
	return message, nil
}

// append a varint to a buffer
func appendUint64(buffer []byte, value uint64) []byte {
	var scratch [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(scratch[:], value)
	return append(buffer, scratch[:n]...)
}

// append a length prefixed string to a buffer
func appendString(buffer []byte, s string) []byte {
	buffer = appendUint64(buffer, uint64(len(s)))
	return append(buffer, s...)
}

// append a fixed length principal to a buffer
func appendPrincipal(buffer []byte, principal identity.Principal) []byte {
	return append(buffer, principal.Bytes()...)
}

// append a fixed length digest to a buffer
func appendDigest(buffer []byte, d digest.Digest) []byte {
	return append(buffer, d.Bytes()...)
}

// append a single boolean byte to a buffer
func appendBool(buffer []byte, value bool) []byte {
	b := byte(0)
	if value {
		b = 1
	}
	return append(buffer, b)
}
