// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Open MicroGrid Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gridrecord

import (
	"github.com/openmicrogrid/gridledgerd/digest"
	"github.com/openmicrogrid/gridledgerd/identity"
	"github.com/openmicrogrid/gridledgerd/resourcetype"
)

// TagType - type code for ledger records
type TagType uint64

// enumerate the possible record types
// this is encoded as a varint at the start of "Packed"
const (
	// null marks beginning of list - not used as a record type
	NullTag = TagType(iota)

	// valid record types
	GridTag                   = TagType(iota) // registered micro-grid
	ResourceDnaTag            = TagType(iota) // resource provenance record
	StakeTag                  = TagType(iota) // cumulative governance stake
	OperatorStatsTag          = TagType(iota) // per-operator statistics
	GridConnectionTag         = TagType(iota) // directional transfer route
	ChallengeParticipationTag = TagType(iota) // seasonal challenge claim
	ProtocolStateTag          = TagType(iota) // global protocol gate

	// this item must be last
	InvalidTag = TagType(iota)
)

// Packed - packed records are just a byte slice
type Packed []byte

// Record - generic record interface
type Record interface {
	Pack() (Packed, error)
}

// byte sizes and limits for various fields
const (
	MaxGenerationMethodLength = 50
)

// reputation handling
const (
	InitialReputationScore = 100
	ReputationIncrement    = 10
)

// efficiency bounds
const (
	InitialEfficiencyScore = 100
	MaximumEfficiencyScore = 1000
)

// Grid - a registered micro-grid
//
// created only by registration; the efficiency score is the only
// field its operator may change afterwards
type Grid struct {
	GridId          uint64             `json:"gridId"`
	Operator        identity.Principal `json:"operator"`
	LocationHash    digest.Digest      `json:"locationHash"`
	Active          bool               `json:"active"`
	TotalCapacity   uint64             `json:"totalCapacity,string"`
	CurrentLoad     uint64             `json:"currentLoad,string"` // reserved
	EfficiencyScore uint64             `json:"efficiencyScore"`
	CarbonFootprint uint64             `json:"carbonFootprint,string"`
	CreatedAt       uint64             `json:"createdAt"` // logical clock value
}

// ResourceDna - immutable provenance record for one unit of tracked resource
type ResourceDna struct {
	ResourceId       uint64                    `json:"resourceId"`
	ResourceType     resourcetype.ResourceType `json:"resourceType"`
	GridId           uint64                    `json:"gridId"`
	GenerationMethod string                    `json:"generationMethod"`
	CarbonFootprint  uint64                    `json:"carbonFootprint,string"`
	HarmonyMetric    uint64                    `json:"harmonyMetric,string"`
	OriginTimestamp  uint64                    `json:"originTimestamp"` // logical clock value
	MetadataHash     digest.Digest             `json:"metadataHash"`
}

// Stake - cumulative governance stake by one staker on one grid
//
// amount and governance power only ever increase; there is no
// unstake operation
type Stake struct {
	Staker          identity.Principal `json:"staker"`
	GridId          uint64             `json:"gridId"`
	Amount          uint64             `json:"amount,string"`
	StakedAt        uint64             `json:"stakedAt"` // logical clock value of first stake
	GovernancePower uint64             `json:"governancePower,string"`
	RewardsEarned   uint64             `json:"rewardsEarned,string"` // reserved
}

// Accumulate - merge an additional deposit into an existing stake
//
// pure merge: amount and power add to the cumulative totals,
// the original staking time is retained
func (stake *Stake) Accumulate(amount uint64, power uint64) {
	stake.Amount += amount
	stake.GovernancePower += power
}

// OperatorStats - per-operator statistics and reputation
type OperatorStats struct {
	Operator           identity.Principal `json:"operator"`
	GridsOperated      uint64             `json:"gridsOperated"`
	TotalEfficiency    uint64             `json:"totalEfficiency,string"` // reserved aggregate
	InnovationsAdopted uint64             `json:"innovationsAdopted"`
	ReputationScore    uint64             `json:"reputationScore"`
}

// NewOperatorStats - type specific defaults for lazy creation
func NewOperatorStats(operator identity.Principal) *OperatorStats {
	return &OperatorStats{
		Operator:        operator,
		ReputationScore: InitialReputationScore,
	}
}

// AddGrid - merge one more registered grid into the statistics
func (stats *OperatorStats) AddGrid() {
	stats.GridsOperated += 1
}

// AdoptInnovation - merge one innovation adoption into the statistics
//
// reputation has no ceiling
func (stats *OperatorStats) AdoptInnovation() {
	stats.InnovationsAdopted += 1
	stats.ReputationScore += ReputationIncrement
}

// GridConnection - directional transfer route between two grids
//
// keyed by the ordered (from, to) pair; re-establishing the pair
// overwrites the whole record including the transfer accumulator
type GridConnection struct {
	FromGrid         uint64 `json:"fromGrid"`
	ToGrid           uint64 `json:"toGrid"`
	Capacity         uint64 `json:"capacity,string"`
	Active           bool   `json:"active"`
	TotalTransferred uint64 `json:"totalTransferred,string"`
}

// RecordTransfer - accumulate an asserted transfer
//
// the capacity is a per-call ceiling, not a running budget, so the
// accumulator is unbounded across calls
func (conn *GridConnection) RecordTransfer(amount uint64) {
	conn.TotalTransferred += amount
}

// ChallengeParticipation - one participant's claim for one season
//
// re-joining the same season overwrites the previous claim
type ChallengeParticipation struct {
	Participant           identity.Principal `json:"participant"`
	Season                uint64             `json:"season"`
	EfficiencyImprovement uint64             `json:"efficiencyImprovement,string"`
	RewardsClaimed        uint64             `json:"rewardsClaimed,string"` // reserved
	Rank                  uint64             `json:"rank"`                  // reserved
}

// ProtocolState - the global protocol gate
//
// grid and resource counters are not stored here; they are derived
// from the last elements of the corresponding storage pools
type ProtocolState struct {
	Active                bool   `json:"active"`
	GlobalEfficiencyScore uint64 `json:"globalEfficiencyScore,string"`
}
