// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Open MicroGrid Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gridrecord_test

import (
	"strings"
	"testing"

	"github.com/openmicrogrid/gridledgerd/digest"
	"github.com/openmicrogrid/gridledgerd/fault"
	"github.com/openmicrogrid/gridledgerd/gridrecord"
	"github.com/openmicrogrid/gridledgerd/identity"
	"github.com/openmicrogrid/gridledgerd/resourcetype"
)

// make a distinct principal for testing
func makePrincipal(seed byte) identity.Principal {
	var raw [identity.Length]byte
	for i := range raw {
		raw[i] = seed + byte(i)
	}
	principal, _ := identity.PrincipalFromBytes(raw[:])
	return principal
}

func TestPackGrid(t *testing.T) {
	operator := makePrincipal(1)

	grid := &gridrecord.Grid{
		GridId:          7,
		Operator:        operator,
		LocationHash:    digest.NewDigest([]byte("site-7")),
		Active:          true,
		TotalCapacity:   50000,
		EfficiencyScore: gridrecord.InitialEfficiencyScore,
		CreatedAt:       12,
	}

	packed, err := grid.Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}

	unpacked, n, err := packed.Unpack()
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}
	if len(packed) != n {
		t.Errorf("unpack used %d of %d bytes", n, len(packed))
	}

	restored, ok := unpacked.(*gridrecord.Grid)
	if !ok {
		t.Fatalf("unexpected record type: %T", unpacked)
	}
	if *grid != *restored {
		t.Fatalf("grid mismatch: expected: %#v  actual: %#v", grid, restored)
	}
}

func TestPackGridRejectsZeroId(t *testing.T) {
	grid := &gridrecord.Grid{
		Operator: makePrincipal(9),
	}
	_, err := grid.Pack()
	if fault.InvalidAmount != err {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPackResourceDna(t *testing.T) {
	dna := &gridrecord.ResourceDna{
		ResourceId:       1,
		ResourceType:     resourcetype.Water,
		GridId:           3,
		GenerationMethod: "rain capture",
		CarbonFootprint:  11,
		HarmonyMetric:    950,
		OriginTimestamp:  40,
		MetadataHash:     digest.NewDigest([]byte("meta")),
	}

	packed, err := dna.Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}

	unpacked, _, err := packed.Unpack()
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}
	restored, ok := unpacked.(*gridrecord.ResourceDna)
	if !ok {
		t.Fatalf("unexpected record type: %T", unpacked)
	}
	if *dna != *restored {
		t.Fatalf("dna mismatch: expected: %#v  actual: %#v", dna, restored)
	}
}

func TestPackResourceDnaLimits(t *testing.T) {
	dna := &gridrecord.ResourceDna{
		ResourceId:       1,
		ResourceType:     resourcetype.Energy,
		GridId:           1,
		GenerationMethod: strings.Repeat("x", gridrecord.MaxGenerationMethodLength+1),
	}
	_, err := dna.Pack()
	if fault.GenerationMethodTooLong != err {
		t.Fatalf("unexpected error: %v", err)
	}

	dna.GenerationMethod = strings.Repeat("x", gridrecord.MaxGenerationMethodLength)
	_, err = dna.Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}

	dna.ResourceType = resourcetype.Nothing
	_, err = dna.Pack()
	if fault.InvalidResource != err {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestStakeAccumulate(t *testing.T) {
	stake := &gridrecord.Stake{
		Staker:          makePrincipal(2),
		GridId:          1,
		Amount:          1000000000,
		StakedAt:        5,
		GovernancePower: 1000,
	}

	stake.Accumulate(500000000, 500)

	if 1500000000 != stake.Amount {
		t.Errorf("amount: expected: %d  actual: %d", 1500000000, stake.Amount)
	}
	if 1500 != stake.GovernancePower {
		t.Errorf("power: expected: %d  actual: %d", 1500, stake.GovernancePower)
	}
	if 5 != stake.StakedAt {
		t.Errorf("staked at must not change: %d", stake.StakedAt)
	}

	packed, err := stake.Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}
	unpacked, _, err := packed.Unpack()
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}
	if *stake != *unpacked.(*gridrecord.Stake) {
		t.Fatal("stake roundtrip mismatch")
	}
}

func TestOperatorStatsDefaults(t *testing.T) {
	stats := gridrecord.NewOperatorStats(makePrincipal(3))

	if 0 != stats.GridsOperated || 0 != stats.InnovationsAdopted {
		t.Fatalf("unexpected defaults: %#v", stats)
	}
	if gridrecord.InitialReputationScore != stats.ReputationScore {
		t.Fatalf("reputation: expected: %d  actual: %d", gridrecord.InitialReputationScore, stats.ReputationScore)
	}

	stats.AddGrid()
	stats.AdoptInnovation()
	stats.AdoptInnovation()

	if 1 != stats.GridsOperated {
		t.Errorf("grids operated: %d", stats.GridsOperated)
	}
	if 2 != stats.InnovationsAdopted {
		t.Errorf("innovations adopted: %d", stats.InnovationsAdopted)
	}
	expected := uint64(gridrecord.InitialReputationScore + 2*gridrecord.ReputationIncrement)
	if expected != stats.ReputationScore {
		t.Errorf("reputation: expected: %d  actual: %d", expected, stats.ReputationScore)
	}
}

func TestConnectionTransfer(t *testing.T) {
	conn := &gridrecord.GridConnection{
		FromGrid: 1,
		ToGrid:   2,
		Capacity: 100,
		Active:   true,
	}

	conn.RecordTransfer(100)
	conn.RecordTransfer(100)
	conn.RecordTransfer(100)

	// per-call ceiling, not a running budget: accumulation is unbounded
	if 300 != conn.TotalTransferred {
		t.Fatalf("total transferred: expected: %d  actual: %d", 300, conn.TotalTransferred)
	}

	packed, err := conn.Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}
	unpacked, _, err := packed.Unpack()
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}
	if *conn != *unpacked.(*gridrecord.GridConnection) {
		t.Fatal("connection roundtrip mismatch")
	}
}

func TestPackChallengeParticipation(t *testing.T) {
	participation := &gridrecord.ChallengeParticipation{
		Participant:           makePrincipal(4),
		Season:                3,
		EfficiencyImprovement: 150,
	}

	packed, err := participation.Pack()
	if nil != err {
		t.Fatalf("pack error: %s", err)
	}
	unpacked, _, err := packed.Unpack()
	if nil != err {
		t.Fatalf("unpack error: %s", err)
	}
	if *participation != *unpacked.(*gridrecord.ChallengeParticipation) {
		t.Fatal("participation roundtrip mismatch")
	}
}

func TestUnpackGarbage(t *testing.T) {
	_, _, err := gridrecord.Packed([]byte{0xff, 0xff, 0xff}).Unpack()
	if nil == err {
		t.Fatal("unexpected success unpacking garbage")
	}

	_, _, err = gridrecord.Packed([]byte{}).Unpack()
	if fault.CannotDecodeRecord != err {
		t.Fatalf("unexpected error: %v", err)
	}

	// truncated grid record
	grid := &gridrecord.Grid{
		GridId:   1,
		Operator: makePrincipal(5),
	}
	packed, _ := grid.Pack()
	_, _, err = packed[:len(packed)-4].Unpack()
	if fault.CannotDecodeRecord != err {
		t.Fatalf("unexpected error: %v", err)
	}
}
