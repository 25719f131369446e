// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Open MicroGrid Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/openmicrogrid/gridledgerd/clock"
	"github.com/openmicrogrid/gridledgerd/digest"
	"github.com/openmicrogrid/gridledgerd/fault"
	"github.com/openmicrogrid/gridledgerd/identity"
	"github.com/openmicrogrid/gridledgerd/ledger"
	"github.com/openmicrogrid/gridledgerd/protocol"
	"github.com/openmicrogrid/gridledgerd/resourcetype"
	"github.com/openmicrogrid/gridledgerd/storage"
)

const (
	logDirectory     = "log"
	databaseFileName = "test.leveldb"
)

var (
	owner    = makePrincipal(0x01)
	alice    = makePrincipal(0x0a)
	bob      = makePrincipal(0x0b)
	location = digest.NewDigest([]byte("substation seven"))
	metadata = digest.NewDigest([]byte("panel batch 42"))
)

func makePrincipal(seed byte) identity.Principal {
	var raw [identity.Length]byte
	for i := range raw {
		raw[i] = seed ^ byte(i)
	}
	principal, _ := identity.PrincipalFromBytes(raw[:])
	return principal
}

func handles() ledger.Handles {
	return ledger.Handles{
		Grids:       storage.Pool.Grids,
		Resources:   storage.Pool.Resources,
		Stakes:      storage.Pool.Stakes,
		Operators:   storage.Pool.Operators,
		Connections: storage.Pool.Connections,
		Challenges:  storage.Pool.Challenges,
	}
}

func setup(t *testing.T) {
	_ = os.MkdirAll(logDirectory, 0700)
	_ = logger.Initialise(logger.Configuration{
		Directory: logDirectory,
		File:      "test.log",
		Size:      50000,
		Count:     10,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	})

	os.RemoveAll(databaseFileName)
	err := storage.Initialise(databaseFileName)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	err = protocol.Initialise(storage.Pool.ProtocolState, owner)
	if nil != err {
		t.Fatalf("protocol initialise error: %s", err)
	}

	err = clock.Initialise(storage.Pool.ProtocolState)
	if nil != err {
		t.Fatalf("clock initialise error: %s", err)
	}

	err = ledger.Initialise(handles())
	if nil != err {
		t.Fatalf("ledger initialise error: %s", err)
	}
}

func teardown(t *testing.T) {
	_ = ledger.Finalise()
	_ = clock.Finalise()
	_ = protocol.Finalise()
	storage.Finalise()
	os.RemoveAll(databaseFileName)
	logger.Finalise()
	os.RemoveAll(logDirectory)
}

func TestRegisterGrid(t *testing.T) {
	setup(t)
	defer teardown(t)

	// identifiers are sequential from one
	first, err := ledger.RegisterGrid(alice, location, 5000)
	assert.Nil(t, err, "wrong RegisterGrid")
	assert.Equal(t, uint64(1), first.GridId, "wrong first grid id")

	second, err := ledger.RegisterGrid(alice, location, 8000)
	assert.Nil(t, err, "wrong RegisterGrid")
	assert.Equal(t, uint64(2), second.GridId, "wrong second grid id")
	assert.Equal(t, uint64(2), ledger.TotalGrids(), "wrong grid count")

	// creation defaults
	grid, err := ledger.GetGrid(1)
	assert.Nil(t, err, "wrong GetGrid")
	assert.Equal(t, alice, grid.Operator, "wrong operator")
	assert.True(t, grid.Active, "grid must start active")
	assert.Equal(t, uint64(100), grid.EfficiencyScore, "wrong initial efficiency")
	assert.Equal(t, uint64(5000), grid.TotalCapacity, "wrong capacity")
	assert.Equal(t, uint64(0), grid.CurrentLoad, "wrong initial load")
	assert.Equal(t, uint64(0), grid.CarbonFootprint, "wrong initial footprint")

	// registration counts towards operator statistics
	stats, err := ledger.GetOperatorStats(alice)
	assert.Nil(t, err, "wrong GetOperatorStats")
	assert.Equal(t, uint64(2), stats.GridsOperated, "wrong grids operated")
	assert.Equal(t, uint64(100), stats.ReputationScore, "wrong initial reputation")
}

func TestRegisterGridZeroCapacity(t *testing.T) {
	setup(t)
	defer teardown(t)

	_, err := ledger.RegisterGrid(alice, location, 0)
	assert.Equal(t, fault.InvalidAmount, err, "wrong error")
	assert.Equal(t, uint64(0), ledger.TotalGrids(), "counter changed on rejection")
}

func TestTrackResource(t *testing.T) {
	setup(t)
	defer teardown(t)

	_, err := ledger.RegisterGrid(alice, location, 5000)
	assert.Nil(t, err, "wrong RegisterGrid")
	_, err = ledger.RegisterGrid(alice, location, 5000)
	assert.Nil(t, err, "wrong RegisterGrid")

	// the resource sequence is independent of the grid sequence
	resource, err := ledger.TrackResource(resourcetype.Energy, 2, "solar", 12, 900, metadata)
	assert.Nil(t, err, "wrong TrackResource")
	assert.Equal(t, uint64(1), resource.ResourceId, "wrong resource id")
	assert.Equal(t, uint64(1), ledger.TotalResourcesTracked(), "wrong resource count")

	stored, err := ledger.GetResource(1)
	assert.Nil(t, err, "wrong GetResource")
	assert.Equal(t, resourcetype.Energy, stored.ResourceType, "wrong type")
	assert.Equal(t, uint64(2), stored.GridId, "wrong grid reference")
	assert.Equal(t, "solar", stored.GenerationMethod, "wrong method")

	// missing grid
	_, err = ledger.TrackResource(resourcetype.Water, 99, "rain", 0, 0, metadata)
	assert.Equal(t, fault.GridNotFound, err, "wrong error")

	// unrecognised type
	_, err = ledger.TrackResource(resourcetype.Nothing, 1, "solar", 0, 0, metadata)
	assert.Equal(t, fault.InvalidResource, err, "wrong error")

	// over long method
	long := strings.Repeat("x", 51)
	_, err = ledger.TrackResource(resourcetype.Energy, 1, long, 0, 0, metadata)
	assert.Equal(t, fault.GenerationMethodTooLong, err, "wrong error")
	assert.Equal(t, uint64(1), ledger.TotalResourcesTracked(), "counter changed on rejection")
}

func TestStakeForGovernance(t *testing.T) {
	setup(t)
	defer teardown(t)

	_, err := ledger.RegisterGrid(alice, location, 5000)
	assert.Nil(t, err, "wrong RegisterGrid")

	// missing grid
	_, err = ledger.StakeForGovernance(bob, 9, 2000000)
	assert.Equal(t, fault.GridNotFound, err, "wrong error")

	// below minimum
	_, err = ledger.StakeForGovernance(bob, 1, ledger.MinimumStake-1)
	assert.Equal(t, fault.InsufficientStake, err, "wrong error")
	_, err = ledger.GetStake(bob, 1)
	assert.Equal(t, fault.StakeNotFound, err, "stake created on rejection")

	// first deposit
	stake, err := ledger.StakeForGovernance(bob, 1, 1000000000)
	assert.Nil(t, err, "wrong StakeForGovernance")
	assert.Equal(t, uint64(1000000000), stake.Amount, "wrong amount")
	assert.Equal(t, uint64(1000), stake.GovernancePower, "wrong power")
	firstStakedAt := stake.StakedAt

	// second deposit accumulates, the original time is kept
	stake, err = ledger.StakeForGovernance(bob, 1, 500000000)
	assert.Nil(t, err, "wrong StakeForGovernance")
	assert.Equal(t, uint64(1500000000), stake.Amount, "wrong cumulative amount")
	assert.Equal(t, uint64(1500), stake.GovernancePower, "wrong cumulative power")
	assert.Equal(t, firstStakedAt, stake.StakedAt, "staking time must not change")

	stored, err := ledger.GetStake(bob, 1)
	assert.Nil(t, err, "wrong GetStake")
	assert.Equal(t, uint64(1500000000), stored.Amount, "wrong stored amount")
}

func TestGovernancePower(t *testing.T) {
	assert.Equal(t, uint64(1), ledger.GovernancePower(ledger.MinimumStake, 1), "wrong minimum power")
	assert.Equal(t, uint64(1000), ledger.GovernancePower(1000000000, 1), "wrong power")

	// integer division truncates
	assert.Equal(t, uint64(1), ledger.GovernancePower(1999999, 1), "wrong truncated power")
	assert.Equal(t, uint64(0), ledger.GovernancePower(999999, 1), "wrong sub-scale power")
}

func TestUpdateGridEfficiency(t *testing.T) {
	setup(t)
	defer teardown(t)

	_, err := ledger.RegisterGrid(alice, location, 5000)
	assert.Nil(t, err, "wrong RegisterGrid")

	// missing grid
	_, err = ledger.UpdateGridEfficiency(alice, 9, 500)
	assert.Equal(t, fault.GridNotFound, err, "wrong error")

	// non-operator fails regardless of value validity
	_, err = ledger.UpdateGridEfficiency(bob, 1, 500)
	assert.Equal(t, fault.NotAuthorized, err, "wrong error")

	// out of range
	_, err = ledger.UpdateGridEfficiency(alice, 1, 1001)
	assert.Equal(t, fault.InvalidAmount, err, "wrong error")

	// boundary values
	grid, err := ledger.UpdateGridEfficiency(alice, 1, 1000)
	assert.Nil(t, err, "wrong UpdateGridEfficiency")
	assert.Equal(t, uint64(1000), grid.EfficiencyScore, "wrong score")

	grid, err = ledger.UpdateGridEfficiency(alice, 1, 0)
	assert.Nil(t, err, "wrong UpdateGridEfficiency")
	assert.Equal(t, uint64(0), grid.EfficiencyScore, "zero must be permitted")
}

func TestConnectGrids(t *testing.T) {
	setup(t)
	defer teardown(t)

	_, err := ledger.RegisterGrid(alice, location, 5000)
	assert.Nil(t, err, "wrong RegisterGrid")
	_, err = ledger.RegisterGrid(bob, location, 5000)
	assert.Nil(t, err, "wrong RegisterGrid")

	// both ends must exist
	_, err = ledger.ConnectGrids(alice, 1, 9, 300)
	assert.Equal(t, fault.GridNotFound, err, "wrong error")

	// only the source operator may connect
	_, err = ledger.ConnectGrids(bob, 1, 2, 300)
	assert.Equal(t, fault.NotAuthorized, err, "wrong error")

	// capacity must be positive
	_, err = ledger.ConnectGrids(alice, 1, 2, 0)
	assert.Equal(t, fault.InvalidAmount, err, "wrong error")

	connection, err := ledger.ConnectGrids(alice, 1, 2, 300)
	assert.Nil(t, err, "wrong ConnectGrids")
	assert.True(t, connection.Active, "connection must start active")
	assert.Equal(t, uint64(0), connection.TotalTransferred, "wrong initial accumulator")

	// the route is directional
	_, err = ledger.GetConnection(2, 1)
	assert.Equal(t, fault.ConnectionNotFound, err, "reverse route must not exist")
}

func TestCascadeResources(t *testing.T) {
	setup(t)
	defer teardown(t)

	_, err := ledger.RegisterGrid(alice, location, 5000)
	assert.Nil(t, err, "wrong RegisterGrid")
	_, err = ledger.RegisterGrid(bob, location, 5000)
	assert.Nil(t, err, "wrong RegisterGrid")

	// no route yet
	_, err = ledger.CascadeResources(alice, 1, 2, 100)
	assert.Equal(t, fault.ConnectionNotFound, err, "wrong error")

	_, err = ledger.ConnectGrids(alice, 1, 2, 300)
	assert.Nil(t, err, "wrong ConnectGrids")

	// only the source operator may cascade
	_, err = ledger.CascadeResources(bob, 1, 2, 100)
	assert.Equal(t, fault.NotAuthorized, err, "wrong error")

	// over the per-call ceiling
	_, err = ledger.CascadeResources(alice, 1, 2, 301)
	assert.Equal(t, fault.InvalidAmount, err, "wrong error")

	// the ceiling bounds each call separately so the accumulator
	// grows past the capacity across calls
	for i := 0; i < 3; i += 1 {
		connection, err := ledger.CascadeResources(alice, 1, 2, 300)
		assert.Nil(t, err, "wrong CascadeResources")
		assert.Equal(t, uint64(300*(i+1)), connection.TotalTransferred, "wrong accumulator")
	}

	// re-connecting resets the accumulator to zero
	connection, err := ledger.ConnectGrids(alice, 1, 2, 450)
	assert.Nil(t, err, "wrong ConnectGrids")
	assert.Equal(t, uint64(0), connection.TotalTransferred, "accumulator must reset on overwrite")
	assert.Equal(t, uint64(450), connection.Capacity, "wrong new capacity")
}

func TestRecordInnovationAdoption(t *testing.T) {
	setup(t)
	defer teardown(t)

	// unknown identity before the first record
	_, err := ledger.GetOperatorStats(bob)
	assert.Equal(t, fault.OperatorNotFound, err, "wrong error")

	// lazy creation applies the defaults then the increment
	stats, err := ledger.RecordInnovationAdoption(bob)
	assert.Nil(t, err, "wrong RecordInnovationAdoption")
	assert.Equal(t, uint64(1), stats.InnovationsAdopted, "wrong adoption count")
	assert.Equal(t, uint64(110), stats.ReputationScore, "wrong reputation")
	assert.Equal(t, uint64(0), stats.GridsOperated, "wrong grids operated")

	// reputation has no ceiling
	for i := 0; i < 99; i += 1 {
		stats, err = ledger.RecordInnovationAdoption(bob)
		assert.Nil(t, err, "wrong RecordInnovationAdoption")
	}
	assert.Equal(t, uint64(100), stats.InnovationsAdopted, "wrong adoption count")
	assert.Equal(t, uint64(1100), stats.ReputationScore, "wrong reputation")
}

func TestJoinSeasonalChallenge(t *testing.T) {
	setup(t)
	defer teardown(t)

	_, err := ledger.GetParticipation(alice, 3)
	assert.Equal(t, fault.ParticipationNotFound, err, "wrong error")

	_, err = ledger.JoinSeasonalChallenge(alice, 3, 75)
	assert.Nil(t, err, "wrong JoinSeasonalChallenge")

	// re-joining overwrites the previous claim
	_, err = ledger.JoinSeasonalChallenge(alice, 3, 40)
	assert.Nil(t, err, "wrong JoinSeasonalChallenge")

	participation, err := ledger.GetParticipation(alice, 3)
	assert.Nil(t, err, "wrong GetParticipation")
	assert.Equal(t, uint64(40), participation.EfficiencyImprovement, "claim must overwrite")
	assert.Equal(t, uint64(0), participation.RewardsClaimed, "wrong reserved field")
	assert.Equal(t, uint64(0), participation.Rank, "wrong reserved field")

	// seasons are separate records
	_, err = ledger.JoinSeasonalChallenge(alice, 4, 99)
	assert.Nil(t, err, "wrong JoinSeasonalChallenge")
	participation, err = ledger.GetParticipation(alice, 3)
	assert.Nil(t, err, "wrong GetParticipation")
	assert.Equal(t, uint64(40), participation.EfficiencyImprovement, "wrong season isolation")
}

func TestInactiveProtocol(t *testing.T) {
	setup(t)
	defer teardown(t)

	_, err := ledger.RegisterGrid(alice, location, 5000)
	assert.Nil(t, err, "wrong RegisterGrid")

	active, err := protocol.Toggle(owner)
	assert.Nil(t, err, "wrong Toggle")
	assert.False(t, active, "wrong toggled state")

	// gated writes all reject
	_, err = ledger.RegisterGrid(alice, location, 5000)
	assert.Equal(t, fault.NotAuthorized, err, "wrong error")
	_, err = ledger.TrackResource(resourcetype.Energy, 1, "solar", 0, 0, metadata)
	assert.Equal(t, fault.NotAuthorized, err, "wrong error")
	_, err = ledger.StakeForGovernance(bob, 1, 2000000)
	assert.Equal(t, fault.NotAuthorized, err, "wrong error")
	_, err = ledger.JoinSeasonalChallenge(alice, 1, 10)
	assert.Equal(t, fault.NotAuthorized, err, "wrong error")

	// reads are unaffected
	grid, err := ledger.GetGrid(1)
	assert.Nil(t, err, "wrong GetGrid")
	assert.Equal(t, alice, grid.Operator, "wrong operator")

	// ungated writes still apply
	_, err = ledger.UpdateGridEfficiency(alice, 1, 200)
	assert.Nil(t, err, "wrong UpdateGridEfficiency")
	_, err = ledger.RecordInnovationAdoption(bob)
	assert.Nil(t, err, "wrong RecordInnovationAdoption")
}

func TestCountersSurviveRestart(t *testing.T) {
	setup(t)

	_, err := ledger.RegisterGrid(alice, location, 5000)
	assert.Nil(t, err, "wrong RegisterGrid")
	_, err = ledger.RegisterGrid(alice, location, 5000)
	assert.Nil(t, err, "wrong RegisterGrid")
	_, err = ledger.TrackResource(resourcetype.Data, 1, "telemetry", 0, 0, metadata)
	assert.Nil(t, err, "wrong TrackResource")

	// restart the ledger on the same database
	err = ledger.Finalise()
	assert.Nil(t, err, "wrong Finalise")
	err = ledger.Initialise(handles())
	assert.Nil(t, err, "wrong reinitialise")
	defer teardown(t)

	assert.Equal(t, uint64(2), ledger.TotalGrids(), "grid counter lost")
	assert.Equal(t, uint64(1), ledger.TotalResourcesTracked(), "resource counter lost")

	// the sequences continue
	grid, err := ledger.RegisterGrid(bob, location, 100)
	assert.Nil(t, err, "wrong RegisterGrid")
	assert.Equal(t, uint64(3), grid.GridId, "sequence must continue after restart")
}
