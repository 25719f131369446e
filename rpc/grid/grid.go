// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Open MicroGrid Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package grid

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/openmicrogrid/gridledgerd/digest"
	"github.com/openmicrogrid/gridledgerd/gridrecord"
	"github.com/openmicrogrid/gridledgerd/identity"
	"github.com/openmicrogrid/gridledgerd/ledger"
	"github.com/openmicrogrid/gridledgerd/rpc/ratelimit"
)

const (
	rateLimitGrid = 200
	rateBurstGrid = 100
)

// Grid - type for the RPC
type Grid struct {
	Log     *logger.L
	Limiter *rate.Limiter
}

func New(log *logger.L) *Grid {
	return &Grid{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitGrid, rateBurstGrid),
	}
}

// ---

// RegisterArguments - arguments for registering a grid
type RegisterArguments struct {
	Operator        identity.Principal `json:"operator"`
	LocationHash    digest.Digest      `json:"locationHash"`
	InitialCapacity uint64             `json:"initialCapacity,string"`
}

// RegisterReply - the newly created grid
type RegisterReply struct {
	GridId uint64           `json:"gridId"`
	Grid   *gridrecord.Grid `json:"grid"`
}

// Register - create a grid operated by the submitted principal
func (grid *Grid) Register(arguments *RegisterArguments, reply *RegisterReply) error {

	if err := ratelimit.Limit(grid.Limiter); nil != err {
		return err
	}

	grid.Log.Infof("Grid.Register: %+v", arguments)

	created, err := ledger.RegisterGrid(arguments.Operator, arguments.LocationHash, arguments.InitialCapacity)
	if nil != err {
		return err
	}

	reply.GridId = created.GridId
	reply.Grid = created

	return nil
}

// ---

// GetArguments - arguments for a grid lookup
type GetArguments struct {
	GridId uint64 `json:"gridId"`
}

// GetReply - results from a grid lookup
type GetReply struct {
	Grid *gridrecord.Grid `json:"grid"`
}

// Get - fetch one grid
func (grid *Grid) Get(arguments *GetArguments, reply *GetReply) error {

	if err := ratelimit.Limit(grid.Limiter); nil != err {
		return err
	}

	record, err := ledger.GetGrid(arguments.GridId)
	if nil != err {
		return err
	}
	reply.Grid = record

	return nil
}

// ---

// UpdateEfficiencyArguments - arguments for an efficiency overwrite
type UpdateEfficiencyArguments struct {
	Caller          identity.Principal `json:"caller"`
	GridId          uint64             `json:"gridId"`
	EfficiencyScore uint64             `json:"efficiencyScore"`
}

// UpdateEfficiencyReply - the updated grid
type UpdateEfficiencyReply struct {
	Grid *gridrecord.Grid `json:"grid"`
}

// UpdateEfficiency - overwrite a grid's efficiency score, operator only
func (grid *Grid) UpdateEfficiency(arguments *UpdateEfficiencyArguments, reply *UpdateEfficiencyReply) error {

	if err := ratelimit.Limit(grid.Limiter); nil != err {
		return err
	}

	grid.Log.Infof("Grid.UpdateEfficiency: %+v", arguments)

	record, err := ledger.UpdateGridEfficiency(arguments.Caller, arguments.GridId, arguments.EfficiencyScore)
	if nil != err {
		return err
	}
	reply.Grid = record

	return nil
}
