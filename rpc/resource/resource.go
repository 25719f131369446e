// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Open MicroGrid Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package resource

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/openmicrogrid/gridledgerd/digest"
	"github.com/openmicrogrid/gridledgerd/gridrecord"
	"github.com/openmicrogrid/gridledgerd/ledger"
	"github.com/openmicrogrid/gridledgerd/resourcetype"
	"github.com/openmicrogrid/gridledgerd/rpc/ratelimit"
)

const (
	rateLimitResource = 200
	rateBurstResource = 100
)

// Resource - type for the RPC
type Resource struct {
	Log     *logger.L
	Limiter *rate.Limiter
}

func New(log *logger.L) *Resource {
	return &Resource{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitResource, rateBurstResource),
	}
}

// ---

// TrackArguments - arguments for recording resource provenance
//
// no submitter identity is required, oracles may track resources on
// behalf of any existing grid
type TrackArguments struct {
	ResourceType     resourcetype.ResourceType `json:"resourceType"`
	GridId           uint64                    `json:"gridId"`
	GenerationMethod string                    `json:"generationMethod"`
	CarbonFootprint  uint64                    `json:"carbonFootprint,string"`
	HarmonyMetric    uint64                    `json:"harmonyMetric,string"`
	MetadataHash     digest.Digest             `json:"metadataHash"`
}

// TrackReply - the newly created provenance record
type TrackReply struct {
	ResourceId uint64                  `json:"resourceId"`
	Resource   *gridrecord.ResourceDna `json:"resource"`
}

// Track - write one immutable provenance record
func (resource *Resource) Track(arguments *TrackArguments, reply *TrackReply) error {

	if err := ratelimit.Limit(resource.Limiter); nil != err {
		return err
	}

	resource.Log.Infof("Resource.Track: %+v", arguments)

	created, err := ledger.TrackResource(
		arguments.ResourceType,
		arguments.GridId,
		arguments.GenerationMethod,
		arguments.CarbonFootprint,
		arguments.HarmonyMetric,
		arguments.MetadataHash,
	)
	if nil != err {
		return err
	}

	reply.ResourceId = created.ResourceId
	reply.Resource = created

	return nil
}

// ---

// GetArguments - arguments for a provenance lookup
type GetArguments struct {
	ResourceId uint64 `json:"resourceId"`
}

// GetReply - results from a provenance lookup
type GetReply struct {
	Resource *gridrecord.ResourceDna `json:"resource"`
}

// Get - fetch one provenance record
func (resource *Resource) Get(arguments *GetArguments, reply *GetReply) error {

	if err := ratelimit.Limit(resource.Limiter); nil != err {
		return err
	}

	record, err := ledger.GetResource(arguments.ResourceId)
	if nil != err {
		return err
	}
	reply.Resource = record

	return nil
}
