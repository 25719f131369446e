// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Open MicroGrid Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package resource_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/openmicrogrid/gridledgerd/digest"
	"github.com/openmicrogrid/gridledgerd/fault"
	"github.com/openmicrogrid/gridledgerd/ledger"
	"github.com/openmicrogrid/gridledgerd/resourcetype"
	"github.com/openmicrogrid/gridledgerd/rpc/fixtures"
	"github.com/openmicrogrid/gridledgerd/rpc/resource"
)

func TestTrackAndGet(t *testing.T) {
	fixtures.SetupTestLedger(t)
	defer fixtures.TeardownTestLedger(t)

	operator := fixtures.MakePrincipal(0x30)
	_, err := ledger.RegisterGrid(operator, digest.NewDigest([]byte("east field")), 5000)
	assert.Nil(t, err, "wrong RegisterGrid")

	r := resource.New(logger.New("test"))

	trackArgs := resource.TrackArguments{
		ResourceType:     resourcetype.Energy,
		GridId:           1,
		GenerationMethod: "solar",
		CarbonFootprint:  12,
		HarmonyMetric:    900,
		MetadataHash:     digest.NewDigest([]byte("panel batch 42")),
	}
	var trackReply resource.TrackReply
	err = r.Track(&trackArgs, &trackReply)
	assert.Nil(t, err, "wrong Track")
	assert.Equal(t, uint64(1), trackReply.ResourceId, "wrong resource id")

	var getReply resource.GetReply
	err = r.Get(&resource.GetArguments{ResourceId: 1}, &getReply)
	assert.Nil(t, err, "wrong Get")
	assert.Equal(t, "solar", getReply.Resource.GenerationMethod, "wrong method")
	assert.Equal(t, resourcetype.Energy, getReply.Resource.ResourceType, "wrong type")

	// missing grid
	trackArgs.GridId = 9
	err = r.Track(&trackArgs, &trackReply)
	assert.Equal(t, fault.GridNotFound, err, "wrong error")
}
