// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Open MicroGrid Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/openmicrogrid/gridledgerd/digest"
	"github.com/openmicrogrid/gridledgerd/resourcetype"
	"github.com/openmicrogrid/gridledgerd/rpc/resource"
)

// ResourceData - provenance data for a track request
type ResourceData struct {
	ResourceType     resourcetype.ResourceType
	GridId           uint64
	GenerationMethod string
	CarbonFootprint  uint64
	HarmonyMetric    uint64
	MetadataHash     digest.Digest
}

// TrackResource - write one immutable provenance record
func (client *Client) TrackResource(data *ResourceData) (*resource.TrackReply, error) {

	args := resource.TrackArguments{
		ResourceType:     data.ResourceType,
		GridId:           data.GridId,
		GenerationMethod: data.GenerationMethod,
		CarbonFootprint:  data.CarbonFootprint,
		HarmonyMetric:    data.HarmonyMetric,
		MetadataHash:     data.MetadataHash,
	}

	client.printJson("Resource Track Request", args)

	var reply resource.TrackReply
	if err := client.client.Call("Resource.Track", &args, &reply); err != nil {
		return nil, err
	}

	client.printJson("Resource Track Reply", reply)

	return &reply, nil
}

// GetResource - fetch one provenance record by its identifier
func (client *Client) GetResource(resourceId uint64) (*resource.GetReply, error) {

	args := resource.GetArguments{
		ResourceId: resourceId,
	}

	client.printJson("Resource Get Request", args)

	var reply resource.GetReply
	if err := client.client.Call("Resource.Get", &args, &reply); err != nil {
		return nil, err
	}

	client.printJson("Resource Get Reply", reply)

	return &reply, nil
}
