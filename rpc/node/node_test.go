// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Open MicroGrid Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/openmicrogrid/gridledgerd/digest"
	"github.com/openmicrogrid/gridledgerd/ledger"
	"github.com/openmicrogrid/gridledgerd/rpc/fixtures"
	"github.com/openmicrogrid/gridledgerd/rpc/listeners"
	"github.com/openmicrogrid/gridledgerd/rpc/node"
)

func TestInfo(t *testing.T) {
	fixtures.SetupTestLedger(t)
	defer fixtures.TeardownTestLedger(t)

	operator := fixtures.MakePrincipal(0x30)
	_, err := ledger.RegisterGrid(operator, digest.NewDigest([]byte("south field")), 5000)
	assert.Nil(t, err, "wrong RegisterGrid")

	counter := new(listeners.ConnectionCounter)
	counter.Increment()

	n := node.New(logger.New("test"), time.Now(), "1.0.0", counter)

	var reply node.InfoReply
	err = n.Info(&node.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong Info")
	assert.True(t, reply.ProtocolActive, "wrong protocol state")
	assert.Equal(t, uint64(1), reply.TotalGrids, "wrong grid count")
	assert.Equal(t, uint64(0), reply.TotalResources, "wrong resource count")
	assert.Equal(t, uint64(1), reply.Height, "wrong height")
	assert.Equal(t, uint64(1), reply.RPCs, "wrong connection count")
	assert.Equal(t, "1.0.0", reply.Version, "wrong version")
}
