// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Open MicroGrid Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/openmicrogrid/gridledgerd/rpc/admin"
	"github.com/openmicrogrid/gridledgerd/rpc/challenge"
	"github.com/openmicrogrid/gridledgerd/rpc/connection"
	"github.com/openmicrogrid/gridledgerd/rpc/governance"
	"github.com/openmicrogrid/gridledgerd/rpc/grid"
	"github.com/openmicrogrid/gridledgerd/rpc/listeners"
	"github.com/openmicrogrid/gridledgerd/rpc/node"
	"github.com/openmicrogrid/gridledgerd/rpc/reputation"
	"github.com/openmicrogrid/gridledgerd/rpc/resource"
)

// Create - a server with all ledger services registered
func Create(log *logger.L, version string, rpcCount *listeners.ConnectionCounter) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(grid.New(log))
	_ = server.Register(resource.New(log))
	_ = server.Register(governance.New(log))
	_ = server.Register(connection.New(log))
	_ = server.Register(challenge.New(log))
	_ = server.Register(reputation.New(log))
	_ = server.Register(admin.New(log))
	_ = server.Register(node.New(log, start, version, rpcCount))

	return server
}
