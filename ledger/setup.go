// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Open MicroGrid Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/binary"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/openmicrogrid/gridledgerd/background"
	"github.com/openmicrogrid/gridledgerd/fault"
	"github.com/openmicrogrid/gridledgerd/identity"
	"github.com/openmicrogrid/gridledgerd/storage"
)

// Handles - the storage pools the ledger writes to
type Handles struct {
	Grids       storage.Handle
	Resources   storage.Handle
	Stakes      storage.Handle
	Operators   storage.Handle
	Connections storage.Handle
	Challenges  storage.Handle
}

// globals
var globalData struct {
	sync.RWMutex
	log        *logger.L
	pools      Handles
	background *background.T

	// counters double as the last assigned identifiers
	totalGrids     uint64
	totalResources uint64

	// set once during initialise
	initialised bool
}

// Initialise - set up the ledger
//
// counters are derived from the highest keys already present in the
// grid and resource pools so restarts continue the same sequences
func Initialise(pools Handles) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("ledger")
	globalData.log.Info("starting…")

	globalData.pools = pools

	globalData.totalGrids = lastIdentifier(pools.Grids)
	globalData.totalResources = lastIdentifier(pools.Resources)

	globalData.log.Infof("grids: %d  resources: %d", globalData.totalGrids, globalData.totalResources)

	processes := background.Processes{
		&vitals{},
	}
	globalData.background = background.Start(processes, globalData.log)

	globalData.initialised = true

	return nil
}

// Finalise - shutdown the ledger
func Finalise() error {
	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.background.Stop()

	globalData.Lock()
	defer globalData.Unlock()

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.initialised = false

	return nil
}

// the highest assigned identifier in an id keyed pool, zero if empty
func lastIdentifier(pool storage.Handle) uint64 {
	element, found := pool.LastElement()
	if !found {
		return 0
	}
	if 8 != len(element.Key) {
		logger.Panicf("ledger: corrupt identifier key: %x", element.Key)
	}
	return binary.BigEndian.Uint64(element.Key)
}

// TotalGrids - count of registered grids, doubles as last assigned grid id
func TotalGrids() uint64 {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.totalGrids
}

// TotalResourcesTracked - count of resource records, doubles as last assigned resource id
func TotalResourcesTracked() uint64 {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.totalResources
}

// key building

// 8 byte big endian identifier key
func uint64Key(n uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, n)
	return key
}

// composite (staker, grid) key
func stakeKey(staker identity.Principal, gridId uint64) []byte {
	return append(staker.Bytes(), uint64Key(gridId)...)
}

// composite ordered (from, to) key - directional, not symmetric
func connectionKey(fromGrid uint64, toGrid uint64) []byte {
	return append(uint64Key(fromGrid), uint64Key(toGrid)...)
}

// composite (participant, season) key
func challengeKey(participant identity.Principal, season uint64) []byte {
	return append(participant.Bytes(), uint64Key(season)...)
}
