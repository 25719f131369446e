// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Open MicroGrid Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package clock - the logical clock
//
// the execution environment delivers operations in a strict serial
// order and supplies a monotonically increasing height; the daemon
// advances the clock once per delivered write operation and the
// value is persisted so restarts never reuse a height
package clock

import (
	"encoding/binary"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/openmicrogrid/gridledgerd/fault"
	"github.com/openmicrogrid/gridledgerd/storage"
)

// key for the persisted height inside the protocol state pool
var heightKey = []byte("height")

// globals
var globalData struct {
	sync.RWMutex
	log    *logger.L
	pool   storage.Handle
	height uint64

	// set once during initialise
	initialised bool
}

// Initialise - set up the clock, restoring any persisted height
func Initialise(pool storage.Handle) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	globalData.log = logger.New("clock")
	globalData.log.Info("starting…")

	globalData.pool = pool
	globalData.height = 0

	if buffer := pool.Get(heightKey); nil != buffer {
		if 8 != len(buffer) {
			return fault.CannotDecodeRecord
		}
		globalData.height = binary.BigEndian.Uint64(buffer)
	}

	globalData.log.Infof("height: %d", globalData.height)

	globalData.initialised = true

	return nil
}

// Finalise - shutdown the clock
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.pool = nil
	globalData.initialised = false

	return nil
}

// Height - the current logical clock value
func Height() uint64 {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.height
}

// Advance - move the clock forward by one and persist the new height
func Advance() uint64 {
	globalData.Lock()
	defer globalData.Unlock()

	globalData.height += 1

	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, globalData.height)
	globalData.pool.Put(heightKey, buffer)

	return globalData.height
}
