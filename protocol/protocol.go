// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Open MicroGrid Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package protocol - the global protocol gate
//
// a kill switch flag and a global efficiency scalar, both owner
// gated; the owner is a single fixed principal set at deployment
// through the configuration file
package protocol

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/openmicrogrid/gridledgerd/fault"
	"github.com/openmicrogrid/gridledgerd/gridrecord"
	"github.com/openmicrogrid/gridledgerd/identity"
	"github.com/openmicrogrid/gridledgerd/storage"
)

// key for the persisted gate inside the protocol state pool
var stateKey = []byte("state")

// globals
var globalData struct {
	sync.RWMutex
	log              *logger.L
	pool             storage.Handle
	owner            identity.Principal
	active           bool
	globalEfficiency uint64

	// set once during initialise
	initialised bool
}

// Initialise - set up the protocol gate, restoring any persisted state
//
// a fresh deployment starts active with a zero global efficiency
func Initialise(pool storage.Handle, owner identity.Principal) error {
	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	if owner.IsZero() {
		return fault.InvalidPrincipal
	}

	globalData.log = logger.New("protocol")
	globalData.log.Info("starting…")

	globalData.pool = pool
	globalData.owner = owner
	globalData.active = true
	globalData.globalEfficiency = 0

	if buffer := pool.Get(stateKey); nil != buffer {
		record, _, err := gridrecord.Packed(buffer).Unpack()
		if nil != err {
			return err
		}
		state, ok := record.(*gridrecord.ProtocolState)
		if !ok {
			return fault.CannotDecodeRecord
		}
		globalData.active = state.Active
		globalData.globalEfficiency = state.GlobalEfficiencyScore
	}

	globalData.log.Infof("owner: %s  active: %v", owner, globalData.active)

	globalData.initialised = true

	return nil
}

// Finalise - shutdown the protocol gate
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

// IsActive - the current kill switch state
func IsActive() bool {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.active
}

// Owner - the fixed owner principal
func Owner() identity.Principal {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.owner
}

// GlobalEfficiency - the administrator set scalar
//
// the ledger stores but never interprets this value
func GlobalEfficiency() uint64 {
	globalData.RLock()
	defer globalData.RUnlock()
	return globalData.globalEfficiency
}

// Toggle - flip the kill switch, owner only
//
// returns the new state
func Toggle(caller identity.Principal) (bool, error) {
	globalData.Lock()
	defer globalData.Unlock()

	if caller != globalData.owner {
		return globalData.active, fault.NotAuthorized
	}

	globalData.active = !globalData.active
	if err := persist(); nil != err {
		// revert to keep memory and storage consistent
		globalData.active = !globalData.active
		return globalData.active, err
	}

	globalData.log.Infof("active: %v", globalData.active)
	return globalData.active, nil
}

// SetGlobalEfficiency - overwrite the global scalar, owner only
//
// no range validation is applied
func SetGlobalEfficiency(caller identity.Principal, score uint64) error {
	globalData.Lock()
	defer globalData.Unlock()

	if caller != globalData.owner {
		return fault.NotAuthorized
	}

	previous := globalData.globalEfficiency
	globalData.globalEfficiency = score
	if err := persist(); nil != err {
		globalData.globalEfficiency = previous
		return err
	}

	globalData.log.Infof("global efficiency: %d", score)
	return nil
}

// write the current gate to storage, caller holds the lock
func persist() error {
	state := gridrecord.ProtocolState{
		Active:                globalData.active,
		GlobalEfficiencyScore: globalData.globalEfficiency,
	}
	packed, err := state.Pack()
	if nil != err {
		return err
	}
	globalData.pool.Put(stateKey, packed)
	return nil
}
