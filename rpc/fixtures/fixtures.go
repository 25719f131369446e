// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Open MicroGrid Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared bring-up helpers for RPC handler tests
package fixtures

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"

	"github.com/openmicrogrid/gridledgerd/clock"
	"github.com/openmicrogrid/gridledgerd/identity"
	"github.com/openmicrogrid/gridledgerd/ledger"
	"github.com/openmicrogrid/gridledgerd/protocol"
	"github.com/openmicrogrid/gridledgerd/storage"
)

const (
	logDirectory     = "log"
	databaseFileName = "test.leveldb"
)

// Owner - the protocol owner used by every handler test
var Owner = MakePrincipal(0x01)

// MakePrincipal - a deterministic test principal
func MakePrincipal(seed byte) identity.Principal {
	var raw [identity.Length]byte
	for i := range raw {
		raw[i] = seed ^ byte(i)
	}
	principal, _ := identity.PrincipalFromBytes(raw[:])
	return principal
}

// SetupTestLedger - bring up logging, storage and the full ledger
// stack on a throwaway database
func SetupTestLedger(t *testing.T) {
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

	err = protocol.Initialise(storage.Pool.ProtocolState, Owner)
	if nil != err {
		t.Fatalf("protocol initialise error: %s", err)
	}

	err = clock.Initialise(storage.Pool.ProtocolState)
	if nil != err {
		t.Fatalf("clock initialise error: %s", err)
	}

	err = ledger.Initialise(ledger.Handles{
		Grids:       storage.Pool.Grids,
		Resources:   storage.Pool.Resources,
		Stakes:      storage.Pool.Stakes,
		Operators:   storage.Pool.Operators,
		Connections: storage.Pool.Connections,
		Challenges:  storage.Pool.Challenges,
	})
	if nil != err {
		t.Fatalf("ledger initialise error: %s", err)
	}
}

// TeardownTestLedger - shut the stack down and remove the database
func TeardownTestLedger(t *testing.T) {
	_ = ledger.Finalise()
	_ = clock.Finalise()
	_ = protocol.Finalise()
	storage.Finalise()
	os.RemoveAll(databaseFileName)
	logger.Finalise()
	os.RemoveAll(logDirectory)
}
