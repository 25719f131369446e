// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Open MicroGrid Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - the grid ledger state machine
//
// all entities are mutated only through the operations in this
// package; every operation runs under one global mutex so it either
// fully applies or fully rejects, exactly as the external
// deterministic execution environment serialises operations
//
// read operations never mutate and are safe at any time
package ledger
