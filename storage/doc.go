// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Open MicroGrid Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the ledger entity pools
//
// a single LevelDB database partitioned into pools by a one byte
// key prefix; each pool stores packed gridrecord values
package storage
