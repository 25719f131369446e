// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Open MicroGrid Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package gridrecord - ledger entity records and their binary codec
//
// every entity the ledger stores is a record with a Pack method
// producing a tagged varint encoded byte slice; Packed.Unpack
// reverses the encoding
//
// merge behaviour for upsert style entities (Stake, OperatorStats,
// GridConnection) is implemented here as pure methods so it can be
// tested independently of storage
package gridrecord
