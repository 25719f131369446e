// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Open MicroGrid Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package digest - opaque 32 byte digests
//
// location hashes and resource metadata hashes are SHA3-256 values
// computed off-chain; the ledger only stores and compares them
package digest
