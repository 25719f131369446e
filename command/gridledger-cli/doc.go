// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Open MicroGrid Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command line client for the grid ledger daemon
//
// e.g. to register a grid on a local daemon:
//
//   gridledger-cli -c 127.0.0.1:2130 -i <base58-principal> \
//       register -l <hex-location-hash> -q 5000
package main
