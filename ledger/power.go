// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Open MicroGrid Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

// staking parameters
const (
	// smallest acceptable single deposit
	MinimumStake = 1000000

	// divisor converting staked units to voting power
	GovernanceScale = 1000000

	// every deposit is weighted as a single duration unit
	StakeDurationUnit = 1
)

// GovernancePower - voting power granted by one deposit
//
// integer arithmetic, remainders are discarded
func GovernancePower(amount uint64, duration uint64) uint64 {
	return amount * duration / GovernanceScale
}
