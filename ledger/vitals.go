// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Open MicroGrid Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"time"

	"github.com/bitmark-inc/logger"
)

// interval between vitals reports
const vitalsInterval = 5 * time.Minute

// background that periodically reports registry totals
type vitals struct{}

func (v *vitals) Run(args interface{}, shutdown <-chan struct{}) {

	log := args.(*logger.L)

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-time.After(vitalsInterval):
			log.Infof("vitals: grids: %d  resources: %d", TotalGrids(), TotalResourcesTracked())
		}
	}
}
