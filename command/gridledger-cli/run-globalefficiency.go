// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Open MicroGrid Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/openmicrogrid/gridledgerd/command/gridledger-cli/rpccalls"
)

func runGlobalEfficiency(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	caller, err := checkRequiredIdentity(m)
	if nil != err {
		return err
	}

	// zero is accepted, it parks the protocol scalar
	score := c.Uint64("score")

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.SetGlobalEfficiency(caller, score)
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}
