// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Open MicroGrid Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/openmicrogrid/gridledgerd/command/gridledger-cli/rpccalls"
)

func runParticipation(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	participant, err := checkPrincipalWithDefault(c.String("participant"), m)
	if nil != err {
		return err
	}

	season, err := checkIdentifier(c.Uint64("season"), errRequiredSeason)
	if nil != err {
		return err
	}

	client, err := rpccalls.NewClient(m.connect, m.verbose, m.e)
	if nil != err {
		return err
	}
	defer client.Close()

	response, err := client.GetParticipation(participant, season)
	if nil != err {
		return err
	}

	printJson(m.w, response)

	return nil
}
