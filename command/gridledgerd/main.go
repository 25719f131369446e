// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Open MicroGrid Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io/ioutil"
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/openmicrogrid/gridledgerd/clock"
	"github.com/openmicrogrid/gridledgerd/identity"
	"github.com/openmicrogrid/gridledgerd/ledger"
	"github.com/openmicrogrid/gridledgerd/protocol"
	"github.com/openmicrogrid/gridledgerd/rpc"
	"github.com/openmicrogrid/gridledgerd/storage"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)

	// ------------------
	// start of real main
	// ------------------

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if nil != err {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	// the protocol owner principal
	owner, err := identity.PrincipalFromBase58(theConfiguration.Owner)
	if nil != err {
		log.Criticalf("owner: %q error: %s", theConfiguration.Owner, err)
		exitwithstatus.Message("owner: %q error: %s", theConfiguration.Owner, err)
	}

	// general info
	log.Infof("database: %q", theConfiguration.Database.Name)
	log.Debugf("%s = %#v", "ClientRPC", theConfiguration.ClientRPC)
	log.Debugf("%s = %#v", "HttpsRPC", theConfiguration.HttpsRPC)

	// start the data storage
	log.Info("initialise storage")
	err = storage.Initialise(theConfiguration.Database.Name)
	if nil != err {
		log.Criticalf("storage initialise error: %s", err)
		exitwithstatus.Message("storage initialise error: %s", err)
	}
	defer storage.Finalise()

	// the protocol gate - before any operations are accepted
	log.Info("initialise protocol")
	err = protocol.Initialise(storage.Pool.ProtocolState, owner)
	if nil != err {
		log.Criticalf("protocol initialise error: %s", err)
		exitwithstatus.Message("protocol initialise error: %s", err)
	}
	defer protocol.Finalise()

	// the logical clock
	log.Info("initialise clock")
	err = clock.Initialise(storage.Pool.ProtocolState)
	if nil != err {
		log.Criticalf("clock initialise error: %s", err)
		exitwithstatus.Message("clock initialise error: %s", err)
	}
	defer clock.Finalise()

	// the ledger state machine
	log.Info("initialise ledger")
	err = ledger.Initialise(ledger.Handles{
		Grids:       storage.Pool.Grids,
		Resources:   storage.Pool.Resources,
		Stakes:      storage.Pool.Stakes,
		Operators:   storage.Pool.Operators,
		Connections: storage.Pool.Connections,
		Challenges:  storage.Pool.Challenges,
	})
	if nil != err {
		log.Criticalf("ledger initialise error: %s", err)
		exitwithstatus.Message("ledger initialise error: %s", err)
	}
	defer ledger.Finalise()

	// load the TLS keypairs into memory
	err = loadKeypairs(theConfiguration)
	if nil != err {
		log.Criticalf("certificate error: %s", err)
		exitwithstatus.Message("certificate error: %s", err)
	}

	// start up the client facing listeners
	err = rpc.Initialise(&theConfiguration.ClientRPC, &theConfiguration.HttpsRPC, version)
	if nil != err {
		log.Criticalf("rpc initialise error: %s", err)
		exitwithstatus.Message("rpc initialise error: %s", err)
	}
	defer rpc.Finalise()

	// wait for CTRL-C before shutting down to allow manual testing
	if 0 == len(options["quiet"]) {
		fmt.Printf("\n\nWaiting for CTRL-C (SIGINT) or 'kill <pid>' (SIGTERM)…")
	}

	// turn Signals into channel messages
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if 0 == len(options["quiet"]) {
		fmt.Printf("\nreceived signal: %v\n", sig)
		fmt.Printf("\nshutting down…\n")
	}

	log.Info("shutting down…")
}

// replace the certificate and key file names by the PEM contents
func loadKeypairs(theConfiguration *Configuration) error {
	files := []*string{
		&theConfiguration.ClientRPC.Certificate,
		&theConfiguration.ClientRPC.PrivateKey,
		&theConfiguration.HttpsRPC.Certificate,
		&theConfiguration.HttpsRPC.PrivateKey,
	}
	for _, f := range files {
		data, err := ioutil.ReadFile(*f)
		if nil != err {
			return err
		}
		*f = string(data)
	}
	return nil
}
