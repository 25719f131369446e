// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Open MicroGrid Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - the client facing surfaces
//
// a TLS JSON-RPC listener for programmatic clients and an optional
// HTTPS bridge carrying the same services plus a read-only details
// page for monitoring
package rpc

import (
	"crypto/tls"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/openmicrogrid/gridledgerd/fault"
	"github.com/openmicrogrid/gridledgerd/rpc/certificate"
	"github.com/openmicrogrid/gridledgerd/rpc/listeners"
	"github.com/openmicrogrid/gridledgerd/rpc/server"
)

const (
	tlsName          = "client_rpc"
	httpsName        = "http_rpc"
	readWriteTimeout = 10 * time.Second
)

// HTTPSConfiguration - configuration file data for HTTPS setup
type HTTPSConfiguration struct {
	MaximumConnections uint64              `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string            `gluamapper:"listen" json:"listen"`
	Certificate        string              `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string              `gluamapper:"private_key" json:"private_key"`
	Allow              map[string][]string `gluamapper:"allow" json:"allow"`
}

// shared by the TLS listener and the HTTPS bridge
var connectionCount listeners.ConnectionCounter

// globals
var globalData struct {
	sync.RWMutex
	log *logger.L

	// set once during initialise
	initialised bool
}

// Initialise - start the client facing listeners
func Initialise(rpcConfiguration *listeners.RPCConfiguration, httpsConfiguration *HTTPSConfiguration, version string) error {

	globalData.Lock()
	defer globalData.Unlock()

	if globalData.initialised {
		return fault.AlreadyInitialised
	}

	log := logger.New("rpc")
	globalData.log = log
	log.Info("starting…")

	tlsConfiguration, fingerprint, err := certificate.Get(log, tlsName, rpcConfiguration.Certificate, rpcConfiguration.PrivateKey)
	if nil != err {
		return err
	}

	rpcListener, err := listeners.NewRPC(
		rpcConfiguration,
		log,
		&connectionCount,
		server.Create(log, version, &connectionCount),
		tlsConfiguration,
		fingerprint,
	)
	if nil != err {
		return err
	}
	err = rpcListener.Serve()
	if nil != err {
		return err
	}

	err = initialiseHTTPS(httpsConfiguration, version)
	if nil != err {
		return err
	}

	globalData.initialised = true

	return nil
}

// Finalise - stop the client facing listeners
func Finalise() error {

	if !globalData.initialised {
		return fault.NotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	globalData.initialised = false

	return nil
}

// start the HTTPS bridge if it is configured
func initialiseHTTPS(configuration *HTTPSConfiguration, version string) error {

	log := globalData.log

	if 0 == len(configuration.Listen) {
		log.Infof("disable: %s", httpsName)
		return nil
	}

	if configuration.MaximumConnections < 1 {
		log.Errorf("invalid %s maximum connection limit: %d", httpsName, configuration.MaximumConnections)
		return fault.MissingParameters
	}

	tlsConfiguration, fingerprint, err := certificate.Get(log, httpsName, configuration.Certificate, configuration.PrivateKey)
	if nil != err {
		return err
	}

	log.Infof("%s: SHA3-256 fingerprint: %x", httpsName, fingerprint)

	// access control in http.Request.RemoteAddr form
	allow := make(map[string][]*net.IPNet)
	for path, addresses := range configuration.Allow {
		set := make([]*net.IPNet, len(addresses))
		allow[path] = set
		for i, ip := range addresses {
			_, cidr, err := net.ParseCIDR(strings.Trim(ip, " "))
			if nil != err {
				return err
			}
			set[i] = cidr
		}
	}

	handler := &httpHandler{
		log:                log,
		server:             server.Create(log, version, &connectionCount),
		version:            version,
		start:              time.Now(),
		allow:              allow,
		maximumConnections: configuration.MaximumConnections,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/gridledgerd/rpc", handler.rpc)
	mux.HandleFunc("/gridledgerd/details", handler.details)
	mux.HandleFunc("/gridledgerd/connections", handler.connections)
	mux.HandleFunc("/", handler.root)

	for _, listen := range configuration.Listen {
		log.Infof("starting server: %s on: %q", httpsName, listen)
		if '*' == listen[0] {
			// change "*:PORT" to "[::]:PORT"
			// on the assumption that this will listen on tcp4 and tcp6
			listen = "[::]" + ":" + strings.Split(listen, ":")[1]
		}
		go listenAndServeTLSKeyPair(listen, mux, tlsConfiguration)
	}

	return nil
}

type tcpKeepAliveListener struct {
	*net.TCPListener
}

func (ln tcpKeepAliveListener) Accept() (net.Conn, error) {
	tc, err := ln.AcceptTCP()
	if nil != err {
		return nil, err
	}
	_ = tc.SetKeepAlive(true)
	_ = tc.SetKeepAlivePeriod(3 * time.Minute)
	return tc, nil
}

// start a HTTPS server using an in-memory TLS keypair
func listenAndServeTLSKeyPair(addr string, handler http.Handler, cfg *tls.Config) error {
	s := &http.Server{
		Addr:           addr,
		Handler:        handler,
		ReadTimeout:    readWriteTimeout,
		WriteTimeout:   readWriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}

	cfg.NextProtos = []string{"http/1.1"}

	ln, err := net.Listen("tcp", addr)
	if nil != err {
		return err
	}

	tlsListener := tls.NewListener(tcpKeepAliveListener{ln.(*net.TCPListener)}, cfg)

	return s.Serve(tlsListener)
}
