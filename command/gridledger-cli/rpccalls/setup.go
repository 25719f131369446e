// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Open MicroGrid Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpccalls - JSON RPC calls to a gridledgerd daemon over TLS
package rpccalls

import (
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
)

// Client - to hold RPC connections streams
type Client struct {
	conn    net.Conn
	client  *rpc.Client
	verbose bool
	handle  io.Writer // if verbose is set output items here
}

// NewClient - create a RPC connection to a gridledgerd
//
// the daemon uses a self-signed certificate so verification is
// disabled; clients that need pinning should compare the fingerprint
// printed by "gridledgerd fingerprint"
func NewClient(connect string, verbose bool, handle io.Writer) (*Client, error) {

	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
	}

	conn, err := tls.Dial("tcp", connect, tlsConfig)
	if err != nil {
		return nil, err
	}

	r := &Client{
		conn:    conn,
		client:  jsonrpc.NewClient(conn),
		verbose: verbose,
		handle:  handle,
	}
	return r, nil
}

// Close - shutdown the gridledgerd connection
func (client *Client) Close() {
	client.client.Close()
	client.conn.Close()
}

// trace the request and reply structures when verbose is set
func (client *Client) printJson(title string, message interface{}) {
	if !client.verbose {
		return
	}
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		fmt.Fprintf(client.handle, "%s: error: %s\n", title, err)
		return
	}
	fmt.Fprintf(client.handle, "%s:\n%s\n", title, b)
}
