// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Open MicroGrid Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpc

import (
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strings"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/openmicrogrid/gridledgerd/clock"
	"github.com/openmicrogrid/gridledgerd/ledger"
	"github.com/openmicrogrid/gridledgerd/protocol"
)

// type to allow the rpc system to interface to a http request
type internalConnection struct {
	in  io.Reader
	out io.Writer
}

func (c *internalConnection) Read(p []byte) (int, error) {
	return c.in.Read(p)
}
func (c *internalConnection) Write(d []byte) (int, error) {
	return c.out.Write(d)
}
func (c *internalConnection) Close() error {
	return nil
}

// the argument passed to the handlers
type httpHandler struct {
	log                *logger.L
	server             *rpc.Server
	start              time.Time
	version            string
	allow              map[string][]*net.IPNet
	maximumConnections uint64
}

// this matches anything not matched and returns error
func (s *httpHandler) root(w http.ResponseWriter, r *http.Request) {
	sendNotFound(w)
}

// performs a call to any normal RPC
func (s *httpHandler) rpc(w http.ResponseWriter, r *http.Request) {
	if http.MethodPost != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	if connectionCount.Increment() > s.maximumConnections {
		connectionCount.Decrement()
		sendTooManyRequests(w)
		return
	}
	defer connectionCount.Decrement()

	serverCodec := jsonrpc.NewServerCodec(&internalConnection{in: r.Body, out: w})
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	err := s.server.ServeRequest(serverCodec)
	if nil != err {
		sendInternalServerError(w)
		return
	}
}

// check the remote address of a request against the allow list for a path
func (s *httpHandler) isAllowed(path string, r *http.Request) bool {
	last := strings.LastIndex(r.RemoteAddr, ":")
	if last < 0 {
		return false
	}
	host := strings.Trim(r.RemoteAddr[:last], "[]")
	addr := net.ParseIP(host)
	if nil == addr {
		return false
	}
	for _, cidr := range s.allow[path] {
		if cidr.Contains(addr) {
			return true
		}
	}
	return false
}

// a GET equivalent of the Node.Info RPC, restricted to the allow list
func (s *httpHandler) details(w http.ResponseWriter, r *http.Request) {
	if http.MethodGet != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	if !s.isAllowed("details", r) {
		s.log.Warnf("deny access: %q", r.RemoteAddr)
		sendForbidden(w)
		return
	}

	connectionCount.Increment()
	defer connectionCount.Decrement()

	type theReply struct {
		ProtocolActive   bool   `json:"protocolActive"`
		GlobalEfficiency uint64 `json:"globalEfficiency"`
		TotalGrids       uint64 `json:"totalGrids"`
		TotalResources   uint64 `json:"totalResources"`
		Height           uint64 `json:"height"`
		RPCs             uint64 `json:"rpcs"`
		Version          string `json:"version"`
		Uptime           string `json:"uptime"`
	}

	reply := theReply{
		ProtocolActive:   protocol.IsActive(),
		GlobalEfficiency: protocol.GlobalEfficiency(),
		TotalGrids:       ledger.TotalGrids(),
		TotalResources:   ledger.TotalResourcesTracked(),
		Height:           clock.Height(),
		RPCs:             connectionCount.Uint64(),
		Version:          s.version,
		Uptime:           time.Since(s.start).String(),
	}

	sendReply(w, reply)
}

// current connection count, restricted to the allow list
func (s *httpHandler) connections(w http.ResponseWriter, r *http.Request) {
	if http.MethodGet != r.Method {
		sendMethodNotAllowed(w)
		return
	}

	if !s.isAllowed("connections", r) {
		s.log.Warnf("deny access: %q", r.RemoteAddr)
		sendForbidden(w)
		return
	}

	type theReply struct {
		RPCs uint64 `json:"rpcs"`
	}

	sendReply(w, theReply{RPCs: connectionCount.Uint64()})
}

// send a JSON encoded reply
func sendReply(w http.ResponseWriter, data interface{}) {
	text, err := json.Marshal(data)
	if nil != err {
		sendInternalServerError(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(text)
}

// selected errors as required above
func sendNotFound(w http.ResponseWriter) {
	sendError(w, "not found", http.StatusNotFound)
}
func sendMethodNotAllowed(w http.ResponseWriter) {
	sendError(w, "method not allowed", http.StatusMethodNotAllowed)
}
func sendForbidden(w http.ResponseWriter) {
	sendError(w, "forbidden", http.StatusForbidden)
}
func sendTooManyRequests(w http.ResponseWriter) {
	sendError(w, "too many requests", http.StatusTooManyRequests)
}
func sendInternalServerError(w http.ResponseWriter) {
	sendError(w, "internal server error", http.StatusInternalServerError)
}

// to compose JSON error messages
type eType struct {
	Code  int    `json:"code"`
	Error string `json:"error"`
}

// output an error with a JSON body
func sendError(w http.ResponseWriter, message string, code int) {
	text, err := json.Marshal(eType{
		Code:  code,
		Error: message,
	})
	if nil != err {
		// manually composed error just in case JSON fails
		http.Error(w, `{"code":500,"error":"Internal Server Error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(code)
	_, _ = w.Write(text)
}
