// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Open MicroGrid Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package background - run processes in the background
//
// each process is started in its own goroutine and handed a shutdown
// channel; Stop closes every shutdown channel and waits until all
// processes have returned
package background

// the shutdown and completed channels for one background
type shutdownData struct {
	shutdown chan struct{}
	finished chan struct{}
}

// T - handle for stopping a set of backgrounds
type T struct {
	s []shutdownData
}

// Process - object that runs as a background
//
// Run must return promptly after the shutdown channel is closed
type Process interface {
	Run(args interface{}, shutdown <-chan struct{})
}

// Processes - list of processes to start
type Processes []Process

// Start - start up a set of background processes
// all with the same args value
func Start(processes Processes, args interface{}) *T {

	register := new(T)
	register.s = make([]shutdownData, len(processes))

	// start each background
	for i, p := range processes {
		shutdown := make(chan struct{})
		finished := make(chan struct{})
		register.s[i].shutdown = shutdown
		register.s[i].finished = finished
		go func(p Process, shutdown <-chan struct{}, finished chan<- struct{}) {
			p.Run(args, shutdown)
			close(finished)
		}(p, shutdown, finished)
	}
	return register
}

// Stop - stop a set of background processes and wait for them
func (t *T) Stop() {

	if nil == t {
		return
	}

	// signal all background tasks
	for _, shutdown := range t.s {
		close(shutdown.shutdown)
	}

	// wait for finished
	for _, shutdown := range t.s {
		<-shutdown.finished
	}
}
