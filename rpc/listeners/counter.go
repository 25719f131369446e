// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Open MicroGrid Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"sync/atomic"
)

// ConnectionCounter - concurrency safe count of open client connections
type ConnectionCounter struct {
	value uint64
}

// Increment - add one and return the new value
func (counter *ConnectionCounter) Increment() uint64 {
	return atomic.AddUint64(&counter.value, 1)
}

// Decrement - subtract one and return the new value
func (counter *ConnectionCounter) Decrement() uint64 {
	return atomic.AddUint64(&counter.value, ^uint64(0))
}

// Uint64 - the current value
func (counter *ConnectionCounter) Uint64() uint64 {
	return atomic.LoadUint64(&counter.value)
}
