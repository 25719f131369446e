// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Open MicroGrid Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package digest

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/sha3"

	"github.com/openmicrogrid/gridledgerd/fault"
)

// Length - number of bytes in the digest
const Length = 32

// Digest - type for a digest
//
// stored as a fixed byte array, represented as hex text for JSON
// encoding; used for location hashes and resource metadata hashes
type Digest [Length]byte

// NewDigest - create a digest from a byte slice
func NewDigest(record []byte) Digest {
	return Digest(sha3.Sum256(record))
}

// DigestFromBytes - convert an exact length byte slice to a digest
func DigestFromBytes(buffer []byte) (Digest, error) {
	var digest Digest
	if Length != len(buffer) {
		return digest, fault.InvalidDnaLength
	}
	copy(digest[:], buffer)
	return digest, nil
}

// Bytes - byte slice of the digest
func (digest Digest) Bytes() []byte {
	return digest[:]
}

// IsZero - true if digest has not been set
func (digest Digest) IsZero() bool {
	return Digest{} == digest
}

// String - convert a binary digest to hex string for use by the fmt package (for %s)
func (digest Digest) String() string {
	return hex.EncodeToString(digest[:])
}

// GoString - convert a binary digest to hex string for use by the fmt package (for %#v)
func (digest Digest) GoString() string {
	return "<SHA3-256:" + hex.EncodeToString(digest[:]) + ">"
}

// Scan - convert a hex representation to a digest for use by the format package scan routines
func (digest *Digest) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(c rune) bool {
		if c >= '0' && c <= '9' {
			return true
		}
		if c >= 'A' && c <= 'F' {
			return true
		}
		if c >= 'a' && c <= 'f' {
			return true
		}
		return false
	})
	if nil != err {
		return err
	}
	buffer := make([]byte, hex.DecodedLen(len(token)))
	byteCount, err := hex.Decode(buffer, token)
	if nil != err {
		return err
	}
	if Length != byteCount {
		return fault.InvalidDnaLength
	}

	copy(digest[:], buffer)
	return nil
}

// MarshalText - convert digest to hex text
func (digest Digest) MarshalText() ([]byte, error) {
	size := hex.EncodedLen(len(digest))
	buffer := make([]byte, size)
	hex.Encode(buffer, digest[:])
	return buffer, nil
}

// UnmarshalText - convert hex text into a digest
func (digest *Digest) UnmarshalText(s []byte) error {
	buffer := make([]byte, hex.DecodedLen(len(s)))
	byteCount, err := hex.Decode(buffer, s)
	if nil != err {
		return err
	}
	if Length != byteCount {
		return fault.InvalidDnaLength
	}
	copy(digest[:], buffer)
	return nil
}
