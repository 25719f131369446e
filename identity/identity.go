// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Open MicroGrid Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package identity

import (
	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"

	"github.com/openmicrogrid/gridledgerd/fault"
)

// Length - number of bytes in a principal
const Length = 32

// number of checksum bytes appended to the text form
const checksumLength = 4

// Principal - the authenticated caller identity for every operation
//
// the execution environment authenticates the caller and supplies
// its principal; the ledger only compares principals for equality
type Principal [Length]byte

// PrincipalFromBytes - convert an exact length byte slice to a principal
func PrincipalFromBytes(buffer []byte) (Principal, error) {
	var principal Principal
	if Length != len(buffer) {
		return principal, fault.InvalidPrincipalLength
	}
	copy(principal[:], buffer)
	return principal, nil
}

// PrincipalFromBase58 - decode the checksummed text form
func PrincipalFromBase58(s string) (Principal, error) {
	var principal Principal

	buffer, err := base58.Decode(s)
	if nil != err {
		return principal, fault.InvalidPrincipal
	}
	if Length+checksumLength != len(buffer) {
		return principal, fault.InvalidPrincipalLength
	}

	checksum := sha3.Sum256(buffer[:Length])
	for i := 0; i < checksumLength; i += 1 {
		if checksum[i] != buffer[Length+i] {
			return principal, fault.PrincipalChecksum
		}
	}

	copy(principal[:], buffer[:Length])
	return principal, nil
}

// Bytes - byte slice of the principal
func (principal Principal) Bytes() []byte {
	return principal[:]
}

// IsZero - true if principal has not been set
func (principal Principal) IsZero() bool {
	return Principal{} == principal
}

// String - base58 encoding of the principal with checksum tail
func (principal Principal) String() string {
	checksum := sha3.Sum256(principal[:])
	buffer := append([]byte{}, principal[:]...)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// GoString - representation for debugging
func (principal Principal) GoString() string {
	return "<Principal:" + principal.String() + ">"
}

// MarshalText - convert a principal to its base58 JSON form
func (principal Principal) MarshalText() ([]byte, error) {
	return []byte(principal.String()), nil
}

// UnmarshalText - convert base58 text into a principal
func (principal *Principal) UnmarshalText(s []byte) error {
	p, err := PrincipalFromBase58(string(s))
	if nil != err {
		return err
	}
	*principal = p
	return nil
}
