// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Open MicroGrid Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/openmicrogrid/gridledgerd/digest"
	"github.com/openmicrogrid/gridledgerd/fault"
	"github.com/openmicrogrid/gridledgerd/identity"
	"github.com/openmicrogrid/gridledgerd/resourcetype"
)

var (
	errRequiredConnect  = fault.InvalidError("connect is required")
	errRequiredIdentity = fault.InvalidError("identity is required")
	errRequiredGrid     = fault.InvalidError("grid identifier is required")
	errRequiredResource = fault.InvalidError("resource identifier is required")
	errRequiredSeason   = fault.InvalidError("season identifier is required")
	errRequiredAmount   = fault.InvalidError("amount is required")
	errRequiredCapacity = fault.InvalidError("capacity is required")
	errRequiredLocation = fault.InvalidError("location hash is required")
	errRequiredType     = fault.InvalidError("resource type is required")
)

// connect is required
func checkConnect(connect string) (string, error) {
	if "" == connect {
		return "", errRequiredConnect
	}

	return connect, nil
}

// identity is optional, blank yields the zero principal
func checkOptionalPrincipal(s string) (identity.Principal, error) {
	if "" == s {
		return identity.Principal{}, nil
	}
	return identity.PrincipalFromBase58(s)
}

// a non-zero principal is required for write operations
func checkRequiredIdentity(m *metadata) (identity.Principal, error) {
	if m.identity.IsZero() {
		return identity.Principal{}, errRequiredIdentity
	}
	return m.identity, nil
}

// principal from a flag, default to the global identity
func checkPrincipalWithDefault(s string, m *metadata) (identity.Principal, error) {
	if "" == s {
		return checkRequiredIdentity(m)
	}
	return identity.PrincipalFromBase58(s)
}

// a non-zero identifier is required
func checkIdentifier(n uint64, missing error) (uint64, error) {
	if 0 == n {
		return 0, missing
	}
	return n, nil
}

// location/metadata hash from hex text
func checkDigest(s string, required bool) (digest.Digest, error) {
	var d digest.Digest
	if "" == s {
		if required {
			return d, errRequiredLocation
		}
		return d, nil
	}
	if err := d.UnmarshalText([]byte(s)); nil != err {
		return d, err
	}
	return d, nil
}

// resource type from its string name
func checkResourceType(s string) (resourcetype.ResourceType, error) {
	var r resourcetype.ResourceType
	if "" == s {
		return r, errRequiredType
	}
	if err := r.UnmarshalText([]byte(s)); nil != err {
		return r, err
	}
	return r, nil
}
