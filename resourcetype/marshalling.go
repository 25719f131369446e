// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Open MicroGrid Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package resourcetype

// MarshalText - convert a resource type into JSON
func (resourceType ResourceType) MarshalText() ([]byte, error) {
	return []byte(resourceType.String()), nil
}

// UnmarshalText - convert resource type string to an enumeration value from JSON
func (resourceType *ResourceType) UnmarshalText(s []byte) error {
	r, err := fromString(string(s))
	if nil != err {
		return err
	}
	*resourceType = r
	return nil
}
