// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Open MicroGrid Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package resourcetype

import (
	"fmt"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/openmicrogrid/gridledgerd/fault"
)

// ResourceType - resource class enumeration
type ResourceType uint64

// possible resource type values
const (
	Nothing      ResourceType = iota // this must be the first value
	Energy       ResourceType = iota
	Water        ResourceType = iota
	Data         ResourceType = iota
	maximumValue ResourceType = iota // this must be the last value
	First        ResourceType = Nothing + 1
	Last         ResourceType = maximumValue - 1
	Count        int          = int(Last) // count of resource types
)

// internal conversion
func toString(r ResourceType) ([]byte, error) {
	switch r {
	case Nothing:
		return []byte{}, nil
	case Energy:
		return []byte("energy"), nil
	case Water:
		return []byte("water"), nil
	case Data:
		return []byte("data"), nil
	default:
		return []byte{}, fault.InvalidResource
	}
}

// convert a string to a resource type
func fromString(in string) (ResourceType, error) {
	switch strings.ToLower(in) {
	case "":
		return Nothing, nil
	case "energy":
		return Energy, nil
	case "water":
		return Water, nil
	case "data":
		return Data, nil
	default:
		return Nothing, fault.InvalidResource
	}
}

// String - convert a resource type to its string name
func (resourceType ResourceType) String() string {
	s, err := toString(resourceType)
	if nil != err {
		logger.Panicf("invalid resource type enumeration: %d", resourceType)
	}
	return string(s)
}

// GoString - show both enum value and name, for debugging
func (resourceType ResourceType) GoString() string {
	return fmt.Sprintf("<ResourceType#%d:%q>", uint64(resourceType), resourceType.String())
}

// Scan - convert a resource type string
func (resourceType *ResourceType) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(c rune) bool {
		if c >= 'A' && c <= 'Z' {
			return true
		}
		if c >= 'a' && c <= 'z' {
			return true
		}
		return false
	})
	if nil != err {
		return err
	}
	parsed, err := fromString(string(token))
	if nil != err {
		return err
	}

	*resourceType = parsed
	return nil
}

// IsValid - valid resource type if in range of First to Last
// Nothing is not considered as valid
func (resourceType ResourceType) IsValid() bool {
	return resourceType >= First && resourceType <= Last
}

// Uint64 - numeric value for record packing
func (resourceType ResourceType) Uint64() uint64 {
	return uint64(resourceType)
}

// Index - convert a valid resource type to a zero based array index
func (resourceType ResourceType) Index() int {
	if !resourceType.IsValid() {
		logger.Panicf("resourcetype.Index: invalid resource type: %d", resourceType)
	}
	return int(resourceType - First) // zero based index
}
