// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Open MicroGrid Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package resourcetype_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/openmicrogrid/gridledgerd/resourcetype"
)

func TestValidity(t *testing.T) {
	items := []struct {
		resourceType resourcetype.ResourceType
		valid        bool
	}{
		{resourcetype.Nothing, false},
		{resourcetype.Energy, true},
		{resourcetype.Water, true},
		{resourcetype.Data, true},
		{resourcetype.Last + 1, false},
	}
	for i, item := range items {
		if item.valid != item.resourceType.IsValid() {
			t.Errorf("%d: validity mismatch for: %d", i, item.resourceType)
		}
	}
}

func TestScan(t *testing.T) {
	items := []struct {
		text     string
		expected resourcetype.ResourceType
	}{
		{"energy", resourcetype.Energy},
		{"Water", resourcetype.Water},
		{"DATA", resourcetype.Data},
	}
	for i, item := range items {
		var r resourcetype.ResourceType
		n, err := fmt.Sscan(item.text, &r)
		if nil != err {
			t.Fatalf("%d: scan error: %s", i, err)
		}
		if 1 != n || item.expected != r {
			t.Errorf("%d: scanned: %v  expected: %v", i, r, item.expected)
		}
	}

	var r resourcetype.ResourceType
	_, err := fmt.Sscan("plasma", &r)
	if nil == err {
		t.Fatal("unexpected success scanning invalid resource type")
	}
}

func TestMarshalling(t *testing.T) {
	buffer, err := json.Marshal(resourcetype.Energy)
	if nil != err {
		t.Fatalf("marshal error: %s", err)
	}
	if `"energy"` != string(buffer) {
		t.Fatalf("unexpected JSON: %s", buffer)
	}

	var restored resourcetype.ResourceType
	err = json.Unmarshal(buffer, &restored)
	if nil != err {
		t.Fatalf("unmarshal error: %s", err)
	}
	if resourcetype.Energy != restored {
		t.Fatalf("roundtrip mismatch: %v", restored)
	}
}
