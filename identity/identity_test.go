// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Open MicroGrid Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package identity_test

import (
	"encoding/json"
	"testing"

	"github.com/openmicrogrid/gridledgerd/fault"
	"github.com/openmicrogrid/gridledgerd/identity"
)

func TestBase58Roundtrip(t *testing.T) {
	var raw [identity.Length]byte
	for i := range raw {
		raw[i] = byte(i*7 + 3)
	}

	original, err := identity.PrincipalFromBytes(raw[:])
	if nil != err {
		t.Fatalf("from bytes error: %s", err)
	}

	restored, err := identity.PrincipalFromBase58(original.String())
	if nil != err {
		t.Fatalf("from base58 error: %s", err)
	}
	if original != restored {
		t.Fatalf("principal mismatch: expected: %s  actual: %s", original, restored)
	}
}

func TestChecksum(t *testing.T) {
	var raw [identity.Length]byte
	raw[0] = 0x42
	principal, _ := identity.PrincipalFromBytes(raw[:])

	text := principal.String()

	// corrupt one character of the text form
	corrupt := []byte(text)
	if corrupt[3] == '2' {
		corrupt[3] = '3'
	} else {
		corrupt[3] = '2'
	}

	_, err := identity.PrincipalFromBase58(string(corrupt))
	if nil == err {
		t.Fatal("unexpected success with corrupted text")
	}
}

func TestFromBytesLength(t *testing.T) {
	_, err := identity.PrincipalFromBytes([]byte("too short"))
	if fault.InvalidPrincipalLength != err {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestMarshalling(t *testing.T) {
	var raw [identity.Length]byte
	raw[31] = 0xff
	original, _ := identity.PrincipalFromBytes(raw[:])

	buffer, err := json.Marshal(original)
	if nil != err {
		t.Fatalf("marshal error: %s", err)
	}

	var restored identity.Principal
	err = json.Unmarshal(buffer, &restored)
	if nil != err {
		t.Fatalf("unmarshal error: %s", err)
	}
	if original != restored {
		t.Fatal("principal roundtrip mismatch")
	}
}
