// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Open MicroGrid Contributors
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package digest_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/openmicrogrid/gridledgerd/digest"
)

// SHA3-256 of the empty string
const emptyHex = "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a"

func TestNewDigest(t *testing.T) {
	d := digest.NewDigest([]byte{})
	if emptyHex != d.String() {
		t.Fatalf("digest: expected: %s  actual: %s", emptyHex, d)
	}
}

func TestScan(t *testing.T) {
	var d digest.Digest
	n, err := fmt.Sscan(emptyHex, &d)
	if nil != err {
		t.Fatalf("scan error: %s", err)
	}
	if 1 != n {
		t.Fatalf("scanned %d items, expected 1", n)
	}
	if emptyHex != d.String() {
		t.Fatalf("digest: expected: %s  actual: %s", emptyHex, d)
	}
}

func TestMarshalling(t *testing.T) {
	original := digest.NewDigest([]byte("solar-array-7"))

	buffer, err := json.Marshal(original)
	if nil != err {
		t.Fatalf("marshal error: %s", err)
	}

	var restored digest.Digest
	err = json.Unmarshal(buffer, &restored)
	if nil != err {
		t.Fatalf("unmarshal error: %s", err)
	}

	if original != restored {
		t.Fatalf("digest mismatch: expected: %s  actual: %s", original, restored)
	}
}

func TestDigestFromBytes(t *testing.T) {
	_, err := digest.DigestFromBytes([]byte("short"))
	if nil == err {
		t.Fatal("unexpected success with truncated digest")
	}

	d := digest.NewDigest([]byte("x"))
	restored, err := digest.DigestFromBytes(d.Bytes())
	if nil != err {
		t.Fatalf("from bytes error: %s", err)
	}
	if d != restored {
		t.Fatal("digest roundtrip mismatch")
	}
}
