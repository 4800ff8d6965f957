// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cbor_test

import (
	"encoding/hex"
	"reflect"
	"testing"

	"github.com/blinklabs-io/ur-registry/cbor"
)

type decodeTestDefinition struct {
	CborHex   string
	Object    any
	BytesRead int
}

var decodeTests = []decodeTestDefinition{
	// Simple list of numbers
	{
		CborHex: "83010203",
		Object:  []any{uint64(1), uint64(2), uint64(3)},
	},
	// Multiple CBOR objects
	{
		CborHex:   "81018102",
		Object:    []any{uint64(1)},
		BytesRead: 2,
	},
	// Negative integer
	{
		CborHex: "3903e7",
		Object:  int64(-1000),
	},
}

func TestDecode(t *testing.T) {
	for _, test := range decodeTests {
		cborData, err := hex.DecodeString(test.CborHex)
		if err != nil {
			t.Fatalf("failed to decode CBOR hex: %s", err)
		}
		var dest any
		bytesRead, err := cbor.Decode(cborData, &dest)
		if err != nil {
			t.Fatalf("failed to decode CBOR: %s", err)
		}
		if test.BytesRead > 0 {
			if bytesRead != test.BytesRead {
				t.Fatalf("expected to read %d bytes, read %d instead", test.BytesRead, bytesRead)
			}
		}
		if !reflect.DeepEqual(dest, test.Object) {
			t.Fatalf("CBOR did not decode to expected object\n  got: %#v\n  wanted: %#v", dest, test.Object)
		}
	}
}

func TestDecodeDuplicateMapKey(t *testing.T) {
	cborData, _ := hex.DecodeString("a201010102")
	var dest map[uint64]uint64
	if _, err := cbor.Decode(cborData, &dest); err == nil {
		t.Fatalf("did not get expected error for duplicate map key")
	}
}

func TestDecodeValueNested(t *testing.T) {
	// 303({3: h'01', 6: 304({1: [44, true]})})
	cborData, _ := hex.DecodeString("d9012fa203410106d90130a10182182cf5")
	v, err := cbor.DecodeValue(cborData)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	content, err := v.Tag(303)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	m, err := content.Map()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	origin, ok := m.ByInteger(6)
	if !ok {
		t.Fatalf("did not find origin entry")
	}
	number, _, err := origin.TagContent()
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if number != 304 {
		t.Fatalf("did not get expected tag number, got %d, wanted 304", number)
	}
}
