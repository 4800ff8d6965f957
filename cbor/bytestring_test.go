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

package cbor

import (
	"bytes"
	"encoding/json"
	"testing"
)

// Test the String method to ensure it properly converts ByteString to hex.
func TestByteString_String(t *testing.T) {
	data := []byte("blinklabs") // "blinklabs" as bytes
	bs := NewByteString(data)

	expected := "626c696e6b6c616273" // "blinklabs" in hex
	actual := bs.String()

	if actual != expected {
		t.Errorf("expected %s but got %s", expected, actual)
	}
}

// Test the MarshalJSON method to ensure it properly marshals ByteString to JSON as hex.
func TestByteString_MarshalJSON(t *testing.T) {
	bs := NewByteString([]byte("blinklabs"))

	jsonData, err := json.Marshal(bs)
	if err != nil {
		t.Fatalf("failed to marshal ByteString: %v", err)
	}

	expectedJSON := `"626c696e6b6c616273"`
	if string(jsonData) != expectedJSON {
		t.Errorf("expected %s but got %s", expectedJSON, string(jsonData))
	}
}

func TestByteString_CborRoundTrip(t *testing.T) {
	bs := NewByteString([]byte{0xde, 0xad, 0xbe, 0xef})
	cborData, err := Encode(bs)
	if err != nil {
		t.Fatalf("failed to encode ByteString: %v", err)
	}
	if !bytes.Equal(cborData, []byte{0x44, 0xde, 0xad, 0xbe, 0xef}) {
		t.Fatalf("unexpected CBOR: %x", cborData)
	}
	var decoded ByteString
	if _, err := Decode(cborData, &decoded); err != nil {
		t.Fatalf("failed to decode ByteString: %v", err)
	}
	if decoded != bs {
		t.Errorf("expected %s but got %s", bs, decoded)
	}
}
