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

package test

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// DecodeHexString is a helper function for tests that decodes hex strings. It doesn't return
// an error value, which makes it usable inline.
func DecodeHexString(hexData string) []byte {
	// Strip off any leading/trailing whitespace in hex string
	hexData = strings.TrimSpace(hexData)
	decoded, err := hex.DecodeString(hexData)
	if err != nil {
		panic(fmt.Sprintf("error decoding hex: %s", err))
	}
	return decoded
}

// Fingerprint decodes an 8 character hex string into a 4-byte fingerprint
func Fingerprint(hexData string) [4]byte {
	var ret [4]byte
	decoded := DecodeHexString(hexData)
	if len(decoded) != len(ret) {
		panic(fmt.Sprintf("fingerprint must be 4 bytes, got %d", len(decoded)))
	}
	copy(ret[:], decoded)
	return ret
}

// RequestID decodes a 16-byte request id in hex form (dashes allowed)
func RequestID(hexData string) []byte {
	decoded := DecodeHexString(strings.ReplaceAll(hexData, "-", ""))
	if len(decoded) != 16 {
		panic(fmt.Sprintf("request id must be 16 bytes, got %d", len(decoded)))
	}
	return decoded
}
