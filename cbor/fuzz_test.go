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

import "testing"

func FuzzDecodeValue(f *testing.F) {
	f.Add([]byte{0xa0})                               // empty map
	f.Add([]byte{0x80})                               // empty array
	f.Add([]byte{0xbf, 0xff})                         // indefinite map
	f.Add([]byte{0x9f, 0xff})                         // indefinite array
	f.Add([]byte{0x00})                               // integer 0
	f.Add([]byte{0x3a, 0x00, 0x01, 0x86, 0x9f})       // negative integer -100000
	f.Add([]byte{0x44, 0x01, 0x02, 0x03, 0x04})       // bytestring
	f.Add([]byte{0x65, 0x68, 0x65, 0x6c, 0x6c, 0x6f}) // "hello"
	f.Add([]byte{0xf5})                               // true
	f.Add([]byte{0xf6})                               // null
	f.Add([]byte{0xd8, 0x25, 0x41, 0x01})             // 37(h'01')
	f.Add([]byte{0xa1, 0x81, 0x00, 0x00})             // {[0]: 0}
	f.Add([]byte{0xd9, 0x01, 0x30, 0xa1, 0x01, 0x80}) // 304({1: []})

	f.Fuzz(func(t *testing.T, data []byte) {
		v, err := DecodeValue(data)
		if err != nil {
			return
		}
		// Walking a decoded value must never panic
		walkValue(v)
	})
}

func walkValue(v Value) {
	_ = v.Kind()
	if items, err := v.Array(); err == nil {
		for _, item := range items {
			walkValue(item)
		}
	}
	if m, err := v.Map(); err == nil {
		for k := int64(0); k < 16; k++ {
			if entry, ok := m.ByInteger(k); ok {
				walkValue(entry)
			}
		}
	}
	if _, content, err := v.TagContent(); err == nil {
		walkValue(content)
	}
}
