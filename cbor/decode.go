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
	"errors"
	"sync"

	_cbor "github.com/fxamacker/cbor/v2"
)

var (
	cachedDecMode     _cbor.DecMode
	cachedDecModeErr  error
	cachedDecModeOnce sync.Once
)

// getDecMode returns a cached DecMode, initializing it on first use.
// Uses sync.Once for thread-safe lazy initialization.
// Returns the cached error if initialization failed.
func getDecMode() (_cbor.DecMode, error) {
	cachedDecModeOnce.Do(func() {
		decOptions := _cbor.DecOptions{
			// Registry maps are keyed by unique small integers
			DupMapKey: _cbor.DupMapKeyEnforcedAPF,
			// Registry items are shallow, but keep some headroom for nested paths
			MaxNestedLevels: 64,
		}
		cachedDecMode, cachedDecModeErr = decOptions.DecMode()
	})
	return cachedDecMode, cachedDecModeErr
}

// Decode decodes the CBOR data into dest and returns the number of bytes read
func Decode(dataBytes []byte, dest any) (int, error) {
	data := bytes.NewReader(dataBytes)
	decMode, err := getDecMode()
	if err != nil {
		return 0, err
	}
	if decMode == nil {
		return 0, errors.New("CBOR decoder mode not initialized")
	}
	dec := decMode.NewDecoder(data)
	err = dec.Decode(dest)
	return dec.NumBytesRead(), err
}

// DecodeValue parses a complete CBOR item into a Value. Any parse failure,
// including trailing data after the item, is reported as a MalformedCborError
func DecodeValue(data []byte) (Value, error) {
	if len(data) == 0 {
		return Value{}, &MalformedCborError{Err: errors.New("empty input")}
	}
	var ret Value
	n, err := Decode(data, &ret)
	if err != nil {
		return Value{}, &MalformedCborError{Err: err}
	}
	if n != len(data) {
		return Value{}, &MalformedCborError{
			Err: errors.New("unexpected trailing data after CBOR item"),
		}
	}
	return ret, nil
}
