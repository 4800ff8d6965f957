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

// Package transport defines the contract between registry items and the
// multi-part transport that carries their bytes over constrained channels,
// such as animated QR codes.
//
// The fountain-coded transport used by wallets is provided by the caller
// through EncoderFactory and Decoder. A plain sequential framing is included
// for tests and local tooling.
package transport

import (
	"fmt"

	"github.com/blinklabs-io/ur-registry/registry"
)

// DefaultMaxFragmentLength is the fragment size used when none is given
const DefaultMaxFragmentLength = 400

// MessageSource provides an assembled payload
type MessageSource interface {
	// Message returns the assembled payload, or nil when no payload has
	// been assembled yet
	Message() ([]byte, error)
}

// Decoder reassembles a payload from the parts of a multi-part message
type Decoder interface {
	MessageSource
	// Receive feeds a single part. It fails on malformed part syntax
	Receive(part string) error
	IsComplete() bool
}

// Encoder splits a payload into parts
type Encoder interface {
	// NextPart returns the next part of a deterministic cycle that may be
	// polled indefinitely
	NextPart() (string, error)
	// SinglePart returns the whole payload as one part. It is only valid
	// when FragmentCount is 1
	SinglePart() (string, error)
	FragmentCount() int
}

// EncoderFactory creates an Encoder for a payload of the named registry type
type EncoderFactory func(payload []byte, maxFragmentLength int, typeName string) (Encoder, error)

// NewItemEncoder serializes item and hands it to factory. A maxFragmentLength
// of zero selects DefaultMaxFragmentLength
func NewItemEncoder(
	item registry.Item,
	maxFragmentLength int,
	factory EncoderFactory,
) (Encoder, error) {
	if maxFragmentLength <= 0 {
		maxFragmentLength = DefaultMaxFragmentLength
	}
	data, err := item.ToBytes()
	if err != nil {
		return nil, err
	}
	enc, err := factory(data, maxFragmentLength, item.RegistryType().Name)
	if err != nil {
		return nil, fmt.Errorf("create encoder for %s: %w", item.RegistryType().Name, err)
	}
	return enc, nil
}

// NextPart returns the next part to display. A payload that fits in a single
// fragment is always returned as a single part
func NextPart(enc Encoder) (string, error) {
	if enc.FragmentCount() == 1 {
		return enc.SinglePart()
	}
	return enc.NextPart()
}
