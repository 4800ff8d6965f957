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

package registry

import (
	"github.com/blinklabs-io/ur-registry/cbor"
	"github.com/google/uuid"
)

// UUID is a standalone request id. Inside other items the same value appears
// as a #37 tagged byte string
type UUID struct {
	id uuid.UUID
}

func NewUUID(id uuid.UUID) *UUID {
	return &UUID{id: id}
}

func (u *UUID) UUID() uuid.UUID {
	return u.id
}

func (u *UUID) String() string {
	return u.id.String()
}

func (*UUID) RegistryType() RegistryType {
	return TypeUUID
}

func (u *UUID) ToCbor() any {
	return u.id[:]
}

func (u *UUID) ToBytes() ([]byte, error) {
	return Encode(u)
}

func UUIDFromCbor(v cbor.Value) (*UUID, error) {
	data, err := v.Bytes()
	if err != nil {
		return nil, &FieldError{Type: TypeUUID.Name, Err: err}
	}
	if err := CheckLength("request id", data, requestIDLength); err != nil {
		return nil, &FieldError{Type: TypeUUID.Name, Err: err}
	}
	id, err := uuid.FromBytes(data)
	if err != nil {
		return nil, &FieldError{Type: TypeUUID.Name, Err: err}
	}
	return &UUID{id: id}, nil
}

func UUIDFromBytes(data []byte) (*UUID, error) {
	return Decode(data, UUIDFromCbor)
}
