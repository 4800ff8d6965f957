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
	"bytes"
	"fmt"

	"github.com/blinklabs-io/ur-registry/cbor"
	"github.com/btcsuite/btcd/btcutil/psbt"
)

// CryptoPSBT carries a serialized partially signed bitcoin transaction
type CryptoPSBT struct {
	psbt []byte
}

func NewCryptoPSBT(data []byte) *CryptoPSBT {
	return &CryptoPSBT{psbt: CopyBytes(data)}
}

// NewCryptoPSBTFromPacket serializes packet into a new CryptoPSBT
func NewCryptoPSBTFromPacket(packet *psbt.Packet) (*CryptoPSBT, error) {
	var buf bytes.Buffer
	if err := packet.Serialize(&buf); err != nil {
		return nil, fmt.Errorf("serialize psbt: %w", err)
	}
	return &CryptoPSBT{psbt: buf.Bytes()}, nil
}

func (p *CryptoPSBT) PSBT() []byte {
	return CopyBytes(p.psbt)
}

// Packet parses the carried bytes as a binary PSBT
func (p *CryptoPSBT) Packet() (*psbt.Packet, error) {
	packet, err := psbt.NewFromRawBytes(bytes.NewReader(p.psbt), false)
	if err != nil {
		return nil, fmt.Errorf("parse psbt: %w", err)
	}
	return packet, nil
}

func (*CryptoPSBT) RegistryType() RegistryType {
	return TypeCryptoPSBT
}

func (p *CryptoPSBT) ToCbor() any {
	return p.psbt
}

func (p *CryptoPSBT) ToBytes() ([]byte, error) {
	return Encode(p)
}

func CryptoPSBTFromCbor(v cbor.Value) (*CryptoPSBT, error) {
	data, err := v.Bytes()
	if err != nil {
		return nil, &FieldError{Type: TypeCryptoPSBT.Name, Err: err}
	}
	return &CryptoPSBT{psbt: data}, nil
}

func CryptoPSBTFromBytes(data []byte) (*CryptoPSBT, error) {
	return Decode(data, CryptoPSBTFromCbor)
}
