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
	"encoding/binary"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

const (
	// version(4) + depth(1) + parent fingerprint(4) + child index(4) + chain code(32) + key(33)
	serializedKeyLength = 78
	checksumLength      = 4
)

// BIP32Key serializes an HD key in the legacy extended key format using the
// mainnet version bytes. Missing values are zero-filled and no validation is
// performed on the key material
func BIP32Key(key CryptoHDKey) string {
	payload := make([]byte, 0, serializedKeyLength+checksumLength)

	version := chaincfg.MainNetParams.HDPublicKeyID
	if key.IsMaster() || key.IsPrivateKey() {
		version = chaincfg.MainNetParams.HDPrivateKeyID
	}
	payload = append(payload, version[:]...)

	var depth uint8
	var childIndex uint32
	if origin, ok := key.Origin(); ok && !key.IsMaster() {
		components := origin.components
		depth = uint8(len(components)) // #nosec G115
		if len(components) > 0 {
			childIndex, _ = components[len(components)-1].CanonicalIndex()
		}
	}
	payload = append(payload, depth)

	parentFingerprint, _ := key.ParentFingerprint()
	payload = append(payload, parentFingerprint[:]...)
	payload = binary.BigEndian.AppendUint32(payload, childIndex)

	chainCode, _ := key.ChainCode()
	payload = append(payload, fixedWidth(chainCode, chainCodeLength)...)
	payload = append(payload, fixedWidth(key.KeyData(), hdKeyLength)...)

	checksum := chainhash.DoubleHashB(payload)[:checksumLength]
	payload = append(payload, checksum...)
	return base58.Encode(payload)
}

// ExtendedKey parses the serialized form of key for use with key derivation
func ExtendedKey(key CryptoHDKey) (*hdkeychain.ExtendedKey, error) {
	ret, err := hdkeychain.NewKeyFromString(BIP32Key(key))
	if err != nil {
		return nil, fmt.Errorf("parse extended key: %w", err)
	}
	return ret, nil
}

// fixedWidth truncates or zero-pads data to size bytes
func fixedWidth(data []byte, size int) []byte {
	ret := make([]byte, size)
	copy(ret, data)
	return ret
}
