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

import "slices"

// RegistryType identifies a registry item by its wire name and CBOR tag
type RegistryType struct {
	Name string
	Tag  uint64
}

func (t RegistryType) String() string {
	return t.Name
}

var (
	TypeUUID                = RegistryType{Name: "uuid", Tag: 37}
	TypeCryptoHDKey         = RegistryType{Name: "crypto-hdkey", Tag: 303}
	TypeCryptoKeyPath       = RegistryType{Name: "crypto-keypath", Tag: 304}
	TypeCryptoCoinInfo      = RegistryType{Name: "crypto-coin-info", Tag: 305}
	TypeCryptoECKey         = RegistryType{Name: "crypto-eckey", Tag: 306}
	TypeCryptoOutput        = RegistryType{Name: "crypto-output", Tag: 308}
	TypeCryptoPSBT          = RegistryType{Name: "crypto-psbt", Tag: 310}
	TypeCryptoAccount       = RegistryType{Name: "crypto-account", Tag: 311}
	TypeEthSignRequest      = RegistryType{Name: "eth-sign-request", Tag: 401}
	TypeEthSignature        = RegistryType{Name: "eth-signature", Tag: 402}
	TypeSolSignRequest      = RegistryType{Name: "sol-sign-request", Tag: 1101}
	TypeSolSignature        = RegistryType{Name: "sol-signature", Tag: 1102}
	TypeCryptoMultiAccounts = RegistryType{Name: "crypto-multi-accounts", Tag: 1103}

	TypeCardanoUTXO                                = RegistryType{Name: "cardano-utxo", Tag: 2201}
	TypeCardanoSignRequest                         = RegistryType{Name: "cardano-sign-request", Tag: 2202}
	TypeCardanoSignature                           = RegistryType{Name: "cardano-signature", Tag: 2203}
	TypeCardanoCertKey                             = RegistryType{Name: "cardano-cert-key", Tag: 2204}
	TypeCardanoSignDataRequest                     = RegistryType{Name: "cardano-sign-data-request", Tag: 2205}
	TypeCardanoSignDataSignature                   = RegistryType{Name: "cardano-sign-data-signature", Tag: 2206}
	TypeCardanoCatalystVotingRegistration          = RegistryType{Name: "cardano-catalyst-voting-registration", Tag: 2207}
	TypeCardanoCatalystVotingRegistrationSignature = RegistryType{Name: "cardano-catalyst-voting-registration-signature", Tag: 2208}
	TypeCardanoDelegation                          = RegistryType{Name: "cardano-delegation", Tag: 2209}
	TypeCardanoSignTxHashRequest                   = RegistryType{Name: "cardano-sign-tx-hash-request", Tag: 2210}
	TypeCardanoSignCip8DataRequest                 = RegistryType{Name: "cardano-sign-cip8-data-request", Tag: 2211}
	TypeCardanoSignCip8DataSignature               = RegistryType{Name: "cardano-sign-cip8-data-signature", Tag: 2212}
)

var registryTypes = []RegistryType{
	TypeUUID,
	TypeCryptoHDKey,
	TypeCryptoKeyPath,
	TypeCryptoCoinInfo,
	TypeCryptoECKey,
	TypeCryptoOutput,
	TypeCryptoPSBT,
	TypeCryptoAccount,
	TypeEthSignRequest,
	TypeEthSignature,
	TypeSolSignRequest,
	TypeSolSignature,
	TypeCryptoMultiAccounts,
	TypeCardanoUTXO,
	TypeCardanoSignRequest,
	TypeCardanoSignature,
	TypeCardanoCertKey,
	TypeCardanoSignDataRequest,
	TypeCardanoSignDataSignature,
	TypeCardanoCatalystVotingRegistration,
	TypeCardanoCatalystVotingRegistrationSignature,
	TypeCardanoDelegation,
	TypeCardanoSignTxHashRequest,
	TypeCardanoSignCip8DataRequest,
	TypeCardanoSignCip8DataSignature,
}

// Types returns the registry catalog ordered by tag
func Types() []RegistryType {
	return slices.Clone(registryTypes)
}

// LookupType finds a registry type by its wire name
func LookupType(name string) (RegistryType, bool) {
	for _, t := range registryTypes {
		if t.Name == name {
			return t, true
		}
	}
	return RegistryType{}, false
}

// LookupTag finds a registry type by its CBOR tag
func LookupTag(tag uint64) (RegistryType, bool) {
	for _, t := range registryTypes {
		if t.Tag == tag {
			return t, true
		}
	}
	return RegistryType{}, false
}
