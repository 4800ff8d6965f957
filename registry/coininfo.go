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
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/lightningnetwork/lnd/fn/v2"
)

// CoinType is a SLIP-44 coin type
type CoinType uint32

const (
	CoinTypeBitcoin  CoinType = 0
	CoinTypeEthereum CoinType = 60
	CoinTypeSolana   CoinType = 501
	CoinTypeCardano  CoinType = 1815
)

type Network uint8

const (
	NetworkMainNet Network = 0
	NetworkTestNet Network = 1
)

func (n Network) String() string {
	switch n {
	case NetworkMainNet:
		return "mainnet"
	case NetworkTestNet:
		return "testnet"
	default:
		return "unknown"
	}
}

// Params returns the bitcoin network parameters matching the network
func (n Network) Params() *chaincfg.Params {
	if n == NetworkTestNet {
		return &chaincfg.TestNet3Params
	}
	return &chaincfg.MainNetParams
}

var (
	fieldCoinInfoType    = Field{Key: 1, Name: "coin type"}
	fieldCoinInfoNetwork = Field{Key: 2, Name: "network"}
)

// CryptoCoinInfo describes the coin and network a key is used for
type CryptoCoinInfo struct {
	coinType fn.Option[CoinType]
	network  fn.Option[Network]
}

func NewCryptoCoinInfo(
	coinType fn.Option[CoinType],
	network fn.Option[Network],
) *CryptoCoinInfo {
	return &CryptoCoinInfo{
		coinType: coinType,
		network:  network,
	}
}

// CoinType returns the coin type, defaulting to bitcoin
func (c *CryptoCoinInfo) CoinType() CoinType {
	return c.coinType.UnwrapOr(CoinTypeBitcoin)
}

// Network returns the network, defaulting to mainnet
func (c *CryptoCoinInfo) Network() Network {
	return c.network.UnwrapOr(NetworkMainNet)
}

func (*CryptoCoinInfo) RegistryType() RegistryType {
	return TypeCryptoCoinInfo
}

func (c *CryptoCoinInfo) ToCbor() any {
	ret := CborMap{}
	SetOptionFunc(ret, fieldCoinInfoType, c.coinType, func(v CoinType) any {
		return uint64(v)
	})
	SetOptionFunc(ret, fieldCoinInfoNetwork, c.network, func(v Network) any {
		return uint64(v)
	})
	return ret
}

func (c *CryptoCoinInfo) ToBytes() ([]byte, error) {
	return Encode(c)
}

func CryptoCoinInfoFromCbor(v cbor.Value) (*CryptoCoinInfo, error) {
	fields, err := NewFieldMap(TypeCryptoCoinInfo, v)
	if err != nil {
		return nil, err
	}
	coinType, err := fields.Uint32(fieldCoinInfoType)
	if err != nil {
		return nil, err
	}
	network, err := Optional(fields, fieldCoinInfoNetwork, cbor.KindInteger, decodeNetwork)
	if err != nil {
		return nil, err
	}
	return &CryptoCoinInfo{
		coinType: fn.MapOption(func(v uint32) CoinType { return CoinType(v) })(coinType),
		network:  network,
	}, nil
}

func CryptoCoinInfoFromBytes(data []byte) (*CryptoCoinInfo, error) {
	return Decode(data, CryptoCoinInfoFromCbor)
}

// decodeNetwork rejects unknown networks instead of falling back to mainnet
func decodeNetwork(v cbor.Value) (Network, error) {
	n, err := v.Integer()
	if err != nil {
		return 0, err
	}
	switch n {
	case int64(NetworkMainNet), int64(NetworkTestNet):
		return Network(n), nil
	}
	return 0, &InvalidEnumValueError{Enum: "network", Value: n}
}
