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
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/blinklabs-io/ur-registry/cbor"
	"github.com/lightningnetwork/lnd/fn/v2"
)

// HardenedBit is added to the index of a hardened component to form its
// canonical index
const HardenedBit uint32 = 0x80000000

var (
	fieldKeyPathComponents        = Field{Key: 1, Name: "components"}
	fieldKeyPathSourceFingerprint = Field{Key: 2, Name: "source fingerprint"}
	fieldKeyPathDepth             = Field{Key: 3, Name: "depth"}
)

// PathComponent is a single derivation step. A component without an index is
// a wildcard
type PathComponent struct {
	index    fn.Option[uint32]
	hardened bool
}

// NewPathComponent returns a concrete component. The index must be below HardenedBit
func NewPathComponent(index uint32, hardened bool) (PathComponent, error) {
	if index&HardenedBit != 0 {
		return PathComponent{}, &InvalidPathComponentError{
			Component: strconv.FormatUint(uint64(index), 10),
			Err:       errors.New("most significant bit cannot be set"),
		}
	}
	return PathComponent{index: fn.Some(index), hardened: hardened}, nil
}

// NewWildcardComponent returns a component matching any index
func NewWildcardComponent(hardened bool) PathComponent {
	return PathComponent{index: fn.None[uint32](), hardened: hardened}
}

func (c PathComponent) Index() (uint32, bool) {
	return Option(c.index)
}

func (c PathComponent) IsWildcard() bool {
	return c.index.IsNone()
}

func (c PathComponent) IsHardened() bool {
	return c.hardened
}

// CanonicalIndex returns the index with HardenedBit added for hardened components
func (c PathComponent) CanonicalIndex() (uint32, bool) {
	idx, ok := c.Index()
	if !ok {
		return 0, false
	}
	if c.hardened {
		return idx + HardenedBit, true
	}
	return idx, true
}

func (c PathComponent) String() string {
	var ret string
	if idx, ok := c.Index(); ok {
		ret = strconv.FormatUint(uint64(idx), 10)
	} else {
		ret = "*"
	}
	if c.hardened {
		ret += "'"
	}
	return ret
}

// parsePathComponent parses "44", "44'", "*" or "*'"
func parsePathComponent(chunk string) (PathComponent, error) {
	body, hardened := strings.CutSuffix(chunk, "'")
	if body == "" {
		return PathComponent{}, &InvalidPathComponentError{Component: chunk}
	}
	if body == "*" {
		return NewWildcardComponent(hardened), nil
	}
	idx, err := strconv.ParseUint(body, 10, 32)
	if err != nil {
		return PathComponent{}, &InvalidPathComponentError{
			Component: chunk,
			Err:       err,
		}
	}
	component, err := NewPathComponent(uint32(idx), hardened)
	if err != nil {
		return PathComponent{}, &InvalidPathComponentError{
			Component: chunk,
			Err:       errors.Unwrap(err),
		}
	}
	return component, nil
}

// CryptoKeyPath is a derivation path with an optional source fingerprint and depth
type CryptoKeyPath struct {
	components        []PathComponent
	sourceFingerprint fn.Option[[4]byte]
	depth             fn.Option[uint32]
}

func NewCryptoKeyPath(
	components []PathComponent,
	sourceFingerprint fn.Option[[4]byte],
	depth fn.Option[uint32],
) *CryptoKeyPath {
	return &CryptoKeyPath{
		components:        slices.Clone(components),
		sourceFingerprint: sourceFingerprint,
		depth:             depth,
	}
}

// CryptoKeyPathFromPath parses a path string such as "m/44'/501'/0'/0'". The
// depth is left unset
func CryptoKeyPathFromPath(
	path string,
	sourceFingerprint fn.Option[[4]byte],
) (*CryptoKeyPath, error) {
	if rest, ok := strings.CutPrefix(path, "m/"); ok {
		path = rest
	} else if rest, ok := strings.CutPrefix(path, "M/"); ok {
		path = rest
	}
	chunks := strings.Split(path, "/")
	components := make([]PathComponent, 0, len(chunks))
	for _, chunk := range chunks {
		component, err := parsePathComponent(chunk)
		if err != nil {
			return nil, err
		}
		components = append(components, component)
	}
	return &CryptoKeyPath{
		components:        components,
		sourceFingerprint: sourceFingerprint,
		depth:             fn.None[uint32](),
	}, nil
}

func (k *CryptoKeyPath) Components() []PathComponent {
	return slices.Clone(k.components)
}

func (k *CryptoKeyPath) SourceFingerprint() ([4]byte, bool) {
	return Option(k.sourceFingerprint)
}

func (k *CryptoKeyPath) Depth() (uint32, bool) {
	return Option(k.depth)
}

// Path formats the components without an "m/" prefix. It returns false when
// there are no components
func (k *CryptoKeyPath) Path() (string, bool) {
	if len(k.components) == 0 {
		return "", false
	}
	parts := make([]string, len(k.components))
	for i, c := range k.components {
		parts[i] = c.String()
	}
	return strings.Join(parts, "/"), true
}

func (k *CryptoKeyPath) String() string {
	path, ok := k.Path()
	if !ok {
		return "m"
	}
	return "m/" + path
}

func (*CryptoKeyPath) RegistryType() RegistryType {
	return TypeCryptoKeyPath
}

func (k *CryptoKeyPath) ToCbor() any {
	components := make([]any, 0, len(k.components)*2)
	for _, c := range k.components {
		if idx, ok := c.Index(); ok {
			components = append(components, uint64(idx))
		} else {
			components = append(components, []any{})
		}
		components = append(components, c.hardened)
	}
	ret := CborMap{}
	ret.Set(fieldKeyPathComponents, components)
	SetOptionFunc(ret, fieldKeyPathSourceFingerprint, k.sourceFingerprint, func(v [4]byte) any {
		return FingerprintValue(v)
	})
	SetOption(ret, fieldKeyPathDepth, k.depth)
	return ret
}

func (k *CryptoKeyPath) ToBytes() ([]byte, error) {
	return Encode(k)
}

func CryptoKeyPathFromCbor(v cbor.Value) (*CryptoKeyPath, error) {
	fields, err := NewFieldMap(TypeCryptoKeyPath, v)
	if err != nil {
		return nil, err
	}
	ret := &CryptoKeyPath{}
	items, err := fields.Array(fieldKeyPathComponents)
	if err != nil {
		return nil, err
	}
	ret.components, err = decodePathComponents(items.UnwrapOr(nil))
	if err != nil {
		return nil, fields.Wrap(fieldKeyPathComponents, err)
	}
	if ret.sourceFingerprint, err = fields.Fingerprint(fieldKeyPathSourceFingerprint); err != nil {
		return nil, err
	}
	if ret.depth, err = fields.Uint32(fieldKeyPathDepth); err != nil {
		return nil, err
	}
	return ret, nil
}

func CryptoKeyPathFromBytes(data []byte) (*CryptoKeyPath, error) {
	return Decode(data, CryptoKeyPathFromCbor)
}

// decodePathComponents reads the flat [index, hardened, ...] component list.
// An empty array in the index position marks a wildcard
func decodePathComponents(items []cbor.Value) ([]PathComponent, error) {
	if len(items)%2 != 0 {
		return nil, &InvalidPathComponentError{
			Component: fmt.Sprintf("component list of length %d", len(items)),
			Err:       errors.New("expected index and hardened flag pairs"),
		}
	}
	ret := make([]PathComponent, 0, len(items)/2)
	for i := 0; i < len(items); i += 2 {
		hardened, err := items[i+1].Bool()
		if err != nil {
			return nil, err
		}
		if items[i].Kind() == cbor.KindArray {
			inner, _ := items[i].Array()
			if len(inner) != 0 {
				return nil, &cbor.TypeMismatchError{
					Expected: "empty array",
					Actual:   fmt.Sprintf("array of length %d", len(inner)),
				}
			}
			ret = append(ret, NewWildcardComponent(hardened))
			continue
		}
		idx, err := items[i].Uint()
		if err != nil {
			return nil, err
		}
		if idx >= uint64(HardenedBit) {
			return nil, &InvalidPathComponentError{
				Component: strconv.FormatUint(idx, 10),
				Err:       errors.New("most significant bit cannot be set"),
			}
		}
		component, _ := NewPathComponent(uint32(idx), hardened)
		ret = append(ret, component)
	}
	return ret, nil
}
