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

package registry_test

import (
	"testing"

	"github.com/blinklabs-io/ur-registry/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypesUnique(t *testing.T) {
	types := registry.Types()
	require.Len(t, types, 25)
	names := make(map[string]bool)
	tags := make(map[uint64]bool)
	for _, rt := range types {
		assert.False(t, names[rt.Name], "duplicate name %s", rt.Name)
		assert.False(t, tags[rt.Tag], "duplicate tag %d", rt.Tag)
		names[rt.Name] = true
		tags[rt.Tag] = true
	}
}

func TestLookupType(t *testing.T) {
	rt, ok := registry.LookupType("crypto-multi-accounts")
	require.True(t, ok)
	assert.Equal(t, uint64(1103), rt.Tag)

	rt, ok = registry.LookupTag(2212)
	require.True(t, ok)
	assert.Equal(t, "cardano-sign-cip8-data-signature", rt.Name)

	_, ok = registry.LookupType("crypto-bip39")
	assert.False(t, ok)
}

func TestTypesReturnsCopy(t *testing.T) {
	types := registry.Types()
	types[0] = registry.RegistryType{Name: "bogus"}
	assert.Equal(t, registry.TypeUUID, registry.Types()[0])
}
