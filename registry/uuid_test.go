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

	"github.com/blinklabs-io/ur-registry/internal/test"
	"github.com/blinklabs-io/ur-registry/registry"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDRoundTrip(t *testing.T) {
	id := uuid.MustParse("9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d")
	data, err := registry.NewUUID(id).ToBytes()
	require.NoError(t, err)
	assert.Equal(t, test.DecodeHexString("509b1deb4d3b7d4bad9bdd2b0d7b3dcb6d"), data)
	decoded, err := registry.UUIDFromBytes(data)
	require.NoError(t, err)
	assert.Equal(t, id, decoded.UUID())
	assert.Equal(t, "9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d", decoded.String())
}

func TestUUIDInvalidLength(t *testing.T) {
	_, err := registry.UUIDFromBytes(test.DecodeHexString("43010203"))
	var lengthErr *registry.InvalidFixedLengthError
	require.ErrorAs(t, err, &lengthErr)
	assert.Equal(t, 16, lengthErr.Expected)
}
