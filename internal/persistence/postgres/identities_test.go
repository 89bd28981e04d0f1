// Copyright © 2024 Kaleido, Inc.
//
// SPDX-License-Identifier: Apache-2.0
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

package postgres

import (
	"testing"

	"github.com/hyperledger/firefly-fabquery/pkg/apitypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentitiesLifecyclePSQL(t *testing.T) {
	ctx, p, _, done := initTestPSQL(t)
	defer done()

	u1 := apitypes.NewIdentity("org1", "user1", "Org1MSP", "cert1", "key1")
	require.NoError(t, p.WriteIdentity(ctx, u1))
	u2 := apitypes.NewIdentity("org1", "user2", "Org1MSP", "cert2", "key2")
	require.NoError(t, p.WriteIdentity(ctx, u2))
	require.NoError(t, p.WriteIdentity(ctx, apitypes.NewIdentity("org2", "user1", "Org2MSP", "cert3", "key3")))

	got, err := p.GetIdentity(ctx, "org1", "user1")
	require.NoError(t, err)
	assert.Equal(t, u1.ID, got.ID)
	assert.Equal(t, "cert1", got.Certificate)
	assert.Equal(t, "key1", got.PrivateKey)
	assert.Equal(t, apitypes.IdentityTypeX509, got.Type)

	// Rewrite keeps the original ID
	replacement := apitypes.NewIdentity("org1", "user1", "Org1MSP", "cert1b", "key1b")
	require.NoError(t, p.WriteIdentity(ctx, replacement))
	got, err = p.GetIdentity(ctx, "org1", "user1")
	require.NoError(t, err)
	assert.Equal(t, u1.ID, got.ID)
	assert.Equal(t, "cert1b", got.Certificate)

	ids, err := p.ListIdentities(ctx, "org1", "", 0)
	require.NoError(t, err)
	require.Len(t, ids, 2)
	assert.Equal(t, "user1", ids[0].Name)
	assert.Equal(t, "user2", ids[1].Name)

	ids, err = p.ListIdentities(ctx, "org1", "user1", 1)
	require.NoError(t, err)
	require.Len(t, ids, 1)
	assert.Equal(t, "user2", ids[0].Name)

	require.NoError(t, p.DeleteIdentity(ctx, "org1", "user1"))
	got, err = p.GetIdentity(ctx, "org1", "user1")
	require.NoError(t, err)
	assert.Nil(t, got)
	require.NoError(t, p.DeleteIdentity(ctx, "org1", "user1"))
}
