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

package leveldb

import (
	"context"
	"os"
	"testing"

	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-fabquery/internal/fqconfig"
	"github.com/hyperledger/firefly-fabquery/pkg/apitypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/syndtr/goleveldb/leveldb/opt"
)

func newTestLevelDBPersistence(t *testing.T) (context.Context, *leveldbPersistence, func()) {

	ctx, cancelCtx := context.WithCancel(context.Background())

	dir := t.TempDir()

	fqconfig.Reset()
	config.Set(fqconfig.PersistenceLevelDBPath, dir)

	pp, err := NewLevelDBPersistence(ctx)
	assert.NoError(t, err)

	// Write some random stuff to the DB, either side of the identities range
	p := pp.(*leveldbPersistence)
	for _, key := range []string{"aaaaaaaaaa", "identities_0", "identities_1/zzz", "zzzzzzzzzz"} {
		err := p.db.Put([]byte(key), []byte(key), &opt.WriteOptions{})
		assert.NoError(t, err)
	}

	return ctx, p, func() {
		p.Close(ctx)
		cancelCtx()
	}

}

func TestLevelDBInitMissingPath(t *testing.T) {

	fqconfig.Reset()

	_, err := NewLevelDBPersistence(context.Background())
	assert.Regexp(t, "FF21122", err)

}

func TestLevelDBInitFail(t *testing.T) {
	file, err := os.CreateTemp("", "ldb_*")
	assert.NoError(t, err)
	_ = os.WriteFile(file.Name(), []byte("not a leveldb"), 0777)
	defer os.Remove(file.Name())

	fqconfig.Reset()
	config.Set(fqconfig.PersistenceLevelDBPath, file.Name())

	_, err = NewLevelDBPersistence(context.Background())
	assert.Regexp(t, "FF21128", err)

}

func TestReadWriteIdentities(t *testing.T) {

	ctx, p, done := newTestLevelDBPersistence(t)
	defer done()

	id, err := p.GetIdentity(ctx, "org1", "alice")
	assert.NoError(t, err)
	assert.Nil(t, id)

	alice := apitypes.NewIdentity("org1", "alice", "Org1MSP", "cert1", "key1")
	err = p.WriteIdentity(ctx, alice)
	assert.NoError(t, err)
	assert.NotNil(t, alice.Created)

	id, err = p.GetIdentity(ctx, "org1", "alice")
	assert.NoError(t, err)
	assert.Equal(t, alice.ID, id.ID)
	assert.Equal(t, "key1", id.PrivateKey)
	assert.Equal(t, "org1", id.Organization)

	// Replace keeps the ID and created time
	alice2 := apitypes.NewIdentity("org1", "alice", "Org1MSP", "cert2", "key2")
	err = p.WriteIdentity(ctx, alice2)
	assert.NoError(t, err)
	assert.Equal(t, alice.ID, alice2.ID)
	assert.Equal(t, alice.Created.String(), alice2.Created.String())

	id, err = p.GetIdentity(ctx, "org1", "alice")
	assert.NoError(t, err)
	assert.Equal(t, "cert2", id.Certificate)

	err = p.DeleteIdentity(ctx, "org1", "alice")
	assert.NoError(t, err)
	id, err = p.GetIdentity(ctx, "org1", "alice")
	assert.NoError(t, err)
	assert.Nil(t, id)

	err = p.DeleteIdentity(ctx, "org1", "alice")
	assert.NoError(t, err)
}

func TestWriteIdentityMissingName(t *testing.T) {
	ctx, p, done := newTestLevelDBPersistence(t)
	defer done()

	err := p.WriteIdentity(ctx, &apitypes.Identity{Organization: "org1"})
	assert.Regexp(t, "FF21117", err)
}

func TestListIdentities(t *testing.T) {
	ctx, p, done := newTestLevelDBPersistence(t)
	defer done()

	for _, org := range []string{"org1", "org10"} {
		for _, name := range []string{"dave", "alice", "carol", "bob"} {
			err := p.WriteIdentity(ctx, apitypes.NewIdentity(org, name, "MSP", "cert", "key"))
			require.NoError(t, err)
		}
	}

	ids, err := p.ListIdentities(ctx, "org1", "", 0)
	assert.NoError(t, err)
	assert.Len(t, ids, 4)
	for i, name := range []string{"alice", "bob", "carol", "dave"} {
		assert.Equal(t, name, ids[i].Name)
		assert.Equal(t, "org1", ids[i].Organization)
	}

	ids, err = p.ListIdentities(ctx, "org1", "bob", 1)
	assert.NoError(t, err)
	assert.Len(t, ids, 1)
	assert.Equal(t, "carol", ids[0].Name)

	ids, err = p.ListIdentities(ctx, "org2", "", 0)
	assert.NoError(t, err)
	assert.Empty(t, ids)
}

func TestListIdentitiesBadJSON(t *testing.T) {
	ctx, p, done := newTestLevelDBPersistence(t)
	defer done()

	err := p.db.Put(identityKey("org1", "alice"), []byte("!json"), &opt.WriteOptions{})
	assert.NoError(t, err)

	_, err = p.ListIdentities(ctx, "org1", "", 0)
	assert.Regexp(t, "FF21124", err)

	_, err = p.GetIdentity(ctx, "org1", "alice")
	assert.Regexp(t, "FF21124", err)

	err = p.WriteIdentity(ctx, apitypes.NewIdentity("org1", "alice", "MSP", "cert", "key"))
	assert.Regexp(t, "FF21124", err)
}

func TestReadWriteAfterClose(t *testing.T) {
	ctx, p, done := newTestLevelDBPersistence(t)
	done()

	_, err := p.GetIdentity(ctx, "org1", "alice")
	assert.Regexp(t, "FF21125", err)

	err = p.writeKeyValue(ctx, identityKey("org1", "alice"), []byte("{}"))
	assert.Regexp(t, "FF21126", err)

	err = p.DeleteIdentity(ctx, "org1", "alice")
	assert.Regexp(t, "FF21127", err)
}

func TestWriteJSONMarshalFail(t *testing.T) {
	ctx, p, done := newTestLevelDBPersistence(t)
	defer done()

	err := p.writeJSON(ctx, []byte("key"), map[bool]bool{false: true})
	assert.Regexp(t, "FF21123", err)
}

func TestListAllIdentities(t *testing.T) {
	ctx, p, done := newTestLevelDBPersistence(t)
	defer done()

	for _, k := range [][2]string{{"org2", "b"}, {"org1", "b"}, {"org1", "a"}, {"org10", "a"}} {
		require.NoError(t, p.WriteIdentity(ctx, apitypes.NewIdentity(k[0], k[1], "MSP", "cert", "key")))
	}

	page1, err := p.ListAllIdentities(ctx, nil, 3)
	require.NoError(t, err)
	require.Len(t, page1, 3)
	assert.Equal(t, "org1/a", page1[0].Key())
	assert.Equal(t, "org1/b", page1[1].Key())
	assert.Equal(t, "org10/a", page1[2].Key())

	page2, err := p.ListAllIdentities(ctx, page1[2], 3)
	require.NoError(t, err)
	require.Len(t, page2, 1)
	assert.Equal(t, "org2/b", page2[0].Key())
	assert.Equal(t, "key", page2[0].PrivateKey)
}
