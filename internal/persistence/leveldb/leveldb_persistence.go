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
	"encoding/json"
	"fmt"

	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/hyperledger/firefly-fabquery/internal/fqconfig"
	"github.com/hyperledger/firefly-fabquery/internal/fqmsgs"
	"github.com/hyperledger/firefly-fabquery/internal/persistence"
	"github.com/hyperledger/firefly-fabquery/pkg/apitypes"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"
)

type leveldbPersistence struct {
	db         *leveldb.DB
	syncWrites bool
}

func NewLevelDBPersistence(ctx context.Context) (persistence.IterablePersistence, error) {
	dbPath := config.GetString(fqconfig.PersistenceLevelDBPath)
	if dbPath == "" {
		return nil, i18n.NewError(ctx, fqmsgs.MsgLevelDBPathMissing)
	}
	db, err := leveldb.OpenFile(dbPath, &opt.Options{
		OpenFilesCacheCapacity: config.GetInt(fqconfig.PersistenceLevelDBMaxHandles),
	})
	if err != nil {
		return nil, i18n.WrapError(ctx, err, fqmsgs.MsgPersistenceInitFailed, dbPath)
	}
	return &leveldbPersistence{
		db:         db,
		syncWrites: config.GetBool(fqconfig.PersistenceLevelDBSyncWrites),
	}, nil
}

const identitiesPrefix = "identities_0/"

// Keys sort by organization and then by name. The organization is terminated with a
// separator that sorts before every printable character, so "org1" and "org10" never interleave.
func orgPrefix(org string) string {
	return fmt.Sprintf("%s%s\x00", identitiesPrefix, org)
}

func orgEnd(org string) string {
	return fmt.Sprintf("%s%s\x01", identitiesPrefix, org)
}

func identityKey(org, name string) []byte {
	return []byte(orgPrefix(org) + name)
}

func (p *leveldbPersistence) writeKeyValue(ctx context.Context, key, value []byte) error {
	err := p.db.Put(key, value, &opt.WriteOptions{Sync: p.syncWrites})
	if err != nil {
		return i18n.WrapError(ctx, err, fqmsgs.MsgPersistenceWriteFailed, key)
	}
	return nil
}

func (p *leveldbPersistence) writeJSON(ctx context.Context, key []byte, value interface{}) error {
	b, err := json.Marshal(value)
	if err != nil {
		return i18n.WrapError(ctx, err, fqmsgs.MsgPersistenceMarshalFailed)
	}
	log.L(ctx).Debugf("Wrote %s", key)
	return p.writeKeyValue(ctx, key, b)
}

func (p *leveldbPersistence) getKeyValue(ctx context.Context, key []byte) ([]byte, error) {
	b, err := p.db.Get(key, &opt.ReadOptions{})
	if err != nil {
		if err == leveldb.ErrNotFound {
			return nil, nil
		}
		return nil, i18n.WrapError(ctx, err, fqmsgs.MsgPersistenceReadFailed, key)
	}
	return b, err
}

func (p *leveldbPersistence) readJSON(ctx context.Context, key []byte, target interface{}) (bool, error) {
	b, err := p.getKeyValue(ctx, key)
	if err != nil || b == nil {
		return false, err
	}
	err = json.Unmarshal(b, target)
	if err != nil {
		return false, i18n.WrapError(ctx, err, fqmsgs.MsgPersistenceUnmarshalFailed)
	}
	log.L(ctx).Debugf("Read %s", key)
	return true, nil
}

func (p *leveldbPersistence) deleteKeys(ctx context.Context, keys ...[]byte) error {
	for _, key := range keys {
		err := p.db.Delete(key, &opt.WriteOptions{Sync: p.syncWrites})
		if err != nil && err != leveldb.ErrNotFound {
			return i18n.WrapError(ctx, err, fqmsgs.MsgPersistenceDeleteFailed, key)
		}
		log.L(ctx).Debugf("Deleted %s", key)
	}
	return nil
}

func (p *leveldbPersistence) GetIdentity(ctx context.Context, org, name string) (*apitypes.Identity, error) {
	var idk apitypes.IdentityWithKey
	found, err := p.readJSON(ctx, identityKey(org, name), &idk)
	if !found || err != nil {
		return nil, err
	}
	return idk.Unwrap(), nil
}

func (p *leveldbPersistence) WriteIdentity(ctx context.Context, id *apitypes.Identity) error {
	if id.Name == "" {
		return i18n.NewError(ctx, fqmsgs.MsgMissingName)
	}
	existing, err := p.GetIdentity(ctx, id.Organization, id.Name)
	if err != nil {
		return err
	}
	now := fftypes.Now()
	if existing != nil {
		id.ID = existing.ID
		id.Created = existing.Created
	} else {
		if id.ID == nil {
			id.ID = apitypes.NewULID()
		}
		id.Created = now
	}
	id.Updated = now
	return p.writeJSON(ctx, identityKey(id.Organization, id.Name), id.WithKey())
}

func (p *leveldbPersistence) DeleteIdentity(ctx context.Context, org, name string) error {
	return p.deleteKeys(ctx, identityKey(org, name))
}

func (p *leveldbPersistence) ListIdentities(ctx context.Context, org, after string, limit int) ([]*apitypes.Identity, error) {
	collectionRange := &util.Range{
		Start: []byte(orgPrefix(org)),
		Limit: []byte(orgEnd(org)),
	}
	if after != "" {
		// The zero byte suffix makes the start key exclusive of "after" itself
		collectionRange.Start = append(identityKey(org, after), 0x00)
	}
	return p.listRange(ctx, collectionRange, limit)
}

// ListAllIdentities walks every organization in key order, which is used to migrate the
// whole store to another persistence type
func (p *leveldbPersistence) ListAllIdentities(ctx context.Context, after *apitypes.Identity, limit int) ([]*apitypes.Identity, error) {
	collectionRange := util.BytesPrefix([]byte(identitiesPrefix))
	if after != nil {
		collectionRange.Start = append(identityKey(after.Organization, after.Name), 0x00)
	}
	return p.listRange(ctx, collectionRange, limit)
}

func (p *leveldbPersistence) listRange(ctx context.Context, collectionRange *util.Range, limit int) ([]*apitypes.Identity, error) {
	it := p.db.NewIterator(collectionRange, &opt.ReadOptions{DontFillCache: true})
	defer it.Release()

	ids := make([]*apitypes.Identity, 0)
	for it.Next() {
		var idk apitypes.IdentityWithKey
		if err := json.Unmarshal(it.Value(), &idk); err != nil {
			return nil, i18n.WrapError(ctx, err, fqmsgs.MsgPersistenceUnmarshalFailed)
		}
		ids = append(ids, idk.Unwrap())
		if limit > 0 && len(ids) >= limit {
			break
		}
	}
	log.L(ctx).Debugf("Listed %d items", len(ids))
	return ids, it.Error()
}

func (p *leveldbPersistence) Close(ctx context.Context) {
	err := p.db.Close()
	if err != nil {
		log.L(ctx).Warnf("Error closing leveldb: %s", err)
	}
}
