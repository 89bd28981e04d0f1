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
	"context"

	"github.com/hyperledger/firefly-common/pkg/dbsql"
	"github.com/hyperledger/firefly-common/pkg/ffapi"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-fabquery/internal/fqmsgs"
	"github.com/hyperledger/firefly-fabquery/pkg/apitypes"
)

type sqlPersistence struct {
	db         *dbsql.Database
	identities *dbsql.CrudBase[*apitypes.Identity]
}

// IdentityFilters are the fields identities can be filtered and sorted on
var IdentityFilters = &ffapi.QueryFields{
	"id":      &ffapi.UUIDField{},
	"org":     &ffapi.StringField{},
	"name":    &ffapi.StringField{},
	"mspid":   &ffapi.StringField{},
	"type":    &ffapi.StringField{},
	"created": &ffapi.TimeField{},
	"updated": &ffapi.TimeField{},
}

func newSQLPersistence(db *dbsql.Database) *sqlPersistence {
	p := &sqlPersistence{
		db: db,
	}
	p.identities = p.newIdentitiesCollection()
	return p
}

func (p *sqlPersistence) newIdentitiesCollection() *dbsql.CrudBase[*apitypes.Identity] {
	collection := &dbsql.CrudBase[*apitypes.Identity]{
		DB:    p.db,
		Table: "identities",
		Columns: []string{
			dbsql.ColumnID,
			dbsql.ColumnCreated,
			dbsql.ColumnUpdated,
			"org",
			"name",
			"msp_id",
			"id_type",
			"certificate",
			"private_key",
		},
		FilterFieldMap: map[string]string{
			"sequence": p.db.SequenceColumn(),
			"mspid":    "msp_id",
			"type":     "id_type",
		},
		PatchDisabled: true,
		NilValue:      func() *apitypes.Identity { return nil },
		NewInstance:   func() *apitypes.Identity { return &apitypes.Identity{} },
		GetFieldPtr: func(inst *apitypes.Identity, col string) interface{} {
			switch col {
			case dbsql.ColumnID:
				return &inst.ID
			case dbsql.ColumnCreated:
				return &inst.Created
			case dbsql.ColumnUpdated:
				return &inst.Updated
			case "org":
				return &inst.Organization
			case "name":
				return &inst.Name
			case "msp_id":
				return &inst.MSPID
			case "id_type":
				return &inst.Type
			case "certificate":
				return &inst.Certificate
			case "private_key":
				return &inst.PrivateKey
			}
			return nil
		},
	}
	collection.Validate()
	return collection
}

func (p *sqlPersistence) GetIdentity(ctx context.Context, org, name string) (*apitypes.Identity, error) {
	fb := IdentityFilters.NewFilterLimit(ctx, 1)
	ids, _, err := p.identities.GetMany(ctx, fb.And(
		fb.Eq("org", org),
		fb.Eq("name", name),
	))
	if err != nil || len(ids) == 0 {
		return nil, err
	}
	return ids[0], nil
}

func (p *sqlPersistence) WriteIdentity(ctx context.Context, id *apitypes.Identity) error {
	if id.Name == "" {
		return i18n.NewError(ctx, fqmsgs.MsgMissingName)
	}
	existing, err := p.GetIdentity(ctx, id.Organization, id.Name)
	if err != nil {
		return err
	}
	optimization := dbsql.UpsertOptimizationNew
	if existing != nil {
		id.ID = existing.ID
		id.Created = existing.Created
		optimization = dbsql.UpsertOptimizationExisting
	} else if id.ID == nil {
		id.ID = apitypes.NewULID()
	}
	_, err = p.identities.Upsert(ctx, id, optimization)
	return err
}

func (p *sqlPersistence) DeleteIdentity(ctx context.Context, org, name string) error {
	existing, err := p.GetIdentity(ctx, org, name)
	if err != nil || existing == nil {
		return err
	}
	return p.identities.Delete(ctx, existing.GetID())
}

func (p *sqlPersistence) ListIdentities(ctx context.Context, org, after string, limit int) ([]*apitypes.Identity, error) {
	fb := IdentityFilters.NewFilter(ctx)
	conditions := []ffapi.Filter{fb.Eq("org", org)}
	if after != "" {
		conditions = append(conditions, fb.Gt("name", after))
	}
	filter := fb.And(conditions...).Sort("name")
	if limit > 0 {
		filter = filter.Limit(uint64(limit))
	}
	ids, _, err := p.identities.GetMany(ctx, filter)
	return ids, err
}

func (p *sqlPersistence) Close(_ context.Context) {
	p.db.Close()
}
