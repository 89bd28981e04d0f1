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

package dbmigration

import (
	"context"

	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/hyperledger/firefly-fabquery/internal/persistence"
	"github.com/hyperledger/firefly-fabquery/pkg/apitypes"
)

const (
	paginationLimit = 50
)

type dbMigration struct {
	source persistence.IterablePersistence
	target persistence.Persistence
}

func (m *dbMigration) run(ctx context.Context) error {

	log.L(ctx).Infof("Migrating identities")
	var after *apitypes.Identity
	count, skipped := 0, 0
	for {
		page, err := m.source.ListAllIdentities(ctx, after, paginationLimit)
		if err != nil {
			return err
		}
		if len(page) == 0 {
			log.L(ctx).Infof("Migrated %d identities (%d already present in target)", count, skipped)
			return nil
		}
		for _, id := range page {
			written, err := m.migrateIdentity(ctx, id)
			if err != nil {
				return err
			}
			if written {
				count++
			} else {
				skipped++
			}
		}
		after = page[len(page)-1]
	}

}

func (m *dbMigration) migrateIdentity(ctx context.Context, id *apitypes.Identity) (bool, error) {
	log.L(ctx).Infof("Migrating identity %s", id.Key())

	existing, err := m.target.GetIdentity(ctx, id.Organization, id.Name)
	if err != nil {
		return false, err
	}
	if existing != nil {
		log.L(ctx).Debugf("Identity %s already exists in target", id.Key())
		return false, nil
	}
	// Copy so the paging cursor held by the caller is not mutated by the target
	copied := *id
	log.L(ctx).Infof("Writing identity %s to target", id.Key())
	if err := m.target.WriteIdentity(ctx, &copied); err != nil {
		return false, err
	}
	return true, nil
}
