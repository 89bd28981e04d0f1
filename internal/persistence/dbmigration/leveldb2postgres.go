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

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-fabquery/internal/fqconfig"
	"github.com/hyperledger/firefly-fabquery/internal/fqmsgs"
	"github.com/hyperledger/firefly-fabquery/internal/persistence/leveldb"
	"github.com/hyperledger/firefly-fabquery/internal/persistence/postgres"
)

func MigrateLevelDBToPostgres(ctx context.Context) (err error) {
	m := &dbMigration{}

	if m.source, err = leveldb.NewLevelDBPersistence(ctx); err != nil {
		return i18n.NewError(ctx, fqmsgs.MsgPersistenceInitFail, "leveldb", err)
	}
	defer m.source.Close(ctx)
	postgres.InitConfig(fqconfig.PostgresSection)
	if m.target, err = postgres.NewPostgresPersistence(ctx, fqconfig.PostgresSection); err != nil {
		return i18n.NewError(ctx, fqmsgs.MsgPersistenceInitFail, "postgres", err)
	}
	defer m.target.Close(ctx)

	return m.run(ctx)
}
