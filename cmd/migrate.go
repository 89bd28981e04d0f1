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

package cmd

import (
	"context"

	"github.com/hyperledger/firefly-fabquery/internal/persistence/dbmigration"
	"github.com/spf13/cobra"
)

// MigrateCommand copies the wallet identity records held in the LevelDB store into PostgreSQL.
// Both stores are read from the same config file, persistence.leveldb and persistence.postgres.
func MigrateCommand(initConfig func() error) *cobra.Command {
	identitiesCmd := &cobra.Command{
		Use:   "identities",
		Short: "Copy wallet identities from the LevelDB store into PostgreSQL",
		Long:  "Identities already present in PostgreSQL are left untouched, so the copy can be re-run safely",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := initConfig(); err != nil {
				return err
			}
			return dbmigration.MigrateLevelDBToPostgres(context.Background())
		},
	}

	migrateCmd := &cobra.Command{
		Use:   "migrate identities",
		Short: "Move stored identities to a new persistence type",
	}
	migrateCmd.AddCommand(identitiesCmd)
	return migrateCmd
}
