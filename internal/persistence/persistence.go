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

package persistence

import (
	"context"

	"github.com/hyperledger/firefly-fabquery/pkg/apitypes"
)

const (
	TypeFilesystem = "filesystem"
	TypeLevelDB    = "leveldb"
	TypePostgres   = "postgres"
)

// IdentityPersistence stores the wallet identities of every organization.
//
// GetIdentity returns nil without an error when the identity does not exist. WriteIdentity
// replaces any existing identity with the same organization and name.
type IdentityPersistence interface {
	GetIdentity(ctx context.Context, org, name string) (*apitypes.Identity, error)
	WriteIdentity(ctx context.Context, id *apitypes.Identity) error
	DeleteIdentity(ctx context.Context, org, name string) error
	// ListIdentities returns identities in name order, starting after the supplied name (non-inclusive)
	ListIdentities(ctx context.Context, org, after string, limit int) ([]*apitypes.Identity, error)
}

type Persistence interface {
	IdentityPersistence
	Close(ctx context.Context)
}

// IterablePersistence can walk every identity it holds across all organizations, in
// organization and then name order
type IterablePersistence interface {
	Persistence
	ListAllIdentities(ctx context.Context, after *apitypes.Identity, limit int) ([]*apitypes.Identity, error)
}
