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

package filesystem

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/hyperledger/firefly-fabquery/internal/fqmsgs"
	"github.com/hyperledger/firefly-fabquery/internal/persistence"
	"github.com/hyperledger/firefly-fabquery/pkg/apitypes"
)

const walletFileSuffix = ".id"

// WalletPathResolver returns the wallet directory of an organization
type WalletPathResolver func(ctx context.Context, org string) (string, error)

// filesystemPersistence keeps one wallet directory per organization, holding a <name>.id file
// for each identity in the format shared with the Fabric SDK file system wallets
type filesystemPersistence struct {
	mux        sync.RWMutex
	walletPath WalletPathResolver
}

func NewFilesystemPersistence(walletPath WalletPathResolver) persistence.Persistence {
	return &filesystemPersistence{
		walletPath: walletPath,
	}
}

func (p *filesystemPersistence) identityFile(ctx context.Context, org, name string) (string, string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", "", i18n.NewError(ctx, fqmsgs.MsgInvalidWalletEntry, name, "invalid name")
	}
	dir, err := p.walletPath(ctx, org)
	if err != nil {
		return "", "", err
	}
	if dir == "" {
		return "", "", i18n.NewError(ctx, fqmsgs.MsgFilesystemWalletPathMissing, org)
	}
	return dir, filepath.Join(dir, name+walletFileSuffix), nil
}

func (p *filesystemPersistence) readIdentity(ctx context.Context, org, name, file string) (*apitypes.Identity, error) {
	b, err := os.ReadFile(file)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, i18n.WrapError(ctx, err, fqmsgs.MsgPersistenceReadFailed, file)
	}
	id, err := persistence.UnmarshalWalletEntry(ctx, org, name, b)
	if err != nil {
		return nil, err
	}
	if fi, err := os.Stat(file); err == nil {
		updated := fftypes.FFTime(fi.ModTime())
		id.Updated = &updated
	}
	id.Created = apitypes.ULIDTime(id.ID)
	return id, nil
}

func (p *filesystemPersistence) GetIdentity(ctx context.Context, org, name string) (*apitypes.Identity, error) {
	_, file, err := p.identityFile(ctx, org, name)
	if err != nil {
		return nil, err
	}
	p.mux.RLock()
	defer p.mux.RUnlock()
	return p.readIdentity(ctx, org, name, file)
}

func (p *filesystemPersistence) WriteIdentity(ctx context.Context, id *apitypes.Identity) error {
	dir, file, err := p.identityFile(ctx, id.Organization, id.Name)
	if err != nil {
		return err
	}
	if id.ID == nil {
		id.ID = apitypes.NewULID()
	}
	b, err := persistence.MarshalWalletEntry(ctx, id)
	if err != nil {
		return err
	}
	p.mux.Lock()
	defer p.mux.Unlock()
	if err := os.MkdirAll(dir, 0700); err != nil {
		return i18n.WrapError(ctx, err, fqmsgs.MsgPersistenceInitFailed, dir)
	}
	// Write to a temporary file and rename, so readers never see a partial entry
	tmpFile := file + ".tmp"
	if err := os.WriteFile(tmpFile, b, 0600); err != nil {
		return i18n.WrapError(ctx, err, fqmsgs.MsgPersistenceWriteFailed, file)
	}
	if err := os.Rename(tmpFile, file); err != nil {
		_ = os.Remove(tmpFile)
		return i18n.WrapError(ctx, err, fqmsgs.MsgPersistenceWriteFailed, file)
	}
	log.L(ctx).Debugf("Wrote %s", file)
	return nil
}

func (p *filesystemPersistence) DeleteIdentity(ctx context.Context, org, name string) error {
	_, file, err := p.identityFile(ctx, org, name)
	if err != nil {
		return err
	}
	p.mux.Lock()
	defer p.mux.Unlock()
	if err := os.Remove(file); err != nil && !os.IsNotExist(err) {
		return i18n.WrapError(ctx, err, fqmsgs.MsgPersistenceDeleteFailed, file)
	}
	log.L(ctx).Debugf("Deleted %s", file)
	return nil
}

func (p *filesystemPersistence) ListIdentities(ctx context.Context, org, after string, limit int) ([]*apitypes.Identity, error) {
	dir, err := p.walletPath(ctx, org)
	if err != nil {
		return nil, err
	}
	p.mux.RLock()
	defer p.mux.RUnlock()
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []*apitypes.Identity{}, nil
		}
		return nil, i18n.WrapError(ctx, err, fqmsgs.MsgPersistenceReadFailed, dir)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), walletFileSuffix) {
			continue
		}
		name := strings.TrimSuffix(e.Name(), walletFileSuffix)
		if name > after {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	ids := make([]*apitypes.Identity, 0, len(names))
	for _, name := range names {
		id, err := p.readIdentity(ctx, org, name, filepath.Join(dir, name+walletFileSuffix))
		if err != nil {
			log.L(ctx).Warnf("Skipping invalid wallet entry '%s' in '%s': %s", name, dir, err)
			continue
		}
		if id == nil {
			continue
		}
		ids = append(ids, id)
		if limit > 0 && len(ids) >= limit {
			break
		}
	}
	log.L(ctx).Debugf("Listed %d identities", len(ids))
	return ids, nil
}

func (p *filesystemPersistence) Close(_ context.Context) {}
