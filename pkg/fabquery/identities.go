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

package fabquery

import (
	"context"
	"strconv"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/hyperledger/firefly-fabquery/internal/connections"
	"github.com/hyperledger/firefly-fabquery/internal/fqmsgs"
	"github.com/hyperledger/firefly-fabquery/pkg/apitypes"
)

func (m *manager) listIdentities(ctx context.Context, org, after, limitStr string) ([]*apitypes.Identity, error) {
	var limit int64
	if limitStr != "" {
		var err error
		if limit, err = strconv.ParseInt(limitStr, 10, 64); err != nil || limit < 0 {
			return nil, i18n.NewError(ctx, fqmsgs.MsgInvalidLimit, limitStr, err)
		}
	}
	ids, err := m.persistence.ListIdentities(ctx, org, after, int(limit))
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []*apitypes.Identity{}
	}
	return ids, nil
}

func (m *manager) getIdentity(ctx context.Context, org, name string) (*apitypes.Identity, error) {
	id, err := m.persistence.GetIdentity(ctx, org, name)
	if err != nil {
		return nil, err
	}
	if id == nil {
		return nil, i18n.NewError(ctx, fqmsgs.MsgIdentityNotFound, name, org)
	}
	return id, nil
}

func (m *manager) deleteIdentity(ctx context.Context, org, name string) error {
	if err := m.persistence.DeleteIdentity(ctx, org, name); err != nil {
		return err
	}
	m.connections.Invalidate(connections.Key(org, name))
	log.L(ctx).Infof("Removed identity '%s' of organization '%s'", name, org)
	return nil
}

func (m *manager) registerIdentity(ctx context.Context, org, name string, req *apitypes.RegisterRequest) (*apitypes.Identity, error) {
	return m.registrar.Register(ctx, org, name, req.AsAdmin)
}
