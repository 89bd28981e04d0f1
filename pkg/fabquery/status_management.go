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

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-fabquery/internal/fqmsgs"
	"github.com/hyperledger/firefly-fabquery/pkg/apitypes"
)

func (m *manager) getLiveStatus(_ context.Context) (*apitypes.LiveStatus, error) {
	return &apitypes.LiveStatus{Up: true}, nil
}

func (m *manager) getReadyStatus(ctx context.Context) (*apitypes.ReadyStatus, error) {
	if !m.started.Load() || m.persistence == nil {
		return nil, i18n.NewError(ctx, fqmsgs.MsgNotReady, "not started")
	}
	return &apitypes.ReadyStatus{Ready: true}, nil
}
