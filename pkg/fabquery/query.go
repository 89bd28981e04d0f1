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
	"encoding/json"
	"strings"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-fabquery/internal/fqmsgs"
	"github.com/hyperledger/firefly-fabquery/pkg/apitypes"
)

// query returns the envelope with its status as the HTTP status. A request that is never
// dispatched, including one for an identity that is not enrolled, is an error instead.
func (m *manager) query(ctx context.Context, req *apitypes.InvocationRequest) (int, *apitypes.ResponseEnvelope, error) {
	if err := m.rateLimiter.check(ctx, req.Organization); err != nil {
		return 0, nil, err
	}
	env, err := m.dispatcher.Query(ctx, req)
	if err != nil {
		return 0, nil, err
	}
	return env.Status, env, nil
}

// parseQueryArgs accepts a JSON array of strings, with single quotes allowed in place of
// double quotes so the array can be written unescaped in a URL
func parseQueryArgs(ctx context.Context, s string) ([]string, error) {
	args := []string{}
	if strings.TrimSpace(s) == "" {
		return args, nil
	}
	if err := json.Unmarshal([]byte(strings.ReplaceAll(s, "'", `"`)), &args); err != nil {
		return nil, i18n.NewError(ctx, fqmsgs.MsgInvalidArgsParam, err)
	}
	return args, nil
}
