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

package apiclient

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/hyperledger/firefly-fabquery/pkg/apitypes"
)

func identitiesPath(org string) string {
	return fmt.Sprintf("organizations/%s/identities", url.PathEscape(org))
}

func identityPath(org, name string) string {
	return fmt.Sprintf("%s/%s", identitiesPath(org), url.PathEscape(name))
}

func (c *fabqueryClient) ListIdentities(ctx context.Context, org, after string, limit int) ([]*apitypes.Identity, error) {
	identities := []*apitypes.Identity{}
	r := c.client.R().
		SetContext(ctx).
		SetResult(&identities)
	if after != "" {
		r.SetQueryParam("after", after)
	}
	if limit > 0 {
		r.SetQueryParam("limit", strconv.Itoa(limit))
	}
	resp, err := r.Get(identitiesPath(org))
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, unexpectedResponse(ctx, resp)
	}
	return identities, nil
}

func (c *fabqueryClient) GetIdentity(ctx context.Context, org, name string) (*apitypes.Identity, error) {
	var id apitypes.Identity
	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&id).
		Get(identityPath(org, name))
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, unexpectedResponse(ctx, resp)
	}
	return &id, nil
}

func (c *fabqueryClient) DeleteIdentity(ctx context.Context, org, name string) error {
	resp, err := c.client.R().
		SetContext(ctx).
		Delete(identityPath(org, name))
	if err != nil {
		return err
	}
	if !resp.IsSuccess() {
		return unexpectedResponse(ctx, resp)
	}
	return nil
}

func (c *fabqueryClient) RegisterIdentity(ctx context.Context, org, name string, asAdmin bool) (*apitypes.Identity, error) {
	var id apitypes.Identity
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(&apitypes.RegisterRequest{AsAdmin: asAdmin}).
		SetResult(&id).
		Post(identityPath(org, name) + "/register")
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, unexpectedResponse(ctx, resp)
	}
	return &id, nil
}
