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
	"encoding/json"

	resty "github.com/go-resty/resty/v2"
	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/ffresty"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-fabquery/internal/fqmsgs"
	"github.com/hyperledger/firefly-fabquery/pkg/apitypes"
)

type FabqueryClient interface {
	Query(ctx context.Context, req *apitypes.InvocationRequest) (*apitypes.ResponseEnvelope, error)
	GetFunctions(ctx context.Context) ([]*apitypes.FunctionDescriptor, error)
	ListIdentities(ctx context.Context, org, after string, limit int) ([]*apitypes.Identity, error)
	GetIdentity(ctx context.Context, org, name string) (*apitypes.Identity, error)
	DeleteIdentity(ctx context.Context, org, name string) error
	RegisterIdentity(ctx context.Context, org, name string, asAdmin bool) (*apitypes.Identity, error)
}

type fabqueryClient struct {
	client *resty.Client
}

func InitConfig(conf config.Section) {
	ffresty.InitConfig(conf)
}

func NewFabqueryClient(ctx context.Context, staticConfig config.Section) (FabqueryClient, error) {
	client, err := ffresty.New(ctx, staticConfig)
	if err != nil {
		return nil, err
	}
	return &fabqueryClient{
		client: client,
	}, nil
}

// Query returns the envelope for both success and failure statuses, as the server
// always sends one once the query has been dispatched
func (c *fabqueryClient) Query(ctx context.Context, req *apitypes.InvocationRequest) (*apitypes.ResponseEnvelope, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(req).
		Post("query")
	if err != nil {
		return nil, err
	}
	var env apitypes.ResponseEnvelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil || env.Status == 0 {
		return nil, unexpectedResponse(ctx, resp)
	}
	return &env, nil
}

func (c *fabqueryClient) GetFunctions(ctx context.Context) ([]*apitypes.FunctionDescriptor, error) {
	fds := []*apitypes.FunctionDescriptor{}
	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&fds).
		Get("functions")
	if err != nil {
		return nil, err
	}
	if !resp.IsSuccess() {
		return nil, unexpectedResponse(ctx, resp)
	}
	return fds, nil
}

func unexpectedResponse(ctx context.Context, resp *resty.Response) error {
	return i18n.NewError(ctx, fqmsgs.MsgUnexpectedClientResponse, resp.StatusCode(), string(resp.Body()))
}
