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
	"net/http"

	"github.com/hyperledger/firefly-common/pkg/ffapi"
	"github.com/hyperledger/firefly-fabquery/internal/fqmsgs"
	"github.com/hyperledger/firefly-fabquery/pkg/apitypes"
)

var getChaincodeQuery = func(m *manager) *ffapi.Route {
	return &ffapi.Route{
		Name:   "getChaincodeQuery",
		Path:   "/channels/{channel}/chaincodes/{chaincode}",
		Method: http.MethodGet,
		PathParams: []*ffapi.PathParam{
			{Name: "channel", Description: fqmsgs.APIParamChannel},
			{Name: "chaincode", Description: fqmsgs.APIParamChaincode},
		},
		QueryParams: []*ffapi.QueryParam{
			{Name: "fcn", Description: fqmsgs.APIParamFunction},
			{Name: "args", Description: fqmsgs.APIParamArgs},
			{Name: "identity", Description: fqmsgs.APIParamIdentity},
			{Name: "org", Description: fqmsgs.APIParamOrganization},
		},
		Description:     fqmsgs.APIEndpointGetChaincodeQuery,
		JSONInputValue:  nil,
		JSONOutputValue: func() interface{} { return &apitypes.ResponseEnvelope{} },
		JSONOutputCodes: []int{http.StatusOK, http.StatusInternalServerError},
		JSONHandler: func(r *ffapi.APIRequest) (output interface{}, err error) {
			ctx := r.Req.Context()
			args, err := parseQueryArgs(ctx, r.QP["args"])
			if err != nil {
				return nil, err
			}
			status, env, err := m.query(ctx, &apitypes.InvocationRequest{
				ChannelName:  r.PP["channel"],
				ContractName: r.PP["chaincode"],
				FunctionName: r.QP["fcn"],
				Args:         args,
				Identity:     r.QP["identity"],
				Organization: r.QP["org"],
			})
			if err != nil {
				return nil, err
			}
			r.SuccessStatus = status
			return env, nil
		},
	}
}
