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

var getIdentities = func(m *manager) *ffapi.Route {
	return &ffapi.Route{
		Name:   "getIdentities",
		Path:   "/organizations/{org}/identities",
		Method: http.MethodGet,
		PathParams: []*ffapi.PathParam{
			{Name: "org", Description: fqmsgs.APIParamOrganization},
		},
		QueryParams: []*ffapi.QueryParam{
			{Name: "after", Description: fqmsgs.APIParamAfter},
			{Name: "limit", Description: fqmsgs.APIParamLimit},
		},
		Description:     fqmsgs.APIEndpointGetIdentities,
		JSONInputValue:  nil,
		JSONOutputValue: func() interface{} { return []*apitypes.Identity{} },
		JSONOutputCodes: []int{http.StatusOK},
		JSONHandler: func(r *ffapi.APIRequest) (output interface{}, err error) {
			return m.listIdentities(r.Req.Context(), r.PP["org"], r.QP["after"], r.QP["limit"])
		},
	}
}
