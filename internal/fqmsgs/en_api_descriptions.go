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

package fqmsgs

import (
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"golang.org/x/text/language"
)

var ffm = func(key, translation string) i18n.MessageKey {
	return i18n.FFM(language.AmericanEnglish, key, translation)
}

//revive:disable
var (
	APIEndpointPostQuery               = ffm("api.endpoints.post.query", "Evaluate a read-only function on a chaincode, returning a status envelope containing the result")
	APIEndpointGetChaincodeQuery       = ffm("api.endpoints.get.chaincode.query", "Evaluate a read-only function on a chaincode using query parameters")
	APIEndpointGetFunctions            = ffm("api.endpoints.get.functions", "List the query functions and the number of arguments each takes")
	APIEndpointGetIdentities           = ffm("api.endpoints.get.identities", "List the wallet identities of an organization")
	APIEndpointGetIdentity             = ffm("api.endpoints.get.identity", "Get a wallet identity")
	APIEndpointDeleteIdentity          = ffm("api.endpoints.delete.identity", "Remove a wallet identity, closing any connection that uses it")
	APIEndpointPostIdentityRegister    = ffm("api.endpoints.post.identity.register", "Register and enroll an identity with the certificate authority of the organization")
	APIEndpointGetStatusLive           = ffm("api.endpoints.get.status.live", "Get the liveness status of the query dispatcher")
	APIEndpointGetStatusReady          = ffm("api.endpoints.get.status.ready", "Get the readiness status of the query dispatcher")
	APIEndpointPostQueryOutput         = ffm("api.endpoints.post.query.output", "The status envelope. The HTTP status code matches the status field")
	APIEndpointGetChaincodeQueryOutput = ffm("api.endpoints.get.chaincode.query.output", "The status envelope")

	APIParamOrganization = ffm("api.params.org", "The organization whose connection profile and wallet are used")
	APIParamIdentity     = ffm("api.params.identity", "The wallet identity that signs the query")
	APIParamName         = ffm("api.params.name", "The name of the identity")
	APIParamChannel      = ffm("api.params.channel", "The channel the chaincode is deployed on")
	APIParamChaincode    = ffm("api.params.chaincode", "The name of the chaincode")
	APIParamFunction     = ffm("api.params.fcn", "The query function to evaluate")
	APIParamArgs         = ffm("api.params.args", "JSON array of string arguments. Single quotes are accepted in place of double quotes")
	APIParamLimit        = ffm("api.params.limit", "Maximum number of entries to return")
	APIParamAfter        = ffm("api.params.after", "Return entries after this name - for pagination (non-inclusive)")
)
