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

//revive:disable
var (
	InvocationRequestChannel   = ffm("InvocationRequest.channel", "The channel the chaincode is deployed on")
	InvocationRequestChaincode = ffm("InvocationRequest.chaincode", "The name of the chaincode")
	InvocationRequestFunction  = ffm("InvocationRequest.function", "The read-only function to evaluate")
	InvocationRequestArgs      = ffm("InvocationRequest.args", "Positional string arguments for the function")
	InvocationRequestIdentity  = ffm("InvocationRequest.identity", "The wallet identity that signs the query")
	InvocationRequestOrg       = ffm("InvocationRequest.org", "The organization whose connection profile and wallet are used")

	ResponseEnvelopeStatus    = ffm("ResponseEnvelope.status", "200 on success, or 500 on failure")
	ResponseEnvelopeResult    = ffm("ResponseEnvelope.result", "The JSON result of the function, or the string 'fail'")
	ResponseEnvelopeError     = ffm("ResponseEnvelope.error", "The error message when the query failed")
	ResponseEnvelopeErrorData = ffm("ResponseEnvelope.errorData", "Additional error data. Currently always null")

	FunctionDescriptorName  = ffm("FunctionDescriptor.name", "The name of the contract function")
	FunctionDescriptorArity = ffm("FunctionDescriptor.arity", "Number of positional arguments the function takes")

	IdentityID           = ffm("Identity.id", "Unique ID of the wallet entry")
	IdentityOrganization = ffm("Identity.org", "The organization the identity belongs to")
	IdentityName         = ffm("Identity.name", "The name (label) of the identity in the wallet")
	IdentityMSPID        = ffm("Identity.mspId", "The MSP ID of the identity")
	IdentityType         = ffm("Identity.type", "The credential type of the identity")
	IdentityCertificate  = ffm("Identity.certificate", "The PEM encoded enrollment certificate")
	IdentityCreated      = ffm("Identity.created", "Time the identity was added to the wallet")
	IdentityUpdated      = ffm("Identity.updated", "Time the identity was last updated")

	RegisterRequestAsAdmin = ffm("RegisterRequest.asAdmin", "Register the identity with the admin role rather than the client role")

	LiveStatusUp = ffm("LiveStatus.up", "True when the server is running")

	ReadyStatusReady = ffm("ReadyStatus.ready", "True when persistence is available and queries can be served")
)
