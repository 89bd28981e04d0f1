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

package fabcapi

import (
	"context"
	"time"
)

// Connector is the interface to a Fabric network used by the query dispatcher.
//
// A Gateway is a session bound to one identity of one organization. The caller owns the
// session and must Close it once all evaluations are complete.
type Connector interface {

	// Connect opens a gateway session using the connection profile and the wallet identity in the options
	Connect(ctx context.Context, opts *ConnectOptions) (Gateway, error)
}

// Gateway is an open session to the peers of a network
type Gateway interface {

	// GetNetwork resolves a channel by name
	GetNetwork(name string) (Network, error)

	// Close releases all peer connections held by the session
	Close()
}

// Network is a channel accessible through a gateway session
type Network interface {
	Name() string

	// GetContract returns the named chaincode on the channel. A chaincode that is not deployed
	// is not detected until a function is evaluated
	GetContract(chaincode string) Contract
}

// Contract is a chaincode deployed on a channel
type Contract interface {
	Name() string

	// EvaluateTransaction runs a read-only function against the current world state, without
	// sending anything to the orderer
	EvaluateTransaction(ctx context.Context, fn string, args ...string) ([]byte, error)
}

type ConnectOptions struct {
	Organization string
	Identity     string
	Profile      []byte // JSON connection profile
	Credential   *Credential
	AsLocalhost  bool
	Timeout      time.Duration
}

// Credential is the X.509 signing identity the gateway submits proposals with
type Credential struct {
	MSPID       string
	Certificate string // PEM
	PrivateKey  string // PEM
}

// ErrorReason are a set of standard error conditions that a query can fail with, so that callers can act
// on the category of failure without matching on message text
type ErrorReason string

const (
	// ErrorReasonUnderlying any failure not covered by another reason. The message is passed through unchanged
	ErrorReasonUnderlying ErrorReason = ""
	// ErrorReasonConnectionFailed the gateway could not reach the peers, discovery failed, or the call timed out
	ErrorReasonConnectionFailed ErrorReason = "connection_failed"
	// ErrorReasonAuthorizationFailed the identity was rejected by the network
	ErrorReasonAuthorizationFailed ErrorReason = "authorization_failed"
	// ErrorReasonContractNotFound the channel or chaincode does not exist, or is not visible to the identity
	ErrorReasonContractNotFound ErrorReason = "contract_not_found"
	// ErrorReasonUnknownFunction the function name is not in the function table (nothing was sent to the network)
	ErrorReasonUnknownFunction ErrorReason = "unknown_function"
	// ErrorReasonArityMismatch fewer arguments were supplied than the function takes (nothing was sent to the network)
	ErrorReasonArityMismatch ErrorReason = "arity_mismatch"
	// ErrorReasonSerializationFailed the chaincode returned a payload that is not UTF-8 JSON
	ErrorReasonSerializationFailed ErrorReason = "serialization_failed"
	// ErrorReasonIdentityNotEnrolled the identity is missing from the wallet. Registration might have been requested
	ErrorReasonIdentityNotEnrolled ErrorReason = "identity_not_enrolled"
)
