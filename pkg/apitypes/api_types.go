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

package apitypes

import (
	"context"
	"strings"

	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-fabquery/internal/fqmsgs"
	"github.com/hyperledger/firefly-fabquery/pkg/fabcapi"
)

const (
	StatusOK     = 200
	StatusFailed = 500

	// ResultFail is the result value placed in every failure envelope
	ResultFail = `"fail"`
)

// InvocationRequest describes one read-only call against a chaincode
type InvocationRequest struct {
	ChannelName  string   `ffstruct:"InvocationRequest" json:"channel"`
	ContractName string   `ffstruct:"InvocationRequest" json:"chaincode"`
	FunctionName string   `ffstruct:"InvocationRequest" json:"function"`
	Args         []string `ffstruct:"InvocationRequest" json:"args"`
	Identity     string   `ffstruct:"InvocationRequest" json:"identity"`
	Organization string   `ffstruct:"InvocationRequest" json:"org"`
}

func (ir *InvocationRequest) Validate(ctx context.Context) error {
	for _, f := range []struct {
		name  string
		value string
	}{
		{"channel", ir.ChannelName},
		{"chaincode", ir.ContractName},
		{"function", ir.FunctionName},
		{"identity", ir.Identity},
		{"org", ir.Organization},
	} {
		if strings.TrimSpace(f.value) == "" {
			return i18n.NewError(ctx, fqmsgs.MsgInvalidRequestErr, "query", f.name+" is required")
		}
	}
	return nil
}

// ResponseEnvelope is the normalized outcome of a query. Result carries the raw JSON returned
// by the chaincode, so no field is dropped or re-encoded.
type ResponseEnvelope struct {
	Status    int                 `ffstruct:"ResponseEnvelope" json:"status"`
	Result    *fftypes.JSONAny    `ffstruct:"ResponseEnvelope" json:"result"`
	Error     *string             `ffstruct:"ResponseEnvelope" json:"error"`
	ErrorData *fftypes.JSONAny    `ffstruct:"ResponseEnvelope" json:"errorData"`
	Reason    fabcapi.ErrorReason `json:"-"`
}

func SuccessEnvelope(result []byte) *ResponseEnvelope {
	return &ResponseEnvelope{
		Status: StatusOK,
		Result: fftypes.JSONAnyPtrBytes(result),
	}
}

func FailureEnvelope(reason fabcapi.ErrorReason, err error) *ResponseEnvelope {
	msg := err.Error()
	return &ResponseEnvelope{
		Status: StatusFailed,
		Result: fftypes.JSONAnyPtr(ResultFail),
		Error:  &msg,
		Reason: reason,
	}
}

type FunctionDescriptor struct {
	Name  string `ffstruct:"FunctionDescriptor" json:"name"`
	Arity int    `ffstruct:"FunctionDescriptor" json:"arity"`
}

// IdentityType is the credential type of a wallet entry. Only X.509 identities are supported by the gateway
type IdentityType string

const IdentityTypeX509 IdentityType = "X.509"

// Identity is a credential in the wallet of an organization, unique by organization+name
type Identity struct {
	ID           *fftypes.UUID   `ffstruct:"Identity" json:"id"`
	Organization string          `ffstruct:"Identity" json:"org"`
	Name         string          `ffstruct:"Identity" json:"name"`
	MSPID        string          `ffstruct:"Identity" json:"mspId"`
	Type         IdentityType    `ffstruct:"Identity" json:"type"`
	Certificate  string          `ffstruct:"Identity" json:"certificate"`
	PrivateKey   string          `json:"-"`
	Created      *fftypes.FFTime `ffstruct:"Identity" json:"created"`
	Updated      *fftypes.FFTime `ffstruct:"Identity" json:"updated"`
}

func NewIdentity(org, name, mspID, cert, key string) *Identity {
	return &Identity{
		ID:           NewULID(),
		Organization: org,
		Name:         name,
		MSPID:        mspID,
		Type:         IdentityTypeX509,
		Certificate:  cert,
		PrivateKey:   key,
	}
}

func (id *Identity) GetID() string {
	return id.ID.String()
}

func (id *Identity) SetCreated(t *fftypes.FFTime) {
	id.Created = t
}

func (id *Identity) SetUpdated(t *fftypes.FFTime) {
	id.Updated = t
}

// Key is the storage key of the identity within its organization
func (id *Identity) Key() string {
	return IdentityKey(id.Organization, id.Name)
}

func IdentityKey(org, name string) string {
	return org + "/" + name
}

// IdentityWithKey is the persisted form of an Identity, including the private key that is
// never returned over the API
type IdentityWithKey struct {
	*Identity
	PrivateKey string `json:"privateKey"`
}

func (id *Identity) WithKey() *IdentityWithKey {
	return &IdentityWithKey{Identity: id, PrivateKey: id.PrivateKey}
}

func (idk *IdentityWithKey) Unwrap() *Identity {
	id := idk.Identity
	if id == nil {
		id = &Identity{}
	}
	id.PrivateKey = idk.PrivateKey
	return id
}

type RegisterRequest struct {
	AsAdmin bool `ffstruct:"RegisterRequest" json:"asAdmin"`
}

type LiveStatus struct {
	Up bool `ffstruct:"LiveStatus" json:"up"`
}

type ReadyStatus struct {
	Ready bool `ffstruct:"ReadyStatus" json:"ready"`
}
