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

package wallet

import (
	"context"

	"github.com/hyperledger/fabric-sdk-go/pkg/gateway"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-fabquery/internal/fqmsgs"
	"github.com/hyperledger/firefly-fabquery/pkg/apitypes"
	"github.com/hyperledger/firefly-fabquery/pkg/fabcapi"
)

// CredentialOf takes the signing material out of a stored identity
func CredentialOf(id *apitypes.Identity) *fabcapi.Credential {
	return &fabcapi.Credential{
		MSPID:       id.MSPID,
		Certificate: id.Certificate,
		PrivateKey:  id.PrivateKey,
	}
}

// NewGatewayWallet returns an in-memory gateway wallet holding a single X.509 identity under
// the given label. The SDK wallet cannot be backed by a custom store, so the identity is
// copied in for the lifetime of one gateway session.
func NewGatewayWallet(ctx context.Context, label string, cred *fabcapi.Credential) (*gateway.Wallet, error) {
	if cred == nil || cred.MSPID == "" {
		return nil, i18n.NewError(ctx, fqmsgs.MsgInvalidWalletEntry, label, "missing mspId")
	}
	if cred.Certificate == "" || cred.PrivateKey == "" {
		return nil, i18n.NewError(ctx, fqmsgs.MsgInvalidWalletEntry, label, "missing credentials")
	}
	w := gateway.NewInMemoryWallet()
	if err := w.Put(label, gateway.NewX509Identity(cred.MSPID, cred.Certificate, cred.PrivateKey)); err != nil {
		return nil, i18n.NewError(ctx, fqmsgs.MsgInvalidWalletEntry, label, err)
	}
	return w, nil
}
