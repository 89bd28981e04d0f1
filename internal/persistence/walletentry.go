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

package persistence

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-fabquery/internal/fqmsgs"
	"github.com/hyperledger/firefly-fabquery/pkg/apitypes"
)

const walletEntryVersion = 1

// WalletEntry is the JSON form of an X.509 identity shared by the Fabric SDKs. Files in this form
// can be read by the gateway of any SDK, and by the fabric-network wallets of Node.js applications.
type WalletEntry struct {
	Version     int                     `json:"version"`
	MSPID       string                  `json:"mspId"`
	Type        string                  `json:"type"`
	Credentials *WalletEntryCredentials `json:"credentials"`
	ID          *fftypes.UUID           `json:"id,omitempty"`
}

type WalletEntryCredentials struct {
	Certificate string `json:"certificate"`
	PrivateKey  string `json:"privateKey"`
}

func MarshalWalletEntry(ctx context.Context, id *apitypes.Identity) ([]byte, error) {
	b, err := json.Marshal(&WalletEntry{
		Version: walletEntryVersion,
		MSPID:   id.MSPID,
		Type:    string(id.Type),
		Credentials: &WalletEntryCredentials{
			Certificate: id.Certificate,
			PrivateKey:  id.PrivateKey,
		},
		ID: id.ID,
	})
	if err != nil {
		return nil, i18n.WrapError(ctx, err, fqmsgs.MsgPersistenceMarshalFailed)
	}
	return b, nil
}

func UnmarshalWalletEntry(ctx context.Context, org, name string, b []byte) (*apitypes.Identity, error) {
	var we WalletEntry
	if err := json.Unmarshal(b, &we); err != nil {
		return nil, i18n.WrapError(ctx, err, fqmsgs.MsgPersistenceUnmarshalFailed)
	}
	if we.Credentials == nil || we.Credentials.Certificate == "" {
		return nil, i18n.NewError(ctx, fqmsgs.MsgInvalidWalletEntry, name, "missing certificate")
	}
	if !strings.EqualFold(we.Type, string(apitypes.IdentityTypeX509)) {
		return nil, i18n.NewError(ctx, fqmsgs.MsgUnsupportedIdentityType, we.Type)
	}
	return &apitypes.Identity{
		ID:           we.ID,
		Organization: org,
		Name:         name,
		MSPID:        we.MSPID,
		Type:         apitypes.IdentityTypeX509,
		Certificate:  we.Credentials.Certificate,
		PrivateKey:   we.Credentials.PrivateKey,
	}, nil
}
