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

package registrar

import (
	"context"
	"encoding/hex"
	"os"
	"path/filepath"

	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/hyperledger/firefly-fabquery/internal/fqmsgs"
)

// The SDK file keystore names each private key by the hex encoding of its subject key
// identifier, with an "_sk" suffix
func keystoreFile(keystorePath string, ski []byte) string {
	return filepath.Join(keystorePath, hex.EncodeToString(ski)+"_sk")
}

func readPrivateKey(ctx context.Context, name, keystorePath string, ski []byte) ([]byte, error) {
	file := keystoreFile(keystorePath, ski)
	log.L(ctx).Debugf("Reading private key for '%s' from %s", name, file)
	b, err := os.ReadFile(file)
	if err != nil {
		return nil, i18n.WrapError(ctx, err, fqmsgs.MsgKeystoreReadFailed, name, keystorePath)
	}
	if err := validatePEM(ctx, name, b); err != nil {
		return nil, err
	}
	return b, nil
}
