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

package fabric

import (
	"github.com/hyperledger/fabric-sdk-go/pkg/gateway"
)

// The SDK gateway types are concrete structs, so they are narrowed here to the calls
// the connector makes

type sdkGateway interface {
	GetNetwork(name string) (sdkNetwork, error)
	Close()
}

type sdkNetwork interface {
	Name() string
	GetContract(chaincodeID string) sdkContract
}

type sdkContract interface {
	Name() string
	EvaluateTransaction(name string, args ...string) ([]byte, error)
}

type connectFn func(cfg gateway.ConfigOption, id gateway.IdentityOption, options ...gateway.Option) (sdkGateway, error)

func sdkConnect(cfg gateway.ConfigOption, id gateway.IdentityOption, options ...gateway.Option) (sdkGateway, error) {
	gw, err := gateway.Connect(cfg, id, options...)
	if err != nil {
		return nil, err
	}
	return &sdkGatewayWrapper{gw: gw}, nil
}

type sdkGatewayWrapper struct {
	gw *gateway.Gateway
}

func (w *sdkGatewayWrapper) GetNetwork(name string) (sdkNetwork, error) {
	n, err := w.gw.GetNetwork(name)
	if err != nil {
		return nil, err
	}
	return &sdkNetworkWrapper{n: n}, nil
}

func (w *sdkGatewayWrapper) Close() {
	w.gw.Close()
}

type sdkNetworkWrapper struct {
	n *gateway.Network
}

func (w *sdkNetworkWrapper) Name() string {
	return w.n.Name()
}

func (w *sdkNetworkWrapper) GetContract(chaincodeID string) sdkContract {
	return w.n.GetContract(chaincodeID)
}
