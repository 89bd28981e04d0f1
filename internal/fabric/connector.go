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
	"context"
	"os"
	"strconv"
	"sync"

	"github.com/hyperledger/fabric-sdk-go/pkg/core/config"
	"github.com/hyperledger/fabric-sdk-go/pkg/gateway"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/hyperledger/firefly-fabquery/internal/fqmsgs"
	"github.com/hyperledger/firefly-fabquery/internal/wallet"
	"github.com/hyperledger/firefly-fabquery/pkg/fabcapi"
)

// The SDK gateway only reads the localhost mapping for discovered peers from the environment
const discoveryAsLocalhostEnv = "DISCOVERY_AS_LOCALHOST"

// The environment is process wide, so connects that set it are serialized
var envLock sync.Mutex

type connector struct {
	connect connectFn
}

// NewConnector returns a connector that opens gateway sessions using the Fabric Go SDK,
// with service discovery enabled
func NewConnector() fabcapi.Connector {
	return &connector{
		connect: sdkConnect,
	}
}

func (c *connector) Connect(ctx context.Context, opts *fabcapi.ConnectOptions) (fabcapi.Gateway, error) {
	w, err := wallet.NewGatewayWallet(ctx, opts.Identity, opts.Credential)
	if err != nil {
		return nil, err
	}
	cfg := gateway.WithConfig(config.FromRaw(opts.Profile, "json"))
	id := gateway.WithIdentity(w, opts.Identity)
	options := []gateway.Option{}
	if opts.Timeout > 0 {
		options = append(options, gateway.WithTimeout(opts.Timeout))
	}

	log.L(ctx).Debugf("Connecting gateway for '%s' of organization '%s' (asLocalhost=%t)", opts.Identity, opts.Organization, opts.AsLocalhost)
	envLock.Lock()
	os.Setenv(discoveryAsLocalhostEnv, strconv.FormatBool(opts.AsLocalhost))
	gw, err := c.connect(cfg, id, options...)
	envLock.Unlock()
	if err != nil {
		return nil, i18n.NewError(ctx, fqmsgs.MsgGatewayConnectFailed, opts.Identity, opts.Organization, err)
	}
	return &gatewaySession{ctx: ctx, gw: gw}, nil
}

type gatewaySession struct {
	ctx context.Context
	gw  sdkGateway
}

func (s *gatewaySession) GetNetwork(name string) (fabcapi.Network, error) {
	n, err := s.gw.GetNetwork(name)
	if err != nil {
		return nil, i18n.NewError(s.ctx, fqmsgs.MsgChannelNotFound, name, err)
	}
	return &network{n: n}, nil
}

func (s *gatewaySession) Close() {
	s.gw.Close()
}

type network struct {
	n sdkNetwork
}

func (n *network) Name() string {
	return n.n.Name()
}

func (n *network) GetContract(chaincode string) fabcapi.Contract {
	return &contract{c: n.n.GetContract(chaincode)}
}

type contract struct {
	c sdkContract
}

func (c *contract) Name() string {
	return c.c.Name()
}

type evaluateResult struct {
	b   []byte
	err error
}

// EvaluateTransaction returns as soon as the context is done. The SDK call has no context
// of its own, so it runs on until its own timeout and the result is discarded.
func (c *contract) EvaluateTransaction(ctx context.Context, fn string, args ...string) ([]byte, error) {
	done := make(chan *evaluateResult, 1)
	go func() {
		b, err := c.c.EvaluateTransaction(fn, args...)
		done <- &evaluateResult{b: b, err: err}
	}()
	select {
	case r := <-done:
		return r.b, r.err
	case <-ctx.Done():
		return nil, i18n.NewError(ctx, fqmsgs.MsgEvaluateInterrupted, fn, ctx.Err())
	}
}
