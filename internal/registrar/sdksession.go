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

	"github.com/hyperledger/fabric-sdk-go/pkg/client/msp"
	"github.com/hyperledger/fabric-sdk-go/pkg/core/config"
	"github.com/hyperledger/fabric-sdk-go/pkg/core/cryptosuite"
	"github.com/hyperledger/fabric-sdk-go/pkg/fabsdk"
)

// caSession is one conversation with the certificate authority of an organization
type caSession interface {
	register(req *msp.RegistrationRequest) (string, error)
	enroll(name, secret string) error
	signingIdentity(name string) (cert []byte, ski []byte, err error)
	keystorePath() string
	close()
}

type sessionFactory func(ctx context.Context, profile []byte, org, caName string) (caSession, error)

type sdkSession struct {
	sdk      *fabsdk.FabricSDK
	client   *msp.Client
	keystore string
}

func newSDKSession(_ context.Context, profile []byte, org, caName string) (caSession, error) {
	sdk, err := fabsdk.New(config.FromRaw(profile, "json"))
	if err != nil {
		return nil, err
	}
	opts := []msp.ClientOption{msp.WithOrg(org)}
	if caName != "" {
		opts = append(opts, msp.WithCAInstance(caName))
	}
	client, err := msp.New(sdk.Context(), opts...)
	if err != nil {
		sdk.Close()
		return nil, err
	}
	s := &sdkSession{
		sdk:    sdk,
		client: client,
	}
	if backend, err := sdk.Config(); err == nil {
		s.keystore = cryptosuite.ConfigFromBackend(backend).KeyStorePath()
	}
	return s, nil
}

func (s *sdkSession) register(req *msp.RegistrationRequest) (string, error) {
	return s.client.Register(req)
}

func (s *sdkSession) enroll(name, secret string) error {
	return s.client.Enroll(name, msp.WithSecret(secret))
}

func (s *sdkSession) signingIdentity(name string) ([]byte, []byte, error) {
	si, err := s.client.GetSigningIdentity(name)
	if err != nil {
		return nil, nil, err
	}
	return si.EnrollmentCertificate(), si.PrivateKey().SKI(), nil
}

func (s *sdkSession) keystorePath() string {
	return s.keystore
}

func (s *sdkSession) close() {
	s.sdk.Close()
}
