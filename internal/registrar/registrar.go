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
	"bytes"
	"context"
	"encoding/pem"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/hyperledger/fabric-sdk-go/pkg/client/msp"
	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/hyperledger/firefly-fabquery/internal/fqconfig"
	"github.com/hyperledger/firefly-fabquery/internal/fqmsgs"
	"github.com/hyperledger/firefly-fabquery/internal/persistence"
	"github.com/hyperledger/firefly-fabquery/internal/profiles"
	"github.com/hyperledger/firefly-fabquery/pkg/apitypes"
)

const (
	roleClient = "client"
	roleAdmin  = "admin"
)

// Registrar registers and enrolls a new identity with the certificate authority of an
// organization, and stores the resulting credentials in the wallet
type Registrar interface {
	Register(ctx context.Context, org, name string, asAdmin bool) (*apitypes.Identity, error)
}

type registrar struct {
	enabled      bool
	caName       string
	keystorePath string
	affiliation  *template.Template
	profiles     profiles.Resolver
	persistence  persistence.IdentityPersistence
	newSession   sessionFactory
}

type affiliationInput struct {
	Organization string
	Name         string
}

func NewRegistrar(ctx context.Context, resolver profiles.Resolver, p persistence.IdentityPersistence) (Registrar, error) {
	r := &registrar{
		enabled:      config.GetBool(fqconfig.RegistrationEnabled),
		caName:       config.GetString(fqconfig.RegistrationCAName),
		keystorePath: config.GetString(fqconfig.RegistrationKeystorePath),
		profiles:     resolver,
		persistence:  p,
		newSession:   newSDKSession,
	}
	affiliation := config.GetString(fqconfig.RegistrationAffiliation)
	t, err := template.New("affiliation").Funcs(sprig.TxtFuncMap()).Option("missingkey=error").Parse(affiliation)
	if err != nil {
		return nil, i18n.NewError(ctx, fqmsgs.MsgBadProfileTemplate, affiliation, err)
	}
	r.affiliation = t
	return r, nil
}

func (r *registrar) Register(ctx context.Context, org, name string, asAdmin bool) (*apitypes.Identity, error) {
	if !r.enabled {
		return nil, i18n.NewError(ctx, fqmsgs.MsgRegistrationDisabled)
	}
	if name == "" {
		return nil, i18n.NewError(ctx, fqmsgs.MsgMissingName)
	}
	existing, err := r.persistence.GetIdentity(ctx, org, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, i18n.NewError(ctx, fqmsgs.MsgIdentityExists, name, org)
	}

	profile, err := r.profiles.GetProfile(ctx, org)
	if err != nil {
		return nil, err
	}
	mspID, err := r.profiles.GetMSPID(ctx, org)
	if err != nil {
		return nil, err
	}
	affiliation := new(bytes.Buffer)
	if err := r.affiliation.Execute(affiliation, &affiliationInput{Organization: org, Name: name}); err != nil {
		return nil, i18n.NewError(ctx, fqmsgs.MsgBadProfileTemplate, r.affiliation.Name(), err)
	}

	session, err := r.newSession(ctx, profile, org, r.caName)
	if err != nil {
		return nil, i18n.NewError(ctx, fqmsgs.MsgRegistrarInitFailed, org, err)
	}
	defer session.close()

	role := roleClient
	if asAdmin {
		role = roleAdmin
	}
	log.L(ctx).Infof("Registering identity '%s' for organization '%s' with role '%s' and affiliation '%s'", name, org, role, affiliation)
	secret, err := session.register(&msp.RegistrationRequest{
		Name:        name,
		Type:        role,
		Affiliation: affiliation.String(),
		CAName:      r.caName,
	})
	if err != nil {
		return nil, i18n.NewError(ctx, fqmsgs.MsgRegistrationFailed, name, org, err)
	}
	if err := session.enroll(name, secret); err != nil {
		return nil, i18n.NewError(ctx, fqmsgs.MsgEnrollmentFailed, name, org, err)
	}
	cert, ski, err := session.signingIdentity(name)
	if err != nil {
		return nil, i18n.NewError(ctx, fqmsgs.MsgEnrollmentFailed, name, org, err)
	}

	keystorePath := r.keystorePath
	if keystorePath == "" {
		keystorePath = session.keystorePath()
	}
	key, err := readPrivateKey(ctx, name, keystorePath, ski)
	if err != nil {
		return nil, err
	}

	id := apitypes.NewIdentity(org, name, mspID, string(cert), string(key))
	if err := r.persistence.WriteIdentity(ctx, id); err != nil {
		return nil, err
	}
	log.L(ctx).Infof("Registered and enrolled identity '%s' for organization '%s' (id=%s)", name, org, id.ID)
	return id, nil
}

func validatePEM(ctx context.Context, name string, b []byte) error {
	if block, _ := pem.Decode(b); block == nil {
		return i18n.NewError(ctx, fqmsgs.MsgInvalidPrivateKeyPEM, name)
	}
	return nil
}
