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

package profiles

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/ghodss/yaml"
	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/hyperledger/firefly-fabquery/internal/fqconfig"
	"github.com/hyperledger/firefly-fabquery/internal/fqmsgs"
)

// Resolver locates the connection context of an organization: its connection profile, its
// wallet directory, and its MSP ID
type Resolver interface {
	GetProfile(ctx context.Context, org string) ([]byte, error)
	GetWalletPath(ctx context.Context, org string) (string, error)
	GetMSPID(ctx context.Context, org string) (string, error)
}

type orgOverrides struct {
	profile string
	wallet  string
	mspID   string
}

type resolver struct {
	directory      string
	pathTemplate   *template.Template
	walletTemplate *template.Template
	mspIDTemplate  *template.Template
	orgs           map[string]*orgOverrides
}

type templateInput struct {
	Organization string
}

func NewResolver(ctx context.Context) (Resolver, error) {
	r := &resolver{
		directory: config.GetString(fqconfig.ProfilesDirectory),
		orgs:      make(map[string]*orgOverrides),
	}
	var err error
	if r.pathTemplate, err = parseTemplate(ctx, config.GetString(fqconfig.ProfilesPathTemplate)); err != nil {
		return nil, err
	}
	if r.walletTemplate, err = parseTemplate(ctx, config.GetString(fqconfig.ProfilesWalletTemplate)); err != nil {
		return nil, err
	}
	if r.mspIDTemplate, err = parseTemplate(ctx, config.GetString(fqconfig.ProfilesMSPIDTemplate)); err != nil {
		return nil, err
	}
	for i := 0; i < fqconfig.ProfilesOrgsConfig.ArraySize(); i++ {
		orgConf := fqconfig.ProfilesOrgsConfig.ArrayEntry(i)
		name := orgConf.GetString(fqconfig.OrgName)
		if name == "" {
			return nil, i18n.NewError(ctx, fqmsgs.MsgConfigParamNotSet, "profiles.orgs[].name")
		}
		r.orgs[name] = &orgOverrides{
			profile: orgConf.GetString(fqconfig.OrgProfile),
			wallet:  orgConf.GetString(fqconfig.OrgWallet),
			mspID:   orgConf.GetString(fqconfig.OrgMSPID),
		}
	}
	return r, nil
}

func parseTemplate(ctx context.Context, s string) (*template.Template, error) {
	t, err := template.New("").Funcs(sprig.TxtFuncMap()).Option("missingkey=error").Parse(s)
	if err != nil {
		return nil, i18n.NewError(ctx, fqmsgs.MsgBadProfileTemplate, s, err)
	}
	return t, nil
}

// checkOrganization rejects names that would escape the profiles directory once rendered into a path
func checkOrganization(ctx context.Context, org string) error {
	if strings.TrimSpace(org) == "" {
		return i18n.NewError(ctx, fqmsgs.MsgMissingOrganization)
	}
	if strings.ContainsAny(org, `/\`) || strings.Contains(org, "..") {
		return i18n.NewError(ctx, fqmsgs.MsgInvalidOrganization, org)
	}
	return nil
}

func (r *resolver) render(ctx context.Context, org string, t *template.Template) (string, error) {
	buff := new(bytes.Buffer)
	if err := t.Execute(buff, &templateInput{Organization: org}); err != nil {
		return "", i18n.NewError(ctx, fqmsgs.MsgBadProfileTemplate, t.Name(), err)
	}
	return buff.String(), nil
}

func (r *resolver) resolvePath(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(r.directory, p)
}

func (r *resolver) GetProfile(ctx context.Context, org string) ([]byte, error) {
	if err := checkOrganization(ctx, org); err != nil {
		return nil, err
	}
	var p string
	if o := r.orgs[org]; o != nil && o.profile != "" {
		p = o.profile
	} else {
		rendered, err := r.render(ctx, org, r.pathTemplate)
		if err != nil {
			return nil, err
		}
		p = rendered
	}
	p = r.resolvePath(p)
	log.L(ctx).Debugf("Loading connection profile for '%s' from '%s'", org, p)
	b, err := os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, i18n.NewError(ctx, fqmsgs.MsgProfileNotFound, org, p)
		}
		return nil, i18n.NewError(ctx, fqmsgs.MsgProfileInvalid, org, err)
	}
	switch strings.ToLower(filepath.Ext(p)) {
	case ".yaml", ".yml":
		if b, err = yaml.YAMLToJSON(b); err != nil {
			return nil, i18n.NewError(ctx, fqmsgs.MsgProfileInvalid, org, err)
		}
	}
	var parsed map[string]interface{}
	if err := json.Unmarshal(b, &parsed); err != nil {
		return nil, i18n.NewError(ctx, fqmsgs.MsgProfileInvalid, org, err)
	}
	return b, nil
}

func (r *resolver) GetWalletPath(ctx context.Context, org string) (string, error) {
	if err := checkOrganization(ctx, org); err != nil {
		return "", err
	}
	if o := r.orgs[org]; o != nil && o.wallet != "" {
		return r.resolvePath(o.wallet), nil
	}
	p, err := r.render(ctx, org, r.walletTemplate)
	if err != nil {
		return "", err
	}
	return r.resolvePath(p), nil
}

func (r *resolver) GetMSPID(ctx context.Context, org string) (string, error) {
	if err := checkOrganization(ctx, org); err != nil {
		return "", err
	}
	if o := r.orgs[org]; o != nil && o.mspID != "" {
		return o.mspID, nil
	}
	return r.render(ctx, org, r.mspIDTemplate)
}
