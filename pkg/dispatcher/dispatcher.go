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

package dispatcher

import (
	"context"
	"encoding/json"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/hyperledger/firefly-fabquery/internal/connections"
	"github.com/hyperledger/firefly-fabquery/internal/fqconfig"
	"github.com/hyperledger/firefly-fabquery/internal/fqmsgs"
	"github.com/hyperledger/firefly-fabquery/internal/metrics"
	"github.com/hyperledger/firefly-fabquery/internal/persistence"
	"github.com/hyperledger/firefly-fabquery/internal/profiles"
	"github.com/hyperledger/firefly-fabquery/internal/registrar"
	"github.com/hyperledger/firefly-fabquery/internal/wallet"
	"github.com/hyperledger/firefly-fabquery/pkg/apitypes"
	"github.com/hyperledger/firefly-fabquery/pkg/fabcapi"
)

const statusNotEnrolled = "404"

// Caller supplied names outside the function table share one metrics label
const unknownFunctionLabel = "unknown"

// Dispatcher evaluates read-only chaincode functions on behalf of wallet identities
type Dispatcher interface {
	// Query returns a failure envelope, rather than an error, for anything that goes wrong once
	// the request is valid. The exception is an identity missing from the wallet, which gives
	// no envelope and an error with the identity_not_enrolled reason
	Query(ctx context.Context, req *apitypes.InvocationRequest) (*apitypes.ResponseEnvelope, error)
	Functions() []*apitypes.FunctionDescriptor
}

type dispatcher struct {
	functions        FunctionTable
	profiles         profiles.Resolver
	identities       persistence.IdentityPersistence
	registrar        registrar.Registrar
	connector        fabcapi.Connector
	connections      connections.Manager
	metrics          metrics.QueryMetricsEmitter
	asLocalhost      bool
	connectTimeout   time.Duration
	registerAsAdmin  bool
	retryAfterEnroll bool
}

func NewDispatcher(ctx context.Context, resolver profiles.Resolver, identities persistence.IdentityPersistence, reg registrar.Registrar, connector fabcapi.Connector, cm connections.Manager, emitter metrics.QueryMetricsEmitter) (Dispatcher, error) {
	functions, err := NewFunctionTable(ctx)
	if err != nil {
		return nil, err
	}
	return &dispatcher{
		functions:        functions,
		profiles:         resolver,
		identities:       identities,
		registrar:        reg,
		connector:        connector,
		connections:      cm,
		metrics:          emitter,
		asLocalhost:      config.GetBool(fqconfig.FabricAsLocalhost),
		connectTimeout:   config.GetDuration(fqconfig.FabricConnectTimeout),
		registerAsAdmin:  config.GetBool(fqconfig.RegistrationAsAdmin),
		retryAfterEnroll: config.GetBool(fqconfig.RegistrationRetryAfterEnroll),
	}, nil
}

func (d *dispatcher) Functions() []*apitypes.FunctionDescriptor {
	return d.functions.Descriptors()
}

func (d *dispatcher) Query(ctx context.Context, req *apitypes.InvocationRequest) (*apitypes.ResponseEnvelope, error) {
	if err := req.Validate(ctx); err != nil {
		return nil, err
	}
	ctx = log.WithLogField(ctx, "fn", req.FunctionName)
	startTime := time.Now()
	log.L(ctx).Debugf("Query channel=%s chaincode=%s org=%s identity=%s args=%d", req.ChannelName, req.ContractName, req.Organization, req.Identity, len(req.Args))

	env, err := d.query(ctx, req)

	status := statusNotEnrolled
	if env != nil {
		status = strconv.Itoa(env.Status)
		if env.Status == apitypes.StatusOK {
			log.L(ctx).Debugf("Query succeeded in %s", time.Since(startTime))
		} else {
			log.L(ctx).Debugf("Query failed in %s reason=%s: %s", time.Since(startTime), env.Reason, *env.Error)
		}
	} else {
		log.L(ctx).Infof("Query not dispatched: %s", err)
	}
	fnLabel := req.FunctionName
	if _, known := d.functions[fnLabel]; !known {
		fnLabel = unknownFunctionLabel
	}
	d.metrics.RecordQueryMetrics(ctx, fnLabel, status, time.Since(startTime).Seconds())
	return env, err
}

func (d *dispatcher) query(ctx context.Context, req *apitypes.InvocationRequest) (*apitypes.ResponseEnvelope, error) {
	profile, err := d.profiles.GetProfile(ctx, req.Organization)
	if err != nil {
		return apitypes.FailureEnvelope(fabcapi.ErrorReasonUnderlying, err), nil
	}

	id, err := d.identities.GetIdentity(ctx, req.Organization, req.Identity)
	if err != nil {
		return apitypes.FailureEnvelope(fabcapi.ErrorReasonUnderlying, err), nil
	}
	if id == nil {
		var env *apitypes.ResponseEnvelope
		if id, env, err = d.enroll(ctx, req); id == nil {
			return env, err
		}
	}

	args, err := d.functions.Args(ctx, req.FunctionName, req.Args)
	if err != nil {
		reason := fabcapi.ErrorReasonUnknownFunction
		if _, known := d.functions[req.FunctionName]; known {
			reason = fabcapi.ErrorReasonArityMismatch
		}
		return apitypes.FailureEnvelope(reason, err), nil
	}

	key := connections.Key(req.Organization, req.Identity)
	h, err := d.connections.Acquire(ctx, key, func(ctx context.Context) (fabcapi.Gateway, error) {
		return d.connector.Connect(ctx, &fabcapi.ConnectOptions{
			Organization: req.Organization,
			Identity:     req.Identity,
			Profile:      profile,
			Credential:   wallet.CredentialOf(id),
			AsLocalhost:  d.asLocalhost,
			Timeout:      d.connectTimeout,
		})
	})
	if err != nil {
		return apitypes.FailureEnvelope(fabcapi.ClassifyError(err), err), nil
	}
	defer h.Release()

	env := d.evaluate(ctx, h.Gateway(), req, args)
	if env.Reason == fabcapi.ErrorReasonConnectionFailed || env.Reason == fabcapi.ErrorReasonAuthorizationFailed {
		d.connections.Invalidate(key)
	}
	return env, nil
}

// enroll handles an identity that is not in the wallet. The identity is only returned when it
// has been registered and the query should carry on, otherwise one of the envelope or error is set.
func (d *dispatcher) enroll(ctx context.Context, req *apitypes.InvocationRequest) (*apitypes.Identity, *apitypes.ResponseEnvelope, error) {
	log.L(ctx).Infof("Identity '%s' of organization '%s' is not in the wallet. Requesting registration", req.Identity, req.Organization)
	if _, err := d.registrar.Register(ctx, req.Organization, req.Identity, d.registerAsAdmin); err != nil {
		return nil, apitypes.FailureEnvelope(fabcapi.ErrorReasonUnderlying, err), nil
	}
	if !d.retryAfterEnroll {
		return nil, nil, notEnrolled(ctx, req)
	}
	id, err := d.identities.GetIdentity(ctx, req.Organization, req.Identity)
	if err != nil {
		return nil, apitypes.FailureEnvelope(fabcapi.ErrorReasonUnderlying, err), nil
	}
	if id == nil {
		return nil, nil, notEnrolled(ctx, req)
	}
	return id, nil, nil
}

func notEnrolled(ctx context.Context, req *apitypes.InvocationRequest) error {
	return fabcapi.WithReason(i18n.NewError(ctx, fqmsgs.MsgIdentityNotEnrolled, req.Identity, req.Organization), fabcapi.ErrorReasonIdentityNotEnrolled)
}

func (d *dispatcher) evaluate(ctx context.Context, gw fabcapi.Gateway, req *apitypes.InvocationRequest, args []string) *apitypes.ResponseEnvelope {
	network, err := gw.GetNetwork(req.ChannelName)
	if err != nil {
		return apitypes.FailureEnvelope(fabcapi.ClassifyError(err), err)
	}
	contract := network.GetContract(req.ContractName)

	b, err := contract.EvaluateTransaction(ctx, req.FunctionName, args...)
	if err != nil {
		return apitypes.FailureEnvelope(fabcapi.ClassifyError(err), err)
	}
	if !utf8.Valid(b) || !json.Valid(b) {
		return apitypes.FailureEnvelope(fabcapi.ErrorReasonSerializationFailed, i18n.NewError(ctx, fqmsgs.MsgResultNotJSON, req.FunctionName))
	}
	return apitypes.SuccessEnvelope(b)
}
