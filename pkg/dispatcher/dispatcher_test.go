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
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-fabquery/internal/connections"
	"github.com/hyperledger/firefly-fabquery/internal/fqconfig"
	"github.com/hyperledger/firefly-fabquery/mocks/fabcapimocks"
	"github.com/hyperledger/firefly-fabquery/mocks/persistencemocks"
	"github.com/hyperledger/firefly-fabquery/mocks/profilesmocks"
	"github.com/hyperledger/firefly-fabquery/mocks/registrarmocks"
	"github.com/hyperledger/firefly-fabquery/pkg/apitypes"
	"github.com/hyperledger/firefly-fabquery/pkg/fabcapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testProfile = `{"name":"test-network-org1","organizations":{"Org1":{"mspid":"Org1MSP"}}}`

type testEmitter struct {
	mux      sync.Mutex
	statuses []string
}

func (te *testEmitter) RecordQueryMetrics(_ context.Context, function, status string, _ float64) {
	te.mux.Lock()
	defer te.mux.Unlock()
	te.statuses = append(te.statuses, fmt.Sprintf("%s:%s", function, status))
}

func (te *testEmitter) RecordConnectionAcquire(context.Context, string) {}

func (te *testEmitter) RecordConnectionClose(context.Context) {}

type testMocks struct {
	resolver    *profilesmocks.Resolver
	persistence *persistencemocks.Persistence
	registrar   *registrarmocks.Registrar
	connector   *fabcapimocks.Connector
	gateway     *fabcapimocks.Gateway
	network     *fabcapimocks.Network
	contract    *fabcapimocks.Contract
	emitter     *testEmitter
}

func newTestDispatcher(t *testing.T, confSetup ...func()) (*dispatcher, *testMocks, func()) {
	fqconfig.Reset()
	for _, fn := range confSetup {
		fn()
	}
	tm := &testMocks{
		resolver:    profilesmocks.NewResolver(t),
		persistence: persistencemocks.NewPersistence(t),
		registrar:   registrarmocks.NewRegistrar(t),
		connector:   fabcapimocks.NewConnector(t),
		gateway:     fabcapimocks.NewGateway(t),
		network:     fabcapimocks.NewNetwork(t),
		contract:    fabcapimocks.NewContract(t),
		emitter:     &testEmitter{},
	}
	ctx := context.Background()
	cm, err := connections.NewManager(ctx, tm.emitter)
	require.NoError(t, err)
	d, err := NewDispatcher(ctx, tm.resolver, tm.persistence, tm.registrar, tm.connector, cm, tm.emitter)
	require.NoError(t, err)
	return d.(*dispatcher), tm, cm.Close
}

func testRequest(fn string, args ...string) *apitypes.InvocationRequest {
	return &apitypes.InvocationRequest{
		ChannelName:  "mychannel",
		ContractName: "references",
		FunctionName: fn,
		Args:         args,
		Identity:     "user1",
		Organization: "org1",
	}
}

func (tm *testMocks) enrolled() {
	tm.resolver.On("GetProfile", mock.Anything, "org1").Return([]byte(testProfile), nil)
	tm.persistence.On("GetIdentity", mock.Anything, "org1", "user1").Return(apitypes.NewIdentity("org1", "user1", "Org1MSP", "cert", "key"), nil)
}

func (tm *testMocks) connected() {
	tm.connector.On("Connect", mock.Anything, mock.MatchedBy(func(opts *fabcapi.ConnectOptions) bool {
		return opts.Organization == "org1" &&
			opts.Identity == "user1" &&
			string(opts.Profile) == testProfile &&
			opts.Credential != nil &&
			opts.Credential.MSPID == "Org1MSP" &&
			opts.Credential.Certificate == "cert" &&
			opts.Credential.PrivateKey == "key" &&
			opts.AsLocalhost &&
			opts.Timeout == 30*time.Second
	})).Return(tm.gateway, nil)
	tm.gateway.On("GetNetwork", "mychannel").Return(tm.network, nil)
	tm.network.On("GetContract", "references").Return(tm.contract)
}

func TestQueryGetProfile(t *testing.T) {
	d, tm, done := newTestDispatcher(t)
	defer done()
	tm.enrolled()
	tm.connected()
	tm.contract.On("EvaluateTransaction", mock.Anything, "getProfile", "user1").Return([]byte(`{"id":"123","name":"Alice"}`), nil)
	tm.gateway.On("Close").Return().Once()

	env, err := d.Query(context.Background(), testRequest("getProfile", "user1"))
	require.NoError(t, err)
	assert.Equal(t, apitypes.StatusOK, env.Status)
	assert.JSONEq(t, `{"id":"123","name":"Alice"}`, env.Result.String())
	assert.Nil(t, env.Error)
	assert.Nil(t, env.ErrorData)
	assert.Equal(t, []string{"getProfile:200"}, tm.emitter.statuses)
}

func TestQueryNoArgsEmptyArray(t *testing.T) {
	d, tm, done := newTestDispatcher(t)
	defer done()
	tm.enrolled()
	tm.connected()
	tm.contract.On("EvaluateTransaction", mock.Anything, "getAllPendingReferences").Return([]byte(`[]`), nil)
	tm.gateway.On("Close").Return().Once()

	env, err := d.Query(context.Background(), testRequest("getAllPendingReferences"))
	require.NoError(t, err)
	assert.Equal(t, apitypes.StatusOK, env.Status)
	assert.Equal(t, `[]`, env.Result.String())
}

func TestQueryExtraArgsDropped(t *testing.T) {
	d, tm, done := newTestDispatcher(t)
	defer done()
	tm.enrolled()
	tm.connected()
	tm.contract.On("EvaluateTransaction", mock.Anything, "getAllContractorReferencesByStatus", "c1", "pending").Return([]byte(`[{"id":"r1"}]`), nil)
	tm.gateway.On("Close").Return().Once()

	env, err := d.Query(context.Background(), testRequest("getAllContractorReferencesByStatus", "c1", "pending", "ignored"))
	require.NoError(t, err)
	assert.Equal(t, apitypes.StatusOK, env.Status)
	assert.JSONEq(t, `[{"id":"r1"}]`, env.Result.String())
}

func TestQueryAccessDenied(t *testing.T) {
	d, tm, done := newTestDispatcher(t)
	defer done()
	tm.enrolled()
	tm.connected()
	tm.contract.On("EvaluateTransaction", mock.Anything, "restictedMethod", "x").Return(nil, fmt.Errorf("access denied"))
	tm.gateway.On("Close").Return().Once()

	env, err := d.Query(context.Background(), testRequest("restictedMethod", "x"))
	require.NoError(t, err)
	assert.Equal(t, apitypes.StatusFailed, env.Status)
	assert.Equal(t, apitypes.ResultFail, env.Result.String())
	assert.Equal(t, "access denied", *env.Error)
	assert.Nil(t, env.ErrorData)
	assert.Equal(t, fabcapi.ErrorReasonAuthorizationFailed, env.Reason)
	assert.Equal(t, []string{"restictedMethod:500"}, tm.emitter.statuses)
}

func TestQueryResultNotJSON(t *testing.T) {
	d, tm, done := newTestDispatcher(t)
	defer done()
	tm.enrolled()
	tm.connected()
	tm.contract.On("EvaluateTransaction", mock.Anything, "getStatistics", "c1").Return([]byte(`not json`), nil).Once()
	tm.contract.On("EvaluateTransaction", mock.Anything, "getStatistics", "c2").Return([]byte{'"', 0xff, '"'}, nil).Once()
	tm.gateway.On("Close").Return().Twice()

	env, err := d.Query(context.Background(), testRequest("getStatistics", "c1"))
	require.NoError(t, err)
	assert.Equal(t, apitypes.StatusFailed, env.Status)
	assert.Equal(t, fabcapi.ErrorReasonSerializationFailed, env.Reason)
	assert.Regexp(t, "FF21109", *env.Error)

	env, err = d.Query(context.Background(), testRequest("getStatistics", "c2"))
	require.NoError(t, err)
	assert.Equal(t, fabcapi.ErrorReasonSerializationFailed, env.Reason)
}

func TestQueryUnknownFunction(t *testing.T) {
	d, tm, done := newTestDispatcher(t)
	defer done()
	tm.enrolled()

	env, err := d.Query(context.Background(), testRequest("deleteEverything"))
	require.NoError(t, err)
	assert.Equal(t, apitypes.StatusFailed, env.Status)
	assert.Equal(t, fabcapi.ErrorReasonUnknownFunction, env.Reason)
	assert.Regexp(t, "FF21106.*deleteEverything", *env.Error)
	tm.connector.AssertNotCalled(t, "Connect", mock.Anything, mock.Anything)
}

func TestQueryUnknownFunctionsShareMetricsLabel(t *testing.T) {
	d, tm, done := newTestDispatcher(t)
	defer done()
	tm.enrolled()

	for i := 0; i < 3; i++ {
		env, err := d.Query(context.Background(), testRequest(fmt.Sprintf("junk%d", i)))
		require.NoError(t, err)
		assert.Equal(t, fabcapi.ErrorReasonUnknownFunction, env.Reason)
	}
	assert.Equal(t, []string{"unknown:500", "unknown:500", "unknown:500"}, tm.emitter.statuses)
}

func TestQueryArityMismatch(t *testing.T) {
	d, tm, done := newTestDispatcher(t)
	defer done()
	tm.enrolled()

	env, err := d.Query(context.Background(), testRequest("getContractorProfileForEmployer", "c1", "e1"))
	require.NoError(t, err)
	assert.Equal(t, apitypes.StatusFailed, env.Status)
	assert.Equal(t, fabcapi.ErrorReasonArityMismatch, env.Reason)
	assert.Regexp(t, "FF21107", *env.Error)
}

func TestQueryInvalidRequest(t *testing.T) {
	d, _, done := newTestDispatcher(t)
	defer done()
	req := testRequest("getProfile", "user1")
	req.ChannelName = ""
	env, err := d.Query(context.Background(), req)
	assert.Nil(t, env)
	assert.Regexp(t, "FF21101.*channel", err)
}

func TestQueryProfileFail(t *testing.T) {
	d, tm, done := newTestDispatcher(t)
	defer done()
	tm.resolver.On("GetProfile", mock.Anything, "org1").Return(nil, fmt.Errorf("pop"))

	env, err := d.Query(context.Background(), testRequest("getProfile", "user1"))
	require.NoError(t, err)
	assert.Equal(t, apitypes.StatusFailed, env.Status)
	assert.Equal(t, "pop", *env.Error)
}

func TestQueryIdentityLookupFail(t *testing.T) {
	d, tm, done := newTestDispatcher(t)
	defer done()
	tm.resolver.On("GetProfile", mock.Anything, "org1").Return([]byte(testProfile), nil)
	tm.persistence.On("GetIdentity", mock.Anything, "org1", "user1").Return(nil, fmt.Errorf("pop"))

	env, err := d.Query(context.Background(), testRequest("getProfile", "user1"))
	require.NoError(t, err)
	assert.Equal(t, apitypes.StatusFailed, env.Status)
	assert.Equal(t, "pop", *env.Error)
}

func TestQueryIdentityNotEnrolled(t *testing.T) {
	d, tm, done := newTestDispatcher(t)
	defer done()
	tm.resolver.On("GetProfile", mock.Anything, "org1").Return([]byte(testProfile), nil)
	tm.persistence.On("GetIdentity", mock.Anything, "org1", "user1").Return(nil, nil)
	tm.registrar.On("Register", mock.Anything, "org1", "user1", true).Return(apitypes.NewIdentity("org1", "user1", "Org1MSP", "cert", "key"), nil)

	env, err := d.Query(context.Background(), testRequest("getProfile", "user1"))
	assert.Nil(t, env)
	assert.Regexp(t, "FF21111.*user1.*org1", err)
	assert.Equal(t, fabcapi.ErrorReasonIdentityNotEnrolled, fabcapi.ClassifyError(err))
	assert.Equal(t, []string{"getProfile:404"}, tm.emitter.statuses)
	tm.connector.AssertNotCalled(t, "Connect", mock.Anything, mock.Anything)
}

func TestQueryRegistrationFail(t *testing.T) {
	d, tm, done := newTestDispatcher(t, func() {
		config.Set(fqconfig.RegistrationAsAdmin, false)
	})
	defer done()
	tm.resolver.On("GetProfile", mock.Anything, "org1").Return([]byte(testProfile), nil)
	tm.persistence.On("GetIdentity", mock.Anything, "org1", "user1").Return(nil, nil)
	tm.registrar.On("Register", mock.Anything, "org1", "user1", false).Return(nil, fmt.Errorf("ca unreachable"))

	env, err := d.Query(context.Background(), testRequest("getProfile", "user1"))
	require.NoError(t, err)
	assert.Equal(t, apitypes.StatusFailed, env.Status)
	assert.Equal(t, "ca unreachable", *env.Error)
}

func TestQueryRetryAfterEnroll(t *testing.T) {
	d, tm, done := newTestDispatcher(t, func() {
		config.Set(fqconfig.RegistrationRetryAfterEnroll, true)
	})
	defer done()
	id := apitypes.NewIdentity("org1", "user1", "Org1MSP", "cert", "key")
	tm.resolver.On("GetProfile", mock.Anything, "org1").Return([]byte(testProfile), nil)
	tm.persistence.On("GetIdentity", mock.Anything, "org1", "user1").Return(nil, nil).Once()
	tm.persistence.On("GetIdentity", mock.Anything, "org1", "user1").Return(id, nil).Once()
	tm.registrar.On("Register", mock.Anything, "org1", "user1", true).Return(id, nil)
	tm.connected()
	tm.contract.On("EvaluateTransaction", mock.Anything, "getMyReferences", "user1").Return([]byte(`[]`), nil)
	tm.gateway.On("Close").Return().Once()

	env, err := d.Query(context.Background(), testRequest("getMyReferences", "user1"))
	require.NoError(t, err)
	assert.Equal(t, apitypes.StatusOK, env.Status)
}

func TestQueryRetryAfterEnrollStillMissing(t *testing.T) {
	d, tm, done := newTestDispatcher(t, func() {
		config.Set(fqconfig.RegistrationRetryAfterEnroll, true)
	})
	defer done()
	tm.resolver.On("GetProfile", mock.Anything, "org1").Return([]byte(testProfile), nil)
	tm.persistence.On("GetIdentity", mock.Anything, "org1", "user1").Return(nil, nil).Twice()
	tm.registrar.On("Register", mock.Anything, "org1", "user1", true).Return(&apitypes.Identity{}, nil)

	env, err := d.Query(context.Background(), testRequest("getMyReferences", "user1"))
	assert.Nil(t, env)
	assert.Regexp(t, "FF21111", err)
}

func TestQueryRetryAfterEnrollLookupFail(t *testing.T) {
	d, tm, done := newTestDispatcher(t, func() {
		config.Set(fqconfig.RegistrationRetryAfterEnroll, true)
	})
	defer done()
	tm.resolver.On("GetProfile", mock.Anything, "org1").Return([]byte(testProfile), nil)
	tm.persistence.On("GetIdentity", mock.Anything, "org1", "user1").Return(nil, nil).Once()
	tm.persistence.On("GetIdentity", mock.Anything, "org1", "user1").Return(nil, fmt.Errorf("pop")).Once()
	tm.registrar.On("Register", mock.Anything, "org1", "user1", true).Return(&apitypes.Identity{}, nil)

	env, err := d.Query(context.Background(), testRequest("getMyReferences", "user1"))
	require.NoError(t, err)
	assert.Equal(t, "pop", *env.Error)
}

func TestQueryConnectFail(t *testing.T) {
	d, tm, done := newTestDispatcher(t)
	defer done()
	tm.enrolled()
	tm.connector.On("Connect", mock.Anything, mock.Anything).Return(nil, fmt.Errorf("failed to connect: connection refused"))

	env, err := d.Query(context.Background(), testRequest("getProfile", "user1"))
	require.NoError(t, err)
	assert.Equal(t, apitypes.StatusFailed, env.Status)
	assert.Equal(t, fabcapi.ErrorReasonConnectionFailed, env.Reason)
	assert.Equal(t, "failed to connect: connection refused", *env.Error)
}

func TestQueryChannelNotFound(t *testing.T) {
	d, tm, done := newTestDispatcher(t)
	defer done()
	tm.enrolled()
	tm.connector.On("Connect", mock.Anything, mock.Anything).Return(tm.gateway, nil)
	tm.gateway.On("GetNetwork", "mychannel").Return(nil, fmt.Errorf("channel not found"))
	tm.gateway.On("Close").Return().Once()

	env, err := d.Query(context.Background(), testRequest("getProfile", "user1"))
	require.NoError(t, err)
	assert.Equal(t, fabcapi.ErrorReasonContractNotFound, env.Reason)
}

func TestQueryCachedConnectionReusedAndInvalidated(t *testing.T) {
	d, tm, done := newTestDispatcher(t, func() {
		config.Set(fqconfig.ConnectionsCacheEnabled, true)
	})
	tm.enrolled()
	tm.connected()
	tm.contract.On("EvaluateTransaction", mock.Anything, "getProfile", "user1").Return([]byte(`{}`), nil).Twice()
	tm.contract.On("EvaluateTransaction", mock.Anything, "getProfile", "user2").Return(nil, fmt.Errorf("rpc error: code = Unavailable desc = connection refused")).Once()
	tm.contract.On("EvaluateTransaction", mock.Anything, "getProfile", "user3").Return([]byte(`{}`), nil).Once()

	ctx := context.Background()
	for _, arg := range []string{"user1", "user1"} {
		env, err := d.Query(ctx, testRequest("getProfile", arg))
		require.NoError(t, err)
		assert.Equal(t, apitypes.StatusOK, env.Status)
	}
	tm.connector.AssertNumberOfCalls(t, "Connect", 1)
	tm.gateway.AssertNotCalled(t, "Close")

	// The connection failure drops the cached session, which closes once released
	tm.gateway.On("Close").Return().Twice()
	env, err := d.Query(ctx, testRequest("getProfile", "user2"))
	require.NoError(t, err)
	assert.Equal(t, fabcapi.ErrorReasonConnectionFailed, env.Reason)
	tm.gateway.AssertNumberOfCalls(t, "Close", 1)

	env, err = d.Query(ctx, testRequest("getProfile", "user3"))
	require.NoError(t, err)
	assert.Equal(t, apitypes.StatusOK, env.Status)
	tm.connector.AssertNumberOfCalls(t, "Connect", 2)

	done()
	tm.gateway.AssertNumberOfCalls(t, "Close", 2)
}

func TestFunctions(t *testing.T) {
	d, _, done := newTestDispatcher(t)
	defer done()
	fds := d.Functions()
	assert.Len(t, fds, 19)
	for i := 1; i < len(fds); i++ {
		assert.Less(t, fds[i-1].Name, fds[i].Name)
	}
	assert.Equal(t, &apitypes.FunctionDescriptor{Name: "getAllContractorReferencesByStatus", Arity: 2}, fds[0])
}
