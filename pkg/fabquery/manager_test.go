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

package fabquery

import (
	"context"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/httpserver"
	"github.com/hyperledger/firefly-fabquery/internal/fqconfig"
	"github.com/hyperledger/firefly-fabquery/mocks/dispatchermocks"
	"github.com/hyperledger/firefly-fabquery/mocks/fabcapimocks"
	"github.com/hyperledger/firefly-fabquery/mocks/persistencemocks"
	"github.com/hyperledger/firefly-fabquery/mocks/registrarmocks"
	"github.com/hyperledger/firefly-fabquery/pkg/apitypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testMocks struct {
	dispatcher  *dispatchermocks.Dispatcher
	persistence *persistencemocks.Persistence
	registrar   *registrarmocks.Registrar
}

func freePort(t *testing.T) string {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()
	return strings.Split(ln.Addr().String(), ":")[1]
}

func baseTestConfig(t *testing.T) {
	InitConfig()
	config.Set(fqconfig.ProfilesDirectory, t.TempDir())
	fqconfig.APIConfig.Set(httpserver.HTTPConfAddress, "127.0.0.1")
	fqconfig.APIConfig.Set(httpserver.HTTPConfPort, freePort(t))
}

func newTestManager(t *testing.T, confSetup ...func()) (string, *manager, *testMocks, func()) {
	baseTestConfig(t)
	for _, fn := range confSetup {
		fn()
	}

	m, err := newManager(context.Background(), fabcapimocks.NewConnector(t))
	require.NoError(t, err)

	tm := &testMocks{
		dispatcher:  dispatchermocks.NewDispatcher(t),
		persistence: persistencemocks.NewPersistence(t),
		registrar:   registrarmocks.NewRegistrar(t),
	}
	tm.dispatcher.On("Functions").Return([]*apitypes.FunctionDescriptor{}).Maybe()
	tm.persistence.On("Close", mock.Anything).Return().Maybe()
	m.dispatcher = tm.dispatcher
	m.persistence = tm.persistence
	m.registrar = tm.registrar

	return fmt.Sprintf("http://%s", m.apiServer.Addr()), m, tm, m.Close
}

func newTestMonitoringManager(t *testing.T) (string, *manager, *testMocks, func()) {
	return newTestManager(t, func() {
		config.Set(fqconfig.MonitoringEnabled, true)
		fqconfig.MonitoringConfig.Set(httpserver.HTTPConfAddress, "127.0.0.1")
		fqconfig.MonitoringConfig.Set(httpserver.HTTPConfPort, freePort(t))
	})
}

func TestNewManagerDefaults(t *testing.T) {
	baseTestConfig(t)
	mm, err := NewManager(context.Background())
	require.NoError(t, err)
	m := mm.(*manager)
	assert.Nil(t, m.rateLimiter)
	assert.Nil(t, m.monitoringServer)
	assert.NotEmpty(t, m.dispatcher.Functions())
	m.Close()
}

func TestNewManagerLevelDB(t *testing.T) {
	baseTestConfig(t)
	config.Set(fqconfig.PersistenceType, "leveldb")
	config.Set(fqconfig.PersistenceLevelDBPath, filepath.Join(t.TempDir(), "ldb"))
	mm, err := NewManager(context.Background())
	require.NoError(t, err)
	mm.Close()
}

func TestNewManagerLevelDBMissingPath(t *testing.T) {
	baseTestConfig(t)
	config.Set(fqconfig.PersistenceType, "leveldb")
	_, err := NewManager(context.Background())
	assert.Regexp(t, "FF21122", err)
}

func TestNewManagerPostgresMissingURL(t *testing.T) {
	baseTestConfig(t)
	config.Set(fqconfig.PersistenceType, "postgres")
	_, err := NewManager(context.Background())
	assert.Regexp(t, "FF00183", err)
}

func TestNewManagerBadPersistenceType(t *testing.T) {
	baseTestConfig(t)
	config.Set(fqconfig.PersistenceType, "wrong")
	_, err := NewManager(context.Background())
	assert.Regexp(t, "FF21120.*wrong", err)
}

func TestNewManagerBadProfileTemplate(t *testing.T) {
	baseTestConfig(t)
	config.Set(fqconfig.ProfilesPathTemplate, "{{ .Organization")
	_, err := NewManager(context.Background())
	assert.Regexp(t, "FF21105", err)
}

func TestNewManagerBadAffiliationTemplate(t *testing.T) {
	baseTestConfig(t)
	config.Set(fqconfig.RegistrationAffiliation, "{{ end }}")
	_, err := NewManager(context.Background())
	assert.Regexp(t, "FF21105", err)
}

func TestNewManagerBadCacheSize(t *testing.T) {
	baseTestConfig(t)
	config.Set(fqconfig.ConnectionsCacheEnabled, true)
	config.Set(fqconfig.ConnectionsCacheSize, 0)
	_, err := NewManager(context.Background())
	assert.Regexp(t, "FF21139", err)
}

func TestNewManagerBadFunctionTable(t *testing.T) {
	InitConfig()
	cfgFile := filepath.Join(t.TempDir(), "fabquery.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("contracts:\n  functions:\n  - arity: 1\n"), 0644))
	require.NoError(t, config.ReadConfig("fabquery", cfgFile))
	config.Set(fqconfig.ProfilesDirectory, t.TempDir())
	_, err := NewManager(context.Background())
	assert.Regexp(t, "FF21108", err)
}

func TestNewManagerBadHTTPConfig(t *testing.T) {
	baseTestConfig(t)
	fqconfig.APIConfig.Set(httpserver.HTTPConfAddress, "::::")
	_, err := NewManager(context.Background())
	assert.Regexp(t, "FF00151", err)
}

func TestNewManagerBadMonitoringConfig(t *testing.T) {
	baseTestConfig(t)
	config.Set(fqconfig.MonitoringEnabled, true)
	fqconfig.MonitoringConfig.Set(httpserver.HTTPConfAddress, "::::")
	_, err := NewManager(context.Background())
	assert.Regexp(t, "FF00151", err)
}

func TestNewManagerRateLimitEnabled(t *testing.T) {
	baseTestConfig(t)
	config.Set(fqconfig.APIRateLimitEnabled, true)
	mm, err := NewManager(context.Background())
	require.NoError(t, err)
	m := mm.(*manager)
	assert.NotNil(t, m.rateLimiter)
	assert.Equal(t, 100, m.rateLimiter.burst)
	m.Close()
}

func TestStartWaitStop(t *testing.T) {
	_, m, _, _ := newTestMonitoringManager(t)
	require.NoError(t, m.Start())
	assert.True(t, m.started.Load())
	m.cancelCtx()
	assert.NoError(t, m.WaitStop())
	assert.False(t, m.started.Load())
}

func TestReadyStatusNotStarted(t *testing.T) {
	_, m, _, done := newTestManager(t)
	defer done()
	_, err := m.getReadyStatus(context.Background())
	assert.Regexp(t, "FF21137", err)
}

func TestReadyStatusConcurrentWithStop(t *testing.T) {
	_, m, _, _ := newTestMonitoringManager(t)
	require.NoError(t, m.Start())

	polled := make(chan struct{})
	go func() {
		defer close(polled)
		for i := 0; i < 100; i++ {
			_, _ = m.getReadyStatus(context.Background())
		}
	}()
	m.cancelCtx()
	assert.NoError(t, m.WaitStop())
	<-polled
	_, err := m.getReadyStatus(context.Background())
	assert.Regexp(t, "FF21137", err)
}
