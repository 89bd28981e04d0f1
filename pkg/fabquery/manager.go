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
	"sync/atomic"

	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/httpserver"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/hyperledger/firefly-fabquery/internal/connections"
	"github.com/hyperledger/firefly-fabquery/internal/fabric"
	"github.com/hyperledger/firefly-fabquery/internal/fqconfig"
	"github.com/hyperledger/firefly-fabquery/internal/fqmsgs"
	"github.com/hyperledger/firefly-fabquery/internal/metrics"
	"github.com/hyperledger/firefly-fabquery/internal/persistence"
	"github.com/hyperledger/firefly-fabquery/internal/persistence/filesystem"
	"github.com/hyperledger/firefly-fabquery/internal/persistence/leveldb"
	"github.com/hyperledger/firefly-fabquery/internal/persistence/postgres"
	"github.com/hyperledger/firefly-fabquery/internal/profiles"
	"github.com/hyperledger/firefly-fabquery/internal/registrar"
	"github.com/hyperledger/firefly-fabquery/pkg/dispatcher"
	"github.com/hyperledger/firefly-fabquery/pkg/fabcapi"
)

type Manager interface {
	Start() error
	// WaitStop blocks until the servers exit once the context is cancelled, then releases
	// every connection and the persistence
	WaitStop() error
	Close()
}

type manager struct {
	ctx         context.Context
	cancelCtx   func()
	connector   fabcapi.Connector
	profiles    profiles.Resolver
	persistence persistence.Persistence
	registrar   registrar.Registrar
	connections connections.Manager
	dispatcher  dispatcher.Dispatcher
	metrics     metrics.Metrics
	rateLimiter *orgRateLimiter

	apiServer            httpserver.HTTPServer
	apiServerDone        chan error
	monitoringEnabled    bool
	monitoringServer     httpserver.HTTPServer
	monitoringServerDone chan error
	metricsPath          string

	started atomic.Bool
}

func InitConfig() {
	fqconfig.Reset()
}

func NewManager(ctx context.Context) (Manager, error) {
	return newManager(ctx, fabric.NewConnector())
}

func newManager(ctx context.Context, connector fabcapi.Connector) (m *manager, err error) {
	m = &manager{
		connector:            connector,
		apiServerDone:        make(chan error),
		monitoringServerDone: make(chan error),
		monitoringEnabled:    config.GetBool(fqconfig.MonitoringEnabled),
		metricsPath:          config.GetString(fqconfig.MonitoringMetricsPath),
	}
	m.ctx, m.cancelCtx = context.WithCancel(ctx)

	if m.metrics, err = metrics.NewMetricsManager(m.ctx); err != nil {
		return nil, err
	}
	if m.profiles, err = profiles.NewResolver(m.ctx); err != nil {
		return nil, err
	}
	if err = m.initPersistence(m.ctx); err != nil {
		return nil, err
	}
	if m.registrar, err = registrar.NewRegistrar(m.ctx, m.profiles, m.persistence); err != nil {
		return nil, err
	}
	if m.connections, err = connections.NewManager(m.ctx, m.metrics); err != nil {
		return nil, err
	}
	if m.dispatcher, err = dispatcher.NewDispatcher(m.ctx, m.profiles, m.persistence, m.registrar, m.connector, m.connections, m.metrics); err != nil {
		return nil, err
	}
	if config.GetBool(fqconfig.APIRateLimitEnabled) {
		m.rateLimiter = newOrgRateLimiter(config.GetFloat64(fqconfig.APIRateLimitRequestsPerSecond), config.GetInt(fqconfig.APIRateLimitBurst))
	}

	if m.apiServer, err = httpserver.NewHTTPServer(ctx, "api", m.router(), m.apiServerDone, fqconfig.APIConfig, fqconfig.CorsConfig); err != nil {
		return nil, err
	}
	if m.monitoringEnabled {
		monitoringRouter, err := m.monitoringRouter()
		if err != nil {
			return nil, err
		}
		if m.monitoringServer, err = httpserver.NewHTTPServer(ctx, "monitoring", monitoringRouter, m.monitoringServerDone, fqconfig.MonitoringConfig, fqconfig.CorsConfig); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *manager) initPersistence(ctx context.Context) (err error) {
	pType := config.GetString(fqconfig.PersistenceType)
	switch pType {
	case persistence.TypeFilesystem:
		m.persistence = filesystem.NewFilesystemPersistence(m.profiles.GetWalletPath)
	case persistence.TypeLevelDB:
		m.persistence, err = leveldb.NewLevelDBPersistence(ctx)
	case persistence.TypePostgres:
		postgres.InitConfig(fqconfig.PostgresSection)
		m.persistence, err = postgres.NewPostgresPersistence(ctx, fqconfig.PostgresSection)
	default:
		return i18n.NewError(ctx, fqmsgs.MsgUnknownPersistence, pType)
	}
	if err != nil {
		return err
	}
	log.L(ctx).Infof("Initialized %s identity persistence", pType)
	return nil
}

func (m *manager) Start() error {
	m.started.Store(true)
	go m.runAPIServer()
	if m.monitoringEnabled {
		go m.runMonitoringServer()
	}
	log.L(m.ctx).Infof("Query dispatcher started with %d functions", len(m.dispatcher.Functions()))
	return nil
}

func (m *manager) WaitStop() (err error) {
	if m.started.Load() {
		err = <-m.apiServerDone
		if m.monitoringEnabled {
			<-m.monitoringServerDone
		}
		m.started.Store(false)
	}
	m.connections.Close()
	m.persistence.Close(m.ctx)
	return err
}

func (m *manager) Close() {
	m.cancelCtx()
	_ = m.WaitStop()
}
