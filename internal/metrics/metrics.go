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

package metrics

import (
	"context"
	"net/http"

	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/metric"
	"github.com/hyperledger/firefly-fabquery/internal/fqconfig"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsComponentName = "fabquery"

type metricsManager struct {
	ctx                   context.Context
	metricsEnabled        bool
	registry              metric.MetricsRegistry
	queryMetricsManager   metric.MetricsManager
	connectMetricsManager metric.MetricsManager
}

type Metrics interface {
	IsMetricsEnabled() bool

	// HTTPHandler serves the registry in the prometheus text format
	HTTPHandler() (http.Handler, error)

	QueryMetricsEmitter
	ConnectionMetricsEmitter
}

func NewMetricsManager(ctx context.Context) (Metrics, error) {
	registry := metric.NewPrometheusMetricsRegistry(metricsComponentName)
	queryMetricsManager, err := registry.NewMetricsManagerForSubsystem(ctx, "query")
	if err != nil {
		return nil, err
	}
	connectMetricsManager, err := registry.NewMetricsManagerForSubsystem(ctx, "connections")
	if err != nil {
		return nil, err
	}
	mm := &metricsManager{
		ctx:                   ctx,
		metricsEnabled:        config.GetBool(fqconfig.MonitoringEnabled),
		registry:              registry,
		queryMetricsManager:   queryMetricsManager,
		connectMetricsManager: connectMetricsManager,
	}
	mm.InitQueryMetrics()
	mm.InitConnectionMetrics()
	return mm, nil
}

func (mm *metricsManager) IsMetricsEnabled() bool {
	return mm.metricsEnabled
}

func (mm *metricsManager) HTTPHandler() (http.Handler, error) {
	return mm.registry.HTTPHandler(mm.ctx, promhttp.HandlerOpts{})
}
