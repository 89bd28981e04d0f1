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

import "context"

const metricsLabelFunction = "function"
const metricsLabelStatus = "status"
const metricsLabelResult = "result"

const mtrCounterQueryTotal = "query_total"
const mtrCounterQueryTotalDescription = "Number of queries dispatched grouped by function and envelope status"
const mtrHistogramQueryDuration = "query_duration_seconds"
const mtrHistogramQueryDurationDescription = "Duration of queries grouped by function and envelope status"

const mtrCounterConnectionAcquireTotal = "connection_acquire_total"
const mtrCounterConnectionAcquireTotalDescription = "Number of gateway connections acquired grouped by whether they were dialed or reused from the cache"
const mtrCounterConnectionCloseTotal = "connection_close_total"
const mtrCounterConnectionCloseTotalDescription = "Number of gateway connections closed"

const (
	ConnectionDialed = "dialed"
	ConnectionCached = "cached"
)

type QueryMetricsEmitter interface {
	RecordQueryMetrics(ctx context.Context, function, status string, durationInSeconds float64)
}

type ConnectionMetricsEmitter interface {
	RecordConnectionAcquire(ctx context.Context, result string)
	RecordConnectionClose(ctx context.Context)
}

func (mm *metricsManager) RecordQueryMetrics(ctx context.Context, function, status string, durationInSeconds float64) {
	if mm.metricsEnabled {
		labels := map[string]string{metricsLabelFunction: function, metricsLabelStatus: status}
		mm.queryMetricsManager.IncCounterMetricWithLabels(ctx, mtrCounterQueryTotal, labels, nil)
		mm.queryMetricsManager.ObserveHistogramMetricWithLabels(ctx, mtrHistogramQueryDuration, durationInSeconds, labels, nil)
	}
}

func (mm *metricsManager) RecordConnectionAcquire(ctx context.Context, result string) {
	if mm.metricsEnabled {
		mm.connectMetricsManager.IncCounterMetricWithLabels(ctx, mtrCounterConnectionAcquireTotal, map[string]string{metricsLabelResult: result}, nil)
	}
}

func (mm *metricsManager) RecordConnectionClose(ctx context.Context) {
	if mm.metricsEnabled {
		mm.connectMetricsManager.IncCounterMetric(ctx, mtrCounterConnectionCloseTotal, nil)
	}
}

func (mm *metricsManager) InitQueryMetrics() {
	mm.queryMetricsManager.NewCounterMetricWithLabels(mm.ctx, mtrCounterQueryTotal, mtrCounterQueryTotalDescription, []string{metricsLabelFunction, metricsLabelStatus}, false)
	mm.queryMetricsManager.NewHistogramMetricWithLabels(mm.ctx, mtrHistogramQueryDuration, mtrHistogramQueryDurationDescription, []float64{} /*fallback to default buckets*/, []string{metricsLabelFunction, metricsLabelStatus}, false)
}

func (mm *metricsManager) InitConnectionMetrics() {
	mm.connectMetricsManager.NewCounterMetricWithLabels(mm.ctx, mtrCounterConnectionAcquireTotal, mtrCounterConnectionAcquireTotalDescription, []string{metricsLabelResult}, false)
	mm.connectMetricsManager.NewCounterMetric(mm.ctx, mtrCounterConnectionCloseTotal, mtrCounterConnectionCloseTotalDescription, false)
}
