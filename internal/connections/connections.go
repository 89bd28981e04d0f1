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

package connections

import (
	"context"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/hyperledger/firefly-common/pkg/config"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-common/pkg/log"
	"github.com/hyperledger/firefly-fabquery/internal/fqconfig"
	"github.com/hyperledger/firefly-fabquery/internal/fqmsgs"
	"github.com/hyperledger/firefly-fabquery/internal/metrics"
	"github.com/hyperledger/firefly-fabquery/pkg/fabcapi"
)

// DialFn opens a new gateway session, when no usable one is held
type DialFn func(ctx context.Context) (fabcapi.Gateway, error)

// Handle is a scoped use of a gateway session. Release must be called exactly once on
// every path, and the gateway must not be used afterwards.
type Handle interface {
	Gateway() fabcapi.Gateway
	Release()
}

type Manager interface {
	Acquire(ctx context.Context, key string, dial DialFn) (Handle, error)
	// Invalidate drops the cached session for a key. Current holders can finish using it,
	// and it is closed on the last release
	Invalidate(key string)
	Close()
}

// Key identifies the session for an identity of an organization
func Key(org, identity string) string {
	return org + "/" + identity
}

type manager struct {
	ctx     context.Context
	metrics metrics.ConnectionMetricsEmitter
	mux     sync.Mutex
	cache   *lru.LRU[string, *entry]
	closed  bool
}

type entry struct {
	key     string
	m       *manager
	gw      fabcapi.Gateway
	mux     sync.Mutex
	refs    int
	evicted bool
	done    bool
}

type handle struct {
	e        *entry
	released sync.Once
}

func NewManager(ctx context.Context, emitter metrics.ConnectionMetricsEmitter) (Manager, error) {
	m := &manager{
		ctx:     ctx,
		metrics: emitter,
	}
	if config.GetBool(fqconfig.ConnectionsCacheEnabled) {
		size := config.GetInt(fqconfig.ConnectionsCacheSize)
		if size <= 0 {
			return nil, i18n.NewError(ctx, fqmsgs.MsgConnectionCacheInitFailed, "size must be greater than zero")
		}
		ttl := config.GetDuration(fqconfig.ConnectionsCacheTTL)
		m.cache = lru.NewLRU[string, *entry](size, m.onEvict, ttl)
		log.L(ctx).Infof("Gateway connection cache enabled size=%d ttl=%s", size, ttl)
	}
	return m, nil
}

// The cache calls this on expiry, capacity eviction, explicit removal and purge.
// It must not take the manager lock, as the cache can call it while that is held.
func (m *manager) onEvict(_ string, e *entry) {
	e.mux.Lock()
	e.evicted = true
	closeNow := e.refs == 0 && !e.done
	if closeNow {
		e.done = true
	}
	e.mux.Unlock()
	if closeNow {
		m.closeGateway(e)
	}
}

func (m *manager) closeGateway(e *entry) {
	log.L(m.ctx).Debugf("Closing gateway connection %s", e.key)
	e.gw.Close()
	m.metrics.RecordConnectionClose(m.ctx)
}

func (m *manager) Acquire(ctx context.Context, key string, dial DialFn) (Handle, error) {
	if m.cache == nil {
		gw, err := dial(ctx)
		if err != nil {
			return nil, err
		}
		m.metrics.RecordConnectionAcquire(ctx, metrics.ConnectionDialed)
		// Uncached entries are marked evicted, so the single release closes them
		return m.newHandle(&entry{key: key, m: m, gw: gw, evicted: true}), nil
	}

	if h := m.acquireCached(ctx, key); h != nil {
		return h, nil
	}

	gw, err := dial(ctx)
	if err != nil {
		return nil, err
	}
	m.metrics.RecordConnectionAcquire(ctx, metrics.ConnectionDialed)
	e := &entry{key: key, m: m, gw: gw}

	m.mux.Lock()
	if m.closed {
		// Not cached, so it closes on release
		e.evicted = true
	} else if existing, ok := m.cache.Peek(key); ok && existing.tryRef() {
		// Another caller dialed the same key concurrently, so keep theirs
		m.mux.Unlock()
		m.closeGateway(e)
		return &handle{e: existing}, nil
	} else {
		// Adding over an expired entry would replace it without the eviction callback
		m.cache.Remove(key)
		m.cache.Add(key, e)
	}
	e.refs++
	m.mux.Unlock()
	return &handle{e: e}, nil
}

func (m *manager) acquireCached(ctx context.Context, key string) Handle {
	m.mux.Lock()
	defer m.mux.Unlock()
	if m.closed {
		return nil
	}
	e, ok := m.cache.Get(key)
	if !ok || !e.tryRef() {
		return nil
	}
	log.L(ctx).Debugf("Reusing cached gateway connection %s", key)
	m.metrics.RecordConnectionAcquire(ctx, metrics.ConnectionCached)
	return &handle{e: e}
}

func (m *manager) newHandle(e *entry) Handle {
	e.refs++
	return &handle{e: e}
}

// tryRef takes a reference, unless the entry is already on its way to being closed
func (e *entry) tryRef() bool {
	e.mux.Lock()
	defer e.mux.Unlock()
	if e.evicted || e.done {
		return false
	}
	e.refs++
	return true
}

func (e *entry) release() {
	e.mux.Lock()
	e.refs--
	closeNow := e.refs <= 0 && e.evicted && !e.done
	if closeNow {
		e.done = true
	}
	e.mux.Unlock()
	if closeNow {
		e.m.closeGateway(e)
	}
}

func (h *handle) Gateway() fabcapi.Gateway {
	return h.e.gw
}

func (h *handle) Release() {
	h.released.Do(h.e.release)
}

func (m *manager) Invalidate(key string) {
	m.mux.Lock()
	defer m.mux.Unlock()
	if m.cache != nil {
		if m.cache.Remove(key) {
			log.L(m.ctx).Debugf("Invalidated gateway connection %s", key)
		}
	}
}

func (m *manager) Close() {
	m.mux.Lock()
	defer m.mux.Unlock()
	if m.cache != nil && !m.closed {
		m.closed = true
		m.cache.Purge()
	}
}
