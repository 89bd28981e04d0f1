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
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/hyperledger/firefly-common/pkg/i18n"
	"github.com/hyperledger/firefly-fabquery/internal/fqmsgs"
	"golang.org/x/time/rate"
)

const (
	rateLimiterMaxOrgs = 1000
	rateLimiterIdleTTL = 10 * time.Minute
)

// orgRateLimiter holds a token bucket for each organization that has sent a query.
// Buckets for idle or least recently seen organizations are evicted once the cache fills.
type orgRateLimiter struct {
	limit rate.Limit
	burst int
	mux   sync.Mutex
	byOrg *lru.LRU[string, *rate.Limiter]
}

func newOrgRateLimiter(rps float64, burst int) *orgRateLimiter {
	return &orgRateLimiter{
		limit: rate.Limit(rps),
		burst: burst,
		byOrg: lru.NewLRU[string, *rate.Limiter](rateLimiterMaxOrgs, nil, rateLimiterIdleTTL),
	}
}

// check is a no-op on a nil limiter, so it can be called whether or not limiting is enabled
func (rl *orgRateLimiter) check(ctx context.Context, org string) error {
	if rl == nil {
		return nil
	}
	rl.mux.Lock()
	l, ok := rl.byOrg.Get(org)
	if !ok {
		l = rate.NewLimiter(rl.limit, rl.burst)
		rl.byOrg.Add(org, l)
	}
	rl.mux.Unlock()
	if !l.Allow() {
		return i18n.NewError(ctx, fqmsgs.MsgRateLimitExceeded, org)
	}
	return nil
}
