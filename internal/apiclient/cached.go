package apiclient

import (
	"context"
	"encoding/json"

	"golang.org/x/sync/singleflight"

	"github.com/huangsam/talentview/internal/contract"
	"github.com/huangsam/talentview/schema"
)

// CachedClient is a read-through caching decorator around an
// EvaluationClient. Hits serve the cached JSON payload; misses fetch through
// the inner client and store the result. Concurrent misses on the same key
// are coalesced into one upstream request.
type CachedClient struct {
	inner contract.EvaluationClient
	cache contract.Cache
	group singleflight.Group
}

// NewCachedClient wraps inner with the given cache.
func NewCachedClient(inner contract.EvaluationClient, cache contract.Cache) *CachedClient {
	return &CachedClient{inner: inner, cache: cache}
}

// cachedFetch resolves key from the cache or, on a miss, fetches fresh data
// via fetch and stores the JSON-encoded result. Errors are never cached, so
// a transient failure does not poison the TTL window.
func cachedFetch[T any](ctx context.Context, cc *CachedClient, key string, fetch func(context.Context) (T, error)) (T, error) {
	var zero T
	if raw, ok := cc.cache.Get(key); ok {
		var value T
		if err := json.Unmarshal(raw, &value); err == nil {
			return value, nil
		}
		// Unreadable entry; drop it and fall through to a fresh fetch.
		cc.cache.Invalidate(key)
	}

	result, err, _ := cc.group.Do(key, func() (any, error) {
		value, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		if raw, err := json.Marshal(value); err == nil {
			cc.cache.Set(key, raw)
		}
		return value, nil
	})
	if err != nil {
		return zero, err
	}
	return result.(T), nil
}

// CollaboratorMetrics implements contract.EvaluationClient.
func (cc *CachedClient) CollaboratorMetrics(ctx context.Context, cycle string) ([]schema.CollaboratorMetric, error) {
	return cachedFetch(ctx, cc, "collaborators-metrics:"+cycle, func(ctx context.Context) ([]schema.CollaboratorMetric, error) {
		return cc.inner.CollaboratorMetrics(ctx, cycle)
	})
}

// BrutalFactsMetrics implements contract.EvaluationClient.
func (cc *CachedClient) BrutalFactsMetrics(ctx context.Context, cycle string) (*schema.BrutalFactsMetrics, error) {
	return cachedFetch(ctx, cc, "brutal-facts-metrics:"+cycle, func(ctx context.Context) (*schema.BrutalFactsMetrics, error) {
		return cc.inner.BrutalFactsMetrics(ctx, cycle)
	})
}

// TeamAnalysis implements contract.EvaluationClient.
func (cc *CachedClient) TeamAnalysis(ctx context.Context, cycle string) (*schema.TeamAnalysis, error) {
	return cachedFetch(ctx, cc, "team-analysis:"+cycle, func(ctx context.Context) (*schema.TeamAnalysis, error) {
		return cc.inner.TeamAnalysis(ctx, cycle)
	})
}

// TeamHistoricalPerformance implements contract.EvaluationClient.
func (cc *CachedClient) TeamHistoricalPerformance(ctx context.Context) (*schema.TeamHistoricalPerformance, error) {
	return cachedFetch(ctx, cc, "team-historical-performance", func(ctx context.Context) (*schema.TeamHistoricalPerformance, error) {
		return cc.inner.TeamHistoricalPerformance(ctx)
	})
}

// TalentMatrix implements contract.EvaluationClient.
func (cc *CachedClient) TalentMatrix(ctx context.Context, cycle string) (*schema.TalentMatrixData, error) {
	return cachedFetch(ctx, cc, "talent-matrix:"+cycle, func(ctx context.Context) (*schema.TalentMatrixData, error) {
		return cc.inner.TalentMatrix(ctx, cycle)
	})
}

// PerformanceHistory implements contract.EvaluationClient.
func (cc *CachedClient) PerformanceHistory(ctx context.Context, subordinateID string) (*schema.PerformanceHistory, error) {
	return cachedFetch(ctx, cc, "performance-history:"+subordinateID, func(ctx context.Context) (*schema.PerformanceHistory, error) {
		return cc.inner.PerformanceHistory(ctx, subordinateID)
	})
}

// Projects implements contract.EvaluationClient.
func (cc *CachedClient) Projects(ctx context.Context, userID string) ([]schema.Project, error) {
	return cachedFetch(ctx, cc, "projects:"+userID, func(ctx context.Context) ([]schema.Project, error) {
		return cc.inner.Projects(ctx, userID)
	})
}
