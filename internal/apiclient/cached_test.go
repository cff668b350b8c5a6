package apiclient

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/huangsam/talentview/internal/iocache"
	"github.com/huangsam/talentview/schema"
)

// fakeClient counts upstream calls and returns canned responses.
type fakeClient struct {
	calls   atomic.Int64
	metrics []schema.CollaboratorMetric
	err     error
}

func (f *fakeClient) CollaboratorMetrics(_ context.Context, _ string) ([]schema.CollaboratorMetric, error) {
	f.calls.Add(1)
	return f.metrics, f.err
}

func (f *fakeClient) BrutalFactsMetrics(_ context.Context, cycle string) (*schema.BrutalFactsMetrics, error) {
	f.calls.Add(1)
	return &schema.BrutalFactsMetrics{Cycle: cycle}, f.err
}

func (f *fakeClient) TeamAnalysis(_ context.Context, cycle string) (*schema.TeamAnalysis, error) {
	f.calls.Add(1)
	return &schema.TeamAnalysis{Cycle: cycle}, f.err
}

func (f *fakeClient) TeamHistoricalPerformance(_ context.Context) (*schema.TeamHistoricalPerformance, error) {
	f.calls.Add(1)
	return &schema.TeamHistoricalPerformance{}, f.err
}

func (f *fakeClient) TalentMatrix(_ context.Context, cycle string) (*schema.TalentMatrixData, error) {
	f.calls.Add(1)
	return &schema.TalentMatrixData{Cycle: cycle}, f.err
}

func (f *fakeClient) PerformanceHistory(_ context.Context, subordinateID string) (*schema.PerformanceHistory, error) {
	f.calls.Add(1)
	return &schema.PerformanceHistory{SubordinateID: subordinateID}, f.err
}

func (f *fakeClient) Projects(_ context.Context, _ string) ([]schema.Project, error) {
	f.calls.Add(1)
	return nil, f.err
}

// TestCachedClient tests the read-through caching behavior.
func TestCachedClient(t *testing.T) {
	ctx := context.Background()

	t.Run("second read hits the cache", func(t *testing.T) {
		inner := &fakeClient{metrics: []schema.CollaboratorMetric{{ID: "u1", Name: "Ana Oliveira"}}}
		cc := NewCachedClient(inner, iocache.NewMemCache(time.Minute))

		first, err := cc.CollaboratorMetrics(ctx, "2025.1")
		assert.NoError(t, err)
		second, err := cc.CollaboratorMetrics(ctx, "2025.1")
		assert.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, int64(1), inner.calls.Load())
	})

	t.Run("different cycles use different keys", func(t *testing.T) {
		inner := &fakeClient{}
		cc := NewCachedClient(inner, iocache.NewMemCache(time.Minute))

		_, _ = cc.BrutalFactsMetrics(ctx, "2025.1")
		_, _ = cc.BrutalFactsMetrics(ctx, "2025.2")
		assert.Equal(t, int64(2), inner.calls.Load())
	})

	t.Run("errors are never cached", func(t *testing.T) {
		inner := &fakeClient{err: errors.New("boom")}
		cc := NewCachedClient(inner, iocache.NewMemCache(time.Minute))

		_, err := cc.TalentMatrix(ctx, "2025.1")
		assert.Error(t, err)
		_, err = cc.TalentMatrix(ctx, "2025.1")
		assert.Error(t, err)
		assert.Equal(t, int64(2), inner.calls.Load())

		// After the upstream recovers, the next read succeeds and caches.
		inner.err = nil
		matrix, err := cc.TalentMatrix(ctx, "2025.1")
		assert.NoError(t, err)
		assert.Equal(t, "2025.1", matrix.Cycle)
	})

	t.Run("expired entries refetch", func(t *testing.T) {
		now := time.Now()
		inner := &fakeClient{}
		cc := NewCachedClient(inner, iocache.NewMemCacheWithClock(30*time.Second, func() time.Time { return now }))

		_, _ = cc.TeamHistoricalPerformance(ctx)
		_, _ = cc.TeamHistoricalPerformance(ctx)
		assert.Equal(t, int64(1), inner.calls.Load())

		now = now.Add(31 * time.Second)
		_, _ = cc.TeamHistoricalPerformance(ctx)
		assert.Equal(t, int64(2), inner.calls.Load())
	})

	t.Run("corrupt entry is invalidated and refetched", func(t *testing.T) {
		cache := iocache.NewMemCache(time.Minute)
		cache.Set("team-analysis:2025.1", []byte(`{not json`))

		inner := &fakeClient{}
		cc := NewCachedClient(inner, cache)

		analysis, err := cc.TeamAnalysis(ctx, "2025.1")
		assert.NoError(t, err)
		assert.Equal(t, "2025.1", analysis.Cycle)
		assert.Equal(t, int64(1), inner.calls.Load())
	})
}
