// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/huangsam/talentview/schema"
)

// EvaluationClient defines the read operations against the evaluation REST
// API. This allows the core logic to be tested without a real HTTP server,
// and lets a caching decorator wrap the plain client transparently.
type EvaluationClient interface {
	// CollaboratorMetrics returns the per-collaborator metrics for a cycle.
	CollaboratorMetrics(ctx context.Context, cycle string) ([]schema.CollaboratorMetric, error)

	// BrutalFactsMetrics returns the team-level aggregate snapshot for a cycle.
	BrutalFactsMetrics(ctx context.Context, cycle string) (*schema.BrutalFactsMetrics, error)

	// TeamAnalysis returns the free-text team analysis for a cycle.
	TeamAnalysis(ctx context.Context, cycle string) (*schema.TeamAnalysis, error)

	// TeamHistoricalPerformance returns the team trend across all cycles.
	TeamHistoricalPerformance(ctx context.Context) (*schema.TeamHistoricalPerformance, error)

	// TalentMatrix returns the 9-box dataset for a cycle.
	TalentMatrix(ctx context.Context, cycle string) (*schema.TalentMatrixData, error)

	// PerformanceHistory returns one subordinate's score history.
	PerformanceHistory(ctx context.Context, subordinateID string) (*schema.PerformanceHistory, error)

	// Projects returns the project assignments of a user.
	Projects(ctx context.Context, userID string) ([]schema.Project, error)
}

// Cache defines the short-lived read-through cache for API responses.
// Implementations decide expiry; callers only see hit or miss.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Invalidate(key string)
	InvalidateAll()
	Status() schema.CacheStatus
}

// SnapshotStore defines the interface for recording team-overview fetches
// for longitudinal tracking.
type SnapshotStore interface {
	// BeginRun creates a new snapshot run and returns its unique ID
	BeginRun(startTime time.Time, configParams map[string]any) (int64, error)

	// EndRun updates the snapshot run with completion data
	EndRun(runID int64, endTime time.Time, totalCollaborators int) error

	// RecordCollaborator stores one collaborator's scores for the run
	RecordCollaborator(runID int64, cycle string, c schema.ProcessedCollaborator) error

	// GetAllRuns returns every recorded snapshot run
	GetAllRuns() ([]schema.SnapshotRunRecord, error)

	// GetAllScores returns every recorded collaborator score row
	GetAllScores() ([]schema.SnapshotScoreRecord, error)

	// GetStatus returns status information about the snapshot store
	GetStatus() (schema.SnapshotStatus, error)

	// Close closes the underlying connection
	Close() error
}

// CacheManager defines the interface for accessing the cache and snapshot
// stores. This allows the storage layer to be mocked for testing.
type CacheManager interface {
	GetCache() Cache
	GetSnapshotStore() SnapshotStore
}
