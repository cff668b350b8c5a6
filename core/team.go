package core

import (
	"context"
	"time"

	"github.com/huangsam/talentview/internal/contract"
	"github.com/huangsam/talentview/schema"
)

// GetTeamOverviewResults fetches the team's metrics for the configured cycle
// and returns the filtered, sorted, limited listing.
func GetTeamOverviewResults(ctx context.Context, cfg *contract.Config, client contract.EvaluationClient) ([]schema.ProcessedCollaborator, error) {
	metrics, err := client.CollaboratorMetrics(ctx, cfg.Cycle)
	if err != nil {
		return nil, err
	}

	processed := TransformAll(metrics)
	results := Query(processed, QueryOptions{
		Search: cfg.Search,
		Status: cfg.StatusFilter,
		Band:   cfg.Band,
		Sort:   cfg.Sort,
	})

	if len(results) > cfg.ResultLimit {
		results = results[:cfg.ResultLimit]
	}
	return results, nil
}

// ExecuteTeamOverview runs the team overview with optional snapshot
// tracking. Tracking failures are logged as warnings and never fail the
// overview itself.
func ExecuteTeamOverview(ctx context.Context, cfg *contract.Config, client contract.EvaluationClient, mgr contract.CacheManager) ([]schema.ProcessedCollaborator, error) {
	// --- 0. Begin Snapshot Tracking (if configured) ---
	var runID int64
	snapshotStore := mgr.GetSnapshotStore()
	if snapshotStore != nil {
		startTime := time.Now()
		configParams := map[string]any{
			"cycle":        cfg.Cycle,
			"search":       cfg.Search,
			"status":       cfg.StatusFilter,
			"band":         string(cfg.Band),
			"sort":         string(cfg.Sort),
			"result_limit": cfg.ResultLimit,
		}
		var err error
		runID, err = snapshotStore.BeginRun(startTime, configParams)
		if err != nil {
			contract.LogWarn("Snapshot tracking initialization failed", err)
			runID = 0
		}
	}

	// --- 1. Fetch, transform, and query ---
	results, err := GetTeamOverviewResults(ctx, cfg, client)
	if err != nil {
		return nil, err
	}

	// --- 2. Record and end tracking ---
	if snapshotStore != nil && runID > 0 {
		for _, c := range results {
			if err := snapshotStore.RecordCollaborator(runID, cfg.Cycle, c); err != nil {
				contract.LogWarn("Snapshot tracking failed for "+c.ID, err)
			}
		}
		if err := snapshotStore.EndRun(runID, time.Now(), len(results)); err != nil {
			contract.LogWarn("Failed to finalize snapshot tracking", err)
		}
	}

	return results, nil
}

// GetTalentMatrixResults fetches the matrix dataset for the configured cycle
// and groups its positions into the 3x3 grid. A category filter narrows the
// positions before grouping.
func GetTalentMatrixResults(ctx context.Context, cfg *contract.Config, client contract.EvaluationClient) (*GroupedMatrix, error) {
	data, err := client.TalentMatrix(ctx, cfg.Cycle)
	if err != nil {
		return nil, err
	}

	if cfg.Category != "" && !data.HasInsufficientData {
		filtered := *data
		filtered.Positions = FilterByLabel(data.Positions, cfg.Category)
		data = &filtered
	}

	return GroupPositions(data)
}
