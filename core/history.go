package core

import (
	"context"
	"errors"

	"github.com/huangsam/talentview/internal/contract"
	"github.com/huangsam/talentview/schema"
)

// GetTeamHistoryResults fetches the team trend across all cycles.
func GetTeamHistoryResults(ctx context.Context, client contract.EvaluationClient) (*schema.TeamHistoricalPerformance, error) {
	return client.TeamHistoricalPerformance(ctx)
}

// HistoryOutput bundles a subordinate's score history with the per-cycle
// composition rows derived from it.
type HistoryOutput struct {
	History      *schema.PerformanceHistory
	Compositions map[string][]schema.ScoreContribution // keyed by cycle
}

// GetPerformanceHistoryResults fetches one subordinate's score history and
// derives the weighted composition rows for each cycle.
func GetPerformanceHistoryResults(ctx context.Context, cfg *contract.Config, client contract.EvaluationClient) (*HistoryOutput, error) {
	if cfg.SubordinateID == "" {
		return nil, errors.New("--subordinate is required for history command")
	}

	history, err := client.PerformanceHistory(ctx, cfg.SubordinateID)
	if err != nil {
		return nil, err
	}

	compositions := make(map[string][]schema.ScoreContribution, len(history.Cycles))
	for _, cycle := range history.Cycles {
		compositions[cycle.Cycle] = Composition(cycle.SelfScore, cycle.ManagerScore, cycle.Assessment360Score)
	}

	return &HistoryOutput{
		History:      history,
		Compositions: compositions,
	}, nil
}

// GetProjectsResults fetches the project assignments of a user.
func GetProjectsResults(ctx context.Context, cfg *contract.Config, client contract.EvaluationClient) ([]schema.Project, error) {
	if cfg.SubordinateID == "" {
		return nil, errors.New("--subordinate is required for projects command")
	}
	return client.Projects(ctx, cfg.SubordinateID)
}
