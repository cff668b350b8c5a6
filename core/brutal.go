package core

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/huangsam/talentview/internal/apiclient"
	"github.com/huangsam/talentview/internal/contract"
	"github.com/huangsam/talentview/schema"
)

// BrutalFactsOutput bundles the aggregate metrics with the free-text team
// analysis for one cycle. Analysis is nil when the API has none for the
// cycle; that is a renderable state, not an error.
type BrutalFactsOutput struct {
	Metrics  *schema.BrutalFactsMetrics
	Analysis *schema.TeamAnalysis
}

// GetBrutalFactsResults fetches the aggregate metrics and the team analysis
// concurrently. The metrics are required; a missing analysis degrades to a
// nil field so the metrics still render.
func GetBrutalFactsResults(ctx context.Context, cfg *contract.Config, client contract.EvaluationClient) (*BrutalFactsOutput, error) {
	output := &BrutalFactsOutput{}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		metrics, err := client.BrutalFactsMetrics(gctx, cfg.Cycle)
		if err != nil {
			return err
		}
		output.Metrics = metrics
		return nil
	})

	g.Go(func() error {
		analysis, err := client.TeamAnalysis(gctx, cfg.Cycle)
		if err != nil {
			if apiclient.IsDataAbsent(err) {
				return nil // metrics alone are still worth showing
			}
			return err
		}
		output.Analysis = analysis
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return output, nil
}
