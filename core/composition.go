package core

import (
	"github.com/huangsam/talentview/schema"
)

// Score source names for composition rows.
const (
	SourceSelf    = "Autoavaliação"
	SourceManager = "Gestor"
	Source360     = "Avaliação 360"
)

// Composition computes the weighted terms behind a final score. The weight
// split depends on whether a manager score is present: with one, the split
// is self 0.2 / manager 0.5 / 360 0.3; without one, the manager weight is
// redistributed and the split becomes self 0.4 / 360 0.6. Absent sources
// produce no row. Each row carries Score x Weight = Contribution.
func Composition(selfScore, managerScore, assessment360 *float64) []schema.ScoreContribution {
	hasManager := managerScore != nil

	selfWeight := schema.WeightSelfNoManager
	weight360 := schema.Weight360NoManager
	if hasManager {
		selfWeight = schema.WeightSelfWithManager
		weight360 = schema.Weight360WithManager
	}

	var rows []schema.ScoreContribution
	if selfScore != nil {
		rows = append(rows, contribution(SourceSelf, *selfScore, selfWeight))
	}
	if hasManager {
		rows = append(rows, contribution(SourceManager, *managerScore, schema.WeightManager))
	}
	if assessment360 != nil {
		rows = append(rows, contribution(Source360, *assessment360, weight360))
	}
	return rows
}

func contribution(source string, score, weight float64) schema.ScoreContribution {
	return schema.ScoreContribution{
		Source:       source,
		Score:        score,
		Weight:       weight,
		Contribution: score * weight,
	}
}
