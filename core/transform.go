package core

import (
	"github.com/huangsam/talentview/schema"
)

// Transform maps a raw metrics record into its display-ready form. Missing
// optional scores are carried through as nil; they never cause a failure.
func Transform(m schema.CollaboratorMetric) schema.ProcessedCollaborator {
	return schema.ProcessedCollaborator{
		CollaboratorMetric: m,
		Initials:           schema.Initials(m.Name),
		FinalScoreColor:    FinalScoreColor(m.FinalScore),
		Status:             StatusBucket(m.FinalScore),
	}
}

// TransformAll maps a slice of raw metrics records.
func TransformAll(metrics []schema.CollaboratorMetric) []schema.ProcessedCollaborator {
	result := make([]schema.ProcessedCollaborator, len(metrics))
	for i, m := range metrics {
		result[i] = Transform(m)
	}
	return result
}
