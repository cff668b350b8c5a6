package core

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/huangsam/talentview/schema"
)

// QueryOptions selects and orders a collaborator listing.
type QueryOptions struct {
	// Search is a case-insensitive substring matched against name or job
	// title. Empty matches all.
	Search string

	// Status keeps only collaborators in the given status bucket. Empty or
	// "all" matches all.
	Status string

	// Band keeps only collaborators whose final score falls in the band.
	// Unscored collaborators never match a specific band.
	Band schema.PerformanceBand

	// Sort picks the output ordering.
	Sort schema.SortOrder
}

// nameCollator orders names with Portuguese collation rules so accented
// names sort next to their unaccented forms.
var nameCollator = collate.New(language.BrazilianPortuguese)

// Query filters and sorts a collaborator listing. The input slice is never
// mutated; the result is a fresh slice. Applying the same options twice
// yields the same output.
func Query(records []schema.ProcessedCollaborator, opts QueryOptions) []schema.ProcessedCollaborator {
	search := strings.ToLower(strings.TrimSpace(opts.Search))

	result := make([]schema.ProcessedCollaborator, 0, len(records))
	for _, rec := range records {
		if search != "" &&
			!strings.Contains(strings.ToLower(rec.Name), search) &&
			!strings.Contains(strings.ToLower(rec.JobTitle), search) {
			continue
		}
		if opts.Status != "" && opts.Status != "all" && string(rec.Status) != opts.Status {
			continue
		}
		if !MatchesBand(rec.FinalScore, opts.Band) {
			continue
		}
		result = append(result, rec)
	}

	sortCollaborators(result, opts.Sort)
	return result
}

// sortCollaborators orders records in place. Score sorts treat an absent
// final score as zero. The sort is stable, so equal keys keep their input
// order.
func sortCollaborators(records []schema.ProcessedCollaborator, order schema.SortOrder) {
	switch order {
	case schema.HighestScoreOrder:
		sort.SliceStable(records, func(i, j int) bool {
			return schema.FloatOrZero(records[i].FinalScore) > schema.FloatOrZero(records[j].FinalScore)
		})
	case schema.LowestScoreOrder:
		sort.SliceStable(records, func(i, j int) bool {
			return schema.FloatOrZero(records[i].FinalScore) < schema.FloatOrZero(records[j].FinalScore)
		})
	default: // alphabetical
		sort.SliceStable(records, func(i, j int) bool {
			return nameCollator.CompareString(records[i].Name, records[j].Name) < 0
		})
	}
}
