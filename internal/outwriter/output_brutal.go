package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/huangsam/talentview/core"
	"github.com/huangsam/talentview/internal/contract"
	"github.com/huangsam/talentview/schema"
)

// Column order for the brutal facts CSV export. Compatibility-sensitive:
// downstream spreadsheets key on these positions.
var brutalFactsCSVHeader = []string{
	"cycle",
	"team_average_score",
	"self_assessment_average",
	"manager_assessment_average",
	"assessment360_average",
	"total_collaborators",
	"finalized_assessments",
	"pending_assessments",
	"draft_assessments",
	"completion_rate",
}

// WriteBrutalFacts outputs the team aggregate metrics plus the analysis,
// dispatching based on the output format configured.
func WriteBrutalFacts(output *core.BrutalFactsOutput, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeBrutalJSON(w, output)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeBrutalCSV(w, output, cfg)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeBrutalText(w, output, cfg)
		}, "Wrote table")
	}
}

// writeBrutalText renders the aggregate metrics table and the analysis text.
func writeBrutalText(w io.Writer, output *core.BrutalFactsOutput, cfg *contract.Config) error {
	_, fmtScore := createFormatters(cfg.Precision)
	m := output.Metrics

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Metric", "Value"})

	label := contract.GetPlainLabel(m.TeamAverageScore)
	if cfg.UseColors {
		label = contract.GetColorLabel(m.TeamAverageScore)
	}

	data := [][]string{
		{"Cycle", m.Cycle},
		{"Team Average", fmt.Sprintf("%s (%s)", fmtScore(m.TeamAverageScore), label)},
		{"Self Average", fmtScore(m.SelfAssessmentAverage)},
		{"Manager Average", fmtScore(m.ManagerAssessmentAverage)},
		{"360 Average", fmtScore(m.Assessment360Average)},
		{"Collaborators", strconv.Itoa(m.TotalCollaborators)},
		{"Finalized", strconv.Itoa(m.FinalizedAssessments)},
		{"Pending", strconv.Itoa(m.PendingAssessments)},
		{"Draft", strconv.Itoa(m.DraftAssessments)},
		{"Completion", fmt.Sprintf("%.0f%%", m.CompletionRate)},
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if output.Analysis == nil {
		_, err := fmt.Fprintln(w, "No team analysis available for this cycle yet.")
		return err
	}

	a := output.Analysis
	if a.Summary != "" {
		if _, err := fmt.Fprintf(w, "\n%s\n", a.Summary); err != nil {
			return err
		}
	}
	if len(a.Strengths) > 0 {
		if _, err := fmt.Fprintf(w, "\nStrengths:\n  - %s\n", strings.Join(a.Strengths, "\n  - ")); err != nil {
			return err
		}
	}
	if len(a.ImprovementAreas) > 0 {
		if _, err := fmt.Fprintf(w, "\nImprovement Areas:\n  - %s\n", strings.Join(a.ImprovementAreas, "\n  - ")); err != nil {
			return err
		}
	}
	for _, c := range a.Collaborators {
		if _, err := fmt.Fprintf(w, "\n%s (%s): %s\n", c.Name, contract.GetPlainLabel(c.FinalScore), c.Insight); err != nil {
			return err
		}
	}
	return nil
}

// writeBrutalCSV writes the aggregate metrics as a single CSV row.
func writeBrutalCSV(w io.Writer, output *core.BrutalFactsOutput, cfg *contract.Config) error {
	_, fmtScore := createFormatters(cfg.Precision)
	m := output.Metrics

	return writeCSVWithHeader(w, brutalFactsCSVHeader, func(cw *csv.Writer) error {
		rec := []string{
			m.Cycle,
			csvScore(m.TeamAverageScore, fmtScore),
			csvScore(m.SelfAssessmentAverage, fmtScore),
			csvScore(m.ManagerAssessmentAverage, fmtScore),
			csvScore(m.Assessment360Average, fmtScore),
			strconv.Itoa(m.TotalCollaborators),
			strconv.Itoa(m.FinalizedAssessments),
			strconv.Itoa(m.PendingAssessments),
			strconv.Itoa(m.DraftAssessments),
			fmt.Sprintf("%.2f", m.CompletionRate),
		}
		return cw.Write(rec)
	})
}

// writeBrutalJSON writes both datasets in JSON format.
func writeBrutalJSON(w io.Writer, output *core.BrutalFactsOutput) error {
	return writeJSON(w, map[string]any{
		"metrics":  output.Metrics,
		"analysis": output.Analysis,
	})
}

// WriteTeamAnalysis outputs just the team analysis, for the team-analysis
// export file. CSV mode writes one row per collaborator insight.
func WriteTeamAnalysis(analysis *schema.TeamAnalysis, cfg *contract.Config) error {
	if cfg.Output == schema.JSONOut {
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, analysis)
		}, "Wrote JSON")
	}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{"id", "name", "final_score", "insight"}
		return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
			for _, c := range analysis.Collaborators {
				score := ""
				if c.FinalScore != nil {
					score = fmt.Sprintf("%.2f", *c.FinalScore)
				}
				if err := cw.Write([]string{c.ID, c.Name, score, c.Insight}); err != nil {
					return err
				}
			}
			return nil
		})
	}, "Wrote CSV")
}
