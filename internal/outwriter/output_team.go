package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/huangsam/talentview/internal/contract"
	"github.com/huangsam/talentview/schema"
)

// WriteTeamOverview outputs the collaborator listing, dispatching based on
// the output format configured.
func WriteTeamOverview(results []schema.ProcessedCollaborator, cfg *contract.Config) error {
	_, fmtScore := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTeamJSON(w, results)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTeamCSV(w, results, fmtScore)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTeamTable(w, results, cfg, fmtScore)
		}, "Wrote table")
	}
}

// writeTeamTable generates and writes the human-readable table.
func writeTeamTable(w io.Writer, results []schema.ProcessedCollaborator, cfg *contract.Config, fmtScore func(*float64) string) error {
	table := tablewriter.NewWriter(w)

	table.Header([]string{"#", "Name", "Job Title", "Self", "360", "Manager", "Final", "Label", "Status"})

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	maxName := getMaxTableNameWidth(cfg)
	var data [][]string
	for i, c := range results {
		label := contract.GetPlainLabel(c.FinalScore)
		status := string(c.Status)
		if cfg.UseColors {
			label = contract.GetColorLabel(c.FinalScore)
			status = contract.GetStatusColorLabel(c.Status)
		}
		data = append(data, []string{
			strconv.Itoa(i + 1),
			contract.TruncateName(c.Name, maxName),
			contract.TruncateName(c.JobTitle, maxName),
			fmtScore(c.SelfAssessmentAverage),
			fmtScore(c.Assessment360Average),
			fmtScore(c.ManagerAssessmentAverage),
			fmtScore(c.FinalScore),
			label,
			status,
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "Showing %d collaborators for cycle %s\n", len(results), cfg.Cycle)
	return err
}

// writeTeamCSV writes the collaborator listing in CSV format.
func writeTeamCSV(w io.Writer, results []schema.ProcessedCollaborator, fmtScore func(*float64) string) error {
	header := []string{
		"id",
		"name",
		"job_title",
		"seniority",
		"business_unit",
		"self_average",
		"assessment360_average",
		"manager_average",
		"final_score",
		"label",
		"color",
		"status",
		"initials",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, c := range results {
			rec := []string{
				c.ID,
				c.Name,
				c.JobTitle,
				c.Seniority,
				c.BusinessUnit,
				csvScore(c.SelfAssessmentAverage, fmtScore),
				csvScore(c.Assessment360Average, fmtScore),
				csvScore(c.ManagerAssessmentAverage, fmtScore),
				csvScore(c.FinalScore, fmtScore),
				contract.GetPlainLabel(c.FinalScore),
				string(c.FinalScoreColor),
				string(c.Status),
				c.Initials,
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// csvScore renders an optional score for CSV cells: absent values become an
// empty cell, not the display dash.
func csvScore(v *float64, fmtScore func(*float64) string) string {
	if v == nil {
		return ""
	}
	return fmtScore(v)
}

// writeTeamJSON writes the collaborator listing in JSON format.
func writeTeamJSON(w io.Writer, results []schema.ProcessedCollaborator) error {
	type JSONCollaborator struct {
		Rank  int    `json:"rank"`
		Label string `json:"label"`
		schema.ProcessedCollaborator
	}

	output := make([]JSONCollaborator, len(results))
	for i, c := range results {
		output[i] = JSONCollaborator{
			Rank:                  i + 1,
			Label:                 contract.GetPlainLabel(c.FinalScore),
			ProcessedCollaborator: c,
		}
	}

	return writeJSON(w, output)
}
