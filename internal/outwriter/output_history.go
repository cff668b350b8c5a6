package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/huangsam/talentview/core"
	"github.com/huangsam/talentview/internal/contract"
	"github.com/huangsam/talentview/schema"
)

// Column order for the team historical performance CSV export.
var teamHistoryCSVHeader = []string{
	"cycle",
	"average_score",
	"collaborator_count",
	"finalized_percent",
}

// WriteTeamHistory outputs the team trend across cycles, dispatching based
// on the output format configured.
func WriteTeamHistory(history *schema.TeamHistoricalPerformance, cfg *contract.Config) error {
	_, fmtScore := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, history)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, teamHistoryCSVHeader, func(cw *csv.Writer) error {
				for _, c := range history.Cycles {
					rec := []string{
						c.Cycle,
						csvScore(c.AverageScore, fmtScore),
						strconv.Itoa(c.CollaboratorCount),
						fmt.Sprintf("%.2f", c.FinalizedPercent),
					}
					if err := cw.Write(rec); err != nil {
						return err
					}
				}
				return nil
			})
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTeamHistoryTable(w, history, cfg, fmtScore)
		}, "Wrote table")
	}
}

// writeTeamHistoryTable renders the trend as a table, oldest cycle first.
func writeTeamHistoryTable(w io.Writer, history *schema.TeamHistoricalPerformance, cfg *contract.Config, fmtScore func(*float64) string) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Cycle", "Average", "Label", "Collaborators", "Finalized %"})

	var data [][]string
	for _, c := range history.Cycles {
		label := contract.GetPlainLabel(c.AverageScore)
		if cfg.UseColors {
			label = contract.GetColorLabel(c.AverageScore)
		}
		data = append(data, []string{
			c.Cycle,
			fmtScore(c.AverageScore),
			label,
			strconv.Itoa(c.CollaboratorCount),
			fmt.Sprintf("%.0f%%", c.FinalizedPercent),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// WritePerformanceHistory outputs one subordinate's score history with the
// weighted composition behind each cycle's final score.
func WritePerformanceHistory(output *core.HistoryOutput, cfg *contract.Config) error {
	_, fmtScore := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, map[string]any{
				"history":      output.History,
				"compositions": output.Compositions,
			})
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeHistoryCSV(w, output, fmtScore)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeHistoryText(w, output, cfg, fmtScore)
		}, "Wrote table")
	}
}

// writeHistoryText renders one block per cycle: the per-source scores, then
// the composition rows as "Score x Weight = Contribution". Component scores
// keep one decimal place; contributions keep two.
func writeHistoryText(w io.Writer, output *core.HistoryOutput, cfg *contract.Config, fmtScore func(*float64) string) error {
	h := output.History
	if _, err := fmt.Fprintf(w, "Performance history for %s (%s)\n", h.Name, h.SubordinateID); err != nil {
		return err
	}

	for _, cycle := range h.Cycles {
		label := contract.GetPlainLabel(cycle.FinalScore)
		if cfg.UseColors {
			label = contract.GetColorLabel(cycle.FinalScore)
		}
		if _, err := fmt.Fprintf(w, "\nCycle %s: final %s (%s)\n", cycle.Cycle, fmtScore(cycle.FinalScore), label); err != nil {
			return err
		}
		for _, row := range output.Compositions[cycle.Cycle] {
			if _, err := fmt.Fprintf(w, "  %-16s %.1f x %.2f = %.2f\n", row.Source, row.Score, row.Weight, row.Contribution); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeHistoryCSV writes one row per cycle and source with its weighted term.
func writeHistoryCSV(w io.Writer, output *core.HistoryOutput, fmtScore func(*float64) string) error {
	header := []string{"cycle", "source", "score", "weight", "contribution", "final_score"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, cycle := range output.History.Cycles {
			for _, row := range output.Compositions[cycle.Cycle] {
				rec := []string{
					cycle.Cycle,
					row.Source,
					fmt.Sprintf("%.1f", row.Score),
					fmt.Sprintf("%.2f", row.Weight),
					fmt.Sprintf("%.2f", row.Contribution),
					csvScore(cycle.FinalScore, fmtScore),
				}
				if err := cw.Write(rec); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// WriteProjects outputs a user's project assignments.
func WriteProjects(projects []schema.Project, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, projects)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			header := []string{"id", "name", "role", "status", "start_date", "end_date"}
			return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
				for _, p := range projects {
					if err := cw.Write([]string{p.ID, p.Name, p.Role, p.Status, p.StartDate, p.EndDate}); err != nil {
						return err
					}
				}
				return nil
			})
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			table := tablewriter.NewWriter(w)
			table.Header([]string{"Name", "Role", "Status", "Start", "End"})
			var data [][]string
			for _, p := range projects {
				data = append(data, []string{p.Name, p.Role, p.Status, p.StartDate, p.EndDate})
			}
			if err := table.Bulk(data); err != nil {
				return err
			}
			return table.Render()
		}, "Wrote table")
	}
}
