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

// WriteTalentMatrix outputs the grouped 9-box matrix, dispatching based on
// the output format configured. An insufficient-data matrix renders its
// upstream message instead of the grid, in every format.
func WriteTalentMatrix(matrix *core.GroupedMatrix, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeMatrixJSON(w, matrix)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeMatrixCSV(w, matrix, cfg)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeMatrixGrid(w, matrix, cfg)
		}, "Wrote table")
	}
}

// writeMatrixGrid renders the 3x3 grid top row first (high potential on
// top, performance increasing left to right), then a per-cell roster.
func writeMatrixGrid(w io.Writer, matrix *core.GroupedMatrix, cfg *contract.Config) error {
	if matrix.Insufficient {
		_, err := fmt.Fprintln(w, matrix.Message)
		return err
	}

	fmtFloat, _ := createFormatters(cfg.Precision)

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Potential \\ Performance", "Low", "Medium", "High"})

	rowNames := []string{"High", "Medium", "Low"}
	var data [][]string
	for rowIdx, y := range []int{2, 1, 0} {
		row := []string{rowNames[rowIdx]}
		for x := 0; x < 3; x++ {
			cell := cellAt(x, y)
			count := len(matrix.Cells[cell.ID])
			row = append(row, fmt.Sprintf("%s (%d)", cell.Label, count))
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	// Per-cell roster, star corner first
	for i := len(schema.MatrixCells) - 1; i >= 0; i-- {
		cell := schema.MatrixCells[i]
		positions := matrix.Cells[cell.ID]
		if len(positions) == 0 {
			continue
		}
		names := make([]string, len(positions))
		for j, pos := range positions {
			names[j] = fmt.Sprintf("%s (%s/%s)", pos.Name,
				fmtFloat(pos.PerformanceScore), fmtFloat(pos.PotentialScore))
		}
		if _, err := fmt.Fprintf(w, "%s: %s\n", cell.Label, strings.Join(names, ", ")); err != nil {
			return err
		}
	}

	total := 0
	for _, positions := range matrix.Cells {
		total += len(positions)
	}
	_, err := fmt.Fprintf(w, "Cycle %s: %d collaborators, avg performance %s, avg potential %s\n",
		matrix.Cycle, total,
		fmtFloat(matrix.Stats.AveragePerformance), fmtFloat(matrix.Stats.AveragePotential))
	return err
}

// cellAt returns the static cell at grid coordinates (x, y).
func cellAt(x, y int) schema.MatrixCell {
	for _, cell := range schema.MatrixCells {
		if cell.X == x && cell.Y == y {
			return cell
		}
	}
	return schema.MatrixCell{}
}

// writeMatrixCSV writes the matrix positions in CSV format, one row per
// collaborator.
func writeMatrixCSV(w io.Writer, matrix *core.GroupedMatrix, cfg *contract.Config) error {
	if matrix.Insufficient {
		_, err := fmt.Fprintln(w, matrix.Message)
		return err
	}

	fmtFloat, _ := createFormatters(cfg.Precision)

	header := []string{
		"id",
		"name",
		"job_title",
		"business_unit",
		"seniority",
		"performance_score",
		"potential_score",
		"matrix_position",
		"matrix_label",
		"initials",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		// Walk cells in id order so output is deterministic
		for _, cell := range schema.MatrixCells {
			for _, pos := range matrix.Cells[cell.ID] {
				rec := []string{
					pos.ID,
					pos.Name,
					pos.JobTitle,
					pos.BusinessUnit,
					pos.Seniority,
					fmtFloat(pos.PerformanceScore),
					fmtFloat(pos.PotentialScore),
					strconv.Itoa(pos.MatrixPosition),
					cell.Label,
					pos.Initials,
				}
				if err := cw.Write(rec); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// writeMatrixJSON writes the grouped matrix in JSON format.
func writeMatrixJSON(w io.Writer, matrix *core.GroupedMatrix) error {
	if matrix.Insufficient {
		return writeJSON(w, map[string]any{
			"cycle":               matrix.Cycle,
			"hasInsufficientData": true,
			"message":             matrix.Message,
		})
	}

	type JSONCell struct {
		schema.MatrixCell
		Collaborators []schema.TalentMatrixPosition `json:"collaborators"`
	}

	cells := make([]JSONCell, len(schema.MatrixCells))
	for i, cell := range schema.MatrixCells {
		collaborators := matrix.Cells[cell.ID]
		if collaborators == nil {
			collaborators = []schema.TalentMatrixPosition{}
		}
		cells[i] = JSONCell{
			MatrixCell:    cell,
			Collaborators: collaborators,
		}
	}

	return writeJSON(w, map[string]any{
		"cycle": matrix.Cycle,
		"cells": cells,
		"stats": matrix.Stats,
	})
}
