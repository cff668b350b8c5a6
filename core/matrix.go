package core

import (
	"fmt"

	"github.com/huangsam/talentview/schema"
)

// GroupedMatrix is a talent matrix dataset joined to the fixed 3x3 grid,
// ready for rendering.
type GroupedMatrix struct {
	Cycle        string
	Cells        map[int][]schema.TalentMatrixPosition
	Stats        schema.MatrixStats
	Insufficient bool
	Message      string
}

// GroupPositions groups matrix positions by their cell id. Every position
// lands in exactly one of the nine cells, so the cell group sizes always sum
// to the input length. A position with an id outside 1-9 is a data error.
// When the dataset flags insufficient data, grouping is skipped and the
// upstream message is carried through instead.
func GroupPositions(data *schema.TalentMatrixData) (*GroupedMatrix, error) {
	if data.HasInsufficientData {
		msg := data.Message
		if msg == "" {
			msg = "Not enough evaluation data to build the talent matrix."
		}
		return &GroupedMatrix{
			Cycle:        data.Cycle,
			Insufficient: true,
			Message:      msg,
		}, nil
	}

	cells := make(map[int][]schema.TalentMatrixPosition, len(schema.MatrixCells))
	for _, cell := range schema.MatrixCells {
		cells[cell.ID] = nil
	}

	for _, pos := range data.Positions {
		if _, ok := schema.CellByID(pos.MatrixPosition); !ok {
			return nil, fmt.Errorf("collaborator %s has invalid matrix position %d", pos.ID, pos.MatrixPosition)
		}
		cells[pos.MatrixPosition] = append(cells[pos.MatrixPosition], pos)
	}

	return &GroupedMatrix{
		Cycle: data.Cycle,
		Cells: cells,
		Stats: data.Stats,
	}, nil
}

// FilterByLabel keeps only the positions placed in the cell with the given
// label. An unknown label yields an empty result. An empty label keeps
// everything. Supports click-to-filter on a matrix category.
func FilterByLabel(positions []schema.TalentMatrixPosition, label string) []schema.TalentMatrixPosition {
	if label == "" {
		out := make([]schema.TalentMatrixPosition, len(positions))
		copy(out, positions)
		return out
	}

	cell, ok := schema.CellByLabel(label)
	if !ok {
		return []schema.TalentMatrixPosition{}
	}

	result := make([]schema.TalentMatrixPosition, 0, len(positions))
	for _, pos := range positions {
		if pos.MatrixPosition == cell.ID {
			result = append(result, pos)
		}
	}
	return result
}
