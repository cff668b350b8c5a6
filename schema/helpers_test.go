package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestInitials tests initials derivation from display names.
func TestInitials(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"two parts", "Ana Oliveira", "AO"},
		{"three parts uses first and last", "Carlos Eduardo Lima", "CL"},
		{"single part", "Madonna", "M"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
		{"lowercase input", "bruno mendes", "BM"},
		{"accented first letter", "Édson Árantes", "ÉÁ"},
		{"punctuation trimmed", "(Ana) [Oliveira]", "AO"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Initials(tt.input))
		})
	}
}

// TestFloatOrZero tests the optional score dereference.
func TestFloatOrZero(t *testing.T) {
	assert.Equal(t, 0.0, FloatOrZero(nil))
	assert.Equal(t, 4.2, FloatOrZero(Float64Ptr(4.2)))
}

// TestCellLookups tests the static matrix cell lookups.
func TestCellLookups(t *testing.T) {
	t.Run("by id", func(t *testing.T) {
		cell, ok := CellByID(9)
		assert.True(t, ok)
		assert.Equal(t, "Estrela", cell.Label)
		assert.Equal(t, HighLevel, cell.Performance)
		assert.Equal(t, HighLevel, cell.Potential)
	})

	t.Run("by id out of range", func(t *testing.T) {
		_, ok := CellByID(0)
		assert.False(t, ok)
		_, ok = CellByID(10)
		assert.False(t, ok)
	})

	t.Run("by label", func(t *testing.T) {
		cell, ok := CellByLabel("Enigma")
		assert.True(t, ok)
		assert.Equal(t, 7, cell.ID)
	})

	t.Run("by unknown label", func(t *testing.T) {
		_, ok := CellByLabel("Unicorn")
		assert.False(t, ok)
	})

	t.Run("ids follow reading order", func(t *testing.T) {
		for i, cell := range MatrixCells {
			assert.Equal(t, i+1, cell.ID)
			assert.Equal(t, (cell.ID-1)%3, cell.X)
			assert.Equal(t, (cell.ID-1)/3, cell.Y)
		}
	})
}
